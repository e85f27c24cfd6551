package klox

import (
	"fmt"
	"strconv"
)

// stringify renders a Value the way "print" and the REPL do: nil as
// "nil", numbers with a trimmed trailing ".0", and everything else via its
// own String method or fmt's default formatting.
func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
