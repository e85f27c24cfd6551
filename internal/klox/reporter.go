package klox

import (
	"fmt"
	"io"
)

// Reporter separates diagnostic formatting from where diagnostics end up.
// A fully-featured language has a much more elaborate reporting setup; Lox
// needs only to remember whether an error of each kind was seen and to
// write errors out as they arrive.
type Reporter interface {
	Report(err error)
	HadError() bool
	HadRuntimeError() bool
	Reset()
}

// SimpleReporter writes every error, as-is, to an underlying writer and
// tracks whether a static or a runtime error has been seen.
type SimpleReporter struct {
	writer        io.Writer
	hadErr        bool
	hadRuntimeErr bool
}

// NewSimpleReporter creates a Reporter that writes to writer.
func NewSimpleReporter(writer io.Writer) *SimpleReporter {
	return &SimpleReporter{writer: writer}
}

func (reporter *SimpleReporter) Report(err error) {
	if _, ok := err.(*RuntimeError); ok {
		reporter.hadRuntimeErr = true
	} else {
		reporter.hadErr = true
	}
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) HadRuntimeError() bool {
	return reporter.hadRuntimeErr
}

// Reset clears both error flags so the same reporter can be reused for the
// next REPL line.
func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
	reporter.hadRuntimeErr = false
}
