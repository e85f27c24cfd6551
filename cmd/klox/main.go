// Command klox is the command-line front end for the Lox tree-walking
// interpreter: argument parsing, file reading, and the REPL loop. The
// interpreter itself lives in internal/klox.
package main

import (
	"fmt"
	"os"

	"github.com/letung3105/klox/internal/klox"
)

func main() {
	debug := false
	var positional []string
	for _, arg := range os.Args[1:] {
		if arg == "--debug" {
			debug = true
			continue
		}
		positional = append(positional, arg)
	}

	if len(positional) > 1 {
		fmt.Println("Usage: klox [script]")
		os.Exit(klox.ExitUsage)
	}

	driver := klox.NewDriver(os.Stdout, os.Stderr, debug)
	if len(positional) == 1 {
		os.Exit(driver.RunFile(positional[0]))
		return
	}
	driver.RunPrompt()
}
