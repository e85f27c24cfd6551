package klox

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"
)

// Exit codes, per the CLI contract: 0 success, 64 usage error, 65 a static
// error occurred, 70 a runtime error occurred.
const (
	ExitUsage   = 64
	ExitDataErr = 65
	ExitSoftErr = 70
)

// Driver owns everything that used to live as module-level globals in the
// reference implementation this was adapted from: the error flags, the
// interpreter, and whether exit codes should actually be raised. A fresh
// Driver is constructed per run (or per test) rather than reset.
type Driver struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Debug    bool
	TestMode bool

	reporter *SimpleReporter
	interp   *Interpreter
}

// NewDriver creates a driver writing "print" output to stdout and
// diagnostics to stderr.
func NewDriver(stdout, stderr io.Writer, debug bool) *Driver {
	reporter := NewSimpleReporter(stderr)
	return &Driver{
		Stdout:   stdout,
		Stderr:   stderr,
		Debug:    debug,
		reporter: reporter,
		interp:   NewInterpreter(stdout, reporter),
	}
}

// RunFile reads path as UTF-8 source, runs it, and returns the process
// exit code implied by what happened (0, 65, or 70), or 64 if the file
// can't be read. In TestMode a run that reported errors still returns 0;
// the diagnostics are written to Stderr as usual.
func (d *Driver) RunFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(d.Stderr, err)
		return ExitUsage
	}

	d.run(string(src))
	switch {
	case d.TestMode:
		return 0
	case d.reporter.HadError():
		return ExitDataErr
	case d.reporter.HadRuntimeError():
		return ExitSoftErr
	default:
		return 0
	}
}

// RunPrompt runs a read-eval-print loop against the terminal until EOF or
// Ctrl-D, with line editing and a persisted history file. Each line's error
// flags are reset before the next prompt, so one bad line doesn't poison
// the session.
func (d *Driver) RunPrompt() {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyPath := replHistoryPath()
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				line.WriteHistory(f)
				f.Close()
			}
		}()
	}

	for {
		input, err := line.Prompt("> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(d.Stdout)
				continue
			}
			return
		}
		line.AppendHistory(input)
		d.run(input)
		d.reporter.Reset()
	}
}

// replHistoryPath returns the path used to persist REPL line history across
// sessions, or "" if the user's home directory can't be determined.
func replHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.klox_history"
}

func (d *Driver) run(source string) {
	scanner := NewScanner([]rune(source), d.reporter)
	tokens := scanner.Scan()

	parser := NewParser(tokens, d.reporter)
	stmts := parser.Parse()
	if d.reporter.HadError() {
		return
	}

	if d.Debug {
		printer := &AstPrinter{}
		fmt.Fprint(d.Stdout, printer.Print(stmts))
		return
	}

	resolver := NewResolver(d.interp, d.reporter)
	resolver.Resolve(stmts)
	if d.reporter.HadError() {
		return
	}

	d.interp.Interpret(stmts)
}

// HadError reports whether any static error was seen since the last Reset.
func (d *Driver) HadError() bool {
	return d.reporter.HadError()
}

// HadRuntimeError reports whether a runtime error was seen since the last
// Reset.
func (d *Driver) HadRuntimeError() bool {
	return d.reporter.HadRuntimeError()
}
