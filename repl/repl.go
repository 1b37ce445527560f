/*
File   : graphscript/repl/repl.go
Package: repl

An interactive read-parse-print loop. There is no evaluator here: a line
goes in, its diagnostics and its parsed Program come back out.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"

	"github.com/arolyn-dev/graphscript/diag"
	"github.com/arolyn-dev/graphscript/names"
	"github.com/arolyn-dev/graphscript/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a configured interactive session: banner text plus the
// identifier set every line is parsed against.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string
	Names   names.Set
	Dump    bool // print the full AST (via go-spew) instead of a one-line summary
}

// New creates a Repl instance.
func New(banner, version, author, line, prompt string, set names.Set, dump bool) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt, Names: set, Dump: dump}
}

// PrintBannerInfo prints the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type an expression and press enter.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit.")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop until the user exits or readline hits eof.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))

			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}

		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))

			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line)
	}
}

// executeWithRecovery parses one line and prints its diagnostics, then
// its parsed form. The parser itself never panics on malformed
// input, but a broken names.Set or a future parselet bug might; the
// REPL keeps running either way.
func (r *Repl) executeWithRecovery(writer io.Writer, line string) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(writer, "[INTERNAL ERROR] %v\n", rec)
		}
	}()

	diags, program := parser.Parse([]byte(line), r.Names)

	for _, d := range diags {
		colorFor(d.Severity).Fprintf(writer, "%s\n", d.String())
	}

	if program == nil || len(program.Children) == 0 {
		return
	}

	if r.Dump {
		yellowColor.Fprintln(writer, spew.Sdump(program))

		return
	}

	for _, stmt := range program.Children {
		yellowColor.Fprintf(writer, "%T\n", stmt)
	}
}

func colorFor(sev diag.Severity) *color.Color {
	if sev == diag.Error {
		return redColor
	}

	return yellowColor
}
