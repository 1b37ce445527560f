/*
File   : graphscript/main.go
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/arolyn-dev/graphscript/diag"
	"github.com/arolyn-dev/graphscript/names"
	"github.com/arolyn-dev/graphscript/parser"
	"github.com/arolyn-dev/graphscript/repl"
)

const (
	banner = `graphscript`
	line   = "----------------------------------------"
	prompt = "gs >>> "
)

func main() {
	exprFlag := flag.String("e", "", "parse a single expression and exit")
	dumpFlag := flag.Bool("dump", false, "print the full AST instead of a one-line summary")
	namesFlag := flag.String("names", "", "path to a YAML file of auto-operator/auto-command names")
	flag.Parse()

	set, err := loadNames(*namesFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	switch {
	case *exprFlag != "":
		os.Exit(runSource(*exprFlag, set, *dumpFlag))

	case flag.NArg() > 0:
		src, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		os.Exit(runSource(string(src), set, *dumpFlag))

	default:
		r := repl.New(banner, "0.1.0", "", line, prompt, set, *dumpFlag)
		r.Start(os.Stdout)
	}
}

func loadNames(path string) (names.Set, error) {
	if path == "" {
		return names.NewSet(), nil
	}

	return names.LoadSet(path)
}

// runSource parses src once, prints its diagnostics and then its parsed
// form (also when there are errors), and returns a process exit code.
func runSource(src string, set names.Set, dump bool) int {
	diags, program := parser.Parse([]byte(src), set)

	hasErrors := false
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d.String())
		if d.Severity == diag.Error {
			hasErrors = true
		}
	}

	if program != nil {
		if dump {
			spew.Dump(program)
		} else {
			for _, stmt := range program.Children {
				fmt.Printf("%T\n", stmt)
			}
		}
	}

	if hasErrors {
		return 1
	}

	return 0
}
