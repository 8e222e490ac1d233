package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Ka-zam/termcalc"
)

const appName = "termcalc"

func main() {
	if len(os.Args) < 2 {
		os.Exit(cmdRepl())
	}

	// Only an exact, single-argument match is a command; everything else,
	// leading '-' included, is an expression.
	if len(os.Args) == 2 {
		switch os.Args[1] {
		case "-h", "--help", "help":
			usage()
			return
		case "version", "--version":
			fmt.Println(termcalc.Version)
			return
		}
	}

	os.Exit(cmdEval(os.Args[1:]))
}

// cmdEval evaluates the space-joined arguments as one expression, so
// `termcalc 2 + 2` and `termcalc "2 + 2"` behave the same. A failed
// evaluation prints nothing on stdout; the diagnostic went to stderr.
func cmdEval(args []string) int {
	sess := termcalc.NewSession()
	v := sess.Eval(strings.Join(args, " "))
	out, ok := sess.FormatResult(v)
	if !ok {
		return 1
	}
	fmt.Println(out)
	return 0
}

func usage() {
	fmt.Printf(`%s %s - fast terminal calculator

Usage:
  %s                   Start the interactive calculator (exit: q, Ctrl+D).
  %s <expression...>   Evaluate the arguments as one expression and print it.
  %s version           Print the version.

`, appName, termcalc.Version, appName, appName, appName)
	printReference()
}
