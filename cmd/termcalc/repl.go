package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/Ka-zam/termcalc"
)

// cmdRepl runs the interactive loop: read a line, intercept the meta
// commands, evaluate everything else and keep `ans` current. Results go to
// stdout, diagnostics to stderr, so piping results out stays clean.
func cmdRepl() int {
	cfg := loadConfig()
	if !cfg.Color {
		color.NoColor = true
	}

	fmt.Printf("%s %s  (help: ?, exit: q)\n", appName, termcalc.Version)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(cfg.History); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(cfg.History); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	sess := termcalc.NewSession()
	result := color.New(color.FgBlue)

	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			return 1
		}

		if line == "" {
			continue
		}

		switch line {
		case "q", "quit", "exit":
			return 0
		case "help", "?":
			printHelp()
			continue
		case "vars":
			printVars(sess)
			continue
		}

		ln.AppendHistory(line)

		v := sess.Eval(line)
		if out, ok := sess.FormatResult(v); ok {
			result.Println(out)
		} else if snip := termcalc.ErrorSnippet(sess.LastError(), line); snip != "" {
			fmt.Fprint(os.Stderr, snip)
		}

		// `ans` tracks every evaluated line, failed ones included: a
		// mistyped line deliberately clobbers it rather than silently
		// keeping a stale value.
		sess.Assign("ans", v)
	}
}

// printVars lists the user bindings in assignment order, each rendered
// with the plain decimal formatter.
func printVars(sess *termcalc.Session) {
	for _, b := range sess.Bindings() {
		out, ok := termcalc.Format(b.Value, termcalc.FormatDec)
		if !ok {
			out = "nan"
		}
		fmt.Printf("%s = %s\n", b.Name, out)
	}
}
