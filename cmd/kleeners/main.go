package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/knekvasil/kleeners"
)

func main() {
	pattern := flag.String("re", "", "pattern (required)")
	stage := flag.String("dot", "", "export a stage as Graphviz DOT: enfa|nfa|rawdfa|dfa")
	outFile := flag.String("o", "-", "DOT output file (- for stdout)")
	flag.Parse()

	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "usage: kleeners -re <pattern> [-dot enfa|nfa|rawdfa|dfa] [-o file] [input ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	m, err := kleeners.Compile(*pattern)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if *stage != "" {
		if err := exportDot(m, *stage, *outFile); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() > 0 {
		for _, input := range flag.Args() {
			report(m, input)
		}
		return
	}

	// No inputs on the command line: test lines from stdin.
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		report(m, sc.Text())
	}
}

func report(m *kleeners.Machine, input string) {
	verdict := "reject"
	if m.Accepts(input) {
		verdict = "accept"
	}
	fmt.Printf("%s\t%q\n", verdict, input)
}

func exportDot(m *kleeners.Machine, stage, outFile string) error {
	var w io.Writer = os.Stdout
	if outFile != "-" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch stage {
	case "enfa":
		m.ENFA().WriteDot(w)
	case "nfa":
		m.NFA().WriteDot(w)
	case "rawdfa":
		m.RawDFA().WriteDot(w)
	case "dfa":
		m.DFA().WriteDot(w)
	default:
		return fmt.Errorf("unknown stage %q", stage)
	}
	return nil
}
