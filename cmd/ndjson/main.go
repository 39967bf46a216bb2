package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"pkt.systems/ndjson"
)

var version = "dev"

type mode int

const (
	modeUsage mode = iota
	modeColorize
	modeCompact
	modeCopy
)

type cliOptions struct {
	noColor    bool
	forceColor bool
	compact    bool
}

// selectMode picks the processing path from the terminal situation and the
// flags. The colorizing core only runs when stdout can show the result (or
// colour is forced); an interactive stdin means there is nothing to read.
func selectMode(stdinTTY, stdoutTTY bool, opts cliOptions) mode {
	if stdinTTY {
		return modeUsage
	}
	if opts.compact {
		return modeCompact
	}
	if !stdoutTTY && !opts.forceColor {
		return modeCopy
	}
	return modeColorize
}

func usage() {
	fmt.Fprintf(pflag.CommandLine.Output(), `Formats and colorizes newline delimited JSON for better readability.
The input remains unchanged for non-JSON lines or when stdout isn't a terminal.

Usage:
  ndjson < file
  tail -f file | ndjson
  docker logs --tail 100 -f container 2>&1 | ndjson
  kubectl logs --tail 100 -f pod | ndjson

Flags:
%s`, pflag.CommandLine.FlagUsages())
}

func main() {
	opts := cliOptions{}
	pflag.BoolVar(&opts.noColor, "no-color", false, "render without escape codes, even on a terminal")
	pflag.BoolVarP(&opts.forceColor, "color", "C", false, "colorize even when stdout is not a terminal")
	pflag.BoolVarP(&opts.compact, "compact", "c", false, "compact JSON lines instead of colorizing")
	showVersion := pflag.BoolP("version", "V", false, "print version and exit")
	pflag.Usage = usage
	pflag.Parse()

	if *showVersion {
		fmt.Println("ndjson", version)
		return
	}

	stdinTTY := isTerminal(os.Stdin)
	stdoutTTY := isTerminal(os.Stdout)

	switch selectMode(stdinTTY, stdoutTTY, opts) {
	case modeUsage:
		if stdoutTTY {
			pflag.CommandLine.SetOutput(os.Stdout)
			usage()
		}
		os.Exit(1)
	case modeCompact:
		run(ndjson.CompactTo)
	case modeCopy:
		if _, err := io.Copy(os.Stdout, os.Stdin); err != nil {
			fatal(err)
		}
	case modeColorize:
		run(func(w io.Writer, r io.Reader, _ *ndjson.Options) error {
			return ndjson.ColorizeStream(w, r, &ndjson.Options{NoColor: opts.noColor})
		})
	}
}

func run(stream func(io.Writer, io.Reader, *ndjson.Options) error) {
	if err := stream(os.Stdout, os.Stdin, nil); err != nil {
		fatal(err)
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "ndjson: %v\n", err)
	os.Exit(1)
}
