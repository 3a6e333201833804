package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// ExitError carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// options are the parsed command-line flags.
type options struct {
	configPath string
	loadKey    string
	saveKey    string
	seed       int64
	seedSet    bool
	logLevel   string
	frames     bool
}

// parseArgs processes command-line arguments. It returns the options, a
// boolean telling the caller to exit cleanly (help), or an ExitError.
func parseArgs(args []string, output io.Writer) (*options, bool, error) {
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
gridpath - generate a random grid graph and watch Dijkstra solve it.

Usage:
  gridpath [options]

Options:
`)
		fs.PrintDefaults()
	}

	o := &options{}
	fs.StringVar(&o.configPath, "config", "", "Path to an HCL config file. Defaults are used when empty.")
	fs.StringVar(&o.loadKey, "load", "", "Load the graph stored under this key instead of generating one.")
	fs.StringVar(&o.saveKey, "save", "", "Save the graph under this key; 'auto' uses the run ID.")
	fs.Int64Var(&o.seed, "seed", 0, "Random seed for generation. Overrides generation.seed.")
	fs.StringVar(&o.logLevel, "log-level", "", "Logging level: debug, info, warn, error, none. Overrides log.level.")
	fs.BoolVar(&o.frames, "frames", false, "Print every frame instead of only the final one.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %v", fs.Args())}
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			o.seedSet = true
		}
	})

	return o, false, nil
}
