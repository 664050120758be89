// Copyright 2015 Apcera Inc. All rights reserved.

// Package cli translates argv into supervisor options. It is deliberately
// thin: it never touches a signal mask, a process, or a wait status.
package cli

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/apcera/subinit/internal/buildinfo"
)

// Options holds the parsed command line.
type Options struct {
	// Verbosity is the number of times -v was given, 0-4.
	Verbosity int

	// ChildArgv is the program and arguments to spawn, e.g.
	// []string{"/bin/sh", "-c", "sleep 30"}.
	ChildArgv []string
}

const maxVerbosity = 4

// Parse parses argv (os.Args[1:]) for the binary named name. It returns the
// parsed Options and proceed=true when the supervisor should continue
// starting up. When proceed is false, the caller should exit with
// exitCode; the usage banner has already been written to stdout (help) or
// stderr (error).
func Parse(name string, argv []string, stdout, stderr io.Writer) (opts *Options, exitCode int, proceed bool) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SetInterspersed(false)
	fs.Usage = func() {}

	help := fs.BoolP("help", "h", false, "Show this help message and exit.")
	var verbosity int
	fs.CountVarP(&verbosity, "verbose", "v", "Generate more verbose output. Repeat up to 4 times.")

	if err := fs.Parse(argv); err != nil {
		fmt.Fprint(stderr, Usage(name))
		return nil, 1, false
	}

	if *help {
		fmt.Fprint(stdout, Usage(name))
		return nil, 0, false
	}

	if verbosity > maxVerbosity {
		verbosity = maxVerbosity
	}

	childArgv := fs.Args()
	if len(childArgv) == 0 {
		fmt.Fprint(stderr, Usage(name))
		return nil, 1, false
	}

	return &Options{Verbosity: verbosity, ChildArgv: childArgv}, 0, true
}

// Usage renders the usage banner: program name, version, git commit,
// invocation shape, and option list.
func Usage(name string) string {
	return fmt.Sprintf(
		"%s (version %s - %s)\n"+
			"Usage: %s [OPTIONS] PROGRAM [ARGS...]\n\n"+
			"Execute a program under the supervision of a valid init process (%s)\n\n"+
			"  -h: Show this help message and exit.\n"+
			"  -v: Generate more verbose output. Repeat up to 4 times.\n\n",
		name, buildinfo.Version, buildinfo.GitCommit, name, name,
	)
}
