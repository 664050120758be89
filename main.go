// Copyright 2015 Apcera Inc. All rights reserved.

// Command subinit is a minimal init process: it runs as PID 1 inside an
// isolated process namespace, spawns a single user-supplied program, reaps
// orphaned descendants, and forwards signals to its child.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apcera/subinit/internal/cli"
	"github.com/apcera/subinit/internal/diag"
	"github.com/apcera/subinit/internal/supervisor"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Masks must be installed before anything else: if a forwardable signal
	// arrives between fork and the first timed wait it must not be lost.
	// This happens before argument parsing for the same reason.
	parentSignals, childMask, err := supervisor.PrepareMasks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[error] preparing signal masks: %v\n", err)
		return 1
	}

	name := filepath.Base(os.Args[0])
	opts, exitCode, proceed := cli.Parse(name, os.Args[1:], os.Stdout, os.Stderr)
	if !proceed {
		return exitCode
	}

	log := diag.New(diag.Level(opts.Verbosity))

	r := supervisor.NewRunner(log, parentSignals, childMask, opts.ChildArgv)
	return r.Run()
}
