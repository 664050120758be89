// Copyright 2015 Apcera Inc. All rights reserved.

package supervisor

import (
	"os"
	"os/exec"

	"github.com/apcera/logray"

	"github.com/apcera/subinit/internal/diag"
)

// Runner drives the supervisor through its three phases: spawning the main
// child, watching for signals and exits while it runs, and reporting the
// exit code once it's gone. It is a small struct carrying the state each
// phase needs.
type Runner struct {
	log           *logray.Logger
	parentSignals chan os.Signal
	childMask     ChildMask
	argv          []string

	cmd       *exec.Cmd
	exitCode  int
	exitKnown bool
}

// NewRunner builds a Runner from the already-prepared signal masks
// (parentSignals/childMask come from PrepareMasks, which must run before
// argument parsing — masks need to be installed before anything else
// touches the process).
func NewRunner(log *logray.Logger, parentSignals chan os.Signal, childMask ChildMask, argv []string) *Runner {
	return &Runner{
		log:           log,
		parentSignals: parentSignals,
		childMask:     childMask,
		argv:          argv,
		exitCode:      noExitCode,
	}
}

// Run spawns the main child and drives the wait/forward/reap loop until
// the main child has exited and a reap pass has found nothing left
// pending. It returns the process's own exit code.
func (r *Runner) Run() int {
	if err := r.spawn(); err != nil {
		diag.Fatalf(r.log, "%v", err)
		return 1
	}

	for {
		if err := r.waitAndForward(); err != nil {
			diag.Fatalf(r.log, "%v", err)
			return 1
		}

		if err := r.reap(); err != nil {
			diag.Fatalf(r.log, "%v", err)
			return 1
		}

		if r.exitKnown {
			r.log.Tracef("main child has exited, exiting")
			return r.exitCode
		}
	}
}

func (r *Runner) spawn() error {
	stdin, stdout, stderr := stdio()
	cmd, err := Spawn(r.childMask, r.argv, stdin, stdout, stderr)
	if err != nil {
		return err
	}
	r.log.Infof("spawned child process %q with pid %d", r.argv[0], cmd.Process.Pid)
	r.cmd = cmd
	return nil
}

func (r *Runner) waitAndForward() error {
	return waitAndForward(r.parentSignals, r.cmd.Process, r.log)
}

func (r *Runner) reap() error {
	result, err := reapAll(r.cmd.Process.Pid, r.log)
	if err != nil {
		return err
	}
	if result.exited && !r.exitKnown {
		r.exitKnown = true
		r.exitCode = result.exitCode
	}
	return nil
}
