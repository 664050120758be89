// Copyright 2015 Apcera Inc. All rights reserved.

package supervisor

import (
	"os"
	"syscall"
	"time"
)

// pollInterval bounds how long waitAndForward blocks for a single signal.
// Fixed at one second; this is not exposed as a runtime knob.
const pollInterval = time.Second

// faultSignals are synchronous, program-error signals that must keep their
// default disposition rather than being queued for synchronous retrieval —
// a bug in the supervisor itself should core-dump or terminate normally,
// not be silently absorbed by the timed wait.
var faultSignals = []os.Signal{
	syscall.SIGFPE,
	syscall.SIGILL,
	syscall.SIGSEGV,
	syscall.SIGBUS,
	syscall.SIGABRT,
	syscall.SIGTRAP,
	syscall.SIGSYS,
}

// noExitCode is the "not yet known" sentinel for the main child's exit
// code. -1 is never a valid value of a low-8-bits exit status or a
// 128+signal code, so it is safe to use as a marker.
const noExitCode = -1
