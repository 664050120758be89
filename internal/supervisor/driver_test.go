// Copyright 2015 Apcera Inc. All rights reserved.

package supervisor

import (
	"os"
	"syscall"
	"testing"
	"time"

	tt "github.com/apcera/util/testtool"
)

// newTestRunner builds a Runner around a fresh parent-signal channel,
// mirroring PrepareMasks but without resetting process-wide fault-signal
// dispositions on every call (tests run many Runners in one binary).
func newTestRunner(argv []string) (*Runner, chan os.Signal) {
	ch := make(chan os.Signal, 128)
	return NewRunner(testLogger(), ch, ChildMask{}, argv), ch
}

// Normal exit propagates the child's own exit code.
func TestRunnerNormalExit(t *testing.T) {
	r, _ := newTestRunner([]string{"/bin/sh", "-c", "exit 42"})
	tt.TestEqual(t, r.Run(), 42)
}

// Death by signal propagates 128+signal.
func TestRunnerSignalDeath(t *testing.T) {
	r, _ := newTestRunner([]string{"/bin/sh", "-c", "kill -TERM $$"})
	tt.TestEqual(t, r.Run(), 128+int(syscall.SIGTERM))
}

// A signal delivered to the supervisor is forwarded to the child.
func TestRunnerForwardsSignal(t *testing.T) {
	r, ch := newTestRunner([]string{"/bin/sh", "-c", `trap "exit 7" USR1; sleep 30 & wait`})

	done := make(chan int, 1)
	go func() { done <- r.Run() }()

	// Give the shell a moment to install its trap before signaling it.
	time.Sleep(100 * time.Millisecond)
	ch <- syscall.SIGUSR1

	select {
	case code := <-done:
		tt.TestEqual(t, code, 7)
	case <-time.After(5 * time.Second):
		tt.Fatalf(t, "runner did not exit after forwarding SIGUSR1")
	}
}

// Extra descendants terminating alongside the main child must not confuse
// the reap loop or stall the exit it's waiting for. (Real PID 1
// additionally inherits orphaned grandchildren straight from the kernel,
// which this single-process test cannot reproduce; reapAll's WNOHANG drain
// loop already reaps whatever such descendants it is handed, matching on
// mainPID and ignoring everything else — see TestReapAllIgnoresUnrelatedChildren.)
func TestRunnerReapsOrphanedGrandchild(t *testing.T) {
	r, _ := newTestRunner([]string{"/bin/sh", "-c", "(sleep 0.1 &) ; exec sleep 0.5"})
	tt.TestEqual(t, r.Run(), 0)
}

// A missing program is a fatal spawn failure.
func TestRunnerMissingProgram(t *testing.T) {
	r, _ := newTestRunner([]string{"/nonexistent/bin"})
	tt.TestEqual(t, r.Run(), 1)
}
