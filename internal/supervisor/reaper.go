// Copyright 2015 Apcera Inc. All rights reserved.

package supervisor

import (
	"fmt"
	"syscall"

	"github.com/apcera/logray"
)

// UnknownTerminationError is returned when a reaped descendant's wait
// status is neither a normal exit nor a signal death. This is a defensive
// fatal: reapAll only asks the kernel for terminated children (WNOHANG, no
// WUNTRACED/WCONTINUED), so this should never legitimately happen.
type UnknownTerminationError struct {
	PID    int
	Status syscall.WaitStatus
}

func (e *UnknownTerminationError) Error() string {
	return fmt.Sprintf("main child %d terminated with unrecognized status %#v", e.PID, e.Status)
}

// reapResult carries what one drain pass learned about the main child.
type reapResult struct {
	exited   bool
	exitCode int
}

// reapAll drains every currently-terminated descendant without blocking,
// recording mainPID's exit code if it was among them. It loops until the
// kernel reports either "nothing ready" or "no children at all"
// (syscall.ECHILD), both of which are non-fatal.
func reapAll(mainPID int, log *logray.Logger) (reapResult, error) {
	var result reapResult

	for {
		var status syscall.WaitStatus
		pid, err := syscall.Wait4(-1, &status, syscall.WNOHANG, nil)
		if err != nil {
			if err == syscall.ECHILD {
				log.Tracef("no descendants to reap")
				return result, nil
			}
			return result, fmt.Errorf("wait4: %w", err)
		}

		if pid <= 0 {
			return result, nil
		}

		log.Debugf("reaped pid %d", pid)
		if pid != mainPID {
			continue
		}

		switch {
		case status.Exited():
			result.exited = true
			result.exitCode = status.ExitStatus()
			log.Infof("main child exited normally (status %d)", result.exitCode)
		case status.Signaled():
			result.exited = true
			result.exitCode = 128 + int(status.Signal())
			log.Infof("main child exited with signal %v", status.Signal())
		default:
			return result, &UnknownTerminationError{PID: pid, Status: status}
		}
	}
}
