// Copyright 2015 Apcera Inc. All rights reserved.

package supervisor

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/apcera/logray"
)

// waitAndForward waits up to pollInterval for one signal from
// parentSignals. A timeout returns nil with no side effect. SIGCHLD is
// swallowed (the reaper handles it next). Every other signal is forwarded
// to proc; ESRCH (the child is already gone) is downgraded to a warning.
func waitAndForward(parentSignals <-chan os.Signal, proc *os.Process, log *logray.Logger) error {
	timer := time.NewTimer(pollInterval)
	defer timer.Stop()

	select {
	case sig := <-parentSignals:
		return forwardSignal(sig, proc, log)
	case <-timer.C:
		return nil
	}
}

func forwardSignal(sig os.Signal, proc *os.Process, log *logray.Logger) error {
	if sig == syscall.SIGCHLD {
		log.Tracef("received SIGCHLD")
		return nil
	}

	log.Debugf("passing signal: %v", sig)
	if err := proc.Signal(sig); err != nil {
		if isProcessGone(err) {
			log.Warnf("child was dead when forwarding signal")
			return nil
		}
		return fmt.Errorf("forwarding signal %v: %w", sig, err)
	}
	return nil
}

// isProcessGone reports whether err indicates the target process no longer
// exists — the kernel's ESRCH, or os.Process's own "already waited on"
// sentinel for processes this program has already reaped.
func isProcessGone(err error) bool {
	return errors.Is(err, syscall.ESRCH) || errors.Is(err, os.ErrProcessDone)
}
