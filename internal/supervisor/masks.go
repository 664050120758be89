// Copyright 2015 Apcera Inc. All rights reserved.

package supervisor

import (
	"os"
	"os/signal"
)

// ChildMask documents that the child process, immediately before its image
// is replaced, must have the pre-supervisor signal disposition restored.
//
// Go's os/signal package implements blocking via handler registration, not
// via a kernel-level signal mask, so there is no mask value that crosses
// fork() and needs restoring with a second syscall in the child. A freshly
// exec'd image always starts with default disposition for every signal
// (exec() only preserves a kernel-level blocked-signal mask, and os/signal
// never installs one); the parent mask's effect ends the moment the
// child's exec() succeeds. Spawn takes a ChildMask value purely to keep the
// call signature honest about that restoration step, even though, for this
// implementation, performing it is a no-op.
type ChildMask struct{}

// PrepareMasks installs the parent mask: every catchable signal is
// registered for synchronous retrieval on the returned channel, except the
// fault signals in faultSignals, which are left with their default
// disposition via signal.Reset. It returns the channel and the ChildMask
// that must later be threaded through Spawn.
//
// signal.Notify/signal.Reset have no failure mode in the Go runtime for a
// call with no arguments or with the fixed faultSignals list, so this
// always succeeds; it still returns an error so a genuine setup failure
// would be fatal and so the call site stays uniform with the other setup
// steps.
func PrepareMasks() (chan os.Signal, ChildMask, error) {
	parentSignals := make(chan os.Signal, 128)
	signal.Notify(parentSignals)
	signal.Reset(faultSignals...)
	return parentSignals, ChildMask{}, nil
}
