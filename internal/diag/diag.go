// Copyright 2015 Apcera Inc. All rights reserved.

// Package diag wires up leveled diagnostic output — fatal/warn to standard
// error, info/debug/trace to standard out, each with a bracketed level tag —
// on top of github.com/apcera/logray.
//
// logray does not expose a public Fatal emission method (only Trace, Debug,
// Info, Warn and Error, each with an f-suffixed variant); Fatalf here rides
// on logray's Error class, its most severe emittable level. "Fatal" in this
// program is a control-flow property — the caller always exits immediately
// afterwards — rather than a distinct log line class.
package diag

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/apcera/logray"
)

// formatString gives each line a bracketed "[LEVEL]" tag ahead of the
// message, colored by class.
const formatString = "%color:class%[%classfixed%]%color:default% %message%"

// Level is the verbosity level selected on the command line. 0 is the
// quietest (fatal/error only); 4 is the loudest (everything, including
// trace).
type Level int

const (
	LevelError Level = 0
	LevelWarn  Level = 1
	LevelInfo  Level = 2
	LevelDebug Level = 3
	LevelTrace Level = 4
)

// classFor returns the cumulative logray class for a verbosity level.
func classFor(level Level) logray.LogClass {
	switch {
	case level <= LevelError:
		return logray.ERRORPLUS
	case level == LevelWarn:
		return logray.WARNPLUS
	case level == LevelInfo:
		return logray.INFOPLUS
	case level == LevelDebug:
		return logray.DEBUGPLUS
	default:
		return logray.ALL
	}
}

// New configures logray's default outputs for the given verbosity level and
// returns a fresh Logger. Errors and warnings go to standard error; info,
// debug, and trace go to standard out.
func New(level Level) *logray.Logger {
	logray.ResetDefaultOutput()

	class := classFor(level)

	stderrClasses := class & (logray.ERROR | logray.WARN)
	if stderrClasses != logray.NONE {
		logray.AddDefaultOutput(outputURI("stderr"), stderrClasses)
	}

	stdoutClasses := class & (logray.INFO | logray.DEBUG | logray.TRACE)
	if stdoutClasses != logray.NONE {
		logray.AddDefaultOutput(outputURI("stdout"), stdoutClasses)
	}

	return logray.New()
}

func outputURI(scheme string) string {
	u := url.URL{
		Scheme: scheme,
		RawQuery: url.Values{
			"format": []string{formatString},
		}.Encode(),
	}
	return u.String()
}

// Fatalf logs msg at logray's Error class (see package doc) and returns it
// formatted, for the caller to act on by exiting with a non-zero status.
func Fatalf(log *logray.Logger, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	log.Error(msg)
	return errors.New(msg)
}
