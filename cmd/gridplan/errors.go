package main

import (
	"errors"

	"github.com/katalvlaran/gridnav/gridio"
	"github.com/katalvlaran/gridnav/planner"
	"github.com/katalvlaran/gridnav/search"
	"github.com/katalvlaran/gridnav/worldframe"
)

// Exit codes
const (
	// ExitSuccess indicates successful execution, including "no path found".
	ExitSuccess = 0
	// ExitError indicates a general error
	ExitError = 1
	// ExitConfigError indicates invalid configuration, flags or endpoints
	ExitConfigError = 10
	// ExitInputError indicates an unreadable or malformed grid file
	ExitInputError = 11
)

// exitCode maps an error returned by a command to a process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, planner.ErrInvalidConfig),
		errors.Is(err, search.ErrInvalidConfig),
		errors.Is(err, worldframe.ErrInvalidFrame),
		errors.Is(err, worldframe.ErrOutsideGrid),
		errors.Is(err, errUsage):
		return ExitConfigError
	case errors.Is(err, gridio.ErrFormat), errors.Is(err, gridio.ErrEmpty):
		return ExitInputError
	}
	return ExitError
}

var errUsage = errors.New("invalid usage")
