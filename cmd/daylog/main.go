// Package main provides the daylog CLI.
package main

import (
	"errors"
	"os"

	"github.com/mesh-intelligence/daylog/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode classifies an error: configuration and input errors are user
// errors, everything else is a system error.
func exitCode(err error) int {
	switch {
	case errors.Is(err, types.ErrNoRecordFiles),
		errors.Is(err, types.ErrEmptyRange),
		errors.Is(err, types.ErrFolderEmpty),
		errors.Is(err, types.ErrDateInvalid),
		errors.Is(err, types.ErrRangeInverted):
		return exitUserError
	default:
		return exitSysError
	}
}
