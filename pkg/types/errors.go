package types

import "errors"

// Repository errors. Both are terminal for the invocation: the caller is
// expected to adjust the folder or range and retry. Call sites wrap them
// with the attempted folder and range.
var (
	// ErrNoRecordFiles means the folder holds no files with a valid
	// yyyy-mm-dd name prefix at all.
	ErrNoRecordFiles = errors.New("no record files found")

	// ErrEmptyRange means record files exist but none fall inside the
	// requested inclusive date range.
	ErrEmptyRange = errors.New("no record files in date range")
)
