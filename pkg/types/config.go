package types

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar date format used in file name prefixes and
// configuration values.
const DateLayout = "2006-01-02"

// Config holds the pipeline inputs: the notes folder and the inclusive
// date range to load.
type Config struct {
	Folder    string `json:"folder" yaml:"folder"`
	StartDate string `json:"start_date" yaml:"start_date"`
	EndDate   string `json:"end_date" yaml:"end_date"`
}

// Config validation errors.
var (
	ErrFolderEmpty   = errors.New("folder must not be empty")
	ErrDateInvalid   = errors.New("date must be yyyy-mm-dd")
	ErrRangeInverted = errors.New("end date precedes start date")
)

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure, wrapped with the offending value.
func (c Config) Validate() error {
	if c.Folder == "" {
		return ErrFolderEmpty
	}
	start, err := time.Parse(DateLayout, c.StartDate)
	if err != nil {
		return fmt.Errorf("%w: start_date %q", ErrDateInvalid, c.StartDate)
	}
	end, err := time.Parse(DateLayout, c.EndDate)
	if err != nil {
		return fmt.Errorf("%w: end_date %q", ErrDateInvalid, c.EndDate)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: %s..%s", ErrRangeInverted, c.StartDate, c.EndDate)
	}
	return nil
}

// Range returns the parsed inclusive date bounds. Call Validate first;
// Range repeats the same parse errors otherwise.
func (c Config) Range() (start, end time.Time, err error) {
	start, err = time.Parse(DateLayout, c.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date %q", ErrDateInvalid, c.StartDate)
	}
	end, err = time.Parse(DateLayout, c.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date %q", ErrDateInvalid, c.EndDate)
	}
	return start, end, nil
}
