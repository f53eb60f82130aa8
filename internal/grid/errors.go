package grid

import (
	"fmt"
	"time"
)

// ValidationError reports a day that would receive more categories than it has rows
type ValidationError struct {
	Day      DayKey
	Existing CategorySet
	Added    Category
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("too many events per day on %s: %s already assigned, cannot add %s",
		e.Day, e.Existing, e.Added.Abbrev())
}

// ClassificationError reports an event whose text matches no category rule
type ClassificationError struct {
	Date    time.Time
	Summary string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("cannot classify event on %s: %q matches no waste category",
		e.Date.Format("2006-01-02"), e.Summary)
}

// EmptyYearError reports input events that all lie outside the year of the sheet
type EmptyYearError struct {
	Year        int
	Events      int
	First, Last time.Time
}

func (e *EmptyYearError) Error() string {
	return fmt.Sprintf("none of the %d events falls into %d, input covers %s to %s",
		e.Events, e.Year, e.First.Format("2006-01-02"), e.Last.Format("2006-01-02"))
}

// ConfigurationError reports a malformed entry in the holiday table
type ConfigurationError struct {
	Source string
	Key    string
	Value  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("did not understand date in %s: %s = %q", e.Source, e.Key, e.Value)
}

// IOError wraps a failure of an event source or document sink
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
