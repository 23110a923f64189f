package models

import (
	"time"
)

// ScanReport represents the results of a scan operation
type ScanReport struct {
	// Operation details
	OperationID string
	RootPath    string
	Pattern     string
	SkipPattern string
	Verbose     bool

	// Timing
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// Aggregate figures over every scanned record
	Summary Summary

	// Groups retained after filtering, largest total first
	Groups GroupingResult

	// Errors encountered during the walk (skipped entries)
	Errors []ScanError

	// Overall status
	Status ScanStatus
}

// DuplicateGroupCount returns the number of retained groups with >= 2 members
func (r *ScanReport) DuplicateGroupCount() int {
	count := 0
	for i := range r.Groups {
		if r.Groups[i].IsDuplicate() {
			count++
		}
	}
	return count
}

// ScanStatus represents the overall result
type ScanStatus string

const (
	// StatusSuccess indicates the scan completed
	StatusSuccess ScanStatus = "success"
	// StatusFailed indicates the scan failed
	StatusFailed ScanStatus = "failed"
	// StatusCancelled indicates the operation was cancelled
	StatusCancelled ScanStatus = "cancelled"
)

// ScanError represents an entry skipped during the walk
type ScanError struct {
	Path      string
	Error     string
	Timestamp time.Time
}

// ExitCode returns the appropriate exit code for the scan status
func (s ScanStatus) ExitCode() int {
	switch s {
	case StatusSuccess:
		return 0
	case StatusFailed:
		return 2
	case StatusCancelled:
		return 3
	default:
		return 2
	}
}
