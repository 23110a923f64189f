package models

import (
	"time"
)

// OutputFormat defines how results are rendered
type OutputFormat string

const (
	// FormatHuman renders a human-readable listing
	FormatHuman OutputFormat = "human"
	// FormatJSON renders a single JSON document
	FormatJSON OutputFormat = "json"
)

// ScanOperation represents a scan configuration
type ScanOperation struct {
	ID                string
	RootPath          string
	Pattern           string
	SkipPattern       string
	ExcludeDirs       []string
	Verbose           bool
	MinGroupTotalSize uint64
	Output            OutputFormat
	CreatedAt         time.Time
	StartedAt         *time.Time
	CompletedAt       *time.Time
}

// Validate checks if the operation configuration is valid
func (op *ScanOperation) Validate() error {
	if op.RootPath == "" {
		return &ValidationError{Field: "RootPath", Message: "root path is required"}
	}
	if op.Pattern == "" {
		return &ValidationError{Field: "Pattern", Message: "pattern is required"}
	}
	if op.Output != FormatHuman && op.Output != FormatJSON {
		return &ValidationError{Field: "Output", Message: "output format must be 'human' or 'json'"}
	}
	return nil
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
