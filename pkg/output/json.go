package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/sdejongh/lsdups/pkg/models"
)

// JSONFormatter renders the report as a single JSON document
// for automation and scripting
type JSONFormatter struct {
	writer io.Writer
}

// JSONReportData is the top-level JSON document
type JSONReportData struct {
	Metadata JSONMetadata       `json:"metadata"`
	Summary  JSONSummaryData    `json:"summary"`
	Groups   []models.FileGroup `json:"groups"`
	Errors   []JSONErrorData    `json:"errors,omitempty"`
}

// JSONMetadata describes the scan that produced the report
type JSONMetadata struct {
	OperationID string `json:"operation_id"`
	RootPath    string `json:"root_path"`
	Pattern     string `json:"pattern"`
	SkipPattern string `json:"skip_pattern,omitempty"`
	Verbose     bool   `json:"verbose"`
	Generated   string `json:"generated"`
	Duration    string `json:"duration"`
	DurationMs  int64  `json:"duration_ms"`
	Status      string `json:"status"`
}

// JSONSummaryData holds the aggregate figures
type JSONSummaryData struct {
	TotalRecords     int     `json:"total_records"`
	TotalSize        uint64  `json:"total_size"`
	TotalSizeMB      float64 `json:"total_size_mb"`
	DuplicatedSize   uint64  `json:"duplicated_size"`
	DuplicatedSizeMB float64 `json:"duplicated_size_mb"`
	DuplicateGroups  int     `json:"duplicate_groups"`
}

// JSONErrorData represents a skipped entry
type JSONErrorData struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Start initializes the formatter
func (f *JSONFormatter) Start(writer io.Writer, root string) error {
	if writer == nil {
		writer = os.Stdout
	}
	f.writer = writer
	return nil
}

// Progress does nothing; JSON output is a single document
func (f *JSONFormatter) Progress(path string) error {
	return nil
}

// Complete renders the final report as indented JSON
func (f *JSONFormatter) Complete(report *models.ScanReport) error {
	if f.writer == nil {
		f.writer = io.Discard
	}

	var errors []JSONErrorData
	for _, e := range report.Errors {
		errors = append(errors, JSONErrorData{
			Path:  e.Path,
			Error: e.Error,
		})
	}

	groups := report.Groups
	if groups == nil {
		groups = models.GroupingResult{}
	}

	doc := JSONReportData{
		Metadata: JSONMetadata{
			OperationID: report.OperationID,
			RootPath:    report.RootPath,
			Pattern:     report.Pattern,
			SkipPattern: report.SkipPattern,
			Verbose:     report.Verbose,
			Generated:   time.Now().Format(time.RFC3339),
			Duration:    report.Duration.Round(time.Millisecond).String(),
			DurationMs:  report.Duration.Milliseconds(),
			Status:      string(report.Status),
		},
		Summary: JSONSummaryData{
			TotalRecords:     report.Summary.TotalRecords,
			TotalSize:        report.Summary.TotalSize,
			TotalSizeMB:      toMB(report.Summary.TotalSize),
			DuplicatedSize:   report.Summary.DuplicatedSize,
			DuplicatedSizeMB: toMB(report.Summary.DuplicatedSize),
			DuplicateGroups:  report.DuplicateGroupCount(),
		},
		Groups: groups,
		Errors: errors,
	}

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

// Error reports an error as a JSON object
func (f *JSONFormatter) Error(err error) error {
	if f.writer == nil {
		return nil
	}
	return json.NewEncoder(f.writer).Encode(map[string]string{"error": err.Error()})
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}
