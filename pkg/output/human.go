package output

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/sdejongh/lsdups/pkg/models"
)

// HumanFormatter renders results in human-readable form
type HumanFormatter struct {
	writer      io.Writer
	headerColor *color.Color
}

// NewHumanFormatter creates a new human-readable formatter
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{
		headerColor: color.New(color.FgCyan, color.Bold),
	}
}

// Start initializes the formatter
func (f *HumanFormatter) Start(writer io.Writer, root string) error {
	f.writer = writer
	return nil
}

// Progress does nothing; the human formatter only renders the final report
func (f *HumanFormatter) Progress(path string) error {
	return nil
}

// Complete renders the summary and the retained groups
func (f *HumanFormatter) Complete(report *models.ScanReport) error {
	if f.writer == nil {
		f.writer = io.Discard
	}
	return f.render(f.writer, report)
}

// render writes the full report in a single pass
func (f *HumanFormatter) render(w io.Writer, report *models.ScanReport) error {
	fmt.Fprintf(w, "found %d files in %d ms\n", report.Summary.TotalRecords,
		report.Duration.Round(time.Millisecond).Milliseconds())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "total size for %d files is         %.3f MB\n",
		report.Summary.TotalRecords, toMB(report.Summary.TotalSize))
	fmt.Fprintf(w, "total size for duplicated files is %.3f MB\n",
		toMB(report.Summary.DuplicatedSize))
	fmt.Fprintln(w)

	for _, g := range report.Groups {
		header := fmt.Sprintf("%s * %d, totalSize: %.3f MB", g.Name, len(g.Members), toMB(g.TotalSize))
		fmt.Fprintf(w, "\n%s\n", f.headerColor.Sprint(header))
		fmt.Fprintln(w, "----------------------------------------")
		for _, m := range g.Members {
			fmt.Fprintf(w, "%6.3f   %s\n", toMB(m.Size), m.Path)
		}
	}

	fmt.Fprintln(w)

	if len(report.Errors) > 0 {
		fmt.Fprintf(w, "skipped %d unreadable entries\n", len(report.Errors))
	}

	return nil
}

// Error reports an error
func (f *HumanFormatter) Error(err error) error {
	if f.writer != nil {
		fmt.Fprintf(f.writer, "Error: %v\n", err)
	}
	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}

// toMB scales a byte count to megabytes
func toMB(numBytes uint64) float64 {
	return float64(numBytes) / 1024.0 / 1024.0
}

// formatBytes formats bytes in human-readable form
func formatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
