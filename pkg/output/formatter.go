package output

import (
	"io"

	"github.com/sdejongh/lsdups/pkg/models"
)

// Formatter defines the interface for rendering scan results
// Implementations include human-readable, JSON and progress formatters
type Formatter interface {
	// Start initializes the formatter for a new scan of root
	Start(writer io.Writer, root string) error

	// Progress reports a collected file during the walk
	Progress(path string) error

	// Complete renders the final report
	Complete(report *models.ScanReport) error

	// Error reports an error during the scan
	Error(err error) error

	// Name returns the formatter name
	Name() string
}
