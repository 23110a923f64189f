package output

import (
	"fmt"
	"io"
	"sync"

	"github.com/cheggaaa/pb/v3"

	"github.com/sdejongh/lsdups/pkg/models"
)

// scanTemplate shows a running file counter; the total is unknown while
// the tree is being walked, so there is no percentage bar
const scanTemplate pb.ProgressBarTemplate = `scanning {{string . "root"}} {{counter . }} files {{speed . "%s files/s" }}`

// ProgressFormatter shows a live counter while the walk runs, then the
// human-readable report
type ProgressFormatter struct {
	human *HumanFormatter

	mu     sync.Mutex
	writer io.Writer
	bar    *pb.ProgressBar
}

// NewProgressFormatter creates a new progress formatter
func NewProgressFormatter() *ProgressFormatter {
	return &ProgressFormatter{
		human: NewHumanFormatter(),
	}
}

// Start initializes the formatter and starts the counter
func (f *ProgressFormatter) Start(writer io.Writer, root string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.writer = writer

	bar := scanTemplate.New(0)
	bar.Set("root", root)
	if writer != nil {
		bar.SetWriter(writer)
	}
	bar.Start()
	f.bar = bar

	return nil
}

// Progress advances the counter by one file
func (f *ProgressFormatter) Progress(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.bar != nil {
		f.bar.Increment()
	}
	return nil
}

// Complete stops the counter and renders the human report
func (f *ProgressFormatter) Complete(report *models.ScanReport) error {
	f.mu.Lock()
	if f.bar != nil {
		f.bar.Finish()
		f.bar = nil
	}
	writer := f.writer
	f.mu.Unlock()

	if writer == nil {
		writer = io.Discard
	}
	return f.human.render(writer, report)
}

// Error stops the counter and reports the error
func (f *ProgressFormatter) Error(err error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.bar != nil {
		f.bar.Finish()
		f.bar = nil
	}
	if f.writer != nil {
		fmt.Fprintf(f.writer, "Error: %v\n", err)
	}
	return nil
}

// Name returns the formatter name
func (f *ProgressFormatter) Name() string {
	return "progress"
}
