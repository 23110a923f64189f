package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"time"

	"github.com/spf13/cobra"

	"github.com/sdejongh/lsdups/pkg/grouping"
	"github.com/sdejongh/lsdups/pkg/logging"
	"github.com/sdejongh/lsdups/pkg/models"
	"github.com/sdejongh/lsdups/pkg/output"
	"github.com/sdejongh/lsdups/pkg/scanner"
)

// ScanFlags holds scan command flags
type ScanFlags struct {
	Dir          string
	Pattern      string
	SkipPattern  string
	MinSize      uint64
	Verbose      bool
	Exclude      []string
	Output       string
	Report       string
	ReportFormat string
	// Logging flags
	LogFile   string
	LogFormat string
	LogLevel  string
}

var scanFlags ScanFlags

// NewScanCommand creates the scan command
func NewScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a directory tree for files sharing a name",
		Long: `Scan a directory tree and report files that share an identical filename,
grouped and ranked by aggregate size. Content is never inspected: two files
with the same name count as duplicates regardless of their bytes.`,
		RunE: runScan,
	}

	cmd.Flags().StringVarP(&scanFlags.Dir, "dir", "d", ".", "directory to traverse")
	cmd.Flags().StringVarP(&scanFlags.Pattern, "pattern", "p", "", "filename pattern (case-insensitive regex, default: all files)")
	cmd.Flags().StringVar(&scanFlags.SkipPattern, "filter", "", "filename pattern to skip (case-insensitive regex)")
	cmd.Flags().Uint64Var(&scanFlags.MinSize, "size", 0, "hide groups whose total size is below this many bytes")
	cmd.Flags().BoolVarP(&scanFlags.Verbose, "verbose", "v", false, "also show files without a name duplicate")
	cmd.Flags().StringSliceVar(&scanFlags.Exclude, "exclude", []string{}, "directory names to prune from the walk")
	cmd.Flags().StringVarP(&scanFlags.Output, "output", "o", "", "output format: human, json")
	cmd.Flags().StringVar(&scanFlags.Report, "report", "", "write the retained groups to a file")
	cmd.Flags().StringVar(&scanFlags.ReportFormat, "report-format", "human", "report file format: human, json")

	// Logging flags
	cmd.Flags().StringVar(&scanFlags.LogFile, "log-file", "", "write logs to file (enables logging)")
	cmd.Flags().StringVar(&scanFlags.LogFormat, "log-format", "text", "log format: text, json")
	cmd.Flags().StringVar(&scanFlags.LogLevel, "log-level", "info", "log level: debug, info, warn, error")

	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Validate flags
	if err := validateScanFlags(); err != nil {
		return err
	}

	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with command-line flags
	applyFlagsToConfig(cfg)

	// Create scan operation
	operation, err := createScanOperation(cfg)
	if err != nil {
		return fmt.Errorf("failed to create scan operation: %w", err)
	}

	// Compile filename patterns
	pattern, err := scanner.CompileNamePattern(operation.Pattern)
	if err != nil {
		return err
	}

	var skipPattern *regexp.Regexp
	if operation.SkipPattern != "" {
		skipPattern, err = scanner.CompileNamePattern(operation.SkipPattern)
		if err != nil {
			return err
		}
	}

	// Create logger
	logger, err := createLogger(scanFlags.LogFile, scanFlags.LogFormat, scanFlags.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()
	logger = logger.WithFields(logging.Fields{"operation_id": operation.ID})

	// Create output formatter
	var formatter output.Formatter
	switch operation.Output {
	case models.FormatJSON:
		formatter = output.NewJSONFormatter()
	default:
		if cfg.Output.Progress {
			formatter = output.NewProgressFormatter()
		} else {
			formatter = output.NewHumanFormatter()
		}
	}

	var writer io.Writer = os.Stdout
	if cfg.Output.Quiet {
		writer = io.Discard
	}
	if err := formatter.Start(writer, operation.RootPath); err != nil {
		return fmt.Errorf("failed to start formatter: %w", err)
	}

	logger.Info(ctx, "scan started", logging.Fields{
		"root":    operation.RootPath,
		"pattern": operation.Pattern,
	})

	// Collect the record set
	started := time.Now()
	sc := scanner.New(scanner.Config{
		Pattern:     pattern,
		SkipPattern: skipPattern,
		ExcludeDirs: operation.ExcludeDirs,
		Progress: func(path string) {
			formatter.Progress(path)
		},
	})

	records, skipped, err := sc.Scan(ctx, operation.RootPath)
	if err != nil {
		formatter.Error(err)
		logger.Error(ctx, "scan failed", err, nil)

		status := models.StatusFailed
		if ctx.Err() != nil {
			status = models.StatusCancelled
		}
		os.Exit(status.ExitCode())
	}

	// Group, summarize and filter
	result := grouping.Group(records)
	summary := grouping.Summarize(records, result)
	retained := grouping.Filter(result, operation.Verbose, operation.MinGroupTotalSize)

	report := &models.ScanReport{
		OperationID: operation.ID,
		RootPath:    operation.RootPath,
		Pattern:     operation.Pattern,
		SkipPattern: operation.SkipPattern,
		Verbose:     operation.Verbose,
		StartTime:   started,
		EndTime:     time.Now(),
		Duration:    time.Since(started),
		Summary:     summary,
		Groups:      retained,
		Errors:      skipped,
		Status:      models.StatusSuccess,
	}

	logger.Info(ctx, "scan completed", logging.Fields{
		"records":          summary.TotalRecords,
		"groups":           len(result),
		"retained_groups":  len(retained),
		"duplicated_bytes": summary.DuplicatedSize,
		"skipped":          len(skipped),
		"duration_ms":      report.Duration.Milliseconds(),
	})

	if err := formatter.Complete(report); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	// Write group report file if requested
	if scanFlags.Report != "" {
		if err := output.WriteGroupReport(report, scanFlags.Report, scanFlags.ReportFormat); err != nil {
			return fmt.Errorf("failed to write group report: %w", err)
		}
	}

	// Exit with appropriate code
	os.Exit(report.Status.ExitCode())
	return nil
}

// createLogger creates a logger based on configuration
func createLogger(logFile, logFormat, logLevel string) (logging.Logger, error) {
	// If no log file specified, return null logger
	if logFile == "" {
		return logging.NewNullLogger(), nil
	}

	var format logging.Format
	switch logFormat {
	case "json":
		format = logging.FormatJSON
	default:
		format = logging.FormatText
	}

	config := logging.FileLoggerConfig{
		Path:       logFile,
		Format:     format,
		Level:      logging.ParseLevel(logLevel),
		MaxSize:    10 * 1024 * 1024, // 10 MB
		MaxBackups: 5,
	}

	return logging.NewFileLogger(config)
}
