package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/sdejongh/lsdups/internal/platform"
	"github.com/sdejongh/lsdups/pkg/config"
	"github.com/sdejongh/lsdups/pkg/models"
)

// validateScanFlags validates the scan command flags
func validateScanFlags() error {
	if err := platform.ValidatePath(scanFlags.Dir); err != nil {
		return err
	}

	// Validate the root directory
	info, err := os.Stat(scanFlags.Dir)
	if os.IsNotExist(err) {
		return fmt.Errorf("directory does not exist: %s", scanFlags.Dir)
	} else if err != nil {
		return fmt.Errorf("failed to access directory: %w", err)
	} else if !info.IsDir() {
		return fmt.Errorf("path exists but is not a directory: %s", scanFlags.Dir)
	}

	// Validate output format
	if scanFlags.Output != "" {
		validFormats := map[string]bool{
			"human": true,
			"json":  true,
		}
		if !validFormats[scanFlags.Output] {
			return fmt.Errorf("invalid output format: %s (valid: human, json)", scanFlags.Output)
		}
	}

	// Validate report format
	validReportFormats := map[string]bool{
		"human": true,
		"json":  true,
	}
	if !validReportFormats[scanFlags.ReportFormat] {
		return fmt.Errorf("invalid report format: %s (valid: human, json)", scanFlags.ReportFormat)
	}

	return nil
}

// loadConfig loads configuration from file or returns default
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// applyFlagsToConfig overrides config values with command-line flags
func applyFlagsToConfig(cfg *config.Config) {
	// Filename pattern
	if scanFlags.Pattern != "" {
		cfg.Scan.Pattern = scanFlags.Pattern
	}

	// Skip pattern
	if scanFlags.SkipPattern != "" {
		cfg.Scan.SkipPattern = scanFlags.SkipPattern
	}

	// Minimum group total size
	if scanFlags.MinSize > 0 {
		cfg.Scan.MinGroupTotalSize = scanFlags.MinSize
	}

	// Show single-member groups
	if scanFlags.Verbose {
		cfg.Scan.Verbose = true
	}

	// Excluded directories
	if len(scanFlags.Exclude) > 0 {
		cfg.Exclude = scanFlags.Exclude
	}

	// Output format
	if scanFlags.Output != "" {
		cfg.Output.Format = scanFlags.Output
	}

	// Disable progress in quiet mode
	if globalFlags.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	}
}

// createScanOperation creates a scan operation from configuration
func createScanOperation(cfg *config.Config) (*models.ScanOperation, error) {
	operation := &models.ScanOperation{
		ID:                uuid.New().String(),
		RootPath:          platform.NormalizePath(scanFlags.Dir),
		Pattern:           cfg.Scan.Pattern,
		SkipPattern:       cfg.Scan.SkipPattern,
		ExcludeDirs:       cfg.Exclude,
		Verbose:           cfg.Scan.Verbose,
		MinGroupTotalSize: cfg.Scan.MinGroupTotalSize,
		Output:            models.OutputFormat(cfg.Output.Format),
		CreatedAt:         time.Now(),
	}

	if err := operation.Validate(); err != nil {
		return nil, err
	}

	return operation, nil
}
