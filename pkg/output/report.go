package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sdejongh/lsdups/pkg/models"
)

// WriteGroupReport writes the retained groups to a file
// Format can be "human" or "json"
func WriteGroupReport(report *models.ScanReport, path string, format string) error {
	if len(report.Groups) == 0 {
		// No retained groups - don't create an empty file
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	switch format {
	case "json":
		return writeGroupsJSON(report, file)
	default: // "human"
		return writeGroupsHuman(report, file)
	}
}

// writeGroupsHuman writes the groups in human-readable form
func writeGroupsHuman(report *models.ScanReport, w io.Writer) error {
	fmt.Fprintf(w, "Duplicate Name Report\n")
	fmt.Fprintf(w, "=====================\n\n")
	fmt.Fprintf(w, "Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(w, "Root: %s\n", report.RootPath)
	fmt.Fprintf(w, "Pattern: %s\n", report.Pattern)
	if report.SkipPattern != "" {
		fmt.Fprintf(w, "Skip pattern: %s\n", report.SkipPattern)
	}
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Total size: %s\n", formatBytes(report.Summary.TotalSize))
	fmt.Fprintf(w, "Duplicated size: %s\n", formatBytes(report.Summary.DuplicatedSize))
	fmt.Fprintf(w, "Groups: %d\n\n", len(report.Groups))

	for _, g := range report.Groups {
		fmt.Fprintf(w, "%s (%d files, %s)\n", g.Name, len(g.Members), formatBytes(g.TotalSize))
		for _, m := range g.Members {
			fmt.Fprintf(w, "  %12s  %s\n", formatBytes(m.Size), m.Path)
		}
		fmt.Fprintf(w, "\n")
	}

	return nil
}

// writeGroupsJSON writes the groups in JSON form
func writeGroupsJSON(report *models.ScanReport, w io.Writer) error {
	doc := struct {
		Generated  string                `json:"generated"`
		RootPath   string                `json:"root_path"`
		Pattern    string                `json:"pattern"`
		TotalCount int                   `json:"total_count"`
		Summary    models.Summary        `json:"summary"`
		Groups     models.GroupingResult `json:"groups"`
	}{
		Generated:  time.Now().Format(time.RFC3339),
		RootPath:   report.RootPath,
		Pattern:    report.Pattern,
		TotalCount: len(report.Groups),
		Summary:    report.Summary,
		Groups:     report.Groups,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}
