package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/sdejongh/lsdups/pkg/models"
)

// Config defines the rules for a scan
type Config struct {
	// Pattern filters filenames; only matching files are collected.
	// Nil collects every file.
	Pattern *regexp.Regexp

	// SkipPattern excludes matching filenames. Nil disables skipping.
	SkipPattern *regexp.Regexp

	// ExcludeDirs lists directory names pruned from the walk
	ExcludeDirs []string

	// Progress, if set, is called once per collected record
	Progress func(path string)
}

// FileScanner walks a directory tree and collects file records
type FileScanner struct {
	cfg        Config
	excludeMap map[string]struct{}
}

// New creates a new scanner with the given configuration
func New(cfg Config) *FileScanner {
	exMap := make(map[string]struct{}, len(cfg.ExcludeDirs))
	for _, e := range cfg.ExcludeDirs {
		exMap[e] = struct{}{}
	}

	return &FileScanner{
		cfg:        cfg,
		excludeMap: exMap,
	}
}

// Scan walks rootDir and returns the fully materialized record set.
//
// Regular files only: directories, symlinks and other non-regular entries
// are never collected. Entries that cannot be read are omitted and reported
// in the returned ScanError slice rather than failing the walk; only a
// root-level failure or context cancellation aborts the scan.
func (s *FileScanner) Scan(ctx context.Context, rootDir string) ([]models.FileRecord, []models.ScanError, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("path is not a directory: %s", absRoot)
	}

	var records []models.FileRecord
	var skipped []models.ScanError

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == absRoot {
				return err
			}
			skipped = append(skipped, models.ScanError{
				Path:      path,
				Error:     err.Error(),
				Timestamp: time.Now(),
			})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if d.IsDir() {
			if _, ok := s.excludeMap[d.Name()]; ok {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		name := d.Name()
		if s.cfg.SkipPattern != nil && s.cfg.SkipPattern.MatchString(name) {
			return nil
		}
		if s.cfg.Pattern != nil && !s.cfg.Pattern.MatchString(name) {
			return nil
		}

		fileInfo, err := d.Info()
		if err != nil {
			skipped = append(skipped, models.ScanError{
				Path:      path,
				Error:     err.Error(),
				Timestamp: time.Now(),
			})
			return nil
		}

		records = append(records, models.FileRecord{
			Name: name,
			Size: uint64(fileInfo.Size()),
			Path: path,
		})

		if s.cfg.Progress != nil {
			s.cfg.Progress(path)
		}

		return nil
	})

	if err != nil {
		return nil, skipped, fmt.Errorf("failed to scan directory: %w", err)
	}

	return records, skipped, nil
}
