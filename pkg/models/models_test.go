package models

import (
	"testing"
	"time"
)

// ============== FileRecord / FileGroup Tests ==============

func TestFileRecord(t *testing.T) {
	record := FileRecord{
		Name: "report.pdf",
		Size: 2048,
		Path: "/home/user/docs/report.pdf",
	}

	if record.Name != "report.pdf" {
		t.Errorf("Name = %s, want report.pdf", record.Name)
	}
	if record.Size != 2048 {
		t.Errorf("Size = %d, want 2048", record.Size)
	}
	if record.Path != "/home/user/docs/report.pdf" {
		t.Errorf("Path = %s, want /home/user/docs/report.pdf", record.Path)
	}
}

func TestFileGroupIsDuplicate(t *testing.T) {
	t.Run("SingleMember", func(t *testing.T) {
		group := FileGroup{
			Name:      "a.txt",
			TotalSize: 100,
			Members: []FileRecord{
				{Name: "a.txt", Size: 100, Path: "/x/a.txt"},
			},
		}

		if group.IsDuplicate() {
			t.Error("IsDuplicate() should be false for a single-member group")
		}
	})

	t.Run("TwoMembers", func(t *testing.T) {
		group := FileGroup{
			Name:      "a.txt",
			TotalSize: 300,
			Members: []FileRecord{
				{Name: "a.txt", Size: 200, Path: "/y/a.txt"},
				{Name: "a.txt", Size: 100, Path: "/x/a.txt"},
			},
		}

		if !group.IsDuplicate() {
			t.Error("IsDuplicate() should be true for a two-member group")
		}
	})
}

// ============== ScanOperation Tests ==============

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		format   OutputFormat
		expected string
	}{
		{FormatHuman, "human"},
		{FormatJSON, "json"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			if string(tt.format) != tt.expected {
				t.Errorf("OutputFormat = %s, want %s", string(tt.format), tt.expected)
			}
		})
	}
}

func TestScanOperationValidate(t *testing.T) {
	t.Run("ValidOperation", func(t *testing.T) {
		op := &ScanOperation{
			RootPath: ".",
			Pattern:  ".*",
			Output:   FormatHuman,
		}

		err := op.Validate()
		if err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})

	t.Run("EmptyRootPath", func(t *testing.T) {
		op := &ScanOperation{
			RootPath: "",
			Pattern:  ".*",
			Output:   FormatHuman,
		}

		err := op.Validate()
		if err == nil {
			t.Error("Validate() should fail for empty root path")
		}
		if ve, ok := err.(*ValidationError); ok {
			if ve.Field != "RootPath" {
				t.Errorf("ValidationError.Field = %s, want RootPath", ve.Field)
			}
		}
	})

	t.Run("EmptyPattern", func(t *testing.T) {
		op := &ScanOperation{
			RootPath: ".",
			Pattern:  "",
			Output:   FormatHuman,
		}

		err := op.Validate()
		if err == nil {
			t.Error("Validate() should fail for empty pattern")
		}
	})

	t.Run("UnknownOutputFormat", func(t *testing.T) {
		op := &ScanOperation{
			RootPath: ".",
			Pattern:  ".*",
			Output:   "xml",
		}

		err := op.Validate()
		if err == nil {
			t.Error("Validate() should fail for unknown output format")
		}
	})
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{
		Field:   "TestField",
		Message: "test message",
	}

	expected := "TestField: test message"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}
}

func TestScanOperationFields(t *testing.T) {
	now := time.Now()
	started := now.Add(-time.Second)
	completed := now

	op := &ScanOperation{
		ID:                "op-123",
		RootPath:          "/data",
		Pattern:           `.*\.log`,
		SkipPattern:       `.*\.gz`,
		ExcludeDirs:       []string{".git", "node_modules"},
		Verbose:           true,
		MinGroupTotalSize: 4096,
		Output:            FormatJSON,
		CreatedAt:         now,
		StartedAt:         &started,
		CompletedAt:       &completed,
	}

	if op.ID != "op-123" {
		t.Errorf("ID = %s, want op-123", op.ID)
	}
	if !op.Verbose {
		t.Error("Verbose should be true")
	}
	if op.MinGroupTotalSize != 4096 {
		t.Errorf("MinGroupTotalSize = %d, want 4096", op.MinGroupTotalSize)
	}
	if len(op.ExcludeDirs) != 2 {
		t.Errorf("ExcludeDirs length = %d, want 2", len(op.ExcludeDirs))
	}
}

// ============== ScanReport Tests ==============

func TestScanStatusExitCode(t *testing.T) {
	tests := []struct {
		status   ScanStatus
		expected int
	}{
		{StatusSuccess, 0},
		{StatusFailed, 2},
		{StatusCancelled, 3},
		{ScanStatus("unknown"), 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if tt.status.ExitCode() != tt.expected {
				t.Errorf("ExitCode() = %d, want %d", tt.status.ExitCode(), tt.expected)
			}
		})
	}
}

func TestScanReportDuplicateGroupCount(t *testing.T) {
	report := &ScanReport{
		Groups: GroupingResult{
			{
				Name:      "a.txt",
				TotalSize: 300,
				Members: []FileRecord{
					{Name: "a.txt", Size: 200, Path: "/y/a.txt"},
					{Name: "a.txt", Size: 100, Path: "/x/a.txt"},
				},
			},
			{
				Name:      "b.txt",
				TotalSize: 50,
				Members: []FileRecord{
					{Name: "b.txt", Size: 50, Path: "/x/b.txt"},
				},
			},
		},
	}

	if got := report.DuplicateGroupCount(); got != 1 {
		t.Errorf("DuplicateGroupCount() = %d, want 1", got)
	}
}
