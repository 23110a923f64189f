package grouping

import (
	"testing"

	"github.com/sdejongh/lsdups/pkg/models"
)

func TestSummarize(t *testing.T) {
	t.Run("DuplicatesAndSingles", func(t *testing.T) {
		records := sampleRecords()
		result := Group(records)

		summary := Summarize(records, result)
		if summary.TotalRecords != 3 {
			t.Errorf("TotalRecords = %d, want 3", summary.TotalRecords)
		}
		if summary.TotalSize != 350 {
			t.Errorf("TotalSize = %d, want 350", summary.TotalSize)
		}
		if summary.DuplicatedSize != 300 {
			t.Errorf("DuplicatedSize = %d, want 300", summary.DuplicatedSize)
		}
	})

	t.Run("EmptyInput", func(t *testing.T) {
		summary := Summarize(nil, nil)
		if summary.TotalRecords != 0 || summary.TotalSize != 0 || summary.DuplicatedSize != 0 {
			t.Errorf("Summarize(nil, nil) = %+v, want zero summary", summary)
		}
	})

	t.Run("NoDuplicates", func(t *testing.T) {
		records := []models.FileRecord{
			{Name: "one.txt", Size: 10, Path: "/one.txt"},
			{Name: "two.txt", Size: 20, Path: "/two.txt"},
			{Name: "three.txt", Size: 30, Path: "/three.txt"},
		}
		result := Group(records)

		summary := Summarize(records, result)
		if summary.TotalSize != 60 {
			t.Errorf("TotalSize = %d, want 60", summary.TotalSize)
		}
		if summary.DuplicatedSize != 0 {
			t.Errorf("DuplicatedSize = %d, want 0", summary.DuplicatedSize)
		}
	})

	t.Run("TotalSizeIndependentOfGrouping", func(t *testing.T) {
		// Total size comes from the flat records, even when the grouping
		// passed in does not cover them.
		records := sampleRecords()
		summary := Summarize(records, models.GroupingResult{})

		if summary.TotalSize != 350 {
			t.Errorf("TotalSize = %d, want 350", summary.TotalSize)
		}
		if summary.DuplicatedSize != 0 {
			t.Errorf("DuplicatedSize = %d, want 0 for empty grouping", summary.DuplicatedSize)
		}
	})
}
