package grouping

import (
	"github.com/sdejongh/lsdups/pkg/models"
)

// Summarize computes the aggregate figures for a scan.
//
// TotalSize is summed directly over the flat record slice rather than
// derived from group totals, so the total-size invariant stays checkable
// independently of the grouping. DuplicatedSize sums the totals of groups
// holding two or more members.
func Summarize(records []models.FileRecord, grouping models.GroupingResult) models.Summary {
	summary := models.Summary{TotalRecords: len(records)}

	for _, r := range records {
		if summary.TotalSize+r.Size < summary.TotalSize {
			panic("grouping: total size overflow")
		}
		summary.TotalSize += r.Size
	}

	for i := range grouping {
		if grouping[i].IsDuplicate() {
			summary.DuplicatedSize += grouping[i].TotalSize
		}
	}

	return summary
}
