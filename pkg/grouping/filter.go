package grouping

import (
	"github.com/sdejongh/lsdups/pkg/models"
)

// Filter returns the groups retained for reporting, order preserved.
//
// A group is kept iff (verbose || len(Members) >= 2) && TotalSize >=
// minGroupTotalSize: without verbose only duplicate groups are shown, and
// the size threshold applies to every group, verbose or not. The input is
// not mutated.
func Filter(grouping models.GroupingResult, verbose bool, minGroupTotalSize uint64) models.GroupingResult {
	filtered := make(models.GroupingResult, 0, len(grouping))
	for _, g := range grouping {
		if (verbose || g.IsDuplicate()) && g.TotalSize >= minGroupTotalSize {
			filtered = append(filtered, g)
		}
	}
	return filtered
}
