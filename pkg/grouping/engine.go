package grouping

import (
	"sort"

	"github.com/sdejongh/lsdups/pkg/models"
)

// Group partitions records into groups keyed by exact, case-sensitive
// filename equality and ranks the result by size.
//
// Within each group, members are ordered by size descending; equal sizes
// keep their discovery order. Groups are ordered by total size descending;
// equal totals keep first-seen filename order. Every input record appears
// in exactly one group.
func Group(records []models.FileRecord) models.GroupingResult {
	buckets := make(map[string]*models.FileGroup, len(records))
	order := make([]string, 0, len(records))

	for _, r := range records {
		g, exists := buckets[r.Name]
		if !exists {
			g = &models.FileGroup{Name: r.Name}
			buckets[r.Name] = g
			order = append(order, r.Name)
		}
		// uint64 totals must not silently wrap
		if g.TotalSize+r.Size < g.TotalSize {
			panic("grouping: total size overflow")
		}
		g.Members = append(g.Members, r)
		g.TotalSize += r.Size
	}

	result := make(models.GroupingResult, 0, len(order))
	for _, name := range order {
		g := buckets[name]
		sort.SliceStable(g.Members, func(i, j int) bool {
			return g.Members[i].Size > g.Members[j].Size
		})
		result = append(result, *g)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalSize > result[j].TotalSize
	})

	return result
}
