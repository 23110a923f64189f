package models

// FileRecord represents a single discovered file
type FileRecord struct {
	// Name is the filename component only (no directory)
	Name string `json:"name"`

	// Size in bytes, from filesystem metadata
	Size uint64 `json:"size"`

	// Path is the full path of the file
	Path string `json:"path"`
}

// FileGroup is the set of records sharing an identical filename
type FileGroup struct {
	// Name is the shared filename
	Name string `json:"name"`

	// TotalSize is the sum of all member sizes in bytes
	TotalSize uint64 `json:"total_size"`

	// Members are the records in the group, ordered by size descending.
	// Records of equal size keep their discovery order.
	Members []FileRecord `json:"members"`
}

// IsDuplicate returns true if the group holds two or more records
func (g *FileGroup) IsDuplicate() bool {
	return len(g.Members) >= 2
}

// GroupingResult is an ordered sequence of groups, largest total first.
// Groups with equal totals keep first-seen filename order.
type GroupingResult []FileGroup

// Summary holds the aggregate figures for a scan
type Summary struct {
	// TotalRecords is the number of records scanned
	TotalRecords int `json:"total_records"`

	// TotalSize is the sum of all record sizes in bytes
	TotalSize uint64 `json:"total_size"`

	// DuplicatedSize is the sum of group totals over groups with >= 2 members
	DuplicatedSize uint64 `json:"duplicated_size"`
}
