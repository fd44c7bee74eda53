package model

// RawIssue is the boundary record handed to the normalizer. It mirrors the
// fields the tracker fetch layer extracts from an issue payload; date fields
// stay strings until normalization validates them.
type RawIssue struct {
	Key       string   `json:"key"`
	Project   string   `json:"project"`
	Summary   string   `json:"summary"`
	Assignee  string   `json:"assignee"`
	Customers []string `json:"customers"`

	Priority  string `json:"priority"`
	Status    string `json:"status"`
	IssueType string `json:"issue_type"`
	ParentKey string `json:"parent_key"`
	Health    string `json:"health"`

	StartDate string `json:"start_date"`
	DueDate   string `json:"due_date"`

	FixVersions      []FixVersion `json:"fix_versions"`
	EstimatedSeconds int64        `json:"estimated_seconds"`
}

// FixVersion is a release an issue is tagged with.
type FixVersion struct {
	Name        string `json:"name"`
	ReleaseDate string `json:"release_date"`
}
