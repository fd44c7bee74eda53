package model

// Task is the canonical work item produced by normalization and consumed by
// the planning pipeline. Instances are treated as values: every pipeline stage
// returns a fresh slice instead of mutating its input.
type Task struct {
	ID       string `json:"id"`
	Project  string `json:"project"`
	Resource string `json:"resource"`
	Customer string `json:"customer"`

	Priority       string `json:"priority,omitempty"`
	Status         string `json:"status,omitempty"`
	ScheduleStatus string `json:"schedule_status,omitempty"`

	StartDate Date `json:"start_date"`
	// EndDate is the task's own end (its due date, or derived from a fix
	// version release date when no due date is set).
	EndDate Date `json:"end_date"`
	// FixVersionDate is the release date of the first fix version carrying
	// one. It is kept separate from EndDate so date-range filters and
	// conflict detection always bound the task's own interval.
	FixVersionDate Date `json:"fix_version_date"`

	IssueType      string  `json:"issue_type,omitempty"`
	ParentKey      string  `json:"parent_key,omitempty"`
	Health         string  `json:"health,omitempty"`
	EstimatedHours float64 `json:"estimated_hours,omitempty"`

	HasConflict   bool     `json:"has_conflict"`
	ConflictsWith []string `json:"conflicts_with,omitempty"`
}

// Schedulable reports whether the task carries the two dates conflict
// detection needs.
func (t Task) Schedulable() bool {
	return !t.StartDate.IsZero() && !t.EndDate.IsZero()
}
