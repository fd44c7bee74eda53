package plan

import (
	"fmt"

	"github.com/planweave/planweave/core/model"
	"github.com/planweave/planweave/internal/fold"
)

// FilterSpec holds the optional predicates applied to the task list. Empty
// fields impose no constraint; configured predicates are combined with AND
// semantics. Date bounds are YYYY-MM-DD strings as they arrive from
// configuration and are validated before the pipeline runs.
type FilterSpec struct {
	Resource       string   `json:"resource"`
	Priority       string   `json:"priority"`
	TaskStatus     string   `json:"task_status"`
	ScheduleStatus string   `json:"schedule_status"`
	Conflict       *bool    `json:"conflict"`
	Customers      []string `json:"customers"`
	FromStartDate  string   `json:"from_start_date"`
	ToEndDate      string   `json:"to_end_date"`
}

// Validate checks the date bounds parse. It must be called before Apply so
// misconfiguration surfaces before any processing begins.
func (f FilterSpec) Validate() error {
	if f.FromStartDate != "" {
		if _, err := model.ParseDate(f.FromStartDate); err != nil {
			return fmt.Errorf("filter from_start_date: %w", err)
		}
	}
	if f.ToEndDate != "" {
		if _, err := model.ParseDate(f.ToEndDate); err != nil {
			return fmt.Errorf("filter to_end_date: %w", err)
		}
	}
	return nil
}

// Apply returns the order-preserved subset of tasks satisfying every
// configured predicate. The conflict predicate is only meaningful once
// conflict detection has run; the pipeline sequences the stages accordingly.
func Apply(tasks []model.Task, spec FilterSpec) ([]model.Task, error) {
	var from, to model.Date
	var err error
	if spec.FromStartDate != "" {
		if from, err = model.ParseDate(spec.FromStartDate); err != nil {
			return nil, fmt.Errorf("filter from_start_date: %w", err)
		}
	}
	if spec.ToEndDate != "" {
		if to, err = model.ParseDate(spec.ToEndDate); err != nil {
			return nil, fmt.Errorf("filter to_end_date: %w", err)
		}
	}

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !keep(t, spec, from, to) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func keep(t model.Task, spec FilterSpec, from, to model.Date) bool {
	if spec.Resource != "" && !fold.Equal(t.Resource, spec.Resource) {
		return false
	}
	if spec.Priority != "" && !fold.Equal(t.Priority, spec.Priority) {
		return false
	}
	if spec.TaskStatus != "" && !fold.Equal(t.Status, spec.TaskStatus) {
		return false
	}
	if spec.ScheduleStatus != "" && !fold.Equal(t.ScheduleStatus, spec.ScheduleStatus) {
		return false
	}
	if spec.Conflict != nil && t.HasConflict != *spec.Conflict {
		return false
	}
	if len(spec.Customers) > 0 && !containsFold(spec.Customers, t.Customer) {
		return false
	}
	// A task missing the bounded date is excluded once the bound is set.
	if !from.IsZero() && (t.StartDate.IsZero() || t.StartDate.Before(from)) {
		return false
	}
	if !to.IsZero() && (t.EndDate.IsZero() || t.EndDate.After(to)) {
		return false
	}
	return true
}

func containsFold(set []string, v string) bool {
	for _, s := range set {
		if fold.Equal(s, v) {
			return true
		}
	}
	return false
}
