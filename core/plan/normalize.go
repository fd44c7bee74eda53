package plan

import (
	"fmt"
	"math"

	"github.com/planweave/planweave/core/logger"
	"github.com/planweave/planweave/core/model"
)

// UnassignedCustomer is used when an issue carries no customer field.
const UnassignedCustomer = "Unassigned Customer"

// NormalizationError reports a raw record that cannot be turned into a Task.
type NormalizationError struct {
	Key    string
	Field  string
	Reason string
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("issue %s: field %s: %s", e.Key, e.Field, e.Reason)
}

// Normalize converts a raw tracker record into a canonical Task. The issue
// key, assignee and start date are required; date fields must parse as
// YYYY-MM-DD. Unknown raw fields are dropped by construction.
func Normalize(raw model.RawIssue) (model.Task, error) {
	if raw.Key == "" {
		return model.Task{}, &NormalizationError{Key: raw.Key, Field: "id", Reason: "missing"}
	}
	if raw.Assignee == "" {
		return model.Task{}, &NormalizationError{Key: raw.Key, Field: "resource", Reason: "missing"}
	}
	if raw.StartDate == "" {
		return model.Task{}, &NormalizationError{Key: raw.Key, Field: "start_date", Reason: "missing"}
	}

	start, err := model.ParseDate(raw.StartDate)
	if err != nil {
		return model.Task{}, &NormalizationError{Key: raw.Key, Field: "start_date", Reason: err.Error()}
	}

	var end model.Date
	if raw.DueDate != "" {
		end, err = model.ParseDate(raw.DueDate)
		if err != nil {
			return model.Task{}, &NormalizationError{Key: raw.Key, Field: "end_date", Reason: err.Error()}
		}
	}

	var release model.Date
	for _, fv := range raw.FixVersions {
		if fv.ReleaseDate == "" {
			continue
		}
		release, err = model.ParseDate(fv.ReleaseDate)
		if err != nil {
			return model.Task{}, &NormalizationError{Key: raw.Key, Field: "fix_version_date", Reason: err.Error()}
		}
		break
	}

	// Without a due date the first usable release date stands in as the end
	// of the task's interval.
	if end.IsZero() && !release.IsZero() && !release.Before(start) {
		end = release
	}
	if !end.IsZero() && end.Before(start) {
		return model.Task{}, &NormalizationError{Key: raw.Key, Field: "end_date", Reason: "precedes start_date"}
	}

	customer := UnassignedCustomer
	if len(raw.Customers) > 0 && raw.Customers[0] != "" {
		customer = raw.Customers[0]
	}

	var hours float64
	if raw.EstimatedSeconds > 0 {
		hours = math.Round(float64(raw.EstimatedSeconds)/3600*100) / 100
	}

	return model.Task{
		ID:             raw.Key,
		Project:        raw.Project,
		Resource:       raw.Assignee,
		Customer:       customer,
		Priority:       raw.Priority,
		Status:         raw.Status,
		StartDate:      start,
		EndDate:        end,
		FixVersionDate: release,
		IssueType:      raw.IssueType,
		ParentKey:      raw.ParentKey,
		Health:         raw.Health,
		EstimatedHours: hours,
	}, nil
}

// NormalizeAll converts a batch of raw records. In strict mode the first bad
// record aborts the batch; otherwise bad records are logged and skipped so one
// malformed issue never hides the rest of the plan.
func NormalizeAll(raws []model.RawIssue, strict bool, log logger.Logger) ([]model.Task, error) {
	if log == nil {
		log = logger.Nop{}
	}
	tasks := make([]model.Task, 0, len(raws))
	for _, raw := range raws {
		task, err := Normalize(raw)
		if err != nil {
			if strict {
				return nil, err
			}
			log.Warnf("skipping issue: %v", err)
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}
