package plan

import "github.com/planweave/planweave/core/model"

// Schedule status values shown in the plan.
const (
	StatusOnTime   = "On Time"
	StatusLate     = "Late"
	StatusOverdue  = "Overdue"
	StatusConflict = "Conflict!"
)

// AssignScheduleStatus derives the schedule status of each task relative to
// today. Conflicts win over everything; a task whose end date already passed
// is overdue; a release date past the due date makes it late. Runs after
// conflict detection on a fresh slice.
func AssignScheduleStatus(tasks []model.Task, today model.Date) []model.Task {
	if today.IsZero() {
		today = model.Today()
	}
	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		switch {
		case t.HasConflict:
			t.ScheduleStatus = StatusConflict
		case !t.EndDate.IsZero() && t.EndDate.Before(today):
			t.ScheduleStatus = StatusOverdue
		case !t.FixVersionDate.IsZero() && !t.EndDate.IsZero() && t.FixVersionDate.After(t.EndDate):
			t.ScheduleStatus = StatusLate
		default:
			t.ScheduleStatus = StatusOnTime
		}
		out[i] = t
	}
	return out
}
