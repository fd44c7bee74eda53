package plan

import (
	"testing"

	"github.com/planweave/planweave/core/model"
)

func TestAssignScheduleStatus(t *testing.T) {
	today, _ := model.ParseDate("2024-06-01")

	onTime := mkTask("ontime", "r", "2024-05-20", "2024-06-10")
	overdue := mkTask("overdue", "r", "2024-05-01", "2024-05-20")
	late := mkTask("late", "r", "2024-05-20", "2024-06-10")
	late.FixVersionDate, _ = model.ParseDate("2024-06-20")
	conflicted := mkTask("conflict", "r", "2024-05-01", "2024-05-20")
	conflicted.HasConflict = true
	unbounded := mkTask("open", "r", "2024-05-20", "")

	got := AssignScheduleStatus([]model.Task{onTime, overdue, late, conflicted, unbounded}, today)
	want := map[string]string{
		"ontime":   StatusOnTime,
		"overdue":  StatusOverdue,
		"late":     StatusLate,
		"conflict": StatusConflict,
		"open":     StatusOnTime,
	}
	for _, task := range got {
		if task.ScheduleStatus != want[task.ID] {
			t.Fatalf("%s: status = %q, want %q", task.ID, task.ScheduleStatus, want[task.ID])
		}
	}
}

func TestAssignScheduleStatusConflictWins(t *testing.T) {
	today, _ := model.ParseDate("2024-06-01")
	task := mkTask("x", "r", "2024-05-01", "2024-05-10")
	task.HasConflict = true
	task.FixVersionDate, _ = model.ParseDate("2024-07-01")

	got := AssignScheduleStatus([]model.Task{task}, today)
	if got[0].ScheduleStatus != StatusConflict {
		t.Fatalf("status = %q, conflict must dominate overdue and late", got[0].ScheduleStatus)
	}
}

func TestAssignScheduleStatusEndTodayNotOverdue(t *testing.T) {
	today, _ := model.ParseDate("2024-06-01")
	task := mkTask("x", "r", "2024-05-20", "2024-06-01")
	got := AssignScheduleStatus([]model.Task{task}, today)
	if got[0].ScheduleStatus != StatusOnTime {
		t.Fatalf("ending today is not overdue, got %q", got[0].ScheduleStatus)
	}
}
