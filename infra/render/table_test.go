package render

import (
	"strings"
	"testing"

	"github.com/planweave/planweave/core/model"
	"github.com/planweave/planweave/core/plan"
	"github.com/planweave/planweave/core/report"
)

func TestPlanRendering(t *testing.T) {
	start, _ := model.ParseDate("2024-01-01")
	end, _ := model.ParseDate("2024-01-10")
	tasks := []model.Task{
		{
			ID: "PW-1", Resource: "Alice", Customer: "JCB UK", Priority: "P1",
			Status: "In Progress", ScheduleStatus: plan.StatusConflict,
			StartDate: start, EndDate: end, EstimatedHours: 2.5,
			HasConflict: true, ConflictsWith: []string{"PW-2"},
		},
		{ID: "PW-3", Resource: "Bob", Customer: "Goupil", ScheduleStatus: plan.StatusOnTime},
	}
	out := Plan(tasks)

	for _, want := range []string{
		"Resource", "Schedule Status",
		"PW-1", "JCB UK", "2.50", "2024-01-01", plan.StatusConflict, "PW-2",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	// Missing priority and dates fall back to the placeholder.
	if !strings.Contains(out, notAvailable) {
		t.Fatalf("placeholder missing:\n%s", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want header, separator and two rows", len(lines))
	}
}

func TestMeetingsRendering(t *testing.T) {
	date, _ := model.ParseDate("2024-06-10")
	out := Meetings([]model.CalendarEvent{
		{Title: "JCB review", Date: date, StartTime: "09:00", EndTime: "09:45", Attendees: 3},
		{Title: "Offsite", Date: date, StartTime: model.AllDay, EndTime: model.AllDay},
	})
	for _, want := range []string{"JCB review", "09:45", model.AllDay, "Total meetings: 2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSummaryRendering(t *testing.T) {
	out := Summary(report.Summary{
		Resources: []report.ResourceLoad{
			{Resource: "Alice", Tasks: 2, Conflicts: 1, EstimatedHours: 6},
		},
		TotalTasks: 2, TotalConflicts: 1, TotalHours: 6, MeanHours: 6,
	})
	for _, want := range []string{"Alice", "6.00", "Total: 2 tasks, 1 in conflict"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}
