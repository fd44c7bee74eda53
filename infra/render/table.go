// Package render formats plans, meeting lists and workload summaries as
// terminal tables. Column widths adapt to content; colors only decorate,
// alignment is computed on the plain text.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/planweave/planweave/core/model"
	"github.com/planweave/planweave/core/plan"
	"github.com/planweave/planweave/core/report"
	"github.com/planweave/planweave/internal/fold"
)

const notAvailable = "N/A"

var (
	headerStyle = lipgloss.NewStyle().Bold(true)

	priorityStyles = map[string]lipgloss.Style{
		"p0": lipgloss.NewStyle().Foreground(lipgloss.Color("9")),   // red
		"p1": lipgloss.NewStyle().Foreground(lipgloss.Color("208")), // orange
		"p2": lipgloss.NewStyle().Foreground(lipgloss.Color("12")),  // blue
		"p3": lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // gray
	}
	defaultPriorityStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	statusStyles = map[string]lipgloss.Style{
		plan.StatusOnTime:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		plan.StatusLate:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		plan.StatusOverdue:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		plan.StatusConflict: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
)

// Plan renders the consolidated plan as a table.
func Plan(tasks []model.Task) string {
	headers := []string{
		"Resource", "Customer", "Task", "Priority", "Task Status",
		"Est (h)", "Start Date", "Due Date", "Fix Version", "Schedule Status", "Conflicts",
	}
	rows := make([][]string, 0, len(tasks))
	styles := make(map[[2]int]lipgloss.Style)
	for i, t := range tasks {
		row := []string{
			t.Resource,
			t.Customer,
			t.ID,
			orNA(t.Priority),
			t.Status,
			hours(t.EstimatedHours),
			dateOrNA(t.StartDate),
			dateOrNA(t.EndDate),
			dateOrNA(t.FixVersionDate),
			t.ScheduleStatus,
			strings.Join(t.ConflictsWith, ", "),
		}
		rows = append(rows, row)
		if t.Priority != "" {
			styles[[2]int{i, 3}] = priorityStyle(t.Priority)
		}
		if st, ok := statusStyles[t.ScheduleStatus]; ok {
			styles[[2]int{i, 9}] = st
		}
	}
	return table(headers, rows, styles)
}

// Meetings renders matched calendar events.
func Meetings(events []model.CalendarEvent) string {
	headers := []string{"Meeting Title", "Date", "Start", "End", "Attendees"}
	rows := make([][]string, 0, len(events))
	for _, ev := range events {
		rows = append(rows, []string{
			ev.Title,
			dateOrNA(ev.Date),
			ev.StartTime,
			ev.EndTime,
			fmt.Sprintf("%d", ev.Attendees),
		})
	}
	out := table(headers, rows, nil)
	return out + fmt.Sprintf("\nTotal meetings: %d\n", len(events))
}

// Summary renders the per-resource workload view.
func Summary(s report.Summary) string {
	headers := []string{"Resource", "Tasks", "Conflicts", "Est (h)"}
	rows := make([][]string, 0, len(s.Resources))
	for _, r := range s.Resources {
		rows = append(rows, []string{
			r.Resource,
			fmt.Sprintf("%d", r.Tasks),
			fmt.Sprintf("%d", r.Conflicts),
			hours(r.EstimatedHours),
		})
	}
	out := table(headers, rows, nil)
	out += fmt.Sprintf("\nTotal: %d tasks, %d in conflict, %.1f h (mean %.1f h, stddev %.1f h per resource)\n",
		s.TotalTasks, s.TotalConflicts, s.TotalHours, s.MeanHours, s.StdDevHours)
	return out
}

// table lays out rows under headers with a separator line. styles maps
// {row, column} to the color applied after padding.
func table(headers []string, rows [][]string, styles map[[2]int]lipgloss.Style) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(i int) *lipgloss.Style) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			padded := fmt.Sprintf("%-*s", widths[i], cell)
			if st := style(i); st != nil {
				padded = st.Render(padded)
			}
			parts[i] = padded
		}
		b.WriteString(strings.Join(parts, " | "))
		b.WriteByte('\n')
	}

	writeRow(headers, func(int) *lipgloss.Style { return &headerStyle })
	total := 0
	for _, w := range widths {
		total += w
	}
	b.WriteString(strings.Repeat("-", total+3*(len(headers)-1)))
	b.WriteByte('\n')
	for r, row := range rows {
		writeRow(row, func(i int) *lipgloss.Style {
			if st, ok := styles[[2]int{r, i}]; ok {
				return &st
			}
			return nil
		})
	}
	return b.String()
}

func priorityStyle(priority string) lipgloss.Style {
	if st, ok := priorityStyles[fold.Lower(priority)]; ok {
		return st
	}
	return defaultPriorityStyle
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

func dateOrNA(d model.Date) string {
	if d.IsZero() {
		return notAvailable
	}
	return d.String()
}

func hours(h float64) string {
	if h == 0 {
		return notAvailable
	}
	return fmt.Sprintf("%.2f", h)
}
