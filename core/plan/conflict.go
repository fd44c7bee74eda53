package plan

import (
	"sort"

	"github.com/planweave/planweave/core/model"
)

// DetectConflicts flags tasks whose date interval overlaps another task of
// the same resource. Overlap bounds are inclusive: a task starting the day a
// previous one ends counts as a conflict. Flags propagate transitively
// through a chain of overlapping intervals, so the sweep stays O(n log n) per
// resource instead of pairwise.
//
// Tasks missing a start or end date are skipped and reported conflict-free.
// The input order and cardinality are preserved; a fresh slice is returned.
func DetectConflicts(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		t.HasConflict = false
		t.ConflictsWith = nil
		out[i] = t
	}

	byResource := make(map[string][]int)
	for i, t := range out {
		if !t.Schedulable() {
			continue
		}
		byResource[t.Resource] = append(byResource[t.Resource], i)
	}

	for _, idxs := range byResource {
		sweep(out, idxs)
	}
	return out
}

func sweep(tasks []model.Task, idxs []int) {
	// Sort by start date, ties broken by id so the outcome is independent of
	// the input order.
	sort.SliceStable(idxs, func(a, b int) bool {
		ta, tb := tasks[idxs[a]], tasks[idxs[b]]
		if c := ta.StartDate.Compare(tb.StartDate); c != 0 {
			return c < 0
		}
		return ta.ID < tb.ID
	})

	var chain []int
	var chainEnd model.Date
	for _, i := range idxs {
		t := tasks[i]
		if len(chain) == 0 || t.StartDate.After(chainEnd) {
			chain = chain[:0]
			chain = append(chain, i)
			chainEnd = t.EndDate
			continue
		}
		// Overlaps the running chain: every member of the chain conflicts,
		// even members the current task does not directly touch.
		for _, j := range chain {
			tasks[j].HasConflict = true
			if overlaps(tasks[j], t) {
				tasks[j].ConflictsWith = append(tasks[j].ConflictsWith, t.ID)
				tasks[i].ConflictsWith = append(tasks[i].ConflictsWith, tasks[j].ID)
			}
		}
		tasks[i].HasConflict = true
		chain = append(chain, i)
		if t.EndDate.After(chainEnd) {
			chainEnd = t.EndDate
		}
	}
}

func overlaps(a, b model.Task) bool {
	return !a.StartDate.After(b.EndDate) && !b.StartDate.After(a.EndDate)
}
