// Package report builds per-resource workload summaries out of a consolidated
// plan. It answers "who is carrying how much" rather than "what conflicts":
// task counts, conflict counts and estimated hours per resource, plus simple
// distribution statistics across the team.
package report

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/planweave/planweave/core/model"
)

// ResourceLoad aggregates the tasks of one resource.
type ResourceLoad struct {
	Resource       string
	Tasks          int
	Conflicts      int
	EstimatedHours float64
}

// Summary is the workload view over all resources of a plan.
type Summary struct {
	Resources      []ResourceLoad
	TotalTasks     int
	TotalConflicts int
	TotalHours     float64
	MeanHours      float64
	StdDevHours    float64
}

// Build aggregates tasks per resource. Resources are ordered by name so the
// output is deterministic.
func Build(tasks []model.Task) Summary {
	byResource := make(map[string]*ResourceLoad)
	for _, t := range tasks {
		load, ok := byResource[t.Resource]
		if !ok {
			load = &ResourceLoad{Resource: t.Resource}
			byResource[t.Resource] = load
		}
		load.Tasks++
		if t.HasConflict {
			load.Conflicts++
		}
		load.EstimatedHours += t.EstimatedHours
	}

	s := Summary{Resources: make([]ResourceLoad, 0, len(byResource))}
	hours := make([]float64, 0, len(byResource))
	for _, load := range byResource {
		s.Resources = append(s.Resources, *load)
		s.TotalTasks += load.Tasks
		s.TotalConflicts += load.Conflicts
		s.TotalHours += load.EstimatedHours
		hours = append(hours, load.EstimatedHours)
	}
	sort.Slice(s.Resources, func(i, j int) bool {
		return s.Resources[i].Resource < s.Resources[j].Resource
	})

	if len(hours) > 0 {
		s.MeanHours = stat.Mean(hours, nil)
	}
	if len(hours) > 1 {
		s.StdDevHours = stat.StdDev(hours, nil)
	}
	return s
}
