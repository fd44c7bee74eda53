package plan

import (
	"github.com/planweave/planweave/core/logger"
	"github.com/planweave/planweave/core/model"
)

// Options configures a pipeline run. Zero values mean no aliasing, no
// filtering, default sort order and lenient normalization.
type Options struct {
	ResourceAliases AliasMap
	CustomerAliases AliasMap
	Filter          FilterSpec
	SortBy          []string
	// Strict aborts the run on the first record that fails normalization
	// instead of skipping it.
	Strict bool
	// Today anchors schedule status computation; zero means the current date.
	Today model.Date
	Log   logger.Logger
}

// Run executes the full consolidation pipeline:
//
//	normalize -> alias resolve -> conflict detect -> schedule status ->
//	filter -> sort
//
// Conflict detection runs before filtering so the conflict predicate sees
// populated flags. Configuration errors (unknown sort keys, malformed filter
// dates) surface before any record is processed.
func Run(raws []model.RawIssue, opts Options) ([]model.Task, error) {
	keys := opts.SortBy
	if len(keys) == 0 {
		keys = DefaultSortKeys
	}
	if err := ValidateSortKeys(keys); err != nil {
		return nil, err
	}
	if err := opts.Filter.Validate(); err != nil {
		return nil, err
	}

	tasks, err := NormalizeAll(raws, opts.Strict, opts.Log)
	if err != nil {
		return nil, err
	}
	tasks = ResolveTasks(tasks, opts.ResourceAliases, opts.CustomerAliases)
	tasks = DetectConflicts(tasks)
	tasks = AssignScheduleStatus(tasks, opts.Today)
	tasks, err = Apply(tasks, opts.Filter)
	if err != nil {
		return nil, err
	}
	return Sort(tasks, keys)
}
