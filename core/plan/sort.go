package plan

import (
	"fmt"
	"sort"

	"github.com/planweave/planweave/core/model"
	"github.com/planweave/planweave/internal/fold"
)

// Sort key names accepted in configuration.
const (
	KeyStartDate = "start_date"
	KeyEndDate   = "end_date"
	KeyCustomer  = "customer"
	KeyResource  = "resource"
	KeyPriority  = "priority"
	KeyStatus    = "status"
)

// DefaultSortKeys is used when no sort order is configured.
var DefaultSortKeys = []string{KeyStartDate}

// priorityRank orders priority labels, highest first. Unknown labels sink to
// the bottom.
var priorityRank = map[string]int{
	"p0": 0, "highest": 0,
	"p1": 1, "high": 1,
	"p2": 2, "medium": 2,
	"p3": 3, "low": 3,
	"p4": 4, "lowest": 4,
}

const unknownPriorityRank = 99

// ValidateSortKeys rejects unknown key names so misconfiguration surfaces
// before processing rather than being silently ignored.
func ValidateSortKeys(keys []string) error {
	for _, k := range keys {
		switch k {
		case KeyStartDate, KeyEndDate, KeyCustomer, KeyResource, KeyPriority, KeyStatus:
		default:
			return fmt.Errorf("unknown sort key %q", k)
		}
	}
	return nil
}

// Sort orders tasks by the given keys, first key most significant. String
// keys compare case-insensitively, date keys chronologically with missing
// dates last, priority by rank. When all keys tie the task id decides, so the
// order is fully deterministic. A nil or empty key list falls back to
// DefaultSortKeys.
func Sort(tasks []model.Task, keys []string) ([]model.Task, error) {
	if len(keys) == 0 {
		keys = DefaultSortKeys
	}
	if err := ValidateSortKeys(keys); err != nil {
		return nil, err
	}
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(a, b int) bool {
		for _, k := range keys {
			if c := compareKey(out[a], out[b], k); c != 0 {
				return c < 0
			}
		}
		return out[a].ID < out[b].ID
	})
	return out, nil
}

func compareKey(a, b model.Task, key string) int {
	switch key {
	case KeyStartDate:
		return compareDate(a.StartDate, b.StartDate)
	case KeyEndDate:
		return compareDate(a.EndDate, b.EndDate)
	case KeyCustomer:
		return fold.Compare(a.Customer, b.Customer)
	case KeyResource:
		return fold.Compare(a.Resource, b.Resource)
	case KeyPriority:
		return rankOf(a.Priority) - rankOf(b.Priority)
	case KeyStatus:
		return fold.Compare(a.Status, b.Status)
	}
	return 0
}

func compareDate(a, b model.Date) int {
	switch {
	case a.IsZero() && b.IsZero():
		return 0
	case a.IsZero():
		return 1
	case b.IsZero():
		return -1
	default:
		return a.Compare(b)
	}
}

func rankOf(priority string) int {
	if r, ok := priorityRank[fold.Lower(priority)]; ok {
		return r
	}
	return unknownPriorityRank
}
