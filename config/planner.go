package config

import (
	"github.com/planweave/planweave/core/plan"
)

// PlannerConfig drives the consolidation engine: alias maps, sort order and
// the optional filter predicates. Absent fields impose no constraint.
type PlannerConfig struct {
	ResourceAliases map[string]string `json:"resource_aliases"`
	CustomerAliases map[string]string `json:"customer_aliases"`
	// CustomerMeetingFilters maps a customer name to the substring patterns
	// used to match meeting titles. Customers without an entry match on their
	// own name.
	CustomerMeetingFilters map[string][]string `json:"customer_meeting_filters"`
	SortBy                 []string            `json:"sort_by"`
	Filter                 plan.FilterSpec     `json:"filter"`
	// Strict aborts a run on the first issue that fails normalization instead
	// of skipping it.
	Strict bool `json:"strict"`
}

// SetDefaults applies sane defaults.
func (c *PlannerConfig) SetDefaults() {
	if len(c.SortBy) == 0 {
		c.SortBy = append([]string(nil), plan.DefaultSortKeys...)
	}
}

// Validate rejects unknown sort keys and malformed filter dates up front.
func (c PlannerConfig) Validate() error {
	if err := plan.ValidateSortKeys(c.SortBy); err != nil {
		return err
	}
	return c.Filter.Validate()
}
