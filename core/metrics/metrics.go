// Package metrics defines the events the planner records for observability
// and the sink interface implemented by the Prometheus and InfluxDB adapters
// in infra/metrics. The infra factory combines sinks into a multi sink when
// several backends are enabled and falls back to NopSink when none are.
package metrics

import "time"

// PlanEvent summarizes one planning run.
type PlanEvent struct {
	RunID     string
	Tasks     int
	Conflicts int
	Resources int
	Duration  time.Duration
	Time      time.Time
}

// CalendarMatchEvent summarizes one calendar matching run.
type CalendarMatchEvent struct {
	RunID     string
	Events    int
	Matched   int
	Customers int
	Time      time.Time
}

// Sink records planner events.
type Sink interface {
	RecordPlan(ev PlanEvent) error
	RecordCalendarMatch(ev CalendarMatchEvent) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordPlan(PlanEvent) error                   { return nil }
func (NopSink) RecordCalendarMatch(CalendarMatchEvent) error { return nil }
