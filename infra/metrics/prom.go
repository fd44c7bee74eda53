package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/planweave/planweave/core/metrics"
)

// PromSink records planner events as Prometheus metrics.
type PromSink struct {
	runs      *prometheus.CounterVec
	tasks     prometheus.Gauge
	conflicts prometheus.Gauge
	duration  prometheus.Histogram
	matched   prometheus.Gauge
}

// NewPromSink registers planner metrics on the default Prometheus registerer.
// The metrics endpoint is served separately, see StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer. A nil
// registerer defaults to the global one.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "planweave_runs_total",
			Help: "Total number of planner runs by kind",
		}, []string{"kind"}),
		tasks: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "planweave_plan_tasks",
			Help: "Number of tasks in the last generated plan",
		}),
		conflicts: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "planweave_plan_conflicts",
			Help: "Number of conflicting tasks in the last generated plan",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "planweave_plan_duration_seconds",
			Help:    "Time spent consolidating a plan",
			Buckets: prometheus.DefBuckets,
		}),
		matched: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "planweave_calendar_matched",
			Help: "Number of matched meetings in the last calendar run",
		}),
	}
	collectors := []prometheus.Collector{s.runs, s.tasks, s.conflicts, s.duration, s.matched}
	for i, c := range collectors {
		if err := reg.Register(c); err != nil {
			are, ok := err.(prometheus.AlreadyRegisteredError)
			if !ok {
				return nil, err
			}
			collectors[i] = are.ExistingCollector
		}
	}
	s.runs = collectors[0].(*prometheus.CounterVec)
	s.tasks = collectors[1].(prometheus.Gauge)
	s.conflicts = collectors[2].(prometheus.Gauge)
	s.duration = collectors[3].(prometheus.Histogram)
	s.matched = collectors[4].(prometheus.Gauge)
	return s, nil
}

// RecordPlan updates the plan gauges and run counter.
func (s *PromSink) RecordPlan(ev coremetrics.PlanEvent) error {
	s.runs.WithLabelValues("plan").Inc()
	s.tasks.Set(float64(ev.Tasks))
	s.conflicts.Set(float64(ev.Conflicts))
	s.duration.Observe(ev.Duration.Seconds())
	return nil
}

// RecordCalendarMatch updates the calendar gauges and run counter.
func (s *PromSink) RecordCalendarMatch(ev coremetrics.CalendarMatchEvent) error {
	s.runs.WithLabelValues("calendar").Inc()
	s.matched.Set(float64(ev.Matched))
	return nil
}
