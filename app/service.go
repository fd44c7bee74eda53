// Package app wires configuration, fetch clients, the planning engine and
// rendering into the operations exposed by the CLI.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/planweave/planweave/config"
	"github.com/planweave/planweave/core/match"
	coremetrics "github.com/planweave/planweave/core/metrics"
	"github.com/planweave/planweave/core/model"
	"github.com/planweave/planweave/core/plan"
	"github.com/planweave/planweave/core/report"
	"github.com/planweave/planweave/infra/gcal"
	"github.com/planweave/planweave/infra/jira"
	"github.com/planweave/planweave/infra/logger"
	"github.com/planweave/planweave/infra/metrics"
	"github.com/planweave/planweave/infra/render"
)

// Service holds the wired collaborators for one invocation.
type Service struct {
	cfg   *config.Config
	log   logger.Logger
	sink  coremetrics.Sink
	runID string
}

// New builds a Service from loaded configuration. Metric sinks are assembled
// from config; the Prometheus endpoint, when enabled, lives until ctx ends.
func New(ctx context.Context, cfg *config.Config) (*Service, error) {
	log := logger.New("app")
	sink, err := metrics.New(ctx, cfg.Metrics, log)
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	return &Service{
		cfg:   cfg,
		log:   log,
		sink:  sink,
		runID: uuid.NewString(),
	}, nil
}

// RunPlan fetches issues, consolidates them and prints the plan.
func (s *Service) RunPlan(ctx context.Context) error {
	tasks, elapsed, err := s.buildPlan(ctx, true)
	if err != nil {
		return err
	}

	fmt.Print(render.Plan(tasks))

	conflicts := 0
	resources := make(map[string]struct{})
	for _, t := range tasks {
		if t.HasConflict {
			conflicts++
		}
		resources[t.Resource] = struct{}{}
	}
	if err := s.sink.RecordPlan(coremetrics.PlanEvent{
		RunID:     s.runID,
		Tasks:     len(tasks),
		Conflicts: conflicts,
		Resources: len(resources),
		Duration:  elapsed,
		Time:      time.Now(),
	}); err != nil {
		s.log.Warnf("record plan metrics: %v", err)
	}
	return nil
}

// RunCalendar fetches meetings and prints the ones matching the customer
// list derived from the tracker query.
func (s *Service) RunCalendar(ctx context.Context, days int, fullDay bool) error {
	jiraClient, err := jira.NewClient(s.cfg.Jira)
	if err != nil {
		return err
	}
	query, err := jiraClient.Query()
	if err != nil {
		return err
	}
	customers := match.ExtractCustomers(query)
	if len(customers) == 0 {
		s.log.Warnf("no customers found in query file %s; nothing will match", s.cfg.Jira.QueryFile)
	}
	set := match.BuildPatternSet(customers, s.cfg.Planner.CustomerMeetingFilters)

	cal, err := gcal.NewClient(ctx, s.cfg.Calendar)
	if err != nil {
		return err
	}
	events, err := cal.ListEvents(ctx, days, fullDay)
	if err != nil {
		return err
	}
	matched := match.MatchEvents(events, set)

	fmt.Print(render.Meetings(matched))

	if err := s.sink.RecordCalendarMatch(coremetrics.CalendarMatchEvent{
		RunID:     s.runID,
		Events:    len(events),
		Matched:   len(matched),
		Customers: len(customers),
		Time:      time.Now(),
	}); err != nil {
		s.log.Warnf("record calendar metrics: %v", err)
	}
	return nil
}

// RunStats prints the per-resource workload summary of the unfiltered plan.
func (s *Service) RunStats(ctx context.Context) error {
	tasks, _, err := s.buildPlan(ctx, false)
	if err != nil {
		return err
	}
	fmt.Print(render.Summary(report.Build(tasks)))
	return nil
}

func (s *Service) buildPlan(ctx context.Context, filtered bool) ([]model.Task, time.Duration, error) {
	client, err := jira.NewClient(s.cfg.Jira)
	if err != nil {
		return nil, 0, err
	}
	raws, err := client.FetchIssues(ctx)
	if err != nil {
		return nil, 0, err
	}

	opts := plan.Options{
		ResourceAliases: s.cfg.Planner.ResourceAliases,
		CustomerAliases: s.cfg.Planner.CustomerAliases,
		SortBy:          s.cfg.Planner.SortBy,
		Strict:          s.cfg.Planner.Strict,
		Log:             s.log,
	}
	if filtered {
		opts.Filter = s.cfg.Planner.Filter
	}

	start := time.Now()
	tasks, err := plan.Run(raws, opts)
	if err != nil {
		return nil, 0, err
	}
	return tasks, time.Since(start), nil
}
