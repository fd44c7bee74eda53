// Package metrics provides the Prometheus and InfluxDB sink implementations
// for the core metrics interfaces, plus a factory assembling them from
// configuration.
package metrics

import (
	"context"

	coremetrics "github.com/planweave/planweave/core/metrics"
	"github.com/planweave/planweave/infra/logger"
)

// New assembles the configured sinks. With no backend enabled it returns a
// NopSink; with several it returns a MultiSink. When Prometheus is enabled
// the metrics endpoint is served in the background until ctx is canceled.
func New(ctx context.Context, cfg coremetrics.Config, log logger.Logger) (coremetrics.Sink, error) {
	var sinks []coremetrics.Sink
	if cfg.PrometheusEnabled {
		sink, err := NewPromSink()
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, sink)
		go func() {
			if err := StartPromServer(ctx, cfg.PrometheusPort); err != nil {
				log.Errorf("prom server: %v", err)
			}
		}()
	}
	if cfg.InfluxEnabled {
		sinks = append(sinks, NewInfluxSinkWithFallback(cfg.InfluxURL, cfg.InfluxToken, cfg.InfluxOrg, cfg.InfluxBucket))
	}
	switch len(sinks) {
	case 0:
		return coremetrics.NopSink{}, nil
	case 1:
		return sinks[0], nil
	default:
		return NewMultiSink(sinks...), nil
	}
}
