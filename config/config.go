// Package config loads the planner configuration from a JSON or YAML file
// with optional environment overrides (PW_ prefix, __ as separator).
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/planweave/planweave/core/metrics"
)

// Config is the root configuration object.
type Config struct {
	Jira     JiraConfig     `json:"jira"`
	Calendar CalendarConfig `json:"calendar"`
	Planner  PlannerConfig  `json:"planner"`
	Metrics  metrics.Config `json:"metrics"`
}

// Load reads the file at path, applies environment overrides, fills defaults
// and validates every section. Validation failures here stop the run before
// any fetching or planning happens.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides, e.g. PW_JIRA__BASE_URL.
	if err := k.Load(env.Provider("PW_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "pw_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Jira.SetDefaults()
	cfg.Calendar.SetDefaults()
	cfg.Planner.SetDefaults()
	cfg.Metrics.SetDefaults()
	if err := cfg.Jira.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Calendar.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Planner.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
