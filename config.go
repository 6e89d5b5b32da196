package procman

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/procman/internal/logutil"
	"github.com/viant/procman/model/types"
	"github.com/viant/procman/service/allocator"
	"github.com/viant/procman/service/meta"
)

// Config is a serialisable representation of the engine configuration. Values
// absent from a loaded document keep their defaults.
type Config struct {
	Init      InitConfig       `json:"init" yaml:"init"`
	Resources []allocator.Spec `json:"resources" yaml:"resources"`
	Log       logutil.Config   `json:"log" yaml:"log"`
	Tracing   TracingConfig    `json:"tracing" yaml:"tracing"`
	Events    EventsConfig     `json:"events" yaml:"events"`
}

// InitConfig defines the root process created on initialisation
type InitConfig struct {
	Name     string `json:"name" yaml:"name"`
	Priority int    `json:"priority" yaml:"priority"`
}

type TracingConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Service string `json:"service" yaml:"service"`
	Version string `json:"version" yaml:"version"`
	// Output is a trace file path, stdout when empty
	Output string `json:"output" yaml:"output"`
}

type EventsConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Buffer  int  `json:"buffer" yaml:"buffer"`
}

// DefaultConfig returns the reference setup: "init" at priority 0 with
// resources R1..R4 of capacity 1..4.
func DefaultConfig() *Config {
	return &Config{
		Init:      InitConfig{Name: "init"},
		Resources: allocator.DefaultSpecs(),
		Log:       logutil.DefaultConfig(),
		Tracing:   TracingConfig{Service: "procman", Version: "0.1.0"},
		Events:    EventsConfig{Buffer: 256},
	}
}

// Validate returns an error describing the first invalid setting, or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if strings.TrimSpace(c.Init.Name) == "" {
		return types.ErrInvalidConfig.GenWithStackByArgs("init.name is empty")
	}
	if len(c.Resources) == 0 {
		return types.ErrInvalidConfig.GenWithStackByArgs("no resources defined")
	}
	seen := make(map[string]bool, len(c.Resources))
	for i, spec := range c.Resources {
		if strings.TrimSpace(spec.ID) == "" {
			return types.ErrInvalidConfig.GenWithStackByArgs(fmt.Sprintf("resources[%d].id is empty", i))
		}
		key := strings.ToLower(spec.ID)
		if seen[key] {
			return types.ErrInvalidConfig.GenWithStackByArgs(fmt.Sprintf("duplicate resource %s", spec.ID))
		}
		seen[key] = true
		if spec.Units < 1 {
			return types.ErrInvalidConfig.GenWithStackByArgs(fmt.Sprintf("resource %s units must be > 0", spec.ID))
		}
	}
	if c.Events.Buffer < 0 {
		return types.ErrInvalidConfig.GenWithStackByArgs("events.buffer must be >= 0")
	}
	return nil
}

// LoadConfig reads a YAML configuration from any afs supported URL on top of
// DefaultConfig and validates it.
func LoadConfig(ctx context.Context, URL string, options ...storage.Option) (*Config, error) {
	ret := DefaultConfig()
	if err := meta.New(afs.New(), "", options...).Load(ctx, URL, ret); err != nil {
		return nil, err
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}
