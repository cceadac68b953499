// SPDX-License-Identifier: MIT
// Package config holds the run configuration of a colouring experiment.
//
// Load order: Default() ← YAML file (optional) ← SWARMCOLOR_* environment
// variables ← validation. Invalid values are reported, never clamped; every
// failure wraps ErrInvalidConfig.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/swarmcolor/builder"
	"github.com/katalvlaran/swarmcolor/palette"
	"github.com/katalvlaran/swarmcolor/perturb"
	"github.com/katalvlaran/swarmcolor/search"
)

// ErrInvalidConfig wraps every load or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Topology names accepted by Config.Topology.
const (
	TopologyRandom   = "random"
	TopologyEmpty    = "empty"
	TopologyPath     = "path"
	TopologyCycle    = "cycle"
	TopologyComplete = "complete"
	TopologyStar     = "star"
	TopologyGrid     = "grid"
)

// Config is the full set of recognised options.
type Config struct {
	NumNodes        int      `yaml:"numNodes" validate:"gte=1"`
	EdgeProbability float64  `yaml:"edgeProbability" validate:"gte=0,lte=1"`
	ColorPalette    []string `yaml:"colorPalette" validate:"min=1,unique,dive,required"`

	ProbabilityNodeChangesColor float64 `yaml:"probabilityNodeChangesColor" validate:"gte=0,lte=1"`
	MaxIterationsPerPaletteSize int     `yaml:"maxIterationsPerPaletteSize" validate:"gte=1"`
	// MaxTotalIterations is the global budget; adaptive mode requires >= 1,
	// monotone mode treats 0 as unbounded.
	MaxTotalIterations int `yaml:"maxTotalIterations" validate:"gte=0"`

	NumEdgesToPerturbPerEvent     int    `yaml:"numEdgesToPerturbPerEvent" validate:"gte=0"`
	PerturbationFrequencyInRounds int    `yaml:"perturbationFrequencyInRounds" validate:"gte=0"`
	PerturbationMode              string `yaml:"perturbationMode" validate:"oneof=approximate exact"`

	// RandomSeed seeds graph generation and the search; 0 selects a fixed default.
	RandomSeed int64 `yaml:"randomSeed"`

	Mode           string `yaml:"mode" validate:"oneof=monotone adaptive"`
	MinPaletteSize int    `yaml:"minPaletteSize" validate:"gte=1"`
	Topology       string `yaml:"topology" validate:"oneof=random empty path cycle complete star grid"`
}

// Default mirrors the reference experiment: 100 nodes at edge probability
// 0.1, the twelve-colour palette, adaptive control, 5 toggles every 2000
// rounds.
func Default() Config {
	return Config{
		NumNodes:                      100,
		EdgeProbability:               0.1,
		ColorPalette:                  palette.DefaultTokens(),
		ProbabilityNodeChangesColor:   0.4,
		MaxIterationsPerPaletteSize:   500,
		MaxTotalIterations:            11500,
		NumEdgesToPerturbPerEvent:     5,
		PerturbationFrequencyInRounds: 2000,
		PerturbationMode:              string(perturb.Approximate),
		RandomSeed:                    0,
		Mode:                          string(search.Adaptive),
		MinPaletteSize:                1,
		Topology:                      TopologyRandom,
	}
}

// Load returns Default() overlaid with the YAML file at path (skipped when
// path is empty) and the environment, then validated.
func Load(path string) (Config, error) {
	cfg, err := LoadUnvalidated(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// LoadUnvalidated is Load without the final Validate, for callers that
// overlay further settings first. Decoding and env parse errors still fail.
func LoadUnvalidated(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// loadFile decodes path strictly: unknown keys are rejected.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read %s: %w", ErrInvalidConfig, path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, path, err)
	}

	return nil
}

var validate = newValidator()

// newValidator reports fields by their yaml names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	return v
}

// Validate checks field constraints and the cross-field rules.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.MinPaletteSize > len(c.ColorPalette) {
		return fmt.Errorf("%w: minPaletteSize %d exceeds palette size %d",
			ErrInvalidConfig, c.MinPaletteSize, len(c.ColorPalette))
	}
	if c.Mode == string(search.Adaptive) && c.MaxTotalIterations < 1 {
		return fmt.Errorf("%w: adaptive mode needs maxTotalIterations >= 1", ErrInvalidConfig)
	}
	if need := minNodes(c.Topology); c.NumNodes < need {
		return fmt.Errorf("%w: topology %q needs numNodes >= %d, got %d",
			ErrInvalidConfig, c.Topology, need, c.NumNodes)
	}

	return nil
}

func minNodes(topology string) int {
	switch topology {
	case TopologyCycle:
		return 3
	case TopologyPath, TopologyStar, TopologyGrid:
		return 2
	default:
		return 1
	}
}

// Palette builds the ordered palette.
func (c Config) Palette() (*palette.Palette, error) {
	p, err := palette.New(c.ColorPalette)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return p, nil
}

// Constructor returns the graph constructor selected by Topology.
func (c Config) Constructor() (builder.Constructor, error) {
	switch c.Topology {
	case TopologyRandom:
		return builder.RandomSparse(c.NumNodes, c.EdgeProbability), nil
	case TopologyEmpty:
		return builder.Empty(c.NumNodes), nil
	case TopologyPath:
		return builder.Path(c.NumNodes), nil
	case TopologyCycle:
		return builder.Cycle(c.NumNodes), nil
	case TopologyComplete:
		return builder.Complete(c.NumNodes), nil
	case TopologyStar:
		return builder.Star(c.NumNodes), nil
	case TopologyGrid:
		return builder.GridFor(c.NumNodes), nil
	default:
		return nil, fmt.Errorf("%w: topology %q", ErrInvalidConfig, c.Topology)
	}
}

// Params maps the configuration onto search parameters.
func (c Config) Params() search.Params {
	return search.Params{
		Mode:                search.Mode(c.Mode),
		ChangeProbability:   c.ProbabilityNodeChangesColor,
		MaxRoundsPerAttempt: c.MaxIterationsPerPaletteSize,
		MaxTotalRounds:      c.MaxTotalIterations,
		MinPaletteSize:      c.MinPaletteSize,
		Perturbation: perturb.Schedule{
			Count: c.NumEdgesToPerturbPerEvent,
			Every: c.PerturbationFrequencyInRounds,
			Mode:  perturb.Mode(c.PerturbationMode),
		},
	}
}

// YAML renders the configuration.
func (c Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}

	return out, nil
}
