// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strconv"
	"strings"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SWARMCOLOR_"

// envBinding maps one variable onto one field.
type envBinding struct {
	name string
	set  func(c *Config, v string) error
}

func intField(dst func(c *Config) *int) func(*Config, string) error {
	return func(c *Config, v string) error {
		i, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*dst(c) = i
		return nil
	}
}

func floatField(dst func(c *Config) *float64) func(*Config, string) error {
	return func(c *Config, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*dst(c) = f
		return nil
	}
}

func stringField(dst func(c *Config) *string) func(*Config, string) error {
	return func(c *Config, v string) error {
		*dst(c) = strings.TrimSpace(v)
		return nil
	}
}

var envBindings = []envBinding{
	{"NUM_NODES", intField(func(c *Config) *int { return &c.NumNodes })},
	{"EDGE_PROBABILITY", floatField(func(c *Config) *float64 { return &c.EdgeProbability })},
	{"COLOR_PALETTE", func(c *Config, v string) error {
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		c.ColorPalette = parts
		return nil
	}},
	{"PROBABILITY_NODE_CHANGES_COLOR", floatField(func(c *Config) *float64 { return &c.ProbabilityNodeChangesColor })},
	{"MAX_ITERATIONS_PER_PALETTE_SIZE", intField(func(c *Config) *int { return &c.MaxIterationsPerPaletteSize })},
	{"MAX_TOTAL_ITERATIONS", intField(func(c *Config) *int { return &c.MaxTotalIterations })},
	{"NUM_EDGES_TO_PERTURB_PER_EVENT", intField(func(c *Config) *int { return &c.NumEdgesToPerturbPerEvent })},
	{"PERTURBATION_FREQUENCY_IN_ROUNDS", intField(func(c *Config) *int { return &c.PerturbationFrequencyInRounds })},
	{"PERTURBATION_MODE", stringField(func(c *Config) *string { return &c.PerturbationMode })},
	{"RANDOM_SEED", func(c *Config, v string) error {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
		c.RandomSeed = s
		return nil
	}},
	{"MODE", stringField(func(c *Config) *string { return &c.Mode })},
	{"MIN_PALETTE_SIZE", intField(func(c *Config) *int { return &c.MinPaletteSize })},
	{"TOPOLOGY", stringField(func(c *Config) *string { return &c.Topology })},
}

// applyEnv overlays every set SWARMCOLOR_* variable; lookup is os.LookupEnv
// outside tests. A value that does not parse is an error.
func applyEnv(c *Config, lookup func(string) (string, bool)) error {
	for _, b := range envBindings {
		v, ok := lookup(EnvPrefix + b.name)
		if !ok {
			continue
		}
		if err := b.set(c, v); err != nil {
			return fmt.Errorf("%w: %s%s=%q: %w", ErrInvalidConfig, EnvPrefix, b.name, v, err)
		}
	}

	return nil
}
