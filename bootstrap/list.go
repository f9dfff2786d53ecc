// Package bootstrap provides bootstrap resampling of sample arrays.
package bootstrap

import (
	"golang.org/x/exp/rand"

	"github.com/sartorproj/gobootstrap/rng"
)

// Config holds configuration shared by the resampling functions.
type Config struct {
	// Draws is the number of random draws per bootstrap replica. Zero
	// falls back to the original sample count; zero and unset are
	// indistinguishable, so exactly zero draws cannot be requested.
	Draws int
	// Seed, when non-empty, is hashed to seed the random number
	// generator and makes all draws reproducible.
	Seed string
	// Source is the generator used when Seed is empty. When nil, a
	// fresh entropy-seeded source is used instead, so unseeded results
	// are not reproducible.
	Source rand.Source
	// Verbose traces the seed derivation to stdout.
	Verbose bool
}

// source returns the random source selected by the config: the seeded
// source when Seed is set, otherwise the injected or default fallback.
func (c *Config) source() rand.Source {
	if c.Seed != "" {
		return rng.NewSource(c.Seed, c.Verbose)
	}
	if c.Source != nil {
		return c.Source
	}
	return rng.DefaultSource()
}

// draws resolves the per-replica draw count against the sample count.
func (c *Config) draws(nSamples int) int {
	if c.Draws != 0 {
		return c.Draws
	}
	return nSamples
}

// List generates a bootstrap index table of shape [nBoot][m], where m is
// cfg.Draws or nSamples when cfg.Draws is zero. Each entry is drawn
// uniformly from [0, nSamples) with replacement; duplicates within and
// across replicas are expected. A nil cfg uses defaults.
//
// For a fixed cfg.Seed the table is identical on every call. Returns nil
// if nBoot or nSamples is not positive, or cfg.Draws is negative.
func List(nBoot, nSamples int, cfg *Config) [][]int {
	if cfg == nil {
		cfg = &Config{}
	}
	if nBoot <= 0 || nSamples <= 0 || cfg.Draws < 0 {
		return nil
	}
	gen := rand.New(cfg.source())
	return drawList(gen, nBoot, cfg.draws(nSamples), nSamples)
}

// drawList fills an [nBoot][m] table with uniform draws from [0, nSamples).
// Row-major draw order is part of the reproducibility contract.
func drawList(gen *rand.Rand, nBoot, m, nSamples int) [][]int {
	lst := make([][]int, nBoot)
	for b := range lst {
		row := make([]int, m)
		for d := range row {
			row[d] = gen.Intn(nSamples)
		}
		lst[b] = row
	}
	return lst
}
