// SPDX-License-Identifier: MIT

package search

import (
	"math/rand"

	"github.com/katalvlaran/swarmcolor/coloring"
)

// Source is the randomness the engine consumes for initial colourings,
// agent decisions and perturbations.
type Source = coloring.Source

// defaultSeed replaces a zero seed so the zero value stays reproducible.
const defaultSeed int64 = 1

// NewSource returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}
