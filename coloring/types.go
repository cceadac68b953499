package coloring

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/swarmcolor/core"
	"github.com/katalvlaran/swarmcolor/palette"
)

// Sentinel errors for colouring operations.
var (
	ErrSizeMismatch       = errors.New("coloring: colouring does not match graph size")
	ErrEmptyActivePalette = errors.New("coloring: active palette is empty")
	ErrInvalidProbability = errors.New("coloring: probability out of range")
	ErrNodeOutOfRange     = errors.New("coloring: node out of range")
)

// Source is the randomness the agents consume. *math/rand.Rand satisfies it;
// tests inject scripted sources to replay exact decision sequences.
type Source interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Coloring maps node id → palette index.
type Coloring []int

// InitializeRandom assigns each of n nodes an independent uniform colour from
// the active range [0, k).
func InitializeRandom(n, k int, rng Source) (Coloring, error) {
	if k < 1 {
		return nil, fmt.Errorf("InitializeRandom(k=%d): %w", k, ErrEmptyActivePalette)
	}
	if n < 0 {
		return nil, fmt.Errorf("InitializeRandom(n=%d): %w", n, ErrSizeMismatch)
	}
	c := make(Coloring, n)
	for i := range c {
		c[i] = rng.Intn(k)
	}

	return c, nil
}

// Clone returns an independent copy.
func (c Coloring) Clone() Coloring {
	if c == nil {
		return nil
	}

	return append(Coloring(nil), c...)
}

// Distinct returns the number of distinct colours in use.
func (c Coloring) Distinct() int {
	seen := make(map[int]struct{}, len(c))
	for _, col := range c {
		seen[col] = struct{}{}
	}

	return len(seen)
}

// UsesOnly reports whether every node holds a colour from the active range [0, k).
func (c Coloring) UsesOnly(k int) bool {
	for _, col := range c {
		if col < 0 || col >= k {
			return false
		}
	}

	return true
}

// Tokens renders the colouring as palette tokens, node by node.
func (c Coloring) Tokens(p *palette.Palette) []string {
	out := make([]string, len(c))
	for i, col := range c {
		out[i] = p.Token(col)
	}

	return out
}

// Check reports ErrSizeMismatch unless c assigns a colour to every node of g.
func Check(g *core.Graph, c Coloring) error {
	if len(c) != g.NodeCount() {
		return fmt.Errorf("%d colours for %d nodes: %w", len(c), g.NodeCount(), ErrSizeMismatch)
	}

	return nil
}
