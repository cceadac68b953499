// Package palette holds the fixed, ordered list of colour tokens the agents
// draw from, and selects the active prefix for a given palette size.
//
// The order matters: agents resolve conflicts with the first free colour of
// the active prefix, so earlier tokens are preferred and the search is pushed
// toward fewer distinct colours.
package palette

import (
	"errors"
	"fmt"
)

// Sentinel errors for palette construction and selection.
var (
	// ErrEmptyPalette indicates a palette with no tokens.
	ErrEmptyPalette = errors.New("palette: no colour tokens")

	// ErrEmptyToken indicates a zero-length colour token.
	ErrEmptyToken = errors.New("palette: empty colour token")

	// ErrDuplicateToken indicates the same token appears twice.
	ErrDuplicateToken = errors.New("palette: duplicate colour token")

	// ErrActiveSizeOutOfRange indicates an active size outside [1, Size()].
	ErrActiveSizeOutOfRange = errors.New("palette: active size out of range")
)

// defaultTokens is the twelve-colour list used by the reference experiments.
var defaultTokens = []string{
	"cyan", "magenta", "red", "green", "blue", "yellow",
	"purple", "lime", "orange", "maroon", "lightsteelblue", "navy",
}

// Palette is an immutable ordered sequence of distinct colour tokens.
// Colours are referred to by their index in this order.
type Palette struct {
	tokens []string
	index  map[string]int
}

// New validates tokens and returns a Palette that owns a private copy.
func New(tokens []string) (*Palette, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyPalette
	}
	p := &Palette{
		tokens: make([]string, len(tokens)),
		index:  make(map[string]int, len(tokens)),
	}
	for i, tok := range tokens {
		if tok == "" {
			return nil, fmt.Errorf("token %d: %w", i, ErrEmptyToken)
		}
		if prev, dup := p.index[tok]; dup {
			return nil, fmt.Errorf("token %q at %d and %d: %w", tok, prev, i, ErrDuplicateToken)
		}
		p.tokens[i] = tok
		p.index[tok] = i
	}

	return p, nil
}

// Default returns the twelve-colour reference palette.
func Default() *Palette {
	p, _ := New(defaultTokens)
	return p
}

// DefaultTokens returns a copy of the reference token list.
func DefaultTokens() []string {
	return append([]string(nil), defaultTokens...)
}

// Size returns the number of tokens in the full palette.
func (p *Palette) Size() int {
	return len(p.tokens)
}

// Token returns the token at index i, or "" when i is out of range.
func (p *Palette) Token(i int) string {
	if i < 0 || i >= len(p.tokens) {
		return ""
	}

	return p.tokens[i]
}

// Index returns the position of token and whether it is part of the palette.
func (p *Palette) Index(token string) (int, bool) {
	i, ok := p.index[token]
	return i, ok
}

// Tokens returns a copy of the full ordered token list.
func (p *Palette) Tokens() []string {
	return append([]string(nil), p.tokens...)
}

// Active returns a copy of the first k tokens, the subset agents may pick
// from at palette size k.
func (p *Palette) Active(k int) ([]string, error) {
	if err := p.CheckSize(k); err != nil {
		return nil, err
	}

	return append([]string(nil), p.tokens[:k]...), nil
}

// CheckSize reports ErrActiveSizeOutOfRange unless 1 <= k <= Size().
func (p *Palette) CheckSize(k int) error {
	if k < 1 || k > len(p.tokens) {
		return fmt.Errorf("size %d not in [1,%d]: %w", k, len(p.tokens), ErrActiveSizeOutOfRange)
	}

	return nil
}
