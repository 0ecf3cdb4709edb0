// Package rng provides the deterministic random source used by perturbation
// sampling. Streams are derived from a base seed plus an operation name, so
// the same run always draws the same factors regardless of how trials are
// scheduled.
package rng

import (
	"context"
	"hash/fnv"
	"math/rand"

	"stratcore/ports"
)

// SeededProvider implements ports.RNGPort with name-derived substreams.
type SeededProvider struct{}

var _ ports.RNGPort = (*SeededProvider)(nil)

// NewSeededProvider creates the default RNG provider.
func NewSeededProvider() *SeededProvider {
	return &SeededProvider{}
}

// SeededStream creates a deterministic generator for a named operation.
func (p *SeededProvider) SeededStream(_ context.Context, name string, seed int64) (*rand.Rand, error) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	derived := seed ^ int64(h.Sum64())
	return rand.New(rand.NewSource(derived)), nil
}
