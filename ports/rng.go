package ports

import (
	"context"
	"math/rand"
)

// RNGPort provides seeded random number generation so perturbation sampling
// is reproducible: the same run name and seed always yield the same stream.
type RNGPort interface {
	// SeededStream creates a deterministic random number generator for a
	// named operation.
	SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error)
}
