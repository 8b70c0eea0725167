package core

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Rand is the source of every random draw the simulation makes.
// A *rand.Rand satisfies it. Supplying a scripted implementation
// fixes the draw sequence.
type Rand interface {
	// Returns a uniform int in [0, n)
	Intn(n int) int
}

// Returns a pseudo-random generator that always produces the same
// draw sequence for the same seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Draws a uniform int in [1, 100]
func rollPercent(rng Rand) int {
	return rng.Intn(100) + 1
}

// Randomness controls how strongly the better seeded team is
// favored when a game is resolved.
type Randomness int

const (
	HeavyFavorites    Randomness = 1
	ModerateFavorites Randomness = 2
	SlightFavorites   Randomness = 3
	TossUp            Randomness = 4
)

func (r Randomness) Validate() error {
	if r < HeavyFavorites || r > TossUp {
		return &ConfigError{Field: "randomness", Value: int(r), Err: ErrRandomnessRange}
	}
	return nil
}

func (r Randomness) String() string {
	switch r {
	case HeavyFavorites:
		return "heavily favored"
	case ModerateFavorites:
		return "moderately favored"
	case SlightFavorites:
		return "slightly favored"
	case TossUp:
		return "toss up"
	}
	return fmt.Sprintf("Randomness(%d)", int(r))
}
