package testutil

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/zyedidia/generic/mapset"

	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/core"
)

// NewTestRNG creates a deterministic random number generator for tests
func NewTestRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NopLogger returns a no-op logger for tests
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// SortedCoords returns the members of set ordered by Compare.
func SortedCoords(set mapset.Set[core.Coordinate]) []core.Coordinate {
	out := make([]core.Coordinate, 0, set.Size())
	set.Each(func(c core.Coordinate) {
		out = append(out, c)
	})
	slices.SortFunc(out, core.Coordinate.Compare)
	return out
}

// AssertCoords asserts that set holds exactly the expected coordinates, in
// any order.
func AssertCoords(t *testing.T, expected []core.Coordinate, set mapset.Set[core.Coordinate], msgAndArgs ...interface{}) bool {
	t.Helper()
	if len(expected) == 0 {
		return assert.Zero(t, set.Size(), msgAndArgs...)
	}
	want := slices.Clone(expected)
	slices.SortFunc(want, core.Coordinate.Compare)
	return assert.Equal(t, want, SortedCoords(set), msgAndArgs...)
}
