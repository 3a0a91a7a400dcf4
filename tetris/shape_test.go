package tetris

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawn(t *testing.T) {
	pivots := map[Kind]Coord{
		KindI: {1, 0},
		KindO: {0, 0},
		KindT: {0, 0},
		KindJ: {0, 1},
		KindL: {0, 1},
		KindS: {0, 0},
		KindZ: {0, 0},
	}

	for _, k := range Kinds {
		t.Run(k.String(), func(t *testing.T) {
			s := Spawn(k)
			assert.Equal(t, k, s.Kind())
			assert.Equal(t, 4, s.Len())
			assert.Equal(t, pivots[k], s.Pivot())
			assert.True(t, s.Contains(Coord{0, 0}), "every layout includes its origin")
		})
	}

	assert.Panics(t, func() { Spawn(Kind(42)) })
}

func TestRotate(t *testing.T) {
	t.Run("I turns vertical about its pivot", func(t *testing.T) {
		r := Spawn(KindI).Rotate()
		assert.Equal(t, []Coord{{1, -1}, {1, 0}, {1, 1}, {1, 2}}, r.Cells())
		assert.Equal(t, Coord{1, 0}, r.Pivot())
	})

	t.Run("T", func(t *testing.T) {
		r := Spawn(KindT).Rotate()
		assert.Equal(t, []Coord{{0, 0}, {-1, 1}, {0, 1}, {0, 2}}, r.Cells())
	})

	t.Run("four turns restore every shape", func(t *testing.T) {
		for _, k := range Kinds {
			for _, offset := range []Coord{{0, 0}, {5, 7}, {-3, 12}} {
				s := Spawn(k).Translate(offset)
				r := s.Rotate().Rotate().Rotate().Rotate()
				assert.True(t, s.Equal(r), "%s rotated four times: got %s", s, r)
			}
		}
	})

	t.Run("does not touch the receiver", func(t *testing.T) {
		s := Spawn(KindL)
		before := s.Cells()
		_ = s.Rotate()
		assert.Equal(t, before, s.Cells())
	})
}

func TestTranslate(t *testing.T) {
	s := Spawn(KindS)
	moved := s.Translate(Coord{3, 2})

	assert.Equal(t, []Coord{{0, 0}, {1, 0}, {-1, 1}, {0, 1}}, s.Cells())
	assert.Equal(t, []Coord{{3, 2}, {4, 2}, {2, 3}, {3, 3}}, moved.Cells())
	assert.Equal(t, Coord{3, 2}, moved.Pivot())
	assert.Equal(t, KindS, moved.Kind())
}

func TestCollidesWith(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Shape
		expect bool
	}{
		{"same shape", Spawn(KindO), Spawn(KindO), true},
		{"overlapping column", Spawn(KindO), Spawn(KindO).Translate(Coord{1, 0}), true},
		{"side by side", Spawn(KindO), Spawn(KindO).Translate(Coord{2, 0}), false},
		{"stacked", Spawn(KindI), Spawn(KindI).Translate(Down), false},
		{"crossing", Spawn(KindI), Spawn(KindI).Rotate(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.a.CollidesWith(tt.b))
			assert.Equal(t, tt.expect, tt.b.CollidesWith(tt.a))
		})
	}
}

func TestRemoveRow(t *testing.T) {
	l := Spawn(KindL) // (0,0) (0,1) (0,2) (1,2)

	tests := []struct {
		name   string
		row    int
		expect []Coord
	}{
		{"middle row", 1, []Coord{{0, 1}, {0, 2}, {1, 2}}},
		{"bottom row", 2, []Coord{{0, 1}, {0, 2}}},
		{"top row", 0, []Coord{{0, 1}, {0, 2}, {1, 2}}},
		{"row below the shape", 5, []Coord{{0, 1}, {0, 2}, {0, 3}, {1, 3}}},
		{"row above the shape", -1, []Coord{{0, 0}, {0, 1}, {0, 2}, {1, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.RemoveRow(tt.row)
			assert.Equal(t, tt.expect, got.Cells())
			assert.Equal(t, KindL, got.Kind())
			assert.Equal(t, l.Pivot(), got.Pivot())
		})
	}

	assert.Equal(t, 4, l.Len(), "receiver must be unchanged")
}

func TestRandomShape(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	seen := make(map[Kind]int)
	for range 700 {
		s := RandomShape(rng)
		require.Equal(t, 4, s.Len())
		seen[s.Kind()]++
	}

	assert.Len(t, seen, len(Kinds))
	for k, n := range seen {
		assert.Greater(t, n, 50, "kind %s drawn too rarely", k)
	}
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "O{(0,0) (1,0) (0,1) (1,1) @(0,0)}", Spawn(KindO).String())
	assert.Equal(t, "Z", KindZ.String())
	assert.Equal(t, "?", Kind(9).String())
	assert.False(t, Kind(7).Valid())
}
