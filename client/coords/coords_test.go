package coords

import (
	"testing"

	"github.com/simonolander/laniakea/pkg/puzzle"
	"github.com/stretchr/testify/assert"
)

func TestMapper_Layout(t *testing.T) {
	mapper := NewMapper(4, 4, 0, 0, 640)

	w, h := mapper.BoardSize()
	assert.InDelta(t, 640, w, 1e-9)
	assert.InDelta(t, 640, h, 1e-9)
	assert.InDelta(t, CellWallRatio*mapper.WallThickness(), mapper.CellSize(), 1e-9)

	x, y, cw, ch := mapper.CellRect(puzzle.P(0, 0))
	assert.InDelta(t, mapper.WallThickness(), x, 1e-9)
	assert.InDelta(t, mapper.WallThickness(), y, 1e-9)
	assert.InDelta(t, mapper.CellSize(), cw, 1e-9)
	assert.InDelta(t, mapper.CellSize(), ch, 1e-9)

	// The right frame band of the last cell ends exactly at the extent.
	x, _, w, _ = mapper.WallRect(puzzle.BorderRight(puzzle.P(0, 3)))
	assert.InDelta(t, 640, x+w, 1e-9)
}

func TestMapper_OriginOffset(t *testing.T) {
	mapper := NewMapper(3, 3, 100, 50, 300)
	x, y, _, _ := mapper.CellRect(puzzle.P(0, 0))
	assert.Greater(t, x, 100.0)
	assert.Greater(t, y, 50.0)
}

func TestMapper_BorderAtRoundTrip(t *testing.T) {
	mapper := NewMapper(5, 5, 20, 40, 500)
	for row := 0; row < 5; row++ {
		for col := 1; col < 5; col++ {
			border := puzzle.BorderLeft(puzzle.P(row, col))
			x, y, w, h := mapper.WallRect(border)
			got, ok := mapper.BorderAt(x+w/2, y+h/2)
			assert.True(t, ok)
			assert.Equal(t, border, got)
		}
	}
	for row := 1; row < 5; row++ {
		for col := 0; col < 5; col++ {
			border := puzzle.BorderUp(puzzle.P(row, col))
			x, y, w, h := mapper.WallRect(border)
			got, ok := mapper.BorderAt(x+w/2, y+h/2)
			assert.True(t, ok)
			assert.Equal(t, border, got)
		}
	}
}

func TestMapper_BorderAtMisses(t *testing.T) {
	mapper := NewMapper(4, 4, 0, 0, 640)

	// Cell centers are not close to any wall.
	x, y, w, h := mapper.CellRect(puzzle.P(1, 1))
	_, ok := mapper.BorderAt(x+w/2, y+h/2)
	assert.False(t, ok)

	// Points outside the board resolve to nothing.
	_, ok = mapper.BorderAt(-10, -10)
	assert.False(t, ok)
	_, ok = mapper.BorderAt(10000, 10000)
	assert.False(t, ok)
}

func TestMapper_CenterPoint(t *testing.T) {
	mapper := NewMapper(4, 4, 0, 0, 640)

	// A center on a cell sits on the cell's middle.
	x, y, w, h := mapper.CellRect(puzzle.P(1, 2))
	cx, cy := mapper.CenterPoint(puzzle.P(1, 2).Doubled())
	assert.InDelta(t, x+w/2, cx, 1e-9)
	assert.InDelta(t, y+h/2, cy, 1e-9)

	// A center on a vertical border sits on the middle of the wall band.
	bx, by, bw, bh := mapper.WallRect(puzzle.BorderRight(puzzle.P(1, 1)))
	cx, cy = mapper.CenterPoint(puzzle.P(2, 3))
	assert.InDelta(t, bx+bw/2, cx, 1e-9)
	assert.InDelta(t, by+bh/2, cy, 1e-9)
}

func TestMapper_CellAt(t *testing.T) {
	mapper := NewMapper(4, 4, 0, 0, 640)
	x, y, w, h := mapper.CellRect(puzzle.P(2, 3))
	cell, ok := mapper.CellAt(x+w/2, y+h/2)
	assert.True(t, ok)
	assert.Equal(t, puzzle.P(2, 3), cell)

	// Wall bands belong to no cell.
	_, ok = mapper.CellAt(x-mapper.WallThickness()/2, y+h/2)
	assert.False(t, ok)
}
