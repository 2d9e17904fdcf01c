package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoard_StringRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		art  string
	}{
		{
			name: "empty 1x1",
			art: "┌─┐\n" +
				"└─┘",
		},
		{
			name: "empty 3x2",
			art: "┌─────┐\n" +
				"│     │\n" +
				"└─────┘",
		},
		{
			name: "partitioned 4x4",
			art: "┌─┬───┬─┐\n" +
				"│ ├─┐ └─┤\n" +
				"│ │ ├───┤\n" +
				"│ │ │   │\n" +
				"└─┴─┴───┘",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := ParseBoard(tt.art)
			assert.Equal(t, tt.art, board.String())
		})
	}
}

func TestNewBoard_FrameOnly(t *testing.T) {
	board := NewBoard(3, 2)
	assert.Equal(t, 3, board.Width())
	assert.Equal(t, 2, board.Height())
	assert.Empty(t, board.InteriorBorders())
	assert.Len(t, board.Borders(), 10)
	assert.True(t, board.IsWall(P(0, -1), P(0, 0)))
	assert.True(t, board.IsWall(P(1, 2), P(2, 2)))
	assert.False(t, board.IsWall(P(0, 0), P(0, 1)))
}

func TestBoard_ToggleWall(t *testing.T) {
	board := NewBoard(3, 3)
	assert.True(t, board.ToggleWall(P(1, 1), P(1, 2)))
	assert.True(t, board.IsWall(P(1, 1), P(1, 2)))
	assert.True(t, board.IsWall(P(1, 2), P(1, 1)), "wall lookup is unordered")
	assert.False(t, board.ToggleWall(P(1, 2), P(1, 1)))
	assert.False(t, board.IsWall(P(1, 1), P(1, 2)))
}

func TestBoard_Galaxies(t *testing.T) {
	board := ParseBoard(
		"┌─┬───┬─┐\n" +
			"│ ├─┐ └─┤\n" +
			"│ │ ├───┤\n" +
			"│ │ │   │\n" +
			"└─┴─┴───┘")
	galaxies := board.Galaxies()
	assert.Len(t, galaxies, 5)
	total := 0
	for _, galaxy := range galaxies {
		assert.True(t, galaxy.IsValid(), "expected a valid galaxy, got %v", galaxy.Positions())
		total += galaxy.Size()
	}
	assert.Equal(t, 16, total)
}

func TestBoard_BorderMatrices(t *testing.T) {
	board := NewBoard(2, 2)
	board.AddWall(P(0, 0), P(0, 1))
	board.AddWall(P(0, 1), P(1, 1))

	vertical := board.VerticalBorders()
	assert.Len(t, vertical, 2)
	for _, row := range vertical {
		assert.Len(t, row, 3)
		assert.True(t, row[0], "left frame")
		assert.True(t, row[2], "right frame")
	}
	assert.True(t, vertical[0][1])
	assert.False(t, vertical[1][1])

	horizontal := board.HorizontalBorders()
	assert.Len(t, horizontal, 3)
	for _, row := range horizontal {
		assert.Len(t, row, 2)
	}
	for col := 0; col < 2; col++ {
		assert.True(t, horizontal[0][col], "top frame")
		assert.True(t, horizontal[2][col], "bottom frame")
	}
	assert.False(t, horizontal[1][0])
	assert.True(t, horizontal[1][1])
}

func TestBoard_ComputeError(t *testing.T) {
	tests := []struct {
		name    string
		board   func() *Board
		centers []GalaxyCenter
		verify  func(t *testing.T, err *BoardError)
	}{
		{
			name:    "whole board around intersection center is solved",
			board:   func() *Board { return NewBoard(2, 2) },
			centers: []GalaxyCenter{{Position: P(1, 1)}},
			verify: func(t *testing.T, err *BoardError) {
				assert.True(t, err.IsErrorFree())
			},
		},
		{
			name:    "no centers leaves every cell centerless",
			board:   func() *Board { return NewBoard(2, 2) },
			centers: nil,
			verify: func(t *testing.T, err *BoardError) {
				assert.Len(t, err.CenterlessCells, 4)
				assert.False(t, err.IsErrorFree())
			},
		},
		{
			name: "lone interior wall dangles",
			board: func() *Board {
				board := NewBoard(3, 3)
				board.AddWall(P(1, 0), P(1, 1))
				return board
			},
			centers: []GalaxyCenter{{Position: P(2, 2)}},
			verify: func(t *testing.T, err *BoardError) {
				assert.Equal(t, []Border{NewBorder(P(1, 0), P(1, 1))}, err.DanglingBorders)
			},
		},
		{
			name: "wall through a border center cuts it",
			board: func() *Board {
				board := NewBoard(2, 1)
				board.AddWall(P(0, 0), P(0, 1))
				return board
			},
			centers: []GalaxyCenter{{Position: P(0, 1)}},
			verify: func(t *testing.T, err *BoardError) {
				assert.Equal(t, []Position{P(0, 1)}, err.CutCenters)
			},
		},
		{
			name:    "region center mismatch is asymmetric",
			board:   func() *Board { return NewBoard(2, 2) },
			centers: []GalaxyCenter{{Position: P(0, 0)}},
			verify: func(t *testing.T, err *BoardError) {
				assert.Equal(t, []Position{P(0, 0)}, err.AsymmetricCenters)
			},
		},
		{
			name:    "size hint mismatch",
			board:   func() *Board { return NewBoard(2, 2) },
			centers: []GalaxyCenter{{Position: P(1, 1), Size: 3}},
			verify: func(t *testing.T, err *BoardError) {
				assert.Equal(t, []Position{P(1, 1)}, err.WrongSizeCenters)
				assert.Empty(t, err.AsymmetricCenters)
				assert.False(t, err.IsErrorFree())
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.board().ComputeError(NewObjective(tt.centers))
			tt.verify(t, err)
		})
	}
}

func TestBoard_isDangling(t *testing.T) {
	// A frame-to-frame cut has no free endpoints.
	board := NewBoard(3, 3)
	board.AddWall(P(0, 0), P(0, 1))
	board.AddWall(P(1, 0), P(1, 1))
	board.AddWall(P(2, 0), P(2, 1))
	err := board.ComputeError(NewObjective(nil))
	assert.Empty(t, err.DanglingBorders)

	// Breaking the cut leaves the middle wall with a free endpoint.
	board.RemoveWall(P(2, 0), P(2, 1))
	err = board.ComputeError(NewObjective(nil))
	assert.Equal(t, []Border{NewBorder(P(1, 0), P(1, 1))}, err.DanglingBorders)
}
