package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolver_Solve(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		centers []GalaxyCenter
		want    string
	}{
		{
			name:    "whole board galaxy",
			width:   2,
			height:  2,
			centers: []GalaxyCenter{{Position: P(1, 1)}},
			want: "┌───┐\n" +
				"│   │\n" +
				"└───┘",
		},
		{
			name:    "two dominoes",
			width:   2,
			height:  1,
			centers: []GalaxyCenter{{Position: P(0, 0)}, {Position: P(0, 2)}},
			want: "┌─┬─┐\n" +
				"└─┴─┘",
		},
		{
			name:   "four by four",
			width:  4,
			height: 4,
			centers: []GalaxyCenter{
				{Position: P(0, 7)},
				{Position: P(1, 5)},
				{Position: P(3, 1)},
				{Position: P(4, 3)},
				{Position: P(5, 6)},
			},
			want: "┌─┬───┬─┐\n" +
				"│ ├─┐ └─┤\n" +
				"│ │ ├───┤\n" +
				"│ │ │   │\n" +
				"└─┴─┴───┘",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			solver := NewSolver(tt.width, tt.height, NewObjective(tt.centers))
			solution, err := solver.Solve()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, solution.Board(tt.width, tt.height).String())
		})
	}
}

func TestSolver_Contradiction(t *testing.T) {
	// A single center on the left cell of a 2x1 board cannot cover the
	// right cell: its mirror would fall outside the board.
	solver := NewSolver(2, 1, NewObjective([]GalaxyCenter{{Position: P(0, 0)}}))
	_, err := solver.Solve()
	assert.ErrorIs(t, err, ErrContradiction)
}

func TestSolver_DeductionsAreSound(t *testing.T) {
	// Generated puzzles are not necessarily unique, so the solver may not
	// decide every border. Every wall it does decide must be a wall of the
	// generating universe.
	for seed := int64(0); seed < 3; seed++ {
		engine := Generate(5, 5, seed)
		solutionBoard := engine.universe.Board()
		solution, err := NewSolver(5, 5, engine.objective).Solve()
		assert.NoError(t, err, "seed %d", seed)
		if err == nil {
			for _, border := range solution.Borders {
				assert.True(t, solutionBoard.IsActive(border), "seed %d: %v", seed, border)
			}
		}
		engine.Release()
	}
}
