package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestEngine() *Engine {
	// 2x2 puzzle whose solution is the whole board around the middle
	// intersection.
	objective := NewObjective([]GalaxyCenter{{Position: P(1, 1), Size: 4}})
	return NewEngine(2, 2, objective)
}

func TestEngine_ToggleInvolution(t *testing.T) {
	engine := newTestEngine()
	defer engine.Release()
	border := NewBorder(P(0, 0), P(0, 1))

	before := engine.View()
	engine.Toggle(border)
	assert.True(t, engine.View().VerticalBorders[0][1])
	engine.Toggle(border)
	after := engine.View()
	assert.Equal(t, before.VerticalBorders, after.VerticalBorders)
	assert.Equal(t, before.HorizontalBorders, after.HorizontalBorders)
	assert.True(t, after.HasPast, "both toggles are recorded")
}

func TestEngine_ToggleObjectiveWallIsNoop(t *testing.T) {
	objective := NewObjective([]GalaxyCenter{{Position: P(1, 1)}})
	fixed := NewBorder(P(0, 0), P(0, 1))
	objective.AddWall(fixed)
	engine := NewEngine(2, 2, objective)
	defer engine.Release()

	engine.Toggle(fixed)
	snapshot := engine.View()
	assert.False(t, snapshot.VerticalBorders[0][1], "fixed wall state is not on the player board")
	assert.False(t, snapshot.HasPast, "no history entry for a rejected toggle")
}

func TestEngine_ToggleFrameIsNoop(t *testing.T) {
	engine := newTestEngine()
	defer engine.Release()

	engine.Toggle(BorderUp(P(0, 0)))
	engine.Toggle(BorderLeft(P(1, 0)))
	engine.Toggle(BorderDown(P(1, 1)))
	snapshot := engine.View()
	assert.True(t, snapshot.HorizontalBorders[0][0], "top frame stays present")
	assert.True(t, snapshot.VerticalBorders[1][0], "left frame stays present")
	assert.True(t, snapshot.HorizontalBorders[2][1], "bottom frame stays present")
	assert.False(t, snapshot.HasPast, "no history entry for a rejected toggle")
}

func TestEngine_UndoRedo(t *testing.T) {
	engine := newTestEngine()
	defer engine.Release()
	first := NewBorder(P(0, 0), P(0, 1))
	second := NewBorder(P(0, 0), P(1, 0))

	engine.Toggle(first)
	engine.Toggle(second)
	assert.True(t, engine.View().HorizontalBorders[1][0])

	engine.Undo()
	snapshot := engine.View()
	assert.False(t, snapshot.HorizontalBorders[1][0])
	assert.True(t, snapshot.VerticalBorders[0][1])
	assert.True(t, snapshot.HasPast)
	assert.True(t, snapshot.HasFuture)

	engine.Redo()
	snapshot = engine.View()
	assert.True(t, snapshot.HorizontalBorders[1][0])
	assert.False(t, snapshot.HasFuture)

	// Undo and redo on exhausted stacks do nothing.
	engine.Redo()
	engine.Undo()
	engine.Undo()
	engine.Undo()
	snapshot = engine.View()
	assert.False(t, snapshot.HasPast)
	assert.False(t, snapshot.VerticalBorders[0][1])
	assert.False(t, snapshot.HorizontalBorders[1][0])
}

func TestEngine_ToggleClearsFuture(t *testing.T) {
	engine := newTestEngine()
	defer engine.Release()

	engine.Toggle(NewBorder(P(0, 0), P(0, 1)))
	engine.Undo()
	assert.True(t, engine.View().HasFuture)

	engine.Toggle(NewBorder(P(0, 0), P(1, 0)))
	assert.False(t, engine.View().HasFuture)
}

func TestEngine_Check(t *testing.T) {
	engine := newTestEngine()
	defer engine.Release()

	snapshot := engine.View()
	assert.Nil(t, snapshot.Error)
	assert.False(t, snapshot.IsSolved, "unchecked board is not solved")

	engine.Check()
	snapshot = engine.View()
	assert.NotNil(t, snapshot.Error)
	assert.True(t, snapshot.IsSolved)
}

func TestEngine_CheckReportsErrors(t *testing.T) {
	engine := newTestEngine()
	defer engine.Release()
	border := NewBorder(P(0, 0), P(0, 1))

	engine.Toggle(border)
	engine.Check()
	snapshot := engine.View()
	assert.False(t, snapshot.IsSolved)
	assert.True(t, snapshot.Error.HasDanglingBorder(border))
	assert.True(t, snapshot.Error.HasCutCenter(P(1, 1)))
}

func TestEngine_MutationsClearError(t *testing.T) {
	engine := newTestEngine()
	defer engine.Release()
	border := NewBorder(P(0, 0), P(0, 1))

	engine.Check()
	assert.NotNil(t, engine.View().Error)
	engine.Toggle(border)
	assert.Nil(t, engine.View().Error)

	engine.Check()
	assert.NotNil(t, engine.View().Error)
	engine.Undo()
	assert.Nil(t, engine.View().Error)

	engine.Check()
	assert.NotNil(t, engine.View().Error)
	engine.Redo()
	assert.Nil(t, engine.View().Error)
}

func TestEngine_Hint(t *testing.T) {
	engine := Generate(5, 5, 42)
	defer engine.Release()

	before := engine.View()
	engine.Check()
	engine.Hint()
	snapshot := engine.View()
	assert.Nil(t, snapshot.Error, "hint clears the validation result")
	assert.Greater(t, len(snapshot.Objective.Walls), len(before.Objective.Walls),
		"revealed wall becomes a fixed objective wall")
	assert.False(t, snapshot.HasPast, "hints are not undoable")
}

func TestEngine_HintSolvesEventually(t *testing.T) {
	engine := Generate(4, 4, 7)
	defer engine.Release()

	// One hint per missing solution wall is enough to finish the puzzle.
	for i := 0; i < 4*5*2; i++ {
		engine.Hint()
	}
	engine.Check()
	assert.True(t, engine.View().IsSolved)
}

func TestEngine_GenerateIsDeterministic(t *testing.T) {
	first := Generate(6, 6, 123)
	defer first.Release()
	second := Generate(6, 6, 123)
	defer second.Release()

	assert.Equal(t, first.View().Objective.Centers, second.View().Objective.Centers)
}

func TestEngine_UseAfterReleasePanics(t *testing.T) {
	engine := newTestEngine()
	engine.Release()
	assert.Panics(t, func() { engine.View() })
	assert.Panics(t, func() { engine.Toggle(NewBorder(P(0, 0), P(0, 1))) })
	assert.Panics(t, func() { engine.Release() })
}
