package session

import (
	"testing"

	"github.com/simonolander/laniakea/pkg/puzzle"
	"github.com/stretchr/testify/assert"
)

func TestManager_Dispatch(t *testing.T) {
	manager := NewManager(5, 1)
	defer manager.Close()
	border := puzzle.NewBorder(puzzle.P(0, 0), puzzle.P(0, 1))

	assert.False(t, manager.Snapshot().HasPast)

	manager.Dispatch(Toggle{Border: border})
	snapshot := manager.Snapshot()
	assert.True(t, snapshot.HasPast)
	assert.True(t, snapshot.VerticalBorders[0][1])

	manager.Dispatch(Undo{})
	snapshot = manager.Snapshot()
	assert.False(t, snapshot.HasPast)
	assert.True(t, snapshot.HasFuture)
	assert.False(t, snapshot.VerticalBorders[0][1])

	manager.Dispatch(Redo{})
	assert.True(t, manager.Snapshot().VerticalBorders[0][1])

	manager.Dispatch(Check{})
	assert.NotNil(t, manager.Snapshot().Error)
}

func TestManager_NewGameDiscardsHistory(t *testing.T) {
	manager := NewManager(5, 1)
	defer manager.Close()

	manager.Dispatch(Toggle{Border: puzzle.NewBorder(puzzle.P(0, 0), puzzle.P(0, 1))})
	manager.Dispatch(Check{})
	assert.True(t, manager.Snapshot().HasPast)

	manager.Dispatch(NewGame{Size: 6})
	snapshot := manager.Snapshot()
	assert.Equal(t, 6, manager.Size())
	assert.Equal(t, 6, snapshot.Width)
	assert.False(t, snapshot.HasPast)
	assert.False(t, snapshot.HasFuture)
	assert.Nil(t, snapshot.Error, "no stale validation from the old game")
}

func TestManager_Hint(t *testing.T) {
	manager := NewManager(4, 2)
	defer manager.Close()

	manager.Dispatch(Hint{})
	snapshot := manager.Snapshot()
	assert.NotEmpty(t, snapshot.Objective.Walls)
	assert.False(t, snapshot.HasPast)
}

func TestManager_CloseTwice(t *testing.T) {
	manager := NewManager(4, 3)
	manager.Close()
	assert.NotPanics(t, func() { manager.Close() })
}

func TestManager_Deterministic(t *testing.T) {
	first := NewManager(5, 77)
	defer first.Close()
	second := NewManager(5, 77)
	defer second.Close()
	assert.Equal(t, first.Snapshot().Objective.Centers, second.Snapshot().Objective.Centers)

	first.Dispatch(NewGame{Size: 5})
	second.Dispatch(NewGame{Size: 5})
	assert.Equal(t, first.Snapshot().Objective.Centers, second.Snapshot().Objective.Centers)
}
