package session

import (
	"math/rand"

	"github.com/simonolander/laniakea/pkg/log"
	"github.com/simonolander/laniakea/pkg/puzzle"
)

// Manager owns the engine of the running puzzle session and is the only
// place that mutates it. The rest of the client reads state through
// Snapshot and expresses intent through Dispatch.
type Manager struct {
	engine   *puzzle.Engine
	snapshot puzzle.Snapshot
	size     int
	rng      *rand.Rand
}

// NewManager starts a session with a generated puzzle of the given size.
// The seed determines this puzzle and every following NewGame.
func NewManager(size int, seed int64) *Manager {
	m := &Manager{
		size: size,
		rng:  rand.New(rand.NewSource(seed)),
	}
	m.engine = puzzle.Generate(size, size, m.rng.Int63())
	m.snapshot = m.engine.View()
	return m
}

// Snapshot returns the state as of the last dispatched action.
func (m *Manager) Snapshot() puzzle.Snapshot {
	return m.snapshot
}

// Size returns the side length of the current puzzle.
func (m *Manager) Size() int {
	return m.size
}

// Dispatch applies an action to the engine and refreshes the snapshot.
func (m *Manager) Dispatch(action Action) {
	switch a := action.(type) {
	case NewGame:
		log.Info("Starting a new %dx%d game", a.Size, a.Size)
		m.engine.Release()
		m.size = a.Size
		m.engine = puzzle.Generate(a.Size, a.Size, m.rng.Int63())
	case Toggle:
		log.Debug("Toggling border %v", a.Border)
		m.engine.Toggle(a.Border)
	case Check:
		m.engine.Check()
	case Undo:
		m.engine.Undo()
	case Redo:
		m.engine.Redo()
	case Hint:
		m.engine.Hint()
	default:
		log.Error("Unhandled action type %T", action)
		return
	}
	m.snapshot = m.engine.View()
}

// Close releases the engine. The manager must not be used afterwards;
// closing twice is a no-op.
func (m *Manager) Close() {
	if m.engine == nil {
		return
	}
	m.engine.Release()
	m.engine = nil
}
