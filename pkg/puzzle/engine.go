package puzzle

import (
	"math/rand"
	"sort"
)

// Engine owns the full state of one puzzle: the hidden solution, the
// player's walls, the objective, the undo history and the last validation
// result. An Engine is handed out exclusively; the holder must call Release
// exactly once when done, after which every other method panics.
type Engine struct {
	universe  *Universe
	board     *Board
	objective *Objective
	history   *History
	err       *BoardError
	rng       *rand.Rand
	released  bool
}

// Snapshot is an immutable view of the engine state for rendering. Border
// matrices include the frame, which is always present.
type Snapshot struct {
	Width  int
	Height int
	// HorizontalBorders is (Height+1) x Width; element [r][c] is the wall
	// between cells (r-1, c) and (r, c).
	HorizontalBorders [][]bool
	// VerticalBorders is Height x (Width+1); element [r][c] is the wall
	// between cells (r, c-1) and (r, c).
	VerticalBorders [][]bool
	Objective       *Objective
	// Error is the result of the last Check, or nil if walls changed since.
	Error     *BoardError
	HasPast   bool
	HasFuture bool
	// IsSolved is true when the last Check found nothing wrong.
	IsSolved bool
}

// Generate creates a new puzzle of the given dimensions. The same seed
// yields the same puzzle.
func Generate(width, height int, seed int64) *Engine {
	rng := rand.New(rand.NewSource(seed))
	universe := GenerateUniverse(width, height, rng)
	return &Engine{
		universe:  universe,
		board:     NewBoard(width, height),
		objective: ObjectiveFromUniverse(universe),
		history:   NewHistory(),
		rng:       rng,
	}
}

// NewEngine creates an engine for a fixed objective, without a hidden
// solution. Hints are unavailable on such engines.
func NewEngine(width, height int, objective *Objective) *Engine {
	return &Engine{
		board:     NewBoard(width, height),
		objective: objective.clone(),
		history:   NewHistory(),
		rng:       rand.New(rand.NewSource(0)),
	}
}

func (e *Engine) checkReleased() {
	if e.released {
		panic("puzzle: use of released engine")
	}
}

// Release ends the engine's lifetime. Calling it twice panics.
func (e *Engine) Release() {
	e.checkReleased()
	e.released = true
	e.universe = nil
	e.board = nil
	e.objective = nil
	e.history = nil
	e.err = nil
}

// View returns a snapshot of the current state.
func (e *Engine) View() Snapshot {
	e.checkReleased()
	return Snapshot{
		Width:             e.board.Width(),
		Height:            e.board.Height(),
		HorizontalBorders: e.board.HorizontalBorders(),
		VerticalBorders:   e.board.VerticalBorders(),
		Objective:         e.objective.clone(),
		Error:             e.err,
		HasPast:           e.history.HasPast(),
		HasFuture:         e.history.HasFuture(),
		IsSolved:          e.err.IsErrorFree(),
	}
}

// Toggle flips the wall on the given border. The outer frame and the
// objective walls are fixed and toggling one does nothing. Any other toggle
// is recorded in the history, discards the redoable future and clears the
// last validation result.
func (e *Engine) Toggle(border Border) {
	e.checkReleased()
	if !e.board.IsInterior(border) || e.objective.IsWall(border) {
		return
	}
	e.board.ToggleWall(border.P1(), border.P2())
	e.history.Push(border)
	e.err = nil
}

// Undo reverts the most recent toggle. Does nothing with an empty history.
func (e *Engine) Undo() {
	e.checkReleased()
	border, ok := e.history.Undo()
	if !ok {
		return
	}
	e.board.ToggleWall(border.P1(), border.P2())
	e.err = nil
}

// Redo reapplies the most recently undone toggle.
func (e *Engine) Redo() {
	e.checkReleased()
	border, ok := e.history.Redo()
	if !ok {
		return
	}
	e.board.ToggleWall(border.P1(), border.P2())
	e.err = nil
}

// Check validates the walls against the objective. The result is visible in
// the next snapshot and stays until the walls change.
func (e *Engine) Check() {
	e.checkReleased()
	e.err = e.board.ComputeError(e.objective)
}

// Hint reveals one random wall of the hidden solution that the player is
// missing. The wall becomes a fixed objective wall, so it cannot be toggled
// away, and the reveal is not undoable. Engines without a hidden solution
// ignore the call.
func (e *Engine) Hint() {
	e.checkReleased()
	if e.universe == nil {
		return
	}
	var missing []Border
	for _, border := range e.universe.Board().InteriorBorders() {
		if !e.board.IsActive(border) {
			missing = append(missing, border)
		}
	}
	if len(missing) == 0 {
		return
	}
	sort.Slice(missing, func(i, j int) bool {
		if missing[i].P1() != missing[j].P1() {
			return missing[i].P1().less(missing[j].P1())
		}
		return missing[i].P2().less(missing[j].P2())
	})
	border := missing[e.rng.Intn(len(missing))]
	e.board.AddWall(border.P1(), border.P2())
	e.objective.AddWall(border)
	e.err = nil
}
