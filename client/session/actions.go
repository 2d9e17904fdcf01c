package session

import "github.com/simonolander/laniakea/pkg/puzzle"

// Action is a player intent applied to the current puzzle. The set is
// closed; Manager.Dispatch switches exhaustively over it.
type Action interface {
	isAction()
}

// NewGame discards the current puzzle, its history included, and starts a
// fresh one of the given size.
type NewGame struct {
	Size int
}

// Toggle flips the wall on a border.
type Toggle struct {
	Border puzzle.Border
}

// Check validates the walls against the objective.
type Check struct{}

// Undo reverts the most recent toggle.
type Undo struct{}

// Redo reapplies the most recently undone toggle.
type Redo struct{}

// Hint reveals one wall of the solution.
type Hint struct{}

func (NewGame) isAction() {}
func (Toggle) isAction()  {}
func (Check) isAction()   {}
func (Undo) isAction()    {}
func (Redo) isAction()    {}
func (Hint) isAction()    {}
