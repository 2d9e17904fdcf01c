package puzzle

import "fmt"

// Position is a cell coordinate on the board. Galaxy centers use the same
// type in doubled (half-step) coordinates, so that a center can sit on a
// cell, on the edge between two cells, or on the intersection of four cells.
type Position struct {
	Row    int
	Column int
}

func P(row, column int) Position {
	return Position{Row: row, Column: column}
}

func (p Position) Up() Position {
	return Position{Row: p.Row - 1, Column: p.Column}
}

func (p Position) Down() Position {
	return Position{Row: p.Row + 1, Column: p.Column}
}

func (p Position) Left() Position {
	return Position{Row: p.Row, Column: p.Column - 1}
}

func (p Position) Right() Position {
	return Position{Row: p.Row, Column: p.Column + 1}
}

// Adjacent returns the four orthogonally adjacent positions.
func (p Position) Adjacent() [4]Position {
	return [4]Position{p.Up(), p.Down(), p.Left(), p.Right()}
}

// IsAdjacentTo reports whether p and other differ by exactly 1 in exactly one axis.
func (p Position) IsAdjacentTo(other Position) bool {
	dr := p.Row - other.Row
	dc := p.Column - other.Column
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// Doubled returns the position in doubled coordinates.
func (p Position) Doubled() Position {
	return Position{Row: 2 * p.Row, Column: 2 * p.Column}
}

// MirrorPosition mirrors the cell position cell through the receiver,
// where the receiver is a center in doubled coordinates.
func (p Position) MirrorPosition(cell Position) Position {
	return Position{Row: p.Row - cell.Row, Column: p.Column - cell.Column}
}

func (p Position) less(other Position) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Column < other.Column
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Column)
}

// PlacementKind describes where a center in doubled coordinates sits
// relative to the cell grid.
type PlacementKind int

const (
	PlacementCell PlacementKind = iota
	PlacementVerticalBorder
	PlacementHorizontalBorder
	PlacementIntersection
)

// CenterPlacement resolves a center in doubled coordinates to the cells it
// touches: one cell, the two cells flanking a border, or the four cells
// around an intersection.
type CenterPlacement struct {
	Kind  PlacementKind
	Cells []Position
}

// GetCenterPlacement interprets the receiver as a center in doubled
// coordinates and returns its placement.
func (p Position) GetCenterPlacement() CenterPlacement {
	rowOdd := p.Row%2 != 0
	columnOdd := p.Column%2 != 0
	top := p.Row / 2
	left := p.Column / 2
	switch {
	case !rowOdd && !columnOdd:
		return CenterPlacement{
			Kind:  PlacementCell,
			Cells: []Position{{Row: top, Column: left}},
		}
	case !rowOdd && columnOdd:
		return CenterPlacement{
			Kind:  PlacementVerticalBorder,
			Cells: []Position{{Row: top, Column: left}, {Row: top, Column: left + 1}},
		}
	case rowOdd && !columnOdd:
		return CenterPlacement{
			Kind:  PlacementHorizontalBorder,
			Cells: []Position{{Row: top, Column: left}, {Row: top + 1, Column: left}},
		}
	default:
		return CenterPlacement{
			Kind: PlacementIntersection,
			Cells: []Position{
				{Row: top, Column: left},
				{Row: top, Column: left + 1},
				{Row: top + 1, Column: left},
				{Row: top + 1, Column: left + 1},
			},
		}
	}
}
