package puzzle

import "fmt"

// Border is the wall segment between two grid-adjacent cells. The pair is
// unordered; the constructor normalizes it so borders compare and hash by
// value. Frame borders have one endpoint outside the board.
type Border struct {
	// p1 is the lesser endpoint in row-major order.
	p1 Position
	p2 Position
}

func NewBorder(p1, p2 Position) Border {
	if p2.less(p1) {
		p1, p2 = p2, p1
	}
	return Border{p1: p1, p2: p2}
}

// BorderUp returns the border above cell p.
func BorderUp(p Position) Border {
	return NewBorder(p.Up(), p)
}

// BorderDown returns the border below cell p.
func BorderDown(p Position) Border {
	return NewBorder(p, p.Down())
}

// BorderLeft returns the border to the left of cell p.
func BorderLeft(p Position) Border {
	return NewBorder(p.Left(), p)
}

// BorderRight returns the border to the right of cell p.
func BorderRight(p Position) Border {
	return NewBorder(p, p.Right())
}

func (b Border) P1() Position {
	return b.p1
}

func (b Border) P2() Position {
	return b.p2
}

// IsVertical reports whether the wall segment runs vertically, which is the
// case when it separates two horizontally adjacent cells.
func (b Border) IsVertical() bool {
	return b.p1.Row == b.p2.Row
}

func (b Border) IsHorizontal() bool {
	return !b.IsVertical()
}

func (b Border) String() string {
	return fmt.Sprintf("%v|%v", b.p1, b.p2)
}

// borderSet is an insertion-agnostic set of borders.
type borderSet map[Border]struct{}

func (s borderSet) add(b Border) bool {
	if _, ok := s[b]; ok {
		return false
	}
	s[b] = struct{}{}
	return true
}

func (s borderSet) remove(b Border) bool {
	if _, ok := s[b]; !ok {
		return false
	}
	delete(s, b)
	return true
}

func (s borderSet) contains(b Border) bool {
	_, ok := s[b]
	return ok
}

func (s borderSet) clone() borderSet {
	c := make(borderSet, len(s))
	for b := range s {
		c[b] = struct{}{}
	}
	return c
}
