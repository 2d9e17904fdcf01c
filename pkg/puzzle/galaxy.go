package puzzle

// Galaxy is a set of cell positions. A valid galaxy is non-empty, connected,
// contains its own center, and is rotationally symmetric (order 2) about it.
type Galaxy struct {
	positions map[Position]struct{}
}

func NewGalaxy(positions ...Position) *Galaxy {
	g := &Galaxy{positions: make(map[Position]struct{}, len(positions))}
	for _, p := range positions {
		g.positions[p] = struct{}{}
	}
	return g
}

func (g *Galaxy) Size() int {
	return len(g.positions)
}

func (g *Galaxy) IsEmpty() bool {
	return len(g.positions) == 0
}

func (g *Galaxy) Contains(p Position) bool {
	_, ok := g.positions[p]
	return ok
}

func (g *Galaxy) Add(p Position) {
	g.positions[p] = struct{}{}
}

func (g *Galaxy) Remove(p Position) {
	delete(g.positions, p)
}

func (g *Galaxy) Clone() *Galaxy {
	c := &Galaxy{positions: make(map[Position]struct{}, len(g.positions))}
	for p := range g.positions {
		c.positions[p] = struct{}{}
	}
	return c
}

// WithPosition returns a copy of the galaxy with p added.
func (g *Galaxy) WithPosition(p Position) *Galaxy {
	c := g.Clone()
	c.Add(p)
	return c
}

// Positions returns the cells of the galaxy in unspecified order.
func (g *Galaxy) Positions() []Position {
	out := make([]Position, 0, len(g.positions))
	for p := range g.positions {
		out = append(out, p)
	}
	return out
}

// Center returns the center of the galaxy in doubled coordinates, computed
// from the bounding rectangle. The center of [(0,0)] is (0,0), the center of
// [(0,0),(0,1)] is (0,1), and the center of [(0,1)] is (0,2).
func (g *Galaxy) Center() Position {
	first := true
	var minRow, maxRow, minCol, maxCol int
	for p := range g.positions {
		if first {
			minRow, maxRow, minCol, maxCol = p.Row, p.Row, p.Column, p.Column
			first = false
			continue
		}
		if p.Row < minRow {
			minRow = p.Row
		}
		if p.Row > maxRow {
			maxRow = p.Row
		}
		if p.Column < minCol {
			minCol = p.Column
		}
		if p.Column > maxCol {
			maxCol = p.Column
		}
	}
	return Position{Row: minRow + maxRow, Column: minCol + maxCol}
}

// MirrorPosition mirrors p through the center of the galaxy.
func (g *Galaxy) MirrorPosition(p Position) Position {
	return g.Center().MirrorPosition(p)
}

func (g *Galaxy) IsSymmetric() bool {
	center := g.Center()
	for p := range g.positions {
		if !g.Contains(center.MirrorPosition(p)) {
			return false
		}
	}
	return true
}

func (g *Galaxy) IsConnected() bool {
	if g.IsEmpty() {
		return true
	}
	var start Position
	for p := range g.positions {
		start = p
		break
	}
	visited := map[Position]struct{}{start: {}}
	queue := []Position{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, n := range current.Adjacent() {
			if !g.Contains(n) {
				continue
			}
			if _, ok := visited[n]; ok {
				continue
			}
			visited[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	return len(visited) == len(g.positions)
}

// ContainsCenter reports whether all cells touched by the galaxy's own
// center belong to the galaxy.
func (g *Galaxy) ContainsCenter() bool {
	for _, cell := range g.Center().GetCenterPlacement().Cells {
		if !g.Contains(cell) {
			return false
		}
	}
	return true
}

func (g *Galaxy) IsValid() bool {
	return !g.IsEmpty() && g.ContainsCenter() && g.IsConnected() && g.IsSymmetric()
}

func (g *Galaxy) IsEmptyOrValid() bool {
	return g.IsEmpty() || g.IsValid()
}

// Borders returns the borders around the galaxy: every border between a
// galaxy cell and an adjacent non-galaxy position, including positions
// outside any board.
func (g *Galaxy) Borders() []Border {
	seen := make(borderSet)
	for p := range g.positions {
		for _, n := range p.Adjacent() {
			if !g.Contains(n) {
				seen.add(NewBorder(p, n))
			}
		}
	}
	out := make([]Border, 0, len(seen))
	for b := range seen {
		out = append(out, b)
	}
	return out
}
