package puzzle

import (
	"math"
	"math/rand"
)

// Universe is a full partition of the grid into valid galaxies, used as the
// generated solution of a puzzle. Each cell holds a galaxy id; cells with
// the same id belong to the same galaxy.
type Universe struct {
	width  int
	height int
	grid   [][]int
}

// NewUniverse returns a universe where every cell is its own galaxy, which
// is trivially valid.
func NewUniverse(width, height int) *Universe {
	grid := make([][]int, height)
	for row := range grid {
		grid[row] = make([]int, width)
		for col := range grid[row] {
			grid[row][col] = row*width + col
		}
	}
	return &Universe{width: width, height: height, grid: grid}
}

// GenerateUniverse grows galaxies by repeated symmetric mutation steps,
// branching a handful of candidates per iteration and keeping the best
// scoring one.
func GenerateUniverse(width, height int, rng *rand.Rand) *Universe {
	universe := NewUniverse(width, height)
	iterations := width * height * 10
	const branches = 5
	for iteration := 0; iteration < iterations; iteration++ {
		best := universe
		bestScore := math.Inf(-1)
		for branch := 0; branch < branches; branch++ {
			candidate := universe.Clone()
			if !candidate.generateStep(rng) {
				continue
			}
			if score := candidate.Score(); score > bestScore {
				best = candidate
				bestScore = score
			}
		}
		universe = best
	}
	if !universe.IsValid() {
		// Growth steps can in rare shapes leave a galaxy without its
		// center. Break the offenders back into singles.
		for _, galaxy := range universe.Galaxies() {
			if !galaxy.IsValid() {
				for _, p := range galaxy.Positions() {
					universe.removeAllNeighbours(p)
				}
			}
		}
	}
	return universe
}

// generateStep attempts a single mutation: grow the galaxy of a random cell
// by one adjacent cell, adding a second cell when needed to keep the galaxy
// symmetric. Reports whether the universe changed.
func (u *Universe) generateStep(rng *rand.Rand) bool {
	p1 := P(rng.Intn(u.height), rng.Intn(u.width))

	nonNeighbours := u.adjacentNonNeighbours(p1)
	if len(nonNeighbours) == 0 {
		return false
	}
	p2 := nonNeighbours[rng.Intn(len(nonNeighbours))]

	g1 := u.GalaxyAt(p1)
	g1WithP2 := g1.WithPosition(p2)
	if g1WithP2.IsSymmetric() {
		g2 := u.GalaxyAt(p2)
		u.removePositionsFromGalaxy(g2, p2)
		u.makeNeighbours(p1, p2)
		return true
	}

	// g1 with p2 is asymmetric; find a third position that restores symmetry.
	var candidates []Position
	if mirror := g1.MirrorPosition(p2); u.isInside(mirror) {
		candidates = append(candidates, mirror)
	}
	for _, p3 := range u.adjacentNonNeighbours(p2) {
		if g1WithP2.WithPosition(p3).IsSymmetric() {
			candidates = append(candidates, p3)
		}
	}
	if len(candidates) == 0 {
		return false
	}
	p3 := candidates[rng.Intn(len(candidates))]

	g2 := u.GalaxyAt(p2)
	g3 := u.GalaxyAt(p3)
	if u.grid[p2.Row][p2.Column] == u.grid[p3.Row][p3.Column] {
		u.removePositionsFromGalaxy(g2, p2, p3)
	} else {
		u.removePositionsFromGalaxy(g2, p2)
		u.removePositionsFromGalaxy(g3, p3)
	}
	u.makeNeighbours(p1, p2)
	u.makeNeighbours(p1, p3)
	return true
}

// removePositionsFromGalaxy removes the given positions from the galaxy
// while keeping the universe valid. Removed positions become singles; if the
// removal would break the galaxy's symmetry the mirror position is removed
// too, and if it disconnects the galaxy or removes its center the whole
// galaxy is broken into singles.
func (u *Universe) removePositionsFromGalaxy(galaxy *Galaxy, positions ...Position) {
	g := galaxy.Clone()
	for _, p := range positions {
		u.removeAllNeighbours(p)
		g.Remove(p)
		if !g.IsSymmetric() {
			mirror := galaxy.MirrorPosition(p)
			u.removeAllNeighbours(mirror)
			g.Remove(mirror)
		}
		if !g.IsEmptyOrValid() {
			for _, remaining := range g.Positions() {
				u.removeAllNeighbours(remaining)
			}
			return
		}
	}
}

// removeAllNeighbours makes p a galaxy of its own.
func (u *Universe) removeAllNeighbours(p Position) {
	u.grid[p.Row][p.Column] = u.nextAvailableID()
}

// makeNeighbours joins p2 into the galaxy of p1.
func (u *Universe) makeNeighbours(p1, p2 Position) {
	u.grid[p2.Row][p2.Column] = u.grid[p1.Row][p1.Column]
}

func (u *Universe) nextAvailableID() int {
	size := u.width * u.height
	inUse := make([]bool, size)
	for _, row := range u.grid {
		for _, id := range row {
			inUse[id] = true
		}
	}
	for id, used := range inUse {
		if !used {
			return id
		}
	}
	return size
}

func (u *Universe) Clone() *Universe {
	grid := make([][]int, u.height)
	for row := range grid {
		grid[row] = make([]int, u.width)
		copy(grid[row], u.grid[row])
	}
	return &Universe{width: u.width, height: u.height, grid: grid}
}

func (u *Universe) Width() int {
	return u.width
}

func (u *Universe) Height() int {
	return u.height
}

func (u *Universe) isInside(p Position) bool {
	return p.Row >= 0 && p.Row < u.height && p.Column >= 0 && p.Column < u.width
}

// AreNeighbours reports whether both positions are inside the universe and
// belong to the same galaxy.
func (u *Universe) AreNeighbours(p1, p2 Position) bool {
	return u.isInside(p1) && u.isInside(p2) &&
		u.grid[p1.Row][p1.Column] == u.grid[p2.Row][p2.Column]
}

func (u *Universe) adjacentPositions(p Position) []Position {
	adjacent := make([]Position, 0, 4)
	for _, n := range p.Adjacent() {
		if u.isInside(n) {
			adjacent = append(adjacent, n)
		}
	}
	return adjacent
}

func (u *Universe) adjacentNonNeighbours(p Position) []Position {
	var out []Position
	for _, n := range u.adjacentPositions(p) {
		if !u.AreNeighbours(p, n) {
			out = append(out, n)
		}
	}
	return out
}

// GalaxyAt returns the galaxy containing p.
func (u *Universe) GalaxyAt(p Position) *Galaxy {
	id := u.grid[p.Row][p.Column]
	galaxy := NewGalaxy()
	for row := 0; row < u.height; row++ {
		for col := 0; col < u.width; col++ {
			if u.grid[row][col] == id {
				galaxy.Add(P(row, col))
			}
		}
	}
	return galaxy
}

// Galaxies returns all galaxies of the universe in row-major order of their
// first cell.
func (u *Universe) Galaxies() []*Galaxy {
	byID := make(map[int]*Galaxy)
	var order []int
	for row := 0; row < u.height; row++ {
		for col := 0; col < u.width; col++ {
			id := u.grid[row][col]
			galaxy, ok := byID[id]
			if !ok {
				galaxy = NewGalaxy()
				byID[id] = galaxy
				order = append(order, id)
			}
			galaxy.Add(P(row, col))
		}
	}
	galaxies := make([]*Galaxy, 0, len(order))
	for _, id := range order {
		galaxies = append(galaxies, byID[id])
	}
	return galaxies
}

func (u *Universe) IsValid() bool {
	for _, galaxy := range u.Galaxies() {
		if !galaxy.IsValid() {
			return false
		}
	}
	return true
}

// Score rates how interesting the universe is, higher is better. Long
// straight stretches of border make for dull puzzles and are penalized
// superlinearly; so is a large number of leftover single-cell galaxies.
func (u *Universe) Score() float64 {
	score := 0.0
	const straightLinePenalty = 3.5

	for row := 1; row < u.height; row++ {
		currentLength := 0.0
		for col := 0; col < u.width; col++ {
			if u.AreNeighbours(P(row-1, col), P(row, col)) {
				score -= math.Pow(currentLength, straightLinePenalty)
				currentLength = 0
			} else {
				currentLength++
			}
		}
		score -= math.Pow(currentLength, straightLinePenalty)
	}

	for col := 1; col < u.width; col++ {
		currentLength := 0.0
		for row := 0; row < u.height; row++ {
			if u.AreNeighbours(P(row, col-1), P(row, col)) {
				score -= math.Pow(currentLength, straightLinePenalty)
				currentLength = 0
			} else {
				currentLength++
			}
		}
		score -= math.Pow(currentLength, straightLinePenalty)
	}

	for _, galaxy := range u.Galaxies() {
		if galaxy.Size() == 1 {
			score -= 1
		}
	}

	return score
}

// Board returns a board with all the universe's galaxy borders drawn,
// i.e. the solved position.
func (u *Universe) Board() *Board {
	board := NewBoard(u.width, u.height)
	for _, galaxy := range u.Galaxies() {
		for _, border := range galaxy.Borders() {
			if board.Contains(border.P1()) && board.Contains(border.P2()) {
				board.AddWall(border.P1(), border.P2())
			}
		}
	}
	return board
}
