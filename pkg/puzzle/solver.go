package puzzle

import "sort"

// ErrContradiction is reported by Solve when the objective admits no valid
// partition under the current assumptions.
type contradictionError struct{}

func (contradictionError) Error() string {
	return "objective has no solution"
}

// ErrContradiction is the sentinel returned by Solve for unsolvable
// objectives.
var ErrContradiction error = contradictionError{}

// Solver deduces the unique partition satisfying an objective. It tracks the
// known state of every border (present, absent, or unknown) and the set of
// galaxies each cell can still belong to, and applies deduction rules until
// a fixpoint.
type Solver struct {
	width   int
	height  int
	centers []GalaxyCenter
	// borders maps each decided border to whether it is a wall. Borders not
	// in the map are undecided.
	borders map[Border]bool
	// possibleGalaxyIDs maps each cell to the indices into centers that the
	// cell can still belong to.
	possibleGalaxyIDs map[Position]map[int]struct{}
}

// Solution is the set of walls of a solved puzzle, frame included.
type Solution struct {
	Borders []Border
}

func NewSolver(width, height int, objective *Objective) *Solver {
	borders := make(map[Border]bool)
	for border := range objective.Walls {
		borders[border] = true
	}
	for column := 0; column < width; column++ {
		borders[BorderUp(P(0, column))] = true
		borders[BorderUp(P(height, column))] = true
	}
	for row := 0; row < height; row++ {
		borders[BorderLeft(P(row, 0))] = true
		borders[BorderLeft(P(row, width))] = true
	}

	possibleGalaxyIDs := make(map[Position]map[int]struct{}, width*height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			ids := make(map[int]struct{}, len(objective.Centers))
			for id := range objective.Centers {
				ids[id] = struct{}{}
			}
			possibleGalaxyIDs[P(row, col)] = ids
		}
	}

	// The cells a center touches belong to that galaxy and no other.
	for id, center := range objective.Centers {
		for _, p := range center.Position.GetCenterPlacement().Cells {
			ids, ok := possibleGalaxyIDs[p]
			if !ok {
				continue
			}
			for other := range ids {
				if other != id {
					delete(ids, other)
				}
			}
		}
	}

	centers := make([]GalaxyCenter, len(objective.Centers))
	copy(centers, objective.Centers)

	return &Solver{
		width:             width,
		height:            height,
		centers:           centers,
		borders:           borders,
		possibleGalaxyIDs: possibleGalaxyIDs,
	}
}

// Solve runs the deduction rules to a fixpoint and returns the resulting
// walls, or ErrContradiction if the objective cannot be satisfied.
func (s *Solver) Solve() (*Solution, error) {
	for {
		changed, err := s.addBordersBetweenKnownGalaxies()
		if err != nil {
			return nil, err
		}
		if changed {
			continue
		}
		if changed, err = s.mirrorBorders(); err != nil {
			return nil, err
		}
		if changed {
			continue
		}
		if changed, err = s.excludeUnreachableGalaxies(); err != nil {
			return nil, err
		}
		if changed {
			continue
		}
		if changed, err = s.removeImpossibleGalaxyMirrors(); err != nil {
			return nil, err
		}
		if changed {
			continue
		}
		if changed, err = s.assumeGalaxy(); err != nil {
			return nil, err
		}
		if !changed {
			break
		}
	}
	var borders []Border
	for border, active := range s.borders {
		if active {
			borders = append(borders, border)
		}
	}
	return &Solution{Borders: borders}, nil
}

// Board returns the solution as a board with all its walls drawn.
func (sol *Solution) Board(width, height int) *Board {
	board := NewBoard(width, height)
	for _, border := range sol.Borders {
		board.borders.add(border)
	}
	return board
}

func (s *Solver) clone() *Solver {
	borders := make(map[Border]bool, len(s.borders))
	for border, active := range s.borders {
		borders[border] = active
	}
	possibleGalaxyIDs := make(map[Position]map[int]struct{}, len(s.possibleGalaxyIDs))
	for p, ids := range s.possibleGalaxyIDs {
		clone := make(map[int]struct{}, len(ids))
		for id := range ids {
			clone[id] = struct{}{}
		}
		possibleGalaxyIDs[p] = clone
	}
	return &Solver{
		width:             s.width,
		height:            s.height,
		centers:           s.centers,
		borders:           borders,
		possibleGalaxyIDs: possibleGalaxyIDs,
	}
}

// cellPositions returns every playable cell in row-major order.
func (s *Solver) cellPositions() []Position {
	positions := make([]Position, 0, s.width*s.height)
	for row := 0; row < s.height; row++ {
		for col := 0; col < s.width; col++ {
			positions = append(positions, P(row, col))
		}
	}
	return positions
}

// cellsWithCertainGalaxy returns the cells whose galaxy membership is
// decided, with the galaxy id, in row-major order.
func (s *Solver) cellsWithCertainGalaxy() []struct {
	position Position
	galaxyID int
} {
	var out []struct {
		position Position
		galaxyID int
	}
	for _, p := range s.cellPositions() {
		ids := s.possibleGalaxyIDs[p]
		if len(ids) != 1 {
			continue
		}
		for id := range ids {
			out = append(out, struct {
				position Position
				galaxyID int
			}{p, id})
		}
	}
	return out
}

// addBordersBetweenKnownGalaxies decides the border between two cells whose
// galaxies are both known: a wall if they differ, no wall if they match.
func (s *Solver) addBordersBetweenKnownGalaxies() (bool, error) {
	changed := false
	for _, cell := range s.cellsWithCertainGalaxy() {
		for _, neighbour := range cell.position.Adjacent() {
			neighbourIDs, ok := s.possibleGalaxyIDs[neighbour]
			if !ok || len(neighbourIDs) != 1 {
				continue
			}
			var neighbourID int
			for id := range neighbourIDs {
				neighbourID = id
			}
			border := NewBorder(cell.position, neighbour)
			shouldHaveBorder := cell.galaxyID != neighbourID
			if hasBorder, decided := s.borders[border]; decided {
				if hasBorder != shouldHaveBorder {
					return false, ErrContradiction
				}
			} else {
				s.borders[border] = shouldHaveBorder
				changed = true
			}
		}
	}
	return changed, nil
}

// mirrorBorders propagates every decided border of a cell with known galaxy
// to the mirrored border about that galaxy's center.
func (s *Solver) mirrorBorders() (bool, error) {
	changed := false
	for _, cell := range s.cellsWithCertainGalaxy() {
		center := s.centers[cell.galaxyID].Position
		mirrored := center.MirrorPosition(cell.position)
		pairs := [4][2]Border{
			{BorderUp(cell.position), BorderDown(mirrored)},
			{BorderLeft(cell.position), BorderRight(mirrored)},
			{BorderRight(cell.position), BorderLeft(mirrored)},
			{BorderDown(cell.position), BorderUp(mirrored)},
		}
		for _, pair := range pairs {
			hasBorder, decided := s.borders[pair[0]]
			if !decided {
				continue
			}
			if hasMirrored, mirroredDecided := s.borders[pair[1]]; mirroredDecided {
				if hasBorder != hasMirrored {
					return false, ErrContradiction
				}
			} else {
				s.borders[pair[1]] = hasBorder
				changed = true
			}
		}
	}
	return changed, nil
}

// excludeUnreachableGalaxies removes a galaxy from cells that cannot be
// reached from its center without crossing a known wall or a cell the galaxy
// is already excluded from.
func (s *Solver) excludeUnreachableGalaxies() (bool, error) {
	changed := false
	for galaxyID, center := range s.centers {
		visited := make(map[Position]struct{})
		var queue []Position
		for _, p := range center.Position.GetCenterPlacement().Cells {
			visited[p] = struct{}{}
			queue = append(queue, p)
		}
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			for _, neighbour := range p.Adjacent() {
				if s.borders[NewBorder(p, neighbour)] {
					continue
				}
				ids, ok := s.possibleGalaxyIDs[neighbour]
				if !ok {
					continue
				}
				if _, possible := ids[galaxyID]; !possible {
					continue
				}
				if _, seen := visited[neighbour]; seen {
					continue
				}
				visited[neighbour] = struct{}{}
				queue = append(queue, neighbour)
			}
		}
		for _, p := range s.cellPositions() {
			if _, reached := visited[p]; reached {
				continue
			}
			ids := s.possibleGalaxyIDs[p]
			if _, possible := ids[galaxyID]; possible {
				delete(ids, galaxyID)
				changed = true
				if len(ids) == 0 {
					return false, ErrContradiction
				}
			}
		}
	}
	return changed, nil
}

// removeImpossibleGalaxyMirrors removes a galaxy from a cell when the
// mirrored cell about the galaxy's center is off the board or cannot belong
// to the galaxy.
func (s *Solver) removeImpossibleGalaxyMirrors() (bool, error) {
	changed := false
	for _, p := range s.cellPositions() {
		ids := s.possibleGalaxyIDs[p]
		candidates := make([]int, 0, len(ids))
		for id := range ids {
			candidates = append(candidates, id)
		}
		sort.Ints(candidates)
		for _, galaxyID := range candidates {
			center := s.centers[galaxyID].Position
			mirrored := center.MirrorPosition(p)
			mirroredIDs, inside := s.possibleGalaxyIDs[mirrored]
			possible := false
			if inside {
				_, possible = mirroredIDs[galaxyID]
			}
			if !possible {
				delete(ids, galaxyID)
				changed = true
				if len(ids) == 0 {
					return false, ErrContradiction
				}
			}
		}
	}
	return changed, nil
}

// assumeGalaxy tries each remaining candidate of the most constrained
// undecided cell on a cloned solver; a candidate whose assumption leads to a
// contradiction is removed.
func (s *Solver) assumeGalaxy() (bool, error) {
	type candidateCell struct {
		position Position
		ids      []int
	}
	var cells []candidateCell
	for _, p := range s.cellPositions() {
		ids := s.possibleGalaxyIDs[p]
		if len(ids) <= 1 {
			continue
		}
		sorted := make([]int, 0, len(ids))
		for id := range ids {
			sorted = append(sorted, id)
		}
		sort.Ints(sorted)
		cells = append(cells, candidateCell{position: p, ids: sorted})
	}
	sort.SliceStable(cells, func(i, j int) bool {
		return len(cells[i].ids) < len(cells[j].ids)
	})
	for _, cell := range cells {
		for _, galaxyID := range cell.ids {
			assumed := s.clone()
			assumedIDs := assumed.possibleGalaxyIDs[cell.position]
			for id := range assumedIDs {
				if id != galaxyID {
					delete(assumedIDs, id)
				}
			}
			if _, err := assumed.Solve(); err != nil {
				delete(s.possibleGalaxyIDs[cell.position], galaxyID)
				return true, nil
			}
		}
	}
	return false, nil
}
