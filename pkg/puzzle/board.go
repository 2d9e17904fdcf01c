package puzzle

// Board holds the wall state of one puzzle, including the outer frame.
// Frame borders have one endpoint outside the playable area and are present
// from construction; everything else is toggled by the player.
type Board struct {
	width   int
	height  int
	borders borderSet
}

func NewBoard(width, height int) *Board {
	borders := make(borderSet)
	for row := 0; row < height; row++ {
		borders.add(BorderLeft(P(row, 0)))
		borders.add(BorderLeft(P(row, width)))
	}
	for column := 0; column < width; column++ {
		borders.add(BorderUp(P(0, column)))
		borders.add(BorderUp(P(height, column)))
	}
	return &Board{width: width, height: height, borders: borders}
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

func (b *Board) Clone() *Board {
	return &Board{width: b.width, height: b.height, borders: b.borders.clone()}
}

// Contains reports whether the cell position is within the playable area.
func (b *Board) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < b.height && p.Column >= 0 && p.Column < b.width
}

// IsActive reports whether the border is present on the board.
func (b *Board) IsActive(border Border) bool {
	return b.borders.contains(border)
}

// IsInterior reports whether both endpoints of the border are playable cells.
func (b *Board) IsInterior(border Border) bool {
	return b.Contains(border.P1()) && b.Contains(border.P2())
}

// IsWall reports whether there is a wall between p1 and p2.
func (b *Board) IsWall(p1, p2 Position) bool {
	return b.borders.contains(NewBorder(p1, p2))
}

// AddWall adds a wall between p1 and p2 and reports whether it was absent.
func (b *Board) AddWall(p1, p2 Position) bool {
	return b.borders.add(NewBorder(p1, p2))
}

// RemoveWall removes the wall between p1 and p2 and reports whether it existed.
func (b *Board) RemoveWall(p1, p2 Position) bool {
	return b.borders.remove(NewBorder(p1, p2))
}

// ToggleWall toggles the wall between p1 and p2 and reports whether there is
// a wall after the toggle.
func (b *Board) ToggleWall(p1, p2 Position) bool {
	border := NewBorder(p1, p2)
	if b.borders.contains(border) {
		b.borders.remove(border)
		return false
	}
	b.borders.add(border)
	return true
}

// Borders returns all active borders, frame included.
func (b *Board) Borders() []Border {
	out := make([]Border, 0, len(b.borders))
	for border := range b.borders {
		out = append(out, border)
	}
	return out
}

// InteriorBorders returns all active borders with both endpoints in bounds.
func (b *Board) InteriorBorders() []Border {
	var out []Border
	for border := range b.borders {
		if b.IsInterior(border) {
			out = append(out, border)
		}
	}
	return out
}

// VerticalBorders returns a height x (width+1) matrix where m[row][col] is
// true if there is a wall between cells (row, col-1) and (row, col).
// Columns 0 and width are the frame and always true.
func (b *Board) VerticalBorders() [][]bool {
	matrix := make([][]bool, b.height)
	for row := range matrix {
		matrix[row] = make([]bool, b.width+1)
		for col := 0; col <= b.width; col++ {
			matrix[row][col] = b.IsWall(P(row, col-1), P(row, col))
		}
	}
	return matrix
}

// HorizontalBorders returns a (height+1) x width matrix where m[row][col] is
// true if there is a wall between cells (row-1, col) and (row, col).
// Rows 0 and height are the frame and always true.
func (b *Board) HorizontalBorders() [][]bool {
	matrix := make([][]bool, b.height+1)
	for row := range matrix {
		matrix[row] = make([]bool, b.width)
		for col := 0; col < b.width; col++ {
			matrix[row][col] = b.IsWall(P(row-1, col), P(row, col))
		}
	}
	return matrix
}

// Galaxies partitions the board into its wall-separated connected components.
func (b *Board) Galaxies() []*Galaxy {
	var galaxies []*Galaxy
	remaining := make(map[Position]struct{}, b.width*b.height)
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			remaining[P(row, col)] = struct{}{}
		}
	}
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			start := P(row, col)
			if _, ok := remaining[start]; !ok {
				continue
			}
			component := NewGalaxy()
			queue := []Position{start}
			delete(remaining, start)
			for len(queue) > 0 {
				p := queue[0]
				queue = queue[1:]
				component.Add(p)
				for _, n := range p.Adjacent() {
					if !b.Contains(n) {
						continue
					}
					if _, ok := remaining[n]; !ok {
						continue
					}
					if b.IsWall(p, n) {
						continue
					}
					delete(remaining, n)
					queue = append(queue, n)
				}
			}
			galaxies = append(galaxies, component)
		}
	}
	return galaxies
}

// ComputeError validates the current wall layout against the objective.
func (b *Board) ComputeError(objective *Objective) *BoardError {
	result := &BoardError{}

	for border := range b.borders {
		if b.isDangling(border) {
			result.DanglingBorders = append(result.DanglingBorders, border)
		}
	}

	galaxies := b.Galaxies()
	galaxyByCell := make(map[Position]*Galaxy)
	for _, galaxy := range galaxies {
		for _, p := range galaxy.Positions() {
			galaxyByCell[p] = galaxy
		}
	}

	centerfull := make(map[Position]struct{})
	for _, center := range objective.Centers {
		anchor := center.Position.GetCenterPlacement().Cells[0]
		galaxy := galaxyByCell[anchor]
		if galaxy == nil {
			continue
		}

		if b.isCenterCut(center.Position) {
			result.CutCenters = append(result.CutCenters, center.Position)
		}
		if galaxy.Center() != center.Position || !galaxy.IsValid() {
			result.AsymmetricCenters = append(result.AsymmetricCenters, center.Position)
		}
		if center.Size != 0 && galaxy.Size() != center.Size {
			result.WrongSizeCenters = append(result.WrongSizeCenters, center.Position)
		}
		for _, p := range galaxy.Positions() {
			centerfull[p] = struct{}{}
		}
	}

	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			p := P(row, col)
			if _, ok := centerfull[p]; !ok {
				result.CenterlessCells = append(result.CenterlessCells, p)
			}
		}
	}

	return result
}

// isCenterCut reports whether any wall passes through the center position
// (doubled coordinates).
func (b *Board) isCenterCut(center Position) bool {
	placement := center.GetCenterPlacement()
	switch placement.Kind {
	case PlacementCell:
		return false
	case PlacementVerticalBorder, PlacementHorizontalBorder:
		return b.IsWall(placement.Cells[0], placement.Cells[1])
	default:
		topLeft, topRight := placement.Cells[0], placement.Cells[1]
		bottomLeft, bottomRight := placement.Cells[2], placement.Cells[3]
		return b.IsWall(topLeft, topRight) ||
			b.IsWall(topRight, bottomRight) ||
			b.IsWall(bottomRight, bottomLeft) ||
			b.IsWall(topLeft, bottomLeft)
	}
}

// isDangling reports whether the border fails to connect to another wall at
// one of its endpoints. Frame borders always connect to the frame.
func (b *Board) isDangling(border Border) bool {
	p1 := border.P1()
	p2 := border.P2()
	if border.IsVertical() {
		if p1.Row != 0 {
			p1Up := p1.Up()
			p2Up := p2.Up()
			if !b.IsWall(p1, p1Up) && !b.IsWall(p1Up, p2Up) && !b.IsWall(p2Up, p2) {
				return true
			}
		}
		if p1.Row != b.height-1 {
			p1Down := p1.Down()
			p2Down := p2.Down()
			if !b.IsWall(p1, p1Down) && !b.IsWall(p1Down, p2Down) && !b.IsWall(p2Down, p2) {
				return true
			}
		}
	} else {
		if p1.Column != 0 {
			p1Left := p1.Left()
			p2Left := p2.Left()
			if !b.IsWall(p1, p1Left) && !b.IsWall(p1Left, p2Left) && !b.IsWall(p2Left, p2) {
				return true
			}
		}
		if p1.Column != b.width-1 {
			p1Right := p1.Right()
			p2Right := p2.Right()
			if !b.IsWall(p1, p1Right) && !b.IsWall(p1Right, p2Right) && !b.IsWall(p2Right, p2) {
				return true
			}
		}
	}
	return false
}
