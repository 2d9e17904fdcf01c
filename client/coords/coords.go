package coords

import (
	"math"

	"github.com/simonolander/laniakea/pkg/puzzle"
	"github.com/solarlune/resolv"
)

// CellWallRatio is the width of a cell in wall thicknesses.
const CellWallRatio = 8

// Mapper translates between board coordinates and screen pixels. The board
// is laid out as an alternation of wall bands and cells: size+1 bands of
// thickness t and size cells of side CellWallRatio*t, filling the extent.
//
// Hit testing for walls uses diamond envelopes centered on each wall, so
// clicks near a node resolve to the nearest wall rather than dead space.
type Mapper struct {
	width     int
	height    int
	originX   float64
	originY   float64
	thickness float64
	cellSize  float64
	diamonds  map[puzzle.Border]*resolv.ConvexPolygon
}

func NewMapper(width, height int, originX, originY, extent float64) *Mapper {
	steps := width
	if height > steps {
		steps = height
	}
	thickness := extent / float64(CellWallRatio*steps+steps+1)
	m := &Mapper{
		width:     width,
		height:    height,
		originX:   originX,
		originY:   originY,
		thickness: thickness,
		cellSize:  CellWallRatio * thickness,
	}
	m.diamonds = make(map[puzzle.Border]*resolv.ConvexPolygon)
	for _, border := range m.interiorBorders() {
		x, y, w, h := m.WallRect(border)
		centerX := x + w/2
		centerY := y + h/2
		halfAlong := m.cellSize/2 + m.thickness
		halfAcross := m.cellSize / 2
		if border.IsVertical() {
			m.diamonds[border] = resolv.NewConvexPolygon(centerX, centerY,
				0, -halfAlong,
				halfAcross, 0,
				0, halfAlong,
				-halfAcross, 0,
			)
		} else {
			m.diamonds[border] = resolv.NewConvexPolygon(centerX, centerY,
				0, -halfAcross,
				halfAlong, 0,
				0, halfAcross,
				-halfAlong, 0,
			)
		}
	}
	return m
}

func (m *Mapper) interiorBorders() []puzzle.Border {
	var borders []puzzle.Border
	for row := 0; row < m.height; row++ {
		for col := 1; col < m.width; col++ {
			borders = append(borders, puzzle.BorderLeft(puzzle.P(row, col)))
		}
	}
	for row := 1; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			borders = append(borders, puzzle.BorderUp(puzzle.P(row, col)))
		}
	}
	return borders
}

// pitch is the distance between the start of one wall band and the next.
func (m *Mapper) pitch() float64 {
	return m.cellSize + m.thickness
}

func (m *Mapper) WallThickness() float64 {
	return m.thickness
}

func (m *Mapper) CellSize() float64 {
	return m.cellSize
}

// CellRect returns the screen rectangle of a cell.
func (m *Mapper) CellRect(p puzzle.Position) (x, y, w, h float64) {
	x = m.originX + m.thickness + float64(p.Column)*m.pitch()
	y = m.originY + m.thickness + float64(p.Row)*m.pitch()
	return x, y, m.cellSize, m.cellSize
}

// WallRect returns the screen rectangle of the wall band segment covering a
// border, frame borders included.
func (m *Mapper) WallRect(border puzzle.Border) (x, y, w, h float64) {
	if border.IsVertical() {
		col := border.P2().Column
		row := border.P1().Row
		x = m.originX + float64(col)*m.pitch()
		y = m.originY + m.thickness + float64(row)*m.pitch()
		return x, y, m.thickness, m.cellSize
	}
	row := border.P2().Row
	col := border.P1().Column
	x = m.originX + m.thickness + float64(col)*m.pitch()
	y = m.originY + float64(row)*m.pitch()
	return x, y, m.cellSize, m.thickness
}

// NodeRect returns the screen rectangle of the intersection square where the
// wall bands after cell row-1 and cell column-1 cross.
func (m *Mapper) NodeRect(row, col int) (x, y, w, h float64) {
	x = m.originX + float64(col)*m.pitch()
	y = m.originY + float64(row)*m.pitch()
	return x, y, m.thickness, m.thickness
}

// CenterPoint returns the screen point of a galaxy center in doubled
// coordinates: even coordinates map to cell centers, odd ones to the middle
// of the wall band between them.
func (m *Mapper) CenterPoint(doubled puzzle.Position) (x, y float64) {
	x = m.originX + m.thickness + m.cellSize/2 + float64(doubled.Column)*m.pitch()/2
	y = m.originY + m.thickness + m.cellSize/2 + float64(doubled.Row)*m.pitch()/2
	return x, y
}

// BorderAt resolves a screen point to the interior border whose diamond
// envelope contains it. When envelopes overlap near a node, the border with
// the nearest midpoint wins.
func (m *Mapper) BorderAt(x, y float64) (puzzle.Border, bool) {
	point := resolv.NewVector(x, y)
	var best puzzle.Border
	bestDistance := math.Inf(1)
	found := false
	for border, diamond := range m.diamonds {
		if !diamond.PointInside(point) {
			continue
		}
		wx, wy, ww, wh := m.WallRect(border)
		dx := x - (wx + ww/2)
		dy := y - (wy + wh/2)
		distance := dx*dx + dy*dy
		if distance < bestDistance {
			best = border
			bestDistance = distance
			found = true
		}
	}
	return best, found
}

// CellAt resolves a screen point to the cell containing it.
func (m *Mapper) CellAt(x, y float64) (puzzle.Position, bool) {
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			cx, cy, cw, ch := m.CellRect(puzzle.P(row, col))
			if x >= cx && x < cx+cw && y >= cy && y < cy+ch {
				return puzzle.P(row, col), true
			}
		}
	}
	return puzzle.Position{}, false
}

// BoardSize returns the pixel size of the rendered board.
func (m *Mapper) BoardSize() (w, h float64) {
	w = m.thickness + float64(m.width)*m.pitch()
	h = m.thickness + float64(m.height)*m.pitch()
	return w, h
}
