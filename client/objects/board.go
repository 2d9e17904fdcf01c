package objects

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/simonolander/laniakea/client/coords"
	"github.com/simonolander/laniakea/client/fonts"
	"github.com/simonolander/laniakea/client/input"
	"github.com/simonolander/laniakea/client/session"
	"github.com/simonolander/laniakea/pkg/log"
	"github.com/simonolander/laniakea/pkg/puzzle"
)

var (
	colorBackground = color.NRGBA{R: 24, G: 24, B: 34, A: 255}
	colorCell       = color.NRGBA{R: 45, G: 45, B: 64, A: 255}
	colorCellError  = color.NRGBA{R: 80, G: 40, B: 48, A: 255}
	colorCellSolved = color.NRGBA{R: 40, G: 70, B: 52, A: 255}
	colorWall       = color.NRGBA{R: 170, G: 170, B: 190, A: 255}
	colorWallFixed  = color.NRGBA{R: 240, G: 240, B: 250, A: 255}
	colorWallError  = color.NRGBA{R: 220, G: 80, B: 80, A: 255}
	colorCenter     = color.NRGBA{R: 250, G: 250, B: 255, A: 255}
	colorCenterErr  = color.NRGBA{R: 230, G: 90, B: 90, A: 255}
)

// BoardObject renders the puzzle and translates clicks on wall bands into
// toggle actions. It reads state through the view function every frame and
// never mutates it directly.
type BoardObject struct {
	*BaseObject

	mapper   *coords.Mapper
	view     func() puzzle.Snapshot
	dispatch func(session.Action)
}

var _ GameObject = &BoardObject{}

func NewBoardObject(id string, mapper *coords.Mapper, view func() puzzle.Snapshot, dispatch func(session.Action)) *BoardObject {
	return &BoardObject{
		BaseObject: NewBaseObject(id, nil),
		mapper:     mapper,
		view:       view,
		dispatch:   dispatch,
	}
}

func (o *BoardObject) Update() error {
	x, y, ok := input.CursorJustPressed()
	if !ok {
		return nil
	}
	border, ok := o.mapper.BorderAt(float64(x), float64(y))
	if !ok {
		return nil
	}
	if o.view().Objective.IsWall(border) {
		// Objective walls are fixed; the toggle is never issued.
		return nil
	}
	log.Debug("Clicked border %v", border)
	o.dispatch(session.Toggle{Border: border})
	return nil
}

func (o *BoardObject) Draw(screen *ebiten.Image) {
	snapshot := o.view()

	o.drawBackground(screen)
	o.drawCells(screen, snapshot)
	o.drawWalls(screen, snapshot)
	o.drawCenters(screen, snapshot)
}

func (o *BoardObject) drawBackground(screen *ebiten.Image) {
	w, h := o.mapper.BoardSize()
	x, y, _, _ := o.mapper.NodeRect(0, 0)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), colorBackground, false)
}

func (o *BoardObject) drawCells(screen *ebiten.Image, snapshot puzzle.Snapshot) {
	for row := 0; row < snapshot.Height; row++ {
		for col := 0; col < snapshot.Width; col++ {
			p := puzzle.P(row, col)
			clr := colorCell
			if snapshot.IsSolved {
				clr = colorCellSolved
			} else if snapshot.Error.HasCenterlessCell(p) {
				clr = colorCellError
			}
			x, y, w, h := o.mapper.CellRect(p)
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
		}
	}
}

func (o *BoardObject) drawWalls(screen *ebiten.Image, snapshot puzzle.Snapshot) {
	t := float32(o.mapper.WallThickness())
	drawWall := func(border puzzle.Border, frame bool) {
		clr := colorWall
		switch {
		case snapshot.Error.HasDanglingBorder(border):
			clr = colorWallError
		case frame || snapshot.Objective.IsWall(border):
			clr = colorWallFixed
		}
		x, y, w, h := o.mapper.WallRect(border)
		// Extend into the adjacent nodes so wall runs look continuous.
		if border.IsVertical() {
			vector.DrawFilledRect(screen, float32(x), float32(y)-t, float32(w), float32(h)+2*t, clr, false)
		} else {
			vector.DrawFilledRect(screen, float32(x)-t, float32(y), float32(w)+2*t, float32(h), clr, false)
		}
	}

	for row, cols := range snapshot.VerticalBorders {
		for col, active := range cols {
			if !active {
				continue
			}
			frame := col == 0 || col == snapshot.Width
			drawWall(puzzle.BorderLeft(puzzle.P(row, col)), frame)
		}
	}
	for row, cols := range snapshot.HorizontalBorders {
		for col, active := range cols {
			if !active {
				continue
			}
			frame := row == 0 || row == snapshot.Height
			drawWall(puzzle.BorderUp(puzzle.P(row, col)), frame)
		}
	}
}

func (o *BoardObject) drawCenters(screen *ebiten.Image, snapshot puzzle.Snapshot) {
	radius := float32(o.mapper.WallThickness()) * 1.6
	for _, center := range snapshot.Objective.Centers {
		clr := colorCenter
		if snapshot.Error.HasCutCenter(center.Position) ||
			snapshot.Error.HasAsymmetricCenter(center.Position) ||
			snapshot.Error.HasWrongSizeCenter(center.Position) {
			clr = colorCenterErr
		}
		x, y := o.mapper.CenterPoint(center.Position)
		vector.DrawFilledCircle(screen, float32(x), float32(y), radius, clr, true)
		vector.DrawFilledCircle(screen, float32(x), float32(y), radius*0.55, colorBackground, true)

		if center.Size > 0 {
			label := fmt.Sprintf("%d", center.Size)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x+float64(radius), y-float64(radius))
			op.ColorScale.ScaleWithColor(clr)
			text.DrawWithOptions(screen, label, fonts.TTFSmallFont, op)
		}
	}
}
