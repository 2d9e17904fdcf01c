package objects

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/simonolander/laniakea/client/fonts"
	"golang.org/x/image/font"
)

// TextOverlayObject draws centered text over the whole screen while its
// visible function returns true.
type TextOverlayObject struct {
	*BaseObject

	text    string
	visible func() bool
}

var _ GameObject = &TextOverlayObject{}

func NewTextOverlayObject(id string, text string, visible func() bool) *TextOverlayObject {
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, nil),
		text:       text,
		visible:    visible,
	}
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	if o.visible != nil && !o.visible() {
		return
	}
	t := strings.ToUpper(o.text)
	f := fonts.TTFLargeFont
	bounds, _ := font.BoundString(f, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx())/2-float64(bounds.Max.X>>6)/2, float64(screen.Bounds().Dy())/2-float64(bounds.Max.Y>>6)/2)
	op.ColorScale.ScaleWithColor(color.White)
	text.DrawWithOptions(screen, t, f, op)
}
