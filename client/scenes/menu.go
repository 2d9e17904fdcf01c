package scenes

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/simonolander/laniakea/client/fonts"
	"github.com/simonolander/laniakea/client/objects"
	"github.com/simonolander/laniakea/client/ui"
)

// MenuScene lets the player pick a board size and start a game.
type MenuScene struct {
	*BaseScene

	onStart func(size int)
	ui      *ebitenui.UI
}

type MenuSceneOptions struct {
	// OnStart is called with the chosen board size when a size button is
	// pressed.
	OnStart func(size int)
}

var _ Scene = &MenuScene{}

// menuSizes are the board sizes offered on the menu.
var menuSizes = []int{5, 7, 10}

func NewMenuScene(opts MenuSceneOptions) (Scene, error) {
	return &MenuScene{
		BaseScene: NewBaseScene(objects.NewBaseObject("menu-root", nil)),
		onStart:   opts.OnStart,
	}, nil
}

func (s *MenuScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

func (s *MenuScene) renderUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(ui.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    150,
				Left:   180,
				Right:  180,
				Bottom: 90,
			}))),
	)

	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text("Laniakea", fonts.TTFLargeFont, ui.TextIdleColor),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	))

	for _, size := range menuSizes {
		size := size
		rootContainer.AddChild(ui.NewButton(ui.ButtonOptions{
			Label:    fmt.Sprintf("%d x %d", size, size),
			FontFace: fonts.TTFNormalFont,
			OnClick:  func() { s.onStart(size) },
			Padding: widget.Insets{
				Left:   30,
				Right:  30,
				Top:    5,
				Bottom: 5,
			},
			LayoutData: widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
				Stretch:  true,
			},
		}))
	}

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *MenuScene) Update() error {
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *MenuScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
