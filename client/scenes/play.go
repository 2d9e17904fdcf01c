package scenes

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/simonolander/laniakea/client/coords"
	"github.com/simonolander/laniakea/client/fonts"
	"github.com/simonolander/laniakea/client/input"
	"github.com/simonolander/laniakea/client/objects"
	"github.com/simonolander/laniakea/client/session"
	"github.com/simonolander/laniakea/client/ui"
	"github.com/simonolander/laniakea/pkg/log"
	"github.com/simonolander/laniakea/pkg/queue"
)

// BoardExtent is the pixel size of the square board area at the top of the
// play screen. The toolbar lives below it.
const BoardExtent = 640

// PlayScene renders the running puzzle with a toolbar of actions under it.
type PlayScene struct {
	*BaseScene

	manager *session.Manager
	mapper  *coords.Mapper
	onExit  func()
	ui      *ebitenui.UI
	uiState playUIState

	// actions collects the actions triggered during a tick. They are
	// applied in one place at the end of Update, in the order they came in.
	actions *queue.InMemoryQueue[session.Action]
}

// playUIState is the part of the snapshot the toolbar depends on. The UI is
// rebuilt when it changes.
type playUIState struct {
	hasPast   bool
	hasFuture bool
	solved    bool
}

type PlaySceneOptions struct {
	// Manager is the puzzle session to play.
	Manager *session.Manager
	// OnExit is called when the player leaves for the menu.
	OnExit func()
}

var _ Scene = &PlayScene{}

func NewPlayScene(opts PlaySceneOptions) (Scene, error) {
	manager := opts.Manager
	size := manager.Size()
	mapper := coords.NewMapper(size, size, 0, 0, BoardExtent)

	scene := &PlayScene{
		BaseScene: NewBaseScene(objects.NewBaseObject("play-root", nil)),
		manager:   manager,
		mapper:    mapper,
		onExit:    opts.OnExit,
		actions:   queue.NewInMemoryQueue[session.Action](),
	}

	board := objects.NewBoardObject("board", mapper, manager.Snapshot, scene.dispatch)
	if err := scene.Root.AddChild("board", board); err != nil {
		return nil, fmt.Errorf("failed to add board object: %v", err)
	}

	overlay := objects.NewTextOverlayObject("solved-overlay", "Solved!", func() bool {
		return manager.Snapshot().IsSolved
	})
	if err := scene.Root.AddChild("solved-overlay", overlay); err != nil {
		return nil, fmt.Errorf("failed to add solved overlay: %v", err)
	}

	return scene, nil
}

func (s *PlayScene) Init() error {
	s.uiState = s.currentUIState()
	s.renderUI()
	return s.BaseScene.Init()
}

func (s *PlayScene) dispatch(action session.Action) {
	s.actions.Enqueue(action)
}

func (s *PlayScene) apply(action session.Action) {
	s.manager.Dispatch(action)
	if _, ok := action.(session.Hint); ok {
		s.spawnHintEffect()
	}
}

func (s *PlayScene) spawnHintEffect() {
	effect := objects.NewTextEffect(objects.NewTextEffectOptions{
		Text:   "wall revealed",
		X:      BoardExtent / 2,
		Y:      BoardExtent / 2,
		Color:  color.NRGBA{R: 255, G: 220, B: 140, A: 255},
		Scroll: true,
		TTL:    1200,
	})
	if err := s.Root.AddChild(effect.GetID(), effect); err != nil {
		log.Error("Failed to add hint effect: %v", err)
	}
}

func (s *PlayScene) currentUIState() playUIState {
	snapshot := s.manager.Snapshot()
	return playUIState{
		hasPast:   snapshot.HasPast,
		hasFuture: snapshot.HasFuture,
		solved:    snapshot.IsSolved,
	}
}

func (s *PlayScene) handleInput() {
	switch {
	case input.IsNegativeJustPressed():
		s.onExit()
	case input.IsUndoJustPressed():
		s.dispatch(session.Undo{})
	case input.IsRedoJustPressed():
		s.dispatch(session.Redo{})
	case input.IsCheckJustPressed():
		s.dispatch(session.Check{})
	case input.IsHintJustPressed():
		s.dispatch(session.Hint{})
	case input.IsNewGameJustPressed():
		s.dispatch(session.NewGame{Size: s.manager.Size()})
	}
}

func (s *PlayScene) Update() error {
	s.handleInput()
	s.ui.Update()
	if err := s.BaseScene.Update(); err != nil {
		return err
	}
	for _, action := range s.actions.ReadAllItems() {
		s.apply(action)
	}
	if state := s.currentUIState(); state != s.uiState {
		s.uiState = state
		s.renderUI()
	}
	return nil
}

func (s *PlayScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 18, G: 18, B: 26, A: 255})
	s.BaseScene.Draw(screen)
	s.ui.Draw(screen)
}

func (s *PlayScene) renderUI() {
	snapshot := s.manager.Snapshot()
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	toolbar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(15)),
		)),
	)
	rootContainer.AddChild(toolbar)

	newButton := func(label string, disabled bool, onClick func()) {
		toolbar.AddChild(ui.NewButton(ui.ButtonOptions{
			Label:    label,
			FontFace: fonts.TTFNormalFont,
			Disabled: disabled,
			OnClick:  onClick,
			Padding: widget.Insets{
				Left:   15,
				Right:  15,
				Top:    5,
				Bottom: 5,
			},
		}))
	}

	newButton("Undo", !snapshot.HasPast, func() { s.dispatch(session.Undo{}) })
	newButton("Redo", !snapshot.HasFuture, func() { s.dispatch(session.Redo{}) })
	if snapshot.IsSolved {
		newButton("New Game", false, func() { s.dispatch(session.NewGame{Size: s.manager.Size()}) })
	} else {
		newButton("Check", false, func() { s.dispatch(session.Check{}) })
		newButton("Hint", false, func() { s.dispatch(session.Hint{}) })
	}
	newButton("Menu", false, func() { s.onExit() })

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}
