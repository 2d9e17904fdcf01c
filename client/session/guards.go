package session

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Guard is a side effect held for the duration of a play session, such as
// intercepting window close or keeping the game running unfocused. Start and
// Stop must be called in pairs.
type Guard interface {
	Start()
	Stop()
}

// CloseGuard intercepts the window close request so an unsaved puzzle is not
// lost to a stray click. While started, closing the window only raises
// Requested; the game loop decides whether to terminate.
type CloseGuard struct{}

var _ Guard = &CloseGuard{}

func NewCloseGuard() *CloseGuard {
	return &CloseGuard{}
}

func (g *CloseGuard) Start() {
	ebiten.SetWindowClosingHandled(true)
}

func (g *CloseGuard) Stop() {
	ebiten.SetWindowClosingHandled(false)
}

// Requested reports whether the user asked to close the window this tick.
func (g *CloseGuard) Requested() bool {
	return ebiten.IsWindowBeingClosed()
}

// WakeGuard keeps the game ticking while the window is unfocused, so a
// running puzzle timer and animations do not freeze in the background.
type WakeGuard struct{}

var _ Guard = &WakeGuard{}

func NewWakeGuard() *WakeGuard {
	return &WakeGuard{}
}

func (g *WakeGuard) Start() {
	ebiten.SetRunnableOnUnfocused(true)
}

func (g *WakeGuard) Stop() {
	ebiten.SetRunnableOnUnfocused(false)
}
