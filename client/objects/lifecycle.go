package objects

import "github.com/hajimehoshi/ebiten/v2"

// Lifecycle is the hook set shared by scenes and the objects in their trees.
// Init runs when the owning scene becomes current and Destroy when it is
// replaced; Update runs every tick and Draw every frame. Board, overlay and
// effect objects implement it by embedding BaseObject and overriding what
// they need.
type Lifecycle interface {
	// Game flow methods
	Init() error
	Destroy() error
	Update() error
	Draw(screen *ebiten.Image)
}
