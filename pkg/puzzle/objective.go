package puzzle

// GalaxyCenter is a region marker the player must build a region around.
// Position is in doubled coordinates. Size is the number of cells in the
// region when the puzzle reveals it, 0 when hidden.
type GalaxyCenter struct {
	Position Position
	Size     int
}

// Objective is the fixed definition of one puzzle: the centers to solve for
// and the walls that are given and not player-togglable. Taking a hint moves
// the revealed wall into Walls, so the set can grow during play, but never
// through toggling.
type Objective struct {
	Centers []GalaxyCenter
	Walls   borderSet
}

func NewObjective(centers []GalaxyCenter) *Objective {
	return &Objective{
		Centers: centers,
		Walls:   make(borderSet),
	}
}

// ObjectiveFromUniverse derives the objective of a generated universe: one
// center per galaxy, sizes hidden.
func ObjectiveFromUniverse(u *Universe) *Objective {
	galaxies := u.Galaxies()
	centers := make([]GalaxyCenter, 0, len(galaxies))
	for _, galaxy := range galaxies {
		centers = append(centers, GalaxyCenter{Position: galaxy.Center()})
	}
	return NewObjective(centers)
}

// IsWall reports whether the border is one of the fixed objective walls.
func (o *Objective) IsWall(b Border) bool {
	return o.Walls.contains(b)
}

// AddWall marks the border as fixed. Used when a hint reveals a wall.
func (o *Objective) AddWall(b Border) {
	o.Walls.add(b)
}

// WallBorders returns the fixed walls in unspecified order.
func (o *Objective) WallBorders() []Border {
	out := make([]Border, 0, len(o.Walls))
	for b := range o.Walls {
		out = append(out, b)
	}
	return out
}

func (o *Objective) clone() *Objective {
	centers := make([]GalaxyCenter, len(o.Centers))
	copy(centers, o.Centers)
	return &Objective{Centers: centers, Walls: o.Walls.clone()}
}
