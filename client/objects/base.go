package objects

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// BaseObject is a no-op GameObject that keeps track of its place in the
// object tree. Concrete objects embed it and override the lifecycle methods
// they care about.
type BaseObject struct {
	id       string
	zIndex   int
	parent   GameObject
	children *childRegistry
}

var _ GameObject = &BaseObject{}

type NewBaseObjectOpts struct {
	// ZIndex is the z-index of the object within its parent.
	ZIndex int
}

func NewBaseObject(id string, opts *NewBaseObjectOpts) *BaseObject {
	zIndex := 0
	if opts != nil {
		zIndex = opts.ZIndex
	}
	return &BaseObject{
		id:       id,
		zIndex:   zIndex,
		children: newChildRegistry(),
	}
}

func (o *BaseObject) Init() error {
	return nil
}

func (o *BaseObject) Destroy() error {
	return nil
}

func (o *BaseObject) Update() error {
	return nil
}

func (o *BaseObject) Draw(screen *ebiten.Image) {
}

func (o *BaseObject) GetID() string {
	return o.id
}

func (o *BaseObject) GetParent() GameObject {
	return o.parent
}

func (o *BaseObject) SetParent(parent GameObject) {
	o.parent = parent
}

func (o *BaseObject) GetChildren() []GameObject {
	return o.children.All()
}

func (o *BaseObject) AddChild(id string, child GameObject) error {
	if o.children.Get(id) != nil {
		return fmt.Errorf("child object with id already exists")
	}
	o.children.Add(id, child)
	child.SetParent(o)
	return nil
}

func (o *BaseObject) RemoveChild(id string) error {
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("child object with id does not exist")
	}
	o.children.Remove(id)
	child.SetParent(nil)
	return nil
}

// RemoveFromParent detaches the object from its parent, removing it from the
// tree.
func (o *BaseObject) RemoveFromParent() error {
	if o.parent == nil {
		return fmt.Errorf("object has no parent")
	}
	return o.parent.RemoveChild(o.id)
}

func (o *BaseObject) GetZIndex() int {
	return o.zIndex
}

// childRegistry keeps children addressable by id in insertion order.
type childRegistry struct {
	idxIDObjects map[string]GameObject
	order        []string
}

func newChildRegistry() *childRegistry {
	return &childRegistry{
		idxIDObjects: make(map[string]GameObject),
	}
}

func (r *childRegistry) Add(id string, obj GameObject) {
	r.idxIDObjects[id] = obj
	r.order = append(r.order, id)
}

func (r *childRegistry) Get(id string) GameObject {
	return r.idxIDObjects[id]
}

func (r *childRegistry) Remove(id string) {
	delete(r.idxIDObjects, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *childRegistry) All() []GameObject {
	out := make([]GameObject, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.idxIDObjects[id])
	}
	return out
}
