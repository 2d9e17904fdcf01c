package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseObject_Children(t *testing.T) {
	root := NewBaseObject("root", nil)
	a := NewBaseObject("a", nil)
	b := NewBaseObject("b", nil)

	assert.NoError(t, root.AddChild("a", a))
	assert.NoError(t, root.AddChild("b", b))
	assert.Error(t, root.AddChild("a", NewBaseObject("a", nil)), "duplicate id")

	children := root.GetChildren()
	assert.Len(t, children, 2)
	assert.Equal(t, "a", children[0].GetID())
	assert.Equal(t, "b", children[1].GetID())
	assert.Equal(t, root, a.GetParent())

	assert.NoError(t, a.RemoveFromParent())
	assert.Nil(t, a.GetParent())
	assert.Len(t, root.GetChildren(), 1)
	assert.Error(t, root.RemoveChild("a"))
	assert.Error(t, a.RemoveFromParent())
}

func TestTreeLifecycle(t *testing.T) {
	root := NewBaseObject("root", nil)
	child := NewBaseObject("child", nil)
	assert.NoError(t, root.AddChild("child", child))

	assert.NoError(t, InitTree(root))
	assert.NoError(t, UpdateTree(root))
	assert.NoError(t, DestroyTree(root))
}
