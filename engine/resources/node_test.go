package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func childIDs(o Object) []string {
	children := o.AsNode().Children()
	ids := make([]string, len(children))
	for i, c := range children {
		ids[i] = c.ResourceID()
	}
	return ids
}

func TestAttachKeepsRegistrationOrder(t *testing.T) {
	g := NewGroup("g")
	a := NewMesh("a", MeshConfig{})
	b := NewMesh("b", MeshConfig{})
	c := NewMesh("c", MeshConfig{})

	Attach(g, a)
	Attach(g, b)
	Attach(g, c)

	assert.Equal(t, []string{"a", "b", "c"}, childIDs(g))
	assert.Same(t, Object(g), a.Parent())
}

func TestReattachToSameParentIsIdempotent(t *testing.T) {
	g := NewGroup("g")
	a := NewMesh("a", MeshConfig{})

	Attach(g, a)
	Attach(g, a)

	assert.Equal(t, []string{"a"}, childIDs(g))
}

func TestAttachReparentsFromPreviousParent(t *testing.T) {
	g1 := NewGroup("g1")
	g2 := NewGroup("g2")
	a := NewMesh("a", MeshConfig{})

	Attach(g1, a)
	Attach(g2, a)

	assert.Empty(t, childIDs(g1))
	assert.Equal(t, []string{"a"}, childIDs(g2))
	assert.Same(t, Object(g2), a.Parent())
}

func TestDetachRemovesOnlyTarget(t *testing.T) {
	g := NewGroup("g")
	a := NewMesh("a", MeshConfig{})
	b := NewMesh("b", MeshConfig{})
	c := NewMesh("c", MeshConfig{})
	Attach(g, a)
	Attach(g, b)
	Attach(g, c)

	Detach(b)

	assert.Equal(t, []string{"a", "c"}, childIDs(g))
	assert.Nil(t, b.Parent())
}

func TestDetachWithoutParentIsNoOp(t *testing.T) {
	a := NewMesh("a", MeshConfig{})
	assert.NotPanics(t, func() {
		Detach(a)
	})
}

func TestSceneResizerOrderingAndDuplicates(t *testing.T) {
	s := NewScene("s", SceneConfig{})

	var order []string
	require.NoError(t, s.AddResizer("first", func(w, h uint32) {
		order = append(order, "first")
	}))
	require.NoError(t, s.AddResizer("second", func(w, h uint32) {
		order = append(order, "second")
	}))

	err := s.AddResizer("first", func(w, h uint32) {})
	require.Error(t, err)

	s.Resize(800, 600)
	assert.Equal(t, []string{"first", "second"}, order)

	s.DeleteResizer("first")
	order = nil
	s.Resize(800, 600)
	assert.Equal(t, []string{"second"}, order)

	// Unknown id warns but does not fail.
	assert.NotPanics(t, func() {
		s.DeleteResizer("missing")
	})
}
