package resources

import (
	"github.com/spaghettifunk/ossia/engine/core"
)

// SceneConfig configures a root container.
type SceneConfig struct {
	// BackgroundTextureID optionally references a registered texture used
	// as the scene backdrop.
	BackgroundTextureID string
	// BackgroundColor is the RGBA clear color used when no backdrop
	// texture is set.
	BackgroundColor [4]float32
}

// ResizeCallback is invoked with the new viewport dimensions.
type ResizeCallback func(width, height uint32)

type sceneResizer struct {
	id string
	fn ResizeCallback
}

// Scene is the root container of a render tree. Exactly one scene may be
// "current" for presentation. Besides its child list it owns an ordered
// set of scene-local resize callbacks.
type Scene struct {
	Node
	BackgroundTextureID string
	BackgroundColor     [4]float32

	resizers []sceneResizer
}

func NewScene(id string, config SceneConfig) *Scene {
	return &Scene{
		Node:                NewNode(id),
		BackgroundTextureID: config.BackgroundTextureID,
		BackgroundColor:     config.BackgroundColor,
	}
}

// AddResizer registers a scene-local resize callback. Callbacks run in
// registration order, after all global resizers.
func (s *Scene) AddResizer(id string, fn ResizeCallback) error {
	for _, r := range s.resizers {
		if r.id == id {
			return &core.DuplicateIDError{Kind: "scene resizer", ID: id}
		}
	}
	s.resizers = append(s.resizers, sceneResizer{id: id, fn: fn})
	return nil
}

// DeleteResizer removes a scene-local resize callback. An unknown id is
// logged and ignored.
func (s *Scene) DeleteResizer(id string) {
	for i, r := range s.resizers {
		if r.id == id {
			s.resizers = append(s.resizers[:i], s.resizers[i+1:]...)
			return
		}
	}
	core.LogWarn("scene %q has no resizer with id %q", s.ResourceID(), id)
}

// Resize invokes every scene-local resizer in registration order.
func (s *Scene) Resize(width, height uint32) {
	for _, r := range s.resizers {
		r.fn(width, height)
	}
}
