package renderer

import (
	"github.com/spaghettifunk/ossia/engine/resources"
)

// Stats reports presentation counters for a backend.
type Stats struct {
	FramesPresented uint64
	Width           uint32
	Height          uint32
}

// Renderer is the narrow contract the engine holds against a rendering
// backend. Draw-call execution lives entirely behind it; the engine only
// hands over the current scene and camera once per presented frame.
type Renderer interface {
	Initialize(appName string, width, height uint32) error
	// Present submits one frame. It is fire-and-forget: the scheduler does
	// not wait for completion before arming the next tick.
	Present(scene *resources.Scene, camera *resources.Camera) error
	// Resized updates the backend's output dimensions.
	Resized(width, height uint32) error
	// DestroyGeometry releases backend-side buffers for a geometry that is
	// being deleted from its registry.
	DestroyGeometry(geometry *resources.Geometry)
	// DestroyTexture releases backend-side storage for a texture that is
	// being deleted from its registry.
	DestroyTexture(texture *resources.Texture)
	Stats() Stats
	Shutdown() error
}
