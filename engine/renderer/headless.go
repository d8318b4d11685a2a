package renderer

import (
	"github.com/spaghettifunk/ossia/engine/core"
	"github.com/spaghettifunk/ossia/engine/resources"
)

// Headless is a backend that executes no draw calls. It records what was
// presented and released, which makes it the backend of choice for tests
// and for running the engine without a GPU.
type Headless struct {
	stats Stats

	LastScene  *resources.Scene
	LastCamera *resources.Camera

	DestroyedGeometries []string
	DestroyedTextures   []string
}

func NewHeadless() *Headless {
	return &Headless{}
}

func (h *Headless) Initialize(appName string, width, height uint32) error {
	h.stats.Width = width
	h.stats.Height = height
	core.LogInfo("headless renderer initialized for %q (%dx%d)", appName, width, height)
	return nil
}

func (h *Headless) Present(scene *resources.Scene, camera *resources.Camera) error {
	h.stats.FramesPresented++
	h.LastScene = scene
	h.LastCamera = camera
	return nil
}

func (h *Headless) Resized(width, height uint32) error {
	h.stats.Width = width
	h.stats.Height = height
	return nil
}

func (h *Headless) DestroyGeometry(geometry *resources.Geometry) {
	h.DestroyedGeometries = append(h.DestroyedGeometries, geometry.ResourceID())
}

func (h *Headless) DestroyTexture(texture *resources.Texture) {
	h.DestroyedTextures = append(h.DestroyedTextures, texture.ResourceID())
}

func (h *Headless) Stats() Stats {
	return h.stats
}

func (h *Headless) Shutdown() error {
	return nil
}
