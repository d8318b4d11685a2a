package testbed

import (
	"github.com/spaghettifunk/ossia/engine"
	"github.com/spaghettifunk/ossia/engine/core"
	"github.com/spaghettifunk/ossia/engine/resources"
)

type gameState struct {
	engine  *engine.Engine
	elapsed float64
}

// NewTestGame builds a small demo world: a checkered cube under a
// directional light, presented through whatever backend the host passes
// to the engine.
func NewTestGame() *engine.Game {
	state := &gameState{}
	return &engine.Game{
		ApplicationConfig: &engine.ApplicationConfig{
			Name:         "Ossia Testbed",
			StartWidth:   1280,
			StartHeight:  720,
			LogLevel:     "debug",
			RefreshRate:  60,
			SettingsPath: "testbed-settings.json",
		},
		State:        state,
		FnInitialize: state.initialize,
		FnUpdate:     state.update,
		FnOnResize:   state.onResize,
	}
}

func (s *gameState) initialize(e *engine.Engine) error {
	s.engine = e
	w := e.World()

	if _, err := w.CreateTexture("tex-checker", resources.TextureConfig{
		Width:  2,
		Height: 2,
		Pixels: []uint8{
			255, 255, 255, 255, 32, 32, 32, 255,
			32, 32, 32, 255, 255, 255, 255, 255,
		},
	}); err != nil {
		return err
	}

	if _, err := w.CreateMaterial("mat-checker", resources.MaterialConfig{
		Model:        resources.MaterialModelPhong,
		DiffuseColor: [4]float32{1, 1, 1, 1},
		Shininess:    32,
		TextureIDs:   []string{"tex-checker"},
	}); err != nil {
		return err
	}

	if _, err := w.CreateGeometry("geo-cube", resources.BoxGeometryConfig(1, 1, 1)); err != nil {
		return err
	}

	mesh, err := w.CreateMesh("mesh-cube", resources.MeshConfig{
		GeometryID:  "geo-cube",
		MaterialIDs: []string{"mat-checker"},
	})
	if err != nil {
		return err
	}

	sun, err := w.CreateLight("light-sun", resources.DirectionalLightConfig{
		Color:     [3]float32{1, 1, 0.95},
		Intensity: 0.9,
		Direction: [3]float32{-0.5, -1, -0.3},
	})
	if err != nil {
		return err
	}

	scene, err := w.CreateScene("scene-main", resources.SceneConfig{
		BackgroundColor: [4]float32{0.05, 0.05, 0.1, 1},
	})
	if err != nil {
		return err
	}
	w.Attach(scene, mesh, sun)

	if _, err := w.CreateCamera("cam-main", resources.CameraConfig{
		FOV:    60,
		Near:   0.1,
		Far:    500,
		Aspect: 16.0 / 9.0,
	}); err != nil {
		return err
	}

	w.SetCurrentScene("scene-main")
	w.SetCurrentCamera("cam-main")
	return nil
}

func (s *gameState) update(delta float64) error {
	s.elapsed += delta
	if s.elapsed > 5 {
		fps, frameTime := s.engine.Scheduler().Metrics().Frame()
		core.LogInfo("fps: %.1f, frame time: %.2fms", fps, frameTime)
		s.elapsed = 0
	}
	return nil
}

func (s *gameState) onResize(width, height uint32) error {
	core.LogDebug("testbed viewport is now %dx%d", width, height)
	return nil
}
