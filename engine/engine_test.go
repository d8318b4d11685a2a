package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/ossia/engine/core"
	"github.com/spaghettifunk/ossia/engine/platform"
	"github.com/spaghettifunk/ossia/engine/renderer"
	"github.com/spaghettifunk/ossia/engine/resources"
)

func testConfig() *ApplicationConfig {
	return &ApplicationConfig{
		Name:        "engine-test",
		StartWidth:  1280,
		StartHeight: 720,
		LogLevel:    "error",
		RefreshRate: 60,
	}
}

// newTestEngine assembles an initialized engine around a headless backend,
// a manual frame source and a game that selects one scene and one camera.
func newTestEngine(t *testing.T, g *Game) (*Engine, *renderer.Headless, *platform.ManualFrameSource) {
	t.Helper()
	if g == nil {
		g = &Game{}
	}
	if g.ApplicationConfig == nil {
		g.ApplicationConfig = testConfig()
	}
	userInit := g.FnInitialize
	g.FnInitialize = func(e *Engine) error {
		if _, err := e.World().CreateScene("scene", resources.SceneConfig{}); err != nil {
			return err
		}
		if _, err := e.World().CreateCamera("cam", resources.CameraConfig{}); err != nil {
			return err
		}
		e.World().SetCurrentScene("scene")
		e.World().SetCurrentCamera("cam")
		if userInit != nil {
			return userInit(e)
		}
		return nil
	}

	r := renderer.NewHeadless()
	frames := platform.NewManualFrameSource()
	e, err := New(g, r, frames)
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	return e, r, frames
}

func TestResizeDispatchOrder(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)

	var order []string
	require.NoError(t, e.AddResizer("a", func(w, h uint32) {
		order = append(order, "global-a")
	}))
	require.NoError(t, e.AddResizer("b", func(w, h uint32) {
		order = append(order, "global-b")
	}))
	scene := e.World().GetScene("scene")
	require.NotNil(t, scene)
	require.NoError(t, scene.AddResizer("local", func(w, h uint32) {
		order = append(order, "scene-local")
	}))

	e.Resize(800, 600)

	// Globals first, in registration order, then the scene-local ones.
	assert.Equal(t, []string{"global-a", "global-b", "scene-local"}, order)

	w, h := e.GetFramebufferSize()
	assert.Equal(t, uint32(800), w)
	assert.Equal(t, uint32(600), h)
}

func TestBuiltinViewportResizerSyncsCameraAndRenderer(t *testing.T) {
	e, r, _ := newTestEngine(t, nil)
	camera := e.World().CurrentCamera()
	require.NotNil(t, camera)

	e.Resize(800, 400)

	assert.InDelta(t, 2.0, float64(camera.Aspect), 1e-6)
	assert.Equal(t, uint32(800), r.Stats().Width)
	assert.Equal(t, uint32(400), r.Stats().Height)
}

func TestDuplicateResizerIDFails(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)
	require.NoError(t, e.AddResizer("hud", func(w, h uint32) {}))

	err := e.AddResizer("hud", func(w, h uint32) {})
	require.Error(t, err)
	assert.True(t, core.IsDuplicateID(err))
}

func TestDeletedResizerStopsRunning(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)

	calls := 0
	require.NoError(t, e.AddResizer("hud", func(w, h uint32) {
		calls++
	}))
	e.Resize(800, 600)
	e.DeleteResizer("hud")
	e.Resize(640, 480)

	assert.Equal(t, 1, calls)

	assert.NotPanics(t, func() {
		e.DeleteResizer("missing")
	})
}

func TestMinimizedResizeIsSkipped(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)

	calls := 0
	require.NoError(t, e.AddResizer("hud", func(w, h uint32) {
		calls++
	}))

	e.Resize(0, 0)

	assert.Equal(t, 0, calls)
	// The engine viewport keeps its last real dimensions.
	w, h := e.GetFramebufferSize()
	assert.Equal(t, uint32(1280), w)
	assert.Equal(t, uint32(720), h)
}

func TestResizeToSameSizeIsNoOp(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)

	calls := 0
	require.NoError(t, e.AddResizer("hud", func(w, h uint32) {
		calls++
	}))

	e.Resize(1280, 720)
	assert.Equal(t, 0, calls)
}

func TestGameCallbacksAreWired(t *testing.T) {
	updates := 0
	resizes := 0
	g := &Game{
		FnUpdate: func(delta float64) error {
			updates++
			return nil
		},
		FnOnResize: func(width, height uint32) error {
			resizes++
			return nil
		},
	}
	e, _, frames := newTestEngine(t, g)

	require.NoError(t, e.Scheduler().Start())
	require.True(t, frames.Fire(time.Unix(0, 0)))
	assert.Equal(t, 1, updates)

	e.Resize(800, 600)
	assert.Equal(t, 1, resizes)
}

func TestQuitEventHaltsLoopAndUnblocksRun(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)

	handled := e.Events().Fire(core.EventContext{Type: core.EventCodeApplicationQuit})
	assert.True(t, handled)

	// Run starts the scheduler but returns immediately: Stop already ran.
	require.NoError(t, e.Run())
	require.NoError(t, e.Shutdown())
}
