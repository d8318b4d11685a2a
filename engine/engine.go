package engine

import (
	"fmt"
	"sync"

	"github.com/spaghettifunk/ossia/engine/core"
	"github.com/spaghettifunk/ossia/engine/loop"
	"github.com/spaghettifunk/ossia/engine/platform"
	"github.com/spaghettifunk/ossia/engine/renderer"
	"github.com/spaghettifunk/ossia/engine/resources"
	"github.com/spaghettifunk/ossia/engine/settings"
	"github.com/spaghettifunk/ossia/engine/world"
)

type resizerEntry struct {
	id string
	fn resources.ResizeCallback
}

// Engine is the owning context that wires the world, the frame scheduler,
// the resize dispatcher and the settings store around an external renderer
// backend. One Engine is one fully isolated instance; nothing is shared at
// package level.
type Engine struct {
	config       *ApplicationConfig
	gameInstance *Game
	bus          *core.EventBus
	platform     *platform.Platform
	world        *world.World
	renderer     renderer.Renderer
	scheduler    *loop.Scheduler
	store        *settings.Store

	// Global resizers, invoked in registration order before the
	// scene-local ones.
	resizers []resizerEntry

	width  uint32
	height uint32

	done     chan struct{}
	stopOnce sync.Once
}

// New assembles an engine around the given game and renderer backend.
// frames may be nil, in which case a ticker-driven frame source at the
// configured refresh rate is used.
func New(g *Game, r renderer.Renderer, frames platform.FrameSource) (*Engine, error) {
	cfg := g.ApplicationConfig
	if cfg == nil {
		cfg = DefaultApplicationConfig()
	}
	core.SetLogLevel(cfg.logLevel())

	if frames == nil {
		frames = platform.NewTickerFrameSource(cfg.RefreshRate)
	}

	var store *settings.Store
	if cfg.SettingsPath != "" {
		var err error
		store, err = settings.NewStore(cfg.SettingsPath)
		if err != nil {
			return nil, fmt.Errorf("engine: opening settings store: %w", err)
		}
	}

	bus := core.NewEventBus()
	w := world.New(r)

	return &Engine{
		config:       cfg,
		gameInstance: g,
		bus:          bus,
		platform:     platform.New(frames, bus),
		world:        w,
		renderer:     r,
		scheduler:    loop.NewScheduler(frames, nil, w, r, store),
		store:        store,
		width:        cfg.StartWidth,
		height:       cfg.StartHeight,
		done:         make(chan struct{}),
	}, nil
}

// Initialize starts the platform and renderer, registers the built-in
// resize handling, runs the game initializer and finally initializes the
// scheduler. The game initializer must leave a current scene and camera
// selected, or scheduler initialization fails.
func (e *Engine) Initialize() error {
	if err := e.platform.Startup(e.width, e.height); err != nil {
		return err
	}
	if e.renderer != nil {
		if err := e.renderer.Initialize(e.config.Name, e.width, e.height); err != nil {
			return err
		}
	}

	e.bus.Register(core.EventCodeResized, e.onResized)
	e.bus.Register(core.EventCodeApplicationQuit, e.onQuit)

	// Built-in resizer: keeps the current camera's projection and the
	// renderer's output dimensions in sync with the viewport.
	if err := e.AddResizer("engine.viewport", e.syncViewport); err != nil {
		return err
	}

	if e.store != nil {
		err := e.store.Watch(func() {
			// Reload on the loop thread, never mid-tick.
			e.scheduler.Post(e.scheduler.ReloadSettings)
		})
		if err != nil {
			core.LogWarn("engine: settings watch unavailable: %s", err)
		}
	}

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(e); err != nil {
			return err
		}
	}
	if e.gameInstance.FnUpdate != nil {
		err := e.scheduler.AddAppCallback("game.update", func(delta float64) {
			if err := e.gameInstance.FnUpdate(delta); err != nil {
				core.LogError("game update failed: %s", err)
			}
		})
		if err != nil {
			return err
		}
	}
	if e.gameInstance.FnOnResize != nil {
		err := e.AddResizer("game.resize", func(width, height uint32) {
			if err := e.gameInstance.FnOnResize(width, height); err != nil {
				core.LogError("game resize failed: %s", err)
			}
		})
		if err != nil {
			return err
		}
	}

	return e.scheduler.Init()
}

// Run starts the frame loop and blocks until Stop is called or a quit
// event fires.
func (e *Engine) Run() error {
	if err := e.scheduler.Start(); err != nil {
		return err
	}
	<-e.done
	return nil
}

// Stop unblocks Run. Safe to call more than once.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() {
		close(e.done)
	})
}

func (e *Engine) Shutdown() error {
	e.Stop()
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			return err
		}
	}
	if e.renderer != nil {
		if err := e.renderer.Shutdown(); err != nil {
			return err
		}
	}
	return e.platform.Shutdown()
}

// AddResizer registers a global resize callback. Global resizers run in
// registration order, before every scene-local resizer.
func (e *Engine) AddResizer(id string, fn resources.ResizeCallback) error {
	for _, r := range e.resizers {
		if r.id == id {
			return &core.DuplicateIDError{Kind: "resizer", ID: id}
		}
	}
	e.resizers = append(e.resizers, resizerEntry{id: id, fn: fn})
	return nil
}

// DeleteResizer unregisters a global resize callback; an unknown id warns.
func (e *Engine) DeleteResizer(id string) {
	for i, r := range e.resizers {
		if r.id == id {
			e.resizers = append(e.resizers[:i], e.resizers[i+1:]...)
			return
		}
	}
	core.LogWarn("engine: no resizer with id %q", id)
}

// OnResize fans a viewport change out to every registered resizer: first
// the global ones in registration order, then each scene's local resizers
// in that scene's registration order. There is no ordering guarantee
// across scenes.
func (e *Engine) OnResize(width, height uint32) {
	e.width = width
	e.height = height
	for _, r := range e.resizers {
		r.fn(width, height)
	}
	for _, scene := range e.world.GetAllScenes() {
		scene.Resize(width, height)
	}
}

func (e *Engine) syncViewport(width, height uint32) {
	if camera := e.world.CurrentCamera(); camera != nil {
		camera.SetAspect(float32(width) / float32(height))
	}
	if e.renderer != nil {
		if err := e.renderer.Resized(width, height); err != nil {
			core.LogError("engine: renderer resize failed: %s", err)
		}
	}
}

func (e *Engine) onResized(context core.EventContext) bool {
	se, ok := context.Data.(*core.SystemEvent)
	if !ok {
		core.LogError("wrong payload associated with event type `%d`", context.Type)
		return false
	}
	if se.WindowWidth == 0 || se.WindowHeight == 0 {
		core.LogInfo("window minimized, skipping resize dispatch")
		return true
	}
	core.LogDebug("window resize: %d, %d", se.WindowWidth, se.WindowHeight)
	e.OnResize(se.WindowWidth, se.WindowHeight)
	return true
}

func (e *Engine) onQuit(context core.EventContext) bool {
	core.LogInfo("application quit requested, shutting down")
	e.scheduler.SetMasterPlay(false)
	e.Stop()
	return true
}

// Resize is the host-facing entry point for viewport changes.
func (e *Engine) Resize(width, height uint32) {
	e.platform.Resize(width, height)
}

// GetFramebufferSize returns the width and height (in this order) of the
// current viewport.
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

func (e *Engine) World() *world.World         { return e.world }
func (e *Engine) Scheduler() *loop.Scheduler  { return e.scheduler }
func (e *Engine) Renderer() renderer.Renderer { return e.renderer }
func (e *Engine) Platform() *platform.Platform {
	return e.platform
}
func (e *Engine) Events() *core.EventBus { return e.bus }
