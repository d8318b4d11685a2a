package loop

import (
	"fmt"
	"math"
	"time"

	"github.com/spaghettifunk/ossia/engine/containers"
	"github.com/spaghettifunk/ossia/engine/core"
	"github.com/spaghettifunk/ossia/engine/platform"
	"github.com/spaghettifunk/ossia/engine/renderer"
	"github.com/spaghettifunk/ossia/engine/settings"
	"github.com/spaghettifunk/ossia/engine/world"
)

// settingsKey is the namespaced key the loop configuration persists under.
const settingsKey = "ossia.loop"

// taskQueueSize bounds how many posted completions can wait for the next
// tick before Post starts rejecting.
const taskQueueSize = 256

// Config is the persisted loop configuration.
type Config struct {
	MasterPlay bool    `json:"masterPlay"`
	AppPlay    bool    `json:"appPlay"`
	MaxFPS     float64 `json:"maxFPS"`
}

// Callback is a per-frame callback receiving the elapsed wall-clock time
// since the previous tick, in seconds.
type Callback func(delta float64)

type callbackEntry struct {
	id string
	fn Callback
}

// Scheduler is the single-threaded cooperative frame driver. One external
// "next frame" signal is the sole source of scheduling: each tick runs the
// registered main callbacks, then the app callbacks while appPlay is set,
// then presentation, gated by the optional FPS cap. A halted scheduler
// (masterPlay false) does not reschedule itself and stays halted until
// externally restarted.
type Scheduler struct {
	frames   platform.FrameSource
	time     core.TimeSource
	world    *world.World
	renderer renderer.Renderer
	store    *settings.Store
	metrics  *core.Metrics

	mainCallbacks []callbackEntry
	appCallbacks  []callbackEntry

	masterPlay      bool
	appPlay         bool
	isMasterPlaying bool
	isAppPlaying    bool

	// maxFPS caps presentation; 0 presents on every tick.
	maxFPS         float64
	maxFPSInterval float64
	accumulator    float64

	lastTick time.Time
	hasLast  bool

	initialized bool

	// Completions from other goroutines re-enter the loop thread here;
	// drained at the top of every tick.
	tasks *containers.RingQueue[func()]
}

func NewScheduler(frames platform.FrameSource, timeSource core.TimeSource, w *world.World, r renderer.Renderer, store *settings.Store) *Scheduler {
	if timeSource == nil {
		timeSource = core.SystemTimeSource{}
	}
	return &Scheduler{
		frames:     frames,
		time:       timeSource,
		world:      w,
		renderer:   r,
		store:      store,
		metrics:    core.NewMetrics(),
		masterPlay: true,
		appPlay:    true,
		tasks:      containers.NewRingQueue[func()](taskQueueSize),
	}
}

// Init verifies the scheduler's hard preconditions and loads the persisted
// configuration. A renderer, a current scene and a current camera must all
// be established first; anything else is unrecoverable at this layer.
func (s *Scheduler) Init() error {
	if s.renderer == nil {
		return fmt.Errorf("%w: no renderer established", core.ErrMissingPrecondition)
	}
	if s.world.CurrentScene() == nil {
		return fmt.Errorf("%w: no current scene selected", core.ErrMissingPrecondition)
	}
	if s.world.CurrentCamera() == nil {
		return fmt.Errorf("%w: no current camera selected", core.ErrMissingPrecondition)
	}

	if s.store != nil {
		var cfg Config
		found, err := s.store.Get(settingsKey, &cfg)
		if err != nil {
			core.LogWarn("loop: ignoring persisted config: %s", err)
		} else if found {
			s.applyConfig(cfg)
		} else {
			s.persist()
		}
	}

	s.initialized = true
	return nil
}

// Start arms the first frame. Init must have succeeded.
func (s *Scheduler) Start() error {
	if !s.initialized {
		return fmt.Errorf("%w: scheduler not initialized", core.ErrMissingPrecondition)
	}
	s.frames.RequestFrame(s.tick)
	return nil
}

func (s *Scheduler) tick(now time.Time) {
	s.drainTasks()

	if !s.masterPlay {
		// Terminal until externally restarted; no reschedule.
		s.isMasterPlaying = false
		s.hasLast = false
		return
	}

	s.frames.RequestFrame(s.tick)
	s.isMasterPlaying = true

	var delta float64
	if s.hasLast {
		delta = now.Sub(s.lastTick).Seconds()
	}
	s.lastTick = now
	s.hasLast = true

	// Main callbacks run unconditionally, in registration order.
	for _, cb := range s.mainCallbacks {
		cb.fn(delta)
	}

	if s.appPlay {
		s.isAppPlaying = true
		for _, cb := range s.appCallbacks {
			cb.fn(delta)
		}
	} else {
		s.isAppPlaying = false
	}

	if s.maxFPS > 0 {
		s.accumulator += delta
		if s.accumulator > s.maxFPSInterval {
			s.present(delta)
			// Carry the remainder forward rather than resetting to zero,
			// avoiding cumulative timing drift.
			s.accumulator = math.Mod(s.accumulator, s.maxFPSInterval)
		}
	} else {
		s.present(delta)
	}
}

func (s *Scheduler) present(delta float64) {
	// Fire-and-forget: the next tick is armed regardless of completion.
	if err := s.renderer.Present(s.world.CurrentScene(), s.world.CurrentCamera()); err != nil {
		core.LogError("loop: present failed: %s", err)
	}
	s.metrics.Update(delta)
}

// SetMasterPlay starts or halts the whole loop. A false→true transition
// re-enters the tick function immediately, since a halted scheduler will
// not reschedule itself otherwise.
func (s *Scheduler) SetMasterPlay(value bool) {
	if s.masterPlay == value {
		return
	}
	s.masterPlay = value
	s.persist()
	if value {
		s.tick(s.time.Now())
	}
}

func (s *Scheduler) ToggleMasterPlay() {
	s.SetMasterPlay(!s.masterPlay)
}

// SetAppPlay gates the app callbacks. It takes effect on the next
// naturally occurring tick; the loop keeps running regardless.
func (s *Scheduler) SetAppPlay(value bool) {
	if s.appPlay == value {
		return
	}
	s.appPlay = value
	s.persist()
}

func (s *Scheduler) ToggleAppPlay() {
	s.SetAppPlay(!s.appPlay)
}

// SetMaxFPS caps presentation at fps frames per second; 0 removes the cap.
func (s *Scheduler) SetMaxFPS(fps float64) {
	fps = core.Clamp(fps, 0, 1000)
	s.maxFPS = fps
	if fps > 0 {
		s.maxFPSInterval = 1 / fps
	} else {
		s.maxFPSInterval = 0
	}
	s.accumulator = 0
	s.persist()
}

func (s *Scheduler) applyConfig(cfg Config) {
	s.masterPlay = cfg.MasterPlay
	s.appPlay = cfg.AppPlay
	fps := core.Clamp(cfg.MaxFPS, 0, 1000)
	s.maxFPS = fps
	if fps > 0 {
		s.maxFPSInterval = 1 / fps
	} else {
		s.maxFPSInterval = 0
	}
}

// persist writes the current configuration on every change.
func (s *Scheduler) persist() {
	if s.store == nil {
		return
	}
	cfg := Config{
		MasterPlay: s.masterPlay,
		AppPlay:    s.appPlay,
		MaxFPS:     s.maxFPS,
	}
	if err := s.store.Set(settingsKey, cfg); err != nil {
		core.LogWarn("loop: persisting config failed: %s", err)
	}
}

// ReloadSettings re-reads the persisted configuration. The engine posts
// this from the settings watcher so the reload lands on the loop thread.
func (s *Scheduler) ReloadSettings() {
	if s.store == nil {
		return
	}
	var cfg Config
	found, err := s.store.Get(settingsKey, &cfg)
	if err != nil {
		core.LogWarn("loop: reloading config failed: %s", err)
		return
	}
	if found {
		s.applyConfig(cfg)
	}
}

// AddMainCallback registers a per-frame callback that runs on every tick.
// Callbacks run in registration order.
func (s *Scheduler) AddMainCallback(id string, fn Callback) error {
	for _, cb := range s.mainCallbacks {
		if cb.id == id {
			return &core.DuplicateIDError{Kind: "main callback", ID: id}
		}
	}
	s.mainCallbacks = append(s.mainCallbacks, callbackEntry{id: id, fn: fn})
	return nil
}

// RemoveMainCallback unregisters a main callback; an unknown id warns.
func (s *Scheduler) RemoveMainCallback(id string) {
	for i, cb := range s.mainCallbacks {
		if cb.id == id {
			s.mainCallbacks = append(s.mainCallbacks[:i], s.mainCallbacks[i+1:]...)
			return
		}
	}
	core.LogWarn("loop: no main callback with id %q", id)
}

// AddAppCallback registers a per-frame callback that runs only while
// appPlay is set.
func (s *Scheduler) AddAppCallback(id string, fn Callback) error {
	for _, cb := range s.appCallbacks {
		if cb.id == id {
			return &core.DuplicateIDError{Kind: "app callback", ID: id}
		}
	}
	s.appCallbacks = append(s.appCallbacks, callbackEntry{id: id, fn: fn})
	return nil
}

func (s *Scheduler) RemoveAppCallback(id string) {
	for i, cb := range s.appCallbacks {
		if cb.id == id {
			s.appCallbacks = append(s.appCallbacks[:i], s.appCallbacks[i+1:]...)
			return
		}
	}
	core.LogWarn("loop: no app callback with id %q", id)
}

// Post queues fn to run on the loop thread at the top of the next tick.
// This is how asynchronous completions re-enter the single-threaded world.
func (s *Scheduler) Post(fn func()) {
	if err := s.tasks.Enqueue(fn); err != nil {
		core.LogWarn("loop: task queue full, dropping posted task")
	}
}

func (s *Scheduler) drainTasks() {
	for {
		fn, err := s.tasks.Dequeue()
		if err != nil {
			return
		}
		fn()
	}
}

// Observable run status.

func (s *Scheduler) IsMasterPlaying() bool { return s.isMasterPlaying }
func (s *Scheduler) IsAppPlaying() bool    { return s.isAppPlaying }
func (s *Scheduler) MaxFPS() float64       { return s.maxFPS }

// Accumulator exposes the running remainder of unpresented time used by
// the FPS cap.
func (s *Scheduler) Accumulator() float64 { return s.accumulator }

func (s *Scheduler) Metrics() *core.Metrics { return s.metrics }
