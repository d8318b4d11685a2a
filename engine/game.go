package engine

// Game is the application hook bundle handed to the engine. The engine
// owns the loop; the game contributes an initializer (which must establish
// the current scene and camera), a per-frame update and an optional resize
// hook.
type Game struct {
	ApplicationConfig *ApplicationConfig
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnOnResize        OnResize
}

type Initialize func(e *Engine) error
type Update func(deltaTime float64) error
type OnResize func(width, height uint32) error
