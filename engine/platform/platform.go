package platform

import (
	"github.com/spaghettifunk/ossia/engine/core"
)

// Platform is the boundary to the host environment: it owns the frame
// signal and forwards viewport changes into the engine's event bus. The
// actual window (if any) lives outside this module; hosts call Resize when
// their surface changes.
type Platform struct {
	frames FrameSource
	bus    *core.EventBus

	width  uint32
	height uint32
}

func New(frames FrameSource, bus *core.EventBus) *Platform {
	return &Platform{
		frames: frames,
		bus:    bus,
	}
}

func (p *Platform) Startup(width, height uint32) error {
	p.width = width
	p.height = height
	return nil
}

func (p *Platform) Frames() FrameSource {
	return p.frames
}

func (p *Platform) Size() (uint32, uint32) {
	return p.width, p.height
}

// Resize is the wire-level entry point for host viewport changes. It fires
// a resize event carrying the new dimensions; dispatching to resizers
// happens in the engine's handler.
func (p *Platform) Resize(width, height uint32) {
	if width == p.width && height == p.height {
		return
	}
	p.width = width
	p.height = height
	p.bus.Fire(core.EventContext{
		Type: core.EventCodeResized,
		Data: &core.SystemEvent{WindowWidth: width, WindowHeight: height},
	})
}

func (p *Platform) Shutdown() error {
	p.frames.Stop()
	return nil
}
