package resources

import (
	"math"

	"github.com/spaghettifunk/ossia/engine/core"
)

// CameraConfig holds the perspective projection parameters.
type CameraConfig struct {
	// Vertical field of view in degrees.
	FOV    float32
	Near   float32
	Far    float32
	Aspect float32
}

// Camera is a perspective camera. Exactly one camera may be "current" for
// presentation; the selection pointer lives on the World.
type Camera struct {
	id     string
	FOV    float32
	Near   float32
	Far    float32
	Aspect float32
	// Column-major perspective projection matrix, recomputed whenever the
	// projection parameters change.
	Projection [16]float32
}

func NewCamera(id string, config CameraConfig) *Camera {
	c := &Camera{
		id:     id,
		FOV:    config.FOV,
		Near:   config.Near,
		Far:    config.Far,
		Aspect: config.Aspect,
	}
	if c.FOV == 0 {
		c.FOV = 45.0
	}
	if c.Near == 0 {
		c.Near = 0.1
	}
	if c.Far == 0 {
		c.Far = 1000.0
	}
	if c.Aspect == 0 {
		c.Aspect = 16.0 / 9.0
	}
	c.UpdateProjection()
	return c
}

func (c *Camera) ResourceID() string {
	return c.id
}

// SetAspect updates the aspect ratio and recomputes the projection.
// The built-in resize handler calls this on every viewport change.
func (c *Camera) SetAspect(aspect float32) {
	c.Aspect = core.Clamp(aspect, 0.01, 100.0)
	c.UpdateProjection()
}

// UpdateProjection recomputes the perspective projection matrix from the
// current fov/near/far/aspect.
func (c *Camera) UpdateProjection() {
	fovRad := float64(c.FOV) * math.Pi / 180.0
	f := float32(1.0 / math.Tan(fovRad/2.0))
	nf := 1.0 / (c.Near - c.Far)

	var m [16]float32
	m[0] = f / c.Aspect
	m[5] = f
	m[10] = (c.Far + c.Near) * nf
	m[11] = -1
	m[14] = 2 * c.Far * c.Near * nf
	c.Projection = m
}
