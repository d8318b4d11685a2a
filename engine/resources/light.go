package resources

import "fmt"

// Light represents a light that illuminates a scene. The concrete types
// form a closed set; construction goes through NewLight, which matches the
// config variants exhaustively.
type Light interface {
	Object
	AsLightBase() *LightBase
}

// LightBase provides the shared state of all light variants.
type LightBase struct {
	Node
	On        bool
	Color     [3]float32
	Intensity float32
}

func (lb *LightBase) AsLightBase() *LightBase {
	return lb
}

// LightConfig is the sealed set of light construction variants.
type LightConfig interface {
	lightConfig()
}

type AmbientLightConfig struct {
	Color     [3]float32
	Intensity float32
}

type DirectionalLightConfig struct {
	Color     [3]float32
	Intensity float32
	// Direction the light travels, in world coordinates.
	Direction [3]float32
}

type PointLightConfig struct {
	Color     [3]float32
	Intensity float32
	Position  [3]float32
	// Distance linear decay factor.
	LinearDecay float32
	// Distance quadratic decay factor, dominates at longer distances.
	QuadraticDecay float32
}

type SpotLightConfig struct {
	Color     [3]float32
	Intensity float32
	Position  [3]float32
	Direction [3]float32
	// CutoffAngle is the cone half-angle in degrees.
	CutoffAngle float32
}

func (AmbientLightConfig) lightConfig()     {}
func (DirectionalLightConfig) lightConfig() {}
func (PointLightConfig) lightConfig()       {}
func (SpotLightConfig) lightConfig()        {}

// AmbientLight provides diffuse uniform lighting; typically only one per
// scene.
type AmbientLight struct {
	LightBase
}

// DirectionalLight projects light along a fixed direction with no
// attenuation, like the sun.
type DirectionalLight struct {
	LightBase
	Direction [3]float32
}

// PointLight is an omnidirectional light with a position and decay factors
// dividing intensity over distance.
type PointLight struct {
	LightBase
	Position       [3]float32
	LinearDecay    float32
	QuadraticDecay float32
}

// SpotLight emits a cone of light from a position along a direction.
type SpotLight struct {
	LightBase
	Position    [3]float32
	Direction   [3]float32
	CutoffAngle float32
}

func newLightBase(id string, color [3]float32, intensity float32) LightBase {
	return LightBase{
		Node:      NewNode(id),
		On:        true,
		Color:     color,
		Intensity: intensity,
	}
}

// NewLight constructs the light variant matching config.
func NewLight(id string, config LightConfig) (Light, error) {
	switch c := config.(type) {
	case AmbientLightConfig:
		return &AmbientLight{
			LightBase: newLightBase(id, c.Color, c.Intensity),
		}, nil
	case DirectionalLightConfig:
		return &DirectionalLight{
			LightBase: newLightBase(id, c.Color, c.Intensity),
			Direction: c.Direction,
		}, nil
	case PointLightConfig:
		pl := &PointLight{
			LightBase:      newLightBase(id, c.Color, c.Intensity),
			Position:       c.Position,
			LinearDecay:    c.LinearDecay,
			QuadraticDecay: c.QuadraticDecay,
		}
		if pl.LinearDecay == 0 {
			pl.LinearDecay = 0.1
		}
		if pl.QuadraticDecay == 0 {
			pl.QuadraticDecay = 0.01
		}
		return pl, nil
	case SpotLightConfig:
		return &SpotLight{
			LightBase:   newLightBase(id, c.Color, c.Intensity),
			Position:    c.Position,
			Direction:   c.Direction,
			CutoffAngle: c.CutoffAngle,
		}, nil
	default:
		return nil, fmt.Errorf("unknown light config type %T", config)
	}
}
