package resources

import "fmt"

// MaterialModel selects the shading model of a material. Models are a
// closed set validated exhaustively at construction time.
type MaterialModel uint8

const (
	MaterialModelBasic MaterialModel = iota
	MaterialModelLambert
	MaterialModelPhong
)

func (m MaterialModel) String() string {
	switch m {
	case MaterialModelBasic:
		return "basic"
	case MaterialModelLambert:
		return "lambert"
	case MaterialModelPhong:
		return "phong"
	}
	return fmt.Sprintf("MaterialModel(%d)", uint8(m))
}

// MaterialConfig holds the shading parameters of a material.
type MaterialConfig struct {
	Model        MaterialModel
	DiffuseColor [4]float32
	// Shininess only applies to the phong model.
	Shininess float32
	// TextureIDs reference registered textures by id.
	TextureIDs []string
}

// Material holds shading parameters plus references to its textures by id.
// Like geometry, a material may be shared across meshes without any
// reference counting.
type Material struct {
	id           string
	Model        MaterialModel
	DiffuseColor [4]float32
	Shininess    float32
	TextureIDs   []string
}

func NewMaterial(id string, config MaterialConfig) (*Material, error) {
	switch config.Model {
	case MaterialModelBasic, MaterialModelLambert, MaterialModelPhong:
	default:
		return nil, fmt.Errorf("unknown material model %d", config.Model)
	}
	return &Material{
		id:           id,
		Model:        config.Model,
		DiffuseColor: config.DiffuseColor,
		Shininess:    config.Shininess,
		TextureIDs:   append([]string(nil), config.TextureIDs...),
	}, nil
}

func (m *Material) ResourceID() string {
	return m.id
}
