package resources

import "math"

// Vertex3D is the interleaved vertex layout carried by geometry buffers.
type Vertex3D struct {
	Position [3]float32
	Normal   [3]float32
	UV       [2]float32
}

// GeometryConfig holds the raw buffer data for a geometry.
type GeometryConfig struct {
	Vertices []Vertex3D
	Indices  []uint32
}

// Geometry holds raw vertex/index buffers. It may be referenced by more
// than one mesh; the registries do not reference-count, so cascade-deleting
// it from one mesh invalidates it for all other referrers.
type Geometry struct {
	id string
	// Generation is incremented every time the buffers change, so a
	// backend can detect stale uploads.
	Generation uint16
	Vertices   []Vertex3D
	Indices    []uint32
}

func NewGeometry(id string, config GeometryConfig) *Geometry {
	return &Geometry{
		id:       id,
		Vertices: config.Vertices,
		Indices:  config.Indices,
	}
}

func (g *Geometry) ResourceID() string {
	return g.id
}

// SetBuffers replaces the buffer data and bumps the generation.
func (g *Geometry) SetBuffers(vertices []Vertex3D, indices []uint32) {
	g.Vertices = vertices
	g.Indices = indices
	g.Generation++
}

// BoxGeometryConfig generates an axis-aligned box centered on the origin.
func BoxGeometryConfig(width, height, depth float32) GeometryConfig {
	w, h, d := width/2, height/2, depth/2
	corners := [8][3]float32{
		{-w, -h, -d}, {w, -h, -d}, {w, h, -d}, {-w, h, -d},
		{-w, -h, d}, {w, -h, d}, {w, h, d}, {-w, h, d},
	}
	// One face per quad, duplicated corners so normals stay flat.
	faces := [6]struct {
		idx    [4]int
		normal [3]float32
	}{
		{[4]int{4, 5, 6, 7}, [3]float32{0, 0, 1}},
		{[4]int{1, 0, 3, 2}, [3]float32{0, 0, -1}},
		{[4]int{5, 1, 2, 6}, [3]float32{1, 0, 0}},
		{[4]int{0, 4, 7, 3}, [3]float32{-1, 0, 0}},
		{[4]int{7, 6, 2, 3}, [3]float32{0, 1, 0}},
		{[4]int{0, 1, 5, 4}, [3]float32{0, -1, 0}},
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	cfg := GeometryConfig{
		Vertices: make([]Vertex3D, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}
	for _, f := range faces {
		base := uint32(len(cfg.Vertices))
		for i, ci := range f.idx {
			cfg.Vertices = append(cfg.Vertices, Vertex3D{
				Position: corners[ci],
				Normal:   f.normal,
				UV:       uvs[i],
			})
		}
		cfg.Indices = append(cfg.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return cfg
}

// PlaneGeometryConfig generates a single quad in the XZ plane.
func PlaneGeometryConfig(width, depth float32) GeometryConfig {
	w, d := width/2, depth/2
	up := [3]float32{0, 1, 0}
	return GeometryConfig{
		Vertices: []Vertex3D{
			{Position: [3]float32{-w, 0, -d}, Normal: up, UV: [2]float32{0, 0}},
			{Position: [3]float32{w, 0, -d}, Normal: up, UV: [2]float32{1, 0}},
			{Position: [3]float32{w, 0, d}, Normal: up, UV: [2]float32{1, 1}},
			{Position: [3]float32{-w, 0, d}, Normal: up, UV: [2]float32{0, 1}},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

// SphereGeometryConfig generates a UV sphere with the given number of
// segments and rings.
func SphereGeometryConfig(radius float32, segments, rings int) GeometryConfig {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}
	cfg := GeometryConfig{}
	for ring := 0; ring <= rings; ring++ {
		phi := math.Pi * float64(ring) / float64(rings)
		for seg := 0; seg <= segments; seg++ {
			theta := 2 * math.Pi * float64(seg) / float64(segments)
			nx := float32(math.Sin(phi) * math.Cos(theta))
			ny := float32(math.Cos(phi))
			nz := float32(math.Sin(phi) * math.Sin(theta))
			cfg.Vertices = append(cfg.Vertices, Vertex3D{
				Position: [3]float32{nx * radius, ny * radius, nz * radius},
				Normal:   [3]float32{nx, ny, nz},
				UV: [2]float32{
					float32(seg) / float32(segments),
					float32(ring) / float32(rings),
				},
			})
		}
	}
	stride := uint32(segments + 1)
	for ring := uint32(0); ring < uint32(rings); ring++ {
		for seg := uint32(0); seg < uint32(segments); seg++ {
			a := ring*stride + seg
			b := a + stride
			cfg.Indices = append(cfg.Indices, a, b, a+1, b, b+1, a+1)
		}
	}
	return cfg
}
