package resources

// MeshConfig references the geometry and material(s) a mesh renders with.
type MeshConfig struct {
	GeometryID string
	// MaterialIDs holds one entry per primitive group. A single-material
	// mesh has exactly one.
	MaterialIDs []string
}

// Mesh is a leaf render object tying a geometry to one or more materials,
// both referenced by id. The references confer no ownership; the disposal
// cascade deletes them by stored id when asked to.
type Mesh struct {
	Node
	GeometryID  string
	MaterialIDs []string
}

func NewMesh(id string, config MeshConfig) *Mesh {
	return &Mesh{
		Node:        NewNode(id),
		GeometryID:  config.GeometryID,
		MaterialIDs: append([]string(nil), config.MaterialIDs...),
	}
}
