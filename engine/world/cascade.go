package world

import (
	"github.com/spaghettifunk/ossia/engine/core"
	"github.com/spaghettifunk/ossia/engine/resources"
)

// CascadeOptions select which referenced sub-resources are deleted along
// with their referrer. DeleteAll implies every other flag.
type CascadeOptions struct {
	// DeleteMeshes applies to container removal: removed mesh children are
	// also deleted from the mesh registry (and cascaded further per the
	// remaining flags).
	DeleteMeshes     bool
	DeleteGeometries bool
	DeleteMaterials  bool
	DeleteTextures   bool
	DeleteAll        bool
}

func (o CascadeOptions) normalized() CascadeOptions {
	if o.DeleteAll {
		o.DeleteMeshes = true
		o.DeleteGeometries = true
		o.DeleteMaterials = true
		o.DeleteTextures = true
	}
	return o
}

// DeleteMesh removes the given meshes from the registry, detaches them
// from the render tree and cascades over their referenced sub-resources as
// requested. Each id is processed independently; a missing entry logs a
// warning and the batch continues.
//
// No reference counting is performed anywhere in the cascade: deleting one
// mesh's geometry or material invalidates it for every other mesh still
// referencing the same id.
func (w *World) DeleteMesh(opts CascadeOptions, ids ...string) {
	opts = opts.normalized()
	for _, id := range ids {
		mesh, ok := w.meshes.Pop(id)
		if !ok {
			core.LogWarn("cannot delete mesh %q: not registered", id)
			continue
		}
		resources.Detach(mesh)

		if opts.DeleteGeometries && mesh.GeometryID != "" {
			w.geometries.Delete(mesh.GeometryID)
		}
		if opts.DeleteMaterials {
			w.DeleteMaterial(opts.DeleteTextures, mesh.MaterialIDs...)
		}
	}
}

// DeleteMaterial removes the given materials and, when deleteTextures is
// set, the textures they reference by stored id. Missing entries warn and
// are skipped.
func (w *World) DeleteMaterial(deleteTextures bool, ids ...string) {
	for _, id := range ids {
		material, ok := w.materials.Pop(id)
		if !ok {
			core.LogWarn("cannot delete material %q: not registered", id)
			continue
		}
		if deleteTextures && len(material.TextureIDs) > 0 {
			w.textures.Delete(material.TextureIDs...)
		}
	}
}
