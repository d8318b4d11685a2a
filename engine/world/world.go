package world

import (
	"github.com/spaghettifunk/ossia/engine/core"
	"github.com/spaghettifunk/ossia/engine/registry"
	"github.com/spaghettifunk/ossia/engine/resources"
)

// Releaser frees backend-side state when a GPU-backed resource is deleted
// from its registry. The renderer satisfies this.
type Releaser interface {
	DestroyGeometry(geometry *resources.Geometry)
	DestroyTexture(texture *resources.Texture)
}

// World is the owning context for every resource registry plus the
// current-selection pointers. All operations run on the frame loop thread;
// there is no shared package-level state.
type World struct {
	cameras    *registry.Registry[*resources.Camera]
	scenes     *registry.Registry[*resources.Scene]
	groups     *registry.Registry[*resources.Group]
	meshes     *registry.Registry[*resources.Mesh]
	geometries *registry.Registry[*resources.Geometry]
	materials  *registry.Registry[*resources.Material]
	textures   *registry.Registry[*resources.Texture]
	lights     *registry.Registry[resources.Light]

	// Weak selection pointers: they do not own the referenced entity and
	// are not cleared when it is deleted.
	currentCamera   *resources.Camera
	currentCameraID string
	currentScene    *resources.Scene
	currentSceneID  string
}

func New(releaser Releaser) *World {
	var releaseGeometry func(*resources.Geometry)
	var releaseTexture func(*resources.Texture)
	if releaser != nil {
		releaseGeometry = releaser.DestroyGeometry
		releaseTexture = releaser.DestroyTexture
	}
	return &World{
		cameras:    registry.New[*resources.Camera]("camera", nil),
		scenes:     registry.New[*resources.Scene]("scene", nil),
		groups:     registry.New[*resources.Group]("group", nil),
		meshes:     registry.New[*resources.Mesh]("mesh", nil),
		geometries: registry.New[*resources.Geometry]("geometry", releaseGeometry),
		materials:  registry.New[*resources.Material]("material", nil),
		textures:   registry.New[*resources.Texture]("texture", releaseTexture),
		lights:     registry.New[resources.Light]("light", nil),
	}
}

// Registry accessors, for positional lookups and snapshots beyond the
// typed wrappers below.

func (w *World) Cameras() *registry.Registry[*resources.Camera]      { return w.cameras }
func (w *World) Scenes() *registry.Registry[*resources.Scene]        { return w.scenes }
func (w *World) Groups() *registry.Registry[*resources.Group]        { return w.groups }
func (w *World) Meshes() *registry.Registry[*resources.Mesh]         { return w.meshes }
func (w *World) Geometries() *registry.Registry[*resources.Geometry] { return w.geometries }
func (w *World) Materials() *registry.Registry[*resources.Material]  { return w.materials }
func (w *World) Textures() *registry.Registry[*resources.Texture]    { return w.textures }
func (w *World) Lights() *registry.Registry[resources.Light]         { return w.lights }

// Factories. An empty id is replaced with a generated one; a colliding id
// fails with DuplicateIDError.

func (w *World) CreateCamera(id string, config resources.CameraConfig) (*resources.Camera, error) {
	return w.cameras.Create(id, func(id string) (*resources.Camera, error) {
		return resources.NewCamera(id, config), nil
	})
}

func (w *World) CreateScene(id string, config resources.SceneConfig) (*resources.Scene, error) {
	if config.BackgroundTextureID != "" && !w.textures.Has(config.BackgroundTextureID) {
		core.LogWarn("scene %q references unknown background texture %q", id, config.BackgroundTextureID)
	}
	return w.scenes.Create(id, func(id string) (*resources.Scene, error) {
		return resources.NewScene(id, config), nil
	})
}

func (w *World) CreateGroup(id string) (*resources.Group, error) {
	return w.groups.Create(id, func(id string) (*resources.Group, error) {
		return resources.NewGroup(id), nil
	})
}

func (w *World) CreateMesh(id string, config resources.MeshConfig) (*resources.Mesh, error) {
	if config.GeometryID != "" && !w.geometries.Has(config.GeometryID) {
		core.LogWarn("mesh %q references unknown geometry %q", id, config.GeometryID)
	}
	for _, mid := range config.MaterialIDs {
		if !w.materials.Has(mid) {
			core.LogWarn("mesh %q references unknown material %q", id, mid)
		}
	}
	return w.meshes.Create(id, func(id string) (*resources.Mesh, error) {
		return resources.NewMesh(id, config), nil
	})
}

func (w *World) CreateGeometry(id string, config resources.GeometryConfig) (*resources.Geometry, error) {
	return w.geometries.Create(id, func(id string) (*resources.Geometry, error) {
		return resources.NewGeometry(id, config), nil
	})
}

func (w *World) CreateMaterial(id string, config resources.MaterialConfig) (*resources.Material, error) {
	for _, tid := range config.TextureIDs {
		if !w.textures.Has(tid) {
			core.LogWarn("material %q references unknown texture %q", id, tid)
		}
	}
	return w.materials.Create(id, func(id string) (*resources.Material, error) {
		return resources.NewMaterial(id, config)
	})
}

func (w *World) CreateTexture(id string, config resources.TextureConfig) (*resources.Texture, error) {
	return w.textures.Create(id, func(id string) (*resources.Texture, error) {
		return resources.NewTexture(id, config)
	})
}

func (w *World) CreateLight(id string, config resources.LightConfig) (resources.Light, error) {
	return w.lights.Create(id, func(id string) (resources.Light, error) {
		return resources.NewLight(id, config)
	})
}

// Lookups. A miss logs a warning and returns nil.

func (w *World) GetCamera(id string) *resources.Camera     { return w.cameras.Get(id) }
func (w *World) GetScene(id string) *resources.Scene       { return w.scenes.Get(id) }
func (w *World) GetGroup(id string) *resources.Group       { return w.groups.Get(id) }
func (w *World) GetMesh(id string) *resources.Mesh         { return w.meshes.Get(id) }
func (w *World) GetGeometry(id string) *resources.Geometry { return w.geometries.Get(id) }
func (w *World) GetMaterial(id string) *resources.Material { return w.materials.Get(id) }
func (w *World) GetTexture(id string) *resources.Texture   { return w.textures.Get(id) }
func (w *World) GetLight(id string) resources.Light        { return w.lights.Get(id) }

// Snapshots.

func (w *World) GetAllCameras() map[string]*resources.Camera      { return w.cameras.All() }
func (w *World) GetAllScenes() map[string]*resources.Scene        { return w.scenes.All() }
func (w *World) GetAllGroups() map[string]*resources.Group        { return w.groups.All() }
func (w *World) GetAllMeshes() map[string]*resources.Mesh         { return w.meshes.All() }
func (w *World) GetAllGeometries() map[string]*resources.Geometry { return w.geometries.All() }
func (w *World) GetAllMaterials() map[string]*resources.Material  { return w.materials.All() }
func (w *World) GetAllTextures() map[string]*resources.Texture    { return w.textures.All() }
func (w *World) GetAllLights() map[string]resources.Light         { return w.lights.All() }

// Plain deletions for leaf kinds. Mesh, material, group and scene deletion
// carry cascade semantics and live in cascade.go / container.go.

func (w *World) DeleteCamera(ids ...string) {
	w.cameras.Delete(ids...)
}

func (w *World) DeleteGeometry(ids ...string) {
	w.geometries.Delete(ids...)
}

func (w *World) DeleteTexture(ids ...string) {
	w.textures.Delete(ids...)
}

func (w *World) DeleteLight(ids ...string) {
	for _, id := range ids {
		light, ok := w.lights.Pop(id)
		if !ok {
			core.LogWarn("cannot delete light %q: not registered", id)
			continue
		}
		resources.Detach(light)
	}
}
