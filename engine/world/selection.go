package world

import (
	"github.com/spaghettifunk/ossia/engine/resources"
)

// SetCurrentCamera selects the camera used for presentation. Selecting the
// already current id short-circuits; an unknown id logs a warning and
// leaves the previous selection in place. The returned camera is always
// the selection after the call.
func (w *World) SetCurrentCamera(id string) *resources.Camera {
	if id == w.currentCameraID && w.currentCamera != nil {
		return w.currentCamera
	}
	camera := w.cameras.Get(id)
	if camera == nil {
		return w.currentCamera
	}
	w.currentCamera = camera
	w.currentCameraID = id
	return camera
}

// SetCurrentScene selects the scene used for presentation, with the same
// fail-soft semantics as SetCurrentCamera.
func (w *World) SetCurrentScene(id string) *resources.Scene {
	if id == w.currentSceneID && w.currentScene != nil {
		return w.currentScene
	}
	scene := w.scenes.Get(id)
	if scene == nil {
		return w.currentScene
	}
	w.currentScene = scene
	w.currentSceneID = id
	return scene
}

// CurrentCamera returns the selected camera, or nil if none was ever set.
// The pointer is weak: deleting the selected camera does not clear it.
func (w *World) CurrentCamera() *resources.Camera {
	return w.currentCamera
}

// CurrentScene returns the selected scene, or nil if none was ever set.
func (w *World) CurrentScene() *resources.Scene {
	return w.currentScene
}
