package world

import (
	"github.com/spaghettifunk/ossia/engine/core"
	"github.com/spaghettifunk/ossia/engine/resources"
)

// Selector addresses container children either by stored id or by
// position in the ordered child list.
type Selector struct {
	ids     []string
	indices []int
	byIndex bool
}

// ByID selects children whose stored id matches one of ids.
func ByID(ids ...string) Selector {
	return Selector{ids: ids}
}

// ByIndex selects children by position in the child list.
func ByIndex(indices ...int) Selector {
	return Selector{indices: indices, byIndex: true}
}

// Attach appends children to the container's ordered child list. Order is
// registration order; re-attaching an already attached child is a no-op.
func (w *World) Attach(container resources.Object, children ...resources.Object) {
	for _, child := range children {
		resources.Attach(container, child)
	}
}

// Remove detaches the selected children from the container. Unknown ids
// and out-of-range indices log a warning and are skipped; the batch
// continues past failures. Removed mesh children are additionally
// cascade-deleted when opts.DeleteMeshes (or DeleteAll) is set.
func (w *World) Remove(container resources.Object, sel Selector, opts CascadeOptions) {
	opts = opts.normalized()
	children := container.AsNode().Children()

	var targets []resources.Object
	if sel.byIndex {
		for _, idx := range sel.indices {
			if idx < 0 || idx >= len(children) {
				core.LogWarn("container %q has no child at index %d", container.ResourceID(), idx)
				continue
			}
			targets = append(targets, children[idx])
		}
	} else {
		for _, id := range sel.ids {
			found := false
			for _, child := range children {
				if child.ResourceID() == id {
					targets = append(targets, child)
					found = true
					break
				}
			}
			if !found {
				core.LogWarn("container %q has no child with id %q", container.ResourceID(), id)
			}
		}
	}

	for _, target := range targets {
		resources.Detach(target)
		if mesh, ok := target.(*resources.Mesh); ok && opts.DeleteMeshes {
			w.DeleteMesh(opts, mesh.ResourceID())
		}
	}
}

// DeleteGroup removes the given groups from their registry, detaches them
// from their parents and cascade-deletes mesh children when requested.
// Non-existent groups are skipped silently, so repeated deletion is an
// idempotent no-op.
func (w *World) DeleteGroup(opts CascadeOptions, ids ...string) {
	opts = opts.normalized()
	for _, id := range ids {
		group, ok := w.groups.Pop(id)
		if !ok {
			continue
		}
		w.emptyContainer(group, opts)
		resources.Detach(group)
	}
}

// DeleteScene removes the given scenes from their registry with the same
// cascade semantics as DeleteGroup.
func (w *World) DeleteScene(opts CascadeOptions, ids ...string) {
	opts = opts.normalized()
	for _, id := range ids {
		scene, ok := w.scenes.Pop(id)
		if !ok {
			continue
		}
		w.emptyContainer(scene, opts)
		resources.Detach(scene)
	}
}

// emptyContainer detaches every child and cascade-deletes the mesh ones
// when the options request it.
func (w *World) emptyContainer(container resources.Object, opts CascadeOptions) {
	children := append([]resources.Object(nil), container.AsNode().Children()...)
	for _, child := range children {
		resources.Detach(child)
		if mesh, ok := child.(*resources.Mesh); ok && opts.DeleteMeshes {
			w.DeleteMesh(opts, mesh.ResourceID())
		}
	}
}
