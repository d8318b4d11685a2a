package registry

import (
	"github.com/spaghettifunk/ossia/engine/core"
)

// Entry is anything storable in a Registry.
type Entry interface {
	ResourceID() string
}

// Registry is the keyed store for one entity kind. Ids are unique at
// creation time; lookups for unknown ids warn and return the zero value
// rather than failing the caller. All mutation happens on the frame loop
// thread, so no locking is performed.
type Registry[T Entry] struct {
	kind    string
	entries map[string]T
	// Invoked once per deleted entry so the owner can release any
	// GPU-backed state behind the resource.
	onRelease func(T)
}

func New[T Entry](kind string, onRelease func(T)) *Registry[T] {
	return &Registry[T]{
		kind:      kind,
		entries:   make(map[string]T),
		onRelease: onRelease,
	}
}

// Create builds a new resource under the given id and inserts it. An empty
// id is replaced with a generated one. A colliding id fails with
// DuplicateIDError; there is no silent overwrite.
func (r *Registry[T]) Create(id string, build func(id string) (T, error)) (T, error) {
	var zero T
	if id == "" {
		id = core.GenerateID()
	}
	if _, ok := r.entries[id]; ok {
		return zero, &core.DuplicateIDError{Kind: r.kind, ID: id}
	}
	entry, err := build(id)
	if err != nil {
		return zero, err
	}
	r.entries[id] = entry
	return entry, nil
}

// Get returns the entry for id, or the zero value if it is unknown. A miss
// is logged as a warning; it is up to the caller to check the result.
func (r *Registry[T]) Get(id string) T {
	entry, ok := r.entries[id]
	if !ok {
		core.LogWarn("no %s found with id %q", r.kind, id)
		var zero T
		return zero
	}
	return entry
}

// GetMany looks up ids positionally. The result preserves input order and
// holds the zero value for every id that is not registered.
func (r *Registry[T]) GetMany(ids []string) []T {
	out := make([]T, len(ids))
	for i, id := range ids {
		entry, ok := r.entries[id]
		if !ok {
			core.LogWarn("no %s found with id %q", r.kind, id)
			continue
		}
		out[i] = entry
	}
	return out
}

// Has reports whether id is registered, without logging.
func (r *Registry[T]) Has(id string) bool {
	_, ok := r.entries[id]
	return ok
}

// Delete removes the given entries and releases their underlying
// resources. Missing ids are logged and skipped; the batch never aborts.
func (r *Registry[T]) Delete(ids ...string) {
	for _, id := range ids {
		entry, ok := r.entries[id]
		if !ok {
			core.LogWarn("cannot delete %s %q: not registered", r.kind, id)
			continue
		}
		delete(r.entries, id)
		if r.onRelease != nil {
			r.onRelease(entry)
		}
	}
}

// Pop removes and returns the entry for id without invoking the release
// hook. It reports whether the entry existed.
func (r *Registry[T]) Pop(id string) (T, bool) {
	entry, ok := r.entries[id]
	if ok {
		delete(r.entries, id)
	}
	return entry, ok
}

// All returns a snapshot copy of the full id-to-entry mapping.
func (r *Registry[T]) All() map[string]T {
	out := make(map[string]T, len(r.entries))
	for id, entry := range r.entries {
		out[id] = entry
	}
	return out
}

func (r *Registry[T]) Len() int {
	return len(r.entries)
}
