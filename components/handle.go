package components

import "github.com/yohamta/donburi"

// Handle is a weak reference to an entity. It goes stale once the entity is
// removed from the world, even if the id is later reused.
type Handle struct {
	entry  *donburi.Entry
	entity donburi.Entity
}

// NewHandle returns a handle to e. A nil entry yields the zero handle.
func NewHandle(e *donburi.Entry) Handle {
	if e == nil {
		return Handle{}
	}
	return Handle{entry: e, entity: e.Entity()}
}

// Get returns the entry if it is still alive.
func (h Handle) Get() (*donburi.Entry, bool) {
	if h.entry == nil || !h.entry.Valid() || h.entry.Entity() != h.entity {
		return nil, false
	}
	return h.entry, true
}

// IsZero reports whether the handle was never set.
func (h Handle) IsZero() bool {
	return h.entry == nil
}

// Is reports whether the handle refers to e.
func (h Handle) Is(e *donburi.Entry) bool {
	live, ok := h.Get()
	return ok && e != nil && live.Entity() == e.Entity()
}
