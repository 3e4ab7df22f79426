package triggers

import (
	"image"

	"github.com/wesen/tipplace/pkg/placement"
)

// Trigger is a registered element whose activation requests the tooltip.
type Trigger struct {
	ID    int
	Name  string // stable key from configuration
	Label string
	X, Y  int
	W, H  int
}

// Pos implements Spatial.
func (t Trigger) Pos() image.Point { return image.Pt(t.X, t.Y) }

// Size implements Spatial.
func (t Trigger) Size() image.Point { return image.Pt(t.W, t.H) }

// Rect returns the trigger's bounds as a placement rect, shifted by
// origin (the screen position of the coordinate space the trigger lives in).
func (t Trigger) Rect(origin image.Point) placement.Rect {
	return placement.RectFromImage(BoundsOf(t).Add(origin))
}

// Registry holds triggers with stable insertion-order iteration.
type Registry struct {
	items    map[int]*Trigger
	byName   map[string]int
	nextID   int
	orderIDs []int // insertion order for deterministic iteration
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		items:  make(map[int]*Trigger),
		byName: make(map[string]int),
	}
}

// Add registers a trigger and returns its assigned ID. Any ID on t is
// ignored. A trigger with the same non-empty Name replaces the old one.
func (r *Registry) Add(t Trigger) int {
	if t.Name != "" {
		if old, ok := r.byName[t.Name]; ok {
			r.Remove(old)
		}
	}
	id := r.nextID
	r.nextID++
	t.ID = id
	r.items[id] = &t
	r.orderIDs = append(r.orderIDs, id)
	if t.Name != "" {
		r.byName[t.Name] = id
	}
	return id
}

// Lookup returns the trigger registered under name, or nil.
func (r *Registry) Lookup(name string) *Trigger {
	id, ok := r.byName[name]
	if !ok {
		return nil
	}
	return r.items[id]
}

// All returns all triggers in insertion order.
func (r *Registry) All() []*Trigger {
	result := make([]*Trigger, 0, len(r.orderIDs))
	for _, id := range r.orderIDs {
		if t, ok := r.items[id]; ok {
			result = append(result, t)
		}
	}
	return result
}

// Len returns the number of registered triggers.
func (r *Registry) Len() int {
	return len(r.items)
}

// Remove unregisters the trigger. Unknown IDs are ignored.
func (r *Registry) Remove(id int) {
	t, ok := r.items[id]
	if !ok {
		return
	}
	delete(r.items, id)
	if t.Name != "" && r.byName[t.Name] == id {
		delete(r.byName, t.Name)
	}

	for i, oid := range r.orderIDs {
		if oid == id {
			r.orderIDs = append(r.orderIDs[:i], r.orderIDs[i+1:]...)
			break
		}
	}
}

// Move sets the top-left corner of a trigger.
func (r *Registry) Move(id int, pos image.Point) {
	if t, ok := r.items[id]; ok {
		t.X = pos.X
		t.Y = pos.Y
	}
}

// Resize sets the width and height of a trigger. Sizes are clamped to 1.
func (r *Registry) Resize(id int, w, h int) {
	t, ok := r.items[id]
	if !ok {
		return
	}
	t.W = max(w, 1)
	t.H = max(h, 1)
}

// HitTest returns the topmost (last-inserted) trigger containing the
// point, or nil.
func (r *Registry) HitTest(pt image.Point) *Trigger {
	for i := len(r.orderIDs) - 1; i >= 0; i-- {
		t := r.items[r.orderIDs[i]]
		if t != nil && pt.In(BoundsOf(*t)) {
			return t
		}
	}
	return nil
}
