package router

import (
	"fmt"

	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter/internal"
)

// Registry connects the routers of one application so back navigation can
// reach whichever router moved forward last. It is owned by whatever
// composes the routers and handed to each of them at construction.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	routers map[string]*Router
	active  *Stack
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		routers: make(map[string]*Router),
		active:  NewStack(),
	}
}

// Register adds r under its ID. IDs must be unique within a registry.
func (reg *Registry) Register(r *Router) error {
	if _, exists := reg.routers[r.id]; exists {
		internal.GetInternalLogger().Warn("Router ID already registered", "router", r.id)
		return fmt.Errorf("%w: %q", ErrRouterExists, r.id)
	}
	reg.routers[r.id] = r
	return nil
}

// Unregister removes the router and every activation entry it owns.
func (reg *Registry) Unregister(id string) {
	delete(reg.routers, id)
	reg.active.RemoveAll(id)
}

// Lookup returns the router registered under id.
func (reg *Registry) Lookup(id string) (*Router, bool) {
	r, ok := reg.routers[id]
	return r, ok
}

// Activate records that router id navigated forward.
func (reg *Registry) Activate(id string) {
	reg.active.Push(id)
}

// Deactivate removes the most recent activation of router id.
func (reg *Registry) Deactivate(id string) bool {
	return reg.active.RemoveLast(id)
}

// Top returns the most recently activated router ID.
func (reg *Registry) Top() (string, bool) {
	return reg.active.Peek()
}

// Active returns the activation stack, bottom first.
func (reg *Registry) Active() []string {
	return reg.active.Entries()
}

// Len returns the number of registered routers.
func (reg *Registry) Len() int {
	return len(reg.routers)
}
