package router

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter/action"
	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter/backsignal"
	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter/internal"
	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter/reducer"
	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter/scene"
	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter/state"
)

// DefaultID is used when Options.ID is empty.
const DefaultID = "default"

var (
	// ErrRouterExists indicates another router already uses the ID in the registry.
	ErrRouterExists = errors.New("router ID already registered")

	// ErrNoScenes indicates the router was given nothing to navigate.
	ErrNoScenes = errors.New("router has no scenes")

	// ErrClosed indicates the router was unmounted and cannot be mounted again.
	ErrClosed = errors.New("router is unmounted")

	// ErrBackExhausted indicates a pop found no history left anywhere on the
	// focus path. The router turns it into the exit hook; it never leaves
	// Dispatch or HandleBack.
	ErrBackExhausted = errors.New("no history left to go back to")
)

// RenderFunc receives the navigation state after every change, along with
// the function to dispatch further actions. What it draws is up to the host.
type RenderFunc func(s *state.State, dispatch func(action.Action))

// Options configures a Router. Exactly one source of initial state is used,
// in this order: InitialState, Root, Scenes.
type Options struct {
	ID           string              // Unique within the registry; DefaultID when empty
	Scenes       []scene.Declaration // Declarations handed to scene.Build
	Grouping     scene.Grouping      // Grouping mode for Scenes
	Root         *scene.Node         // A scene tree that was already built
	InitialState *state.State        // A precomputed navigation state
	Props        map[string]any      // Merged into the root state's props
	Reducer      reducer.Func        // Replaces reducer.Reduce
}

// Router owns one navigation state and the reducer that advances it.
// Routers sharing a Registry cooperate on back navigation.
//
// A Router is not safe for concurrent use. Dispatch, HandleBack and the
// facade methods must be called from the host's event loop.
type Router struct {
	id       string
	registry *Registry
	reduce   reducer.Func
	state    *state.State

	render      RenderFunc
	onDispatch  func(action.Action)
	onBack      func()
	onExitApp   func() bool
	backHandler backsignal.Handler

	release func()
	mounted bool
	closed  bool
	seq     uint64
	log     *slog.Logger
}

// New creates a Router and registers it with reg. A nil reg gives the
// router a registry of its own.
func New(reg *Registry, opts Options) (*Router, error) {
	if reg == nil {
		reg = NewRegistry()
	}

	id := opts.ID
	if id == "" {
		id = DefaultID
	}

	var initial *state.State
	switch {
	case opts.InitialState != nil:
		initial = opts.InitialState
		if initial.RouterID != id {
			initial = initial.Clone()
			initial.RouterID = id
		}
	case opts.Root != nil:
		initial = state.New(opts.Root, id)
	case len(opts.Scenes) > 0:
		root, err := scene.Build(opts.Grouping, opts.Scenes...)
		if err != nil {
			return nil, fmt.Errorf("router %q: %w", id, err)
		}
		initial = state.New(root, id)
	default:
		return nil, fmt.Errorf("router %q: %w", id, ErrNoScenes)
	}

	if len(opts.Props) > 0 {
		initial = initial.WithProps(opts.Props)
	}

	reduce := opts.Reducer
	if reduce == nil {
		reduce = reducer.Reduce
	}

	r := &Router{
		id:       id,
		registry: reg,
		reduce:   reduce,
		state:    initial,
		log:      internal.GetInternalLogger().With("router", id),
	}

	if err := reg.Register(r); err != nil {
		return nil, err
	}

	return r, nil
}

// OnRender sets the function called with every new state.
func (r *Router) OnRender(fn RenderFunc) *Router {
	r.render = fn
	return r
}

// OnDispatch sets an observer called with every dispatched action, whether
// or not it changed the state.
func (r *Router) OnDispatch(fn func(action.Action)) *Router {
	r.onDispatch = fn
	return r
}

// OnBack sets a function called after a back signal was handled by popping.
func (r *Router) OnBack(fn func()) *Router {
	r.onBack = fn
	return r
}

// OnExitApp sets the hook invoked when back navigation has nothing left to
// pop. Its return value is reported to the back signal source; without a
// hook the signal is left unconsumed.
func (r *Router) OnExitApp(fn func() bool) *Router {
	r.onExitApp = fn
	return r
}

// WithBackHandler replaces the default back handling entirely.
func (r *Router) WithBackHandler(fn backsignal.Handler) *Router {
	r.backHandler = fn
	return r
}

// ID returns the router's identifier.
func (r *Router) ID() string {
	return r.id
}

// State returns the current navigation state.
func (r *Router) State() *state.State {
	return r.state
}

// FocusPath returns the keys from the root to the focused scene.
func (r *Router) FocusPath() []string {
	return r.state.FocusKeys()
}

// Get returns the state for the scene with the given key, or nil.
func (r *Router) Get(key string) *state.State {
	return r.state.Find(key)
}

// Dispatch reduces a into the router's state and renders the result. A
// pop-class action with nothing left to pop invokes the exit hook instead.
func (r *Router) Dispatch(a action.Action) {
	if err := r.dispatch(a); errors.Is(err, ErrBackExhausted) {
		r.exit()
	}
}

func (r *Router) dispatch(a action.Action) error {
	r.seq++
	seq := r.seq
	prev := r.state
	next := r.reduce(prev, a)
	changed := next != nil && next != prev

	r.log.Debug("Dispatched action", "seq", seq, "action", a.String(), "changed", changed)

	if r.onDispatch != nil {
		r.onDispatch(a)
	}

	if !changed {
		if a.Kind.IsPop() {
			return ErrBackExhausted
		}
		return nil
	}

	r.state = next

	switch {
	case r.closed:
		// Unregistered; activations would never be removed.
	case a.Kind.IsPush():
		r.registry.Activate(r.id)
	case a.Kind.IsPop():
		r.registry.Deactivate(r.id)
	}

	r.renderState()
	return nil
}

func (r *Router) renderState() {
	if r.render != nil {
		r.render(r.state, r.Dispatch)
	}
}

func (r *Router) exit() bool {
	r.log.Warn("Back navigation exhausted", "focus", r.state.String())
	if r.onExitApp != nil {
		return r.onExitApp()
	}
	return false
}

// HandleBack handles one back signal. The pop goes to the router at the
// top of the registry's activation stack, or to r itself when the stack is
// empty. It returns true when the signal was consumed.
//
// An unmounted router never consumes a signal.
func (r *Router) HandleBack() bool {
	if r.closed {
		return false
	}
	if r.backHandler != nil {
		return r.backHandler()
	}

	target := r
	if id, ok := r.registry.Top(); ok && id != r.id {
		if other, ok := r.registry.Lookup(id); ok {
			target = other
		}
	}

	err := target.dispatch(action.NewPop())
	if errors.Is(err, ErrBackExhausted) && target != r {
		// Stale activation: the nested router has nothing left to pop.
		r.log.Debug("Dropping stale activation", "target", target.id)
		r.registry.Deactivate(target.id)
		err = r.dispatch(action.NewPop())
	}

	if err != nil {
		return r.exit()
	}

	if r.onBack != nil {
		r.onBack()
	}
	return true
}

// Mount subscribes the router to src and renders the current state. A nil
// src mounts without back handling. Mounting twice is a no-op.
func (r *Router) Mount(src backsignal.Source) error {
	if r.closed {
		return ErrClosed
	}
	if r.mounted {
		return nil
	}
	r.mounted = true

	if src != nil {
		r.release = src.Subscribe(r.HandleBack)
	}

	r.renderState()
	return nil
}

// Unmount releases the back subscription and removes the router from its
// registry. It is safe to call more than once.
func (r *Router) Unmount() {
	if r.closed {
		return
	}
	r.closed = true

	if r.mounted {
		r.mounted = false
		if r.release != nil {
			r.release()
			r.release = nil
		}
	}

	if current, ok := r.registry.Lookup(r.id); ok && current == r {
		r.registry.Unregister(r.id)
	}
}

// Run mounts the router, runs fn and unmounts afterwards, even when fn
// panics.
func (r *Router) Run(src backsignal.Source, fn func() error) error {
	if err := r.Mount(src); err != nil {
		return err
	}
	defer r.Unmount()

	return fn()
}
