// Package router drives a navigation state with actions and coordinates
// back navigation between router instances.
//
// A Router owns one navigation state and a reducer. Every action goes
// through Dispatch, which reduces it, stores the result and hands it to the
// render function. Routers that share a Registry cooperate on back
// navigation: each forward navigation records the router on the registry's
// activation stack, and a back signal pops whichever router moved forward
// last.
//
// # Basic Usage
//
//	reg := router.NewRegistry()
//
//	r, err := router.New(reg, router.Options{
//	    ID: "main",
//	    Scenes: []scene.Declaration{
//	        {Key: "Home"},
//	        {Key: "Detail"},
//	    },
//	})
//	if err != nil {
//	    return err
//	}
//
//	r.OnRender(func(s *state.State, dispatch func(action.Action)) {
//	    draw(s.Focused())
//	}).OnExitApp(func() bool {
//	    os.Exit(0)
//	    return true
//	})
//
//	back := backsignal.NewDispatcher()
//	return r.Run(back, func() error {
//	    r.Push("Detail", map[string]any{"id": 42})
//	    back.Signal() // pops Detail
//	    back.Signal() // nothing left: exit hook
//	    return nil
//	})
//
// # Nested Routers
//
// A router rendered inside another router's scene gets its own ID and the
// same Registry. Back signals then reach the inner router while it has
// history and fall through to the outer one afterwards.
//
// # Exit
//
// A pop with nothing left anywhere on the focus path never fails a
// dispatch. It invokes the OnExitApp hook, and the host decides what
// leaving means.
package router
