// Package orbit is a radial relationship control for [Ebitengine] and headless hosts.
//
// A [Control] shows the items related to a selection as elements arranged
// around the center of a container. Each item's distance from the center is
// its weight; its angle is its position in the fetched list. Clicking an item
// re-centers the control on it: the control fetches that item's related set,
// renders it through per-type templates, and animates the new elements from
// their fly-in spawn point to their place on the circle.
//
// # Quick start
//
//	cfg := orbit.DefaultConfig()
//	cfg.Shape = orbit.ShapeSquare
//	ctrl, err := orbit.New(cfg, orbit.NewHTTPFetcher(cfg.FetchURL, nil))
//	if err != nil {
//		log.Fatal(err)
//	}
//	ctrl.Resize(640, 480)
//	ctrl.Refresh(orbit.Selection{}) // root view
//	orbit.Run(ctrl, orbit.RunConfig{Title: "Relationships", Width: 640, Height: 480})
//
// For full control, call [Control.Update], [Control.ProcessInput] and
// [Control.Draw] from your own [ebiten.Game].
//
// # Frames
//
// Everything runs on the host's UI goroutine. [Control.Refresh] starts a fetch
// on its own goroutine and returns; the response is applied by the next
// [Control.Update], which then renders, binds input, lays out, and starts the
// transitions. Transitions advance only inside Update. Headless tools use
// [Control.RefreshSync] and [Scheduler.Settle] instead.
//
// # Elements
//
// Every item is an [Element] under the scene's root container. Elements carry
// their visual properties (position, size, alpha, stacking order), the markup
// produced by their template, and a typed [ItemMeta] record. Hosts draw
// elements; they never mutate the item set.
//
// [Ebitengine]: https://ebitengine.org
package orbit
