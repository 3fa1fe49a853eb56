// Package viewstate keeps the interactive state of a scrolling product page
// consistent for [Ebitengine] games and tools: pointer and cursor state,
// scroll-linked progress, per-widget selections and auto-behavior that pauses
// while the user interacts.
//
// A [Controller] owns all of it for one mounted view. Renderers read a
// [Snapshot] each frame; nothing in the package draws.
//
// # Quick start
//
//	c := viewstate.New(viewstate.Config{
//		Viewport: viewstate.Viewport{Width: 1280, Height: 800, PageHeight: 4000},
//	})
//	defer c.Close()
//
//	c.AddWidget(viewstate.WidgetConfig{
//		ID:      "color",
//		Options: []string{"red", "blue", "green"},
//	})
//	c.BindModel("color", viewer, viewstate.ModelConfig{
//		Sources:         []string{"red.glb", "blue.glb", "green.glb"},
//		AutoRotateSpeed: viewstate.DefaultAutoRotateSpeed,
//		Scale:           viewstate.DefaultResponsiveScale,
//	})
//
// Then, from your [ebiten.Game]:
//
//	func (g *Game) Update() error {
//		g.c.ApplyInput(viewstate.ReadEbitenInput())
//		g.c.Update(time.Second / time.Duration(ebiten.TPS()))
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		snap := g.c.Snapshot()
//		// ... draw from snap ...
//	}
//
// # Selection and rotation
//
// Each widget has a [SelectionState]. [Controller.SelectIndex] rejects an
// index outside [0, option count) with an error matching
// [ErrInvalidSelection] and leaves the widget untouched.
// [Controller.Rotate] adds or subtracts 90 degrees; the angle is never
// wrapped, so two full turns read 720.
//
// # Auto-behavior
//
// [Controller.RegisterInteraction] suspends a widget's auto-behavior (for
// example model auto-rotation) and arms a resume timer [DefaultResumeDelay]
// from now. Another interaction before it fires replaces the timer and bumps
// the generation, so only the most recent timer can resume. Timers run on the
// controller's frame-driven [Scheduler]; there are no goroutines.
//
// # Scroll regions and timelines
//
// Regions map the viewport's scroll offset to progress in [0, 1]:
//
//	r, _ := c.AddElementRegion("story", 1200, 600, "top 80%", "bottom top")
//	r.OnEnter(c.NewTimeline().FromTo(&opacity, 0, 1, 0.8, ease.OutCubic))
//
// Timelines sequence tweens (via [gween]) over fields you own and can be
// scrubbed by a region or played on hover with [HoverTimeline].
//
// # Teardown
//
// Every handler, timer, timeline, hotspot, region and model binding is
// recorded in the controller's [Scope] and released in reverse order by
// [Controller.Close]. After Close no callback fires.
//
// # ECS integration
//
// The viewstate/ecs module forwards every [Event] into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package viewstate
