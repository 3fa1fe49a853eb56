package viewstate

import (
	"fmt"
	"log"
	"time"
)

// Config configures a Controller. The zero value is usable.
type Config struct {
	// ResumeDelay is how long auto-behavior stays suspended after the last
	// interaction. Zero uses DefaultResumeDelay.
	ResumeDelay time.Duration
	// ScrolledThreshold is the scrollY past which Snapshot.Scrolled is true.
	// Zero uses 10; a negative value makes any positive scroll count.
	ScrolledThreshold float64
	// Viewport is the initial viewport size and page height.
	Viewport Viewport
	// Sink receives every event in addition to registered handlers.
	Sink EventSink
	// Debug prints state transitions and teardown to stderr.
	Debug bool
}

// Controller owns the interactive state of one mounted view: pointer, scroll
// regions, widget selections and auto-behavior, plus the timelines, timers,
// hotspots and model bindings acquired for it. Close releases all of them.
//
// A Controller is driven from a single goroutine (the game loop): call the
// input methods as events arrive and Update once per frame. It is not safe
// for concurrent use.
type Controller struct {
	scope    Scope
	sched    *Scheduler
	handlers handlerRegistry
	sink     EventSink
	debug    bool
	closed   bool

	resumeDelay       time.Duration
	scrolledThreshold float64

	// Pointer state
	pointer  InteractionState
	dot      *Follower
	ring     *Follower
	hotspots []*Hotspot

	// Scroll state
	viewport Viewport
	regions  []*Region

	// Widgets, in insertion order
	widgets map[WidgetID]*Widget
	order   []*Widget
	models  []*ModelBinding

	toggles     map[string]*Toggle
	toggleOrder []*Toggle

	timelines []*Timeline
}

// New mounts a controller. Everything it acquires is released by Close.
func New(cfg Config) *Controller {
	c := &Controller{
		sched:             NewScheduler(),
		sink:              cfg.Sink,
		debug:             cfg.Debug,
		resumeDelay:       cfg.ResumeDelay,
		scrolledThreshold: cfg.ScrolledThreshold,
		viewport:          cfg.Viewport,
		dot:               NewFollower(DotFollowDuration, nil),
		ring:              NewFollower(RingFollowDuration, nil),
		widgets:           make(map[WidgetID]*Widget),
		toggles:           make(map[string]*Toggle),
	}
	if c.resumeDelay <= 0 {
		c.resumeDelay = DefaultResumeDelay
	}
	if c.scrolledThreshold == 0 {
		c.scrolledThreshold = defaultScrolledThreshold
	}
	// Registered first so it runs last: any timer armed by an earlier
	// release is still cancelled.
	c.scope.Defer("timers", c.sched.StopAll)
	return c
}

// Close unmounts the controller: every handler, timer, timeline, hotspot,
// region and model binding is released in reverse acquisition order. After
// Close no callback fires and every mutating call is a no-op. Calling Close
// twice is safe.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	released := c.scope.Close()
	c.debugf("closed, released %d resources: %v", len(released), released)
}

// Closed reports whether Close has been called.
func (c *Controller) Closed() bool {
	return c.closed
}

// Scheduler returns the controller's timer scheduler.
func (c *Controller) Scheduler() *Scheduler {
	return c.sched
}

// --- Events ---

// OnEvent registers a callback for events of type t. The handle is also
// released by Close.
func (c *Controller) OnEvent(t EventType, fn func(Event)) CallbackHandle {
	if c.closed || t >= eventTypeCount {
		return CallbackHandle{}
	}
	h := c.handlers.add(t, fn)
	reg, id := &c.handlers, h.id
	h.scope = &c.scope
	h.key = c.scope.Defer("handler:"+t.String(), func() { reg.remove(t, id) })
	return h
}

// SetEventSink sets the optional event sink, e.g. an ECS bridge.
func (c *Controller) SetEventSink(sink EventSink) {
	c.sink = sink
}

func (c *Controller) emit(e Event) {
	if c.closed {
		return
	}
	c.handlers.dispatch(e)
	// A handler may have closed the controller.
	if c.closed {
		return
	}
	if c.sink != nil {
		c.sink.EmitEvent(e)
	}
}

// --- Pointer ---

// UpdatePointer records a pointer move to screen position (x, y). The
// pointer becomes visible, hotspot hover is recomputed and the cursor
// followers retarget.
func (c *Controller) UpdatePointer(x, y float64) InteractionState {
	if c.closed {
		return c.pointer
	}
	wasVisible := c.pointer.Visible
	c.pointer.Position = Vec2{X: x, Y: y}
	c.pointer.Visible = true
	if wasVisible {
		c.dot.Retarget(x, y)
		c.ring.Retarget(x, y)
	} else {
		c.dot.Snap(x, y)
		c.ring.Snap(x, y)
	}
	c.hitTestHotspots()
	return c.pointer
}

// SetPointerDown records a press (true) or release (false).
func (c *Controller) SetPointerDown(down bool) {
	if c.closed {
		return
	}
	c.pointer.Down = down
}

// PointerEnter marks the pointer visible again after it left the view.
func (c *Controller) PointerEnter() {
	if c.closed {
		return
	}
	c.pointer.Visible = true
}

// PointerLeave hides the pointer and leaves every hovered hotspot.
func (c *Controller) PointerLeave() {
	if c.closed {
		return
	}
	c.pointer.Visible = false
	c.pointer.Down = false
	for _, h := range c.hotspots {
		if h.hovered {
			h.hovered = false
			if h.OnLeave != nil {
				h.OnLeave()
			}
		}
	}
	c.SetHover(false)
}

// SetHover sets whether the pointer is over an interactive element. Setting
// the current value again has no effect.
func (c *Controller) SetHover(hovering bool) {
	if c.closed || c.pointer.HoveringInteractive == hovering {
		return
	}
	c.pointer.HoveringInteractive = hovering
	if hovering {
		c.emit(Event{Type: EventHover})
	} else {
		c.emit(Event{Type: EventUnhover})
	}
}

// Pointer returns the current interaction state.
func (c *Controller) Pointer() InteractionState {
	return c.pointer
}

// AddHotspot registers an interactive area. Pointer moves over any hotspot
// set the hover state; its OnEnter and OnLeave callbacks fire on transitions.
func (c *Controller) AddHotspot(h *Hotspot) *Hotspot {
	if c.closed {
		return h
	}
	h.removed = false
	c.hotspots = append(c.hotspots, h)
	h.scopeKey = c.scope.Defer("hotspot:"+h.Name, func() { c.RemoveHotspot(h) })
	if c.pointer.Visible {
		c.hitTestHotspots()
	}
	return h
}

// RemoveHotspot unregisters a hotspot. If it was hovered, OnLeave does not
// fire.
func (c *Controller) RemoveHotspot(h *Hotspot) {
	wasHovered := false
	for i, p := range c.hotspots {
		if p == h {
			copy(c.hotspots[i:], c.hotspots[i+1:])
			c.hotspots[len(c.hotspots)-1] = nil
			c.hotspots = c.hotspots[:len(c.hotspots)-1]
			wasHovered = h.hovered
			h.hovered = false
			h.removed = true
			c.scope.Forget(h.scopeKey)
			h.scopeKey = 0
			break
		}
	}
	if c.closed || !wasHovered {
		return
	}
	if len(c.hotspots) == 0 {
		c.SetHover(false)
		return
	}
	c.hitTestHotspots()
}

// hitTestHotspots fires enter/leave on hotspots whose containment changed
// and derives HoveringInteractive. Without hotspots the hover flag is left
// to SetHover.
func (c *Controller) hitTestHotspots() {
	if len(c.hotspots) == 0 {
		return
	}
	px, py := c.pointer.Position.X, c.pointer.Position.Y
	hovering := false
	// Callbacks may add or remove hotspots; iterate over a copy.
	hs := append([]*Hotspot(nil), c.hotspots...)
	for _, h := range hs {
		if h.removed {
			continue
		}
		inside := c.pointer.Visible && h.contains(px, py, c.viewport.ScrollY)
		if inside {
			hovering = true
		}
		if inside == h.hovered {
			continue
		}
		h.hovered = inside
		if inside && h.OnEnter != nil {
			h.OnEnter()
		} else if !inside && h.OnLeave != nil {
			h.OnLeave()
		}
	}
	c.SetHover(hovering)
}

// --- Scroll ---

// AddRegion registers a trigger region and computes its progress for the
// current viewport.
func (c *Controller) AddRegion(name string, trigger TriggerRegion) *Region {
	r := &Region{Name: name, Trigger: trigger}
	if c.closed {
		return r
	}
	c.regions = append(c.regions, r)
	r.scopeKey = c.scope.Defer("region:"+name, func() { c.RemoveRegion(r) })
	c.tickRegion(r)
	return r
}

// AddElementRegion registers a region for an element laid out at elemTop with
// elemHeight, using ScrollTrigger-style start and end positions such as
// "top 80%" and "bottom top". An empty end uses start, which gives a
// zero-length region useful only for OnEnter.
func (c *Controller) AddElementRegion(name string, elemTop, elemHeight float64, start, end string) (*Region, error) {
	sp, err := ParseTriggerPosition(start)
	if err != nil {
		return nil, fmt.Errorf("region %q: %w", name, err)
	}
	ep := sp
	if end != "" {
		ep, err = ParseTriggerPosition(end)
		if err != nil {
			return nil, fmt.Errorf("region %q: %w", name, err)
		}
	}
	tr := RegionFromElement(elemTop, elemHeight, c.viewport.Height, sp, ep)
	return c.AddRegion(name, tr), nil
}

// RemoveRegion unregisters a region and drops its timeline bindings.
func (c *Controller) RemoveRegion(r *Region) {
	for i, p := range c.regions {
		if p == r {
			copy(c.regions[i:], c.regions[i+1:])
			c.regions[len(c.regions)-1] = nil
			c.regions = c.regions[:len(c.regions)-1]
			c.scope.Forget(r.scopeKey)
			r.scopeKey = 0
			break
		}
	}
	r.reveals = nil
	r.scrubs = nil
}

// OnScrollTick records new viewport metrics and recomputes every region's
// progress. Calling it twice with the same metrics yields the same result.
func (c *Controller) OnScrollTick(m ViewportMetrics) []RegionProgress {
	if c.closed {
		return nil
	}
	c.viewport.ScrollY = m.ScrollY
	c.viewport.Width = m.Width
	c.viewport.Height = m.Height
	c.tickAll()
	return c.regionProgress()
}

// ScrollTo animates the viewport to y over duration seconds.
func (c *Controller) ScrollTo(y float64, duration float32) {
	if c.closed {
		return
	}
	c.viewport.ScrollTo(y, duration, nil)
	if duration <= 0 {
		c.tickAll()
	}
}

// ScrollBy scrolls the viewport by dy immediately.
func (c *Controller) ScrollBy(dy float64) {
	if c.closed {
		return
	}
	c.viewport.ScrollBy(dy)
	c.tickAll()
}

// Resize sets the viewport size.
func (c *Controller) Resize(width, height float64) {
	if c.closed {
		return
	}
	c.viewport.Resize(width, height)
	c.tickAll()
}

// SetPageHeight sets the document height used to clamp scrolling.
func (c *Controller) SetPageHeight(h float64) {
	c.viewport.PageHeight = h
	c.viewport.ScrollY = c.viewport.clamp(c.viewport.ScrollY)
}

// Viewport returns the current viewport metrics.
func (c *Controller) Viewport() ViewportMetrics {
	return c.viewport.Metrics()
}

func (c *Controller) tickAll() {
	regions := append([]*Region(nil), c.regions...)
	for _, r := range regions {
		c.tickRegion(r)
	}
	for _, b := range c.models {
		b.sync(c.viewport.Width)
	}
	if c.pointer.Visible {
		c.hitTestHotspots()
	}
}

func (c *Controller) tickRegion(r *Region) {
	if r.tick(c.viewport.Metrics()) {
		c.debugf("region %q entered at scrollY=%.1f", r.Name, c.viewport.ScrollY)
		c.emit(Event{Type: EventRegionEnter, Region: r.Name, Progress: r.progress})
	}
}

func (c *Controller) regionProgress() []RegionProgress {
	out := make([]RegionProgress, len(c.regions))
	for i, r := range c.regions {
		out[i] = RegionProgress{Name: r.Name, Progress: r.progress, Entered: r.entered}
	}
	return out
}

// --- Widgets ---

// AddWidget registers a selectable widget. It needs at least one option,
// given either as Options or OptionCount.
func (c *Controller) AddWidget(cfg WidgetConfig) (*Widget, error) {
	if c.closed {
		return nil, ErrClosed
	}
	if _, ok := c.widgets[cfg.ID]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateWidget, cfg.ID)
	}
	count := cfg.OptionCount
	if len(cfg.Options) > 0 {
		count = len(cfg.Options)
	}
	if count <= 0 {
		return nil, fmt.Errorf("%w: %q (option count %d)", ErrNoOptions, cfg.ID, count)
	}
	w := &Widget{id: cfg.ID, options: cfg.Options, count: count}
	w.auto.delay = c.resumeDelay
	if cfg.ResumeDelay > 0 {
		w.auto.delay = cfg.ResumeDelay
	}
	if cfg.InitialIndex != 0 {
		if _, err := w.selectIndex(cfg.InitialIndex); err != nil {
			return nil, err
		}
	}
	c.widgets[cfg.ID] = w
	c.order = append(c.order, w)
	c.scope.Defer("widget:"+string(cfg.ID), w.auto.cancel)
	return w, nil
}

// Widget returns the widget registered under id.
func (c *Controller) Widget(id WidgetID) (*Widget, bool) {
	w, ok := c.widgets[id]
	return w, ok
}

func (c *Controller) widget(id WidgetID) (*Widget, error) {
	if c.closed {
		return nil, ErrClosed
	}
	w, ok := c.widgets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWidget, id)
	}
	return w, nil
}

// SelectIndex makes index the widget's active option. An index outside
// [0, option count) fails with an error matching ErrInvalidSelection and
// leaves the widget unchanged.
func (c *Controller) SelectIndex(id WidgetID, index int) error {
	w, err := c.widget(id)
	if err != nil {
		return err
	}
	changed, err := w.selectIndex(index)
	if err != nil {
		c.debugf("%v", err)
		return err
	}
	if changed {
		c.syncModels(w)
		c.emit(Event{Type: EventSelect, Widget: id, Index: index})
	}
	return nil
}

// Rotate turns the widget 90 degrees left or right and returns the new
// derived angle. The angle accumulates without wrapping.
func (c *Controller) Rotate(id WidgetID, dir Direction) (int, error) {
	w, err := c.widget(id)
	if err != nil {
		return 0, err
	}
	angle := w.rotate(dir)
	c.syncModels(w)
	c.emit(Event{Type: EventRotate, Widget: id, Angle: angle})
	return angle, nil
}

// RegisterInteraction suspends the widget's auto-behavior and (re)arms the
// resume timer. Rapid calls leave exactly one pending timer, from the last
// call.
func (c *Controller) RegisterInteraction(id WidgetID) error {
	w, err := c.widget(id)
	if err != nil {
		return err
	}
	gen, suspended := w.auto.register(c.sched, func(gen uint64) {
		c.OnResumeTimeout(id, gen)
	})
	c.debugf("widget %q interaction, generation %d, resume at %v", id, gen, w.auto.timer.Due())
	if suspended {
		c.emit(Event{Type: EventSuspend, Widget: id, Generation: gen})
	}
	return nil
}

// OnResumeTimeout resumes the widget's auto-behavior if generation is the
// most recently armed one. Stale generations are dropped; the return value
// reports whether the state changed.
func (c *Controller) OnResumeTimeout(id WidgetID, generation uint64) bool {
	if c.closed {
		return false
	}
	w, ok := c.widgets[id]
	if !ok {
		return false
	}
	if !w.auto.timeout(generation) {
		c.debugf("widget %q dropped stale resume, generation %d (latest %d)", id, generation, w.auto.generation)
		return false
	}
	c.emit(Event{Type: EventResume, Widget: id, Generation: generation})
	return true
}

// BindModel drives host from the widget's selection: model source per active
// option, yaw from the derived angle plus auto-rotation, and responsive scale.
func (c *Controller) BindModel(id WidgetID, host SceneHost, cfg ModelConfig) (*ModelBinding, error) {
	w, err := c.widget(id)
	if err != nil {
		return nil, err
	}
	if len(cfg.Sources) > 0 && len(cfg.Sources) != w.count {
		log.Printf("viewstate: widget %q has %d options but %d model sources", id, w.count, len(cfg.Sources))
	}
	b := &ModelBinding{widget: w, host: host, cfg: cfg}
	c.models = append(c.models, b)
	c.scope.Defer("model:"+string(id), func() {
		b.released = true
		for i, m := range c.models {
			if m == b {
				c.models = append(c.models[:i], c.models[i+1:]...)
				break
			}
		}
	})
	b.sync(c.viewport.Width)
	return b, nil
}

func (c *Controller) syncModels(w *Widget) {
	for _, b := range c.models {
		if b.widget == w {
			b.sync(c.viewport.Width)
		}
	}
}

// --- Timelines ---

// NewTimeline creates a timeline owned by the controller. It is advanced by
// Update and killed by Close.
func (c *Controller) NewTimeline() *Timeline {
	tl := NewTimeline()
	if c.closed {
		tl.Kill()
		return tl
	}
	c.timelines = append(c.timelines, tl)
	tl.scopeKey = c.scope.Defer("timeline", func() {
		tl.Kill()
		for i, t := range c.timelines {
			if t == tl {
				c.timelines = append(c.timelines[:i], c.timelines[i+1:]...)
				break
			}
		}
	})
	return tl
}

// --- Frame ---

// Update advances the controller by dt: timers fire, the viewport scroll
// animation, cursor followers, timelines and auto-rotation step forward.
func (c *Controller) Update(dt time.Duration) {
	if c.closed {
		return
	}
	c.sched.Advance(dt)
	if c.closed {
		return
	}
	secs := float32(dt.Seconds())
	if c.viewport.update(secs) {
		c.tickAll()
	}
	c.dot.Update(secs)
	c.ring.Update(secs)
	c.updateTimelines(secs)
	for _, b := range c.models {
		b.update(dt.Seconds())
		b.sync(c.viewport.Width)
	}
}

// updateTimelines steps every timeline, then drops the killed ones along
// with their scope entries.
func (c *Controller) updateTimelines(secs float32) {
	for _, tl := range c.timelines {
		tl.Update(secs)
	}
	live := c.timelines[:0]
	for _, tl := range c.timelines {
		if tl.Killed() {
			c.scope.Forget(tl.scopeKey)
			continue
		}
		live = append(live, tl)
	}
	clear(c.timelines[len(live):])
	c.timelines = live
}

// --- Snapshot ---

// WidgetSnapshot is one widget's state in a Snapshot.
type WidgetSnapshot struct {
	ID        WidgetID
	Option    string
	Selection SelectionState
	Auto      AutoBehaviorState
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	Pointer     InteractionState
	Dot         Vec2
	Ring        Vec2
	CursorScale float64
	Viewport    ViewportMetrics
	Scrolled    bool
	Regions     []RegionProgress
	Widgets     []WidgetSnapshot
	Toggles     []ToggleSnapshot
}

// Snapshot returns the current state. The returned slices are fresh copies.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Pointer:     c.pointer,
		Dot:         Vec2{X: c.dot.X, Y: c.dot.Y},
		Ring:        Vec2{X: c.ring.X, Y: c.ring.Y},
		CursorScale: c.pointer.CursorScale(),
		Viewport:    c.viewport.Metrics(),
		Scrolled:    c.viewport.ScrollY > c.scrolledThreshold,
		Regions:     c.regionProgress(),
		Widgets:     make([]WidgetSnapshot, len(c.order)),
		Toggles:     make([]ToggleSnapshot, len(c.toggleOrder)),
	}
	if c.scrolledThreshold < 0 {
		s.Scrolled = c.viewport.ScrollY > 0
	}
	for i, w := range c.order {
		s.Widgets[i] = WidgetSnapshot{
			ID:        w.id,
			Option:    w.ActiveOption(),
			Selection: w.sel,
			Auto:      w.auto.state(),
		}
	}
	for i, t := range c.toggleOrder {
		s.Toggles[i] = ToggleSnapshot{Name: t.name, Open: t.open}
	}
	return s
}

// Stats counts resources currently held by the controller.
type Stats struct {
	Handlers  int
	Timers    int
	Timelines int
	Hotspots  int
	Regions   int
	Models    int
	Scoped    int
}

// Stats returns the controller's resource counts. After Close every count
// is zero.
func (c *Controller) Stats() Stats {
	return Stats{
		Handlers:  c.handlers.count(),
		Timers:    c.sched.Pending(),
		Timelines: len(c.timelines),
		Hotspots:  len(c.hotspots),
		Regions:   len(c.regions),
		Models:    len(c.models),
		Scoped:    c.scope.Len(),
	}
}
