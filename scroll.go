package viewstate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ViewportMetrics describes the visible window onto the page for one scroll
// or resize tick. ScrollY is the document offset of the viewport's top edge.
type ViewportMetrics struct {
	ScrollY float64
	Width   float64
	Height  float64
}

// Progress returns clamp((viewportTop-start)/(end-start), 0, 1).
// A zero-length range (end == start) yields 0.
func Progress(viewportTop, start, end float64) float64 {
	span := end - start
	if span == 0 {
		return 0
	}
	p := (viewportTop - start) / span
	if math.IsNaN(p) {
		return 0
	}
	return math.Max(0, math.Min(p, 1))
}

// TriggerPosition is a ScrollTrigger-style "<element edge> <viewport edge>"
// pair. Each edge is a fraction of the element or viewport height: "top" is
// 0, "center" 0.5, "bottom" 1, "80%" 0.8. Pixel offsets such as "100px" are
// added to the fraction.
type TriggerPosition struct {
	Element    float64
	ElementPx  float64
	Viewport   float64
	ViewportPx float64
}

// Common trigger positions.
var (
	TopBottom = TriggerPosition{Element: 0, Viewport: 1} // element top meets viewport bottom
	BottomTop = TriggerPosition{Element: 1, Viewport: 0} // element bottom meets viewport top
	TopTop    = TriggerPosition{Element: 0, Viewport: 0} // element top meets viewport top
)

// ParseTriggerPosition parses a position such as "top 80%", "bottom top" or
// "center center". A single token applies to the element and the viewport
// edge defaults to "top".
func ParseTriggerPosition(s string) (TriggerPosition, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return TriggerPosition{}, fmt.Errorf("parse trigger position %q: want 1 or 2 fields", s)
	}
	var tp TriggerPosition
	var err error
	tp.Element, tp.ElementPx, err = parseEdge(fields[0])
	if err != nil {
		return TriggerPosition{}, fmt.Errorf("parse trigger position %q: %w", s, err)
	}
	if len(fields) == 2 {
		tp.Viewport, tp.ViewportPx, err = parseEdge(fields[1])
		if err != nil {
			return TriggerPosition{}, fmt.Errorf("parse trigger position %q: %w", s, err)
		}
	}
	return tp, nil
}

// parseEdge returns the fractional and pixel parts of a single edge token.
func parseEdge(tok string) (frac, px float64, err error) {
	switch tok {
	case "top", "left":
		return 0, 0, nil
	case "center":
		return 0.5, 0, nil
	case "bottom", "right":
		return 1, 0, nil
	}
	if v, ok := strings.CutSuffix(tok, "%"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("bad percentage %q", tok)
		}
		return f / 100, 0, nil
	}
	v, _ := strings.CutSuffix(tok, "px")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad edge %q", tok)
	}
	return 0, f, nil
}

// scrollFor returns the scrollY at which the position is reached for an
// element spanning [elemTop, elemTop+elemHeight] and the given viewport height.
func (tp TriggerPosition) scrollFor(elemTop, elemHeight, viewportHeight float64) float64 {
	elemY := elemTop + tp.Element*elemHeight + tp.ElementPx
	viewY := tp.Viewport*viewportHeight + tp.ViewportPx
	return elemY - viewY
}

// TriggerRegion is a scroll range in document coordinates. Progress is 0 at
// or before Start and 1 at or after End.
type TriggerRegion struct {
	Start, End float64
}

// RegionFromElement computes the trigger region for an element laid out at
// elemTop with elemHeight, between the start and end positions.
func RegionFromElement(elemTop, elemHeight, viewportHeight float64, start, end TriggerPosition) TriggerRegion {
	return TriggerRegion{
		Start: start.scrollFor(elemTop, elemHeight, viewportHeight),
		End:   end.scrollFor(elemTop, elemHeight, viewportHeight),
	}
}

// Region is a registered trigger region. Its progress is recomputed on every
// scroll tick; reveal timelines play once when the viewport first reaches
// Start, and scrubbed timelines follow progress.
type Region struct {
	Name    string
	Trigger TriggerRegion

	progress float64
	entered  bool
	reveals  []*Timeline
	scrubs   []*Timeline
	scopeKey uint64
}

// Progress returns the progress computed on the last tick.
func (r *Region) Progress() float64 {
	return r.progress
}

// Entered reports whether the viewport has reached the region's start.
func (r *Region) Entered() bool {
	return r.entered
}

// OnScrollTick recomputes and returns the region's progress for m. Calling it
// twice with the same metrics yields the same value.
func (r *Region) OnScrollTick(m ViewportMetrics) float64 {
	r.progress = Progress(m.ScrollY, r.Trigger.Start, r.Trigger.End)
	return r.progress
}

// OnEnter plays tl once, the first time the viewport reaches the region start.
// If the region has already been entered, tl plays immediately.
func (r *Region) OnEnter(tl *Timeline) *Region {
	if r.entered {
		tl.Play()
		return r
	}
	r.reveals = append(r.reveals, tl)
	return r
}

// Scrub ties tl's progress to the region's progress on every tick.
func (r *Region) Scrub(tl *Timeline) *Region {
	tl.Pause()
	tl.SetProgress(r.progress)
	r.scrubs = append(r.scrubs, tl)
	return r
}

// tick recomputes progress and applies reveal and scrub bindings. Reports
// whether the region was entered on this tick.
func (r *Region) tick(m ViewportMetrics) bool {
	r.OnScrollTick(m)
	for _, tl := range r.scrubs {
		tl.SetProgress(r.progress)
	}
	if r.entered || m.ScrollY < r.Trigger.Start {
		return false
	}
	r.entered = true
	for _, tl := range r.reveals {
		tl.Play()
	}
	r.reveals = nil
	return true
}

// RegionProgress is one region's progress in a Snapshot.
type RegionProgress struct {
	Name     string
	Progress float64
	Entered  bool
}
