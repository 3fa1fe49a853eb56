package viewstate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Timeline sequences tweens over float64 fields the caller owns. Tracks are
// placed on a shared time axis; playing forward or in reverse moves a single
// playhead and every track writes its value for that time.
//
// Timelines are owned by the Controller that created them and are killed
// when it closes. There is no global timeline registry.
type Timeline struct {
	tracks   []track
	duration float32
	time     float32
	dir      int8 // 1 forward, -1 reverse, 0 paused
	killed   bool
	scopeKey uint64

	// last track bounds, for relative positions
	lastStart, lastEnd float32

	// OnComplete fires when a forward play reaches the end.
	OnComplete func()
	// OnReverseComplete fires when a reverse play reaches the start.
	OnReverseComplete func()
}

type track struct {
	target *float64
	tween  *gween.Tween
	start  float32
}

// NewTimeline creates an empty, paused timeline. Prefer Controller.NewTimeline,
// which ties the timeline's lifetime to the controller.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// --- Positions ---

type positionKind uint8

const (
	posAppend    positionKind = iota // after the end of the timeline, plus offset
	posAbsolute                      // at an absolute time
	posPrevStart                     // at the start of the previous track, plus offset
	posPrevEnd                       // at the end of the previous track, plus offset
)

// Position places a track on the timeline. The zero Position appends after
// the current end.
type Position struct {
	kind   positionKind
	offset float32
}

// After places a track offset seconds after the current end of the timeline.
// A negative offset overlaps the previous tracks.
func After(offset float32) Position { return Position{kind: posAppend, offset: offset} }

// At places a track at an absolute time.
func At(t float32) Position { return Position{kind: posAbsolute, offset: t} }

// WithPrevious places a track at the start of the previously added track.
func WithPrevious(offset float32) Position { return Position{kind: posPrevStart, offset: offset} }

// AfterPrevious places a track at the end of the previously added track.
func AfterPrevious(offset float32) Position { return Position{kind: posPrevEnd, offset: offset} }

// ParsePosition parses a GSAP-style position parameter: "" (append),
// "-=0.6" or "+=1" (relative to the end), "<" or "<0.2" (start of previous),
// ">" or ">-0.1" (end of previous), or an absolute number of seconds.
func ParsePosition(s string) (Position, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Position{}, nil
	}
	parse := func(v string) (float32, error) {
		if v == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return 0, fmt.Errorf("parse position %q: %w", s, err)
		}
		return float32(f), nil
	}
	switch {
	case strings.HasPrefix(s, "-="), strings.HasPrefix(s, "+="):
		f, err := parse(s[2:])
		if err != nil {
			return Position{}, err
		}
		if s[0] == '-' {
			f = -f
		}
		return After(f), nil
	case s[0] == '<':
		f, err := parse(s[1:])
		if err != nil {
			return Position{}, err
		}
		return WithPrevious(f), nil
	case s[0] == '>':
		f, err := parse(s[1:])
		if err != nil {
			return Position{}, err
		}
		return AfterPrevious(f), nil
	}
	f, err := parse(s)
	if err != nil {
		return Position{}, err
	}
	return At(f), nil
}

func (tl *Timeline) resolve(pos Position) float32 {
	var t float32
	switch pos.kind {
	case posAbsolute:
		t = pos.offset
	case posPrevStart:
		t = tl.lastStart + pos.offset
	case posPrevEnd:
		t = tl.lastEnd + pos.offset
	default:
		t = tl.duration + pos.offset
	}
	if t < 0 {
		t = 0
	}
	return t
}

// --- Building ---

// FromTo adds a track that animates *target from from to to over duration
// seconds. The target is set to from immediately. An optional Position
// places the track; the default appends it.
func (tl *Timeline) FromTo(target *float64, from, to float64, duration float32, fn ease.TweenFunc, pos ...Position) *Timeline {
	if fn == nil {
		fn = ease.Linear
	}
	var p Position
	if len(pos) > 0 {
		p = pos[0]
	}
	start := tl.resolve(p)
	tr := track{
		target: target,
		tween:  gween.New(float32(from), float32(to), duration, fn),
		start:  start,
	}
	tl.tracks = append(tl.tracks, tr)
	tl.lastStart = start
	tl.lastEnd = start + duration
	if tl.lastEnd > tl.duration {
		tl.duration = tl.lastEnd
	}
	tl.applyTrack(&tl.tracks[len(tl.tracks)-1])
	return tl
}

// To adds a track from the target's current value to to.
func (tl *Timeline) To(target *float64, to float64, duration float32, fn ease.TweenFunc, pos ...Position) *Timeline {
	return tl.FromTo(target, *target, to, duration, fn, pos...)
}

// Stagger adds one FromTo track per target, each starting each seconds after
// the previous. The first track is placed by pos.
func (tl *Timeline) Stagger(targets []*float64, from, to float64, duration, each float32, fn ease.TweenFunc, pos ...Position) *Timeline {
	if len(targets) == 0 {
		return tl
	}
	var p Position
	if len(pos) > 0 {
		p = pos[0]
	}
	first := tl.resolve(p)
	for i, target := range targets {
		tl.FromTo(target, from, to, duration, fn, At(first+float32(i)*each))
	}
	tl.lastStart = first
	return tl
}

// --- Playback ---

// Duration returns the total length of the timeline in seconds.
func (tl *Timeline) Duration() float32 { return tl.duration }

// Time returns the playhead position in seconds.
func (tl *Timeline) Time() float32 { return tl.time }

// Playing reports whether the playhead is moving.
func (tl *Timeline) Playing() bool { return tl.dir != 0 }

// Reversed reports whether the timeline is playing in reverse.
func (tl *Timeline) Reversed() bool { return tl.dir < 0 }

// Killed reports whether Kill has been called.
func (tl *Timeline) Killed() bool { return tl.killed }

// Progress returns the playhead position as a fraction of the duration.
func (tl *Timeline) Progress() float64 {
	if tl.duration <= 0 {
		return 0
	}
	return float64(tl.time / tl.duration)
}

// Play moves the playhead forward from its current position.
func (tl *Timeline) Play() {
	if tl.killed {
		return
	}
	tl.dir = 1
}

// Reverse moves the playhead backward from its current position.
func (tl *Timeline) Reverse() {
	if tl.killed {
		return
	}
	tl.dir = -1
}

// Pause stops the playhead where it is.
func (tl *Timeline) Pause() {
	tl.dir = 0
}

// Restart seeks to the start and plays forward.
func (tl *Timeline) Restart() {
	tl.Seek(0)
	tl.Play()
}

// Seek moves the playhead to t seconds and applies every track.
func (tl *Timeline) Seek(t float32) {
	if tl.killed {
		return
	}
	tl.time = clamp32(t, 0, tl.duration)
	tl.apply()
}

// SetProgress seeks to p * Duration, with p clamped to [0, 1].
func (tl *Timeline) SetProgress(p float64) {
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	tl.Seek(float32(p) * tl.duration)
}

// Kill stops the timeline permanently. Tracks are no longer written.
func (tl *Timeline) Kill() {
	tl.killed = true
	tl.dir = 0
	tl.tracks = nil
}

// Update advances the playhead by dt seconds in the play direction.
func (tl *Timeline) Update(dt float32) {
	if tl.killed || tl.dir == 0 {
		return
	}
	tl.time += dt * float32(tl.dir)
	switch {
	case tl.dir > 0 && tl.time >= tl.duration:
		tl.time = tl.duration
		tl.apply()
		tl.dir = 0
		if tl.OnComplete != nil {
			tl.OnComplete()
		}
	case tl.dir < 0 && tl.time <= 0:
		tl.time = 0
		tl.apply()
		tl.dir = 0
		if tl.OnReverseComplete != nil {
			tl.OnReverseComplete()
		}
	default:
		tl.apply()
	}
}

func (tl *Timeline) apply() {
	for i := range tl.tracks {
		tl.applyTrack(&tl.tracks[i])
	}
}

// applyTrack writes the track's value at the playhead. Before its start a
// track holds its from value; after its end it holds its to value.
func (tl *Timeline) applyTrack(tr *track) {
	val, _ := tr.tween.Set(tl.time - tr.start)
	*tr.target = float64(val)
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// --- Hover bindings ---

// HoverTimeline plays a timeline forward while a hotspot is hovered and
// reverses it on leave.
func HoverTimeline(h *Hotspot, tl *Timeline) {
	h.OnEnter = tl.Play
	h.OnLeave = tl.Reverse
}
