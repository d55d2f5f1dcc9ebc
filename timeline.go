package tween

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/tween/ease"
	"github.com/gogpu/tween/internal/accum"
)

// Timeline schedules animations against one Host.
//
// Call Tick once per rendered frame. A Timeline is not safe for concurrent
// use; independent timelines may drive the same or different hosts.
type Timeline struct {
	host    Host
	opts    options
	records []*record
	deltas  [numKinds]*accum.Table[ItemID]
}

// NewTimeline creates an empty timeline driving host.
func NewTimeline(host Host, opts ...Option) *Timeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	tl := &Timeline{host: host, opts: o}
	for k := range tl.deltas {
		tl.deltas[k] = accum.NewTable[ItemID]()
	}
	return tl
}

// Add schedules a new animation of kind on item, from start to end over
// frames frames, shaped by curve.
//
// start and end must be Vec for Position and Size and Scalar for Opacity.
// Size values are raised to the window or item minimum before the distance is
// computed. The animation starts on the first Tick at or after the host clock
// at Add time plus WithDelay.
//
// Add never modifies existing animations. Errors are *AddError values
// wrapping ErrShapeMismatch, ErrInvalidOption, ErrInvalidDuration or
// ease.ErrInvalidCurve.
func (tl *Timeline) Add(kind Kind, item ItemID, start, end Value, curve ease.Curve, frames int, opts ...AddOption) error {
	var o addOptions
	for _, opt := range opts {
		opt(&o)
	}

	if err := tl.validate(kind, start, end, curve, frames, o); err != nil {
		return &AddError{Name: o.name, Kind: kind, Err: err}
	}

	s, e := start.point(), end.point()
	if kind == Size {
		floor := tl.minSize(item)
		s = clampMin(s, floor)
		e = clampMin(e, floor)
	}

	r := &record{
		name:         o.name,
		kind:         kind,
		item:         item,
		start:        s,
		dist:         e.Sub(s),
		curve:        curve,
		duration:     frames,
		startTime:    tl.host.Now() + o.delay,
		loop:         o.loop,
		onComplete:   o.onComplete,
		completeData: o.completeData,
		onStart:      o.onStart,
		startData:    o.startData,
	}
	tl.records = append(tl.records, r)

	Logger().Debug("tween: animation added",
		"name", r.name,
		"kind", r.kind,
		"item", r.item,
		"frames", r.duration,
		"loop", r.loop)
	return nil
}

func (tl *Timeline) validate(kind Kind, start, end Value, curve ease.Curve, frames int, o addOptions) error {
	if !kind.valid() {
		return fmt.Errorf("%w: kind %d", ErrInvalidOption, kind)
	}
	if !o.loop.valid() {
		return fmt.Errorf("%w: loop mode %d", ErrInvalidOption, o.loop)
	}
	if start == nil || end == nil {
		return fmt.Errorf("%w: missing value", ErrShapeMismatch)
	}
	if start.vector() != kind.vector() || end.vector() != kind.vector() {
		return fmt.Errorf("%w: %s takes %s, got %T and %T", ErrShapeMismatch, kind, shapeName(kind), start, end)
	}
	if !finite(start.point()) || !finite(end.point()) {
		return fmt.Errorf("%w: non-finite value", ErrInvalidOption)
	}
	if frames <= 0 {
		return fmt.Errorf("%w: got %d frames", ErrInvalidDuration, frames)
	}
	return curve.Validate()
}

// minSize returns the size floor for item.
func (tl *Timeline) minSize(item ItemID) float64 {
	if tl.host.ItemKind(item) == ItemWindow {
		return tl.opts.windowMinSize
	}
	return tl.opts.itemMinSize
}

// call is a callback due after the current frame. item and data are copied
// when the call is queued.
type call struct {
	fn   Callback
	item ItemID
	data any
}

// Tick advances every running animation by one frame and writes the
// coalesced property changes to the host.
//
// Animations whose start time has not arrived, and paused animations, are
// carried over untouched. Completed animations without a loop mode are
// dropped. Start and completion callbacks run after the host writes, in the
// order they became due; changes they make to the timeline apply from the
// next Tick.
func (tl *Timeline) Tick() {
	now := tl.host.Now()
	log := Logger()

	next := make([]*record, 0, len(tl.records))
	var calls []call

	for _, r := range tl.records {
		if !r.due(now) {
			next = append(next, r)
			continue
		}

		if !r.started {
			r.started = true
			if r.onStart != nil {
				calls = append(calls, call{fn: r.onStart, item: r.item, data: r.startData})
			}
		}
		r.playing = true

		e, converged := r.curve.Eval(r.progress())
		if !converged {
			log.Debug("tween: easing did not converge",
				"name", r.name,
				"curve", r.curve,
				"progress", r.progress())
		}
		step := r.step(e)
		if !finite(step) || !tl.fits(r, step) {
			log.Warn("tween: skipping frame",
				"name", r.name,
				"item", r.item,
				"frame", r.frame,
				"eased", e)
			next = append(next, r)
			continue
		}

		tl.deltas[r.kind].Contribute(r.item, r.start, step, r.request())
		r.lastEase = e

		completed, live := r.advance()
		if live {
			next = append(next, r)
		}
		if completed && r.onComplete != nil {
			calls = append(calls, call{fn: r.onComplete, item: r.item, data: r.completeData})
		}
	}

	tl.flush()
	tl.records = next

	for _, c := range calls {
		c.fn(c.item, c.data)
	}
}

// fits reports whether adding step to the pending value of r's target keeps
// it finite. A target without an entry is seeded at start, which Add checked.
func (tl *Timeline) fits(r *record, step gg.Point) bool {
	e, ok := tl.deltas[r.kind].Lookup(r.item)
	return !ok || finite(e.Value.Add(step))
}

// flush writes pending deltas to the host: positions, then sizes, then opacities.
func (tl *Timeline) flush() {
	tl.deltas[Position].Flush(func(id ItemID, v gg.Point, f accum.Flush) {
		tl.host.SetPosition(id, toInt(v.X, f), toInt(v.Y, f))
	})
	tl.deltas[Size].Flush(func(id ItemID, v gg.Point, f accum.Flush) {
		tl.host.SetWidth(id, toInt(v.X, f))
		tl.host.SetHeight(id, toInt(v.Y, f))
	})
	tl.deltas[Opacity].Flush(func(id ItemID, v gg.Point, _ accum.Flush) {
		if tl.host.ItemKind(id) == ItemText {
			tl.host.SetTextColorAlpha(id, v.X)
		} else {
			tl.host.SetGenericAlpha(id, v.X)
		}
	})
}

// Play resumes every animation named name and returns how many matched.
func (tl *Timeline) Play(name string) int {
	n := 0
	for _, r := range tl.records {
		if r.name == name {
			r.paused = false
			n++
		}
	}
	return n
}

// Pause freezes every animation named name and returns how many matched.
// A paused animation keeps its frame counter and contributes nothing until
// resumed.
func (tl *Timeline) Pause(name string) int {
	n := 0
	for _, r := range tl.records {
		if r.name == name {
			r.paused = true
			r.playing = false
			n++
		}
	}
	return n
}

// Remove drops every animation named name and returns how many matched.
//
// When no remaining animation drives the same item and kind, the pending
// change for that pair is discarded as well, so nothing more is written to
// the item.
func (tl *Timeline) Remove(name string) int {
	var removed []*record
	kept := make([]*record, 0, len(tl.records))
	for _, r := range tl.records {
		if r.name == name {
			removed = append(removed, r)
		} else {
			kept = append(kept, r)
		}
	}
	if len(removed) == 0 {
		return 0
	}
	tl.records = kept

	for _, r := range removed {
		if !tl.drives(r.item, r.kind) {
			tl.deltas[r.kind].Delete(r.item)
		}
	}

	Logger().Debug("tween: animations removed", "name", name, "count", len(removed))
	return len(removed)
}

// drives reports whether any registered animation targets item with kind.
func (tl *Timeline) drives(item ItemID, kind Kind) bool {
	for _, r := range tl.records {
		if r.item == item && r.kind == kind {
			return true
		}
	}
	return false
}

// Clear drops all animations and pending changes.
func (tl *Timeline) Clear() {
	clear(tl.records)
	tl.records = tl.records[:0]
	for _, d := range tl.deltas {
		d.Reset()
	}
}

// Len returns the number of registered animations, including pending and
// paused ones.
func (tl *Timeline) Len() int {
	return len(tl.records)
}

// toInt converts an accumulated value for an integer property: truncated
// while snapping, rounded half to even on a final write.
func toInt(v float64, f accum.Flush) int {
	if f == accum.FlushSnap {
		return int(math.Trunc(v))
	}
	return int(math.RoundToEven(v))
}

func clampMin(p gg.Point, floor float64) gg.Point {
	return gg.Pt(math.Max(p.X, floor), math.Max(p.Y, floor))
}

func finite(p gg.Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func shapeName(k Kind) string {
	if k.vector() {
		return "Vec"
	}
	return "Scalar"
}
