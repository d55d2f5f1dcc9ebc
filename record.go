package tween

import (
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/tween/ease"
	"github.com/gogpu/tween/internal/accum"
)

// record is one scheduled animation.
//
// All progress math is expressed against distance, never against the end
// value, so LoopContinue can re-base start without touching distance.
// Scalar kinds keep their value in X and leave Y at zero.
type record struct {
	name  string
	kind  Kind
	item  ItemID
	start gg.Point
	dist  gg.Point
	curve ease.Curve

	duration  int
	startTime time.Duration

	frame    int     // 0..duration
	lastEase float64 // eased progress applied on the previous frame
	loop     LoopMode
	loops    int

	onComplete   Callback
	completeData any
	onStart      Callback
	startData    any

	started  bool
	playing  bool
	paused   bool
	reversed bool
}

// due reports whether the record runs on a frame at time now.
func (r *record) due(now time.Duration) bool {
	return now >= r.startTime && !r.paused
}

// progress returns the normalized time of the current frame.
func (r *record) progress() float64 {
	return float64(r.frame) / float64(r.duration)
}

// completing reports whether the current frame is the last of a pass.
func (r *record) completing() bool {
	return r.frame == r.duration
}

// step returns the change of value between the previous eased progress and e.
func (r *record) step(e float64) gg.Point {
	return r.dist.Mul(e - r.lastEase)
}

// request returns what this frame asks of the accumulator entry.
func (r *record) request() accum.Request {
	switch {
	case r.completing() && r.loop == LoopCycle:
		return accum.RequestReset
	case !r.completing() || r.loop != LoopNone:
		return accum.RequestSnap
	default:
		return accum.RequestFinal
	}
}

// advance moves the frame counter after the current frame was applied.
// It reports whether the pass completed on this frame and whether the record
// stays registered.
func (r *record) advance() (completed, live bool) {
	if r.frame < r.duration {
		switch {
		case !r.reversed:
			r.frame++
		case r.frame == 0:
			r.reversed = false
			r.frame = 1
		default:
			r.frame--
		}
		return false, true
	}

	if r.loop == LoopNone {
		return true, false
	}
	r.rearm()
	return true, true
}

// rearm prepares the next pass of a looping record.
func (r *record) rearm() {
	switch r.loop {
	case LoopPingPong:
		r.reversed = true
		r.frame--
		r.lastEase = 1
	case LoopCycle:
		r.frame = 0
		r.lastEase = 0
	case LoopContinue:
		r.start = r.start.Add(r.dist)
		r.frame = 0
		r.lastEase = 0
	}
	r.loops++
}

// info returns an immutable snapshot of the record.
func (r *record) info() Info {
	return Info{
		Name:         r.name,
		Kind:         r.kind,
		Item:         r.item,
		Start:        valueOf(r.kind, r.start),
		Distance:     valueOf(r.kind, r.dist),
		Curve:        r.curve,
		Duration:     r.duration,
		StartTime:    r.startTime,
		Frame:        r.frame,
		LastEase:     r.lastEase,
		Loop:         r.loop,
		Loops:        r.loops,
		OnComplete:   r.onComplete,
		CompleteData: r.completeData,
		OnStart:      r.onStart,
		StartData:    r.startData,
		Playing:      r.playing,
		Paused:       r.paused,
		Reversed:     r.reversed,
	}
}
