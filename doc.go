// Package tween animates item properties of a retained-mode GUI, one frame
// at a time.
//
// # Overview
//
// A Timeline holds animations. Each animation drives one property (Position,
// Size or Opacity) of one host item from a start value to an end value over a
// fixed number of frames, shaped by a cubic-Bézier easing curve from package
// ease. The host calls Tick once per rendered frame; the timeline advances
// every running animation and writes the results through the Host interface.
//
// # Quick Start
//
//	tl := tween.NewTimeline(host)
//
//	// Slide a button 100px to the right over 30 frames.
//	err := tl.Add(tween.Position, button, tween.V(0, 0), tween.V(100, 0), ease.EaseOut, 30,
//	    tween.WithName("slide"))
//
//	// Once per frame:
//	tl.Tick()
//
// # Coalescing
//
// Several animations may drive the same item and property at once. Their
// per-frame changes are added together and written once per frame, so two
// Position animations moving an item right and down produce a diagonal move.
// Integer properties are truncated while motion is in progress and rounded on
// the final frame.
//
// # Looping
//
// LoopCycle restarts from the start value, LoopPingPong reverses direction at
// each end, and LoopContinue repeats the same relative motion from where the
// previous pass ended.
//
// # Callbacks
//
// WithOnStart runs once, on the first frame an animation runs. WithOnComplete
// runs every time an animation reaches its last frame. Callbacks run after
// the host writes of the frame; timeline changes they make apply from the
// next Tick.
//
// # Hosts
//
// Package memhost provides an in-memory host for tests and headless use,
// gghost paints items with gg, and termhost draws them on a terminal.
//
// # Concurrency
//
// A Timeline is single-threaded: Tick and the registry methods must not be
// called concurrently. SetLogger is safe for concurrent use.
package tween
