package tween

import "time"

// Option configures a Timeline during creation.
//
// Example:
//
//	// Defaults: windows never shrink below 32x32, other items below 1x1
//	tl := tween.NewTimeline(host)
//
//	// Larger floor for windows
//	tl := tween.NewTimeline(host, tween.WithWindowMinSize(64))
type Option func(*options)

type options struct {
	windowMinSize float64
	itemMinSize   float64
}

func defaultOptions() options {
	return options{
		windowMinSize: 32,
		itemMinSize:   1,
	}
}

// WithWindowMinSize sets the smallest width and height a Size animation may
// give an ItemWindow. Start and end values below it are raised to it.
func WithWindowMinSize(v float64) Option {
	return func(o *options) {
		o.windowMinSize = v
	}
}

// WithItemMinSize sets the smallest width and height a Size animation may
// give any item that is not an ItemWindow.
func WithItemMinSize(v float64) Option {
	return func(o *options) {
		o.itemMinSize = v
	}
}

// Callback is invoked after the frame in which an animation starts or
// completes. data is the payload registered with the callback.
type Callback func(id ItemID, data any)

// AddOption configures a single animation.
//
// Example:
//
//	err := tl.Add(tween.Position, btn, tween.V(0, 0), tween.V(100, 0), ease.EaseOut, 30,
//	    tween.WithName("slide"),
//	    tween.WithDelay(500*time.Millisecond),
//	    tween.WithLoop(tween.LoopPingPong),
//	)
type AddOption func(*addOptions)

type addOptions struct {
	name         string
	delay        time.Duration
	loop         LoopMode
	onComplete   Callback
	completeData any
	onStart      Callback
	startData    any
}

// WithName names the animation so Play, Pause and Remove can find it.
// Names need not be unique; those calls affect every match.
func WithName(name string) AddOption {
	return func(o *addOptions) {
		o.name = name
	}
}

// WithDelay postpones the start by d relative to the host clock at Add time.
func WithDelay(d time.Duration) AddOption {
	return func(o *addOptions) {
		o.delay = d
	}
}

// WithLoop sets the loop mode. The default is LoopNone.
func WithLoop(m LoopMode) AddOption {
	return func(o *addOptions) {
		o.loop = m
	}
}

// WithOnComplete registers fn to run every time the animation reaches its
// last frame, including every pass of a looping animation.
func WithOnComplete(fn Callback, data any) AddOption {
	return func(o *addOptions) {
		o.onComplete = fn
		o.completeData = data
	}
}

// WithOnStart registers fn to run once, on the first frame the animation runs.
func WithOnStart(fn Callback, data any) AddOption {
	return func(o *addOptions) {
		o.onStart = fn
		o.startData = data
	}
}
