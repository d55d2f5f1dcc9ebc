package tween

import (
	"fmt"
	"time"

	"github.com/gogpu/tween/ease"
)

// Info is a snapshot of one animation. It does not alias timeline state.
type Info struct {
	Name         string
	Kind         Kind
	Item         ItemID
	Start        Value
	Distance     Value
	Curve        ease.Curve
	Duration     int
	StartTime    time.Duration
	Frame        int
	LastEase     float64
	Loop         LoopMode
	Loops        int
	OnComplete   Callback
	CompleteData any
	OnStart      Callback
	StartData    any
	Playing      bool
	Paused       bool
	Reversed     bool
}

// End returns Start + Distance, the value the current pass heads for.
func (i Info) End() Value {
	return valueOf(i.Kind, i.Start.point().Add(i.Distance.point()))
}

// Field selects one column of Get.
type Field uint8

const (
	// FieldName is the animation name (string).
	FieldName Field = iota
	// FieldKind is the animated property (Kind).
	FieldKind
	// FieldItem is the target item (ItemID).
	FieldItem
	// FieldStart is the value the current pass starts from (Value).
	FieldStart
	// FieldEnd is Start + Distance (Value).
	FieldEnd
	// FieldDistance is the signed change over one pass (Value).
	FieldDistance
	// FieldCurve is the easing curve (ease.Curve).
	FieldCurve
	// FieldDuration is the pass length in frames (int).
	FieldDuration
	// FieldStartTime is the host clock reading at which the animation
	// begins, delay included (time.Duration).
	FieldStartTime
	// FieldFrame is the frame counter within the current pass (int).
	FieldFrame
	// FieldLoop is the looping mode (LoopMode).
	FieldLoop
	// FieldLoops is the number of times a looping animation has re-armed
	// (int).
	FieldLoops
	// FieldOnComplete is the completion callback (Callback, may be nil).
	FieldOnComplete
	// FieldCompleteData is the payload passed to OnComplete (any).
	FieldCompleteData
	// FieldOnStart is the start callback (Callback, may be nil).
	FieldOnStart
	// FieldStartData is the payload passed to OnStart (any).
	FieldStartData
	// FieldPlaying reports whether the animation has ticked since it was
	// added or last paused (bool).
	FieldPlaying
	// FieldPaused reports whether the animation is paused (bool).
	FieldPaused
	// FieldReversed reports whether a ping-pong animation is running its
	// frame counter backwards (bool).
	FieldReversed

	numFields
)

var fieldNames = [numFields]string{
	FieldName:         "name",
	FieldKind:         "type",
	FieldItem:         "object",
	FieldStart:        "startval",
	FieldEnd:          "endval",
	FieldDistance:     "distance",
	FieldCurve:        "ease",
	FieldDuration:     "duration",
	FieldStartTime:    "starttime",
	FieldFrame:        "framecounter",
	FieldLoop:         "loop",
	FieldLoops:        "loopcounter",
	FieldOnComplete:   "callback",
	FieldCompleteData: "callback_data",
	FieldOnStart:      "early_callback",
	FieldStartData:    "early_callback_data",
	FieldPlaying:      "isplaying",
	FieldPaused:       "ispaused",
	FieldReversed:     "isreversed",
}

// String returns the field name accepted by ParseField.
func (f Field) String() string {
	if f < numFields {
		return fieldNames[f]
	}
	return fmt.Sprintf("Field(%d)", f)
}

// ParseField parses a field name such as "name", "endval" or "framecounter",
// ignoring case.
func ParseField(s string) (Field, error) {
	key := fold(s)
	for f, name := range fieldNames {
		if name == key {
			return Field(f), nil
		}
	}
	return 0, fmt.Errorf("%w: field %q", ErrInvalidOption, s)
}

// value projects one field of the snapshot. ok is false for unknown fields.
func (i Info) value(f Field) (v any, ok bool) {
	switch f {
	case FieldName:
		return i.Name, true
	case FieldKind:
		return i.Kind, true
	case FieldItem:
		return i.Item, true
	case FieldStart:
		return i.Start, true
	case FieldEnd:
		return i.End(), true
	case FieldDistance:
		return i.Distance, true
	case FieldCurve:
		return i.Curve, true
	case FieldDuration:
		return i.Duration, true
	case FieldStartTime:
		return i.StartTime, true
	case FieldFrame:
		return i.Frame, true
	case FieldLoop:
		return i.Loop, true
	case FieldLoops:
		return i.Loops, true
	case FieldOnComplete:
		return i.OnComplete, true
	case FieldCompleteData:
		return i.CompleteData, true
	case FieldOnStart:
		return i.OnStart, true
	case FieldStartData:
		return i.StartData, true
	case FieldPlaying:
		return i.Playing, true
	case FieldPaused:
		return i.Paused, true
	case FieldReversed:
		return i.Reversed, true
	}
	return nil, false
}

// Get returns the requested fields of every animation, flattened in
// animation-then-field order. Unknown fields are skipped.
//
// It returns ErrNoAnimations when the timeline is empty and ErrNoFields when
// animations exist but nothing was selected; both match ErrNotFound.
func (tl *Timeline) Get(fields ...Field) ([]any, error) {
	if len(tl.records) == 0 {
		return nil, ErrNoAnimations
	}

	out := make([]any, 0, len(tl.records)*len(fields))
	for _, r := range tl.records {
		info := r.info()
		for _, f := range fields {
			if v, ok := info.value(f); ok {
				out = append(out, v)
			}
		}
	}
	if len(out) == 0 {
		return nil, ErrNoFields
	}
	return out, nil
}

// Animations returns a snapshot of every animation in registry order.
func (tl *Timeline) Animations() []Info {
	out := make([]Info, len(tl.records))
	for i, r := range tl.records {
		out[i] = r.info()
	}
	return out
}
