package tween

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Kind is the item property an animation drives.
type Kind uint8

const (
	// Position moves an item. Values are Vec.
	Position Kind = iota

	// Size resizes an item. Values are Vec (width, height).
	Size

	// Opacity fades an item. Values are Scalar in [0, 1].
	Opacity

	numKinds = 3
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Position:
		return "position"
	case Size:
		return "size"
	case Opacity:
		return "opacity"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// vector reports whether values of this kind are two-dimensional.
func (k Kind) vector() bool {
	return k == Position || k == Size
}

func (k Kind) valid() bool {
	return k < numKinds
}

// ParseKind parses "position", "size" or "opacity", ignoring case.
func ParseKind(s string) (Kind, error) {
	switch fold(s) {
	case "position":
		return Position, nil
	case "size":
		return Size, nil
	case "opacity":
		return Opacity, nil
	}
	return 0, fmt.Errorf("%w: kind %q", ErrInvalidOption, s)
}

// LoopMode selects what happens when an animation reaches its last frame.
type LoopMode uint8

const (
	// LoopNone ends the animation.
	LoopNone LoopMode = iota

	// LoopCycle restarts from the start value.
	LoopCycle

	// LoopPingPong reverses direction at each end.
	LoopPingPong

	// LoopContinue repeats the same relative motion from the end value.
	LoopContinue
)

// String returns the loop mode name.
func (m LoopMode) String() string {
	switch m {
	case LoopNone:
		return "none"
	case LoopCycle:
		return "cycle"
	case LoopPingPong:
		return "ping-pong"
	case LoopContinue:
		return "continue"
	default:
		return fmt.Sprintf("LoopMode(%d)", m)
	}
}

func (m LoopMode) valid() bool {
	return m <= LoopContinue
}

// ParseLoopMode parses "none", "cycle", "ping-pong" (or "pingpong") and
// "continue", ignoring case. The empty string is LoopNone.
func ParseLoopMode(s string) (LoopMode, error) {
	switch fold(s) {
	case "", "none":
		return LoopNone, nil
	case "cycle":
		return LoopCycle, nil
	case "ping-pong", "pingpong":
		return LoopPingPong, nil
	case "continue":
		return LoopContinue, nil
	}
	return 0, fmt.Errorf("%w: loop mode %q", ErrInvalidOption, s)
}

func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
