package tween

import (
	"fmt"
	"time"
)

// ItemID is an opaque handle to an item in the host tree.
type ItemID uint64

// ItemKind classifies host items for the few places the engine cares.
type ItemKind uint8

const (
	// ItemOther is any item without special handling.
	ItemOther ItemKind = iota

	// ItemWindow is a size-constrained container. Size animations never
	// shrink it below the window minimum.
	ItemWindow

	// ItemText is a text item with its own colour channel. Opacity is
	// written to that channel instead of the generic alpha.
	ItemText
)

// String returns the item kind name.
func (k ItemKind) String() string {
	switch k {
	case ItemWindow:
		return "window"
	case ItemText:
		return "text"
	default:
		return "other"
	}
}

// ParseItemKind parses "window", "text" or "other", ignoring case.
// The empty string is ItemOther.
func ParseItemKind(s string) (ItemKind, error) {
	switch fold(s) {
	case "", "other":
		return ItemOther, nil
	case "window":
		return ItemWindow, nil
	case "text":
		return ItemText, nil
	}
	return ItemOther, fmt.Errorf("%w: item kind %q", ErrInvalidOption, s)
}

// Host is the GUI the timeline animates.
//
// The timeline reads the clock and item kinds at any time, but writes item
// properties only while flushing at the end of Tick.
type Host interface {
	// Now returns the monotonic animation clock.
	Now() time.Duration

	// ItemKind classifies the item.
	ItemKind(id ItemID) ItemKind

	SetPosition(id ItemID, x, y int)
	SetWidth(id ItemID, w int)
	SetHeight(id ItemID, h int)

	// SetTextColorAlpha rewrites the alpha of a text item's colour,
	// keeping its RGB.
	SetTextColorAlpha(id ItemID, alpha float64)

	// SetGenericAlpha sets the item-level alpha. Creating the underlying
	// style binding when missing is up to the host.
	SetGenericAlpha(id ItemID, alpha float64)
}
