package tween

import (
	"errors"
	"fmt"
)

// Errors returned when adding an animation.
var (
	// ErrShapeMismatch is returned when a start or end value does not have
	// the shape its kind requires (Vec for Position and Size, Scalar for Opacity).
	ErrShapeMismatch = errors.New("tween: value shape does not match kind")

	// ErrInvalidOption is returned for unknown kinds, loop modes or field names.
	ErrInvalidOption = errors.New("tween: invalid option")

	// ErrInvalidDuration is returned when the frame count is not positive.
	ErrInvalidDuration = errors.New("tween: duration must be positive")
)

// Errors returned by Get.
var (
	// ErrNotFound is the common cause of ErrNoAnimations and ErrNoFields.
	ErrNotFound = errors.New("tween: not found")

	// ErrNoAnimations is returned when the timeline holds no animations.
	ErrNoAnimations = fmt.Errorf("%w: no animations", ErrNotFound)

	// ErrNoFields is returned when animations exist but no field was requested.
	ErrNoFields = fmt.Errorf("%w: no fields", ErrNotFound)
)

// AddError describes a rejected Add call.
type AddError struct {
	Name string
	Kind Kind
	Err  error
}

func (e *AddError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("tween: add %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("tween: add %s %q: %v", e.Kind, e.Name, e.Err)
}

func (e *AddError) Unwrap() error {
	return e.Err
}
