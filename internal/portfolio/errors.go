package portfolio

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingElement is returned when the host document lacks a required element
	ErrMissingElement = errors.New("missing element")
	// ErrAlreadyRendered is returned when Render is called more than once
	ErrAlreadyRendered = errors.New("portfolio already rendered")
	// ErrNotRendered is returned when wiring happens before Render
	ErrNotRendered = errors.New("portfolio not rendered")
	// ErrNotWired is returned when a message is dispatched before Wire
	ErrNotWired = errors.New("portfolio controls not wired")
	// ErrInvalidVideoID is returned for ids that cannot be placed in an embed URL
	ErrInvalidVideoID = errors.New("invalid video id")
	// ErrUnknownVideo is returned when no rendered view control carries the id
	ErrUnknownVideo = errors.New("unknown video")
	// ErrUnknownFilter is returned when no filter control carries the category
	ErrUnknownFilter = errors.New("unknown filter")
)

// ElementError reports which contract element is absent from the document
type ElementError struct {
	Role     string
	Selector string
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrMissingElement, e.Role, e.Selector)
}

func (e *ElementError) Unwrap() error {
	return ErrMissingElement
}
