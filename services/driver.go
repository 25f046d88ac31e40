package services

import "time"

// ElementState is a visibility state a wait can target.
type ElementState string

const (
	StateVisible  ElementState = "visible"
	StateHidden   ElementState = "hidden"
	StateDetached ElementState = "detached"
)

// Driver is the narrow automation contract the fill engine runs against.
// Selectors are opaque strings resolved fresh on every call: the underlying
// element can be destroyed and re-created between operations, so element
// handles are never held across calls.
type Driver interface {
	// Click clicks the first element matching the selector, waiting up to
	// timeout for it to become actionable.
	Click(selector string, timeout time.Duration) error

	// ClickNth clicks the element at the given rendered position.
	ClickNth(selector string, position int, timeout time.Duration) error

	// SetValue sets the element's value programmatically and raises the
	// input-changed signal, bypassing per-character typing latency.
	SetValue(selector string, value string) error

	// Attribute reads an attribute from the element at the given position.
	Attribute(selector string, position int, name string) (string, error)

	// Text reads the visible text content of the element at the given position.
	Text(selector string, position int) (string, error)

	// Count returns how many elements currently match the selector.
	Count(selector string) (int, error)

	// WaitFor waits up to timeout for the first matching element to reach the
	// given state.
	WaitFor(selector string, state ElementState, timeout time.Duration) error

	// Press sends a single keystroke to the first matching element.
	Press(selector string, key string) error

	// Closed reports whether the underlying page session has been torn down.
	Closed() bool
}
