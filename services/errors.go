package services

import (
	"fmt"
	"strings"
	"time"
)

// ElementNotReadyError reports that an element did not reach the expected
// visibility state within its timeout budget.
type ElementNotReadyError struct {
	Selector string
	State    ElementState
	Timeout  time.Duration
	Hint     string
	Err      error
}

func (e *ElementNotReadyError) Error() string {
	msg := fmt.Sprintf("element %q did not become %s within %s", e.Selector, e.State, e.Timeout)
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ElementNotReadyError) Unwrap() error { return e.Err }

// SessionClosedError reports that the page driving the automation was torn
// down mid-operation. It is terminal for the whole run, not just one field.
type SessionClosedError struct {
	Op string
}

func (e *SessionClosedError) Error() string {
	return fmt.Sprintf("browser session closed before %s", e.Op)
}

// OptionNotFoundError reports that every matching tier was exhausted for a
// searchable select. It carries the enumerated option list as data so callers
// can branch on it, and renders it into the message because that message is
// the only diagnostic surface a human gets from a failed headless run.
type OptionNotFoundError struct {
	Value   string
	Options Snapshot
	ReadErr error
}

func (e *OptionNotFoundError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "no option matching %q", e.Value)
	if e.ReadErr != nil {
		fmt.Fprintf(&b, "; could not read the available options: %v", e.ReadErr)
		return b.String()
	}
	fmt.Fprintf(&b, "; %d option(s) available:", len(e.Options))
	for i, opt := range e.Options {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, opt.Title)
	}
	return b.String()
}

func (e *OptionNotFoundError) Unwrap() error { return e.ReadErr }
