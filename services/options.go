package services

import (
	"time"
)

// readMode selects how an option's display title is obtained.
type readMode int

const (
	// readTitle reads the option's title attribute (standard option items).
	readTitle readMode = iota
	// readText reads the option's visible text content (descripted options,
	// whose emphasized child element carries no title attribute).
	readText
)

// listOptions enumerates the currently rendered options of an open dropdown,
// waiting up to timeout for at least one item to become visible first. It
// reads up to MaxOptions titles in display order, skipping items whose title
// cannot be read, and never mutates selection state. Session liveness is
// checked before and after the wait so a torn-down page fails fast instead of
// burning the whole timeout.
func (e *Engine) listOptions(selector string, mode readMode, timeout time.Duration) (Snapshot, error) {
	if err := e.ensureSession("option enumeration"); err != nil {
		return nil, err
	}
	if err := e.driver.WaitFor(selector, StateVisible, timeout); err != nil {
		if e.driver.Closed() {
			return nil, &SessionClosedError{Op: "option enumeration"}
		}
		return nil, &ElementNotReadyError{Selector: selector, State: StateVisible, Timeout: timeout, Err: err}
	}
	if err := e.ensureSession("option enumeration"); err != nil {
		return nil, err
	}

	count, err := e.driver.Count(selector)
	if err != nil {
		return nil, &ElementNotReadyError{Selector: selector, State: StateVisible, Timeout: timeout, Err: err}
	}
	if count > e.cfg.MaxOptions {
		count = e.cfg.MaxOptions
	}

	snapshot := make(Snapshot, 0, count)
	for i := 0; i < count; i++ {
		var title string
		var readErr error
		switch mode {
		case readText:
			title, readErr = e.driver.Text(selector, i)
		default:
			title, readErr = e.driver.Attribute(selector, i, "title")
		}
		if readErr != nil || title == "" {
			continue
		}
		snapshot = append(snapshot, Option{Title: title, Position: i})
	}
	return snapshot, nil
}

// ListAvailableOptions opens the widget behind the given input and returns the
// options it currently offers. Exposed so callers can inspect a dropdown
// without committing a selection.
func (e *Engine) ListAvailableOptions(inputSelector string) (Snapshot, error) {
	if err := e.ensureSession("list available options"); err != nil {
		return nil, err
	}
	if err := e.openWidget(inputSelector); err != nil {
		return nil, err
	}
	return e.listOptions(e.cfg.OptionSelector, readTitle, e.cfg.Timeouts.Load)
}
