package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"filingai/utils"
)

// TimeoutBudget holds the per-transition wait bounds of the fill engine.
// The durations are tuned to one specific third-party UI and carry no portable
// meaning; they are configuration defaults, not contract.
type TimeoutBudget struct {
	// Open bounds the wait for a widget's input sub-element after clicking it.
	Open time.Duration `validate:"gt=0"`
	// Load bounds the wait for the first option item to render.
	Load time.Duration `validate:"gt=0"`
	// Refilter bounds the wait for the option list to reappear after typing a
	// filter value.
	Refilter time.Duration `validate:"gt=0"`
	// OptionLookup bounds the short visibility wait on a direct exact-title
	// option lookup.
	OptionLookup time.Duration `validate:"gt=0"`
	// Settle is the fixed delay used where the widget exposes no completion
	// signal at all.
	Settle time.Duration `validate:"gte=0"`
}

// EngineConfig configures the fill engine for one target application.
type EngineConfig struct {
	// OptionSelector matches the rendered option items of an open searchable
	// select. The option list renders in a page-level overlay, not inside the
	// widget, so this is a page-global selector.
	OptionSelector string `validate:"required"`
	// DescriptedOptionSelector matches the emphasized element of options that
	// carry their label as visible text instead of a title attribute.
	DescriptedOptionSelector string `validate:"required"`
	// MaxOptions caps how many options a single enumeration reads.
	MaxOptions int `validate:"gt=0"`
	Timeouts   TimeoutBudget
}

// DefaultEngineConfig returns the defaults tuned for the target portal's
// ant-design widgets.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		OptionSelector:           "nz-option-item",
		DescriptedOptionSelector: "nz-option-item strong",
		MaxOptions:               50,
		Timeouts: TimeoutBudget{
			Open:         5 * time.Second,
			Load:         10 * time.Second,
			Refilter:     3 * time.Second,
			OptionLookup: 2 * time.Second,
			Settle:       500 * time.Millisecond,
		},
	}
}

// Engine fills searchable-select and date-picker widgets whose option lists
// load asynchronously and may be filtered by typed input. It is strictly
// sequential: one engine drives one page, one operation at a time, and every
// wait is bounded.
type Engine struct {
	driver Driver
	cfg    EngineConfig
	log    *utils.Logger
}

// NewEngine creates an engine over the given driver.
func NewEngine(driver Driver, cfg EngineConfig, log *utils.Logger) *Engine {
	return &Engine{driver: driver, cfg: cfg, log: log}
}

// SelectOption selects the option matching value in the searchable select
// behind inputSelector. Matching runs in three tiers, in fixed order:
//
//	A. direct lookup of an option whose title attribute equals value verbatim
//	B. normalized exact-or-substring match over the filtered option list
//	C. normalized match over the pre-filter option list, for widgets whose own
//	   client-side filter is fuzzy enough to hide an option that a plain
//	   substring search would still find
//
// When all tiers fail, the returned OptionNotFoundError enumerates every
// option that was actually available.
func (e *Engine) SelectOption(inputSelector, value string) error {
	return e.selectTiered(inputSelector, e.cfg.OptionSelector, readTitle, value, true)
}

// SelectDescriptedOption is the SelectOption variant for options that carry
// their label as the visible text of an emphasized child element rather than
// a title attribute. The direct title lookup does not apply; the normalized
// matching tiers do.
func (e *Engine) SelectDescriptedOption(inputSelector, value string) error {
	return e.selectTiered(inputSelector, e.cfg.DescriptedOptionSelector, readText, value, false)
}

func (e *Engine) selectTiered(inputSelector, optionSelector string, mode readMode, value string, titleLookup bool) error {
	if err := e.ensureSession("select option"); err != nil {
		return err
	}

	if err := e.openWidget(inputSelector); err != nil {
		return err
	}
	if err := e.waitVisible(optionSelector, e.cfg.Timeouts.Load, "dropdown may be empty"); err != nil {
		return err
	}

	// Snapshot before filtering; tier C needs the unfiltered list.
	all, allErr := e.listOptions(optionSelector, mode, e.cfg.Timeouts.Load)
	if allErr != nil {
		var closed *SessionClosedError
		if errors.As(allErr, &closed) {
			return allErr
		}
		e.log.Warn("could not snapshot the unfiltered option list", "selector", optionSelector, "error", allErr.Error())
	}

	if err := e.driver.SetValue(inputSelector, value); err != nil {
		return fmt.Errorf("apply option filter %q: %w", value, err)
	}
	if err := e.waitVisible(optionSelector, e.cfg.Timeouts.Refilter, ""); err != nil {
		var closed *SessionClosedError
		if errors.As(err, &closed) {
			return err
		}
		// Filtering may legitimately leave the list unchanged and the widget
		// emits no post-filter event, so settle instead of failing.
		e.settle()
	}

	filtered, filteredErr := e.listOptions(optionSelector, mode, e.cfg.Timeouts.Refilter)
	if filteredErr != nil {
		var closed *SessionClosedError
		if errors.As(filteredErr, &closed) {
			return filteredErr
		}
		// An over-aggressive filter can empty the list entirely; the later
		// tiers still get a chance on the unfiltered snapshot.
		e.log.Debug("filtered option list unavailable", "selector", optionSelector, "error", filteredErr.Error())
		filtered = nil
	}

	if titleLookup {
		if done, err := e.clickExactTitle(optionSelector, value); err != nil {
			return err
		} else if done {
			e.log.Debug("option selected by direct title lookup", "value", value)
			return nil
		}
	}

	if m := MatchOption(value, filtered); m.Kind != MatchNone {
		if err := e.driver.ClickNth(optionSelector, m.Option.Position, e.cfg.Timeouts.OptionLookup); err != nil {
			return fmt.Errorf("click filtered option %q: %w", m.Option.Title, err)
		}
		e.log.Debug("option selected from filtered list", "value", value, "title", m.Option.Title)
		e.settle()
		return nil
	}

	if m := MatchOption(value, all); m.Kind != MatchNone {
		if err := e.selectFromUnfiltered(inputSelector, optionSelector, m.Option, titleLookup); err != nil {
			return err
		}
		e.log.Debug("option selected from unfiltered list", "value", value, "title", m.Option.Title)
		return nil
	}

	return &OptionNotFoundError{Value: value, Options: all, ReadErr: allErr}
}

// selectFromUnfiltered clears the typed filter and commits the option found on
// the pre-filter snapshot. The snapshot position is only valid against the
// unfiltered render, so the list must be restored first.
func (e *Engine) selectFromUnfiltered(inputSelector, optionSelector string, opt Option, titleLookup bool) error {
	if err := e.driver.SetValue(inputSelector, ""); err != nil {
		return fmt.Errorf("clear option filter: %w", err)
	}
	if err := e.waitVisible(optionSelector, e.cfg.Timeouts.Refilter, ""); err != nil {
		var closed *SessionClosedError
		if errors.As(err, &closed) {
			return err
		}
		e.settle()
	}
	if titleLookup {
		// Re-locate by exact title: positions may have shifted but titles are
		// stable within one fill attempt.
		selector := exactTitleSelector(optionSelector, opt.Title)
		if err := e.driver.Click(selector, e.cfg.Timeouts.OptionLookup); err != nil {
			return fmt.Errorf("click unfiltered option %q: %w", opt.Title, err)
		}
	} else {
		if err := e.driver.ClickNth(optionSelector, opt.Position, e.cfg.Timeouts.OptionLookup); err != nil {
			return fmt.Errorf("click unfiltered option %q: %w", opt.Title, err)
		}
	}
	e.settle()
	return nil
}

// clickExactTitle tries the direct DOM lookup of an option whose title equals
// value verbatim. A miss is not an error; the caller falls through to the
// normalized tiers.
func (e *Engine) clickExactTitle(optionSelector, value string) (bool, error) {
	selector := exactTitleSelector(optionSelector, value)
	if err := e.driver.WaitFor(selector, StateVisible, e.cfg.Timeouts.OptionLookup); err != nil {
		if e.driver.Closed() {
			return false, &SessionClosedError{Op: "exact option lookup"}
		}
		return false, nil
	}
	if err := e.driver.Click(selector, e.cfg.Timeouts.OptionLookup); err != nil {
		if e.driver.Closed() {
			return false, &SessionClosedError{Op: "exact option lookup"}
		}
		return false, nil
	}
	e.settle()
	return true, nil
}

// FillInput types value into the autocomplete behind inputSelector and picks
// whatever option renders first. Best effort by design: callers use it for
// low-stakes fields where a non-deterministic pick is acceptable. Fields where
// the selected value matters go through SelectOption.
func (e *Engine) FillInput(inputSelector, value string) error {
	if err := e.ensureSession("fill input"); err != nil {
		return err
	}
	if err := e.openWidget(inputSelector); err != nil {
		return err
	}
	if err := e.driver.SetValue(inputSelector, value); err != nil {
		return fmt.Errorf("fill input %q: %w", inputSelector, err)
	}
	if err := e.waitVisible(e.cfg.OptionSelector, e.cfg.Timeouts.Load, "dropdown may be empty"); err != nil {
		return err
	}
	if err := e.driver.ClickNth(e.cfg.OptionSelector, 0, e.cfg.Timeouts.OptionLookup); err != nil {
		return fmt.Errorf("click first option for %q: %w", value, err)
	}
	// The widget's value binding lags the option click and exposes no event.
	e.settle()
	return nil
}

// FillText sets a plain input that has no option list attached.
func (e *Engine) FillText(inputSelector, value string) error {
	if err := e.ensureSession("fill text"); err != nil {
		return err
	}
	if err := e.driver.Click(inputSelector, e.cfg.Timeouts.Open); err != nil {
		return fmt.Errorf("focus input %q: %w", inputSelector, err)
	}
	if err := e.driver.SetValue(inputSelector, value); err != nil {
		return fmt.Errorf("fill text %q: %w", inputSelector, err)
	}
	return nil
}

// FillDateInput fills a date-picker input from an ISO date (YYYY-MM-DD),
// which upstream validation guarantees. The widget's text parser expects
// slashes, so the separators are converted before typing. The calendar
// overlay has no guaranteed close affordance; a focus-advance keystroke
// dismisses it instead.
func (e *Engine) FillDateInput(inputSelector, isoDate string) error {
	if _, err := time.Parse("2006-01-02", isoDate); err != nil {
		return fmt.Errorf("date must be in YYYY-MM-DD format: %w", err)
	}
	slashed := strings.ReplaceAll(isoDate, "-", "/")

	if err := e.ensureSession("fill date input"); err != nil {
		return err
	}
	if err := e.driver.Click(inputSelector, e.cfg.Timeouts.Open); err != nil {
		return fmt.Errorf("open date input %q: %w", inputSelector, err)
	}
	if err := e.driver.SetValue(inputSelector, slashed); err != nil {
		return fmt.Errorf("fill date input %q: %w", inputSelector, err)
	}
	if err := e.driver.Press(inputSelector, "Tab"); err != nil {
		return fmt.Errorf("dismiss calendar on %q: %w", inputSelector, err)
	}
	// The picker re-parses the text after losing focus and exposes no event.
	e.settle()
	return nil
}

// openWidget clicks the widget and waits for its input sub-element.
func (e *Engine) openWidget(inputSelector string) error {
	if err := e.driver.Click(inputSelector, e.cfg.Timeouts.Open); err != nil {
		if e.driver.Closed() {
			return &SessionClosedError{Op: "open widget"}
		}
		return &ElementNotReadyError{Selector: inputSelector, State: StateVisible, Timeout: e.cfg.Timeouts.Open, Err: err}
	}
	return e.waitVisible(inputSelector, e.cfg.Timeouts.Open, "")
}

// waitVisible is a bounded visibility wait with session-liveness checks on
// both sides, so a closed session fails immediately instead of timing out.
func (e *Engine) waitVisible(selector string, timeout time.Duration, hint string) error {
	if err := e.ensureSession("wait for " + selector); err != nil {
		return err
	}
	if err := e.driver.WaitFor(selector, StateVisible, timeout); err != nil {
		if e.driver.Closed() {
			return &SessionClosedError{Op: "wait for " + selector}
		}
		return &ElementNotReadyError{Selector: selector, State: StateVisible, Timeout: timeout, Hint: hint, Err: err}
	}
	return nil
}

func (e *Engine) ensureSession(op string) error {
	if e.driver.Closed() {
		return &SessionClosedError{Op: op}
	}
	return nil
}

func (e *Engine) settle() {
	if e.cfg.Timeouts.Settle > 0 {
		time.Sleep(e.cfg.Timeouts.Settle)
	}
}

func exactTitleSelector(optionSelector, title string) string {
	return fmt.Sprintf("%s[title=%q]", optionSelector, title)
}
