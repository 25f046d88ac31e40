package services

import (
	"time"

	"github.com/playwright-community/playwright-go"
)

// PlaywrightDriver implements Driver on a Playwright page. Every call
// resolves its selector to a fresh locator; the target UI re-renders widgets
// freely and a held element handle can go stale between two operations.
type PlaywrightDriver struct {
	page playwright.Page
}

// NewPlaywrightDriver wraps an open page.
func NewPlaywrightDriver(page playwright.Page) *PlaywrightDriver {
	return &PlaywrightDriver{page: page}
}

func (d *PlaywrightDriver) Click(selector string, timeout time.Duration) error {
	return d.page.Locator(selector).First().Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(millis(timeout)),
	})
}

func (d *PlaywrightDriver) ClickNth(selector string, position int, timeout time.Duration) error {
	return d.page.Locator(selector).Nth(position).Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(millis(timeout)),
	})
}

// SetValue sets the element value from script and dispatches a bubbling input
// event, so framework bindings react as if the user had typed the whole value
// at once.
func (d *PlaywrightDriver) SetValue(selector string, value string) error {
	_, err := d.page.Locator(selector).First().Evaluate(`(el, value) => {
		el.value = value;
		el.dispatchEvent(new Event('input', { bubbles: true }));
	}`, value)
	return err
}

func (d *PlaywrightDriver) Attribute(selector string, position int, name string) (string, error) {
	return d.page.Locator(selector).Nth(position).GetAttribute(name)
}

func (d *PlaywrightDriver) Text(selector string, position int) (string, error) {
	return d.page.Locator(selector).Nth(position).TextContent()
}

func (d *PlaywrightDriver) Count(selector string) (int, error) {
	return d.page.Locator(selector).Count()
}

func (d *PlaywrightDriver) WaitFor(selector string, state ElementState, timeout time.Duration) error {
	return d.page.Locator(selector).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   waitState(state),
		Timeout: playwright.Float(millis(timeout)),
	})
}

func (d *PlaywrightDriver) Press(selector string, key string) error {
	return d.page.Locator(selector).First().Press(key)
}

func (d *PlaywrightDriver) Closed() bool {
	return d.page.IsClosed()
}

func waitState(state ElementState) *playwright.WaitForSelectorState {
	switch state {
	case StateHidden:
		return playwright.WaitForSelectorStateHidden
	case StateDetached:
		return playwright.WaitForSelectorStateDetached
	default:
		return playwright.WaitForSelectorStateVisible
	}
}

func millis(d time.Duration) float64 {
	return float64(d.Milliseconds())
}
