package services

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Browser owns a Playwright runtime and a launched Chromium instance.
type Browser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

// StartBrowser boots Playwright and launches Chromium.
func StartBrowser(headless bool) (*Browser, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch browser: %w", err)
	}

	return &Browser{pw: pw, browser: browser}, nil
}

// OpenPage opens a new page and navigates it to the target URL.
func (b *Browser) OpenPage(targetURL string) (playwright.Page, error) {
	page, err := b.browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("could not create page: %w", err)
	}

	if _, err := page.Goto(targetURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		page.Close()
		return nil, fmt.Errorf("could not navigate to %s: %w", targetURL, err)
	}

	return page, nil
}

// Close shuts the browser and the Playwright runtime down.
func (b *Browser) Close() {
	if b.browser != nil {
		b.browser.Close()
	}
	if b.pw != nil {
		b.pw.Stop()
	}
}
