package scraper

import (
	"fmt"
	"sync"

	"github.com/playwright-community/playwright-go"

	"github.com/Real-Estate-Insight-Platform-Project/Web-App-sub000/config"
)

// Session owns the process-wide browser handle. Acquire is lazy and
// idempotent; Release tears everything down so the next Acquire relaunches
// cleanly. Concurrent requests share one browser and open their own
// page-scoped contexts against it.
type Session struct {
	cfg *config.BrowserConfig

	mu          sync.Mutex
	pw          *playwright.Playwright
	browser     playwright.Browser
	initialized bool
}

func NewSession(cfg *config.BrowserConfig) *Session {
	return &Session{cfg: cfg}
}

// Acquire returns the running browser, launching it on first use. The target
// site fingerprints automated clients, so the launch disables the automation
// markers. A launch failure leaves the session uninitialized for the next
// attempt; there is no retry here.
func (s *Session) Acquire() (playwright.Browser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return s.browser, nil
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(s.cfg.Headless),
		Args: []string{
			"--disable-blink-features=AutomationControlled",
			"--disable-dev-shm-usage",
			"--no-sandbox",
		},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	s.pw = pw
	s.browser = browser
	s.initialized = true
	return s.browser, nil
}

// Release closes the browser and clears state. Safe to call when nothing is
// running.
func (s *Session) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.browser != nil {
		s.browser.Close()
		s.browser = nil
	}
	if s.pw != nil {
		s.pw.Stop()
		s.pw = nil
	}
	s.initialized = false
}
