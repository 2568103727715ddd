package scraper

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/Real-Estate-Insight-Platform-Project/Web-App-sub000/config"
	"github.com/Real-Estate-Insight-Platform-Project/Web-App-sub000/models"
)

// The two fatal extraction conditions get distinct sentinels so callers can
// surface distinct messages.
var (
	ErrListingsNotLoaded = errors.New("property listings failed to load")
	ErrNoProperties      = errors.New("no properties found on results page")
)

// Client renders a results page against the shared session and extracts raw
// records from it. One browser context per call; the context is always closed
// on the way out, whatever happens, so sustained load cannot leak pages.
type Client struct {
	session *Session
	browser *config.BrowserConfig
	search  *config.SearchConfig
}

func NewClient(session *Session, browser *config.BrowserConfig, search *config.SearchConfig) *Client {
	return &Client{session: session, browser: browser, search: search}
}

// FetchListings opens the search URL, waits for a result-card marker and
// extracts up to maxCards raw records. Cards without a parseable price are
// discarded here; they cannot be ranked or displayed. The driver's own calls
// carry their configured timeouts, so the context is consulted between
// stages rather than plumbed into each call.
func (c *Client) FetchListings(ctx context.Context, url string, maxCards int) ([]models.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	browser, err := c.session.Acquire()
	if err != nil {
		return nil, err
	}

	bctx, err := browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent: playwright.String(c.search.UserAgent),
		Locale:    playwright.String(c.search.Locale),
		Viewport: &playwright.Size{
			Width:  c.search.ViewportWidth,
			Height: c.search.ViewportHeight,
		},
		ExtraHttpHeaders: map[string]string{
			"Accept-Language": c.search.Locale + ",en;q=0.9",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}
	defer bctx.Close()

	page, err := bctx.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	if _, err := page.Goto(url, playwright.PageGotoOptions{
		Timeout:   playwright.Float(c.browser.NavigationTimeoutMS),
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return nil, fmt.Errorf("navigation failed: %w", err)
	}

	// Fixed settle period for client-side rendering
	page.WaitForTimeout(c.browser.SettleMS)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	adopted := c.adoptCardSelector(page)
	if adopted == "" {
		return nil, ErrListingsNotLoaded
	}

	cards := page.Locator(adopted)
	count, err := cards.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count result cards: %w", err)
	}
	if count == 0 {
		return nil, ErrNoProperties
	}
	if count > maxCards {
		count = maxCards
	}

	els := make([]Element, 0, count)
	for i := 0; i < count; i++ {
		els = append(els, &locatorElement{card: cards.Nth(i), timeoutMS: c.browser.FieldTimeoutMS})
	}

	records := CollectRecords(els, time.Now())
	log.Printf("Extracted %d/%d cards from %s (selector: %s)", len(records), count, url, adopted)
	return records, nil
}

// adoptCardSelector tries each candidate marker in priority order with its own
// wait window and adopts the first one that shows up.
func (c *Client) adoptCardSelector(page playwright.Page) string {
	for _, sel := range cardSelectors {
		err := page.Locator(sel).First().WaitFor(playwright.LocatorWaitForOptions{
			State:   playwright.WaitForSelectorStateVisible,
			Timeout: playwright.Float(c.browser.SelectorTimeoutMS),
		})
		if err == nil {
			return sel
		}
	}
	return ""
}

// locatorElement adapts a live playwright card locator to the Element
// capability. Each probe carries a short timeout of its own so one dead
// selector cannot stall the whole card.
type locatorElement struct {
	card      playwright.Locator
	timeoutMS float64
}

func (e *locatorElement) Text(selector string) (string, error) {
	return e.card.Locator(selector).First().TextContent(playwright.LocatorTextContentOptions{
		Timeout: playwright.Float(e.timeoutMS),
	})
}

func (e *locatorElement) Attr(selector, name string) (string, error) {
	return e.card.Locator(selector).First().GetAttribute(name, playwright.LocatorGetAttributeOptions{
		Timeout: playwright.Float(e.timeoutMS),
	})
}

func (e *locatorElement) RootAttr(name string) (string, error) {
	return e.card.GetAttribute(name, playwright.LocatorGetAttributeOptions{
		Timeout: playwright.Float(e.timeoutMS),
	})
}
