package scraper

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func loadFixtureCards(t *testing.T, name string) []*HTMLElement {
	t.Helper()
	path := filepath.Join("testdata", name)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read fixture %s: %v", name, err)
	}
	cards, err := ParseCards(bytes.NewReader(data), cardSelectors[0])
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	return cards
}

func TestExtractCard_PrimarySelectors(t *testing.T) {
	cards := loadFixtureCards(t, "results_page.html")
	if len(cards) != 4 {
		t.Fatalf("expected 4 cards in fixture, got %d", len(cards))
	}

	capturedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rec, err := ExtractCard(cards[0], capturedAt)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	if rec.Price != "$450,000" {
		t.Fatalf("expected price $450,000, got %q", rec.Price)
	}
	if rec.Address != "1203 Barton Hills Dr, Austin, TX 78704" {
		t.Fatalf("unexpected address %q", rec.Address)
	}
	if rec.Beds != "3 bed" {
		t.Fatalf("unexpected beds %q", rec.Beds)
	}
	if rec.Baths != "2.5 bath" {
		t.Fatalf("unexpected baths %q", rec.Baths)
	}
	if rec.Sqft != "1,850 sqft" {
		t.Fatalf("unexpected sqft %q", rec.Sqft)
	}
	if rec.LotSize != "0.25 acre lot" {
		t.Fatalf("unexpected lot size %q", rec.LotSize)
	}
	if rec.ImageURL != "https://ap.rdcpix.com/abc123/photo-m0o.jpg" {
		t.Fatalf("unexpected image URL %q", rec.ImageURL)
	}
	if rec.DetailURL != "/realestateandhomes-detail/1203-Barton-Hills-Dr_Austin_TX_78704_M2950114588" {
		t.Fatalf("unexpected detail URL %q", rec.DetailURL)
	}
	if rec.PropertyType != "Single Family Home" {
		t.Fatalf("unexpected property type %q", rec.PropertyType)
	}
	if rec.DaysOnMarket != "12 days on market" {
		t.Fatalf("unexpected days on market %q", rec.DaysOnMarket)
	}
	if rec.ListingID != "2950114588" {
		t.Fatalf("unexpected listing id %q", rec.ListingID)
	}
	if !rec.CapturedAt.Equal(capturedAt) {
		t.Fatalf("unexpected capture time %v", rec.CapturedAt)
	}
}

func TestExtractCard_FallbackSelectorsAndTrimming(t *testing.T) {
	cards := loadFixtureCards(t, "results_page.html")

	rec, err := ExtractCard(cards[1], time.Now())
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	// Second card only exposes the secondary selector set; it must still be
	// fully extracted, with surrounding whitespace trimmed.
	if rec.Price != "$299,900" {
		t.Fatalf("expected trimmed fallback price, got %q", rec.Price)
	}
	if rec.Address != "88 Rainey St Unit 502, Austin, TX 78701" {
		t.Fatalf("expected trimmed fallback address, got %q", rec.Address)
	}
	if rec.Beds != "2 bed" {
		t.Fatalf("unexpected beds %q", rec.Beds)
	}
	if rec.PropertyType != "Condo" {
		t.Fatalf("unexpected property type %q", rec.PropertyType)
	}
	if rec.ListingID != "card_2960220177" {
		t.Fatalf("expected id attribute fallback, got %q", rec.ListingID)
	}
	if rec.Sqft != "" {
		t.Fatalf("sqft should be absent when no candidate matches, got %q", rec.Sqft)
	}
	if rec.DetailURL != "//www.realtor.com/realestateandhomes-detail/88-Rainey-St_Austin_TX_78701_M2960220177" {
		t.Fatalf("unexpected detail URL %q", rec.DetailURL)
	}
}

func TestCollectRecords_DiscardsUnpriceableCards(t *testing.T) {
	cards := loadFixtureCards(t, "results_page.html")

	els := make([]Element, len(cards))
	for i, c := range cards {
		els[i] = c
	}

	records := CollectRecords(els, time.Now())

	// The third fixture card has no price text under any candidate selector;
	// the fourth carries "Contact for price", a price text with no digits.
	// Neither may reach the raw-record list.
	if len(records) != 2 {
		t.Fatalf("expected 2 records after discarding unpriceable cards, got %d", len(records))
	}
	for _, rec := range records {
		if !strings.ContainsAny(rec.Price, "0123456789") {
			t.Fatalf("record without parseable price leaked into batch: %+v", rec)
		}
	}
}

type panickyElement struct{}

func (panickyElement) Text(string) (string, error)         { panic("boom") }
func (panickyElement) Attr(string, string) (string, error) { panic("boom") }
func (panickyElement) RootAttr(string) (string, error)     { panic("boom") }

func TestCollectRecords_BadCardDoesNotAbortBatch(t *testing.T) {
	cards := loadFixtureCards(t, "results_page.html")

	els := []Element{panickyElement{}, cards[0]}
	records := CollectRecords(els, time.Now())

	if len(records) != 1 {
		t.Fatalf("expected surviving record after bad card, got %d", len(records))
	}
	if records[0].Price != "$450,000" {
		t.Fatalf("wrong record survived: %+v", records[0])
	}
}
