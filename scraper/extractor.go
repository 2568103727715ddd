package scraper

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Real-Estate-Insight-Platform-Project/Web-App-sub000/models"
)

// Element is the single capability field strategies need from a result card:
// yield a string for a child selector, by text or by attribute.
type Element interface {
	Text(selector string) (string, error)
	Attr(selector, name string) (string, error)
	RootAttr(name string) (string, error)
}

// ExtractCard pulls every field of one result card through its fallback chain.
// A field whose whole chain comes up empty stays absent; that is not an error.
// Any panic inside card processing is converted into the returned error so a
// bad card never takes the batch down with it.
func ExtractCard(el Element, capturedAt time.Time) (rec models.RawRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("card extraction panicked: %v", r)
		}
	}()

	rec = models.RawRecord{
		Price:        firstValue(el, priceChain),
		Address:      firstValue(el, addressChain),
		Beds:         firstValue(el, bedsChain),
		Baths:        firstValue(el, bathsChain),
		Sqft:         firstValue(el, sqftChain),
		LotSize:      firstValue(el, lotSizeChain),
		ImageURL:     firstValue(el, imageChain),
		DetailURL:    firstValue(el, detailLinkChain),
		PropertyType: firstValue(el, propertyTypeChain),
		DaysOnMarket: firstValue(el, daysOnMarketChain),
		ListingID:    firstRootAttr(el, listingIDAttrs),
		CapturedAt:   capturedAt,
	}
	return rec, nil
}

// CollectRecords runs card extraction over a batch. A card that fails is
// skipped and logged, never aborting the batch; a card without a parseable
// price is discarded because it cannot be ranked or meaningfully displayed.
// "Parseable" means the text holds at least one digit, the same rule the
// normalizer applies, so placeholders like "Contact for price" are dropped
// here and never reach the pipeline.
func CollectRecords(els []Element, capturedAt time.Time) []models.RawRecord {
	records := make([]models.RawRecord, 0, len(els))
	for i, el := range els {
		rec, err := ExtractCard(el, capturedAt)
		if err != nil {
			log.Printf("Card %d skipped: %v", i, err)
			continue
		}
		if !strings.ContainsAny(rec.Price, "0123456789") {
			log.Printf("Card %d has no parseable price (%q), discarding", i, rec.Price)
			continue
		}
		records = append(records, rec)
	}
	return records
}

func firstValue(el Element, chain []strategy) string {
	for _, st := range chain {
		var v string
		var err error
		if st.Attr != "" {
			v, err = el.Attr(st.Selector, st.Attr)
		} else {
			v, err = el.Text(st.Selector)
		}
		if err != nil {
			continue
		}
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func firstRootAttr(el Element, names []string) string {
	for _, name := range names {
		v, err := el.RootAttr(name)
		if err != nil {
			continue
		}
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
