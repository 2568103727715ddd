package models

import "time"

// RawRecord is a listing exactly as scraped: a bag of optional strings plus the
// capture timestamp. It only lives between the extractor and the normalizer;
// an empty field means no selector candidate yielded a value.
type RawRecord struct {
	Price        string    `json:"price,omitempty"`
	Address      string    `json:"address,omitempty"`
	Beds         string    `json:"beds,omitempty"`
	Baths        string    `json:"baths,omitempty"`
	Sqft         string    `json:"sqft,omitempty"`
	LotSize      string    `json:"lotSize,omitempty"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	DetailURL    string    `json:"detailUrl,omitempty"`
	PropertyType string    `json:"propertyType,omitempty"`
	DaysOnMarket string    `json:"daysOnMarket,omitempty"`
	ListingID    string    `json:"listingId,omitempty"`
	CapturedAt   time.Time `json:"capturedAt"`
}

// Record is a RawRecord plus the derived numeric fields and a stable per-run
// identifier. A nil derived field means the scraped text was unparseable,
// which is distinct from zero; present values are always non-negative.
type Record struct {
	RawRecord

	ID         string   `json:"id"`
	PriceValue *int     `json:"priceValue,omitempty"`
	BedsValue  *int     `json:"bedsValue,omitempty"`
	BathsValue *float64 `json:"bathsValue,omitempty"`
	SqftValue  *int     `json:"sqftValue,omitempty"`

	// Score is assigned only by the ranking stage.
	Score *float64 `json:"score,omitempty"`
}
