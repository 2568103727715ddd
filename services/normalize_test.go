package services

import (
	"reflect"
	"testing"
	"time"

	"github.com/Real-Estate-Insight-Platform-Project/Web-App-sub000/models"
)

func testRaw() models.RawRecord {
	return models.RawRecord{
		Price:        "$450,000",
		Address:      "1203 Barton Hills Dr, Austin, TX 78704",
		Beds:         "3 bed",
		Baths:        "2.5 bath",
		Sqft:         "1,850 sqft",
		LotSize:      "0.25 acre lot",
		ImageURL:     "/images/photo.jpg",
		DetailURL:    "/realestateandhomes-detail/1203-Barton-Hills-Dr",
		PropertyType: "Single Family Home",
		DaysOnMarket: "12 days on market",
		ListingID:    "2950114588",
		CapturedAt:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNormalizer_NumericFields(t *testing.T) {
	n := NewNormalizer("https://www.realtor.com")
	rec := n.FromRaw(testRaw())

	if rec.PriceValue == nil || *rec.PriceValue != 450000 {
		t.Fatalf("expected price 450000, got %v", rec.PriceValue)
	}
	if rec.BedsValue == nil || *rec.BedsValue != 3 {
		t.Fatalf("expected beds 3, got %v", rec.BedsValue)
	}
	if rec.BathsValue == nil || *rec.BathsValue != 2.5 {
		t.Fatalf("expected baths 2.5, got %v", rec.BathsValue)
	}
	if rec.SqftValue == nil || *rec.SqftValue != 1850 {
		t.Fatalf("expected sqft 1850, got %v", rec.SqftValue)
	}
}

func TestNormalizer_UnparseableFieldsStayAbsent(t *testing.T) {
	n := NewNormalizer("https://www.realtor.com")

	raw := testRaw()
	raw.Price = "Contact for price"
	raw.Beds = "Studio"
	raw.Baths = ""
	raw.Sqft = "N/A"

	rec := n.FromRaw(raw)

	if rec.PriceValue != nil {
		t.Fatalf("price should be absent, got %v", *rec.PriceValue)
	}
	if rec.BedsValue != nil {
		t.Fatalf("beds should be absent, got %v", *rec.BedsValue)
	}
	if rec.BathsValue != nil {
		t.Fatalf("baths should be absent, got %v", *rec.BathsValue)
	}
	if rec.SqftValue != nil {
		t.Fatalf("sqft should be absent, got %v", *rec.SqftValue)
	}
}

func TestNormalizer_URLResolution(t *testing.T) {
	n := NewNormalizer("https://www.realtor.com")

	cases := []struct {
		in, want string
	}{
		{"/realestateandhomes-detail/x", "https://www.realtor.com/realestateandhomes-detail/x"},
		{"realestateandhomes-detail/x", "https://www.realtor.com/realestateandhomes-detail/x"},
		{"//ap.rdcpix.com/photo.jpg", "https://ap.rdcpix.com/photo.jpg"},
		{"https://elsewhere.example/x", "https://elsewhere.example/x"},
		{"", ""},
	}

	for _, tc := range cases {
		raw := testRaw()
		raw.DetailURL = tc.in
		rec := n.FromRaw(raw)
		if rec.DetailURL != tc.want {
			t.Fatalf("resolve %q: got %q, want %q", tc.in, rec.DetailURL, tc.want)
		}
	}
}

func TestNormalizer_Identifier(t *testing.T) {
	n := NewNormalizer("https://www.realtor.com")

	rec := n.FromRaw(testRaw())
	if rec.ID == "" {
		t.Fatalf("expected an identifier")
	}

	// Same inputs, same capture time: same id within a run.
	again := n.FromRaw(testRaw())
	if again.ID != rec.ID {
		t.Fatalf("identifier not stable: %s vs %s", rec.ID, again.ID)
	}

	// Address absent falls back to the placeholder but still yields an id.
	raw := testRaw()
	raw.Address = ""
	anon := n.FromRaw(raw)
	if anon.ID == "" || anon.ID == rec.ID {
		t.Fatalf("expected distinct id for missing address, got %q", anon.ID)
	}
}

func TestNormalizer_Idempotent(t *testing.T) {
	n := NewNormalizer("https://www.realtor.com")

	once := n.FromRaw(testRaw())
	twice := n.Apply(once)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("normalization not idempotent:\n once %+v\ntwice %+v", once, twice)
	}
}
