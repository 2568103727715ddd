package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Real-Estate-Insight-Platform-Project/Web-App-sub000/identity"
	"github.com/Real-Estate-Insight-Platform-Project/Web-App-sub000/models"
)

var (
	nonDigitRegex   = regexp.MustCompile(`[^0-9]`)
	nonDecimalRegex = regexp.MustCompile(`[^0-9.]`)
	schemeRegex     = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)
)

// Normalizer converts scraped text into typed fields, resolves relative URLs
// against the site origin and assigns the record identifier. Every rule is
// deterministic and idempotent: applying the normalizer to its own output
// changes nothing.
type Normalizer struct {
	origin string
}

func NewNormalizer(origin string) *Normalizer {
	return &Normalizer{origin: strings.TrimRight(origin, "/")}
}

// FromRaw lifts a scraped record into a normalized Record.
func (n *Normalizer) FromRaw(raw models.RawRecord) models.Record {
	return n.Apply(models.Record{RawRecord: raw})
}

func (n *Normalizer) Apply(rec models.Record) models.Record {
	rec.PriceValue = parseIntField(rec.Price)
	rec.BedsValue = parseIntField(rec.Beds)
	rec.BathsValue = parseDecimalField(rec.Baths)
	rec.SqftValue = parseIntField(rec.Sqft)
	rec.DetailURL = n.absoluteURL(rec.DetailURL)
	rec.ImageURL = n.absoluteURL(rec.ImageURL)
	rec.ID = identity.RecordID(rec.Address, rec.PriceValue, rec.CapturedAt)
	return rec
}

// parseIntField strips everything but digits and parses what remains. Nil
// means the text held no number at all, which is distinct from zero.
func parseIntField(s string) *int {
	digits := nonDigitRegex.ReplaceAllString(s, "")
	if digits == "" {
		return nil
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		return nil
	}
	return &v
}

// parseDecimalField keeps digits and the decimal point, for bath counts like
// "2.5 ba".
func parseDecimalField(s string) *float64 {
	cleaned := nonDecimalRegex.ReplaceAllString(s, "")
	if cleaned == "" {
		return nil
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &v
}

// absoluteURL resolves site-relative URLs against the canonical origin.
// Protocol-relative URLs get https; anything already carrying a scheme is
// left alone.
func (n *Normalizer) absoluteURL(u string) string {
	if u == "" {
		return ""
	}
	if strings.HasPrefix(u, "//") {
		return "https:" + u
	}
	if schemeRegex.MatchString(u) {
		return u
	}
	if !strings.HasPrefix(u, "/") {
		u = "/" + u
	}
	return n.origin + u
}
