package scraper

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/Real-Estate-Insight-Platform-Project/Web-App-sub000/config"
	"github.com/Real-Estate-Insight-Platform-Project/Web-App-sub000/models"
)

// Defaults applied when the corresponding preference fields are absent. The
// bed and price defaults are range defaults: they fill in only when neither
// bound was given.
const (
	defaultBedsMin  = 2
	defaultBedsMax  = 4
	defaultBathsMin = 2.0
	defaultPriceMin = 100000
	defaultPriceMax = 500000
	defaultSortBy   = 1
)

// BuildSearchURL maps preferences to the listing site's search path. Pure and
// deterministic: the same preferences always produce the identical string.
//
// Segment order is part of the site's path grammar and is fixed:
// {base}/{location}/type-{t}[/beds-..][/baths-..][/price-..]/sby-{n}
func BuildSearchURL(p models.Preferences, cfg config.SearchConfig) string {
	location := p.Location
	if location == "" {
		location = cfg.DefaultLocation
	}
	location = locationSlug(location)

	propertyType := p.PropertyType
	if propertyType == "" {
		propertyType = models.PropertySingleFamily
	}

	var b strings.Builder
	b.WriteString(cfg.BaseURL)
	b.WriteString("/")
	b.WriteString(location)
	b.WriteString("/type-")
	b.WriteString(propertyType.PathSlug())

	minBeds, maxBeds := p.MinBeds, p.MaxBeds
	if minBeds == nil && maxBeds == nil {
		minBeds, maxBeds = intPtr(defaultBedsMin), intPtr(defaultBedsMax)
	}
	b.WriteString(rangeSegment("beds", minBeds, maxBeds))

	minBaths := defaultBathsMin
	if p.MinBaths != nil {
		minBaths = *p.MinBaths
	}
	b.WriteString("/baths-")
	b.WriteString(strconv.FormatFloat(minBaths, 'f', -1, 64))

	minPrice, maxPrice := p.MinPrice, p.MaxPrice
	if minPrice == nil && maxPrice == nil {
		minPrice, maxPrice = intPtr(defaultPriceMin), intPtr(defaultPriceMax)
	}
	b.WriteString(rangeSegment("price", minPrice, maxPrice))

	sortBy := defaultSortBy
	if p.SortBy != nil {
		sortBy = *p.SortBy
	}
	b.WriteString(fmt.Sprintf("/sby-%d", sortBy))

	return b.String()
}

// locationSlug renders a location the way the site's path grammar expects:
// "Austin, TX" becomes "Austin_TX". Punctuation is dropped, whitespace runs
// collapse to single underscores, hyphens survive for hyphenated city names.
func locationSlug(location string) string {
	location = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '-' || r == '_' {
			return r
		}
		return -1
	}, location)
	return strings.Join(strings.Fields(location), "_")
}

// rangeSegment renders "/name-min-max" when both bounds are present and
// "/name-n" when only one is.
func rangeSegment(name string, lo, hi *int) string {
	switch {
	case lo != nil && hi != nil:
		return fmt.Sprintf("/%s-%d-%d", name, *lo, *hi)
	case lo != nil:
		return fmt.Sprintf("/%s-%d", name, *lo)
	case hi != nil:
		return fmt.Sprintf("/%s-%d", name, *hi)
	}
	return ""
}

func intPtr(v int) *int {
	return &v
}
