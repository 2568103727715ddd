package models

import "fmt"

type PropertyType string

const (
	PropertySingleFamily PropertyType = "single-family"
	PropertyCondo        PropertyType = "condo"
	PropertyTownhome     PropertyType = "townhome"
	PropertyMultiFamily  PropertyType = "multi-family"
	PropertyManufactured PropertyType = "manufactured"
	PropertyLand         PropertyType = "land"
	PropertyFarm         PropertyType = "farm"
)

// PathSlug maps a property type to the search path token the listing site expects.
func (t PropertyType) PathSlug() string {
	switch t {
	case PropertyCondo:
		return "condo"
	case PropertyTownhome:
		return "townhome"
	case PropertyMultiFamily:
		return "multi-family-home"
	case PropertyManufactured:
		return "mfd-mobile-home"
	case PropertyLand:
		return "land"
	case PropertyFarm:
		return "farms-ranches"
	default:
		return "single-family-home"
	}
}

func (t PropertyType) Valid() bool {
	switch t {
	case PropertySingleFamily, PropertyCondo, PropertyTownhome, PropertyMultiFamily,
		PropertyManufactured, PropertyLand, PropertyFarm:
		return true
	}
	return false
}

// Preferences is the validated search input. Absent numeric fields mean
// "unconstrained"; present values must be non-negative.
type Preferences struct {
	Location        string       `json:"location"`
	PropertyType    PropertyType `json:"propertyType,omitempty"`
	MinBeds         *int         `json:"minBeds,omitempty"`
	MaxBeds         *int         `json:"maxBeds,omitempty"`
	MinBaths        *float64     `json:"minBaths,omitempty"`
	MaxBaths        *float64     `json:"maxBaths,omitempty"`
	MinPrice        *int         `json:"minPrice,omitempty"`
	MaxPrice        *int         `json:"maxPrice,omitempty"`
	Budget          *int         `json:"budget,omitempty"`
	PreferredBeds   *int         `json:"preferredBeds,omitempty"`
	PreferredBaths  *float64     `json:"preferredBaths,omitempty"`
	MinSqft         *int         `json:"minSqft,omitempty"`
	MaxSqft         *int         `json:"maxSqft,omitempty"`
	MaxDaysOnMarket *int         `json:"maxDaysOnMarket,omitempty"`
	SortBy          *int         `json:"sortBy,omitempty"`
}

// Validate enforces the boundary contract: location is required, the property
// type and sort enums must be in range, and every present numeric field must be
// non-negative. The pipeline itself never sees an invalid Preferences.
func (p *Preferences) Validate() error {
	if p.Location == "" {
		return fmt.Errorf("location is required")
	}
	if p.PropertyType != "" && !p.PropertyType.Valid() {
		return fmt.Errorf("invalid propertyType: %q", p.PropertyType)
	}
	if p.SortBy != nil && (*p.SortBy < 1 || *p.SortBy > 5) {
		return fmt.Errorf("sortBy must be between 1 and 5")
	}

	ints := map[string]*int{
		"minBeds":         p.MinBeds,
		"maxBeds":         p.MaxBeds,
		"minPrice":        p.MinPrice,
		"maxPrice":        p.MaxPrice,
		"budget":          p.Budget,
		"preferredBeds":   p.PreferredBeds,
		"minSqft":         p.MinSqft,
		"maxSqft":         p.MaxSqft,
		"maxDaysOnMarket": p.MaxDaysOnMarket,
	}
	for name, v := range ints {
		if v != nil && *v < 0 {
			return fmt.Errorf("%s must be non-negative", name)
		}
	}

	floats := map[string]*float64{
		"minBaths":       p.MinBaths,
		"maxBaths":       p.MaxBaths,
		"preferredBaths": p.PreferredBaths,
	}
	for name, v := range floats {
		if v != nil && *v < 0 {
			return fmt.Errorf("%s must be non-negative", name)
		}
	}

	return nil
}
