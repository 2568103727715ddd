package models

import "testing"

func TestPreferencesValidate(t *testing.T) {
	neg := -1
	negF := -0.5
	badSort := 6
	okSort := 3

	cases := []struct {
		name  string
		prefs Preferences
		ok    bool
	}{
		{"location only", Preferences{Location: "Austin, TX"}, true},
		{"missing location", Preferences{}, false},
		{"valid property type", Preferences{Location: "Austin, TX", PropertyType: PropertyCondo}, true},
		{"unknown property type", Preferences{Location: "Austin, TX", PropertyType: "castle"}, false},
		{"negative price", Preferences{Location: "Austin, TX", MinPrice: &neg}, false},
		{"negative baths", Preferences{Location: "Austin, TX", MinBaths: &negF}, false},
		{"sort in range", Preferences{Location: "Austin, TX", SortBy: &okSort}, true},
		{"sort out of range", Preferences{Location: "Austin, TX", SortBy: &badSort}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.prefs.Validate()
			if tc.ok && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestPropertyTypePathSlug(t *testing.T) {
	cases := map[PropertyType]string{
		PropertySingleFamily: "single-family-home",
		PropertyCondo:        "condo",
		PropertyTownhome:     "townhome",
		PropertyMultiFamily:  "multi-family-home",
		PropertyManufactured: "mfd-mobile-home",
		PropertyLand:         "land",
		PropertyFarm:         "farms-ranches",
	}
	for typ, want := range cases {
		if got := typ.PathSlug(); got != want {
			t.Fatalf("PathSlug(%s) = %s, want %s", typ, got, want)
		}
	}
}
