package identity

import (
	"testing"
	"time"
)

func TestNormalizeAddress(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"1203 Barton Hills Drive, Austin, TX 78704", "1203 barton hills dr austin tx 78704"},
		{"  45 North Oak Avenue  ", "45 n oak ave"},
		{"45 N Oak Ave", "45 n oak ave"},
		{"Apt. #3, 9 Elm St", "apt 3 9 elm st"},
	}

	for _, tc := range cases {
		if got := NormalizeAddress(tc.in); got != tc.want {
			t.Fatalf("NormalizeAddress(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRecordID_VariantAddressesCollide(t *testing.T) {
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	price := 450000

	a := RecordID("1203 Barton Hills Drive, Austin, TX", &price, at)
	b := RecordID("1203 barton hills dr austin tx", &price, at)
	if a != b {
		t.Fatalf("address variants should share an id: %s vs %s", a, b)
	}
}

func TestRecordID_MissingFields(t *testing.T) {
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	price := 450000

	withAll := RecordID("9 Elm St", &price, at)
	noPrice := RecordID("9 Elm St", nil, at)
	noAddr := RecordID("", &price, at)

	if withAll == noPrice || withAll == noAddr || noPrice == noAddr {
		t.Fatalf("missing fields must still yield distinct ids: %s %s %s", withAll, noPrice, noAddr)
	}
	if len(withAll) != 32 {
		t.Fatalf("expected 32 hex chars, got %d", len(withAll))
	}
}
