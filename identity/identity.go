package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Placeholders used when a record is missing the field the identifier is
// derived from.
const (
	UnknownAddress = "unknown-address"
	NoPrice        = "no-price"
)

var (
	streetReplacements = map[string]string{
		"street":    "st",
		"avenue":    "ave",
		"drive":     "dr",
		"road":      "rd",
		"boulevard": "blvd",
		"lane":      "ln",
		"court":     "ct",
		"place":     "pl",
		"circle":    "cir",
		"terrace":   "ter",
		"highway":   "hwy",
		"parkway":   "pkwy",
		"square":    "sq",
		"north":     "n",
		"south":     "s",
		"east":      "e",
		"west":      "w",
		"apartment": "apt",
		"suite":     "ste",
		"unit":      "unit",
	}
	multiSpaceRegex = regexp.MustCompile(`\s+`)
	nonAlnumRegex   = regexp.MustCompile(`[^a-z0-9\s]`)
)

// RecordID derives a record identifier from the address, the normalized price
// and the capture time. Stable for a given record within one run; collisions
// across runs are acceptable.
func RecordID(address string, price *int, capturedAt time.Time) string {
	addrPart := UnknownAddress
	if address != "" {
		addrPart = NormalizeAddress(address)
	}

	pricePart := NoPrice
	if price != nil {
		pricePart = strconv.Itoa(*price)
	}

	input := fmt.Sprintf("%s|%s|%d", addrPart, pricePart, capturedAt.Unix())
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:16])
}

func NormalizeAddress(addr string) string {
	addr = strings.ToLower(strings.TrimSpace(addr))
	addr = nonAlnumRegex.ReplaceAllString(addr, " ")
	for full, abbrev := range streetReplacements {
		addr = strings.ReplaceAll(addr, full, abbrev)
	}
	addr = multiSpaceRegex.ReplaceAllString(addr, " ")
	return strings.TrimSpace(addr)
}
