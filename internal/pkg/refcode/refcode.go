// Package refcode generates and parses booking reference tokens.
//
// A reference is 10 characters: a 6-digit yymmdd date prefix followed by a
// 4-character base-32 code packing the wall-clock time (hhmmss as one
// integer). The alphabet drops the ambiguous glyphs 0, O, 1 and I so the
// token survives being read over the phone.
package refcode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Alphabet is A-Z minus I and O, then the digits 2-9. 32 glyphs.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	refLen        = 10
	datePrefixLen = 6

	// legacy formats still in circulation
	legacyShortLen = 6 // yymmdd, no time code
	legacyMidLen   = 8 // ymmdd + 3-char time code, 2010s convention
)

var ErrInvalidReference = errors.New("invalid booking reference")

// Generate returns the reference for the given instant. Two calls collide
// only within the same calendar second, which is acceptable for references
// minted on user-triggered submissions.
func Generate(now time.Time) string {
	packed := now.Hour()*10000 + now.Minute()*100 + now.Second()
	return fmt.Sprintf("%02d%02d%02d%s",
		now.Year()%100, int(now.Month()), now.Day(), encodeBase32(packed, 4))
}

func encodeBase32(n, width int) string {
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = Alphabet[n%32]
		n /= 32
	}
	return string(buf)
}

// Parse recovers the creation date from a reference. The time-of-day portion
// is not recoverable by design. Besides the current 10-character format two
// legacy shapes are accepted: an 8-character one with a single year digit
// (2010s) and a bare 6-character date prefix. Anything else fails with
// ErrInvalidReference rather than guessing.
func Parse(ref string) (time.Time, error) {
	// only the display form's single separator after the date prefix is
	// tolerated; a dash anywhere else is malformed input
	if i := strings.IndexByte(ref, '-'); i >= 0 {
		if i != datePrefixLen || strings.Contains(ref[i+1:], "-") {
			return time.Time{}, ErrInvalidReference
		}
		ref = ref[:i] + ref[i+1:]
	}

	var yearDigits, century int
	switch len(ref) {
	case refLen, legacyShortLen:
		yearDigits, century = 2, 2000
	case legacyMidLen:
		yearDigits, century = 1, 2010
	default:
		return time.Time{}, ErrInvalidReference
	}

	datePart := ref[:yearDigits+4]
	for _, r := range datePart {
		if r < '0' || r > '9' {
			return time.Time{}, ErrInvalidReference
		}
	}
	year, _ := strconv.Atoi(datePart[:yearDigits])
	month, _ := strconv.Atoi(datePart[yearDigits : yearDigits+2])
	day, _ := strconv.Atoi(datePart[yearDigits+2:])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, ErrInvalidReference
	}
	if !validTimeCode(ref[yearDigits+4:]) {
		return time.Time{}, ErrInvalidReference
	}

	return time.Date(century+year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

func validTimeCode(code string) bool {
	for _, r := range code {
		if !strings.ContainsRune(Alphabet, r) {
			return false
		}
	}
	return true
}

// Format inserts a separator between the date prefix and the time code for
// display. Purely cosmetic: stripping the separator yields the original
// token.
func Format(ref string) string {
	if len(ref) != refLen {
		return ref
	}
	return ref[:datePrefixLen] + "-" + ref[datePrefixLen:]
}
