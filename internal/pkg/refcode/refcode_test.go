package refcode

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Shape(t *testing.T) {
	instants := []time.Time{
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2031, 12, 24, 9, 5, 30, 0, time.UTC),
	}

	for _, ts := range instants {
		ref := Generate(ts)
		require.Len(t, ref, 10)

		for _, r := range ref[:6] {
			assert.True(t, r >= '0' && r <= '9', "date prefix must be decimal: %s", ref)
		}
		for _, r := range ref[6:] {
			assert.True(t, strings.ContainsRune(Alphabet, r), "time code outside alphabet: %s", ref)
		}
		assert.NotContains(t, ref[6:], "0")
		assert.NotContains(t, ref[6:], "O")
		assert.NotContains(t, ref[6:], "1")
		assert.NotContains(t, ref[6:], "I")
	}
}

func TestGenerate_DatePrefix(t *testing.T) {
	ref := Generate(time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC))
	assert.Equal(t, "260831", ref[:6])
}

func TestGenerate_TimeCode(t *testing.T) {
	// midnight packs to 0, encoded as four copies of the zero glyph
	ref := Generate(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "AAAA", ref[6:])

	// 23:59:59 -> 235959, the largest packed value
	ref = Generate(time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, "HGPZ", ref[6:])
}

func TestParse_RoundTrip(t *testing.T) {
	instants := []time.Time{
		time.Date(2025, 2, 28, 16, 45, 12, 0, time.UTC),
		time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2020, 1, 1, 0, 0, 1, 0, time.UTC),
	}

	for _, ts := range instants {
		day, err := Parse(Generate(ts))
		require.NoError(t, err)
		assert.Equal(t, ts.Year(), day.Year())
		assert.Equal(t, ts.Month(), day.Month())
		assert.Equal(t, ts.Day(), day.Day())
	}
}

func TestParse_LegacyFormats(t *testing.T) {
	// 6-char: bare date prefix, 2000s century
	day, err := Parse("190324")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2019, 3, 24, 0, 0, 0, 0, time.UTC), day)

	// 8-char: single year digit, 2010s convention
	day, err = Parse("71105BCD")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2017, 11, 5, 0, 0, 0, 0, time.UTC), day)
}

func TestParse_FormattedInput(t *testing.T) {
	ref := Generate(time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC))
	day, err := Parse(Format(ref))
	require.NoError(t, err)
	assert.Equal(t, 2026, day.Year())
}

func TestParse_Invalid(t *testing.T) {
	cases := []string{
		"",
		"1234",         // unrecognized length
		"12345678901",  // too long
		"26133100AA",   // month 13
		"26089900AA",   // day 99
		"2608310OAA",   // O not in alphabet
		"ABCDEFAAAA",   // date prefix not decimal
		"+50831AAAA",   // sign is not a digit
		"2-60-831EMW7", // separators in arbitrary positions
		"260-831EMW7",  // separator off the display position
		"260831-EM-W7", // second separator
	}

	for _, c := range cases {
		_, err := Parse(c)
		assert.ErrorIs(t, err, ErrInvalidReference, "input %q", c)
	}
}

func TestFormat_Reversible(t *testing.T) {
	ref := Generate(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC))
	formatted := Format(ref)

	assert.Equal(t, ref[:6]+"-"+ref[6:], formatted)
	assert.Equal(t, ref, strings.ReplaceAll(formatted, "-", ""))
}

func TestFormat_LeavesOddLengthsAlone(t *testing.T) {
	assert.Equal(t, "190324", Format("190324"))
}
