package entities

import (
	"testing"
	"unicode"

	"github.com/htmltidy/gotidy/tags"
	"github.com/stretchr/testify/require"
)

func TestLookupCoreEntities(t *testing.T) {
	r, vers, ok := Lookup("amp")
	require.True(t, ok)
	require.Equal(t, '&', r)
	require.True(t, vers.Has(tags.VersAll))

	r, _, ok = Lookup("nbsp")
	require.True(t, ok)
	require.Equal(t, rune(0xA0), r)
}

func TestApostropheIsXMLOnly(t *testing.T) {
	_, vers, ok := Lookup("apos")
	require.True(t, ok)
	require.True(t, vers.Has(tags.VersXML))
	require.False(t, vers.Has(tags.VersHTML40Strict))
}

func TestLookupUnknownName(t *testing.T) {
	_, _, ok := Lookup("notarealentity")
	require.False(t, ok)
}

func TestParseNumericDecimalAndHex(t *testing.T) {
	require.Equal(t, rune('A'), ParseNumeric("65", false))
	require.Equal(t, rune('A'), ParseNumeric("41", true))
}

func TestParseNumericWindows1252Override(t *testing.T) {
	require.Equal(t, '…', ParseNumeric("133", false))
}

func TestParseNumericInvalidFallsBackToReplacement(t *testing.T) {
	require.Equal(t, unicode.ReplacementChar, ParseNumeric("not-a-number", false))
	require.Equal(t, unicode.ReplacementChar, ParseNumeric("55296", false)) // surrogate 0xD800
	require.Equal(t, unicode.ReplacementChar, ParseNumeric("2097152", false))
}

func TestEntityTableNotTrivial(t *testing.T) {
	require.Greater(t, Count(), 100)
}
