package tags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupKnownElement(t *testing.T) {
	d, ok := Lookup("DIV")
	require.True(t, ok)
	require.Equal(t, "div", d.Name)
	require.True(t, d.Model.Has(CMBlock))
}

func TestLookupObsoleteTidySpecific(t *testing.T) {
	d, ok := Lookup("font")
	require.True(t, ok)
	require.True(t, d.Model.Has(CMObsolete))
	require.True(t, d.Vers.Has(VersProprietary))
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("frobnicate")
	require.False(t, ok)
}

func TestEmptyElementsAreMarkedEmpty(t *testing.T) {
	for _, name := range []string{"br", "hr", "img", "input", "meta", "link", "area"} {
		d, ok := Lookup(name)
		require.True(t, ok, name)
		require.True(t, d.Model.Has(CMEmpty), name)
	}
}

func TestContentModelHasVsAny(t *testing.T) {
	m := CMBlock | CMHeading
	require.True(t, m.Has(CMBlock))
	require.True(t, m.Has(CMBlock|CMHeading))
	require.False(t, m.Has(CMBlock|CMInline))
	require.True(t, m.Any(CMBlock|CMInline))
}

func TestVersionDerivedMasks(t *testing.T) {
	require.Equal(t, VersNetscape|VersMicrosoft|VersSun, Version(VersProprietary))
	require.True(t, Version(VersHTML40).Has(VersHTML40Strict))
	require.True(t, Version(VersHTML40).Has(VersFrameset))
	require.False(t, Version(VersHTML40).Has(VersXHTML11))
}

func TestAttrLookup(t *testing.T) {
	d, ok := LookupAttr("HREF")
	require.True(t, ok)
	require.Equal(t, AttrURL, d.Type)

	_, ok = LookupAttr("data-custom")
	require.False(t, ok)
}

func TestEventAttrsAreScriptType(t *testing.T) {
	d, ok := LookupAttr("onclick")
	require.True(t, ok)
	require.Equal(t, AttrScript, d.Type)
}

func TestDoctypeStrings(t *testing.T) {
	strict := Doctypes[VersXHTML11|VersHTML40Strict]
	require.Equal(t, "-//W3C//DTD XHTML 1.0 Strict//EN", strict.Public)
	require.Contains(t, strict.System, "xhtml1-strict.dtd")
}
