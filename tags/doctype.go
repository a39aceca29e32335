package tags

// DoctypeStrings holds the PUBLIC/SYSTEM identifiers Tidy writes for an
// auto-assigned XHTML DOCTYPE (§6).
type DoctypeStrings struct {
	Public string
	System string
}

// XHTMLNamespace is the namespace URI written on the root <html> element
// of XHTML output (§6).
const XHTMLNamespace = "http://www.w3.org/1999/xhtml"

// Doctypes maps an inferred Version to the exact identifiers §6 requires.
// Only the three combinations Tidy can auto-assign for XHTML output are
// listed; the plain HTML 4.01 identifiers are in HTML401Doctypes below.
var Doctypes = map[Version]DoctypeStrings{
	VersXHTML11 | VersHTML40Strict: {
		Public: "-//W3C//DTD XHTML 1.0 Strict//EN",
		System: "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd",
	},
	VersXHTML11 | VersHTML40Loose: {
		Public: "-//W3C//DTD XHTML 1.0 Transitional//EN",
		System: "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd",
	},
	VersXHTML11 | VersFrameset: {
		Public: "-//W3C//DTD XHTML 1.0 Frameset//EN",
		System: "http://www.w3.org/TR/xhtml1/DTD/xhtml1-frameset.dtd",
	},
}

// HTML401Doctypes mirrors the same three dialects for plain (non-XML)
// HTML 4.01 output.
var HTML401Doctypes = map[Version]DoctypeStrings{
	VersHTML40Strict: {
		Public: "-//W3C//DTD HTML 4.01//EN",
		System: "http://www.w3.org/TR/html4/strict.dtd",
	},
	VersHTML40Loose: {
		Public: "-//W3C//DTD HTML 4.01 Transitional//EN",
		System: "http://www.w3.org/TR/html4/loose.dtd",
	},
	VersFrameset: {
		Public: "-//W3C//DTD HTML 4.01 Frameset//EN",
		System: "http://www.w3.org/TR/html4/frameset.dtd",
	},
}
