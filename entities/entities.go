// Package entities is the named/numeric character reference resolver
// (C5): a static table of HTML named entities plus direct parsing of
// decimal and hexadecimal numeric references.
package entities

import (
	"sort"

	"github.com/htmltidy/gotidy/tags"
)

// Entry is one named-entity dictionary record.
type Entry struct {
	Name string
	Code rune
	Vers tags.Version
}

var dict = map[string]Entry{}

func add(name string, code rune, vers tags.Version) {
	dict[name] = Entry{Name: name, Code: code, Vers: vers}
}

func init() {
	// Core SGML/XML entities, legal everywhere.
	add("amp", '&', tags.VersAll|tags.VersXML)
	add("lt", '<', tags.VersAll|tags.VersXML)
	add("gt", '>', tags.VersAll|tags.VersXML)
	add("quot", '"', tags.VersAll|tags.VersXML)
	// apos is XML/XHTML only; the lexer still decodes it outside XML/XHTML
	// modes but reports APOS_UNDEFINED there.
	add("apos", '\'', tags.VersXML|tags.VersXHTML11)

	// Latin-1 supplement (HTML 2.0+).
	add("nbsp", ' ', tags.VersAll)
	add("iexcl", '¡', tags.VersAll)
	add("cent", '¢', tags.VersAll)
	add("pound", '£', tags.VersAll)
	add("curren", '¤', tags.VersAll)
	add("yen", '¥', tags.VersAll)
	add("brvbar", '¦', tags.VersAll)
	add("sect", '§', tags.VersAll)
	add("uml", '¨', tags.VersAll)
	add("copy", '©', tags.VersAll)
	add("ordf", 'ª', tags.VersAll)
	add("laquo", '«', tags.VersAll)
	add("not", '¬', tags.VersAll)
	add("shy", '­', tags.VersAll)
	add("reg", '®', tags.VersAll)
	add("macr", '¯', tags.VersAll)
	add("deg", '°', tags.VersAll)
	add("plusmn", '±', tags.VersAll)
	add("sup2", '²', tags.VersAll)
	add("sup3", '³', tags.VersAll)
	add("acute", '´', tags.VersAll)
	add("micro", 'µ', tags.VersAll)
	add("para", '¶', tags.VersAll)
	add("middot", '·', tags.VersAll)
	add("cedil", '¸', tags.VersAll)
	add("sup1", '¹', tags.VersAll)
	add("ordm", 'º', tags.VersAll)
	add("raquo", '»', tags.VersAll)
	add("frac14", '¼', tags.VersAll)
	add("frac12", '½', tags.VersAll)
	add("frac34", '¾', tags.VersAll)
	add("iquest", '¿', tags.VersAll)

	for i, name := range []string{
		"Agrave", "Aacute", "Acirc", "Atilde", "Auml", "Aring", "AElig",
		"Ccedil", "Egrave", "Eacute", "Ecirc", "Euml", "Igrave", "Iacute",
		"Icirc", "Iuml", "ETH", "Ntilde", "Ograve", "Oacute", "Ocirc",
		"Otilde", "Ouml",
	} {
		add(name, rune(0x00C0+i), tags.VersAll)
	}
	add("times", '×', tags.VersAll)
	for i, name := range []string{
		"Oslash", "Ugrave", "Uacute", "Ucirc", "Uuml", "Yacute", "THORN",
		"szlig", "agrave", "aacute", "acirc", "atilde", "auml", "aring",
		"aelig", "ccedil", "egrave", "eacute", "ecirc", "euml", "igrave",
		"iacute", "icirc", "iuml", "eth", "ntilde", "ograve", "oacute",
		"ocirc", "otilde", "ouml",
	} {
		add(name, rune(0x00D8+i), tags.VersAll)
	}
	add("divide", '÷', tags.VersAll)
	for i, name := range []string{
		"oslash", "ugrave", "uacute", "ucirc", "uuml", "yacute", "thorn",
		"yuml",
	} {
		add(name, rune(0x00F8+i), tags.VersAll)
	}

	// HTML 4 extended entities (symbols, math, Greek, markup), version
	// gated to Loose/Strict 4.0 and XHTML per §4.5.
	ext := tags.VersHTML40 | tags.VersXHTML11
	greek := map[string]rune{
		"alpha": 'α', "beta": 'β', "gamma": 'γ', "delta": 'δ',
		"epsilon": 'ε', "zeta": 'ζ', "eta": 'η', "theta": 'θ',
		"iota": 'ι', "kappa": 'κ', "lambda": 'λ', "mu": 'μ',
		"nu": 'ν', "xi": 'ξ', "omicron": 'ο', "pi": 'π',
		"rho": 'ρ', "sigma": 'σ', "tau": 'τ', "upsilon": 'υ',
		"phi": 'φ', "chi": 'χ', "psi": 'ψ', "omega": 'ω',
		"Alpha": 'Α', "Beta": 'Β', "Gamma": 'Γ', "Delta": 'Δ',
		"Omega": 'Ω', "Sigma": 'Σ', "Pi": 'Π', "Theta": 'Θ',
	}
	for name, code := range greek {
		add(name, code, ext)
	}
	math := map[string]rune{
		"forall": '∀', "part": '∂', "exist": '∃', "empty": '∅',
		"nabla": '∇', "isin": '∈', "notin": '∉', "ni": '∋',
		"prod": '∏', "sum": '∑', "minus": '−', "lowast": '∗',
		"radic": '√', "prop": '∝', "infin": '∞', "ang": '∠',
		"and": '∧', "or": '∨', "cap": '∩', "cup": '∪',
		"int": '∫', "there4": '∴', "sim": '∼', "cong": '≅',
		"asymp": '≈', "ne": '≠', "equiv": '≡', "le": '≤',
		"ge": '≥', "sub": '⊂', "sup": '⊃', "nsub": '⊄',
		"sube": '⊆', "supe": '⊇', "oplus": '⊕', "otimes": '⊗',
		"perp": '⊥', "sdot": '⋅',
	}
	for name, code := range math {
		add(name, code, ext)
	}
	markup := map[string]rune{
		"OElig": 'Œ', "oelig": 'œ', "Scaron": 'Š', "scaron": 'š',
		"Yuml": 'Ÿ', "fnof": 'ƒ', "circ": 'ˆ', "tilde": '˜',
		"ensp": ' ', "emsp": ' ', "thinsp": ' ', "zwnj": '‌',
		"zwj": '‍', "lrm": '‎', "rlm": '‏', "ndash": '–',
		"mdash": '—', "lsquo": '‘', "rsquo": '’', "sbquo": '‚',
		"ldquo": '“', "rdquo": '”', "bdquo": '„', "dagger": '†',
		"Dagger": '‡', "bull": '•', "hellip": '…', "permil": '‰',
		"prime": '′', "Prime": '″', "lsaquo": '‹', "rsaquo": '›',
		"oline": '‾', "euro": '€', "trade": '™', "larr": '←',
		"uarr": '↑', "rarr": '→', "darr": '↓', "harr": '↔',
		"crarr": '↵', "lceil": '⌈', "rceil": '⌉', "lfloor": '⌊',
		"rfloor": '⌋', "loz": '◊', "spades": '♠', "clubs": '♣',
		"hearts": '♥', "diams": '♦',
	}
	for name, code := range markup {
		add(name, code, ext)
	}
}

// Lookup resolves a named entity (without the leading & or trailing ;) to
// its code point and version mask. ok is false for unknown names.
func Lookup(name string) (r rune, vers tags.Version, ok bool) {
	e, found := dict[name]
	if !found {
		return 0, 0, false
	}
	return e.Code, e.Vers, true
}

// Count reports how many named entities the dictionary holds; used by
// tests to sanity-check the table wasn't accidentally truncated.
func Count() int { return len(dict) }

// byCode is the reverse index from code point to entity name, built lazily
// on first use by the pretty-printer (EntityName) when it needs to name an
// output character instead of falling back to a numeric reference. Several
// names can map to the same code point; the name that sorts first
// alphabetically wins, so the same name is chosen on every run.
var byCode map[rune]Entry

func buildReverseIndex() {
	byCode = make(map[rune]Entry, len(dict))
	for _, name := range sortedNames() {
		e := dict[name]
		if _, exists := byCode[e.Code]; !exists {
			byCode[e.Code] = e
		}
	}
}

// sortedNames returns dict's keys in a fixed order so buildReverseIndex's
// first-in-sorted-order rule is deterministic across runs.
func sortedNames() []string {
	names := make([]string, 0, len(dict))
	for name := range dict {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NameFor resolves a code point back to a named entity legal in vers,
// without its leading & or trailing ;. ok is false when no name in the
// table both encodes r and is permitted by vers (EntityName).
func NameFor(r rune, vers tags.Version) (name string, ok bool) {
	if byCode == nil {
		buildReverseIndex()
	}
	e, found := byCode[r]
	if !found || !e.Vers.Has(vers) {
		return "", false
	}
	return e.Name, true
}
