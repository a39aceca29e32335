package tags

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// dict is the static element table (§4.3), keyed by canonical lowercase
// name. It is populated once at init time and never mutated afterward, so
// concurrent lookups from multiple goroutines parsing independent documents
// (§5) are safe without locking.
var dict = map[string]*TagDef{}

// byAtom mirrors dict for every entry golang.org/x/net/html/atom interns,
// keyed by its atom.Atom rather than by string. atom.Atom values are
// pre-hashed uint32s, so a lookup through this table skips the string-keyed
// probe into dict entirely for any name the WHATWG atom table knows — which
// covers the great majority of real-world markup (div, p, a, span, table...).
// Tidy-specific/obsolete names atom doesn't carry (rbc, layer, server,
// ...) have no atom and are only ever found via dict.
var byAtom = map[atom.Atom]*TagDef{}

func def(name string, model ContentModel, vers Version, p ParserRoutine) {
	d := &TagDef{Name: name, Model: model, Vers: vers, Parser: p}
	dict[name] = d
	if a := atom.Lookup([]byte(name)); a != 0 {
		byAtom[a] = d
	}
}

func init() {
	def("html", CMHTML|CMOmitST, VersAll, ParseHTML)
	def("head", CMHTML|CMOpt|CMOmitST, VersAll, ParseHead)
	def("title", CMHead, VersAll, ParseTitle)
	def("base", CMHead|CMEmpty, VersAll, ParseEmpty)
	def("link", CMHead|CMEmpty, VersAll, ParseEmpty)
	def("meta", CMHead|CMEmpty, VersAll, ParseEmpty)
	def("style", CMHead, VersFrom32, ParseScript)
	def("script", CMHead|CMBlock|CMInline|CMMixed, VersFrom32, ParseScript)
	def("noscript", CMBlock, VersHTML40Loose|VersFrameset|VersXHTML11, ParseBlock)
	def("body", CMHTML|CMOmitST, VersAll, ParseBody)

	def("frameset", CMHTML, VersFrameset, ParseBlock)
	def("frame", CMEmpty, VersFrameset, ParseEmpty)
	def("noframes", CMBlock, VersIFrame, ParseBlock)
	def("iframe", CMBlock, VersIFrame, ParseBlock)

	def("div", CMBlock, VersFrom32, ParseBlock)
	def("p", CMBlock|CMOmitST, VersAll, ParseInline)
	def("h1", CMBlock|CMHeading, VersAll, ParseInline)
	def("h2", CMBlock|CMHeading, VersAll, ParseInline)
	def("h3", CMBlock|CMHeading, VersAll, ParseInline)
	def("h4", CMBlock|CMHeading, VersAll, ParseInline)
	def("h5", CMBlock|CMHeading, VersAll, ParseInline)
	def("h6", CMBlock|CMHeading, VersAll, ParseInline)
	def("blockquote", CMBlock, VersAll, ParseBlock)
	def("address", CMBlock, VersAll, ParseInline)
	def("pre", CMBlock|CMNoIndent, VersAll, ParsePre)
	def("center", CMBlock, VersLoose|VersProprietary, ParseBlock)
	def("hr", CMBlock|CMEmpty, VersFrom32, ParseEmpty)

	def("ul", CMBlock|CMList, VersAll, ParseList)
	def("ol", CMBlock|CMList, VersAll, ParseList)
	def("li", CMList|CMOpt|CMOmitST, VersAll, ParseInline)
	def("dir", CMBlock|CMList|CMObsolete, VersLoose, ParseList)
	def("menu", CMBlock|CMList|CMObsolete, VersLoose, ParseList)
	def("dl", CMBlock|CMDefList, VersAll, ParseDefList)
	def("dt", CMDefList|CMOpt|CMOmitST, VersAll, ParseInline)
	def("dd", CMDefList|CMOpt|CMOmitST, VersAll, ParseInline)

	def("table", CMBlock, VersFrom32, ParseTable)
	def("caption", CMTable, VersFrom32, ParseInline)
	def("colgroup", CMTable|CMOpt, VersHTML40, ParseRowGroup)
	def("col", CMTable|CMEmpty, VersHTML40, ParseEmpty)
	def("thead", CMRowGrp|CMOpt, VersHTML40, ParseRowGroup)
	def("tfoot", CMRowGrp|CMOpt, VersHTML40, ParseRowGroup)
	def("tbody", CMRowGrp|CMOpt|CMOmitST, VersHTML40, ParseRowGroup)
	def("tr", CMTable|CMOpt|CMOmitST, VersFrom32, ParseRow)
	def("th", CMRow|CMOpt|CMOmitST, VersFrom32, ParseCell)
	def("td", CMRow|CMOpt|CMOmitST, VersFrom32, ParseCell)

	def("form", CMBlock, VersAll, ParseBlock)
	def("fieldset", CMBlock, VersHTML40, ParseBlock)
	def("legend", CMInline, VersHTML40, ParseInline)
	def("label", CMInline, VersHTML40, ParseInline)
	def("input", CMInline|CMEmpty|CMImg, VersAll, ParseEmpty)
	def("button", CMInline, VersHTML40, ParseInline)
	def("select", CMInline|CMField, VersFrom32, ParseSelect)
	def("optgroup", CMField|CMOpt, VersHTML40, ParseOptGroup)
	def("option", CMField|CMOpt|CMOmitST, VersFrom32, ParseInline)
	def("textarea", CMInline|CMField, VersFrom32, ParseInline)
	def("isindex", CMBlock|CMEmpty|CMObsolete, VersLoose, ParseEmpty)

	def("a", CMInline, VersAll, ParseInline)
	def("img", CMInline|CMEmpty|CMImg, VersAll, ParseEmpty)
	def("br", CMInline|CMEmpty, VersAll, ParseEmpty)
	def("object", CMObject|CMHead|CMImg|CMInline|CMParam, VersHTML40, ParseBlock)
	def("applet", CMObject|CMImg|CMInline|CMParam|CMObsolete, VersLoose|VersProprietary, ParseBlock)
	def("param", CMInline|CMEmpty, VersFrom32, ParseEmpty)
	def("map", CMInline, VersFrom32, ParseBlock)
	def("area", CMBlock|CMEmpty, VersFrom32, ParseEmpty)

	def("b", CMInline, VersAll, ParseInline)
	def("i", CMInline, VersAll, ParseInline)
	def("u", CMInline|CMObsolete, VersLoose|VersProprietary, ParseInline)
	def("s", CMInline|CMObsolete, VersLoose|VersProprietary, ParseInline)
	def("strike", CMInline|CMObsolete, VersLoose, ParseInline)
	def("big", CMInline, VersFrom32, ParseInline)
	def("small", CMInline, VersFrom32, ParseInline)
	def("sub", CMInline, VersHTML40, ParseInline)
	def("sup", CMInline, VersHTML40, ParseInline)
	def("tt", CMInline, VersAll, ParseInline)
	def("em", CMInline, VersAll, ParseInline)
	def("strong", CMInline, VersAll, ParseInline)
	def("dfn", CMInline, VersFrom32, ParseInline)
	def("code", CMInline, VersAll, ParseInline)
	def("samp", CMInline, VersAll, ParseInline)
	def("kbd", CMInline, VersAll, ParseInline)
	def("var", CMInline, VersAll, ParseInline)
	def("cite", CMInline, VersAll, ParseInline)
	def("abbr", CMInline, VersHTML40, ParseInline)
	def("acronym", CMInline, VersHTML40, ParseInline)
	def("q", CMInline, VersHTML40, ParseInline)
	def("ins", CMInline|CMBlock|CMMixed, VersHTML40, ParseInline)
	def("del", CMInline|CMBlock|CMMixed, VersHTML40, ParseInline)
	def("span", CMInline, VersFrom32, ParseInline)
	def("bdo", CMInline, VersHTML40, ParseInline)
	def("font", CMInline|CMObsolete, VersLoose|VersProprietary, ParseInline)
	def("basefont", CMInline|CMEmpty|CMObsolete, VersLoose|VersProprietary, ParseEmpty)
	def("nobr", CMInline|CMObsolete, VersProprietary, ParseInline)
	def("wbr", CMInline|CMEmpty|CMObsolete, VersProprietary, ParseEmpty)
	def("marquee", CMInline|CMObsolete, VersProprietary, ParseInline)
	def("blink", CMInline|CMObsolete, VersProprietary, ParseInline)
	def("embed", CMInline|CMObsolete|CMImg, VersProprietary, ParseEmpty)
	def("noembed", CMInline|CMObsolete, VersProprietary, ParseInline)
	def("layer", CMBlock|CMObsolete, VersProprietary, ParseBlock)
	def("spacer", CMInline|CMEmpty|CMObsolete, VersProprietary, ParseEmpty)
	def("comment", CMInline|CMObsolete, VersMicrosoft, ParseInline)
	def("server", CMInline|CMObsolete, VersMicrosoft, ParseInline)
	def("xmp", CMBlock|CMObsolete|CMNoIndent, VersAll, ParsePre)
	def("listing", CMBlock|CMObsolete|CMNoIndent, VersAll, ParsePre)
	def("plaintext", CMBlock|CMObsolete|CMNoIndent|CMOmitST, VersAll, ParsePre)
	def("ruby", CMInline, VersXHTML11, ParseInline)
	def("rbc", CMInline, VersXHTML11, ParseInline)
	def("rtc", CMInline, VersXHTML11, ParseInline)
	def("rb", CMInline|CMOpt, VersXHTML11, ParseInline)
	def("rt", CMInline|CMOpt, VersXHTML11, ParseInline)
	def("rp", CMInline|CMOpt, VersXHTML11, ParseInline)
}

// Lookup returns the dictionary entry for name, trying golang.org/x/net's
// atom table first (a static perfect-hash interning table shared with the
// standard-library-adjacent HTML tokenizer ecosystem): a known atom resolves
// through byAtom without ever probing the string-keyed dict map. Only names
// atom.Lookup doesn't intern (rbc, layer, server, ...) fall back to the
// plain map lookup.
func Lookup(name string) (*TagDef, bool) {
	lower := strings.ToLower(name)
	if a := atom.Lookup([]byte(lower)); a != 0 {
		if d, ok := byAtom[a]; ok {
			return d, true
		}
	}
	d, ok := dict[lower]
	return d, ok
}

// IsKnown reports whether name has a dictionary entry.
func IsKnown(name string) bool {
	_, ok := Lookup(name)
	return ok
}
