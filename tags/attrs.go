package tags

import "strings"

// AttrType classifies the value grammar of an attribute (§4.3's "type"
// field: CDATA free text vs. an enumerated/identifier/URL/script grammar
// that the cleanup and compliance passes special-case).
type AttrType int

const (
	AttrCDATA AttrType = iota
	AttrID
	AttrName
	AttrIDREF
	AttrIDREFS
	AttrURL
	AttrScript
	AttrAlign
	AttrBool
	AttrNumber
	AttrColor
	AttrCharset
	AttrLang
)

// AttrDef is one static dictionary entry for an attribute name (§4.3).
type AttrDef struct {
	Name string
	Type AttrType
	Vers Version
}

var attrDict = map[string]*AttrDef{}

func attrDef(name string, t AttrType, vers Version) {
	attrDict[name] = &AttrDef{Name: name, Type: t, Vers: vers}
}

func init() {
	attrDef("id", AttrID, VersFrom32)
	attrDef("class", AttrCDATA, VersFrom32)
	attrDef("style", AttrCDATA, VersFrom32)
	attrDef("title", AttrCDATA, VersFrom32)
	attrDef("lang", AttrLang, VersFrom40)
	attrDef("xml:lang", AttrLang, VersXML)
	attrDef("dir", AttrCDATA, VersFrom40)

	attrDef("href", AttrURL, VersAll)
	attrDef("src", AttrURL, VersAll)
	attrDef("action", AttrURL, VersAll)
	attrDef("cite", AttrURL, VersHTML40)
	attrDef("longdesc", AttrURL, VersHTML40)
	attrDef("usemap", AttrURL, VersFrom32)
	attrDef("background", AttrURL, VersLoose|VersProprietary)
	attrDef("codebase", AttrURL, VersLoose)
	attrDef("data", AttrURL, VersHTML40)
	attrDef("profile", AttrURL, VersHTML40)

	attrDef("name", AttrName, VersAll)
	attrDef("for", AttrIDREF, VersHTML40)
	attrDef("headers", AttrIDREFS, VersHTML40)
	attrDef("accesskey", AttrCDATA, VersHTML40)
	attrDef("tabindex", AttrNumber, VersHTML40)

	attrDef("align", AttrAlign, VersLoose|VersProprietary)
	attrDef("valign", AttrAlign, VersLoose)
	attrDef("bgcolor", AttrColor, VersLoose|VersProprietary)
	attrDef("color", AttrColor, VersLoose|VersProprietary)
	attrDef("text", AttrColor, VersLoose)
	attrDef("link", AttrColor, VersLoose)
	attrDef("vlink", AttrColor, VersLoose)
	attrDef("alink", AttrColor, VersLoose)
	attrDef("width", AttrNumber, VersLoose|VersProprietary)
	attrDef("height", AttrNumber, VersLoose|VersProprietary)
	attrDef("border", AttrNumber, VersLoose|VersProprietary)
	attrDef("hspace", AttrNumber, VersProprietary)
	attrDef("vspace", AttrNumber, VersProprietary)
	attrDef("size", AttrNumber, VersLoose|VersProprietary)
	attrDef("face", AttrCDATA, VersLoose|VersProprietary)

	attrDef("disabled", AttrBool, VersHTML40)
	attrDef("readonly", AttrBool, VersHTML40)
	attrDef("checked", AttrBool, VersAll)
	attrDef("selected", AttrBool, VersAll)
	attrDef("multiple", AttrBool, VersAll)
	attrDef("noshade", AttrBool, VersLoose|VersProprietary)
	attrDef("nowrap", AttrBool, VersLoose|VersProprietary)
	attrDef("compact", AttrBool, VersLoose)
	attrDef("ismap", AttrBool, VersAll)
	attrDef("declare", AttrBool, VersHTML40)

	attrDef("type", AttrCDATA, VersAll)
	attrDef("value", AttrCDATA, VersAll)
	attrDef("alt", AttrCDATA, VersAll)
	attrDef("rel", AttrCDATA, VersFrom32)
	attrDef("rev", AttrCDATA, VersFrom32)
	attrDef("target", AttrCDATA, VersLoose|VersProprietary)
	attrDef("method", AttrCDATA, VersAll)
	attrDef("enctype", AttrCDATA, VersAll)
	attrDef("colspan", AttrNumber, VersFrom32)
	attrDef("rowspan", AttrNumber, VersFrom32)

	for _, n := range []string{
		"onclick", "ondblclick", "onmousedown", "onmouseup", "onmouseover",
		"onmousemove", "onmouseout", "onkeypress", "onkeydown", "onkeyup",
		"onload", "onunload", "onfocus", "onblur", "onsubmit", "onreset",
		"onselect", "onchange",
	} {
		attrDef(n, AttrScript, VersEvents)
	}

	attrDef("http-equiv", AttrCDATA, VersAll)
	attrDef("content", AttrCDATA, VersAll)
	attrDef("charset", AttrCharset, VersFrom40)
}

// LookupAttr returns the dictionary entry for an attribute name, or false
// if unknown (XML mode accepts unknown attribute names without lookup,
// per §4.3).
func LookupAttr(name string) (*AttrDef, bool) {
	d, ok := attrDict[strings.ToLower(name)]
	return d, ok
}
