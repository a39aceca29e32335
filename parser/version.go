package parser

import (
	"github.com/htmltidy/gotidy/diag"
	"github.com/htmltidy/gotidy/tags"
	"github.com/htmltidy/gotidy/tree"
)

// NodeCompliance narrows the parser's possible-versions set to those the
// element itself is legal in (SPEC_FULL §3.4, clean.c's NodeCompliance).
func (p *Parser) NodeCompliance(n *tree.Node) {
	if !n.IsElement() {
		return
	}
	def, known := tags.Lookup(n.ElementName)
	if !known {
		return
	}
	p.narrowVersion(n, def.Vers)
}

// AttrCompliance narrows the possible-versions set to those in which every
// attribute present on n is legal, reporting PROPRIETARY_ATTRIBUTE for
// attributes the dictionary doesn't recognize in any dialect at all
// (SPEC_FULL §3.4, clean.c's AttrCompliance).
func (p *Parser) AttrCompliance(n *tree.Node) {
	if !n.IsElement() {
		return
	}
	for _, a := range n.Attributes {
		if a.IsPlaceholder() {
			continue
		}
		ad, known := tags.LookupAttr(a.Name)
		if !known {
			p.report(n, diag.ProprietaryAttribute, a.Name)
			continue
		}
		if ad.Vers != 0 {
			p.narrowVersion(n, ad.Vers)
		}
	}
}

// HTMLVersionCompliance runs NodeCompliance and AttrCompliance over the
// whole tree, the combined pass clean.c runs once parsing is complete
// (SPEC_FULL §3.4).
func (p *Parser) HTMLVersionCompliance(root *tree.Node) {
	var walk func(*tree.Node)
	walk = func(n *tree.Node) {
		p.NodeCompliance(n)
		p.AttrCompliance(n)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
}

// DetectedVersion returns the set of HTML dialects (a Version bitmask)
// still consistent with every element and attribute seen so far.
func (p *Parser) DetectedVersion() tags.Version { return p.versionsPossible }
