package cleanup

import (
	"github.com/htmltidy/gotidy/diag"
	"github.com/htmltidy/gotidy/tags"
	"github.com/htmltidy/gotidy/tree"
)

// FixBrakes hoists a block element's trailing run of bare <br> elements out
// to become its following siblings instead, since a <br> right before a
// closing block tag is almost always the author compensating for a missing
// paragraph break rather than content that belongs inside the block
// (FixBrakes). The first such <br> found within one parent's own trailing
// run is discarded outright rather than hoisted, matching the C original's
// per-call bBRDeleted flag; every other trailing <br> after it is moved.
func (c *Cleaner) FixBrakes(parent *tree.Node) {
	if parent == nil {
		return
	}
	for child := parent.FirstChild; child != nil; child = child.NextSibling {
		c.FixBrakes(child)
	}

	def, known := tags.Lookup(parent.ElementName)
	if !known || !def.Model.Has(tags.CMBlock) {
		return
	}

	brDeleted := false
	for last := parent.LastChild; last != nil && last.ElementName == "br"; last = parent.LastChild {
		if len(last.Attributes) == 0 && !brDeleted {
			last.Remove()
			brDeleted = true
			continue
		}
		last.Remove()
		if parent.Parent != nil {
			parent.Parent.InsertAfter(last, parent)
		}
	}

	c.trimEmptyElement(parent)
}

// trimEmptyElement removes parent if it now has no content and its content
// model doesn't already allow that (TrimEmptyElement's effect as FixBrakes
// uses it — a block stripped down to nothing by the <br> hoist above).
func (c *Cleaner) trimEmptyElement(node *tree.Node) {
	if node.HasChildren() || node.Parent == nil {
		return
	}
	def, known := tags.Lookup(node.ElementName)
	if !known || def.Model.Has(tags.CMEmpty) {
		return
	}
	switch node.ElementName {
	case "html", "head", "body":
		return
	}
	c.report(node, diag.TrimEmptyElement, node.ElementName)
	node.Remove()
}
