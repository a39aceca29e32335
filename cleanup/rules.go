package cleanup

import (
	"github.com/htmltidy/gotidy/tags"
	"github.com/htmltidy/gotidy/tree"
)

// dir2Div coerces <dir>/<ul>/<ol> whose only content is a single implicit
// <li> into a plain indented <div>, the pattern left behind by authors who
// used a list purely to indent a paragraph (Dir2Div).
func dir2Div(node *tree.Node) bool {
	switch node.ElementName {
	case "dir", "ul", "ol":
	default:
		return false
	}
	child := node.FirstChild
	if child == nil || child.NextSibling != nil {
		return false
	}
	if child.ElementName != "li" || !child.Implicit {
		return false
	}
	node.ElementName = "div"
	addStyleProperty(node, "margin-left: 2em")
	stripOnlyChild(node)
	return true
}

// centerToDiv rewrites <center> as <div style="text-align: center">, or, if
// drop-font-tags is set, discards the container outright and marks its
// former position with an implicit <br> (Center2Div).
func (c *Cleaner) centerToDiv(node *tree.Node) (*tree.Node, bool) {
	if node.ElementName != "center" {
		return node, false
	}
	if c.cfg.DropFontTags {
		parent := node.Parent
		if node.FirstChild != nil {
			last := node.LastChild
			discardContainer(node)
			br := tree.NewElement(tree.StartTag, "br")
			br.Implicit = true
			parent.InsertAfter(br, last)
			return br, true
		}
		br := tree.NewElement(tree.StartTag, "br")
		br.Implicit = true
		node.ReplaceWith(br)
		return br, true
	}

	node.ElementName = "div"
	addStyleProperty(node, "text-align: center")
	return node, true
}

// mergeDivs collapses <div><div>...</div></div>, the shape left behind once
// nested Word indent markup has already gone through dir2Div (MergeDivs).
func mergeDivs(node *tree.Node) bool {
	if node.ElementName != "div" {
		return false
	}
	child := node.FirstChild
	if child == nil || child.ElementName != "div" || child.NextSibling != nil {
		return false
	}
	mergeStyles(node, child)
	stripOnlyChild(node)
	return true
}

// nestedList discards a <ul>/<ol> whose only content is a single <li> whose
// only content is a nested list of the same kind, promoting the inner list
// into the outer one's position. If the outer list itself follows a <ul> or
// <ol> (of either kind), the promoted list is re-homed as content of that
// preceding list's last item instead, matching how most authoring tools actually
// produce "nested" nav/outline markup via indentation rather than true
// nesting (NestedList).
func nestedList(node *tree.Node) (*tree.Node, bool) {
	switch node.ElementName {
	case "ul", "ol":
	default:
		return node, false
	}
	li := node.FirstChild
	if li == nil || li.NextSibling != nil || li.ElementName != "li" {
		return node, false
	}
	inner := li.FirstChild
	if inner == nil || inner.NextSibling != nil || inner.ElementName != node.ElementName {
		return node, false
	}

	prev := node.PrevSibling
	inner.Remove()
	node.ReplaceWith(inner)

	if prev != nil && (prev.ElementName == "ul" || prev.ElementName == "ol") {
		if lastLi := prev.LastChild; lastLi != nil {
			inner.Remove()
			lastLi.AppendChild(inner)
		}
	}

	return inner, true
}

// blockOrListModel reports whether def's content model marks it as the kind
// of structural container blockStyle/List2BQ operate over.
func blockOrListModel(def *tags.TagDef) bool {
	return def.Model.Has(tags.CMBlock) || def.Model.Has(tags.CMList) ||
		def.Model.Has(tags.CMDefList) || def.Model.Has(tags.CMTable)
}

// blockStyle folds a block/list/table element's sole <b>/<i>/<font> child
// into a style property on the element itself, and converts any align
// attribute to text-align except on caption. table, tr and li are left
// alone entirely (BlockStyle).
func (c *Cleaner) blockStyle(node *tree.Node) bool {
	def, known := tags.Lookup(node.ElementName)
	if !known || !blockOrListModel(def) {
		return false
	}
	if node.ElementName == "table" || node.ElementName == "tr" || node.ElementName == "li" {
		return false
	}
	if node.ElementName != "caption" {
		textAlign(node)
	}

	child := node.FirstChild
	if child == nil || child.NextSibling != nil {
		return false
	}

	switch child.ElementName {
	case "b":
		mergeStyles(node, child)
		addStyleProperty(node, "font-weight: bold")
		stripOnlyChild(node)
		return true
	case "i":
		mergeStyles(node, child)
		addStyleProperty(node, "font-style: italic")
		stripOnlyChild(node)
		return true
	case "font":
		mergeStyles(node, child)
		addFontStyles(node, child)
		stripOnlyChild(node)
		return true
	}
	return false
}

// inlineStyle is blockStyle's counterpart for inline and table-row-context
// elements: <b>/<i> only fold into their parent when logical-emphasis is
// configured, since otherwise the distinction between "bold" and "strong"
// is exactly what the author asked for (InlineStyle).
func (c *Cleaner) inlineStyle(node *tree.Node) bool {
	if node.ElementName == "font" {
		return false
	}
	def, known := tags.Lookup(node.ElementName)
	if !known || !(def.Model.Has(tags.CMInline) || def.Model.Has(tags.CMRow)) {
		return false
	}

	child := node.FirstChild
	if child == nil || child.NextSibling != nil {
		return false
	}

	if c.cfg.LogicalEmphasis && child.ElementName == "b" {
		mergeStyles(node, child)
		addStyleProperty(node, "font-weight: bold")
		stripOnlyChild(node)
		return true
	}
	if c.cfg.LogicalEmphasis && child.ElementName == "i" {
		mergeStyles(node, child)
		addStyleProperty(node, "font-style: italic")
		stripOnlyChild(node)
		return true
	}
	if child.ElementName == "font" {
		mergeStyles(node, child)
		addFontStyles(node, child)
		stripOnlyChild(node)
		return true
	}
	return false
}

// fontToSpan replaces a <font> element by <span>, folding its face/size/
// color attributes into a single style attribute (Font2Span). If
// drop-font-tags is configured the container is discarded instead and the
// rename never happens.
func (c *Cleaner) fontToSpan(node *tree.Node) (*tree.Node, bool) {
	if node.ElementName != "font" {
		return node, false
	}
	if c.cfg.DropFontTags {
		return discardContainer(node), false
	}
	if node.Parent != nil && node.Parent.FirstChild == node && node.NextSibling == nil {
		// sole child of its parent: leave alone, nothing to distinguish it from
		return node, false
	}

	addFontStyles(node, node)
	styleVal, hasStyle := node.Attr("style")
	node.Attributes = nil
	if hasStyle {
		node.SetAttr("style", styleVal)
	}
	node.ElementName = "span"
	return node, true
}

// cleanNode applies dir2Div/nestedList/centerToDiv/mergeDivs/blockStyle/
// inlineStyle/fontToSpan to node, repeating until none apply (CleanNode).
func (c *Cleaner) cleanNode(node *tree.Node) *tree.Node {
	for node != nil && node.IsElement() {
		if dir2Div(node) {
			continue
		}
		if r, ok := nestedList(node); ok {
			return r
		}
		if r, ok := c.centerToDiv(node); ok {
			node = r
			continue
		}
		if mergeDivs(node) {
			continue
		}
		if c.blockStyle(node) {
			continue
		}
		if c.inlineStyle(node) {
			continue
		}
		r, ok := c.fontToSpan(node)
		node = r
		if ok {
			continue
		}
		break
	}
	return node
}

// CleanTree applies cleanNode bottom-up over node's whole subtree (CleanTree).
// Children are snapshotted before recursing, since a rule like nestedList may
// relocate a node out from under its original parent mid-walk; a relocated
// child is simply skipped rather than re-visited twice.
func (c *Cleaner) CleanTree(node *tree.Node) {
	for _, child := range node.Children() {
		if child.Parent != node {
			continue
		}
		c.CleanTree(child)
	}
	c.cleanNode(node)
}

// DefineStyleRules walks the tree bottom-up after CleanTree, moving every
// remaining style attribute into an interned class (Style2Rule, run as its
// own pass so interning sees the fully-distilled tree).
func (c *Cleaner) DefineStyleRules(node *tree.Node) {
	for _, child := range node.Children() {
		c.DefineStyleRules(child)
	}
	if node.IsElement() {
		c.style2Rule(node)
	}
}
