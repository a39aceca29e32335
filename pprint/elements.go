package pprint

import (
	"strings"

	"github.com/htmltidy/gotidy/config"
	"github.com/htmltidy/gotidy/tags"
	"github.com/htmltidy/gotidy/tree"
)

// noIndentByName covers the handful of elements ShouldIndent always
// refuses to indent regardless of content model (headings, <html>, <p>,
// <title>; <textarea> is handled by its caller before this is reached).
var noIndentByName = map[string]bool{
	"html": true, "p": true, "title": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// shouldIndent decides whether node's children print on their own
// indented lines or run on inline (pprint.c's ShouldIndent).
func (p *Printer) shouldIndent(node *tree.Node) bool {
	if p.cfg.Indent == config.AutoBoolNo {
		return false
	}
	if node.ElementName == "textarea" {
		return false
	}
	if p.cfg.Indent == config.AutoBoolYes {
		return node.HasChildren()
	}

	model, known := tags.Lookup(node.ElementName)
	if !known {
		return hasBlockChild(node)
	}
	if noIndentByName[node.ElementName] {
		return false
	}
	if model.Model.Any(tags.CMField|tags.CMObject) || node.ElementName == "map" {
		return true
	}
	if model.Model.Has(tags.CMInline) {
		return false
	}
	return node.HasChildren()
}

func hasBlockChild(node *tree.Node) bool {
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if !c.IsElement() {
			continue
		}
		if model, known := tags.Lookup(c.ElementName); known && model.Model.Has(tags.CMBlock) {
			return true
		}
	}
	return false
}

// printTree dispatches on node.Kind, the single entry point both Print
// and each element's child loop recurse through (pprint.c's PPrintTree).
func (p *Printer) printTree(node *tree.Node, indent int) {
	if node == nil {
		return
	}
	switch node.Kind {
	case tree.Root:
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			p.printTree(c, indent)
		}
	case tree.Text:
		p.printText(node, indent)
	case tree.Comment:
		p.printComment(node, indent)
	case tree.DocType:
		p.printDocType(node, indent)
	case tree.ProcInstr:
		p.printPI(node, indent)
	case tree.XmlDecl:
		p.printXMLDecl(node, indent)
	case tree.CData:
		p.printCDATA(node, indent)
	case tree.Section:
		p.printSection(node, indent)
	case tree.Asp:
		p.printServerIsland(node, indent, "<%", "%>")
	case tree.Jste:
		p.printServerIsland(node, indent, "<#", "#>")
	case tree.Php:
		p.printServerIsland(node, indent, "<?php", "?>")
	default: // StartTag, EndTag, StartEndTag
		p.printElement(node, indent)
	}
}

func (p *Printer) printText(node *tree.Node, indent int) {
	md := modeText
	if p.preDepth > 0 {
		md = modePreformatted
	}
	p.writeText(p.buf.Text(node.Span), md, indent)
}

func isInlineOnly(name string) bool {
	model, known := tags.Lookup(name)
	return known && model.Model.Has(tags.CMInline) && !model.Model.Has(tags.CMBlock)
}

// printElement prints one markup element: its start tag, any content
// (indented per shouldIndent, or run on inline for CMInline elements),
// and its end tag, with the special-cased layouts <pre>/<textarea>
// (literal newlines, no wrap), <script>/<style> (CDATA body) and <br>
// (optional flush before a line break) pprint.c hard-codes.
func (p *Printer) printElement(node *tree.Node, indent int) {
	inline := isInlineOnly(node.ElementName)

	switch node.ElementName {
	case "br":
		prev := node.PrevSibling
		if p.cfg.BreakBeforeBr && (prev == nil || prev.ElementName != "br") {
			p.condFlushLine(indent)
		}
	case "wbr":
		if p.cfg.MakeClean {
			p.writeChar(' ', modeText)
			return
		}
	}

	if !inline {
		p.condFlushLine(indent)
	}

	switch node.ElementName {
	case "pre", "textarea":
		p.printTag(node, indent)
		p.preDepth++
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			p.printTree(c, indent)
		}
		p.preDepth--
		p.printEndTag(node, indent)
		return
	case "script", "style":
		p.printTag(node, indent)
		p.printScriptStyleBody(node, indent)
		p.printEndTag(node, indent)
		return
	}

	p.printTag(node, indent)

	model, known := tags.Lookup(node.ElementName)
	isEmpty := known && model.Model.Has(tags.CMEmpty)
	if isEmpty || node.Kind == tree.StartEndTag {
		return
	}

	// Indented content gets its own line right after the open tag and
	// again before the close tag; content that stays un-indented (the
	// common case: <p>-like elements and anything under indent=no) runs
	// on directly, with block/block separation left to the next
	// sibling's own pre-open-tag flush instead.
	indentChildren := p.shouldIndent(node)
	childIndent := indent
	if indentChildren {
		childIndent = indent + p.cfg.IndentSpaces
		p.condFlushLine(childIndent)
	}
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		p.printTree(c, childIndent)
	}

	if indentChildren {
		p.condFlushLine(indent)
	}
	omittable := known && model.Model.Has(tags.CMOmitST)
	if !(p.cfg.HideEndTags && omittable) {
		p.printEndTag(node, indent)
	}
}

func (p *Printer) printTag(node *tree.Node, indent int) {
	p.addChar('<')
	p.addString(node.ElementName)
	p.printAttributes(node, indent)
	if p.selfCloses(node) && (p.cfg.XMLOut || p.cfg.XHTMLOut) {
		p.addString(" /")
	}
	p.addChar('>')
	p.checkWrapLine(indent)
}

// selfCloses reports whether node's start tag should carry the XML empty-
// element slash: either the source wrote it explicitly (StartEndTag), or
// the dictionary marks the element void regardless of how it was written
// (e.g. a bare "<br>"), since XHTML/XML output requires every void element
// to be well-formed on its own.
func (p *Printer) selfCloses(node *tree.Node) bool {
	if node.Kind == tree.StartEndTag {
		return true
	}
	model, known := tags.Lookup(node.ElementName)
	return known && model.Model.Has(tags.CMEmpty)
}

func (p *Printer) printEndTag(node *tree.Node, indent int) {
	if node.Kind == tree.StartEndTag {
		return
	}
	p.addString("</")
	p.addString(node.ElementName)
	p.addChar('>')
	p.checkWrapLine(indent)
}

func (p *Printer) printComment(node *tree.Node, indent int) {
	if p.cfg.HideComments {
		return
	}
	p.condFlushLine(indent)
	p.addString("<!--")
	p.writeText(p.buf.Text(node.Span), modeRaw, indent)
	p.addString("-->")
	if node.Linebreak {
		p.condFlushLine(indent)
	}
}

func (p *Printer) printDocType(node *tree.Node, indent int) {
	p.condFlushLine(indent)
	p.addString("<!DOCTYPE")
	text := p.buf.Text(node.Span)
	if text != "" {
		p.addChar(' ')
		p.writeText(text, modeRaw, indent)
	}
	p.addChar('>')
	p.condFlushLine(indent)
}

// printPI emits a processing instruction raw, preserving whatever the
// lexer captured between "<?" and its close (no structured attribute
// model exists for PIs at the tree level, so there's nothing to
// re-order).
func (p *Printer) printPI(node *tree.Node, indent int) {
	p.addString("<?")
	p.writeText(p.buf.Text(node.Span), modeRaw, indent)
	if p.cfg.XMLPIs {
		p.addString("?>")
	} else {
		p.addChar('>')
	}
	p.checkWrapLine(indent)
}

func (p *Printer) printXMLDecl(node *tree.Node, indent int) {
	p.addString("<?")
	p.writeText(p.buf.Text(node.Span), modeRaw, indent)
	p.addString("?>")
	p.condFlushLine(indent)
}

func (p *Printer) printCDATA(node *tree.Node, indent int) {
	p.addString("<![CDATA[")
	p.addString(p.buf.Text(node.Span))
	p.addString("]]>")
}

// printSection renders a bracket-section token that survived cleanup
// (Word-2000 support disabled): emitted the way it was read, a single
// self-closing "<![...]>" with no body of its own (§4.4).
func (p *Printer) printSection(node *tree.Node, indent int) {
	p.condFlushLine(indent)
	p.addString("<![")
	p.addString(node.ElementName)
	p.addString("]>")
	p.condFlushLine(indent)
}

func (p *Printer) printServerIsland(node *tree.Node, indent int, open, close string) {
	p.addString(open)
	p.writeText(p.buf.Text(node.Span), modeRaw, indent)
	p.addString(close)
	p.checkWrapLine(indent)
}

// printScriptStyleBody emits a <script>/<style> element's text content.
// XHTML/XML output wraps it in a CDATA marked section (inside a comment
// so legacy browsers that don't understand CDATA still see a comment)
// unless the content is already CDATA-wrapped, since "<" or "&" appearing
// literally in script/style text would otherwise need escaping that
// breaks the embedded language's own syntax (PPrintScriptStyle).
func (p *Printer) printScriptStyleBody(node *tree.Node, indent int) {
	var body strings.Builder
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		switch c.Kind {
		case tree.Text, tree.CData:
			body.WriteString(p.buf.Text(c.Span))
		}
	}
	text := body.String()

	needsCDATAWrap := (p.cfg.XHTMLOut || p.cfg.XMLOut) && !strings.Contains(text, "<![CDATA[")
	if needsCDATAWrap {
		p.addString("//<![CDATA[\n")
		p.writeText(text, modeRaw, indent)
		p.addString("\n//]]>")
		return
	}
	p.writeText(text, modeRaw, indent)
}
