package parser

import (
	"github.com/htmltidy/gotidy/diag"
	"github.com/htmltidy/gotidy/lexer"
	"github.com/htmltidy/gotidy/tags"
	"github.com/htmltidy/gotidy/tree"
)

// parseGenericChildren is the default element-children loop used by
// parse_block/parse_inline/parse_body (§4.7): consume tokens, closing
// parent when its own end tag (or an implicit closer) arrives, and
// recursing into each child element's own parser routine.
func (p *Parser) parseGenericChildren(root, parent *tree.Node, parentName string) {
	for {
		tok := p.lex.GetToken(lexer.MixedContent)
		if tok == nil {
			return
		}

		if tok.Kind == tree.EndTag {
			if tok.ElementName == parentName {
				return
			}
			if _, ok := p.inStack(tok.ElementName); ok {
				// Misnested: the matching open element is further up
				// the stack. Close back to it, which also closes us.
				p.lex.UngetToken(tok)
				return
			}
			p.report(tok, diag.DiscardingUnexpected, tok.ElementName)
			continue
		}

		if !tok.IsElement() {
			p.insert(root, tok)
			continue
		}

		p.dispatchElement(root, parent, tok)
	}
}

// dispatchElement routes tok to the parser routine its dictionary entry
// names (§4.7), or treats it as an unknown/inline element if it has none.
// In HTML mode an unknown element's own tag is dropped and its content is
// kept; in XML mode the element itself is kept in the tree.
func (p *Parser) dispatchElement(root, parent *tree.Node, tok *tree.Node) {
	def, known := tags.Lookup(tok.ElementName)
	if !known {
		if !p.xml {
			p.report(tok, diag.UnknownElement, tok.ElementName)
		}
		p.narrowVersion(tok, 0)
		if p.xml {
			p.insert(root, tok)
			if tok.Kind == tree.StartEndTag {
				return
			}
			p.push(tok)
			p.parseInlineLike(root, tok)
			p.popUntil(tok.ElementName)
			return
		}
		p.parseInlineLike(root, tok)
		return
	}

	if tok.ElementName == "frameset" {
		if p.sawFrameset {
			p.report(tok, diag.DuplicateFrameset)
			p.drainElement("frameset")
			return
		}
		p.sawFrameset = true
	}

	p.narrowVersion(tok, def.Vers)
	p.registerAnchor(tok)
	p.insert(root, tok)

	if tok.Kind == tree.StartEndTag || def.Model.Has(tags.CMEmpty) {
		return
	}

	p.push(tok)
	switch def.Parser {
	case tags.ParseTitle:
		p.parseTitle(root, tok)
	case tags.ParseScript:
		p.parseScript(root, tok)
	case tags.ParseList:
		p.parseList(root, tok)
	case tags.ParseDefList:
		p.parseDefList(root, tok)
	case tags.ParseTable:
		p.parseTable(root, tok)
	case tags.ParseRowGroup:
		p.parseRowGroup(root, tok)
	case tags.ParseRow:
		p.parseRow(root, tok)
	case tags.ParseCell:
		p.parseCell(root, tok)
	case tags.ParseSelect:
		p.parseSelect(root, tok)
	case tags.ParseOptGroup:
		p.parseOptGroup(root, tok)
	case tags.ParsePre:
		p.parsePre(root, tok)
	case tags.ParseEmpty:
		// No children expected; fall through to generic close.
		p.parseGenericChildren(root, tok, tok.ElementName)
	case tags.ParseBlock:
		// Block containers (div, blockquote, form, ...) freely nest
		// further block content; no implicit-close rule applies.
		p.inl.Push(tok)
		p.parseGenericChildren(root, tok, tok.ElementName)
	default:
		p.parseInlineLike(root, tok)
	}
	p.popUntil(tok.ElementName)
}

// parseInlineLike handles parse_inline (phrasing-context) elements: push
// onto the inline-duplication stack, then recurse, implicitly closing on a
// block-level child since these elements' own content model never allows
// one (§4.7: "<p>one<p>two" closes the first <p> instead of nesting the
// second one inside it).
func (p *Parser) parseInlineLike(root, tok *tree.Node) {
	p.inl.Push(tok)

	def, known := tags.Lookup(tok.ElementName)
	if !known || def.Model.Has(tags.CMMixed) {
		p.parseGenericChildren(root, tok, tok.ElementName)
		return
	}

	for {
		t := p.lex.GetToken(lexer.MixedContent)
		if t == nil {
			return
		}
		if t.Kind == tree.EndTag {
			if t.ElementName == tok.ElementName {
				return
			}
			if _, ok := p.inStack(t.ElementName); ok {
				p.lex.UngetToken(t)
				return
			}
			p.report(t, diag.DiscardingUnexpected, t.ElementName)
			continue
		}
		if t.IsElement() {
			if cdef, ok := tags.Lookup(t.ElementName); ok && cdef.Model.Has(tags.CMBlock) {
				p.report(tok, diag.MissingEndtagBefore, tok.ElementName, t.ElementName)
				p.lex.UngetToken(t)
				return
			}
			p.dispatchElement(root, tok, t)
			continue
		}
		p.insert(root, t)
	}
}

// parseTitle reads raw text content up to </title> (§4.7).
func (p *Parser) parseTitle(root, tok *tree.Node) {
	p.parseGenericChildren(root, tok, "title")
}

// parseScript consumes the CDATA-element body the lexer already isolated
// (script/style raw text) and appends it as a single text child.
func (p *Parser) parseScript(root, tok *tree.Node) {
	body := p.lex.GetToken(lexer.Preformatted)
	if body != nil && body.Kind == tree.Text {
		tok.AppendChild(body)
	}
	end := p.lex.GetToken(lexer.MixedContent)
	if end != nil && !(end.Kind == tree.EndTag && end.ElementName == tok.ElementName) {
		p.lex.UngetToken(end)
	}
}

// parsePre disables whitespace collapsing for its children (§4.3's
// CMNoIndent elements: pre, xmp, listing, plaintext).
func (p *Parser) parsePre(root, tok *tree.Node) {
	for {
		t := p.lex.GetToken(lexer.Preformatted)
		if t == nil {
			return
		}
		if t.Kind == tree.EndTag && t.ElementName == tok.ElementName {
			return
		}
		if t.IsElement() {
			p.dispatchElement(root, tok, t)
			continue
		}
		p.insert(root, t)
	}
}

// parseEmpty consumes nothing further; empty elements never have
// children to parse. Nothing calls it: dispatchElement returns before
// dispatch for CMEmpty elements, and its ParseEmpty case runs
// parseGenericChildren.
func (p *Parser) parseEmpty(root, tok *tree.Node) {}

// drainElement reads and discards tokens up to and including the matching
// end tag for name, without inserting anything into the tree (used to
// discard a rejected duplicate <frameset>'s entire subtree).
func (p *Parser) drainElement(name string) {
	depth := 1
	for depth > 0 {
		tok := p.lex.GetToken(lexer.MixedContent)
		if tok == nil {
			return
		}
		if tok.Kind == tree.EndTag && tok.ElementName == name {
			depth--
			continue
		}
		if tok.Kind == tree.StartTag && tok.ElementName == name {
			depth++
		}
	}
}
