package parser

import (
	"github.com/htmltidy/gotidy/diag"
	"github.com/htmltidy/gotidy/lexer"
	"github.com/htmltidy/gotidy/tags"
	"github.com/htmltidy/gotidy/tree"
)

// parseList implements parse_list (§4.7): a ul/ol/dir/menu's direct
// children are li elements. Non-blank text directly under the list opens an
// implicit li; whitespace and other non-element tokens there are dropped.
// Inside an open li, start tags other than li nest as its content; a non-li
// start tag at list level closes the list and is handed back to the
// enclosing routine, so it becomes a sibling of the list.
func (p *Parser) parseList(root, list *tree.Node) {
	for {
		tok := p.lex.GetToken(lexer.IgnoreWhitespace)
		if tok == nil {
			return
		}
		if tok.Kind == tree.EndTag {
			if tok.ElementName == list.ElementName {
				return
			}
			if tok.ElementName == "li" {
				p.popUntil("li")
				continue
			}
			if _, ok := p.inStack(tok.ElementName); ok {
				p.lex.UngetToken(tok)
				return
			}
			p.report(tok, diag.DiscardingUnexpected, tok.ElementName)
			continue
		}
		if !tok.IsElement() {
			if tok.Kind != tree.Text || isAllBlank(p.textOf(tok)) {
				continue
			}
			li := p.openImplicit(list, "li")
			p.push(li)
			p.insert(root, tok)
			p.parseImplicitCloseChildren(root, li, "li", liClosers)
			p.popUntil("li")
			continue
		}
		if tok.ElementName != "li" {
			// Not an li: close the list and let the parent loop handle it.
			p.lex.UngetToken(tok)
			return
		}

		def, _ := tags.Lookup("li")
		p.narrowVersion(tok, def.Vers)
		p.insert(root, tok)
		p.push(tok)
		p.parseImplicitCloseChildren(root, tok, "li", liClosers)
		p.popUntil("li")
	}
}

// liClosers names the start tags that implicitly close an open <li> (just
// the next <li> itself — li has no other sibling-triggered closers).
var liClosers = map[string]bool{"li": true}

// parseDefList implements parse_definition_list (§4.7): a dl's direct
// children alternate dt/dd; either may be omitted by the author but not
// replaced by anything else.
func (p *Parser) parseDefList(root, dl *tree.Node) {
	for {
		tok := p.lex.GetToken(lexer.IgnoreWhitespace)
		if tok == nil {
			return
		}
		if tok.Kind == tree.EndTag {
			if tok.ElementName == "dl" {
				return
			}
			if tok.ElementName == "dt" || tok.ElementName == "dd" {
				p.popUntil(tok.ElementName)
				continue
			}
			if _, ok := p.inStack(tok.ElementName); ok {
				p.lex.UngetToken(tok)
				return
			}
			p.report(tok, diag.DiscardingUnexpected, tok.ElementName)
			continue
		}
		if !tok.IsElement() {
			continue
		}
		if tok.ElementName != "dt" && tok.ElementName != "dd" {
			p.lex.UngetToken(tok)
			return
		}
		def, _ := tags.Lookup(tok.ElementName)
		p.narrowVersion(tok, def.Vers)
		p.insert(root, tok)
		p.push(tok)
		p.parseImplicitCloseChildren(root, tok, tok.ElementName, defListClosers)
		p.popUntil(tok.ElementName)
	}
}

// defListClosers names the start tags that implicitly close an open
// <dt>/<dd> — either element can follow the other, or repeat.
var defListClosers = map[string]bool{"dt": true, "dd": true}
