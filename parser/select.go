package parser

import (
	"github.com/htmltidy/gotidy/diag"
	"github.com/htmltidy/gotidy/lexer"
	"github.com/htmltidy/gotidy/tags"
	"github.com/htmltidy/gotidy/tree"
)

// parseSelect implements parse_select (§4.7): a select's direct children are
// option and optgroup only; anything else is discarded with a diagnostic
// rather than exiled, since misplaced content inside a form control has no
// sensible position to move to.
func (p *Parser) parseSelect(root, sel *tree.Node) {
	for {
		tok := p.lex.GetToken(lexer.IgnoreWhitespace)
		if tok == nil {
			return
		}
		if tok.Kind == tree.EndTag {
			if tok.ElementName == "select" {
				return
			}
			if tok.ElementName == "option" || tok.ElementName == "optgroup" {
				p.popUntil(tok.ElementName)
				continue
			}
			p.report(tok, diag.DiscardingUnexpected, tok.ElementName)
			continue
		}
		if !tok.IsElement() {
			continue
		}
		if tok.ElementName != "option" && tok.ElementName != "optgroup" {
			p.report(tok, diag.TagNotAllowedIn, tok.ElementName, "select")
			continue
		}
		def, _ := tags.Lookup(tok.ElementName)
		p.narrowVersion(tok, def.Vers)
		p.insert(root, tok)
		p.push(tok)
		if tok.ElementName == "optgroup" {
			p.parseOptGroup(root, tok)
		} else {
			p.parseImplicitCloseChildren(root, tok, "option", optionClosers)
		}
		p.popUntil(tok.ElementName)
	}
}

// optionClosers names the start tags that implicitly close an open
// <option> — a sibling option or the optgroup boundary that follows it.
var optionClosers = map[string]bool{"option": true, "optgroup": true}

// parseOptGroup implements parse_optgroup (§4.7): an optgroup's only direct
// children are option elements.
func (p *Parser) parseOptGroup(root, group *tree.Node) {
	for {
		tok := p.lex.GetToken(lexer.IgnoreWhitespace)
		if tok == nil {
			return
		}
		if tok.Kind == tree.EndTag {
			if tok.ElementName == "optgroup" {
				return
			}
			if tok.ElementName == "option" {
				p.popUntil("option")
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
		if tok.ElementName != "option" {
			p.lex.UngetToken(tok)
			return
		}
		def, _ := tags.Lookup("option")
		p.narrowVersion(tok, def.Vers)
		p.insert(root, tok)
		p.push(tok)
		p.parseImplicitCloseChildren(root, tok, "option", optionClosers)
		p.popUntil("option")
	}
}
