package parser

import (
	"github.com/htmltidy/gotidy/diag"
	"github.com/htmltidy/gotidy/lexer"
	"github.com/htmltidy/gotidy/tags"
	"github.com/htmltidy/gotidy/tree"
)

// tableStructural names the elements a table's direct children may
// legitimately be: row groups, rows, caption and column declarations
// (§4.7's table repair rule).
var tableStructural = map[string]bool{
	"thead": true, "tbody": true, "tfoot": true, "tr": true,
	"caption": true, "col": true, "colgroup": true,
}

// parseTable implements parse_table (§4.7): row groups, rows, caption and
// column declarations nest directly under table; anything else found at
// this level is not discarded but exiled to just before the table, matching
// the reference implementation's "move misplaced content out of the table"
// repair (a bare <tr> at this level is also accepted directly, without
// requiring an enclosing tbody, since that's how most authored HTML omits
// the row group).
func (p *Parser) parseTable(root, table *tree.Node) {
	p.inl.DeferDuplication()
	defer p.inl.EndDefer()

	for {
		tok := p.lex.GetToken(lexer.IgnoreWhitespace)
		if tok == nil {
			return
		}
		if tok.Kind == tree.EndTag {
			if tok.ElementName == "table" {
				return
			}
			if _, ok := p.inStack(tok.ElementName); ok {
				p.lex.UngetToken(tok)
				return
			}
			p.report(tok, diag.DiscardingUnexpected, tok.ElementName)
			continue
		}
		if !tok.IsElement() {
			if tok.Kind == tree.Text && isAllBlank(p.textOf(tok)) {
				continue
			}
			// Exile non-blank text the same way as a misplaced element:
			// it has no legal home directly under <table>.
			p.report(tok, diag.TagNotAllowedIn, "#text", "table")
			parent := table.Parent
			if parent != nil {
				parent.InsertBefore(tok, table)
			}
			continue
		}
		if !tableStructural[tok.ElementName] {
			// Exile: insert as a sibling before the table rather than
			// dropping or nesting it illegally.
			p.report(tok, diag.TagNotAllowedIn, tok.ElementName, "table")
			parent := table.Parent
			if parent != nil {
				parent.InsertBefore(tok, table)
			}
			if tok.IsElement() && tok.Kind == tree.StartTag {
				def, known := tags.Lookup(tok.ElementName)
				if known && !def.Model.Has(tags.CMEmpty) {
					p.push(tok)
					p.parseGenericChildren(root, tok, tok.ElementName)
					p.popUntil(tok.ElementName)
				}
			}
			continue
		}

		def, _ := tags.Lookup(tok.ElementName)
		p.narrowVersion(tok, def.Vers)
		p.insert(root, tok)
		if def.Model.Has(tags.CMEmpty) {
			continue
		}
		p.push(tok)
		switch tok.ElementName {
		case "thead", "tbody", "tfoot":
			p.parseRowGroup(root, tok)
		case "tr":
			p.parseRow(root, tok)
		default:
			p.parseGenericChildren(root, tok, tok.ElementName)
		}
		p.popUntil(tok.ElementName)
	}
}

// parseRowGroup implements parse_row_group (§4.7): a thead/tbody/tfoot's
// only direct children are tr elements.
func (p *Parser) parseRowGroup(root, group *tree.Node) {
	for {
		tok := p.lex.GetToken(lexer.IgnoreWhitespace)
		if tok == nil {
			return
		}
		if tok.Kind == tree.EndTag {
			if tok.ElementName == group.ElementName {
				return
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
		if tok.ElementName != "tr" {
			p.lex.UngetToken(tok)
			return
		}
		def, _ := tags.Lookup("tr")
		p.narrowVersion(tok, def.Vers)
		p.insert(root, tok)
		p.push(tok)
		p.parseRow(root, tok)
		p.popUntil("tr")
	}
}

// parseRow implements parse_row (§4.7): a tr's only direct children are
// td/th cells; any implicit cell starts without an explicit </td> are
// closed when the next cell, row, or table-level tag appears.
func (p *Parser) parseRow(root, tr *tree.Node) {
	for {
		tok := p.lex.GetToken(lexer.IgnoreWhitespace)
		if tok == nil {
			return
		}
		if tok.Kind == tree.EndTag {
			if tok.ElementName == "tr" {
				return
			}
			if tok.ElementName == "td" || tok.ElementName == "th" {
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
		if tok.ElementName != "td" && tok.ElementName != "th" {
			p.lex.UngetToken(tok)
			return
		}
		if top := p.top(); top != nil && (top.ElementName == "td" || top.ElementName == "th") {
			p.popUntil(top.ElementName)
		}
		def, _ := tags.Lookup(tok.ElementName)
		p.narrowVersion(tok, def.Vers)
		p.insert(root, tok)
		p.push(tok)
		p.parseCell(root, tok)
		p.popUntil(tok.ElementName)
	}
}

// parseCell implements parse_cell (§4.7): ordinary flow content, closing on
// the matching end tag, a sibling cell, or the enclosing row/table ending.
func (p *Parser) parseCell(root, cell *tree.Node) {
	for {
		tok := p.lex.GetToken(lexer.MixedContent)
		if tok == nil {
			return
		}
		if tok.Kind == tree.EndTag {
			if tok.ElementName == cell.ElementName {
				return
			}
			if tok.ElementName == "tr" || tok.ElementName == "table" ||
				tok.ElementName == "thead" || tok.ElementName == "tbody" || tok.ElementName == "tfoot" {
				p.lex.UngetToken(tok)
				return
			}
			if _, ok := p.inStack(tok.ElementName); ok {
				p.lex.UngetToken(tok)
				return
			}
			p.report(tok, diag.DiscardingUnexpected, tok.ElementName)
			continue
		}
		if tok.IsElement() && (tok.ElementName == "td" || tok.ElementName == "th") {
			p.lex.UngetToken(tok)
			return
		}
		if !tok.IsElement() {
			p.insert(root, tok)
			continue
		}
		p.dispatchElement(root, cell, tok)
	}
}
