package parser

import (
	"github.com/htmltidy/gotidy/lexer"
	"github.com/htmltidy/gotidy/tree"
)

// parseImplicitCloseChildren behaves like parseGenericChildren, except a
// start tag named in closers also closes parent implicitly (the token is
// ungotten for the caller to handle) rather than nesting under it. This
// grounds the CMOmitST optional-end-tag elements (li, dt/dd, option):
// the next sibling's start tag is the signal that closes the current one,
// since authors routinely omit the explicit end tag (§4.3, §4.7).
func (p *Parser) parseImplicitCloseChildren(root, parent *tree.Node, parentName string, closers map[string]bool) {
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
				p.lex.UngetToken(tok)
				return
			}
			continue
		}
		if tok.IsElement() && closers[tok.ElementName] {
			p.lex.UngetToken(tok)
			return
		}
		if !tok.IsElement() {
			p.insert(root, tok)
			continue
		}
		p.dispatchElement(root, parent, tok)
	}
}
