package parser

import (
	"github.com/htmltidy/gotidy/diag"
	"github.com/htmltidy/gotidy/lexer"
	"github.com/htmltidy/gotidy/tags"
	"github.com/htmltidy/gotidy/tree"
)

// ParseDocument runs the top-level HTML parse routine (§4.7's
// parse_document): infers <html>/<head>/<body> if missing, then
// dispatches every element to its parser routine until EOF.
func (p *Parser) ParseDocument() *tree.Node {
	root := tree.NewElement(tree.Root, "")

	htmlNode := p.ensureHTML(root)
	p.push(htmlNode)
	p.parseHTMLChildren(root, htmlNode)
	p.pop()

	CheckIntegrity(root)
	return root
}

// ParseXMLDocument runs the XML entry point (§4.7's parse_xml_document):
// no implicit html/head/body inference, unknown elements are kept in the
// tree without an UNKNOWN_ELEMENT report (names the dictionary knows still
// take its parser routines), and names are not case-folded.
func (p *Parser) ParseXMLDocument() *tree.Node {
	root := tree.NewElement(tree.Root, "")
	p.parseGenericChildren(root, root, "")
	CheckIntegrity(root)
	return root
}

func (p *Parser) ensureHTML(root *tree.Node) *tree.Node {
	html := tree.NewElement(tree.StartTag, "html")
	html.Implicit = true
	root.AppendChild(html)
	p.narrowVersion(html, tags.VersAll)
	return html
}

// parseHTMLChildren implements parse_html (§4.7): consumes tokens,
// inferring <head> until a body-only element forces <body> to open.
func (p *Parser) parseHTMLChildren(root, html *tree.Node) {
	head := p.openImplicit(html, "head")
	p.push(head)
	headDone := false

	for {
		tok := p.lex.GetToken(lexer.MixedContent)
		if tok == nil {
			break
		}

		if tok.Kind == tree.EndTag && tok.ElementName == "html" {
			break
		}

		if !headDone {
			if tok.IsElement() {
				d, known := tags.Lookup(tok.ElementName)
				if known && d.Model.Has(tags.CMHead) {
					p.dispatchInHead(head, tok)
					continue
				}
			} else if tok.Kind == tree.Text && isAllBlank(p.textOf(tok)) {
				head.AppendChild(tok)
				continue
			}
			// Anything else closes head and opens body.
			p.pop() // head
			headDone = true
			body := p.openImplicit(html, "body")
			p.push(body)
		}

		p.lex.UngetToken(tok)
		p.dispatchInBody(html, p.top())
		break
	}

	if !headDone {
		p.pop()
		body := p.openImplicit(html, "body")
		p.push(body)
	}
	_ = root
}

func (p *Parser) textOf(n *tree.Node) string {
	if p.buf == nil {
		return ""
	}
	return p.buf.Text(n.Span)
}

func isAllBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' {
			return false
		}
	}
	return true
}

func (p *Parser) openImplicit(parent *tree.Node, name string) *tree.Node {
	n := tree.NewElement(tree.StartTag, name)
	n.Implicit = true
	parent.AppendChild(n)
	p.report(n, diag.InsertingTag, name)
	return n
}

// dispatchInHead handles one token while <head> is open: title/base/
// link/meta/style/script each route through the ordinary dispatch table
// (which pushes/inserts/narrows version for them). A non-element token is
// ignored without a report; parseHTMLChildren only passes head-model
// elements here.
func (p *Parser) dispatchInHead(head, tok *tree.Node) {
	if !tok.IsElement() {
		return
	}
	p.dispatchElement(head, head, tok)
}

// dispatchInBody runs the body element's children loop (parse_body), the
// main per-element dispatch table for everything else in §4.7.
func (p *Parser) dispatchInBody(root, body *tree.Node) {
	p.parseGenericChildren(root, body, body.ElementName)
}
