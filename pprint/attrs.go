package pprint

import "github.com/htmltidy/gotidy/tree"

// printAttributes writes every attribute on node, each preceded by a wrap
// point so a long run of attributes breaks onto continuation lines at the
// configured indent rather than running off the edge (pprint.c's
// PPrintAttrs).
func (p *Printer) printAttributes(node *tree.Node, indent int) {
	for i := range node.Attributes {
		p.printAttribute(&node.Attributes[i], indent)
	}
}

func (p *Printer) printAttribute(a *tree.Attribute, indent int) {
	p.setWrap(indent)
	p.addChar(' ')

	if a.IsPlaceholder() {
		p.printEmbedded(a.Asp)
		return
	}

	p.addString(a.Name)
	if a.Asp != nil {
		p.printEmbedded(a.Asp)
	}
	if !a.HasValue {
		return
	}

	quote := a.Quote
	if quote == 0 || p.cfg.XMLOut || p.cfg.XHTMLOut {
		quote = '"'
	}

	p.addChar('=')
	p.addChar(rune(quote))
	p.inAttrVal = true
	for _, c := range a.Value {
		p.writeChar(c, modeAttrValue)
		if c == ' ' && p.cfg.WrapAttributes && !p.cfg.LiteralAttributes {
			p.setWrap(indent)
		}
		p.checkWrapLine(indent)
	}
	p.inAttrVal = false
	p.addChar(rune(quote))
}

// printEmbedded inlines a server-script node (<%= ... %> style value
// computed attributes) raw, without markup escaping (PPrintAttribute's
// asp/jste/php attribute-value branch).
func (p *Printer) printEmbedded(n *tree.Node) {
	open, close := "<%", "%>"
	switch n.Kind {
	case tree.Jste:
		open, close = "<#", "#>"
	case tree.Php:
		open, close = "<?php", "?>"
	}
	p.addString(open)
	p.addString(p.buf.Text(n.Span))
	p.addString(close)
}
