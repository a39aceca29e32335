// Package parser is the parser / tree builder (C7): it drives the lexer
// with get_token, dispatches each open element to its parser routine (§4.7,
// bound in the tags dictionary), and assembles the document tree with
// recovery for missing tags, misnesting, and table/list malformation.
//
// Grounded on the teacher's treebuilder package: the open-elements-stack
// idiom (builder.go's `popCurrent`/`popUntil`/`elementInStack`) carries
// over directly, generalized from HTML5's fixed insertion-mode state
// machine to Tidy's per-element parser-routine dispatch (§4.7), which is
// driven by the tags dictionary's ParserRoutine field rather than a
// global "insertion mode" enum.
package parser

import (
	"strings"

	"github.com/htmltidy/gotidy/charbuf"
	"github.com/htmltidy/gotidy/diag"
	"github.com/htmltidy/gotidy/inline"
	"github.com/htmltidy/gotidy/lexer"
	"github.com/htmltidy/gotidy/tags"
	"github.com/htmltidy/gotidy/tree"
)

// Parser builds a document tree from a lexer's token stream.
type Parser struct {
	lex   *lexer.Lexer
	buf   *charbuf.Buffer
	sink  diag.Sink
	stack []*tree.Node
	inl   *inline.Stack

	anchors          map[string]bool
	versionsPossible tags.Version
	sawFrameset      bool

	xml bool
}

// anchorEligible names the tags whose id/name attribute is registered in
// the document-wide anchor map (§9's open question pins this exact set).
var anchorEligible = map[string]bool{
	"a": true, "applet": true, "form": true, "frame": true,
	"iframe": true, "img": true, "map": true,
}

// New creates a Parser reading tokens from lex and reporting diagnostics
// to sink. xml selects XML mode (case-sensitive names, no implicit tag
// inference).
func New(lex *lexer.Lexer, buf *charbuf.Buffer, sink diag.Sink, xml bool) *Parser {
	if sink == nil {
		sink = diag.DiscardSink{}
	}
	return &Parser{
		lex:              lex,
		buf:              buf,
		sink:             sink,
		inl:              inline.New(),
		anchors:          map[string]bool{},
		versionsPossible: tags.VersAll,
		xml:              xml,
	}
}

func (p *Parser) report(n *tree.Node, code diag.Code, args ...interface{}) {
	line, col := 0, 0
	if n != nil {
		line, col = n.Line, n.Column
	}
	p.sink.Emit(diag.New(code, line, col, args...))
}

func (p *Parser) top() *tree.Node {
	if len(p.stack) == 0 {
		return nil
	}
	return p.stack[len(p.stack)-1]
}

func (p *Parser) push(n *tree.Node) { p.stack = append(p.stack, n) }

func (p *Parser) pop() *tree.Node {
	n := len(p.stack)
	if n == 0 {
		return nil
	}
	top := p.stack[n-1]
	p.stack = p.stack[:n-1]
	top.Closed = true
	if p.inl.IsPushed(top.ElementName) {
		p.inl.Pop(top.ElementName)
	}
	return top
}

// inStack reports whether name is anywhere on the open-elements stack,
// and if so at what depth from the top (0 = current element).
func (p *Parser) inStack(name string) (depth int, ok bool) {
	for i := len(p.stack) - 1; i >= 0; i-- {
		if p.stack[i].ElementName == name {
			return len(p.stack) - 1 - i, true
		}
	}
	return -1, false
}

// popUntil closes elements down to and including the first one named
// name, emitting MISSING_ENDTAG_BEFORE for every element it has to close
// implicitly along the way (§4.7's misnesting recovery).
func (p *Parser) popUntil(name string) *tree.Node {
	for len(p.stack) > 0 {
		top := p.top()
		if top.ElementName == name {
			return p.pop()
		}
		p.report(top, diag.MissingEndtagBefore, top.ElementName, name)
		p.pop()
	}
	return nil
}

// insert appends child under the current open element (or directly to
// root if the stack is empty), calling InlineDup first if child is a
// block element and the inline stack has open entries (§4.6, §4.7).
func (p *Parser) insert(root, child *tree.Node) {
	parent := p.top()
	if parent == nil {
		parent = root
	}

	if child.IsElement() {
		if d, ok := tags.Lookup(child.ElementName); ok && d.Model.Has(tags.CMBlock) {
			p.inl.InlineDup(child)
		}
	}
	parent.AppendChild(child)
}

// narrowVersion intersects the possible-versions set with mask (§4.7's
// version inference), reporting INCONSISTENT_VERSION once it collapses to
// nothing (the detected doctype, if any, can no longer be satisfied).
func (p *Parser) narrowVersion(n *tree.Node, mask tags.Version) {
	if mask == 0 {
		return
	}
	next := p.versionsPossible & mask
	if next == 0 {
		p.report(n, diag.InconsistentVersion)
		return
	}
	p.versionsPossible = next
}

// registerAnchor records an id/name attribute for an anchor-eligible
// element, reporting ANCHOR_NOT_UNIQUE on a duplicate (§4.7, §9).
func (p *Parser) registerAnchor(n *tree.Node) {
	if !anchorEligible[n.ElementName] {
		return
	}
	for _, attr := range []string{"id", "name"} {
		v, ok := n.Attr(attr)
		if !ok || v == "" {
			continue
		}
		if p.anchors[v] {
			p.report(n, diag.AnchorNotUnique, v)
			continue
		}
		p.anchors[v] = true
	}
}

func foldName(xml bool, name string) string {
	if xml {
		return name
	}
	return strings.ToLower(name)
}
