package parser

import (
	"strings"
	"testing"

	"github.com/htmltidy/gotidy/charbuf"
	"github.com/htmltidy/gotidy/config"
	"github.com/htmltidy/gotidy/diag"
	"github.com/htmltidy/gotidy/lexer"
	"github.com/htmltidy/gotidy/source"
	"github.com/htmltidy/gotidy/tags"
	"github.com/htmltidy/gotidy/tree"
	"github.com/stretchr/testify/require"
)

type collectingSink struct{ reports []diag.Report }

func (s *collectingSink) Emit(r diag.Report) { s.reports = append(s.reports, r) }

func (s *collectingSink) has(code diag.Code) bool {
	for _, r := range s.reports {
		if r.Code == code {
			return true
		}
	}
	return false
}

func newTestParser(t *testing.T, input string) (*Parser, *collectingSink) {
	t.Helper()
	cfg := config.Default()
	sink := &collectingSink{}
	src, err := source.New(strings.NewReader(input), cfg, sink)
	require.NoError(t, err)
	buf := charbuf.New()
	lex := lexer.New(src, buf, sink, cfg)
	return New(lex, buf, sink, false), sink
}

func findChild(n *tree.Node, name string) *tree.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.ElementName == name {
			return c
		}
	}
	return nil
}

func TestParseDocumentInfersHeadAndBody(t *testing.T) {
	p, _ := newTestParser(t, "<p>hello</p>")
	root := p.ParseDocument()

	html := findChild(root, "html")
	require.NotNil(t, html)
	require.True(t, html.Implicit)

	head := findChild(html, "head")
	require.NotNil(t, head)
	require.True(t, head.Implicit)

	body := findChild(html, "body")
	require.NotNil(t, body)
	require.True(t, body.Implicit)

	p2 := findChild(body, "p")
	require.NotNil(t, p2)
	require.False(t, p2.Implicit)
}

func TestParseDocumentMissingEndTagBefore(t *testing.T) {
	p, sink := newTestParser(t, "<p>one<p>two")
	root := p.ParseDocument()

	html := findChild(root, "html")
	body := findChild(html, "body")

	var ps []*tree.Node
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.ElementName == "p" {
			ps = append(ps, c)
		}
	}
	require.Len(t, ps, 2)
	require.True(t, sink.has(diag.MissingEndtagBefore))
}

func TestParseListItemsAreSiblings(t *testing.T) {
	p, _ := newTestParser(t, "<ul><li>a<li>b</ul>")
	root := p.ParseDocument()
	html := findChild(root, "html")
	body := findChild(html, "body")
	ul := findChild(body, "ul")
	require.NotNil(t, ul)

	var items []*tree.Node
	for c := ul.FirstChild; c != nil; c = c.NextSibling {
		items = append(items, c)
	}
	require.Len(t, items, 2)
	require.Equal(t, "li", items[0].ElementName)
	require.Equal(t, "li", items[1].ElementName)
}

func TestParseTableExilesMisplacedContent(t *testing.T) {
	p, sink := newTestParser(t, "<table>stray<tr><td>cell</td></tr></table>")
	root := p.ParseDocument()
	html := findChild(root, "html")
	body := findChild(html, "body")
	table := findChild(body, "table")
	require.NotNil(t, table)

	// "stray" text is exiled to just before the table, not nested inside it.
	require.Equal(t, tree.Text, table.PrevSibling.Kind)
	require.True(t, sink.has(diag.TagNotAllowedIn))

	tr := findChild(table, "tr")
	require.NotNil(t, tr)
	td := findChild(tr, "td")
	require.NotNil(t, td)
}

func TestParseDuplicateFramesetDiscarded(t *testing.T) {
	p, sink := newTestParser(t, "<frameset></frameset><frameset></frameset>")
	root := p.ParseDocument()
	html := findChild(root, "html")
	body := findChild(html, "body")
	require.NotNil(t, body)

	var framesets []*tree.Node
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.ElementName == "frameset" {
			framesets = append(framesets, c)
		}
	}
	require.Len(t, framesets, 1)
	require.True(t, sink.has(diag.DuplicateFrameset))
}

func TestCheckIntegrityAcceptsWellFormedTree(t *testing.T) {
	p, _ := newTestParser(t, "<p>one</p><p>two</p>")
	root := p.ParseDocument()
	require.NotPanics(t, func() { CheckIntegrity(root) })
}

func TestHTMLVersionComplianceNarrowsVersions(t *testing.T) {
	p, _ := newTestParser(t, "<frameset></frameset>")
	root := p.ParseDocument()
	p.HTMLVersionCompliance(root)
	require.True(t, p.DetectedVersion().Has(tags.VersFrameset))
}
