package lexer

import (
	"strings"
	"testing"

	"github.com/htmltidy/gotidy/charbuf"
	"github.com/htmltidy/gotidy/config"
	"github.com/htmltidy/gotidy/diag"
	"github.com/htmltidy/gotidy/source"
	"github.com/htmltidy/gotidy/tree"
	"github.com/stretchr/testify/require"
)

func newTestLexer(t *testing.T, input string) (*Lexer, *charbuf.Buffer) {
	t.Helper()
	cfg := config.Default()
	src, err := source.New(strings.NewReader(input), cfg, diag.DiscardSink{})
	require.NoError(t, err)
	buf := charbuf.New()
	return New(src, buf, diag.DiscardSink{}, cfg), buf
}

func TestLexPlainText(t *testing.T) {
	l, buf := newTestLexer(t, "hello world")
	tok := l.GetToken(MixedContent)
	require.Equal(t, tree.Text, tok.Kind)
	require.Equal(t, "hello world", buf.Text(tok.Span))
}

func TestLexCollapsesWhitespace(t *testing.T) {
	l, buf := newTestLexer(t, "a   b\n\nc")
	tok := l.GetToken(MixedContent)
	require.Equal(t, "a b c", buf.Text(tok.Span))
}

func TestLexStartTagWithAttributes(t *testing.T) {
	l, _ := newTestLexer(t, `<a href="x.html" class=foo>`)
	tok := l.GetToken(MixedContent)
	require.Equal(t, tree.StartTag, tok.Kind)
	require.Equal(t, "a", tok.ElementName)
	require.Len(t, tok.Attributes, 2)
	require.Equal(t, "href", tok.Attributes[0].Name)
	require.Equal(t, "x.html", tok.Attributes[0].Value)
	require.Equal(t, byte('"'), tok.Attributes[0].Quote)
	require.Equal(t, "class", tok.Attributes[1].Name)
	require.Equal(t, "foo", tok.Attributes[1].Value)
	require.Equal(t, byte(0), tok.Attributes[1].Quote)
}

func TestLexSelfClosingTag(t *testing.T) {
	l, _ := newTestLexer(t, `<br/>`)
	tok := l.GetToken(MixedContent)
	require.Equal(t, tree.StartEndTag, tok.Kind)
	require.True(t, tok.Closed)
}

func TestLexEndTag(t *testing.T) {
	l, _ := newTestLexer(t, `</div>`)
	tok := l.GetToken(MixedContent)
	require.Equal(t, tree.EndTag, tok.Kind)
	require.Equal(t, "div", tok.ElementName)
}

func TestLexComment(t *testing.T) {
	l, buf := newTestLexer(t, `<!-- hi there -->`)
	tok := l.GetToken(MixedContent)
	require.Equal(t, tree.Comment, tok.Kind)
	require.Equal(t, " hi there ", buf.Text(tok.Span))
}

func TestLexDoctype(t *testing.T) {
	l, buf := newTestLexer(t, `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN">`)
	tok := l.GetToken(MixedContent)
	require.Equal(t, tree.DocType, tok.Kind)
	require.Contains(t, buf.Text(tok.Span), "html PUBLIC")
}

func TestLexCDATASection(t *testing.T) {
	l, buf := newTestLexer(t, `<![CDATA[<not a tag>]]>`)
	tok := l.GetToken(MixedContent)
	require.Equal(t, tree.CData, tok.Kind)
	require.Equal(t, "<not a tag>", buf.Text(tok.Span))
}

func TestLexASPIsland(t *testing.T) {
	l, buf := newTestLexer(t, `<% response.write "hi" %>`)
	tok := l.GetToken(MixedContent)
	require.Equal(t, tree.Asp, tok.Kind)
	require.Contains(t, buf.Text(tok.Span), "response.write")
}

func TestLexNamedEntity(t *testing.T) {
	l, buf := newTestLexer(t, `a&amp;b`)
	tok := l.GetToken(MixedContent)
	require.Equal(t, "a&b", buf.Text(tok.Span))
}

func TestLexNumericEntity(t *testing.T) {
	l, buf := newTestLexer(t, `&#65;&#x42;`)
	tok := l.GetToken(MixedContent)
	require.Equal(t, "AB", buf.Text(tok.Span))
}

func TestUngetTokenReplaysToken(t *testing.T) {
	l, _ := newTestLexer(t, `<p>hi`)
	first := l.GetToken(MixedContent)
	l.UngetToken(first)
	again := l.GetToken(MixedContent)
	require.Same(t, first, again)
}

func TestLexEOFReturnsNil(t *testing.T) {
	l, _ := newTestLexer(t, ``)
	require.Nil(t, l.GetToken(MixedContent))
}

func TestLexScriptRawText(t *testing.T) {
	l, buf := newTestLexer(t, `<script>if (a<b) { var s = "</not-closing"; }</script>`)
	start := l.GetToken(MixedContent)
	require.Equal(t, "script", start.ElementName)

	body := l.GetToken(MixedContent)
	require.Equal(t, tree.Text, body.Kind)
	require.Contains(t, buf.Text(body.Span), "</not-closing")
	require.NotContains(t, buf.Text(body.Span), "</script>")
}
