package pprint

import (
	"bytes"
	"strings"
	"testing"

	"github.com/htmltidy/gotidy/charbuf"
	"github.com/htmltidy/gotidy/config"
	"github.com/htmltidy/gotidy/diag"
	"github.com/htmltidy/gotidy/tree"
	"github.com/stretchr/testify/require"
)

func newTestPrinter(t *testing.T, buf *charbuf.Buffer, opts ...config.Option) (*Printer, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	cfg := config.New(opts...)
	return New(&out, buf, cfg, diag.DiscardSink{}), &out
}

func elem(kind tree.Kind, name string) *tree.Node {
	return tree.NewElement(kind, name)
}

func text(buf *charbuf.Buffer, s string) *tree.Node {
	return tree.NewText(buf.AppendString(s))
}

func TestPrintTextEscapesMetacharacters(t *testing.T) {
	buf := charbuf.New()
	p, out := newTestPrinter(t, buf)
	p.cfg.QuoteAmpersand = true

	root := elem(tree.Root, "")
	para := elem(tree.StartTag, "p")
	para.AppendChild(text(buf, "a < b & c"))
	root.AppendChild(para)

	require.NoError(t, p.Print(root))
	require.Equal(t, "<p>a &lt; b &amp; c</p>\n", out.String())
}

func TestPrintAttributesQuoting(t *testing.T) {
	buf := charbuf.New()
	p, out := newTestPrinter(t, buf)

	root := elem(tree.Root, "")
	a := elem(tree.StartTag, "a")
	a.SetAttr("href", "index.html")
	a.AppendChild(text(buf, "home"))
	root.AppendChild(a)

	require.NoError(t, p.Print(root))
	require.Equal(t, `<a href="index.html">home</a>`+"\n", out.String())
}

func TestPrintPreformattedPreservesNewlines(t *testing.T) {
	buf := charbuf.New()
	p, out := newTestPrinter(t, buf)

	root := elem(tree.Root, "")
	pre := elem(tree.StartTag, "pre")
	pre.AppendChild(text(buf, "line one\nline two"))
	root.AppendChild(pre)

	require.NoError(t, p.Print(root))
	require.Equal(t, "<pre>line one\nline two</pre>\n", out.String())
}

func TestPrintCommentSuppressedByHideComments(t *testing.T) {
	buf := charbuf.New()
	cfg := config.New()
	cfg.HideComments = true
	var buf2 bytes.Buffer
	printer := New(&buf2, buf, cfg, diag.DiscardSink{})

	root := elem(tree.Root, "")
	c := elem(tree.Comment, "")
	c.Span = buf.AppendString(" a note ")
	root.AppendChild(c)
	para := elem(tree.StartTag, "p")
	para.AppendChild(text(buf, "hi"))
	root.AppendChild(para)

	require.NoError(t, printer.Print(root))
	require.NotContains(t, buf2.String(), "a note")
	require.Contains(t, buf2.String(), "<p>hi</p>")
}

func TestIndentAutoIndentsBlockChildren(t *testing.T) {
	buf := charbuf.New()
	p, out := newTestPrinter(t, buf, config.WithIndent(config.AutoBoolAuto, 2))

	root := elem(tree.Root, "")
	body := elem(tree.StartTag, "body")
	div := elem(tree.StartTag, "div")
	div.AppendChild(text(buf, "hi"))
	body.AppendChild(div)
	root.AppendChild(body)

	require.NoError(t, p.Print(root))
	require.Equal(t, "<body>\n  <div>\n    hi\n  </div>\n</body>\n", out.String())
}

func TestSmartQuoteFoldingUnderMakeClean(t *testing.T) {
	buf := charbuf.New()
	p, out := newTestPrinter(t, buf, config.WithMakeClean())

	root := elem(tree.Root, "")
	para := elem(tree.StartTag, "p")
	para.AppendChild(text(buf, "“quoted” — yes"))
	root.AppendChild(para)

	require.NoError(t, p.Print(root))
	require.Equal(t, "<p>\"quoted\" - yes</p>\n", out.String())
}

func TestVoidElementPrintsSelfClosingInXHTML(t *testing.T) {
	buf := charbuf.New()
	p, out := newTestPrinter(t, buf, config.WithXHTMLOut())

	root := elem(tree.Root, "")
	body := elem(tree.StartTag, "body")
	br := elem(tree.StartEndTag, "br")
	body.AppendChild(br)
	root.AppendChild(body)

	require.NoError(t, p.Print(root))
	require.Equal(t, "<body><br /></body>\n", out.String())
}

func TestPrintBodyOnlyEmitsBodyChildren(t *testing.T) {
	buf := charbuf.New()
	p, out := newTestPrinter(t, buf)

	root := elem(tree.Root, "")
	html := elem(tree.StartTag, "html")
	head := elem(tree.StartTag, "head")
	title := elem(tree.StartTag, "title")
	title.AppendChild(text(buf, "Doc"))
	head.AppendChild(title)
	body := elem(tree.StartTag, "body")
	para := elem(tree.StartTag, "p")
	para.AppendChild(text(buf, "hi"))
	body.AppendChild(para)
	html.AppendChild(head)
	html.AppendChild(body)
	root.AppendChild(html)

	require.NoError(t, p.PrintBody(root))
	require.Equal(t, "<p>hi</p>\n", out.String())
	require.NotContains(t, out.String(), "title")
}

func TestHideEndTagsOmitsOptionalCloseTags(t *testing.T) {
	buf := charbuf.New()
	cfg := config.New()
	cfg.HideEndTags = true
	var outBuf bytes.Buffer
	p := New(&outBuf, buf, cfg, diag.DiscardSink{})

	root := elem(tree.Root, "")
	ul := elem(tree.StartTag, "ul")
	li := elem(tree.StartTag, "li")
	li.AppendChild(text(buf, "item"))
	ul.AppendChild(li)
	root.AppendChild(ul)

	require.NoError(t, p.Print(root))
	require.NotContains(t, outBuf.String(), "</li>")
	require.Contains(t, outBuf.String(), "</ul>")
}

func TestWrapDisabledKeepsLongLineUnbroken(t *testing.T) {
	buf := charbuf.New()
	p, out := newTestPrinter(t, buf, config.WithWrap(0))

	root := elem(tree.Root, "")
	para := elem(tree.StartTag, "p")
	para.AppendChild(text(buf, "one two three four five six seven eight nine ten eleven twelve"))
	root.AppendChild(para)

	require.NoError(t, p.Print(root))
	require.Equal(t, 1, strings.Count(out.String(), "\n"))
}
