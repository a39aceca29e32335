package cleanup

import (
	"testing"

	"github.com/htmltidy/gotidy/charbuf"
	"github.com/htmltidy/gotidy/config"
	"github.com/htmltidy/gotidy/diag"
	"github.com/htmltidy/gotidy/tree"
	"github.com/stretchr/testify/require"
)

func newTestCleaner(t *testing.T, opts ...config.Option) (*Cleaner, *charbuf.Buffer) {
	t.Helper()
	buf := charbuf.New()
	cfg := config.New(opts...)
	return New(buf, cfg, diag.DiscardSink{}), buf
}

func elem(kind tree.Kind, name string) *tree.Node {
	return tree.NewElement(kind, name)
}

func text(buf *charbuf.Buffer, s string) *tree.Node {
	return tree.NewText(buf.AppendString(s))
}

func findChild(n *tree.Node, name string) *tree.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.ElementName == name {
			return c
		}
	}
	return nil
}

func TestFontToSpanFoldsAttributesIntoStyle(t *testing.T) {
	c, buf := newTestCleaner(t)

	root := elem(tree.StartTag, "p")
	font := elem(tree.StartTag, "font")
	font.SetAttr("face", "Arial")
	font.SetAttr("color", "red")
	font.AppendChild(text(buf, "hi"))
	root.AppendChild(font)
	root.AppendChild(elem(tree.StartTag, "b")) // keeps font from being the sole child

	c.CleanTree(root)

	span := findChild(root, "span")
	require.NotNil(t, span)
	style, ok := span.Attr("style")
	require.True(t, ok)
	require.Contains(t, style, "font-family: Arial")
	require.Contains(t, style, "color: red")
}

func TestCenterToDivRewritesAlignment(t *testing.T) {
	c, buf := newTestCleaner(t)

	root := elem(tree.StartTag, "body")
	center := elem(tree.StartTag, "center")
	center.AppendChild(text(buf, "hi"))
	root.AppendChild(center)

	c.CleanTree(root)

	div := findChild(root, "div")
	require.NotNil(t, div)
	style, ok := div.Attr("style")
	require.True(t, ok)
	require.Equal(t, "text-align: center", style)
}

func TestCenterToDivDropsContainerWhenDropFontTags(t *testing.T) {
	c, _ := newTestCleaner(t)
	c.cfg.DropFontTags = true

	root := elem(tree.StartTag, "body")
	center := elem(tree.StartTag, "center")
	root.AppendChild(center)

	c.CleanTree(root)

	require.Nil(t, findChild(root, "center"))
	require.NotNil(t, findChild(root, "br"))
}

func TestNestedListPromotesInnerList(t *testing.T) {
	c, _ := newTestCleaner(t)

	root := elem(tree.StartTag, "body")
	outer := elem(tree.StartTag, "ul")
	li := elem(tree.StartTag, "li")
	inner := elem(tree.StartTag, "ul")
	inner.AppendChild(elem(tree.StartTag, "li"))
	li.AppendChild(inner)
	outer.AppendChild(li)
	root.AppendChild(outer)

	c.CleanTree(root)

	require.Same(t, inner, root.FirstChild)
	require.Nil(t, inner.NextSibling)
}

func TestNestedListReHomesUnderPrecedingList(t *testing.T) {
	c, _ := newTestCleaner(t)

	root := elem(tree.StartTag, "body")
	first := elem(tree.StartTag, "ul")
	firstLi := elem(tree.StartTag, "li")
	first.AppendChild(firstLi)
	root.AppendChild(first)

	outer := elem(tree.StartTag, "ul")
	li := elem(tree.StartTag, "li")
	inner := elem(tree.StartTag, "ul")
	inner.AppendChild(elem(tree.StartTag, "li"))
	li.AppendChild(inner)
	outer.AppendChild(li)
	root.AppendChild(outer)

	c.CleanTree(root)

	require.Same(t, inner, firstLi.FirstChild)
	require.Same(t, first, root.FirstChild)
	require.Nil(t, first.NextSibling)
}

func TestList2BQAndBQ2DivCollapseIndentOnlyList(t *testing.T) {
	root := elem(tree.StartTag, "body")
	ul := elem(tree.StartTag, "ul")
	li := elem(tree.StartTag, "li")
	li.Implicit = true
	para := elem(tree.StartTag, "p")
	li.AppendChild(para)
	ul.AppendChild(li)
	root.AppendChild(ul)

	List2BQ(root)
	bq := findChild(root, "blockquote")
	require.NotNil(t, bq)
	require.True(t, bq.Implicit)
	require.Same(t, para, bq.FirstChild)

	BQ2Div(root)
	div := findChild(root, "div")
	require.NotNil(t, div)
	style, ok := div.Attr("style")
	require.True(t, ok)
	require.Equal(t, "margin-left: 2em", style)
}

func TestStyleInterningReusesClassForIdenticalRules(t *testing.T) {
	c, _ := newTestCleaner(t)
	c.cfg.MakeClean = true

	root := elem(tree.StartTag, "body")
	p1 := elem(tree.StartTag, "p")
	p1.SetAttr("style", "color: red")
	p2 := elem(tree.StartTag, "p")
	p2.SetAttr("style", "color: red")
	root.AppendChild(p1)
	root.AppendChild(p2)

	c.DefineStyleRules(root)

	class1, ok1 := p1.Attr("class")
	class2, ok2 := p2.Attr("class")
	require.True(t, ok1)
	require.True(t, ok2)
	require.Equal(t, class1, class2)
	require.Len(t, c.styles.rules, 1)
}

func TestCreateStyleElementSynthesizesStyleSheet(t *testing.T) {
	c, _ := newTestCleaner(t)
	c.cfg.MakeClean = true

	html := elem(tree.StartTag, "html")
	head := elem(tree.StartTag, "head")
	body := elem(tree.StartTag, "body")
	body.SetAttr("bgcolor", "white")
	html.AppendChild(head)
	html.AppendChild(body)

	c.CreateStyleElement(html)

	style := findChild(head, "style")
	require.NotNil(t, style)
	require.True(t, style.Implicit)
	_, stillHasBgcolor := body.Attr("bgcolor")
	require.False(t, stillHasBgcolor)
}

func TestFixBrakesDiscardsFirstTrailingBrAndHoistsRest(t *testing.T) {
	c, _ := newTestCleaner(t)

	root := elem(tree.StartTag, "body")
	p := elem(tree.StartTag, "p")
	br1 := elem(tree.StartTag, "br")
	br2 := elem(tree.StartTag, "br")
	p.AppendChild(br1)
	p.AppendChild(br2)
	root.AppendChild(p)

	c.FixBrakes(root)

	// p ends up empty (both trailing <br>s leave it) and is itself trimmed,
	// leaving the hoisted br1 as body's sole remaining child.
	require.Nil(t, p.Parent)
	require.Same(t, br1, root.FirstChild)
	require.Nil(t, root.FirstChild.NextSibling)
}

func TestFixBrakesTrimsEmptyElement(t *testing.T) {
	c, _ := newTestCleaner(t)

	root := elem(tree.StartTag, "body")
	span := elem(tree.StartTag, "span")
	root.AppendChild(span)
	div := elem(tree.StartTag, "div")
	div.AppendChild(elem(tree.StartTag, "br"))
	root.AppendChild(div)

	c.FixBrakes(root)

	require.Nil(t, findChild(root, "div"))
}

func TestVerifyHTTPEquivRewritesCharset(t *testing.T) {
	c, _ := newTestCleaner(t, config.WithEncoding(config.EncWin1252))

	head := elem(tree.StartTag, "head")
	meta := elem(tree.StartTag, "meta")
	meta.SetAttr("http-equiv", "Content-Type")
	meta.SetAttr("content", "text/html; charset=utf-8")
	head.AppendChild(meta)

	c.VerifyHTTPEquiv(head)

	content, ok := meta.Attr("content")
	require.True(t, ok)
	require.Contains(t, content, "charset=windows-1252")
}

func TestDropSectionsPrunesIfEndifRun(t *testing.T) {
	c, _ := newTestCleaner(t)
	c.cfg.Word2000 = true

	root := elem(tree.StartTag, "body")
	root.AppendChild(elem(tree.Section, "if !mso"))
	root.AppendChild(text(charbuf.New(), "hidden"))
	root.AppendChild(elem(tree.Section, "endif"))
	kept := elem(tree.StartTag, "p")
	root.AppendChild(kept)

	c.DropSections(root)

	require.Same(t, kept, root.FirstChild)
}

func TestDropSectionsKeepsVMLContent(t *testing.T) {
	c, _ := newTestCleaner(t)
	c.cfg.Word2000 = true

	root := elem(tree.StartTag, "body")
	root.AppendChild(elem(tree.Section, "if !vml"))
	kept := elem(tree.StartTag, "p")
	root.AppendChild(kept)
	root.AppendChild(elem(tree.Section, "endif"))

	c.DropSections(root)

	// the "if !vml" marker itself is discarded like any other section token,
	// but (unlike a regular if/endif run) the content between it and its
	// endif is left alone rather than pruned away.
	require.Same(t, kept, root.FirstChild)
	require.Nil(t, kept.NextSibling)
}

func TestPurgeWord2000AttributesStripsMsoClassesAndStyle(t *testing.T) {
	c, _ := newTestCleaner(t)

	root := elem(tree.StartTag, "body")
	p := elem(tree.StartTag, "p")
	p.SetAttr("class", "MsoNormal")
	p.SetAttr("style", "mso-margin-top-alt: auto")
	p.SetAttr("lang", "EN-US")
	root.AppendChild(p)

	c.purgeWord2000Tree(root)

	_, hasClass := p.Attr("class")
	_, hasStyle := p.Attr("style")
	_, hasLang := p.Attr("lang")
	require.False(t, hasClass)
	require.False(t, hasStyle)
	require.False(t, hasLang)
}

func TestPurgeWord2000AttributesKeepsUserClass(t *testing.T) {
	c, _ := newTestCleaner(t)

	root := elem(tree.StartTag, "body")
	pre := elem(tree.StartTag, "pre")
	pre.SetAttr("class", "Code")
	root.AppendChild(pre)

	c.purgeWord2000Tree(root)

	class, ok := pre.Attr("class")
	require.True(t, ok)
	require.Equal(t, "Code", class)
}

func TestNestedEmphasisCollapsesSameTagNesting(t *testing.T) {
	root := elem(tree.StartTag, "p")
	outer := elem(tree.StartTag, "b")
	inner := elem(tree.StartTag, "b")
	inner.AppendChild(elem(tree.StartTag, "i"))
	outer.AppendChild(inner)
	root.AppendChild(outer)

	NestedEmphasis(root)

	require.Same(t, outer, root.FirstChild)
	require.Equal(t, "i", outer.FirstChild.ElementName)
}
