package tree

import (
	"testing"

	"github.com/htmltidy/gotidy/charbuf"
	"github.com/stretchr/testify/require"
)

func TestAppendChildLinksSiblings(t *testing.T) {
	root := NewElement(Root, "")
	a := NewElement(StartTag, "p")
	b := NewElement(StartTag, "div")

	root.AppendChild(a)
	root.AppendChild(b)

	require.Same(t, a, root.FirstChild)
	require.Same(t, b, root.LastChild)
	require.Same(t, b, a.NextSibling)
	require.Same(t, a, b.PrevSibling)
	require.Same(t, root, a.Parent)
	require.Same(t, root, b.Parent)
}

func TestInsertBeforeAndAfter(t *testing.T) {
	root := NewElement(Root, "")
	a := NewElement(StartTag, "a")
	c := NewElement(StartTag, "c")
	root.AppendChild(a)
	root.AppendChild(c)

	b := NewElement(StartTag, "b")
	root.InsertBefore(b, c)

	require.Equal(t, []*Node{a, b, c}, root.Children())

	d := NewElement(StartTag, "d")
	root.InsertAfter(d, c)
	require.Equal(t, []*Node{a, b, c, d}, root.Children())
}

func TestRemoveUnlinksNode(t *testing.T) {
	root := NewElement(Root, "")
	a, b, c := NewElement(StartTag, "a"), NewElement(StartTag, "b"), NewElement(StartTag, "c")
	root.AppendChild(a)
	root.AppendChild(b)
	root.AppendChild(c)

	b.Remove()

	require.Equal(t, []*Node{a, c}, root.Children())
	require.Nil(t, b.Parent)
	require.Same(t, c, a.NextSibling)
}

func TestReplaceWithSplicesPosition(t *testing.T) {
	root := NewElement(Root, "")
	a, b, c := NewElement(StartTag, "a"), NewElement(StartTag, "font"), NewElement(StartTag, "c")
	root.AppendChild(a)
	root.AppendChild(b)
	root.AppendChild(c)

	span := NewElement(StartTag, "span")
	b.ReplaceWith(span)

	require.Equal(t, []*Node{a, span, c}, root.Children())
	require.Nil(t, b.Parent)
}

func TestSoleChild(t *testing.T) {
	root := NewElement(Root, "")
	require.Nil(t, root.SoleChild())

	only := NewElement(StartTag, "li")
	root.AppendChild(only)
	require.Same(t, only, root.SoleChild())

	root.AppendChild(NewElement(StartTag, "li"))
	require.Nil(t, root.SoleChild())
}

func TestAttrSetGetRemove(t *testing.T) {
	n := NewElement(StartTag, "a")
	n.SetAttr("href", "index.html")
	v, ok := n.Attr("href")
	require.True(t, ok)
	require.Equal(t, "index.html", v)

	n.SetAttr("href", "other.html")
	v, _ = n.Attr("href")
	require.Equal(t, "other.html", v)

	n.RemoveAttr("href")
	_, ok = n.Attr("href")
	require.False(t, ok)
}

func TestAttributePlaceholder(t *testing.T) {
	asp := NewElement(Asp, "")
	placeholder := Attribute{Asp: asp}
	require.True(t, placeholder.IsPlaceholder())

	named := Attribute{Name: "value", Asp: asp}
	require.False(t, named.IsPlaceholder())
}

func TestNewTextHoldsSpan(t *testing.T) {
	buf := charbuf.New()
	sp := buf.AppendString("hello")
	n := NewText(sp)
	require.Equal(t, Text, n.Kind)
	require.Equal(t, "hello", buf.Text(n.Span))
}

func TestKindString(t *testing.T) {
	require.Equal(t, "StartTag", StartTag.String())
	require.Equal(t, "Unknown", Kind(999).String())
}

func TestIsElement(t *testing.T) {
	require.True(t, NewElement(StartTag, "p").IsElement())
	require.True(t, NewElement(EndTag, "p").IsElement())
	require.True(t, NewElement(StartEndTag, "br").IsElement())
	require.False(t, NewElement(Text, "").IsElement())
	require.False(t, NewElement(Comment, "").IsElement())
}
