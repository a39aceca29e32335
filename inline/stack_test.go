package inline

import (
	"testing"

	"github.com/htmltidy/gotidy/tree"
	"github.com/stretchr/testify/require"
)

func TestPushAndIsPushed(t *testing.T) {
	s := New()
	em := tree.NewElement(tree.StartTag, "em")
	s.Push(em)
	require.True(t, s.IsPushed("em"))
	require.False(t, s.IsPushed("i"))
}

func TestPushSkipsImplicitAndObjectApplet(t *testing.T) {
	s := New()
	implicit := tree.NewElement(tree.StartTag, "b")
	implicit.Implicit = true
	s.Push(implicit)
	require.False(t, s.IsPushed("b"))

	s.Push(tree.NewElement(tree.StartTag, "object"))
	require.False(t, s.IsPushed("object"))
}

func TestPushSkipsDuplicateTopmost(t *testing.T) {
	s := New()
	s.Push(tree.NewElement(tree.StartTag, "em"))
	s.Push(tree.NewElement(tree.StartTag, "em"))
	require.Equal(t, 1, s.Len())
}

func TestPopRemovesTopmostMatch(t *testing.T) {
	s := New()
	s.Push(tree.NewElement(tree.StartTag, "i"))
	s.Push(tree.NewElement(tree.StartTag, "b"))

	e, ok := s.Pop("i")
	require.True(t, ok)
	require.Equal(t, "i", e.Name)
	require.False(t, s.IsPushed("i"))
	require.True(t, s.IsPushed("b"))
}

func TestPopMissingReturnsNotOK(t *testing.T) {
	s := New()
	_, ok := s.Pop("em")
	require.False(t, ok)
}

func TestInlineDupReplaysStackIntoBlock(t *testing.T) {
	s := New()
	i := tree.NewElement(tree.StartTag, "i")
	i.Attributes = []tree.Attribute{{Name: "class", HasValue: true, Value: "x"}}
	s.Push(i)

	h1 := tree.NewElement(tree.StartTag, "h1")
	created := s.InlineDup(h1)

	require.Len(t, created, 1)
	require.Equal(t, "i", created[0].ElementName)
	require.True(t, created[0].Implicit)
	require.Same(t, h1, created[0].Parent)
	require.Equal(t, "x", created[0].Attributes[0].Value)
}

func TestInlineDupDeferredIsNoOp(t *testing.T) {
	s := New()
	s.Push(tree.NewElement(tree.StartTag, "b"))
	s.DeferDuplication()

	table := tree.NewElement(tree.StartTag, "table")
	created := s.InlineDup(table)
	require.Empty(t, created)

	s.EndDefer()
	created = s.InlineDup(table)
	require.Len(t, created, 1)
}

func TestInlineDupClonesAttributesIndependently(t *testing.T) {
	s := New()
	src := tree.NewElement(tree.StartTag, "span")
	src.Attributes = []tree.Attribute{{Name: "id", HasValue: true, Value: "orig"}}
	s.Push(src)

	src.Attributes[0].Value = "mutated-after-push"

	block := tree.NewElement(tree.StartTag, "div")
	created := s.InlineDup(block)
	require.Equal(t, "orig", created[0].Attributes[0].Value)
}
