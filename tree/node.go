// Package tree implements the document tree's data model (§3): a single
// tagged-variant Node type, doubly-linked siblings, and owning parent→child
// edges. Text content is never copied into the node; it is a Span into the
// document's shared charbuf.Buffer (C2).
//
// This collapses the teacher's (MeKo-Christian/JustGoHTML) separate
// Element/Text/Comment/DocumentType/Document node types into one struct, per
// the original spec's design note in §9 ("Tree as owned tagged variant") and
// per the source spec's own Node struct (tidylib-src/src/lexer.h): one record
// with a discriminating Kind field, rather than a family of node types
// connected through an interface.
package tree

import "github.com/htmltidy/gotidy/charbuf"

// Kind discriminates the tagged union of node variants (§3).
type Kind int

const (
	Root Kind = iota
	DocType
	Comment
	ProcInstr
	Text
	StartTag
	EndTag
	StartEndTag
	CData
	Section
	Asp
	Jste
	Php
	XmlDecl
)

//go:generate stringer -type=Kind
func (k Kind) String() string {
	names := [...]string{
		"Root", "DocType", "Comment", "ProcInstr", "Text", "StartTag",
		"EndTag", "StartEndTag", "CData", "Section", "Asp", "Jste", "Php",
		"XmlDecl",
	}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// TagRef is an opaque reference into the static tag dictionary (C3). It is
// nil for text nodes, unknown elements, and non-element node kinds.
type TagRef interface {
	// TagName returns the dictionary's canonical (lowercased) name.
	TagName() string
}

// Attribute is one name/value pair on a StartTag (or StartEndTag) node.
type Attribute struct {
	Name string
	// HasValue distinguishes a boolean/valueless attribute ("disabled")
	// from one with an explicit empty value ("disabled=\"\"").
	HasValue bool
	Value    string
	// Quote records the delimiter the input used, so the printer can
	// preserve author intent when literal-attributes is set.
	Quote byte // '"', '\'', or 0 for unquoted/absent
	// Ref is a slot for this attribute name's dictionary entry. Nothing
	// in the lexer or parser sets it, so it is nil on every attribute
	// they build.
	Ref interface{}
	// Asp holds an embedded ASP/PHP node computing this attribute's
	// value, for attributes like `<input value="<%= x %>">`.
	Asp *Node
}

// IsPlaceholder reports whether this is a pure server-markup placeholder
// attribute (no name, just an embedded Asp/Php node), per §3.
func (a Attribute) IsPlaceholder() bool { return a.Name == "" && a.Asp != nil }

// Node is the single cell type for the whole document tree (§3).
type Node struct {
	Kind Kind

	// TagRef is a slot for the static dictionary entry of element-kind
	// nodes. Nothing in the lexer or parser sets it, so it is nil on every
	// node they build; the parser and printer look entries up by
	// ElementName with tags.Lookup instead.
	TagRef TagRef

	// ElementName is the node's owned, possibly-lowercased tag name.
	// Empty for Text nodes and Root.
	ElementName string

	// Span indexes this node's raw content in the shared charbuf.Buffer.
	// For element-kind nodes Span.Start == Span.End; their content lives
	// in Children instead.
	Span charbuf.Span

	Line, Column int

	Attributes []Attribute

	Parent, PrevSibling, NextSibling, FirstChild, LastChild *Node

	// Closed is true for a self-closed tag the lexer read ("<br/>") and
	// for every element the parser has popped off its open-elements
	// stack, whether a matching end tag or an implicit close ended it.
	Closed bool
	// Implicit is true if the builder synthesized this node; it was not
	// present in the input.
	Implicit bool
	// Linebreak requests a trailing newline on output; meaningful for
	// Comment nodes only.
	Linebreak bool
}

// IsElement reports whether this node represents a markup element (as
// opposed to text, comment, or other leaf content).
func (n *Node) IsElement() bool {
	switch n.Kind {
	case StartTag, EndTag, StartEndTag:
		return true
	default:
		return false
	}
}

// HasChildren reports whether the node has at least one child.
func (n *Node) HasChildren() bool { return n.FirstChild != nil }

// AppendChild links child as the new last child of n.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	child.PrevSibling = n.LastChild
	child.NextSibling = nil
	if n.LastChild != nil {
		n.LastChild.NextSibling = child
	} else {
		n.FirstChild = child
	}
	n.LastChild = child
}

// InsertBefore links newChild immediately before refChild among n's
// children. If refChild is nil, newChild is appended.
func (n *Node) InsertBefore(newChild, refChild *Node) {
	if refChild == nil {
		n.AppendChild(newChild)
		return
	}
	newChild.Parent = n
	newChild.PrevSibling = refChild.PrevSibling
	newChild.NextSibling = refChild
	if refChild.PrevSibling != nil {
		refChild.PrevSibling.NextSibling = newChild
	} else {
		n.FirstChild = newChild
	}
	refChild.PrevSibling = newChild
}

// InsertAfter links newChild immediately after refChild among n's children.
func (n *Node) InsertAfter(newChild, refChild *Node) {
	if refChild == nil || refChild.NextSibling == nil {
		n.AppendChild(newChild)
		return
	}
	n.InsertBefore(newChild, refChild.NextSibling)
}

// Remove unlinks n from its parent and sibling chain. n.Parent becomes nil;
// n's own children are left untouched (callers that want to discard a
// subtree should drop all references to n).
func (n *Node) Remove() {
	p := n.Parent
	if p == nil {
		return
	}
	if n.PrevSibling != nil {
		n.PrevSibling.NextSibling = n.NextSibling
	} else {
		p.FirstChild = n.NextSibling
	}
	if n.NextSibling != nil {
		n.NextSibling.PrevSibling = n.PrevSibling
	} else {
		p.LastChild = n.PrevSibling
	}
	n.Parent = nil
	n.PrevSibling = nil
	n.NextSibling = nil
}

// ReplaceWith substitutes newNode for n in n's parent's child list. n's
// children stay under n and newNode keeps its own; n is left detached.
func (n *Node) ReplaceWith(newNode *Node) {
	p := n.Parent
	if p == nil {
		return
	}
	newNode.Parent = p
	newNode.PrevSibling = n.PrevSibling
	newNode.NextSibling = n.NextSibling
	if n.PrevSibling != nil {
		n.PrevSibling.NextSibling = newNode
	} else {
		p.FirstChild = newNode
	}
	if n.NextSibling != nil {
		n.NextSibling.PrevSibling = newNode
	} else {
		p.LastChild = newNode
	}
	n.Parent = nil
	n.PrevSibling = nil
	n.NextSibling = nil
}

// Children returns the node's children as a slice, left to right. Intended
// for cleanup passes that need to iterate a stable snapshot while mutating
// the tree (the live linked list must not be walked while splicing).
func (n *Node) Children() []*Node {
	var out []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// SoleChild returns n's only child, or nil if n has zero or more than one
// child. Grounds clean.c's HasOneChild/StripOnlyChild family of rules.
func (n *Node) SoleChild() *Node {
	if n.FirstChild == nil || n.FirstChild != n.LastChild {
		return nil
	}
	return n.FirstChild
}

// Attr returns the value of the named attribute and whether it was present.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets (or replaces) an attribute's value, defaulting to a
// double-quoted delimiter when newly created.
func (n *Node) SetAttr(name, value string) {
	for i := range n.Attributes {
		if n.Attributes[i].Name == name {
			n.Attributes[i].Value = value
			n.Attributes[i].HasValue = true
			return
		}
	}
	n.Attributes = append(n.Attributes, Attribute{Name: name, HasValue: true, Value: value, Quote: '"'})
}

// RemoveAttr deletes the named attribute, if present.
func (n *Node) RemoveAttr(name string) {
	for i := range n.Attributes {
		if n.Attributes[i].Name == name {
			n.Attributes = append(n.Attributes[:i], n.Attributes[i+1:]...)
			return
		}
	}
}

// NewElement creates a detached element node of the given kind and name.
func NewElement(kind Kind, name string) *Node {
	return &Node{Kind: kind, ElementName: name}
}

// NewText creates a detached text node whose content is span.
func NewText(span charbuf.Span) *Node {
	return &Node{Kind: Text, Span: span}
}
