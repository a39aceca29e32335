// Package inline implements the inline-element duplication stack (C6): a
// record of currently-open inline elements that gets replayed into every
// new block, so markup like `<i><h1>...</h1></i>` renders with the
// italics carried across the heading the way old Mosaic-era browsers did.
//
// Grounded on the teacher's active-formatting-elements list
// (treebuilder/formatting.go's slice-of-entries, push/find/remove idiom),
// simplified from HTML5's reconstruction-with-markers algorithm down to
// Tidy's push/pop/duplicate-on-block-entry model (§4.6).
package inline

import "github.com/htmltidy/gotidy/tree"

// Entry is one cloned inline-element header held on the stack.
type Entry struct {
	Name       string
	Attributes []tree.Attribute
}

// Stack is the ordered inline-duplication stack (§4.6).
type Stack struct {
	entries []Entry
	deferred bool
}

// New returns an empty Stack.
func New() *Stack { return &Stack{} }

// cloneAttrs copies n's attribute slice so a later mutation of the live
// node's attributes can't retroactively change the stacked header.
func cloneAttrs(attrs []tree.Attribute) []tree.Attribute {
	return append([]tree.Attribute(nil), attrs...)
}

// Push records node's header, unless node is implicit, an <object> or
// <applet> (§4.6 explicitly exempts these), or the topmost entry already
// names the same tag (guards against `<em><em>...`).
func (s *Stack) Push(node *tree.Node) {
	if node.Implicit {
		return
	}
	if node.ElementName == "object" || node.ElementName == "applet" {
		return
	}
	if n := len(s.entries); n > 0 && s.entries[n-1].Name == node.ElementName {
		return
	}
	s.entries = append(s.entries, Entry{Name: node.ElementName, Attributes: cloneAttrs(node.Attributes)})
}

// Pop removes the topmost entry matching tag. ok is false if no such
// entry exists, which callers treat as a (recoverable) error per §4.6.
func (s *Stack) Pop(tag string) (Entry, bool) {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Name == tag {
			e := s.entries[i]
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return e, true
		}
	}
	return Entry{}, false
}

// IsPushed reports whether tag currently has an open entry on the stack.
func (s *Stack) IsPushed(tag string) bool {
	for _, e := range s.entries {
		if e.Name == tag {
			return true
		}
	}
	return false
}

// Len reports the number of entries currently on the stack.
func (s *Stack) Len() int { return len(s.entries) }

// DeferDuplication suppresses InlineDup until the next call to
// EndDefer, used when entering a table (§4.6).
func (s *Stack) DeferDuplication() { s.deferred = true }

// EndDefer clears a prior DeferDuplication, re-enabling InlineDup.
func (s *Stack) EndDefer() { s.deferred = false }

// InlineDup re-emits a start-tag node for every stacked entry, in stack
// order, as children of block (the newly entered block element), each
// marked Implicit. It is a no-op while duplication is deferred. Returns
// the nodes it created for the caller to chain further children under
// the innermost one.
func (s *Stack) InlineDup(block *tree.Node) []*tree.Node {
	if s.deferred || len(s.entries) == 0 {
		return nil
	}
	created := make([]*tree.Node, 0, len(s.entries))
	for _, e := range s.entries {
		n := tree.NewElement(tree.StartTag, e.Name)
		n.Attributes = cloneAttrs(e.Attributes)
		n.Implicit = true
		block.AppendChild(n)
		created = append(created, n)
	}
	return created
}
