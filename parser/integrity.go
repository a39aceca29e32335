package parser

import "github.com/htmltidy/gotidy/tree"

// CheckIntegrity walks the finished tree verifying that every child's
// Parent pointer and every sibling's Prev/NextSibling pointers are mutually
// consistent with the owning edges the builder laid down (§4.7). It panics
// on the first inconsistency found: a broken tree is a parser bug, not a
// malformed-input condition, so there is no recovery path — callers that
// want a diagnostic instead of a panic should run this under recover() and
// translate it into a NODE_INTEGRITY_FAILURE report themselves.
func CheckIntegrity(root *tree.Node) {
	checkNode(root)
}

func checkNode(n *tree.Node) {
	var prev *tree.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Parent != n {
			panic("tree integrity: child.Parent does not point back to parent")
		}
		if c.PrevSibling != prev {
			panic("tree integrity: sibling chain out of sync")
		}
		if prev != nil && prev.NextSibling != c {
			panic("tree integrity: sibling chain out of sync")
		}
		prev = c
		checkNode(c)
	}
	if n.LastChild != prev {
		panic("tree integrity: LastChild does not match final sibling")
	}
}
