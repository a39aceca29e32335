package cleanup

import "github.com/htmltidy/gotidy/tree"

// discardContainer removes node from the tree, splicing its children into
// its former position among its parent's children (used to strip font start
// and end tags while keeping their content, DiscardContainer). It returns
// the first spliced child, or node's former next sibling if node had no
// children, for a caller that wants to resume iteration there.
func discardContainer(node *tree.Node) *tree.Node {
	parent := node.Parent
	if parent == nil {
		return nil
	}
	children := node.Children()
	if len(children) == 0 {
		next := node.NextSibling
		node.Remove()
		return next
	}
	for _, child := range children {
		parent.InsertBefore(child, node)
	}
	node.Remove()
	return children[0]
}

// stripOnlyChild collapses node's sole child, promoting the grandchildren to
// be node's own children directly (StripOnlyChild). Callers must have
// already verified node has exactly one child.
func stripOnlyChild(node *tree.Node) {
	child := node.FirstChild
	if child == nil {
		return
	}
	for _, grandchild := range child.Children() {
		node.InsertBefore(grandchild, child)
	}
	child.Remove()
}

// findElement returns the first element named name in root's subtree
// (depth-first, root included), or nil.
func findElement(root *tree.Node, name string) *tree.Node {
	if root == nil {
		return nil
	}
	if root.ElementName == name {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}
