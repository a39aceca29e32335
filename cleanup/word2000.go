package cleanup

import (
	"strings"

	"github.com/htmltidy/gotidy/tree"
)

// DropSections walks root discarding every Word-2000 conditional-comment
// marker it finds: an "<![if ...]>" opener (other than "if !vml", which VML
// markup relies on to survive) is pruned along with everything up to its
// matching "<![endif]>"; any other bracket-section token left over is simply
// discarded on its own (DropSections).
func (c *Cleaner) DropSections(root *tree.Node) {
	c.dropSections(root.FirstChild)
}

func (c *Cleaner) dropSections(node *tree.Node) {
	for node != nil {
		if node.Kind == tree.Section {
			if isIfMarker(node.ElementName) && !strings.HasPrefix(node.ElementName, "if !vml") {
				node = c.pruneSection(node)
				continue
			}
			next := node.NextSibling
			node.Remove()
			node = next
			continue
		}
		if node.FirstChild != nil {
			c.dropSections(node.FirstChild)
		}
		node = node.NextSibling
	}
}

func isIfMarker(text string) bool {
	return strings.HasPrefix(text, "if")
}

func isEndifMarker(text string) bool {
	return strings.HasPrefix(text, "endif")
}

// pruneSection discards node (an "if" marker) and everything up to and
// including its matching "endif" marker, returning the sibling that follows.
// A stray "if !supportEmptyParas" section that sits directly inside a table
// cell leaves behind a non-breaking space, so the cell doesn't collapse to
// looking empty once the conditional content is gone (PruneSection).
func (c *Cleaner) pruneSection(node *tree.Node) *tree.Node {
	for {
		if node.ElementName == "if !supportemptyparas" {
			if cell := findEnclosingCell(node); cell != nil && node.Parent != nil {
				nbsp := tree.NewText(c.buf.AppendString(" "))
				node.Parent.InsertBefore(nbsp, node)
			}
		}

		next := node.NextSibling
		node.Remove()
		node = next
		if node == nil {
			return nil
		}

		if node.Kind == tree.Section {
			if isIfMarker(node.ElementName) {
				node = c.pruneSection(node)
				continue
			}
			if isEndifMarker(node.ElementName) {
				after := node.NextSibling
				node.Remove()
				return after
			}
		}
	}
}

// findEnclosingCell walks up from node looking for a containing <td>
// (FindEnclosingCell).
func findEnclosingCell(node *tree.Node) *tree.Node {
	for p := node.Parent; p != nil; p = p.Parent {
		if p.ElementName == "td" {
			return p
		}
	}
	return nil
}

// purgeWord2000Tree strips the class/style/lang/"x:"-namespaced attributes,
// and height/width on table rows and cells, that Word 2000's HTML export scatters
// everywhere, leaving a user-authored class (anything but its own "MsoFoo"
// names, and the special "Code" class used to flag preformatted text) alone
// (PurgeWord2000Attributes, applied over the whole tree).
func (c *Cleaner) purgeWord2000Tree(root *tree.Node) {
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		if child.IsElement() {
			purgeWord2000Attributes(child)
		}
		c.purgeWord2000Tree(child)
	}
}

func purgeWord2000Attributes(node *tree.Node) {
	if len(node.Attributes) == 0 {
		return
	}
	kept := node.Attributes[:0:0]
	for _, a := range node.Attributes {
		if a.Name == "class" && (a.Value == "Code" || !strings.HasPrefix(a.Value, "Mso")) {
			kept = append(kept, a)
			continue
		}

		drop := false
		switch {
		case a.Name == "class", a.Name == "style", a.Name == "lang":
			drop = true
		case strings.HasPrefix(a.Name, "x:"):
			drop = true
		case (a.Name == "height" || a.Name == "width") &&
			(node.ElementName == "td" || node.ElementName == "tr" || node.ElementName == "th"):
			drop = true
		}
		if !drop {
			kept = append(kept, a)
		}
	}
	node.Attributes = kept
}
