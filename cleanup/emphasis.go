package cleanup

import (
	"fmt"

	"github.com/htmltidy/gotidy/tags"
	"github.com/htmltidy/gotidy/tree"
)

// NestedEmphasis collapses <b><b>...</b>...</b> and <i><i>...</i>...</i>,
// the redundant same-tag nesting word processors tend to leave behind
// (NestedEmphasis).
func NestedEmphasis(root *tree.Node) {
	for child := root.FirstChild; child != nil; {
		next := child.NextSibling
		if (child.ElementName == "b" || child.ElementName == "i") && root.ElementName == child.ElementName {
			discardContainer(child)
		} else {
			NestedEmphasis(child)
		}
		child = next
	}
}

// EmFromI renames <i> to <em> and <b> to <strong> throughout the tree, the
// logical-emphasis option's effect (EmFromI).
func EmFromI(root *tree.Node) {
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		switch child.ElementName {
		case "i":
			child.ElementName = "em"
		case "b":
			child.ElementName = "strong"
		}
		EmFromI(child)
	}
}

// List2BQ replaces a list (ul/ol/dir/menu) whose only content is a single
// implicit <li> by an implicit <blockquote>, the pattern left behind when
// authors use a bare list purely to indent a paragraph (List2BQ).
func List2BQ(root *tree.Node) {
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		List2BQ(child)

		def, known := tags.Lookup(child.ElementName)
		if !known || def.Parser != tags.ParseList {
			continue
		}
		sole := child.SoleChild()
		if sole == nil || !sole.Implicit {
			continue
		}
		stripOnlyChild(child)
		child.ElementName = "blockquote"
		child.Implicit = true
	}
}

// BQ2Div replaces an implicit <blockquote> (left behind by List2BQ) with a
// <div style="margin-left: Nem">, collapsing any further nested implicit
// blockquotes into a single indent count rather than a matching nest of divs
// (BQ2Div).
func BQ2Div(root *tree.Node) {
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		if child.ElementName != "blockquote" || !child.Implicit {
			BQ2Div(child)
			continue
		}

		indent := 1
		for {
			sole := child.SoleChild()
			if sole == nil || sole.ElementName != "blockquote" || !sole.Implicit {
				break
			}
			indent++
			stripOnlyChild(child)
		}

		BQ2Div(child)

		margin := fmt.Sprintf("margin-left: %dem", 2*indent)
		child.ElementName = "div"
		if existing, ok := child.Attr("style"); ok {
			child.SetAttr("style", margin+"; "+existing)
		} else {
			child.SetAttr("style", margin)
		}
	}
}
