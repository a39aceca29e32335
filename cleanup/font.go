package cleanup

import (
	"fmt"
	"math"
	"strings"

	"github.com/htmltidy/gotidy/tree"
)

// fontSize2Name maps an HTML <font size> value (1-7, or a signed relative
// delta) to the CSS percentage or keyword it distills to (FontSize2Name).
func fontSize2Name(size string) (string, bool) {
	if size == "" {
		return "", false
	}
	named := [7]string{"60%", "70%", "80%", "", "120%", "150%", "200%"}

	if size[0] >= '0' && size[0] <= '6' {
		n := int(size[0] - '0')
		if named[n] == "" {
			return "", false
		}
		return named[n], true
	}

	if size[0] == '-' {
		if len(size) > 1 && size[1] >= '0' && size[1] <= '6' {
			n := int(size[1] - '0')
			x := math.Pow(0.8, float64(n)) * 100
			return fmt.Sprintf("%d%%", int(x)), true
		}
		return "smaller", true
	}

	if len(size) > 1 && size[1] >= '0' && size[1] <= '6' {
		n := int(size[1] - '0')
		x := math.Pow(1.2, float64(n)) * 100
		return fmt.Sprintf("%d%%", int(x)), true
	}

	return "larger", true
}

func addFontFace(node *tree.Node, face string) {
	addStyleProperty(node, "font-family: "+face)
}

// addFontSize promotes <p size="6|5|4"> to <h1|h2|h3> (Word's "big bold
// text masquerading as a heading" pattern); any other element, or any other
// size value, becomes a font-size style property instead (AddFontSize).
func addFontSize(node *tree.Node, size string) {
	if node.ElementName == "p" {
		switch size {
		case "6":
			node.ElementName = "h1"
			return
		case "5":
			node.ElementName = "h2"
			return
		case "4":
			node.ElementName = "h3"
			return
		}
	}
	if name, ok := fontSize2Name(size); ok {
		addStyleProperty(node, "font-size: "+name)
	}
}

func addFontColor(node *tree.Node, color string) {
	addStyleProperty(node, "color: "+color)
}

// addAlign lower-cases align's value before folding it into a text-align
// property (AddAlign).
func addAlign(node *tree.Node, align string) {
	addStyleProperty(node, "text-align: "+strings.ToLower(align))
}

// addFontStyles folds a <font>'s face/size/color attributes into style
// properties on node (AddFontStyles).
func addFontStyles(node, font *tree.Node) {
	if v, ok := font.Attr("face"); ok {
		addFontFace(node, v)
	}
	if v, ok := font.Attr("size"); ok {
		addFontSize(node, v)
	}
	if v, ok := font.Attr("color"); ok {
		addFontColor(node, v)
	}
}

// textAlign extracts node's align attribute and folds it into a
// text-align style property (TextAlign).
func textAlign(node *tree.Node) {
	if v, ok := node.Attr("align"); ok {
		node.RemoveAttr("align")
		addAlign(node, v)
	}
}
