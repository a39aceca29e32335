package cleanup

import (
	"strings"

	"github.com/htmltidy/gotidy/tree"
)

// niceBody reports whether body carries none of the presentation attributes
// cleanBodyAttrs distills into CSS (NiceBody) — used to decide whether a
// <style> element is worth synthesizing at all when there are no interned
// classes either.
func niceBody(body *tree.Node) bool {
	if body == nil {
		return true
	}
	for _, name := range [...]string{"background", "bgcolor", "text", "link", "vlink", "alink"} {
		if _, ok := body.Attr(name); ok {
			return false
		}
	}
	return true
}

// cleanBodyAttrs moves body's background/bgcolor/text/link/vlink/alink
// attributes into CSS rules written to sb, removing them from body
// (CleanBodyAttrs).
func cleanBodyAttrs(body *tree.Node, sb *strings.Builder) {
	bgurl, hasBg := body.Attr("background")
	bgcolor, hasBgColor := body.Attr("bgcolor")
	color, hasColor := body.Attr("text")

	if hasBg || hasBgColor || hasColor {
		sb.WriteString(" body {\n")
		if hasBg {
			sb.WriteString("  background-image: url(" + bgurl + ");\n")
			body.RemoveAttr("background")
		}
		if hasBgColor {
			sb.WriteString("  background-color: " + bgcolor + ";\n")
			body.RemoveAttr("bgcolor")
		}
		if hasColor {
			sb.WriteString("  color: " + color + ";\n")
			body.RemoveAttr("text")
		}
		sb.WriteString(" }\n")
	}

	if v, ok := body.Attr("link"); ok {
		sb.WriteString(" :link { color: " + v + " }\n")
		body.RemoveAttr("link")
	}
	if v, ok := body.Attr("vlink"); ok {
		sb.WriteString(" :visited { color: " + v + " }\n")
		body.RemoveAttr("vlink")
	}
	if v, ok := body.Attr("alink"); ok {
		sb.WriteString(" :active { color: " + v + " }\n")
		body.RemoveAttr("alink")
	}
}

// CreateStyleElement synthesizes an implicit <style type="text/css"> element
// in <head> containing body's distilled presentation attributes followed by
// every interned (tag, properties) rule, and skips the synthesis entirely
// when there is nothing to say (CreateStyleElement).
func (c *Cleaner) CreateStyleElement(root *tree.Node) {
	body := findElement(root, "body")
	if len(c.styles.rules) == 0 && niceBody(body) {
		return
	}

	var sb strings.Builder
	if body != nil {
		cleanBodyAttrs(body, &sb)
	}
	for _, r := range c.styles.rules {
		sb.WriteString(" ")
		sb.WriteString(r.tag)
		sb.WriteString(".")
		sb.WriteString(r.class)
		sb.WriteString(" {")
		sb.WriteString(r.properties)
		sb.WriteString("}\n")
	}

	head := findElement(root, "head")
	if head == nil {
		return
	}

	styleEl := tree.NewElement(tree.StartTag, "style")
	styleEl.Implicit = true
	styleEl.SetAttr("type", "text/css")
	text := tree.NewText(c.buf.AppendString(sb.String()))
	styleEl.AppendChild(text)
	head.AppendChild(styleEl)
}
