package cleanup

import (
	"fmt"
	"sort"
	"strings"

	"github.com/htmltidy/gotidy/tree"
)

// cssProp is one name/value pair of a parsed style attribute, kept sorted by
// name so two style strings with the same properties in a different order
// intern to the same class (clean.c's CreateProps/InsertProperty).
type cssProp struct {
	name, value string
}

// insertProperty inserts name/value into props in sorted-by-name order,
// leaving props unchanged if name is already present (first value wins,
// matching InsertProperty's "this property is already defined, ignore new
// value").
func insertProperty(props []cssProp, name, value string) []cssProp {
	for _, p := range props {
		if p.name == name {
			return props
		}
	}
	i := sort.Search(len(props), func(i int) bool { return props[i].name >= name })
	props = append(props, cssProp{})
	copy(props[i+1:], props[i:])
	props[i] = cssProp{name: name, value: value}
	return props
}

// parseProps parses a "name: value; name2: value2" style string, merging its
// properties into an already-sorted props slice (CreateProps).
func parseProps(props []cssProp, style string) []cssProp {
	for _, part := range strings.Split(style, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		i := strings.Index(part, ":")
		if i < 0 {
			continue
		}
		name := strings.TrimSpace(part[:i])
		value := strings.TrimSpace(part[i+1:])
		props = insertProperty(props, name, value)
	}
	return props
}

// formatProps reserializes props back into "name: value; name2: value2"
// form (CreatePropString).
func formatProps(props []cssProp) string {
	parts := make([]string, len(props))
	for i, p := range props {
		parts[i] = p.name + ": " + p.value
	}
	return strings.Join(parts, "; ")
}

// mergeProperties combines two style strings into one, later duplicate
// names losing to the earlier ones (MergeProperties).
func mergeProperties(s1, s2 string) string {
	props := parseProps(nil, s1)
	props = parseProps(props, s2)
	return formatProps(props)
}

// addStyleProperty merges one raw "name: value" property into node's style
// attribute, creating it if absent (AddStyleProperty).
func addStyleProperty(node *tree.Node, property string) {
	if existing, ok := node.Attr("style"); ok {
		node.SetAttr("style", mergeProperties(existing, property))
		return
	}
	node.SetAttr("style", property)
}

// mergeClasses copies child's class names onto node, space-joining with any
// class node already carries (MergeClasses).
func mergeClasses(node, child *tree.Node) {
	c2, hasChild := child.Attr("class")
	if !hasChild {
		return
	}
	if c1, hasNode := node.Attr("class"); hasNode {
		node.SetAttr("class", c1+" "+c2)
	} else {
		node.SetAttr("class", c2)
	}
}

// mergeStyles copies child's class and style attributes onto node before the
// child is discarded (MergeStyles).
func mergeStyles(node, child *tree.Node) {
	mergeClasses(node, child)
	if s2, hasChild := child.Attr("style"); hasChild {
		if s1, hasNode := node.Attr("style"); hasNode {
			node.SetAttr("style", mergeProperties(s1, s2))
		} else {
			node.SetAttr("style", s2)
		}
	}
}

// addClass appends classname to node's class attribute, joining with an
// underscore when one already exists (AddClass/Style2Rule's merge branch).
func addClass(node *tree.Node, classname string) {
	if existing, ok := node.Attr("class"); ok {
		node.SetAttr("class", existing+"_"+classname)
		return
	}
	node.SetAttr("class", classname)
}

// styleRule is one interned (tag, properties) -> class association, emitted
// later as " tag.class {properties}\n" in the synthesized <style> element.
type styleRule struct {
	tag, properties, class string
}

// styleSheet interns style-attribute strings into generated CSS classes,
// replacing clean.c's singly-linked Style list with a map keyed on the
// (tag, properties) pair plus an insertion-ordered slice for deterministic
// output (SPEC_FULL §3.2).
type styleSheet struct {
	prefix  string
	counter int
	rules   []styleRule
	index   map[string]int
}

func newStyleSheet(prefix string) *styleSheet {
	if prefix == "" {
		prefix = "c"
	}
	return &styleSheet{prefix: prefix, index: map[string]int{}}
}

func (s *styleSheet) gensym() string {
	s.counter++
	return fmt.Sprintf("%s%d", s.prefix, s.counter)
}

// findStyle returns the class name already interned for (tag, properties),
// or gensyms and records a new one on a miss (FindStyle).
func (s *styleSheet) findStyle(tag, properties string) string {
	key := tag + "\x00" + properties
	if i, ok := s.index[key]; ok {
		return s.rules[i].class
	}
	class := s.gensym()
	s.index[key] = len(s.rules)
	s.rules = append(s.rules, styleRule{tag: tag, properties: properties, class: class})
	return class
}

// style2Rule moves node's style attribute to an interned class attribute,
// merging with any class node already has (Style2Rule).
func (c *Cleaner) style2Rule(node *tree.Node) {
	styleVal, ok := node.Attr("style")
	if !ok {
		return
	}
	class := c.styles.findStyle(node.ElementName, styleVal)
	node.RemoveAttr("style")
	addClass(node, class)
}
