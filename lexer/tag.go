package lexer

import (
	"strings"

	"github.com/htmltidy/gotidy/diag"
	"github.com/htmltidy/gotidy/source"
	"github.com/htmltidy/gotidy/tags"
	"github.com/htmltidy/gotidy/tree"
)

// readStartTag reads a name and its attributes after '<' (already
// consumed by the caller, which has unread the name's first letter), up
// to '>' or the self-closing "/>" (§4.4).
func (l *Lexer) readStartTag(mode Mode) *tree.Node {
	name := l.readTagName()
	n := tree.NewElement(tree.StartTag, name)

	attrs, selfClosed := l.readAttributes(name)
	n.Attributes = attrs
	if selfClosed {
		n.Kind = tree.StartEndTag
		n.Closed = true
	}
	l.posNode(n)

	if !selfClosed {
		l.beginCDATAElement(name)
	}
	return n
}

// readEndTag reads a name after "</" (already consumed) and consumes
// through '>'. Anything between the name and '>', attributes included, is
// discarded without a diagnostic.
func (l *Lexer) readEndTag() *tree.Node {
	name := l.readTagName()
	n := tree.NewElement(tree.EndTag, name)

	for {
		c := l.src.ReadChar()
		if c == source.EOF || c == '>' {
			break
		}
	}
	return l.posNode(n)
}

// readTagName reads the element name, lowercasing it unless the caller
// is in XML mode (§4.4: "folded to lowercase unless XML mode").
func (l *Lexer) readTagName() string {
	var sb strings.Builder
	for {
		c := l.src.ReadChar()
		if c == source.EOF {
			break
		}
		if isNameChar(c) || c == '-' || c == ':' {
			sb.WriteRune(c)
			continue
		}
		l.src.UngetChar(c)
		break
	}
	name := sb.String()
	if !l.cfg.XMLTags {
		name = strings.ToLower(name)
	}
	return name
}

// readAttributes loops parse_attribute until '>' or self-closing "/>"
// (§4.4's parse_attrs). selfClosed reports whether a trailing '/' was
// seen immediately before '>'.
func (l *Lexer) readAttributes(tagName string) (attrs []tree.Attribute, selfClosed bool) {
	for {
		l.skipAttributeWhitespace()

		c := l.src.ReadChar()
		switch {
		case c == source.EOF:
			return attrs, selfClosed
		case c == '>':
			return attrs, selfClosed
		case c == '/':
			c2 := l.src.ReadChar()
			if c2 == '>' {
				return attrs, true
			}
			l.src.UngetChar(c2)
			continue
		default:
			l.src.UngetChar(c)
		}

		attr, ok := l.readOneAttribute(tagName)
		if !ok {
			return attrs, selfClosed
		}
		attrs = append(attrs, attr)
	}
}

func (l *Lexer) skipAttributeWhitespace() {
	for {
		c := l.src.ReadChar()
		if c == source.EOF {
			return
		}
		if c != ' ' && c != '\t' && c != '\n' {
			l.src.UngetChar(c)
			return
		}
	}
}

// readOneAttribute reads one "name" or "name=value" pair (§4.4's
// parse_attribute). ok is false only at EOF with nothing read.
func (l *Lexer) readOneAttribute(tagName string) (tree.Attribute, bool) {
	var name strings.Builder
	for {
		c := l.src.ReadChar()
		if c == source.EOF {
			if name.Len() == 0 {
				return tree.Attribute{}, false
			}
			break
		}
		if c == '=' || c == '>' || c == ' ' || c == '\t' || c == '\n' || c == '/' {
			l.src.UngetChar(c)
			break
		}
		name.WriteRune(c)
	}
	if name.Len() == 0 {
		// Stray character (e.g. a bare '<' or '"') where a name was
		// expected; consume it so the loop makes progress.
		l.src.ReadChar()
		return tree.Attribute{}, true
	}

	attrName := name.String()
	if !l.cfg.XMLTags {
		attrName = strings.ToLower(attrName)
	}

	l.skipAttributeWhitespace()
	c := l.src.ReadChar()
	if c != '=' {
		l.src.UngetChar(c)
		return tree.Attribute{Name: attrName, Quote: 0}, true
	}

	l.skipAttributeWhitespace()
	return l.readAttributeValue(attrName)
}

// readAttributeValue reads the value following '=' (§4.4): a
// double/single-quoted value, or a bare value terminated by whitespace or
// '>'. Unterminated quoted values are tracked for the
// SUSPECTED_MISSING_QUOTE heuristic: more than 10 newline/'<'/'>'
// occurrences inside the value, with a '>' among them, is suspicious.
func (l *Lexer) readAttributeValue(name string) (tree.Attribute, bool) {
	c := l.src.ReadChar()
	if c == '"' || c == '\'' {
		quote := c
		var sb strings.Builder
		suspectCount := 0
		sawGT := false
		for {
			c2 := l.src.ReadChar()
			if c2 == source.EOF {
				l.report(diag.SuspectedMissingQuote)
				break
			}
			if c2 == quote {
				break
			}
			if c2 == '\n' || c2 == '<' || c2 == '>' {
				suspectCount++
				if c2 == '>' {
					sawGT = true
				}
			}
			sb.WriteRune(c2)
		}
		if suspectCount > 10 && sawGT {
			l.report(diag.SuspectedMissingQuote)
		}
		return tree.Attribute{Name: name, HasValue: true, Value: sb.String(), Quote: byte(quote)}, true
	}
	l.src.UngetChar(c)

	var sb strings.Builder
	for {
		c2 := l.src.ReadChar()
		if c2 == source.EOF || c2 == ' ' || c2 == '\t' || c2 == '\n' || c2 == '>' {
			l.src.UngetChar(c2)
			break
		}
		if c2 == '/' {
			c3 := l.src.ReadChar()
			if c3 == '>' && !looksLikeURL(name) {
				l.src.UngetChar(c3)
				l.src.UngetChar(c2)
				break
			}
			l.src.UngetChar(c3)
		}
		sb.WriteRune(c2)
	}
	return tree.Attribute{Name: name, HasValue: true, Value: sb.String(), Quote: 0}, true
}

// looksLikeURL reports whether an attribute name is conventionally a URL
// carrier, so a bare value's trailing '/' before '>' is treated as part
// of the URL rather than a self-closing marker (§4.4's empirical rule for
// `<a href=http://example/>`).
func looksLikeURL(name string) bool {
	if d, ok := tags.LookupAttr(name); ok {
		return d.Type == tags.AttrURL
	}
	return false
}
