package lexer

import (
	"strings"

	"github.com/htmltidy/gotidy/diag"
	"github.com/htmltidy/gotidy/source"
	"github.com/htmltidy/gotidy/tags"
	"github.com/htmltidy/gotidy/tree"
)

// readMarkup dispatches on the character(s) following '<' to the right
// construct reader (§4.4): start/end tag, comment, DOCTYPE, CDATA
// section, processing instruction/XML declaration, or server markup.
func (l *Lexer) readMarkup(mode Mode) *tree.Node {
	c := l.src.ReadChar()
	switch {
	case c == '/':
		return l.readEndTag()
	case c == '!':
		return l.readBang()
	case c == '?':
		return l.readProcInstrOrXMLDecl()
	case c == '%':
		return l.readServerMarkup(tree.Asp, "%>")
	case c == '#':
		return l.readServerMarkup(tree.Jste, "#>")
	case isNameStart(c):
		l.src.UngetChar(c)
		return l.readStartTag(mode)
	default:
		// Not recognized as markup; treat '<' as ordinary text.
		l.src.UngetChar(c)
		n := tree.NewText(l.buf.AppendString("<"))
		return l.posNode(n)
	}
}

func isNameStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// readBang handles every "<!..." construct: comments, DOCTYPE, CDATA
// sections, and Word-2000 conditional "<![if ...]>" sections (§4.4).
func (l *Lexer) readBang() *tree.Node {
	c := l.src.ReadChar()
	switch {
	case c == '-':
		c2 := l.src.ReadChar()
		if c2 == '-' {
			return l.readComment()
		}
		l.src.UngetChar(c2)
		return l.skipToGT(tree.Comment)
	case c == '[':
		return l.readBracketSection()
	case c == 'D' || c == 'd':
		l.src.UngetChar(c)
		return l.readDoctype()
	default:
		l.src.UngetChar(c)
		return l.skipToGT(tree.Comment)
	}
}

// readComment reads "<!--" ... "-->" (the opening "--" already consumed).
// Internal "--" is malformed per §4.4 and is reported as MALFORMED_COMMENT;
// the comment text is kept unchanged, and no option rewrites the dashes.
func (l *Lexer) readComment() *tree.Node {
	var sb strings.Builder
	dashRun := 0
	for {
		c := l.src.ReadChar()
		if c == source.EOF {
			l.report(diag.MalformedComment)
			break
		}
		if c == '-' {
			dashRun++
			sb.WriteRune(c)
			if dashRun >= 2 {
				nxt := l.src.ReadChar()
				if nxt == '>' {
					text := sb.String()
					text = strings.TrimSuffix(text, "--")
					n := tree.NewElement(tree.Comment, "")
					n.Span = l.buf.AppendString(text)
					return l.posNode(n)
				}
				l.report(diag.MalformedComment)
				l.src.UngetChar(nxt)
			}
			continue
		}
		dashRun = 0
		sb.WriteRune(c)
	}
	n := tree.NewElement(tree.Comment, "")
	n.Span = l.buf.AppendString(sb.String())
	return l.posNode(n)
}

// skipToGT consumes up to the next '>' and returns an empty node of kind,
// used for constructs this lexer doesn't interpret further.
func (l *Lexer) skipToGT(kind tree.Kind) *tree.Node {
	for {
		c := l.src.ReadChar()
		if c == source.EOF || c == '>' {
			break
		}
	}
	n := tree.NewElement(kind, "")
	return l.posNode(n)
}

// readDoctype reads "<!DOCTYPE ... >", honoring a nested "[" ... "]"
// internal subset (§4.4).
func (l *Lexer) readDoctype() *tree.Node {
	var sb strings.Builder
	depth := 0
	for {
		c := l.src.ReadChar()
		if c == source.EOF {
			l.report(diag.MalformedDoctype)
			break
		}
		if c == '[' {
			depth++
		}
		if c == ']' && depth > 0 {
			depth--
		}
		if c == '>' && depth == 0 {
			break
		}
		sb.WriteRune(c)
	}
	n := tree.NewElement(tree.DocType, "")
	n.Span = l.buf.AppendString(strings.TrimSpace(sb.String()))
	return l.posNode(n)
}

// readBracketSection handles "<![CDATA[...]]>", which wraps a body up to a
// matching "]]>", and the Word-2000 "<![if ...]>"/"<![endif]>" conditional
// markers, which are self-closing on a single "]>" with no body of their
// own — the "content" between an if and its endif is ordinary sibling
// markup, not part of either token (§4.4). The text between "<![" and the
// token's close is kept as the node's ElementName (lowercased) for Section
// nodes, so cleanup can tell an "if ..." opener from "endif" and recognize
// the special "if !supportEmptyParas"/"if !vml" conditions.
func (l *Lexer) readBracketSection() *tree.Node {
	var text strings.Builder
	for {
		c := l.src.ReadChar()
		if c == source.EOF {
			break
		}
		if c == '[' {
			return l.readCDATABody(text.String())
		}
		if c == ']' {
			c2 := l.src.ReadChar()
			if c2 == '>' {
				n := tree.NewElement(tree.Section, strings.ToLower(strings.TrimSpace(text.String())))
				return l.posNode(n)
			}
			l.src.UngetChar(c2)
			text.WriteRune(c)
			continue
		}
		text.WriteRune(c)
	}
	n := tree.NewElement(tree.Section, strings.ToLower(strings.TrimSpace(text.String())))
	return l.posNode(n)
}

// readCDATABody consumes a CDATA-style body up to a matching "]]>", having
// already read the bracketed keyword (e.g. "CDATA") that precedes the
// opening "[". Only "CDATA" itself yields a CData node; any other keyword
// using this doubly-bracketed form is kept as a Section with its body text.
func (l *Lexer) readCDATABody(keyword string) *tree.Node {
	var body strings.Builder
	for {
		c := l.src.ReadChar()
		if c == source.EOF {
			break
		}
		if c == ']' {
			c2 := l.src.ReadChar()
			if c2 == ']' {
				c3 := l.src.ReadChar()
				if c3 == '>' {
					break
				}
				l.src.UngetChar(c3)
				body.WriteRune(c)
				body.WriteRune(c2)
				continue
			}
			l.src.UngetChar(c2)
			body.WriteRune(c)
			continue
		}
		body.WriteRune(c)
	}

	kw := strings.ToUpper(strings.TrimSpace(keyword))
	kind := tree.Section
	if kw == "CDATA" {
		kind = tree.CData
	}
	n := tree.NewElement(kind, strings.ToLower(strings.TrimSpace(keyword)))
	n.Span = l.buf.AppendString(body.String())
	return l.posNode(n)
}

// readProcInstrOrXMLDecl handles "<?...?>" (or "<?...>" in lax mode),
// recognizing "<?xml" as an XmlDecl and "<?php" as a PhpTag (§4.4).
func (l *Lexer) readProcInstrOrXMLDecl() *tree.Node {
	var sb strings.Builder
	for {
		c := l.src.ReadChar()
		if c == source.EOF {
			break
		}
		if c == '?' {
			c2 := l.src.ReadChar()
			if c2 == '>' {
				break
			}
			l.src.UngetChar(c2)
			sb.WriteRune(c)
			continue
		}
		if c == '>' && !l.cfg.XMLPIs {
			break
		}
		sb.WriteRune(c)
	}

	content := sb.String()
	kind := tree.ProcInstr
	trimmed := strings.TrimSpace(content)
	switch {
	case strings.HasPrefix(strings.ToLower(trimmed), "xml"):
		kind = tree.XmlDecl
	case strings.HasPrefix(strings.ToLower(trimmed), "php"):
		kind = tree.Php
	}
	n := tree.NewElement(kind, "")
	n.Span = l.buf.AppendString(content)
	return l.posNode(n)
}

// readServerMarkup reads an ASP ("<% ... %>") or JSTE ("<# ... #>")
// island verbatim up to its terminator (§4.4).
func (l *Lexer) readServerMarkup(kind tree.Kind, terminator string) *tree.Node {
	var sb strings.Builder
	term := []rune(terminator)
	for {
		c := l.src.ReadChar()
		if c == source.EOF {
			break
		}
		if c == term[0] {
			c2 := l.src.ReadChar()
			if c2 == term[1] {
				break
			}
			l.src.UngetChar(c2)
		}
		sb.WriteRune(c)
	}
	n := tree.NewElement(kind, "")
	n.Span = l.buf.AppendString(sb.String())
	return l.posNode(n)
}

// readCDATAElementBody consumes raw bytes until the matching
// "</container>" end tag, tracking JS string-literal quoting so an
// embedded "</" inside a string doesn't prematurely end the element
// (§4.4's read_cdata). The caller arranges for GetToken to route here
// whenever l.cdataContainer is set (after a <script>/<style> start tag).
func (l *Lexer) readCDATAElementBody() *tree.Node {
	container := l.cdataContainer
	var sb strings.Builder
	var quote rune
	escaped := false

	for {
		c := l.readRune()
		if c == source.EOF {
			l.report(diag.MalformedComment) // reuse: unterminated construct
			break
		}
		if quote != 0 {
			sb.WriteRune(c)
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == quote {
				quote = 0
			}
			continue
		}
		if c == '"' || c == '\'' {
			quote = c
			sb.WriteRune(c)
			continue
		}
		if c == '<' {
			c2 := l.readRune()
			if c2 == '/' {
				name := l.peekTagNameFolded()
				if strings.EqualFold(name, container) {
					l.consumeThroughGT()
					l.cdataContainer = ""
					n := tree.NewText(l.buf.AppendString(sb.String()))
					return l.posNode(n)
				}
				if name != "" {
					l.report(diag.BadCDATAContent, name, container)
					l.consumeThroughGT()
					l.cdataContainer = ""
					n := tree.NewText(l.buf.AppendString(sb.String()))
					return l.posNode(n)
				}
				sb.WriteRune(c)
				sb.WriteRune(c2)
				continue
			}
			l.unreadRunes([]rune{c2})
			sb.WriteRune(c)
			continue
		}
		sb.WriteRune(c)
	}

	l.cdataContainer = ""
	n := tree.NewText(l.buf.AppendString(sb.String()))
	return l.posNode(n)
}

// peekTagNameFolded reads an end-tag's name (after "</") without
// consuming the rest of the tag, so the caller can compare it against
// the open CDATA-element's name before deciding whether to terminate.
// Every character read (the name plus whatever non-name character ended
// it, if any) is pushed back through the lexer's own lookahead buffer —
// not source.Source's fixed-depth pushback, which a name as long as
// "script" would overrun — so the stream is always left exactly where it
// was found, whether or not the name matches.
func (l *Lexer) peekTagNameFolded() string {
	var sb strings.Builder
	var consumed []rune
	for {
		c := l.readRune()
		if c == source.EOF {
			break
		}
		consumed = append(consumed, c)
		if isNameChar(c) {
			sb.WriteRune(c)
			continue
		}
		break
	}
	l.unreadRunes(consumed)
	return strings.ToLower(sb.String())
}

func (l *Lexer) consumeThroughGT() {
	for {
		c := l.readRune()
		if c == source.EOF || c == '>' {
			break
		}
	}
}

// beginCDATAElement is called by the caller (the start-tag reader) once
// it has emitted a StartTag node whose dictionary entry is a raw-text
// element (script/style), so the next GetToken call routes straight into
// readCDATAElementBody instead of ordinary content lexing.
func (l *Lexer) beginCDATAElement(name string) {
	if d, ok := tags.Lookup(name); ok && (name == "script" || name == "style") {
		_ = d
		l.cdataContainer = name
	}
}
