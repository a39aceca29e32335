// Package lexer is the tokenizer (C4): a state machine that turns the
// character stream from source.Source into a stream of *tree.Node tokens,
// indexing all text/tag/attribute content into a shared charbuf.Buffer.
//
// Grounded on the teacher's tokenizer package (tokenizer/tokenizer.go's
// state-machine shape, tokenizer/entities.go's numeric/named entity
// decoding), generalized from HTML5's fixed token-kind set to Tidy's
// fourteen node kinds and its server-markup islands (ASP/JSTE/PHP), per
// spec §4.4.
package lexer

import (
	"strings"

	"github.com/htmltidy/gotidy/charbuf"
	"github.com/htmltidy/gotidy/config"
	"github.com/htmltidy/gotidy/diag"
	"github.com/htmltidy/gotidy/entities"
	"github.com/htmltidy/gotidy/source"
	"github.com/htmltidy/gotidy/tree"
)

// Mode governs whitespace collapsing and markup recognition for a single
// GetToken call (§4.4).
type Mode int

const (
	MixedContent Mode = iota
	IgnoreWhitespace
	Preformatted
	IgnoreMarkup
)

// state is the lexer's internal FSM position (§4.4's named states). Most
// states are handled inline as single-purpose read* methods rather than a
// literal switch-and-fallthrough loop, since each is triggered by a
// distinct lookahead (the teacher's tokenizer.go takes the same approach:
// dedicated readComment/readDoctype/readTag methods rather than one giant
// state switch).
type state int

const (
	stateContent state = iota
	stateGt
)

// Lexer turns characters from a source.Source into tree.Node tokens.
type Lexer struct {
	src  *source.Source
	buf  *charbuf.Buffer
	sink diag.Sink
	cfg  *config.Config

	unget  *tree.Node
	waswhite bool

	// cdataContainer, when non-empty, names the raw-text element (script
	// or style) whose content is currently being consumed verbatim.
	cdataContainer string

	// lookahead holds characters read ahead and handed back, in order to
	// be re-read next. Matching a candidate end tag inside CDATA-element
	// content (readCDATAElementBody/peekTagNameFolded) can need to rewind
	// more characters than source.Source's fixed 2-deep pushback allows
	// (e.g. all of "script"), so that rewind goes through this buffer
	// instead of src.UngetChar.
	lookahead []rune
}

// readRune returns the next character, draining lookahead before pulling
// from src.
func (l *Lexer) readRune() rune {
	if n := len(l.lookahead); n > 0 {
		c := l.lookahead[0]
		l.lookahead = l.lookahead[1:]
		return c
	}
	return l.src.ReadChar()
}

// unreadRunes pushes chars back, in order, ahead of anything already
// queued, so the next readRune calls return them before reaching src.
func (l *Lexer) unreadRunes(chars []rune) {
	if len(chars) == 0 {
		return
	}
	l.lookahead = append(append([]rune(nil), chars...), l.lookahead...)
}

// New creates a Lexer reading from src, appending text into buf, and
// reporting diagnostics to sink.
func New(src *source.Source, buf *charbuf.Buffer, sink diag.Sink, cfg *config.Config) *Lexer {
	if sink == nil {
		sink = diag.DiscardSink{}
	}
	return &Lexer{src: src, buf: buf, sink: sink, cfg: cfg}
}

func (l *Lexer) report(code diag.Code, args ...interface{}) {
	line, col := l.src.Pos()
	l.sink.Emit(diag.New(code, line, col, args...))
}

func (l *Lexer) posNode(n *tree.Node) *tree.Node {
	n.Line, n.Column = l.src.Pos()
	return n
}

// UngetToken replays the most recently returned token on the next
// GetToken call (§4.4's "one-level unget").
func (l *Lexer) UngetToken(n *tree.Node) { l.unget = n }

// GetToken returns the next token, or nil at EOF (§4.4).
func (l *Lexer) GetToken(mode Mode) *tree.Node {
	if l.unget != nil {
		n := l.unget
		l.unget = nil
		return n
	}

	if l.cdataContainer != "" {
		return l.readCDATAElementBody()
	}

	c := l.src.ReadChar()
	if c == source.EOF {
		return nil
	}

	if c == '<' {
		return l.readMarkup(mode)
	}

	return l.readContent(c, mode)
}

// readContent accumulates a run of plain text (collapsing whitespace
// outside Preformatted/IgnoreMarkup per §4.4) until the next '<' or EOF.
func (l *Lexer) readContent(first rune, mode Mode) *tree.Node {
	var sb strings.Builder
	c := first
	leadingDropped := mode != IgnoreWhitespace

	for {
		if c == source.EOF {
			break
		}
		if c == '<' {
			l.src.UngetChar(c)
			break
		}
		if c == '&' && mode != Preformatted {
			r, _, bad := l.resolveEntityReference()
			if bad {
				l.report(diag.UnknownEntity, "?")
			}
			if r != 0 {
				c = r
			} else {
				c, _ = nextRune(l.src)
				continue
			}
		}

		// Form feed counts as whitespace in HTML but not XML (§9's
		// open question on the lexer's documented asymmetry).
		isSpace := c == ' ' || c == '\t' || c == '\n' || (c == '\f' && !l.cfg.XMLTags)
		if mode == Preformatted || mode == IgnoreMarkup {
			sb.WriteRune(c)
			l.waswhite = false
		} else if isSpace {
			if !l.waswhite && (leadingDropped || sb.Len() > 0) {
				sb.WriteByte(' ')
			}
			l.waswhite = true
			leadingDropped = true
		} else {
			sb.WriteRune(c)
			l.waswhite = false
			leadingDropped = true
		}

		nc := l.src.ReadChar()
		if nc == source.EOF {
			break
		}
		c = nc
	}

	n := tree.NewText(l.buf.AppendString(sb.String()))
	return l.posNode(n)
}

func nextRune(s *source.Source) (rune, bool) {
	c := s.ReadChar()
	return c, c != source.EOF
}

// resolveEntityReference consumes "&name;" or "&#NNN;"/"&#xHH;" (the '&'
// itself already consumed by the caller) and returns the resolved rune, or
// 0 with bad=true if the name was unrecognized (§4.4, §4.5).
func (l *Lexer) resolveEntityReference() (r rune, sawSemicolon bool, bad bool) {
	c := l.src.ReadChar()
	if c == '#' {
		isHex := false
		c2 := l.src.ReadChar()
		if c2 == 'x' || c2 == 'X' {
			isHex = true
		} else {
			l.src.UngetChar(c2)
		}
		var digits strings.Builder
		for {
			d := l.src.ReadChar()
			if d == source.EOF {
				break
			}
			if isHexDigitAllowed(d, isHex) {
				digits.WriteRune(d)
				continue
			}
			if d == ';' {
				sawSemicolon = true
			} else {
				l.src.UngetChar(d)
			}
			break
		}
		if digits.Len() == 0 {
			return 0, sawSemicolon, true
		}
		if !sawSemicolon {
			l.report(diag.MissingSemicolonNCR)
		}
		return entities.ParseNumeric(digits.String(), isHex), sawSemicolon, false
	}
	l.src.UngetChar(c)

	var name strings.Builder
	for {
		d := l.src.ReadChar()
		if d == source.EOF {
			break
		}
		if isNameChar(d) {
			name.WriteRune(d)
			continue
		}
		if d == ';' {
			sawSemicolon = true
		} else {
			l.src.UngetChar(d)
		}
		break
	}
	if name.Len() == 0 {
		return 0, sawSemicolon, true
	}
	code, vers, ok := entities.Lookup(name.String())
	if !ok {
		return 0, sawSemicolon, true
	}
	_ = vers
	if name.String() == "apos" && !l.cfg.XMLTags && !l.cfg.XMLOut && !l.cfg.XHTMLOut {
		l.report(diag.AposUndefined)
	}
	if !sawSemicolon {
		l.report(diag.MissingSemicolon, name.String())
	}
	return code, sawSemicolon, false
}

func isHexDigitAllowed(r rune, hex bool) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	if hex && ((r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')) {
		return true
	}
	return false
}

func isNameChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
