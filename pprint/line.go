package pprint

// The line buffer holds one output line's code points; wraphere marks the
// last place a wrap is legal (a space in ordinary text, or a point SetWrap
// chose inside a long attribute value). When the accumulated column would
// exceed the configured wrap width, WrapLine breaks there instead of at
// end of content (pprint.c's AddChar/SetWrap/WrapLine family).

func (p *Printer) addChar(c rune) {
	p.line = append(p.line, c)
}

func (p *Printer) addString(s string) {
	for _, c := range s {
		p.addChar(c)
	}
}

func (p *Printer) lineLen() int { return len(p.line) }

// getSpaces returns the indent currently in force for this line (the
// active slot of the two-level indent stack).
func (p *Printer) getSpaces() int {
	if p.ind[0].spaces >= 0 {
		return p.ind[0].spaces
	}
	return 0
}

// wantIndent suppresses indentation while a wrap point sits inside an
// attribute value or a quoted string literal, where leading whitespace
// would be significant (pprint.c's WantIndent).
func (p *Printer) wantIndent() bool {
	return !p.inAttrVal && !p.inString
}

func (p *Printer) wrapDisabled() bool {
	return p.cfg.Wrap <= 0
}

// setWrap records the current buffer position as the next legal wrap
// point. Once indent+lineLen reaches the configured wrap width it also
// promotes the second indent slot to record the new indent a wrapped
// continuation line should use (SetWrap).
func (p *Printer) setWrap(indent int) bool {
	if p.wrapDisabled() {
		p.wraphere = p.lineLen()
		return false
	}
	if indent+p.lineLen() < p.cfg.Wrap {
		p.wraphere = p.lineLen()
		return false
	}
	if p.ixInd == 0 {
		p.ind[1] = indentState{spaces: indent, attrValStart: -1, attrStringStart: -1}
		p.ixInd = 1
	}
	p.wraphere = p.lineLen()
	return true
}

// resetLine promotes the pending (slot-1) indent into slot 0 once a line
// has been flushed, so the next line continues at the new depth
// (pprint.c's ResetLine).
func (p *Printer) resetLine() {
	if p.ixInd > 0 {
		p.ind[0] = p.ind[1]
		p.ind[1] = freshIndent()
	}
	p.wraphere = 0
	p.ixInd = 0
}

// resetLineAfterWrap shifts the buffer's unwritten tail (from wraphere
// onward) down to the start of the line, dropping any spaces at its start
// unless they sit inside an attribute value, where leading whitespace must
// be preserved (pprint.c's ResetLineAfterWrap).
func (p *Printer) resetLineAfterWrap() {
	tail := append([]rune(nil), p.line[p.wraphere:]...)
	start := 0
	if !p.inAttrVal {
		for start < len(tail) && tail[start] == ' ' {
			start++
		}
	}
	p.line = append(p.line[:0], tail[start:]...)
	p.resetLine()
}

func (p *Printer) writeIndent(spaces int) {
	if spaces <= 0 || !p.wantIndent() {
		return
	}
	for i := 0; i < spaces; i++ {
		p.writeByte(' ')
	}
}

func (p *Printer) writeByte(b byte) {
	if p.err != nil {
		return
	}
	if err := p.w.WriteByte(b); err != nil {
		p.err = err
	}
}

func (p *Printer) writeRune(r rune) {
	if p.err != nil {
		return
	}
	if _, err := p.w.WriteRune(r); err != nil {
		p.err = err
	}
}

func (p *Printer) writeRunes(rs []rune) {
	for _, r := range rs {
		p.writeRune(r)
	}
}

func (p *Printer) writeString(s string) {
	if p.err != nil {
		return
	}
	if _, err := p.w.WriteString(s); err != nil {
		p.err = err
	}
}

func (p *Printer) writeNewline() {
	p.writeString(p.newline)
}

// wrapLine breaks the line at wraphere, if one has been recorded, writing
// everything up to it (plus a trailing backslash if the break falls
// inside a quoted string literal) and carrying the remainder to the start
// of the next line (pprint.c's WrapLine).
func (p *Printer) wrapLine(indent int) {
	if p.wraphere <= 0 {
		return
	}
	p.writeIndent(p.getSpaces())
	p.writeRunes(p.line[:p.wraphere])
	if p.inString {
		p.writeByte('\\')
	}
	p.writeNewline()
	p.resetLineAfterWrap()
}

// checkWrapLine wraps the current line once its length (including the
// active indent) reaches the configured column (pprint.c's CheckWrapLine /
// CheckWrapIndent).
func (p *Printer) checkWrapLine(indent int) {
	if p.wrapDisabled() {
		return
	}
	if p.getSpaces()+p.lineLen() >= p.cfg.Wrap {
		p.wrapLine(indent)
	}
}

// flushLine unconditionally emits the current line (even if empty, so
// blank lines in the source survive) and sets indent as the next line's
// depth (pprint.c's PFlushLine).
func (p *Printer) flushLine(indent int) {
	p.writeIndent(p.getSpaces())
	p.writeRunes(p.line)
	if p.inString {
		p.writeByte('\\')
	}
	p.line = p.line[:0]
	p.ind[0] = indentState{spaces: indent, attrValStart: -1, attrStringStart: -1}
	p.ind[1] = freshIndent()
	p.wraphere = 0
	p.ixInd = 0
	p.writeNewline()
}

// condFlushLine flushes only if the line holds content, avoiding a run
// of blank lines between adjacent block elements (pprint.c's
// PCondFlushLine).
func (p *Printer) condFlushLine(indent int) {
	if p.lineLen() > 0 {
		p.flushLine(indent)
	}
}
