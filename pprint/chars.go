package pprint

import (
	"strconv"

	"github.com/htmltidy/gotidy/config"
	"github.com/htmltidy/gotidy/entities"
	"github.com/htmltidy/gotidy/tags"
)

// writeChar escapes and appends one input character to the line buffer
// per md's rules, setting a wrap point at ordinary spaces (PPrintChar).
func (p *Printer) writeChar(c rune, md mode) {
	if md == modeRaw {
		p.addChar(c)
		return
	}

	if md == modePreformatted {
		if c == '\n' {
			p.flushLine(p.getSpaces())
			return
		}
	} else if c == ' ' {
		p.addChar(' ')
		p.setWrap(p.getSpaces())
		return
	}

	switch c {
	case '<':
		p.addString("&lt;")
		return
	case '>':
		p.addString("&gt;")
		return
	case '&':
		if p.cfg.QuoteAmpersand {
			p.addString("&amp;")
		} else {
			p.addChar('&')
		}
		return
	case '"':
		if p.cfg.QuoteMarks {
			p.addString("&quot;")
		} else {
			p.addChar('"')
		}
		return
	case '\'':
		if p.cfg.QuoteMarks {
			p.addString("&#39;")
		} else {
			p.addChar('\'')
		}
		return
	case 0x00A0:
		p.writeNBSP()
		return
	}

	if (p.cfg.MakeClean || p.cfg.MakeBare) && isSmartQuote(c) {
		p.addChar(foldSmartQuote(c))
		return
	}

	p.addEscaped(c)
}

// writeNBSP renders U+00A0: a literal space under make-bare, the named or
// numeric reference when quote-nbsp is set (numeric for XML family output,
// since &nbsp; isn't a predefined XML entity), otherwise passed through
// raw (PPrintChar's NBSP branch).
func (p *Printer) writeNBSP() {
	switch {
	case p.cfg.MakeBare:
		p.addChar(' ')
	case p.cfg.QuoteNBSP:
		if p.cfg.XMLOut || p.cfg.XHTMLOut || p.cfg.XMLTags {
			p.addString("&#160;")
		} else {
			p.addString("&nbsp;")
		}
	default:
		p.addChar(0x00A0)
	}
}

// isSmartQuote reports whether c is one of the Microsoft-ism curly quotes
// and en/em dashes make-clean/make-bare fold down to plain ASCII.
func isSmartQuote(c rune) bool {
	switch c {
	case 0x2013, 0x2014, 0x2018, 0x2019, 0x201A, 0x201C, 0x201D, 0x201E:
		return true
	default:
		return false
	}
}

func foldSmartQuote(c rune) rune {
	switch c {
	case 0x2013, 0x2014:
		return '-'
	case 0x2018, 0x2019, 0x201A:
		return '\''
	default: // 0x201C, 0x201D, 0x201E
		return '"'
	}
}

// addEscaped decides, per the output encoding, whether c can be written
// raw or must be named/numeric-escaped. ASCII-family outputs escape
// anything outside the printable 7-bit range; the Latin/Mac code-page
// family can additionally hold the 0xA0-0xFF range directly (the encoding
// writer New places beneath the bufio.Writer transcodes that range to the
// right bytes); everything else (UTF-8, UTF-16, raw, and the Asian
// multi-byte encodings Go's x/text encoder handles directly) passes every
// code point straight through undecorated (PPrintChar's per-encoding
// tail).
func (p *Printer) addEscaped(c rune) {
	switch p.cfg.OutputEncoding {
	case config.EncASCII:
		if c > 126 || (c < ' ' && c != '\t') {
			p.addEntity(c)
			return
		}
	case config.EncLatin1, config.EncLatin0, config.EncWin1252, config.EncIBM858, config.EncMac:
		if c > 255 || (c >= 127 && c <= 159) || (c < ' ' && c != '\t') {
			p.addEntity(c)
			return
		}
	}
	p.addChar(c)
}

// addEntity writes c as a named entity when the output document's HTML
// version recognizes one (and numeric entities weren't forced), falling
// back to a decimal numeric character reference otherwise (EntityName).
func (p *Printer) addEntity(c rune) {
	vers := tags.VersAll
	if p.cfg.XMLOut || p.cfg.XHTMLOut || p.cfg.XMLTags {
		vers = tags.VersXML
	}
	if !p.cfg.NumericEntities {
		if name, ok := entities.NameFor(c, vers); ok {
			p.addString("&" + name + ";")
			return
		}
	}
	p.addString("&#" + strconv.Itoa(int(c)) + ";")
}

// writeText appends s rune by rune under md, checking for a line wrap
// after each character the way pprint.c's PPrintText loop does.
func (p *Printer) writeText(s string, md mode, indent int) {
	for _, c := range s {
		p.writeChar(c, md)
		if md != modeRaw {
			p.checkWrapLine(indent)
		}
	}
}
