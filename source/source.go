// Package source is the byte source and decoder (C1): BOM detection,
// legacy-encoding decoding via golang.org/x/text, newline normalization,
// tab expansion, and a small pushback buffer for the lexer's one- and
// two-character lookahead.
//
// The pushback depth and tab-expansion formula are ported from
// streamio.c's ReadChar/UngetChar (SPEC_FULL.md §3.6): tabs expand to
// `tabsize - ((col-1) % tabsize) - 1` trailing spaces, and \r / \r\n / \n
// all normalize to a single '\n', advancing curline and resetting curcol.
package source

import (
	"bufio"
	"io"
	"unicode/utf8"

	"github.com/htmltidy/gotidy/config"
	"github.com/htmltidy/gotidy/diag"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// EOF is the sentinel ReadChar/ReadByte return at end of input, matching
// streamio.c's EndOfStream.
const EOF rune = -1

// pushbackDepth is streamio.c's fixed unget depth.
const pushbackDepth = 2

// BOM byte sequences (§6's "On-wire encoding detail").
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// decoderFor resolves a config.Encoding to a golang.org/x/text Encoding
// implementation (or nil for the encodings Go decodes natively: raw,
// ASCII, UTF-8).
func decoderFor(enc config.Encoding) encoding.Encoding {
	switch enc {
	case config.EncWin1252:
		return charmap.Windows1252
	case config.EncMac:
		return charmap.Macintosh
	case config.EncIBM858:
		return charmap.CodePage858
	case config.EncLatin0:
		return charmap.ISO8859_15
	case config.EncLatin1:
		return charmap.ISO8859_1
	case config.EncISO2022:
		return japanese.ISO2022JP
	case config.EncShiftJIS:
		return japanese.ShiftJIS
	case config.EncBig5:
		return traditionalchinese.Big5
	case config.EncUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case config.EncUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case config.EncUTF16:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	default:
		return nil
	}
}

// Source is the injected byte source (§6): ReadChar/UngetChar/AtEOF plus
// line/column tracking, wrapping a decoded rune stream.
type Source struct {
	r *bufio.Reader

	pushed  []rune
	tabs    int
	tabSize int
	xmlTags bool

	line, lastLine     int
	col, lastCol       int
	bomSeen            bool
	detectedEncoding   config.Encoding
}

// New wraps r, decoding through cfg's input encoding and configuring tab
// expansion from cfg. A leading UTF-8 or UTF-16 BOM is detected and consumed
// whatever encoding is configured, and the encoding it names is used
// instead. Reports are emitted
// to sink for BOM/encoding mismatches and malformed bytes found while
// decoding (§4.1); a nil sink discards them.
func New(r io.Reader, cfg *config.Config, sink diag.Sink) (*Source, error) {
	if sink == nil {
		sink = diag.DiscardSink{}
	}
	br := bufio.NewReader(r)

	enc := cfg.InputEncoding
	detected := enc
	bomFound := false
	if peeked, err := br.Peek(3); err == nil {
		switch {
		case startsWith(peeked, bomUTF8):
			br.Discard(len(bomUTF8))
			detected = config.EncUTF8
			bomFound = true
		case startsWith(peeked, bomUTF16BE):
			br.Discard(len(bomUTF16BE))
			detected = config.EncUTF16BE
			bomFound = true
		case startsWith(peeked, bomUTF16LE):
			br.Discard(len(bomUTF16LE))
			detected = config.EncUTF16LE
			bomFound = true
		}
	}
	if bomFound && detected != enc {
		sink.Emit(diag.New(diag.EncodingMismatch, 0, 0))
	}

	s := &Source{
		r:                br,
		tabSize:          cfg.TabSize,
		xmlTags:          cfg.XMLTags,
		line:             1,
		col:              1,
		bomSeen:          bomFound,
		detectedEncoding: detected,
	}

	if dec := decoderFor(detected); dec != nil {
		raw := mustReadAll(br)
		if detected == config.EncLatin1 {
			for _, b := range raw {
				if b >= 0x80 && b <= 0x9F {
					sink.Emit(diag.New(diag.InvalidSGMLChars, 0, 0, int(b)))
				}
			}
		}
		decoded, err := dec.NewDecoder().Bytes(raw)
		if err != nil {
			return nil, err
		}
		if isUTF16(detected) {
			for _, r := range string(decoded) {
				if r == utf8.RuneError {
					sink.Emit(diag.New(diag.InvalidUTF16, 0, 0))
				}
			}
		}
		s.r = bufio.NewReader(newRuneFeeder(decoded))
	}
	return s, nil
}

func isUTF16(enc config.Encoding) bool {
	return enc == config.EncUTF16 || enc == config.EncUTF16LE || enc == config.EncUTF16BE
}

func mustReadAll(r io.Reader) []byte {
	b, _ := io.ReadAll(r)
	return b
}

// newRuneFeeder wraps pre-decoded UTF-8 bytes as an io.Reader.
func newRuneFeeder(b []byte) io.Reader { return &byteReader{b: b} }

type byteReader struct {
	b []byte
	i int
}

func (r *byteReader) Read(p []byte) (int, error) {
	if r.i >= len(r.b) {
		return 0, io.EOF
	}
	n := copy(p, r.b[r.i:])
	r.i += n
	return n, nil
}

func startsWith(b, prefix []byte) bool {
	if len(b) < len(prefix) {
		return false
	}
	for i, p := range prefix {
		if b[i] != p {
			return false
		}
	}
	return true
}

// BOMSeen reports whether an input BOM was detected and consumed.
func (s *Source) BOMSeen() bool { return s.bomSeen }

// DetectedEncoding returns the encoding BOM sniffing settled on.
func (s *Source) DetectedEncoding() config.Encoding { return s.detectedEncoding }

// Pos returns the current 1-based line and column, the position ReadChar
// will report for the *next* character read.
func (s *Source) Pos() (line, col int) { return s.line, s.col }

// AtEOF reports whether the underlying stream (and pushback buffer) are
// exhausted.
func (s *Source) AtEOF() bool {
	if len(s.pushed) > 0 {
		return false
	}
	_, err := s.r.Peek(1)
	return err != nil
}

// ReadChar returns the next logical character, applying newline
// normalization (\r, \r\n, and \n all become '\n') and tab expansion to
// spaces, or EOF at end of stream (§4.1, streamio.c's ReadChar).
func (s *Source) ReadChar() rune {
	if n := len(s.pushed); n > 0 {
		c := s.pushed[n-1]
		s.pushed = s.pushed[:n-1]
		return c
	}

	s.lastCol = s.col

	if s.tabs > 0 {
		s.col++
		s.tabs--
		return ' '
	}

	c, _, err := s.r.ReadRune()
	if err != nil {
		return EOF
	}
	if c == utf8.RuneError {
		return EOF
	}

	switch c {
	case '\n':
		s.line++
		s.col = 1
		return '\n'
	case '\t':
		tabsize := s.tabSize
		if tabsize <= 0 {
			tabsize = 1
		}
		s.tabs = tabsize - ((s.col - 1) % tabsize) - 1
		s.col++
		return ' '
	case '\r':
		next, _, err := s.r.ReadRune()
		if err == nil && next != '\n' {
			s.r.UnreadRune()
		}
		s.line++
		s.col = 1
		return '\n'
	default:
		s.col++
		return c
	}
}

// UngetChar pushes c back onto the stream, up to pushbackDepth deep, the
// way streamio.c's UngetChar/PopChar pair does for the lexer's
// single/double lookahead.
func (s *Source) UngetChar(c rune) {
	if c == EOF {
		return
	}
	if len(s.pushed) >= pushbackDepth {
		panic("source: UngetChar pushback buffer exceeded")
	}
	s.pushed = append(s.pushed, c)
	s.col = s.lastCol
}
