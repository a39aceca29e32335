// Package pprint is the pretty-printer (C9): a line buffer with
// a wrap point and a two-level indent stack, reading the cleaned-up tree
// (C8's output) and writing it back out as text with line wrapping,
// indentation, attribute-value wrapping and character escaping applied
// (original_source/tidylib-src/src/pprint.c).
//
// Grounded on pprint.c's architecture (AddChar/SetWrap/CheckWrapLine/
// FlushLine/CondFlushLine, ShouldIndent, PPrintChar, PPrintTree) for the
// wrap/indent/escaping logic, and on the teacher's serialize package
// (serialize/serialize.go) for the surrounding Go idiom: a small options
// struct, switch-dispatch per node kind, direct io.Writer output.
package pprint

import (
	"bufio"
	"io"

	"github.com/htmltidy/gotidy/charbuf"
	"github.com/htmltidy/gotidy/config"
	"github.com/htmltidy/gotidy/diag"
	"github.com/htmltidy/gotidy/tree"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// indentState is one slot of the two-level indent stack (InitIndent's
// TidyIndent: spaces plus the attribute-value/string offsets a wrap point
// recorded inside an attribute needs to carry forward).
type indentState struct {
	spaces          int
	attrValStart    int
	attrStringStart int
}

func freshIndent() indentState {
	return indentState{spaces: -1, attrValStart: -1, attrStringStart: -1}
}

// mode selects how writeChar escapes a rune: ordinary text wraps at
// spaces and escapes markup metacharacters, while comments/CDATA/raw
// script bodies pass characters straight through (PPrintChar's dispatch).
type mode int

const (
	modeText mode = iota
	modeAttrValue
	modePreformatted
	modeRaw // comments, CDATA, script/style bodies, processing instructions
)

// Printer holds the line buffer and wrap/indent state for one document
// (pprint.c's static globals, made instance state so concurrent documents
// don't share a buffer).
type Printer struct {
	w    *bufio.Writer
	buf  *charbuf.Buffer
	cfg  *config.Config
	sink diag.Sink

	line     []rune
	wraphere int
	ind      [2]indentState
	ixInd    int

	inString  bool
	inAttrVal bool
	preDepth  int

	newline string
	err     error
}

// New builds a Printer that writes through w, transcoding to cfg's output
// encoding when it isn't raw UTF-8 (symmetric with source.New's decoding
// side: encoderFor below mirrors source.go's decoderFor table).
func New(w io.Writer, buf *charbuf.Buffer, cfg *config.Config, sink diag.Sink) *Printer {
	if enc := encoderFor(cfg.OutputEncoding); enc != nil {
		w = transform.NewWriter(w, enc.NewEncoder())
	}
	return &Printer{
		w:       bufio.NewWriter(w),
		buf:     buf,
		cfg:     cfg,
		sink:    sink,
		ind:     [2]indentState{freshIndent(), freshIndent()},
		newline: newlineFor(cfg.Newline),
	}
}

func newlineFor(nl config.Newline) string {
	switch nl {
	case config.NewlineCRLF:
		return "\r\n"
	case config.NewlineCR:
		return "\r"
	default:
		return "\n"
	}
}

// encoderFor resolves cfg.OutputEncoding to a golang.org/x/text encoder,
// or nil for the encodings Go's UTF-8 strings already are (raw, ASCII,
// UTF-8 — writeChar's addEscaped has already folded anything ASCII can't
// hold down to an entity, so no transcoding step is needed there).
func encoderFor(enc config.Encoding) encoding.Encoding {
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

// utf8BOM is the byte-order mark written ahead of the document when
// output-bom calls for one on a UTF-8 stream (§6, §8 scenario 6).
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteBOM writes a byte-order mark ahead of the document when cfg's
// output-bom option calls for one: always under AutoBoolYes, never under
// AutoBoolNo, and under AutoBoolAuto only when inputHadBOM (the source's
// own BOM-detection result) is true (§6: "Output BOM is emitted only when
// output-bom is yes, or auto and input had one"). Only plain UTF-8 output
// gets a manually-written BOM here: legacy/CJK encodings have no BOM
// convention; plain UTF-16 output's golang.org/x/text encoder writes its
// own BOM, whatever output-bom says, under the UseBOM policy encoderFor
// selects for it; and UTF-16LE/BE output, encoded with IgnoreBOM, gets no
// BOM at all.
func (p *Printer) WriteBOM(inputHadBOM bool) error {
	want := p.cfg.OutputBOM == config.AutoBoolYes ||
		(p.cfg.OutputBOM == config.AutoBoolAuto && inputHadBOM)
	if !want || p.cfg.OutputEncoding != config.EncUTF8 {
		return nil
	}
	if _, err := p.w.Write(utf8BOM); err != nil {
		p.err = err
		return err
	}
	return nil
}

// Print walks root (normally a Root node) and writes the whole document.
func (p *Printer) Print(root *tree.Node) error {
	p.reset()
	p.printTree(root, 0)
	p.condFlushLine(0)
	return p.flush()
}

// PrintBody emits only <body>'s content children, one per line at the
// top indent level (pprint.c's PrintBody — used by the fragment/"body
// only" output mode).
func (p *Printer) PrintBody(root *tree.Node) error {
	p.reset()
	if body := findElement(root, "body"); body != nil {
		for c := body.FirstChild; c != nil; c = c.NextSibling {
			p.printTree(c, 0)
		}
	}
	p.condFlushLine(0)
	return p.flush()
}

func (p *Printer) reset() {
	p.line = p.line[:0]
	p.wraphere = 0
	p.ixInd = 0
	p.ind = [2]indentState{freshIndent(), freshIndent()}
	p.inString = false
	p.inAttrVal = false
	p.preDepth = 0
	p.err = nil
}

func (p *Printer) flush() error {
	if p.err != nil {
		return p.err
	}
	if err := p.w.Flush(); err != nil {
		p.err = err
	}
	return p.err
}

func findElement(root *tree.Node, name string) *tree.Node {
	if root.ElementName == name && root.IsElement() {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}
