// Package gotidy wires the five pipeline stages (C1-C2, C4, C7, C8, C9)
// into the single entry point a caller needs: read markup, fix it up,
// write it back out. It is deliberately thin: constructing a Source,
// a Lexer, a Parser, a Cleaner and a Printer and threading one shared
// charbuf.Buffer and diag.Sink through them is all that lives here.
//
// The document lifecycle / sink-registration facade a full port of the
// original command-line tool would need is out of scope; callers that
// want that layer build it on top of Tidy.
package gotidy

import (
	"fmt"
	"io"

	"github.com/htmltidy/gotidy/charbuf"
	"github.com/htmltidy/gotidy/cleanup"
	"github.com/htmltidy/gotidy/config"
	"github.com/htmltidy/gotidy/diag"
	"github.com/htmltidy/gotidy/lexer"
	"github.com/htmltidy/gotidy/parser"
	"github.com/htmltidy/gotidy/pprint"
	"github.com/htmltidy/gotidy/source"
	"github.com/htmltidy/gotidy/tree"
)

// Result reports the outcome of one Tidy call: the diagnostic tallies a
// caller uses to decide a process exit code (§7), plus whether BOM/legacy
// encoding sniffing picked a different input encoding than was configured.
type Result struct {
	Counters         diag.Counters
	BOMSeen          bool
	DetectedEncoding config.Encoding
}

// ExitCode forwards to Counters.ExitCode (§7: 0 clean, 1 warnings, 2 errors).
func (r Result) ExitCode() int { return r.Counters.ExitCode() }

// Tidy reads markup from r, parses and cleans it per cfg, and writes the
// pretty-printed result to w. Reports produced along the way are forwarded
// to sink (a nil sink only affects reporting; Result.Counters is always
// populated). A nil cfg uses config.Default().
func Tidy(w io.Writer, r io.Reader, cfg *config.Config, sink diag.Sink) (Result, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	counting := diag.NewCountingSink(sink)

	buf := charbuf.New()

	src, err := source.New(r, cfg, counting)
	if err != nil {
		return Result{Counters: counting.Snapshot()}, fmt.Errorf("gotidy: decoding input: %w", err)
	}

	root, err := parseDocument(src, buf, cfg, counting)
	if err != nil {
		return Result{Counters: counting.Snapshot()}, err
	}

	cleanup.New(buf, cfg, counting).Pipeline(root)

	printer := pprint.New(w, buf, cfg, counting)
	if err := printer.WriteBOM(src.BOMSeen()); err != nil {
		return Result{
			Counters:         counting.Snapshot(),
			BOMSeen:          src.BOMSeen(),
			DetectedEncoding: src.DetectedEncoding(),
		}, fmt.Errorf("gotidy: writing output: %w", err)
	}
	if err := printer.Print(root); err != nil {
		return Result{
			Counters:         counting.Snapshot(),
			BOMSeen:          src.BOMSeen(),
			DetectedEncoding: src.DetectedEncoding(),
		}, fmt.Errorf("gotidy: writing output: %w", err)
	}

	return Result{
		Counters:         counting.Snapshot(),
		BOMSeen:          src.BOMSeen(),
		DetectedEncoding: src.DetectedEncoding(),
	}, nil
}

// parseDocument drives the lexer and parser for either HTML or XML input,
// per cfg.XMLTags (§4.7's parse_document vs. parse_xml_document split).
func parseDocument(src *source.Source, buf *charbuf.Buffer, cfg *config.Config, sink diag.Sink) (*tree.Node, error) {
	lex := lexer.New(src, buf, sink, cfg)
	p := parser.New(lex, buf, sink, cfg.XMLTags)
	if cfg.XMLTags {
		return p.ParseXMLDocument(), nil
	}
	return p.ParseDocument(), nil
}
