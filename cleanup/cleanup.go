// Package cleanup implements the style-distillation and markup-tidying pass
// (C8): the set of node-rewrite rules that turn presentation markup (font,
// center, align attributes, nested b/i) into CSS, intern the resulting style
// strings into head-level rules, and apply a handful of structural repairs
// (trailing <br> hoisting, Word 2000 conditional-comment pruning, meta
// charset rewriting) ahead of pretty-printing.
//
// Grounded throughout on original_source/tidylib-src/src/clean.c; see
// DESIGN.md for the per-rule mapping.
package cleanup

import (
	"github.com/htmltidy/gotidy/charbuf"
	"github.com/htmltidy/gotidy/config"
	"github.com/htmltidy/gotidy/diag"
	"github.com/htmltidy/gotidy/tree"
)

// Cleaner holds the state one cleanup pass over a document threads through
// its rules: the style-interning table (shared across every node visited)
// and the configuration governing which optional rules fire.
type Cleaner struct {
	cfg    *config.Config
	buf    *charbuf.Buffer
	sink   diag.Sink
	styles *styleSheet
}

// New creates a Cleaner for one document. buf is the document's shared
// character buffer (cleanup synthesizes new text, e.g. the <style> element's
// body and a Word 2000 nbsp placeholder, and appends it there).
func New(buf *charbuf.Buffer, cfg *config.Config, sink diag.Sink) *Cleaner {
	return &Cleaner{
		cfg:    cfg,
		buf:    buf,
		sink:   sink,
		styles: newStyleSheet(cfg.CSSPrefix),
	}
}

func (c *Cleaner) report(n *tree.Node, code diag.Code, args ...interface{}) {
	line, col := 0, 0
	if n != nil {
		line, col = n.Line, n.Column
	}
	c.sink.Emit(diag.New(code, line, col, args...))
}

// Pipeline runs the full cleanup stage over root, in clean.c's CleanDocument
// rule order (SPEC_FULL §3.1): nested-emphasis collapse, optional logical-
// emphasis rename, indent-only-list-to-blockquote coercion, Word 2000
// conditional-comment pruning, the font/center/div distillation chain, style
// interning (if make-clean), trailing-<br> hoisting, and the meta charset
// rewrite.
func (c *Cleaner) Pipeline(root *tree.Node) {
	NestedEmphasis(root)
	if c.cfg.LogicalEmphasis {
		EmFromI(root)
	}
	List2BQ(root)
	BQ2Div(root)

	if c.cfg.Word2000 {
		c.DropSections(root)
		c.purgeWord2000Tree(root)
	}

	c.CleanTree(root)

	if c.cfg.MakeClean {
		c.DefineStyleRules(root)
		c.CreateStyleElement(root)
	}

	c.FixBrakes(root)
	c.VerifyHTTPEquiv(findElement(root, "head"))
}
