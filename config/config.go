// Package config is the typed option store (C10): fifty of the options of
// §6, held as the fields of one plain struct so the whole configuration is
// copied in one step for Snapshot/Restore, with a functional-option
// constructor on top in the teacher's idiom (options.go's WithXxx style).
// Options are struct fields only; there is no lookup of an option by name.
package config

// AutoBool is a three-state flag: off, always-on, or "auto" (policy
// decides contextually), used by options like indent and output-bom (§6).
type AutoBool int

const (
	AutoBoolNo AutoBool = iota
	AutoBoolYes
	AutoBoolAuto
)

// Encoding enumerates the char-encoding option's legal values (§6).
type Encoding int

const (
	EncRaw Encoding = iota
	EncASCII
	EncLatin0
	EncLatin1
	EncISO2022
	EncUTF8
	EncMac
	EncWin1252
	EncIBM858
	EncUTF16LE
	EncUTF16BE
	EncUTF16
	EncBig5
	EncShiftJIS
)

// Newline enumerates the newline option (§6).
type Newline int

const (
	NewlineLF Newline = iota
	NewlineCRLF
	NewlineCR
)

// DoctypeMode enumerates the doctype-mode option (§6).
type DoctypeMode int

const (
	DoctypeOmit DoctypeMode = iota
	DoctypeAuto
	DoctypeStrict
	DoctypeLoose
	DoctypeUser
)

// Config is the whole typed option table (§4.10, §6). Default returns the
// Tidy-compatible defaults; several of them (IndentSpaces, Wrap, TabSize,
// the encodings, ...) differ from the field's zero value, so a bare
// Config{} is not a default configuration.
type Config struct {
	Indent        AutoBool
	IndentSpaces  int
	Wrap          int
	TabSize       int
	CharEncoding  Encoding
	InputEncoding Encoding
	OutputEncoding Encoding
	Newline       Newline
	OutputBOM     AutoBool
	DoctypeMode   DoctypeMode
	Doctype       string

	NumericEntities           bool
	QuoteMarks                bool
	QuoteNBSP                 bool
	QuoteAmpersand            bool
	FixBackslash              bool
	FixURI                    bool
	LogicalEmphasis           bool
	DropFontTags              bool
	DropProprietaryAttributes bool
	MakeClean                 bool
	MakeBare                  bool
	Word2000                  bool

	XMLTags  bool
	XMLOut   bool
	XHTMLOut bool
	HTMLOut  bool
	XMLPIs   bool
	XMLSpace bool

	IndentCData bool
	EscapeCData bool

	HideComments bool
	HideEndTags  bool

	WrapASP             bool
	WrapJSTE             bool
	WrapPHP              bool
	WrapScriptLiterals   bool
	WrapAttributes       bool
	WrapSections         bool
	LiteralAttributes    bool
	BreakBeforeBr        bool

	ShowWarnings bool
	ShowErrors   int
	Quiet        bool

	CSSPrefix string

	NewInlineTags     []string
	NewBlocklevelTags []string
	NewEmptyTags      []string
	NewPreTags        []string

	AccessibilityCheck int
}

// Default returns the default configuration:
// indentation off, wrap at 68 columns, tab size 4, UTF-8 in and out, LF
// newlines, auto doctype, named entities, matching the reference
// implementation's built-in defaults.
func Default() *Config {
	return &Config{
		Indent:         AutoBoolNo,
		IndentSpaces:   2,
		Wrap:           68,
		TabSize:        4,
		CharEncoding:   EncUTF8,
		InputEncoding:  EncUTF8,
		OutputEncoding: EncUTF8,
		Newline:        NewlineLF,
		OutputBOM:      AutoBoolAuto,
		DoctypeMode:    DoctypeAuto,
		ShowWarnings:   true,
		ShowErrors:     6,
		CSSPrefix:      "c",
	}
}

// Option mutates a Config at construction time, in the teacher's
// functional-option idiom (options.go's Option/WithXxx shape).
type Option func(*Config)

// New builds a Config starting from Default and applying opts in order.
func New(opts ...Option) *Config {
	c := Default()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func WithIndent(mode AutoBool, spaces int) Option {
	return func(c *Config) { c.Indent = mode; c.IndentSpaces = spaces }
}

func WithWrap(col int) Option { return func(c *Config) { c.Wrap = col } }

func WithEncoding(enc Encoding) Option {
	return func(c *Config) { c.CharEncoding = enc; c.InputEncoding = enc; c.OutputEncoding = enc }
}

func WithDoctype(mode DoctypeMode, fpi string) Option {
	return func(c *Config) { c.DoctypeMode = mode; c.Doctype = fpi }
}

func WithXHTMLOut() Option { return func(c *Config) { c.XHTMLOut = true; c.HTMLOut = false } }

func WithXMLOut() Option { return func(c *Config) { c.XMLOut = true; c.XMLTags = true } }

func WithMakeClean() Option { return func(c *Config) { c.MakeClean = true } }

func WithLogicalEmphasis() Option { return func(c *Config) { c.LogicalEmphasis = true } }

func WithNumericEntities() Option { return func(c *Config) { c.NumericEntities = true } }

// Snapshot returns a value copy of c, suitable for later Restore (§4.10).
// Every field is a value type (bool/int/string) or a slice; slices are
// copied so a caller mutating NewInlineTags etc. after the snapshot can't
// retroactively change it.
func (c *Config) Snapshot() Config {
	cp := *c
	cp.NewInlineTags = append([]string(nil), c.NewInlineTags...)
	cp.NewBlocklevelTags = append([]string(nil), c.NewBlocklevelTags...)
	cp.NewEmptyTags = append([]string(nil), c.NewEmptyTags...)
	cp.NewPreTags = append([]string(nil), c.NewPreTags...)
	return cp
}

// Restore overwrites c's fields with snap's (§4.10's reset_to_snapshot).
func (c *Config) Restore(snap Config) { *c = snap.Snapshot() }

// ResetToDefault overwrites c's fields with Default()'s (§4.10's
// reset_to_default).
func (c *Config) ResetToDefault() { *c = *Default() }
