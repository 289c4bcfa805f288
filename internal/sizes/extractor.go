// Package sizes splits garment size tokens out of product names.
package sizes

import (
	"fmt"
	"regexp"
	"strings"

	"stock-organizer/internal/model"
)

// Grammar names the shape of a size token
type Grammar string

const (
	// GrammarLetter: optional "T"/"TALLA" prefix followed by XS..XXXL, e.g. "TALLA XL".
	GrammarLetter Grammar = "letter"
	// GrammarNumeric: a one or two digit number, optional decimals, then 1-3 of X/S/M/L, e.g. "32 M", "10.5XL".
	GrammarNumeric Grammar = "numeric"
)

// Anchor controls where in the name a token may sit
type Anchor string

const (
	AnchorEnd      Anchor = "end"
	AnchorAnywhere Anchor = "anywhere"
)

// LetterSizes is the letter-size vocabulary, largest first
var LetterSizes = []string{"XXXL", "XXL", "XL", "XS", "S", "M", "L"}

// Options configures an Extractor
type Options struct {
	Grammar       Grammar
	Anchor        Anchor
	RequirePrefix bool // letter grammar only: insist on "T"/"TALLA" before the code
	CaseSensitive bool
}

// DefaultOptions is the canonical grammar: upper-case prefixed letter sizes
// closing the name. Mixed-case words such as "Tallas" are never tokens.
func DefaultOptions() Options {
	return Options{
		Grammar:       GrammarLetter,
		Anchor:        AnchorEnd,
		RequirePrefix: true,
		CaseSensitive: true,
	}
}

// Extractor is safe for concurrent use; it holds only a compiled pattern.
type Extractor struct {
	opts    Options
	pattern *regexp.Regexp
}

// New compiles the pattern for opts
func New(opts Options) (*Extractor, error) {
	pattern, err := compile(opts)
	if err != nil {
		return nil, err
	}
	return &Extractor{opts: opts, pattern: pattern}, nil
}

// MustNew is New for static configurations
func MustNew(opts Options) *Extractor {
	e, err := New(opts)
	if err != nil {
		panic(err)
	}
	return e
}

func compile(opts Options) (*regexp.Regexp, error) {
	var token string
	switch opts.Grammar {
	case GrammarLetter, "":
		codes := strings.Join(LetterSizes, "|")
		if opts.RequirePrefix {
			token = `\b(?:TALLA|T)\s?(` + codes + `)\b`
		} else {
			token = `\b(?:(?:TALLA|T)\s?)?(` + codes + `)\b`
		}
	case GrammarNumeric:
		token = `\b(\d{1,2}(?:\.\d{1,2})? ?[XSML]{1,3})\b`
	default:
		return nil, fmt.Errorf("unknown size grammar %q", opts.Grammar)
	}

	expr := `\s*` + token
	switch opts.Anchor {
	case AnchorEnd, "":
		expr += `\s*$`
	case AnchorAnywhere:
	default:
		return nil, fmt.Errorf("unknown size anchor %q", opts.Anchor)
	}

	if !opts.CaseSensitive {
		expr = `(?i)` + expr
	}
	return regexp.Compile(expr)
}

// Extract removes the size token from name and returns the cleaned name and
// the upper-cased size. ok is false when the name holds no token; the name is
// then returned untouched.
//
// Tokens are removed until none is left, so the cleaned name never matches
// again. The size reported is the first one found.
func (e *Extractor) Extract(name string) (cleaned string, size string, ok bool) {
	cleaned = name
	for {
		loc := e.pattern.FindStringSubmatchIndex(cleaned)
		if loc == nil {
			break
		}
		if !ok {
			size = normalizeSize(cleaned[loc[2]:loc[3]])
			ok = true
		}
		cleaned = collapseSpaces(cleaned[:loc[0]] + " " + cleaned[loc[1]:])
	}
	return cleaned, size, ok
}

// ExtractValue is Extract for a raw cell: text cells are split, any other
// value passes through with no size. Organize works on ProductName strings
// and calls Extract directly.
func (e *Extractor) ExtractValue(v model.Value) (model.Value, string, bool) {
	if v.Kind != model.KindText {
		return v, "", false
	}
	cleaned, size, ok := e.Extract(v.Text)
	if !ok {
		return v, "", false
	}
	return model.TextValue(cleaned), size, true
}

// Options returns the configuration the extractor was built with
func (e *Extractor) Options() Options {
	return e.opts
}

func normalizeSize(s string) string {
	return strings.ToUpper(strings.ReplaceAll(s, " ", ""))
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
