// Package format converts the tokens of a Pascal source file into serialisable records
// and exports them in a number of external formats.
//
// The [Exporter] interface does this in a format-agnostic way, the built in exporters
// cover JSON, YAML, TOML and a plain text dump.
package format

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"go.followtheprocess.codes/pasta/internal/syntax/token"
)

// Exporter is the interface defining a mechanism for exporting the tokens of a
// source file into an external format.
type Exporter interface {
	// Export exports the [File] into an external format, written to w.
	Export(w io.Writer, file File) error
}

// File is the serialisable form of a tokenized source file.
type File struct {
	Name   string  `json:"name"   toml:"name"   yaml:"name"`   // Name of the file
	Tokens []Token `json:"tokens" toml:"tokens" yaml:"tokens"` // Tokens in source order
}

// Token is a single token as a tagged record, the type of the token names which
// (if any) payload is carried in Value.
type Token struct {
	Type  token.Type `json:"type"            toml:"type"            yaml:"type"`            // What kind of token it is
	Value any        `json:"value,omitempty" toml:"value,omitempty" yaml:"value,omitempty"` // Literal payload, absent for punctuation
	Span  uint32     `json:"span"            toml:"span"            yaml:"span"`            // Opaque span id
	Start int        `json:"start"           toml:"start"           yaml:"start"`           // Byte offset of the start of the token
	End   int        `json:"end"             toml:"end"             yaml:"end"`             // Byte offset of the end of the token
	Text  string     `json:"text"            toml:"text"            yaml:"text"`            // The source text the token covers
}

// New builds a [File] from tokens registered with file.
//
// It returns an error if any token's span was not interned by file.
func New(file *token.FileMap, tokens []token.Token) (File, error) {
	records := make([]Token, 0, len(tokens))

	for _, tok := range tokens {
		rng, ok := file.RangeOf(tok.Span)
		if !ok {
			return File{}, fmt.Errorf("token %s does not belong to %s", tok, file.Name())
		}

		text, _ := file.Lookup(tok.Span)

		records = append(records, Token{
			Type:  tok.Kind.Type,
			Value: tok.Kind.Value(),
			Span:  tok.Span.ID(),
			Start: rng.Start,
			End:   rng.End,
			Text:  text,
		})
	}

	return File{Name: file.Name(), Tokens: records}, nil
}

// exporters maps format names to their [Exporter].
var exporters = map[string]Exporter{
	"text": TextExporter{},
	"json": JSONExporter{},
	"yaml": YAMLExporter{},
	"toml": TOMLExporter{},
}

// Names returns the names of the available export formats, sorted.
func Names() []string {
	names := make([]string, 0, len(exporters))
	for name := range exporters {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Get returns the [Exporter] for the named format.
func Get(name string) (Exporter, error) {
	exporter, ok := exporters[name]
	if !ok {
		return nil, fmt.Errorf("unknown format %q, allowed values are %s", name, strings.Join(Names(), ", "))
	}

	return exporter, nil
}
