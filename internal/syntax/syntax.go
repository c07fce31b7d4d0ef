// Package syntax holds the source level types shared by the Pascal front end: positions
// used for reporting, the diagnostics built from them and the handlers that render
// diagnostics for a user.
//
// The lexical machinery itself lives in the token (span registry and token kinds) and
// scanner (tokenizer) sub packages.
package syntax

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"go.followtheprocess.codes/hue"
)

// Styles used by the [PrettyConsoleHandler].
const (
	posStyle     = hue.Bold
	errStyle     = hue.Red | hue.Bold
	excerptStyle = hue.BrightBlack
)

// Position is a human readable location in a source file, derived from a byte offset.
//
// Lines and columns are 1 indexed, columns count bytes from the start of the line.
// EndCol == StartCol when the position points at a single character.
type Position struct {
	Name     string `json:"name"`     // Filename
	Offset   int    `json:"offset"`   // Byte offset from the start of the file
	Line     int    `json:"line"`     // Line number
	StartCol int    `json:"startCol"` // First column covered
	EndCol   int    `json:"endCol"`   // Last column covered
}

// IsValid reports whether the [Position] can be shown to a user.
//
// A valid position has a Name, a Line and StartCol of at least 1 and an EndCol that
// does not come before StartCol.
func (p Position) IsValid() bool {
	return p.Name != "" && p.Line >= 1 && p.StartCol >= 1 && p.EndCol >= p.StartCol
}

// String renders the position as "file:line:col" or "file:line:start-end", a format
// most editors and terminals will let you click on.
//
// Invalid positions render as a BadPosition so they are obvious in output.
func (p Position) String() string {
	if !p.IsValid() {
		return fmt.Sprintf(
			"BadPosition: {Name: %q, Line: %d, StartCol: %d, EndCol: %d}",
			p.Name,
			p.Line,
			p.StartCol,
			p.EndCol,
		)
	}

	if p.StartCol == p.EndCol {
		return fmt.Sprintf("%s:%d:%d", p.Name, p.Line, p.StartCol)
	}

	return fmt.Sprintf("%s:%d:%d-%d", p.Name, p.Line, p.StartCol, p.EndCol)
}

// ComparePosition is like [cmp.Compare] for two positions.
//
// Positions in the same file compare by offset, otherwise by file name.
func ComparePosition(x, y Position) int {
	if x.Name == y.Name {
		return cmp.Compare(x.Offset, y.Offset)
	}

	return cmp.Compare(x.Name, y.Name)
}

// Diagnostic is a problem found in a source file.
type Diagnostic struct {
	Msg      string   `json:"msg"`      // What went wrong
	Position Position `json:"position"` // Where it went wrong
	Excerpt  string   `json:"excerpt"`  // The offending line of source, may be empty
}

// String implements [fmt.Stringer] for a [Diagnostic].
func (d Diagnostic) String() string {
	return d.Position.String() + ": " + d.Msg + "\n"
}

// ErrorHandler is called with every [Diagnostic] the front end produces, it decides
// how (and whether) the user gets to see it.
type ErrorHandler func(diag Diagnostic)

// PrettyConsoleHandler returns an [ErrorHandler] that writes coloured diagnostics,
// along with the offending line of source when there is one, to w.
func PrettyConsoleHandler(w io.Writer) ErrorHandler {
	return func(diag Diagnostic) {
		fmt.Fprintf(
			w,
			"%s: %s %s\n",
			posStyle.Text(diag.Position.String()),
			errStyle.Text("error:"),
			diag.Msg,
		)

		if diag.Excerpt == "" {
			return
		}

		fmt.Fprintf(w, "%s\n", excerptStyle.Text(diag.Excerpt))

		// Caret under the offending column(s)
		width := max(diag.Position.EndCol-diag.Position.StartCol, 0) + 1
		fmt.Fprintf(w, "%*s%s\n", diag.Position.StartCol-1, "", errStyle.Text(strings.Repeat("^", width)))
	}
}
