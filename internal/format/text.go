package format

import (
	"bufio"
	"fmt"
	"io"
)

// TextExporter is an [Exporter] that writes a plain text dump of the tokens, one
// per line, for reading in a terminal.
//
//	# main.pas
//	1 [0, 3) Identifier "foo"
//	2 [4, 5) Equals "="
type TextExporter struct{}

// Export implements [Exporter] for [TextExporter].
func (t TextExporter) Export(w io.Writer, file File) error {
	buf := bufio.NewWriter(w)

	fmt.Fprintf(buf, "# %s\n", file.Name)

	for _, tok := range file.Tokens {
		fmt.Fprintf(buf, "%d [%d, %d) %s %q\n", tok.Span, tok.Start, tok.End, tok.Type, tok.Text)
	}

	return buf.Flush()
}
