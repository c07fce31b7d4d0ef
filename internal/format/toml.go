package format

import (
	"io"

	"github.com/BurntSushi/toml"
)

// TOMLExporter is an [Exporter] that writes tokens as a TOML document.
//
// TOML integers are signed 64 bit, so Integer tokens above math.MaxInt64 can't
// be exported.
type TOMLExporter struct{}

// Export implements [Exporter] for [TOMLExporter] and exports the given file
// as a complete TOML document.
func (t TOMLExporter) Export(w io.Writer, file File) error {
	encoder := toml.NewEncoder(w)
	encoder.Indent = ""

	return encoder.Encode(file)
}
