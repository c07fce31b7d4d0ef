package format

import (
	"io"

	"go.yaml.in/yaml/v4"
)

const yamlIndent = 2

// YAMLExporter is an [Exporter] that writes tokens as a YAML document.
type YAMLExporter struct{}

// Export implements [Exporter] for [YAMLExporter] and exports the given file as
// a complete YAML document.
func (y YAMLExporter) Export(w io.Writer, file File) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(file); err != nil {
		return err
	}

	return encoder.Close()
}
