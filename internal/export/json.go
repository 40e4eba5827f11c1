package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/ftl/internal"
)

// JSONExporter exports the URL map as a JSON object indented by four spaces
type JSONExporter struct{}

// Export exports the URL map to JSON format
func (e *JSONExporter) Export(urls *internal.WorkspaceURLMap, w io.Writer) error {
	if urls == nil {
		urls = internal.NewWorkspaceURLMap()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)

	return enc.Encode(urls)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
