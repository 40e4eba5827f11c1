package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/ftl/internal"
)

// JSONLExporter exports one JSON object per tab
type JSONLExporter struct{}

type tabLine struct {
	Workspace string `json:"workspace"`
	Window    string `json:"window"`
	Tab       int    `json:"tab"`
	URL       string `json:"url"`
}

// Export exports the URL map to JSONL format
func (e *JSONLExporter) Export(urls *internal.WorkspaceURLMap, w io.Writer) error {
	if urls == nil {
		return nil
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	for ws := urls.Oldest(); ws != nil; ws = ws.Next() {
		if ws.Value == nil {
			continue
		}
		for win := ws.Value.Oldest(); win != nil; win = win.Next() {
			for i, url := range win.Value {
				line := tabLine{Workspace: ws.Key, Window: win.Key, Tab: i, URL: url}
				if err := enc.Encode(line); err != nil {
					return fmt.Errorf("failed to encode tab: %w", err)
				}
			}
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
