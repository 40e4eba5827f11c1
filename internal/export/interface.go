package export

import (
	"fmt"
	"io"

	"github.com/iksnae/ftl/internal"
)

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(urls *internal.WorkspaceURLMap, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "json":
		return &JSONExporter{}, nil
	case "yaml", "yml":
		return &YAMLExporter{}, nil
	case "jsonl":
		return &JSONLExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, yaml, jsonl, md)", format)
	}
}
