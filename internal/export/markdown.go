package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/ftl/internal"
)

// MarkdownExporter exports the URL map as a Markdown outline
type MarkdownExporter struct{}

// Export exports the URL map to Markdown format
func (e *MarkdownExporter) Export(urls *internal.WorkspaceURLMap, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# Firefox Tabs\n\n")
	if urls == nil || urls.Len() == 0 {
		_, _ = fmt.Fprintf(w, "_No tabs._\n")
		return nil
	}

	for ws := urls.Oldest(); ws != nil; ws = ws.Next() {
		_, _ = fmt.Fprintf(w, "## Workspace %s\n\n", workspaceLabel(ws.Key))
		if ws.Value == nil {
			continue
		}
		for win := ws.Value.Oldest(); win != nil; win = win.Next() {
			_, _ = fmt.Fprintf(w, "### Window %s\n\n", win.Key)
			for _, url := range win.Value {
				_, _ = fmt.Fprintf(w, "- <%s>\n", escapeMarkdownURL(url))
			}
			_, _ = fmt.Fprintf(w, "\n")
		}
	}

	return nil
}

// workspaceLabel names the default (empty) workspace
func workspaceLabel(id string) string {
	if id == "" {
		return "(default)"
	}
	return id
}

// escapeMarkdownURL keeps a URL inside its autolink brackets
func escapeMarkdownURL(url string) string {
	url = strings.ReplaceAll(url, "<", "%3C")
	return strings.ReplaceAll(url, ">", "%3E")
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
