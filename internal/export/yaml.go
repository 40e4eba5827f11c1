package export

import (
	"io"

	"github.com/iksnae/ftl/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports the URL map in YAML format
type YAMLExporter struct{}

// Export exports the URL map to YAML format
func (e *YAMLExporter) Export(urls *internal.WorkspaceURLMap, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(urlMapNode(urls))
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}

// urlMapNode builds the YAML document by hand so map order survives and
// window indices stay strings
func urlMapNode(urls *internal.WorkspaceURLMap) *yaml.Node {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if urls == nil {
		return root
	}

	for ws := urls.Oldest(); ws != nil; ws = ws.Next() {
		windows := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		if ws.Value != nil {
			for win := ws.Value.Oldest(); win != nil; win = win.Next() {
				tabs := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
				for _, url := range win.Value {
					tabs.Content = append(tabs.Content, stringNode(url))
				}
				windows.Content = append(windows.Content, stringNode(win.Key), tabs)
			}
		}
		root.Content = append(root.Content, stringNode(ws.Key), windows)
	}
	return root
}

func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
