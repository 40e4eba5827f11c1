package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/iksnae/ftl/internal"
)

func TestJSONExporter_Export(t *testing.T) {
	urls := internal.CreateTestURLMap(
		internal.TestURLMapEntry{Workspace: "w1", Window: "0", URLs: []string{"http://a.com", "http://b.com"}},
		internal.TestURLMapEntry{Workspace: "w1", Window: "1", URLs: []string{"http://a.com"}},
	)

	var buf bytes.Buffer
	exporter := &JSONExporter{}
	if err := exporter.Export(urls, &buf); err != nil {
		t.Fatalf("JSONExporter.Export() error = %v", err)
	}

	want := `{
    "w1": {
        "0": [
            "http://a.com",
            "http://b.com"
        ],
        "1": [
            "http://a.com"
        ]
    }
}
`
	if got := buf.String(); got != want {
		t.Errorf("JSONExporter.Export() output =\n%s\nwant\n%s", got, want)
	}
}

func TestJSONExporter_Export_Empty(t *testing.T) {
	tests := []struct {
		name string
		urls *internal.WorkspaceURLMap
	}{
		{name: "empty map", urls: internal.NewWorkspaceURLMap()},
		{name: "nil map", urls: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := (&JSONExporter{}).Export(tt.urls, &buf); err != nil {
				t.Fatalf("JSONExporter.Export() error = %v", err)
			}
			if got := buf.String(); got != "{}\n" {
				t.Errorf("JSONExporter.Export() = %q, want %q", got, "{}\n")
			}
		})
	}
}

func TestJSONExporter_RoundTrip(t *testing.T) {
	urls := testURLMap()

	var buf bytes.Buffer
	if err := (&JSONExporter{}).Export(urls, &buf); err != nil {
		t.Fatalf("JSONExporter.Export() error = %v", err)
	}

	var decoded map[string]map[string][]string
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v\nOutput: %s", err, buf.String())
	}

	want := internal.URLMapToPlain(urls)
	if len(decoded) != len(want) {
		t.Fatalf("decoded %d workspaces, want %d", len(decoded), len(want))
	}
	if got := decoded[""]["0"][0]; got != "https://example.com/?a=1&b=2" {
		t.Errorf("decoded URL = %q, want query string intact", got)
	}
	if got := decoded["w1"]["1"]; len(got) != 1 || got[0] != "http://a.com" {
		t.Errorf("decoded w1/1 = %v", got)
	}
}

func TestJSONExporter_Extension(t *testing.T) {
	exporter := &JSONExporter{}
	if got := exporter.Extension(); got != "json" {
		t.Errorf("JSONExporter.Extension() = %v, want json", got)
	}
}
