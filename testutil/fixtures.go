package testutil

import (
	"testing"
)

// Window describes a window for SessionJSON
type Window struct {
	WorkspaceID string // omitted from the JSON when empty
	Tabs        []Tab
}

// Tab describes a tab for SessionJSON. Index is written verbatim, so it can be
// an int, a string or nil (omitted).
type Tab struct {
	Index interface{}
	URLs  []string
}

// SessionJSON builds a session document shaped like Firefox's sessionstore,
// including fields the decoder is expected to ignore.
func SessionJSON(t *testing.T, windows ...Window) []byte {
	t.Helper()

	rawWindows := make([]map[string]interface{}, 0, len(windows))
	for _, w := range windows {
		tabs := make([]map[string]interface{}, 0, len(w.Tabs))
		for _, tab := range w.Tabs {
			entries := make([]map[string]interface{}, 0, len(tab.URLs))
			for i, url := range tab.URLs {
				entries = append(entries, map[string]interface{}{
					"url":          url,
					"title":        "Page " + url,
					"ID":           i + 1,
					"docshellUUID": "{00000000-0000-0000-0000-000000000000}",
				})
			}
			rawTab := map[string]interface{}{
				"entries":      entries,
				"lastAccessed": int64(1700000000000),
				"hidden":       false,
				"attributes":   map[string]interface{}{},
			}
			if tab.Index != nil {
				rawTab["index"] = tab.Index
			}
			tabs = append(tabs, rawTab)
		}

		rawWindow := map[string]interface{}{
			"tabs":     tabs,
			"selected": 1,
			"width":    1280,
			"height":   800,
		}
		if w.WorkspaceID != "" {
			rawWindow["workspaceID"] = w.WorkspaceID
		}
		rawWindows = append(rawWindows, rawWindow)
	}

	return JSONMarshal(t, map[string]interface{}{
		"version":        []interface{}{"sessionrestore", 1},
		"windows":        rawWindows,
		"selectedWindow": 1,
		"_closedWindows": []interface{}{},
		"session":        map[string]interface{}{"lastUpdate": int64(1700000000000)},
		"global":         map[string]interface{}{},
	})
}

// SessionFile builds an encoded recovery.jsonlz4 for the given windows
func SessionFile(t *testing.T, windows ...Window) []byte {
	t.Helper()
	return EncodeSessionFile(t, SessionJSON(t, windows...))
}
