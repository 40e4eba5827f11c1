package internal

// CreateTestTab creates a tab whose history holds urls, with currentIndex pointing into it
func CreateTestTab(currentIndex int, urls ...string) TabRecord {
	history := make([]HistoryEntry, len(urls))
	for i, url := range urls {
		history[i] = HistoryEntry{URL: url}
	}
	return TabRecord{
		History:      history,
		CurrentIndex: currentIndex,
	}
}

// CreateTestWindow creates a window in the given workspace with one single-entry tab per url
func CreateTestWindow(workspaceID string, urls ...string) WindowRecord {
	tabs := make([]TabRecord, len(urls))
	for i, url := range urls {
		tabs[i] = CreateTestTab(1, url)
	}
	return WindowRecord{
		WorkspaceID: workspaceID,
		Tabs:        tabs,
	}
}

// CreateTestDocument creates a session document from windows
func CreateTestDocument(windows ...WindowRecord) *SessionDocument {
	if windows == nil {
		windows = []WindowRecord{}
	}
	return &SessionDocument{Windows: windows}
}

// CreateTestURLMap builds a WorkspaceURLMap from workspace/window/url triples
// given in insertion order
func CreateTestURLMap(entries ...TestURLMapEntry) *WorkspaceURLMap {
	m := NewWorkspaceURLMap()
	for _, e := range entries {
		windows, ok := m.Get(e.Workspace)
		if !ok {
			windows = NewWindowURLMap()
			m.Set(e.Workspace, windows)
		}
		windows.Set(e.Window, e.URLs)
	}
	return m
}

// TestURLMapEntry is one window of a CreateTestURLMap result
type TestURLMapEntry struct {
	Workspace string
	Window    string
	URLs      []string
}

// URLMapToPlain converts a WorkspaceURLMap to nested builtin maps for comparison
func URLMapToPlain(m *WorkspaceURLMap) map[string]map[string][]string {
	plain := make(map[string]map[string][]string)
	if m == nil {
		return plain
	}
	for ws := m.Oldest(); ws != nil; ws = ws.Next() {
		windows := make(map[string][]string)
		if ws.Value != nil {
			for win := ws.Value.Oldest(); win != nil; win = win.Next() {
				windows[win.Key] = win.Value
			}
		}
		plain[ws.Key] = windows
	}
	return plain
}

// URLMapKeys returns the workspace keys of m followed by each workspace's window keys, in order
func URLMapKeys(m *WorkspaceURLMap) []string {
	var keys []string
	for ws := m.Oldest(); ws != nil; ws = ws.Next() {
		keys = append(keys, ws.Key)
		for win := ws.Value.Oldest(); win != nil; win = win.Next() {
			keys = append(keys, ws.Key+"/"+win.Key)
		}
	}
	return keys
}
