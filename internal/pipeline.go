package internal

import "fmt"

// WorkspaceSummary describes one workspace for listing
type WorkspaceSummary struct {
	ID      string
	Windows []WindowSummary
}

// WindowSummary describes one window for listing
type WindowSummary struct {
	Index string
	Tabs  int
}

// LoadURLMap reads the session file at path and groups its tab URLs by workspace
func LoadURLMap(path string) (*WorkspaceURLMap, error) {
	raw, err := ReadSessionFileBytes(path)
	if err != nil {
		return nil, err
	}

	doc, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	urls, err := GroupByWorkspace(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to extract tab URLs from %s: %w", path, err)
	}

	LogDebug("Found %d workspace(s) in %s", urls.Len(), path)
	return urls, nil
}

// Summarize counts the tabs of every window in urls, keeping map order
func Summarize(urls *WorkspaceURLMap) []WorkspaceSummary {
	if urls == nil {
		return nil
	}

	summaries := make([]WorkspaceSummary, 0, urls.Len())
	for ws := urls.Oldest(); ws != nil; ws = ws.Next() {
		summary := WorkspaceSummary{ID: ws.Key}
		if ws.Value != nil {
			for win := ws.Value.Oldest(); win != nil; win = win.Next() {
				summary.Windows = append(summary.Windows, WindowSummary{Index: win.Key, Tabs: len(win.Value)})
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

// TabCount returns the number of tabs across all windows of the summary
func (s WorkspaceSummary) TabCount() int {
	total := 0
	for _, w := range s.Windows {
		total += w.Tabs
	}
	return total
}
