package internal

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// SessionDocument represents a decoded Firefox session
type SessionDocument struct {
	Windows []WindowRecord
}

// WindowRecord represents one browser window
type WindowRecord struct {
	WorkspaceID string // empty means the default workspace
	Tabs        []TabRecord
}

// TabRecord represents one tab and its navigation history
type TabRecord struct {
	History      []HistoryEntry
	CurrentIndex int // 1-based position of the active entry in History
}

// HistoryEntry represents a single navigation history entry
type HistoryEntry struct {
	URL string
}

// WindowURLMap maps a window index ("0", "1", ...) to the current URLs of its tabs.
// Keys keep the order they were assigned in.
type WindowURLMap = orderedmap.OrderedMap[string, []string]

// WorkspaceURLMap maps a workspace ID to the URLs of its windows
type WorkspaceURLMap = orderedmap.OrderedMap[string, *WindowURLMap]

// NewWindowURLMap creates an empty WindowURLMap
func NewWindowURLMap() *WindowURLMap {
	return orderedmap.New[string, []string]()
}

// NewWorkspaceURLMap creates an empty WorkspaceURLMap
func NewWorkspaceURLMap() *WorkspaceURLMap {
	return orderedmap.New[string, *WindowURLMap]()
}
