package internal

import (
	"errors"
	"slices"
	"strconv"
	"strings"
)

// workspaceRun is a contiguous run of windows sharing one workspace ID
type workspaceRun struct {
	workspaceID string
	windows     []int // positions in SessionDocument.Windows
}

// GroupByWorkspace maps each workspace ID to its windows' URLs. Windows are
// indexed from 0 within their workspace, in the order they appear in the session.
func GroupByWorkspace(doc *SessionDocument) (*WorkspaceURLMap, error) {
	result := NewWorkspaceURLMap()
	if doc == nil {
		return result, nil
	}

	for _, run := range partitionByWorkspace(doc.Windows) {
		windows := NewWindowURLMap()
		for i, pos := range run.windows {
			urls, err := ExtractWindowURLs(doc.Windows[pos])
			if err != nil {
				var indexErr *InvalidTabIndexError
				if errors.As(err, &indexErr) {
					indexErr.Window = pos
				}
				return nil, err
			}
			windows.Set(strconv.Itoa(i), urls)
		}
		result.Set(run.workspaceID, windows)
		LogDebug("Workspace %q: %d window(s)", run.workspaceID, len(run.windows))
	}

	return result, nil
}

// partitionByWorkspace stable-sorts window positions by workspace ID and splits
// them into runs of equal IDs. Windows sharing an ID keep their relative order.
func partitionByWorkspace(windows []WindowRecord) []workspaceRun {
	order := make([]int, len(windows))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return strings.Compare(windows[a].WorkspaceID, windows[b].WorkspaceID)
	})

	var runs []workspaceRun
	for _, pos := range order {
		id := windows[pos].WorkspaceID
		if len(runs) > 0 && runs[len(runs)-1].workspaceID == id {
			last := &runs[len(runs)-1]
			last.windows = append(last.windows, pos)
			continue
		}
		runs = append(runs, workspaceRun{workspaceID: id, windows: []int{pos}})
	}
	return runs
}
