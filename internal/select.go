package internal

import "slices"

// Select filters a WorkspaceURLMap down to the requested workspaces and windows.
// An empty filter selects everything in its dimension. The window filter applies
// to every retained workspace alike. Unknown identifiers are ignored, and the
// remaining entries keep their order.
func Select(urls *WorkspaceURLMap, workspaces, windows []string) *WorkspaceURLMap {
	workspaceSet := toSet(workspaces)
	windowSet := toSet(windows)

	selected := NewWorkspaceURLMap()
	if urls == nil {
		return selected
	}

	for ws := urls.Oldest(); ws != nil; ws = ws.Next() {
		if !matches(workspaceSet, ws.Key) {
			continue
		}
		kept := NewWindowURLMap()
		if ws.Value != nil {
			for win := ws.Value.Oldest(); win != nil; win = win.Next() {
				if matches(windowSet, win.Key) {
					kept.Set(win.Key, slices.Clone(win.Value))
				}
			}
		}
		selected.Set(ws.Key, kept)
	}

	return selected
}

func toSet(ids []string) map[string]struct{} {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// matches reports whether id passes the filter; a nil filter passes everything
func matches(set map[string]struct{}, id string) bool {
	if set == nil {
		return true
	}
	_, ok := set[id]
	return ok
}
