package internal

// ExtractCurrentURL returns the URL of the tab's active history entry.
// Session data keeps each tab's full navigation history; only the entry at
// CurrentIndex (1-based) is the page the tab is showing.
func ExtractCurrentURL(tab TabRecord) (string, error) {
	if tab.CurrentIndex < 1 || tab.CurrentIndex > len(tab.History) {
		return "", &InvalidTabIndexError{
			Window:  -1,
			Tab:     -1,
			Index:   tab.CurrentIndex,
			Entries: len(tab.History),
		}
	}
	return tab.History[tab.CurrentIndex-1].URL, nil
}

// ExtractWindowURLs returns the current URL of every tab in the window, in tab order
func ExtractWindowURLs(window WindowRecord) ([]string, error) {
	urls := make([]string, 0, len(window.Tabs))
	for i, tab := range window.Tabs {
		url, err := ExtractCurrentURL(tab)
		if err != nil {
			if indexErr, ok := err.(*InvalidTabIndexError); ok {
				indexErr.Tab = i
			}
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
