package internal

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/iksnae/ftl/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadURLMap(t *testing.T) {
	raw := testutil.SessionFile(t,
		testutil.Window{
			WorkspaceID: "w1",
			Tabs: []testutil.Tab{
				{Index: "2", URLs: []string{"http://a.com", "http://b.com"}},
			},
		},
		testutil.Window{
			WorkspaceID: "w1",
			Tabs: []testutil.Tab{
				{Index: 1, URLs: []string{"http://c.com"}},
				{Index: 1, URLs: []string{"http://c.com"}},
			},
		},
	)
	profile := testutil.WriteProfile(t, t.TempDir(), "abc.default", raw, time.Now())

	got, err := LoadURLMap(SessionFilePath(profile))
	require.NoError(t, err)
	assert.Equal(t, map[string]map[string][]string{
		"w1": {
			"0": {"http://b.com"},
			"1": {"http://c.com", "http://c.com"},
		},
	}, URLMapToPlain(got))
}

func TestLoadURLMap_Errors(t *testing.T) {
	root := t.TempDir()

	malformed := testutil.WriteProfile(t, root, "bad.default",
		testutil.EncodeSessionFile(t, []byte(`{"session":{}}`)), time.Now())
	badIndex := testutil.WriteProfile(t, root, "idx.default",
		testutil.SessionFile(t, testutil.Window{
			Tabs: []testutil.Tab{{Index: 3, URLs: []string{"http://a.com"}}},
		}), time.Now())

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{
			name:    "missing file",
			path:    filepath.Join(root, "missing.jsonlz4"),
			wantErr: ErrFileAccess,
		},
		{
			name:    "missing windows",
			path:    SessionFilePath(malformed),
			wantErr: ErrMalformedSessionFile,
		},
		{
			name:    "index out of range",
			path:    SessionFilePath(badIndex),
			wantErr: ErrInvalidTabIndex,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadURLMap(tt.path)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

func TestSummarize(t *testing.T) {
	urls := CreateTestURLMap(
		TestURLMapEntry{Workspace: "w1", Window: "0", URLs: []string{"http://a.com", "http://b.com"}},
		TestURLMapEntry{Workspace: "w1", Window: "1", URLs: []string{}},
		TestURLMapEntry{Workspace: "w2", Window: "0", URLs: []string{"http://c.com"}},
	)

	got := Summarize(urls)
	require.Len(t, got, 2)
	assert.Equal(t, WorkspaceSummary{
		ID: "w1",
		Windows: []WindowSummary{
			{Index: "0", Tabs: 2},
			{Index: "1", Tabs: 0},
		},
	}, got[0])
	assert.Equal(t, 2, got[0].TabCount())
	assert.Equal(t, "w2", got[1].ID)
	assert.Equal(t, 1, got[1].TabCount())

	assert.Nil(t, Summarize(nil))
}
