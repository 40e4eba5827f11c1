package internal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCurrentURL(t *testing.T) {
	tests := []struct {
		name    string
		tab     TabRecord
		want    string
		wantErr bool
	}{
		{
			name: "single entry",
			tab:  CreateTestTab(1, "http://a.com"),
			want: "http://a.com",
		},
		{
			name: "last entry of history",
			tab:  CreateTestTab(2, "http://a.com", "http://b.com"),
			want: "http://b.com",
		},
		{
			name: "back in history",
			tab:  CreateTestTab(1, "http://a.com", "http://b.com", "http://c.com"),
			want: "http://a.com",
		},
		{
			name:    "index zero",
			tab:     CreateTestTab(0, "http://a.com"),
			wantErr: true,
		},
		{
			name:    "negative index",
			tab:     CreateTestTab(-1, "http://a.com"),
			wantErr: true,
		},
		{
			name:    "index past history",
			tab:     CreateTestTab(3, "http://a.com", "http://b.com"),
			wantErr: true,
		},
		{
			name:    "empty history",
			tab:     CreateTestTab(1),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractCurrentURL(tt.tab)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidTabIndex))

				var indexErr *InvalidTabIndexError
				require.True(t, errors.As(err, &indexErr))
				assert.Equal(t, tt.tab.CurrentIndex, indexErr.Index)
				assert.Equal(t, len(tt.tab.History), indexErr.Entries)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractCurrentURL_IsMemberOfHistory(t *testing.T) {
	urls := []string{"http://a.com", "http://b.com", "http://a.com", "http://c.com"}
	for index := 1; index <= len(urls); index++ {
		got, err := ExtractCurrentURL(CreateTestTab(index, urls...))
		require.NoError(t, err)
		assert.Contains(t, urls, got)
		assert.Equal(t, urls[index-1], got)
	}
}

func TestExtractWindowURLs(t *testing.T) {
	window := WindowRecord{
		WorkspaceID: "w1",
		Tabs: []TabRecord{
			CreateTestTab(2, "http://a.com", "http://b.com"),
			CreateTestTab(1, "http://b.com"),
			CreateTestTab(1, "http://c.com", "http://d.com"),
		},
	}

	got, err := ExtractWindowURLs(window)
	require.NoError(t, err)
	assert.Equal(t, []string{"http://b.com", "http://b.com", "http://c.com"}, got, "order and duplicates are preserved")
}

func TestExtractWindowURLs_NoTabs(t *testing.T) {
	got, err := ExtractWindowURLs(WindowRecord{WorkspaceID: "w1"})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExtractWindowURLs_InvalidTab(t *testing.T) {
	window := WindowRecord{
		Tabs: []TabRecord{
			CreateTestTab(1, "http://a.com"),
			CreateTestTab(5, "http://b.com"),
		},
	}

	got, err := ExtractWindowURLs(window)
	require.Error(t, err)
	assert.Nil(t, got)

	var indexErr *InvalidTabIndexError
	require.True(t, errors.As(err, &indexErr))
	assert.Equal(t, 1, indexErr.Tab)
	assert.Equal(t, 5, indexErr.Index)
}
