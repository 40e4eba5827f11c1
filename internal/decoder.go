package internal

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pierrec/lz4/v4"
)

const (
	// SessionHeaderSize is the length of the magic/version marker ("mozLz40\0")
	// that precedes the compressed block. It is skipped, never validated.
	SessionHeaderSize = 8

	// blockSizePrefix is the little-endian uint32 uncompressed size that leads the block
	blockSizePrefix = 4

	// maxDecompressedSize bounds the allocation made for a declared block size
	maxDecompressedSize = 256 << 20
)

// rawSession mirrors the parts of the session JSON that are consumed
type rawSession struct {
	Windows *[]rawWindow `json:"windows"`
}

type rawWindow struct {
	WorkspaceID string   `json:"workspaceID"`
	Tabs        []rawTab `json:"tabs"`
}

type rawTab struct {
	Index   json.RawMessage `json:"index"`
	Entries []rawEntry      `json:"entries"`
}

type rawEntry struct {
	URL string `json:"url"`
}

// Decode turns the raw bytes of a session file into a SessionDocument
func Decode(raw []byte) (*SessionDocument, error) {
	if len(raw) < SessionHeaderSize {
		return nil, &MalformedSessionError{
			Stage: "header",
			Err:   fmt.Errorf("file is %d bytes, shorter than the %d byte header", len(raw), SessionHeaderSize),
		}
	}

	data, err := decompressBlock(raw[SessionHeaderSize:])
	if err != nil {
		return nil, &MalformedSessionError{Stage: "decompress", Err: err}
	}
	LogDebug("Decompressed session payload: %d bytes", len(data))

	if !utf8.Valid(data) {
		return nil, &MalformedSessionError{Stage: "json", Err: errors.New("payload is not valid UTF-8")}
	}

	var session rawSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, &MalformedSessionError{Stage: "json", Err: err}
	}
	if session.Windows == nil {
		return nil, &MalformedSessionError{Stage: "shape", Err: errors.New(`missing "windows" array`)}
	}

	doc := &SessionDocument{Windows: make([]WindowRecord, 0, len(*session.Windows))}
	for wi, rw := range *session.Windows {
		window := WindowRecord{
			WorkspaceID: rw.WorkspaceID,
			Tabs:        make([]TabRecord, 0, len(rw.Tabs)),
		}
		for ti, rt := range rw.Tabs {
			index, err := parseTabIndex(rt.Index)
			if err != nil {
				return nil, &MalformedSessionError{
					Stage: "shape",
					Err:   fmt.Errorf("window %d, tab %d: %w", wi, ti, err),
				}
			}
			tab := TabRecord{
				History:      make([]HistoryEntry, len(rt.Entries)),
				CurrentIndex: index,
			}
			for ei, entry := range rt.Entries {
				tab.History[ei] = HistoryEntry{URL: entry.URL}
			}
			window.Tabs = append(window.Tabs, tab)
		}
		doc.Windows = append(doc.Windows, window)
	}

	LogDebug("Decoded session with %d window(s)", len(doc.Windows))
	return doc, nil
}

// decompressBlock decodes a size-prefixed LZ4 block
func decompressBlock(block []byte) ([]byte, error) {
	if len(block) < blockSizePrefix {
		return nil, fmt.Errorf("block is %d bytes, missing its %d byte size prefix", len(block), blockSizePrefix)
	}

	size := binary.LittleEndian.Uint32(block[:blockSizePrefix])
	if size > maxDecompressedSize {
		return nil, fmt.Errorf("declared size %d exceeds limit of %d bytes", size, maxDecompressedSize)
	}

	dst := make([]byte, size)
	n, err := lz4.UncompressBlock(block[blockSizePrefix:], dst)
	if err != nil {
		return nil, fmt.Errorf("lz4: %w", err)
	}
	if n != int(size) {
		return nil, fmt.Errorf("decompressed %d bytes, expected %d", n, size)
	}

	return dst, nil
}

// parseTabIndex accepts the tab index as a JSON integer or a decimal string
func parseTabIndex(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, errors.New(`missing "index"`)
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, fmt.Errorf(`invalid "index": %w`, err)
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, fmt.Errorf(`non-numeric "index" %q`, s)
		}
		return n, nil
	}

	var num json.Number
	if err := json.Unmarshal(raw, &num); err != nil {
		return 0, fmt.Errorf(`non-numeric "index" %s`, raw)
	}
	n, err := strconv.Atoi(num.String())
	if err != nil {
		return 0, fmt.Errorf(`non-integer "index" %s`, num)
	}
	return n, nil
}
