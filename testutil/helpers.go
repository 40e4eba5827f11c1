package testutil

import (
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pierrec/lz4/v4"
)

// SessionFileMagic is the header Firefox writes in front of jsonlz4 files
const SessionFileMagic = "mozLz40\x00"

// EncodeSessionFile wraps payload the way Firefox stores recovery.jsonlz4:
// magic header, little-endian uncompressed size, then one LZ4 block.
func EncodeSessionFile(t *testing.T, payload []byte) []byte {
	t.Helper()
	return append([]byte(SessionFileMagic), CompressBlock(t, payload)...)
}

// CompressBlock compresses payload into a size-prefixed LZ4 block
func CompressBlock(t *testing.T, payload []byte) []byte {
	t.Helper()
	block := make([]byte, lz4.CompressBlockBound(len(payload)))
	n, err := lz4.CompressBlock(payload, block, nil)
	if err != nil {
		t.Fatalf("Failed to compress block: %v", err)
	}

	out := make([]byte, 4, 4+n)
	binary.LittleEndian.PutUint32(out, uint32(len(payload)))
	return append(out, block[:n]...)
}

// WriteProfile creates rootDir/name/sessionstore-backups/recovery.jsonlz4 holding
// sessionFile and sets the profile directory's modification time. A nil
// sessionFile creates the profile without a session file.
func WriteProfile(t *testing.T, rootDir, name string, sessionFile []byte, modTime time.Time) string {
	t.Helper()
	profileDir := filepath.Join(rootDir, name)
	backupsDir := filepath.Join(profileDir, "sessionstore-backups")
	if err := os.MkdirAll(backupsDir, 0755); err != nil {
		t.Fatalf("Failed to create profile directory: %v", err)
	}
	if sessionFile != nil {
		if err := os.WriteFile(filepath.Join(backupsDir, "recovery.jsonlz4"), sessionFile, 0644); err != nil {
			t.Fatalf("Failed to write session file: %v", err)
		}
	}
	if err := os.Chtimes(profileDir, modTime, modTime); err != nil {
		t.Fatalf("Failed to set profile modification time: %v", err)
	}
	return profileDir
}

// JSONMarshal marshals a value to JSON for testing
func JSONMarshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal JSON: %v", err)
	}
	return data
}

// JSONUnmarshal unmarshals JSON for testing
func JSONUnmarshal(t *testing.T, data []byte, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
}
