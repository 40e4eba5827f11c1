package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bmatcuk/doublestar/v4"
)

const (
	// DefaultSessionDirPattern matches Firefox profile directories
	DefaultSessionDirPattern = "*.default*"

	sessionBackupsDir = "sessionstore-backups"
	recoveryFileName  = "recovery.jsonlz4"
)

// DefaultFirefoxDir returns the directory Firefox keeps profiles in for the current OS
func DefaultFirefoxDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library/Application Support/Firefox/Profiles"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "Mozilla", "Firefox", "Profiles"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "Mozilla", "Firefox", "Profiles"), nil
	default:
		return filepath.Join(home, ".mozilla", "firefox"), nil
	}
}

// FindNewestSessionDirectory returns the most recently modified directory directly
// under rootDir whose name matches pattern. That profile is the one Firefox is
// currently writing its session to.
func FindNewestSessionDirectory(rootDir, pattern string) (string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return "", &SessionDirectoryNotFoundError{
			Root:    rootDir,
			Pattern: pattern,
			Err:     doublestar.ErrBadPattern,
		}
	}

	entries, err := os.ReadDir(rootDir)
	if err != nil {
		return "", &FileAccessError{Path: rootDir, Op: "readdir", Err: err}
	}

	var newest string
	var newestInfo os.FileInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		matched, _ := doublestar.Match(pattern, entry.Name())
		if !matched {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			LogWarn("Skipping %s: %v", entry.Name(), err)
			continue
		}
		LogDebug("Candidate session directory %s (modified %s)", entry.Name(), info.ModTime().Format("2006-01-02 15:04:05"))
		if newestInfo == nil || info.ModTime().After(newestInfo.ModTime()) {
			newest = filepath.Join(rootDir, entry.Name())
			newestInfo = info
		}
	}

	if newestInfo == nil {
		return "", &SessionDirectoryNotFoundError{Root: rootDir, Pattern: pattern}
	}

	LogInfo("Using session directory %s", newest)
	return newest, nil
}

// ValidateSessionDirectory checks that dir exists and is a directory
func ValidateSessionDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return &FileAccessError{Path: dir, Op: "stat", Err: err}
	}
	if !info.IsDir() {
		return &FileAccessError{Path: dir, Op: "stat", Err: fmt.Errorf("not a directory")}
	}
	return nil
}

// SessionFilePath returns the path of the session recovery file inside a profile directory
func SessionFilePath(sessionDir string) string {
	return filepath.Join(sessionDir, sessionBackupsDir, recoveryFileName)
}

// ReadSessionFileBytes reads a session file from disk
func ReadSessionFileBytes(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Op: "read", Err: err}
	}
	LogDebug("Read %d bytes from %s", len(data), path)
	return data, nil
}
