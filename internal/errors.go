package internal

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedSessionFile     = errors.New("malformed session file")
	ErrInvalidTabIndex          = errors.New("invalid tab index")
	ErrSessionDirectoryNotFound = errors.New("session directory not found")
	ErrFileAccess               = errors.New("file access error")
)

// MalformedSessionError represents a session file that could not be decoded
type MalformedSessionError struct {
	Stage string // "header", "decompress", "json", "shape"
	Err   error
}

func (e *MalformedSessionError) Error() string {
	return fmt.Sprintf("malformed session file [%s]: %v", e.Stage, e.Err)
}

func (e *MalformedSessionError) Unwrap() error {
	return e.Err
}

func (e *MalformedSessionError) Is(target error) bool {
	return target == ErrMalformedSessionFile
}

// InvalidTabIndexError represents a tab whose current index points outside its history
type InvalidTabIndexError struct {
	Window  int // position of the window in the session, -1 if unknown
	Tab     int // position of the tab in its window, -1 if unknown
	Index   int
	Entries int
}

func (e *InvalidTabIndexError) Error() string {
	return fmt.Sprintf("invalid tab index [window %d, tab %d]: index %d outside history of %d entries",
		e.Window, e.Tab, e.Index, e.Entries)
}

func (e *InvalidTabIndexError) Is(target error) bool {
	return target == ErrInvalidTabIndex
}

// SessionDirectoryNotFoundError represents a failed profile directory search
type SessionDirectoryNotFoundError struct {
	Root    string
	Pattern string
	Err     error // optional cause, e.g. a bad pattern
}

func (e *SessionDirectoryNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("session directory not found in %s (pattern %q): %v", e.Root, e.Pattern, e.Err)
	}
	return fmt.Sprintf("session directory not found in %s (pattern %q)", e.Root, e.Pattern)
}

func (e *SessionDirectoryNotFoundError) Unwrap() error {
	return e.Err
}

func (e *SessionDirectoryNotFoundError) Is(target error) bool {
	return target == ErrSessionDirectoryNotFound
}

// FileAccessError represents errors accessing files or directories
type FileAccessError struct {
	Path string
	Op   string // "stat", "read", "readdir"
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("file access error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

func (e *FileAccessError) Is(target error) bool {
	return target == ErrFileAccess
}

// ExportError represents errors writing the selected URLs
type ExportError struct {
	Format string
	Target string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Target, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
