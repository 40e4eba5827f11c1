package internal

import (
	"io"
	"os"
)

// StdoutTarget is the target name that selects standard output
const StdoutTarget = "-"

// WriteOutput writes data to target, or to stdout when target is "-" or empty
func WriteOutput(data []byte, target string, stdout io.Writer) error {
	if target == "" || target == StdoutTarget {
		if _, err := stdout.Write(data); err != nil {
			return &FileAccessError{Path: StdoutTarget, Op: "write", Err: err}
		}
		return nil
	}

	if err := os.WriteFile(target, data, 0644); err != nil {
		return &FileAccessError{Path: target, Op: "write", Err: err}
	}
	LogDebug("Wrote %d bytes to %s", len(data), target)
	return nil
}
