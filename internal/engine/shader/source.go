package shader

import (
	"io"
	"os"
)

// LoadSource reads an entire shader source file into memory.
//
// The returned error is a *SourceError wrapping ErrNotFound when the path
// cannot be opened, ErrNotRegularFile when it is not a plain file and
// ErrEmpty when the file has zero length.
func LoadSource(path string) (string, error) {
	// Opening a FIFO or some devices blocks, so the mode is checked first.
	info, err := os.Stat(path)
	if err != nil {
		return "", &SourceError{Path: path, Err: ErrNotFound, Op: err}
	}
	if !info.Mode().IsRegular() {
		return "", &SourceError{Path: path, Err: ErrNotRegularFile}
	}

	f, err := os.Open(path)
	if err != nil {
		return "", &SourceError{Path: path, Err: ErrNotFound, Op: err}
	}
	defer f.Close()

	// The path may have been replaced between Stat and Open.
	info, err = f.Stat()
	if err != nil {
		return "", &SourceError{Path: path, Err: ErrNotFound, Op: err}
	}
	if !info.Mode().IsRegular() {
		return "", &SourceError{Path: path, Err: ErrNotRegularFile}
	}
	if info.Size() == 0 {
		return "", &SourceError{Path: path, Err: ErrEmpty}
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return "", &SourceError{Path: path, Err: ErrNotFound, Op: err}
	}
	if len(data) == 0 {
		return "", &SourceError{Path: path, Err: ErrEmpty}
	}
	return string(data), nil
}
