package shader

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMatch is returned when a file name does not follow <name>.<stage>.<ext>.
	ErrNoMatch = errors.New("file name does not match shader convention")

	// ErrNotFound is returned when a source file cannot be opened.
	ErrNotFound = errors.New("shader source not found")

	// ErrNotRegularFile is returned when a source path is a directory, device or similar.
	ErrNotRegularFile = errors.New("shader source is not a regular file")

	// ErrEmpty is returned for zero-length source files.
	ErrEmpty = errors.New("shader source is empty")

	// ErrDuplicate is returned when a stage cache already holds the logical name.
	ErrDuplicate = errors.New("shader already cached")
)

// SourceError describes a failure to read a shader source file.
type SourceError struct {
	Path string
	Err  error // one of ErrNotFound, ErrNotRegularFile, ErrEmpty
	Op   error // underlying os error, if any
}

func (e *SourceError) Error() string {
	if e.Op != nil {
		return fmt.Sprintf("%s: %v: %v", e.Path, e.Err, e.Op)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() []error {
	if e.Op != nil {
		return []error{e.Err, e.Op}
	}
	return []error{e.Err}
}

// CompileError carries the compiler diagnostic for a rejected shader source.
type CompileError struct {
	Stage Stage
	Name  string
	Log   string
}

func (e *CompileError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s shader %q: %s", e.Stage, e.Name, e.Log)
	}
	return fmt.Sprintf("%s shader: %s", e.Stage, e.Log)
}

// LinkError carries the linker diagnostic for a program that failed to link.
type LinkError struct {
	Name string
	Log  string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link %q: %s", e.Name, e.Log)
}
