// Package shader discovers GLSL sources on disk, compiles them through a
// Device and caches the compiled shaders by logical name, one cache per
// pipeline stage. Linked programs are assembled on demand from the caches.
//
// Source files follow the naming convention <name>.<stage>.<ext>, e.g.
// basic.vert.glsl or terrain.tess-eval.glsl. The manager is not safe for
// concurrent use: like the graphics context behind its Device, it belongs
// to a single thread.
package shader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

// Config holds manager settings.
type Config struct {
	// Extension is the source file suffix, "glsl" when empty.
	Extension string
}

// Manager owns one shader cache per stage.
type Manager struct {
	dev        Device
	log        Logger
	classifier *Classifier
	caches     [StageCount]*Cache
}

// ScanSummary counts the outcomes of a directory scan.
type ScanSummary struct {
	Loaded     int // compiled and inserted
	Duplicates int // compiled but the name was already cached
	Skipped    int // not a shader file, not regular, or empty
	Failed     int // unreadable or rejected by the compiler
}

// Total returns the number of directory entries visited.
func (s ScanSummary) Total() int {
	return s.Loaded + s.Duplicates + s.Skipped + s.Failed
}

// New creates a manager compiling through dev. A nil log discards output.
func New(dev Device, log Logger, cfg Config) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Manager{
		dev:        dev,
		log:        log,
		classifier: NewClassifier(cfg.Extension),
	}
	for i := range m.caches {
		m.caches[i] = NewCache(Stage(i), dev)
	}
	return m
}

// Cache returns the cache for stage, or nil for an invalid stage.
func (m *Manager) Cache(stage Stage) *Cache {
	if !stage.Valid() {
		return nil
	}
	return m.caches[stage]
}

// Lookup returns the compiled shader cached for (stage, name).
func (m *Manager) Lookup(stage Stage, name string) (Handle, bool) {
	c := m.Cache(stage)
	if c == nil {
		return 0, false
	}
	return c.Get(name)
}

// Entries returns every cached shader ordered by stage, then name.
func (m *Manager) Entries() []Entry {
	var out []Entry
	for _, c := range m.caches {
		out = append(out, c.Entries()...)
	}
	return out
}

// AddFile runs the classify, load, compile and cache pipeline for one file.
//
// It returns nil when the shader was inserted. Otherwise the error wraps
// ErrNoMatch, a *SourceError, a *CompileError or ErrDuplicate. No shader
// object outlives a failed call.
func (m *Manager) AddFile(path string) error {
	base := filepath.Base(path)
	name, stage, err := m.classifier.Classify(base)
	if err != nil {
		return err
	}

	source, err := LoadSource(path)
	if err != nil {
		return err
	}

	h, err := Compile(m.dev, stage, source)
	if err != nil {
		var ce *CompileError
		if errors.As(err, &ce) {
			ce.Name = name
		}
		return err
	}

	entry := Entry{
		Name:   name,
		Handle: h,
		Path:   path,
		Digest: xxhash.Sum64String(source),
	}
	if m.caches[stage].PutEntry(entry) == AlreadyPresent {
		m.dev.DeleteShader(h)
		return fmt.Errorf("%s shader %q from %s: %w", stage, name, base, ErrDuplicate)
	}

	m.log.Info("shader loaded",
		zap.String("name", name),
		zap.Stringer("stage", stage),
		zap.String("path", path),
		zap.String("digest", fmt.Sprintf("%016x", entry.Digest)),
	)
	return nil
}

// ScanDirectory feeds every regular file in dir through AddFile. Failures
// of individual files are logged and counted, never returned; the error is
// non-nil only when dir itself cannot be read.
func (m *Manager) ScanDirectory(dir string) (ScanSummary, error) {
	var sum ScanSummary

	entries, err := os.ReadDir(dir)
	if err != nil {
		return sum, fmt.Errorf("reading shader directory %s: %w", dir, err)
	}

	m.log.Debug("scanning shader directory",
		zap.String("dir", dir),
		zap.Int("entries", len(entries)),
	)

	for _, de := range entries {
		path := filepath.Join(dir, de.Name())

		if !isRegular(path, de) {
			m.log.Warn("skipping non-regular entry", zap.String("path", path))
			sum.Skipped++
			continue
		}

		m.record(&sum, path, m.AddFile(path))
	}

	m.log.Info("shader scan complete",
		zap.String("dir", dir),
		zap.Int("loaded", sum.Loaded),
		zap.Int("duplicates", sum.Duplicates),
		zap.Int("skipped", sum.Skipped),
		zap.Int("failed", sum.Failed),
	)
	return sum, nil
}

// record logs the outcome of AddFile and counts it.
func (m *Manager) record(sum *ScanSummary, path string, err error) {
	var ce *CompileError

	switch {
	case err == nil:
		sum.Loaded++
	case errors.Is(err, ErrDuplicate):
		m.log.Warn("shader already cached, keeping first", zap.String("path", path), zap.Error(err))
		sum.Duplicates++
	case errors.Is(err, ErrNoMatch):
		m.log.Warn("file does not match shader naming convention", zap.String("path", path))
		sum.Skipped++
	case errors.Is(err, ErrEmpty):
		m.log.Warn("shader source is empty", zap.String("path", path))
		sum.Skipped++
	case errors.As(err, &ce):
		m.log.Error("shader compile failed",
			zap.String("path", path),
			zap.String("name", ce.Name),
			zap.Stringer("stage", ce.Stage),
			zap.String("log", ce.Log),
		)
		sum.Failed++
	default:
		m.log.Error("failed to read shader source", zap.String("path", path), zap.Error(err))
		sum.Failed++
	}
}

// isRegular reports whether a directory entry is a regular file, following
// symlinks.
func isRegular(path string, de os.DirEntry) bool {
	if de.Type().IsRegular() {
		return true
	}
	if de.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Close releases every cached shader. The manager is empty afterwards and
// may be reused.
func (m *Manager) Close() {
	n := 0
	for _, c := range m.caches {
		n += c.Len()
		c.Clear()
	}
	m.log.Info("shader manager closed", zap.Int("released", n))
}
