package shader

import (
	"sort"
)

// Entry is a compiled shader held by a stage cache.
type Entry struct {
	Name   string
	Stage  Stage
	Handle Handle
	Path   string // source file, empty when inserted directly
	Digest uint64 // xxhash of the source text, 0 when unknown
}

// InsertResult reports the outcome of Cache.Put.
type InsertResult int

const (
	Inserted InsertResult = iota
	AlreadyPresent
)

func (r InsertResult) String() string {
	switch r {
	case Inserted:
		return "inserted"
	case AlreadyPresent:
		return "already present"
	default:
		return "unknown"
	}
}

// Cache maps logical names to compiled shaders for a single stage.
// It owns every handle it stores and releases them through its Device.
type Cache struct {
	stage   Stage
	dev     Device
	entries map[string]Entry
}

// NewCache creates an empty cache for stage.
func NewCache(stage Stage, dev Device) *Cache {
	return &Cache{
		stage:   stage,
		dev:     dev,
		entries: make(map[string]Entry),
	}
}

// Stage returns the stage this cache holds.
func (c *Cache) Stage() Stage {
	return c.stage
}

// Put stores h under name unless the name is already cached. On
// AlreadyPresent the existing entry is kept and h still belongs to the
// caller.
func (c *Cache) Put(name string, h Handle) InsertResult {
	return c.PutEntry(Entry{Name: name, Handle: h})
}

// PutEntry is Put with source metadata attached.
func (c *Cache) PutEntry(e Entry) InsertResult {
	if _, ok := c.entries[e.Name]; ok {
		return AlreadyPresent
	}
	e.Stage = c.stage
	c.entries[e.Name] = e
	return Inserted
}

// Get returns the handle cached under name.
func (c *Cache) Get(name string) (Handle, bool) {
	e, ok := c.entries[name]
	return e.Handle, ok
}

// Entry returns the full entry cached under name.
func (c *Cache) Entry(name string) (Entry, bool) {
	e, ok := c.entries[name]
	return e, ok
}

// Remove deletes the shader cached under name and drops the mapping.
// It reports whether an entry existed.
func (c *Cache) Remove(name string) bool {
	e, ok := c.entries[name]
	if !ok {
		return false
	}
	c.dev.DeleteShader(e.Handle)
	delete(c.entries, name)
	return true
}

// Clear removes every entry, releasing all handles.
func (c *Cache) Clear() {
	for name, e := range c.entries {
		c.dev.DeleteShader(e.Handle)
		delete(c.entries, name)
	}
}

// Len returns the number of cached shaders.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Entries returns the cached entries sorted by name.
func (c *Cache) Entries() []Entry {
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
