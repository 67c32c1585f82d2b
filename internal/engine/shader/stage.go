package shader

import (
	"fmt"
	"strings"
)

// Stage is the pipeline position a shader source occupies.
type Stage uint8

const (
	Vertex Stage = iota
	Fragment
	TessControl
	TessEval
	Geometry

	// StageCount is the number of supported stages.
	StageCount = int(Geometry) + 1
)

// stageTags are the file name tokens for each stage, indexed by Stage.
var stageTags = [StageCount]string{
	Vertex:      "vert",
	Fragment:    "frag",
	TessControl: "tess-control",
	TessEval:    "tess-eval",
	Geometry:    "geom",
}

var stageNames = [StageCount]string{
	Vertex:      "vertex",
	Fragment:    "fragment",
	TessControl: "tess-control",
	TessEval:    "tess-evaluation",
	Geometry:    "geometry",
}

// Stages lists every stage in attach order.
var Stages = []Stage{Vertex, TessControl, TessEval, Geometry, Fragment}

// Valid reports whether s is one of the known stages.
func (s Stage) Valid() bool {
	return int(s) < StageCount
}

// Tag returns the file name token for the stage ("vert", "frag", ...).
func (s Stage) Tag() string {
	if !s.Valid() {
		return ""
	}
	return stageTags[s]
}

func (s Stage) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Stage(%d)", uint8(s))
	}
	return stageNames[s]
}

// ParseStage maps a file name token to its stage. Matching ignores ASCII
// case but is otherwise exact: every tag is compared on its own.
func ParseStage(tag string) (Stage, bool) {
	for i, t := range stageTags {
		if asciiEqualFold(tag, t) {
			return Stage(i), true
		}
	}
	return 0, false
}

// asciiEqualFold is strings.EqualFold restricted to ASCII letters, so that
// e.g. U+017F does not match 's'.
func asciiEqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if asciiLower(a[i]) != asciiLower(b[i]) {
			return false
		}
	}
	return true
}

func asciiLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// StageSet is a set of stages.
type StageSet uint8

// NewStageSet returns a set holding the given stages.
func NewStageSet(stages ...Stage) StageSet {
	var set StageSet
	for _, s := range stages {
		set = set.With(s)
	}
	return set
}

// With returns a copy of the set with s added.
func (set StageSet) With(s Stage) StageSet {
	if !s.Valid() {
		return set
	}
	return set | 1<<s
}

// Has reports whether s is in the set.
func (set StageSet) Has(s Stage) bool {
	return s.Valid() && set&(1<<s) != 0
}

// Len returns the number of stages in the set.
func (set StageSet) Len() int {
	n := 0
	for _, s := range Stages {
		if set.Has(s) {
			n++
		}
	}
	return n
}

// Slice returns the stages of the set in attach order.
func (set StageSet) Slice() []Stage {
	out := make([]Stage, 0, StageCount)
	for _, s := range Stages {
		if set.Has(s) {
			out = append(out, s)
		}
	}
	return out
}

func (set StageSet) String() string {
	tags := make([]string, 0, StageCount)
	for _, s := range set.Slice() {
		tags = append(tags, s.Tag())
	}
	return "{" + strings.Join(tags, ",") + "}"
}

// ParseStageSet parses a list of stage tags such as ["vert", "frag"].
func ParseStageSet(tags []string) (StageSet, error) {
	var set StageSet
	for _, tag := range tags {
		s, ok := ParseStage(tag)
		if !ok {
			return 0, fmt.Errorf("unknown shader stage %q", tag)
		}
		set = set.With(s)
	}
	return set, nil
}
