package shader

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultExtension is the source file suffix used when none is configured.
const DefaultExtension = "glsl"

// Classifier matches file names of the form <name>.<stage>.<ext>.
type Classifier struct {
	ext string
	re  *regexp.Regexp
}

// NewClassifier returns a classifier for the given source extension.
// A leading dot on ext is ignored; an empty ext selects DefaultExtension.
func NewClassifier(ext string) *Classifier {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		ext = DefaultExtension
	}
	// The stage token cannot contain a dot, so the name group always ends
	// right before the last <stage>.<ext> pair.
	re := regexp.MustCompile(`^([A-Za-z0-9.]+)\.([A-Za-z-]+)\.` + asciiFoldPattern(ext) + `$`)
	return &Classifier{ext: ext, re: re}
}

// asciiFoldPattern quotes s for a regexp, matching ASCII letters in either
// case and everything else literally. (?i) is avoided because it applies
// Unicode folding.
func asciiFoldPattern(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z':
			b.WriteString("[" + string(r) + string(r-'a'+'A') + "]")
		case 'A' <= r && r <= 'Z':
			b.WriteString("[" + string(r-'A'+'a') + string(r) + "]")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	return b.String()
}

// Extension returns the source suffix without its leading dot.
func (c *Classifier) Extension() string {
	return c.ext
}

// Classify extracts the logical name and stage from a bare file name.
// The whole name must match and the stage token must be one of the known
// tags; anything else yields ErrNoMatch.
func (c *Classifier) Classify(fileName string) (string, Stage, error) {
	m := c.re.FindStringSubmatch(fileName)
	if m == nil {
		return "", 0, fmt.Errorf("%q: %w", fileName, ErrNoMatch)
	}
	stage, ok := ParseStage(m[2])
	if !ok {
		return "", 0, fmt.Errorf("%q: unknown stage %q: %w", fileName, m[2], ErrNoMatch)
	}
	return m[1], stage, nil
}

var defaultClassifier = NewClassifier(DefaultExtension)

// Classify uses the default "glsl" extension.
func Classify(fileName string) (string, Stage, error) {
	return defaultClassifier.Classify(fileName)
}
