package shader

import (
	"strings"

	"go.uber.org/zap"
)

// BuildProgram links a program from the shaders cached under name for each
// stage in stages. Missing stages are logged and left out; the link is
// still attempted with whatever was found.
//
// On success the caller owns the returned program. On link failure the
// program object is deleted and a *LinkError carries the linker log.
func (m *Manager) BuildProgram(name string, stages StageSet) (Program, error) {
	var attached []Handle
	var found []string

	for _, stage := range stages.Slice() {
		h, ok := m.caches[stage].Get(name)
		if !ok {
			m.log.Warn("shader stage missing for program",
				zap.String("program", name),
				zap.Stringer("stage", stage),
			)
			continue
		}
		attached = append(attached, h)
		found = append(found, stage.Tag())
	}

	p := m.dev.CreateProgram()
	if p == 0 {
		err := &LinkError{Name: name, Log: "could not create program object"}
		m.log.Error("program build failed", zap.Error(err))
		return 0, err
	}

	for _, h := range attached {
		m.dev.AttachShader(p, h)
	}
	m.dev.LinkProgram(p)

	if !m.dev.ProgramLinked(p) {
		err := &LinkError{Name: name, Log: m.dev.ProgramInfoLog(p)}
		m.dev.DeleteProgram(p)
		m.log.Error("program link failed",
			zap.String("program", name),
			zap.String("log", err.Log),
		)
		return 0, err
	}

	// Detached shaders are freed by their cache without touching the program.
	for _, h := range attached {
		m.dev.DetachShader(p, h)
	}

	m.log.Info("program linked",
		zap.String("program", name),
		zap.String("stages", strings.Join(found, ",")),
		zap.Uint32("id", uint32(p)),
	)
	return p, nil
}
