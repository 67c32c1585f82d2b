package shader

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// badSource marks a source the fake device refuses to compile.
const badSource = "#error"

type fakeShader struct {
	stage    Stage
	source   string
	compiled bool
}

type fakeProgram struct {
	attached map[Handle]bool
	linked   bool
}

// fakeDevice is an in-memory Device. Sources containing badSource fail to
// compile; programs fail to link when requireVertex is set and no vertex
// shader is attached, or when failLink is set.
type fakeDevice struct {
	next          uint32
	shaders       map[Handle]*fakeShader
	programs      map[Program]*fakeProgram
	deleted       []Handle
	failLink      bool
	requireVertex bool
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		shaders:  make(map[Handle]*fakeShader),
		programs: make(map[Program]*fakeProgram),
	}
}

func (d *fakeDevice) CreateShader(stage Stage) Handle {
	d.next++
	h := Handle(d.next)
	d.shaders[h] = &fakeShader{stage: stage}
	return h
}

func (d *fakeDevice) ShaderSource(h Handle, source string) {
	d.shaders[h].source = source
}

func (d *fakeDevice) CompileShader(h Handle) {
	s := d.shaders[h]
	s.compiled = !strings.Contains(s.source, badSource)
}

func (d *fakeDevice) ShaderCompiled(h Handle) bool {
	return d.shaders[h].compiled
}

func (d *fakeDevice) ShaderInfoLog(h Handle) string {
	if d.shaders[h].compiled {
		return ""
	}
	return "0:1(1): error: syntax error"
}

func (d *fakeDevice) DeleteShader(h Handle) {
	delete(d.shaders, h)
	d.deleted = append(d.deleted, h)
}

func (d *fakeDevice) CreateProgram() Program {
	d.next++
	p := Program(d.next)
	d.programs[p] = &fakeProgram{attached: make(map[Handle]bool)}
	return p
}

func (d *fakeDevice) AttachShader(p Program, h Handle) {
	d.programs[p].attached[h] = true
}

func (d *fakeDevice) DetachShader(p Program, h Handle) {
	delete(d.programs[p].attached, h)
}

func (d *fakeDevice) LinkProgram(p Program) {
	prog := d.programs[p]
	prog.linked = !d.failLink && len(prog.attached) > 0
	if d.requireVertex {
		hasVertex := false
		for h := range prog.attached {
			if s, ok := d.shaders[h]; ok && s.stage == Vertex {
				hasVertex = true
			}
		}
		prog.linked = prog.linked && hasVertex
	}
}

func (d *fakeDevice) ProgramLinked(p Program) bool {
	return d.programs[p].linked
}

func (d *fakeDevice) ProgramInfoLog(p Program) string {
	if d.programs[p].linked {
		return ""
	}
	return "error: no vertex shader attached"
}

func (d *fakeDevice) DeleteProgram(p Program) {
	delete(d.programs, p)
}

// live returns the number of shader objects not yet deleted.
func (d *fakeDevice) live() int {
	return len(d.shaders)
}

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}
