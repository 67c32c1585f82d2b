// Package gldevice implements shader.Device on top of OpenGL 4.1 core.
//
// All methods must be called on the thread that owns the current GL
// context, after gl.Init has succeeded.
package gldevice

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/shaggy/internal/engine/shader"
)

// Device issues shader and program calls against the current GL context.
type Device struct{}

// New returns a GL-backed device.
func New() *Device {
	return &Device{}
}

var _ shader.Device = (*Device)(nil)

// stageEnum maps a stage to its GL shader type.
func stageEnum(stage shader.Stage) (uint32, bool) {
	switch stage {
	case shader.Vertex:
		return gl.VERTEX_SHADER, true
	case shader.Fragment:
		return gl.FRAGMENT_SHADER, true
	case shader.TessControl:
		return gl.TESS_CONTROL_SHADER, true
	case shader.TessEval:
		return gl.TESS_EVALUATION_SHADER, true
	case shader.Geometry:
		return gl.GEOMETRY_SHADER, true
	}
	return 0, false
}

// CreateShader creates a shader object for stage. It returns 0 for an
// unknown stage or when GL fails to allocate one.
func (d *Device) CreateShader(stage shader.Stage) shader.Handle {
	typ, ok := stageEnum(stage)
	if !ok {
		return 0
	}
	return shader.Handle(gl.CreateShader(typ))
}

// ShaderSource replaces the source of h with source.
func (d *Device) ShaderSource(h shader.Handle, source string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(uint32(h), 1, csource, nil)
	free()
}

// CompileShader compiles h; check the result with ShaderCompiled.
func (d *Device) CompileShader(h shader.Handle) {
	gl.CompileShader(uint32(h))
}

// ShaderCompiled reports GL_COMPILE_STATUS for h.
func (d *Device) ShaderCompiled(h shader.Handle) bool {
	var status int32
	gl.GetShaderiv(uint32(h), gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

// ShaderInfoLog returns the compiler log for h, trimmed to the bytes GL
// wrote. It returns "" when the driver reports an empty log.
func (d *Device) ShaderInfoLog(h shader.Handle) string {
	var logLen int32
	gl.GetShaderiv(uint32(h), gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return ""
	}
	log := make([]byte, logLen)
	var written int32
	gl.GetShaderInfoLog(uint32(h), logLen, &written, &log[0])
	return string(log[:written])
}

// DeleteShader flags h for deletion. GL frees it once no program has it attached.
func (d *Device) DeleteShader(h shader.Handle) {
	gl.DeleteShader(uint32(h))
}

// CreateProgram creates an empty program object, or returns 0 on failure.
func (d *Device) CreateProgram() shader.Program {
	return shader.Program(gl.CreateProgram())
}

// AttachShader attaches h to p.
func (d *Device) AttachShader(p shader.Program, h shader.Handle) {
	gl.AttachShader(uint32(p), uint32(h))
}

// DetachShader detaches h from p.
func (d *Device) DetachShader(p shader.Program, h shader.Handle) {
	gl.DetachShader(uint32(p), uint32(h))
}

// LinkProgram links p; check the result with ProgramLinked.
func (d *Device) LinkProgram(p shader.Program) {
	gl.LinkProgram(uint32(p))
}

// ProgramLinked reports GL_LINK_STATUS for p.
func (d *Device) ProgramLinked(p shader.Program) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

// ProgramInfoLog returns the linker log for p, trimmed to the bytes GL
// wrote. It returns "" when the driver reports an empty log.
func (d *Device) ProgramInfoLog(p shader.Program) string {
	var logLen int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return ""
	}
	log := make([]byte, logLen)
	var written int32
	gl.GetProgramInfoLog(uint32(p), logLen, &written, &log[0])
	return string(log[:written])
}

// DeleteProgram deletes p.
func (d *Device) DeleteProgram(p shader.Program) {
	gl.DeleteProgram(uint32(p))
}

// GetUniform returns the uniform location for name, or -1 when the program
// has no such active uniform.
func GetUniform(p shader.Program, name string) int32 {
	return gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00"))
}
