package shader

// Handle identifies a shader object created by a Device. Zero is never a
// valid handle.
type Handle uint32

// Program identifies a linked program object created by a Device.
type Program uint32

// Device is the graphics API boundary used by the manager. Implementations
// are bound to one graphics context and must be called from the thread that
// owns it.
type Device interface {
	// CreateShader allocates a shader object for the stage, or returns 0.
	CreateShader(stage Stage) Handle
	ShaderSource(h Handle, source string)
	CompileShader(h Handle)
	ShaderCompiled(h Handle) bool
	ShaderInfoLog(h Handle) string
	DeleteShader(h Handle)

	// CreateProgram allocates a program object, or returns 0.
	CreateProgram() Program
	AttachShader(p Program, h Handle)
	DetachShader(p Program, h Handle)
	LinkProgram(p Program)
	ProgramLinked(p Program) bool
	ProgramInfoLog(p Program) string
	DeleteProgram(p Program)
}
