package shader

// Compile creates a shader object for stage, submits source as its whole
// body and compiles it. On failure the shader object is deleted before the
// *CompileError is returned, so the caller only owns handles from successful
// compiles.
func Compile(dev Device, stage Stage, source string) (Handle, error) {
	h := dev.CreateShader(stage)
	if h == 0 {
		return 0, &CompileError{Stage: stage, Log: "could not create shader object"}
	}

	dev.ShaderSource(h, source)
	dev.CompileShader(h)

	if !dev.ShaderCompiled(h) {
		log := dev.ShaderInfoLog(h)
		dev.DeleteShader(h)
		return 0, &CompileError{Stage: stage, Log: log}
	}

	return h, nil
}
