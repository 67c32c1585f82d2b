package shader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestBuildProgram(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"basic.vert.glsl": vertSrc,
		"basic.frag.glsl": fragSrc,
	})
	dev := newFakeDevice()
	log, logs := newObservedLogger()
	m := New(dev, log, Config{})
	_, err := m.ScanDirectory(dir)
	require.NoError(t, err)

	p, err := m.BuildProgram("basic", NewStageSet(Vertex, Fragment))
	require.NoError(t, err)
	require.NotZero(t, p)

	prog := dev.programs[p]
	require.NotNil(t, prog)
	assert.True(t, prog.linked)
	assert.Empty(t, prog.attached, "shaders are detached after link")

	linked := logs.FilterMessage("program linked").All()
	require.Len(t, linked, 1)
	assert.Equal(t, "vert,frag", linked[0].ContextMap()["stages"])
}

func TestBuildProgramMissingStageLinks(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"basic.frag.glsl": fragSrc})
	dev := newFakeDevice()
	log, logs := newObservedLogger()
	m := New(dev, log, Config{})
	_, err := m.ScanDirectory(dir)
	require.NoError(t, err)

	p, err := m.BuildProgram("basic", NewStageSet(Vertex, Fragment))
	require.NoError(t, err)
	assert.NotZero(t, p)

	warns := logs.FilterMessage("shader stage missing for program").All()
	require.Len(t, warns, 1)
	assert.Equal(t, zapcore.WarnLevel, warns[0].Level)
	assert.Equal(t, "vertex", warns[0].ContextMap()["stage"])
}

func TestBuildProgramMissingStageLinkError(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"basic.frag.glsl": fragSrc})
	dev := newFakeDevice()
	dev.requireVertex = true
	log, logs := newObservedLogger()
	m := New(dev, log, Config{})
	_, err := m.ScanDirectory(dir)
	require.NoError(t, err)

	p, err := m.BuildProgram("basic", NewStageSet(Vertex, Fragment))
	assert.Zero(t, p)

	var le *LinkError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "basic", le.Name)
	assert.Contains(t, le.Log, "no vertex shader")

	assert.Equal(t, 1, logs.FilterMessage("shader stage missing for program").Len())
	assert.Equal(t, 1, logs.FilterMessage("program link failed").FilterLevelExact(zapcore.ErrorLevel).Len())

	// the failed program is gone, the cached fragment shader is not
	assert.Empty(t, dev.programs)
	assert.Equal(t, 1, dev.live())
	_, ok := m.Lookup(Fragment, "basic")
	assert.True(t, ok)
}

func TestBuildProgramUnknownName(t *testing.T) {
	dev := newFakeDevice()
	log, logs := newObservedLogger()
	m := New(dev, log, Config{})

	_, err := m.BuildProgram("ghost", NewStageSet(Vertex, Fragment, Geometry))
	var le *LinkError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 3, logs.FilterMessage("shader stage missing for program").Len())
	assert.Empty(t, dev.programs)
}
