package gen

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/glgen/internal/config"
	"github.com/standardbeagle/glgen/internal/display"
)

const testRegistry = `#define GL_MAJOR_VERSION 0x821B
#define GL_MINOR_VERSION 0x821C
#define GL_COLOR_BUFFER_BIT 0x00004000
GLAPI void GLAPIENTRY glClear (GLbitfield mask);
GLAPI void GLAPIENTRY glGetIntegerv (GLenum pname, GLint *data);
`

type runEnv struct {
	cfg      *config.Config
	out      bytes.Buffer
	warnings bytes.Buffer
}

func newRunEnv(t *testing.T, source string) *runEnv {
	t.Helper()
	dir := t.TempDir()

	registryPath := filepath.Join(dir, "glcorearb.h")
	require.NoError(t, os.WriteFile(registryPath, []byte(testRegistry), 0o644))

	inputPath := filepath.Join(dir, "main.c")
	require.NoError(t, os.WriteFile(inputPath, []byte(source), 0o644))

	cfg := config.Default()
	cfg.Registry = []string{registryPath}
	cfg.Inputs = []string{inputPath}
	cfg.Output = filepath.Join(dir, "opengl.generated.h")
	return &runEnv{cfg: cfg}
}

func (e *runEnv) run(t *testing.T) *Summary {
	t.Helper()
	printer := display.NewPrinter(&e.out, &e.warnings, false, false)
	summary, err := New(e.cfg, printer).Run(context.Background())
	require.NoError(t, err)
	return summary
}

func (e *runEnv) output(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(e.cfg.Output)
	require.NoError(t, err)
	return string(data)
}

func TestRun_GeneratesHeader(t *testing.T) {
	env := newRunEnv(t, "glClear(GL_COLOR_BUFFER_BIT);\n")
	summary := env.run(t)

	assert.True(t, summary.Written)
	assert.Equal(t, 2, summary.Functions) // glClear + seeded glGetIntegerv
	assert.Equal(t, 3, summary.Macros)    // GL_COLOR_BUFFER_BIT + two seeds
	assert.Equal(t, 5, summary.RegistryEntries)
	assert.Empty(t, env.warnings.String())
	assert.Contains(t, env.out.String(), "Completed! 2 functions - 3 defines - 5 registry entries")

	out := env.output(t)
	assert.Contains(t, out, "typedef void (APIENTRYP PFNGLCLEARPROC) (GLbitfield mask);")
	assert.Contains(t, out, "#define GL_COLOR_BUFFER_BIT 0x00004000")
	assert.Contains(t, out, "#define GL_MAJOR_VERSION 0x821B")
}

func TestRun_SeedsAppearWithEmptyishInput(t *testing.T) {
	// The input references nothing; the seeds still reach the output.
	env := newRunEnv(t, "int main(void) { return 0; }\n")
	env.run(t)

	out := env.output(t)
	assert.Contains(t, out, "PFNGLGETINTEGERVPROC")
	assert.Contains(t, out, "#define GL_MAJOR_VERSION 0x821B")
	assert.Contains(t, out, "#define GL_MINOR_VERSION 0x821C")
}

func TestRun_ByteIdenticalAcrossRuns(t *testing.T) {
	env := newRunEnv(t, "glClear(GL_COLOR_BUFFER_BIT);\n")
	env.run(t)
	first := env.output(t)

	env.cfg.Force = true
	summary := env.run(t)
	assert.False(t, summary.Written) // identical content, file untouched
	assert.Equal(t, first, env.output(t))
}

func TestRun_SkipsWhenFresh(t *testing.T) {
	env := newRunEnv(t, "glClear(0);\n")
	env.run(t)

	summary := env.run(t)
	assert.True(t, summary.Skipped)
	assert.False(t, summary.Written)
}

func TestRun_RegeneratesWhenInputNewer(t *testing.T) {
	env := newRunEnv(t, "glClear(0);\n")
	env.run(t)

	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(env.cfg.Inputs[0], future, future))

	summary := env.run(t)
	assert.False(t, summary.Skipped)
}

func TestRun_UnresolvedSymbolWarnsAndIsExcluded(t *testing.T) {
	env := newRunEnv(t, "glFooBar(1);\n")
	env.cfg.Suggestions.Enabled = false
	env.run(t)

	assert.Contains(t, env.warnings.String(), "glFooBar")
	assert.NotContains(t, env.output(t), "glFooBar")
}

func TestRun_IgnoredSymbolIsSilent(t *testing.T) {
	env := newRunEnv(t, "glXChooseVisual(dpy, 0, attribs);\n")
	env.cfg.Ignore = []string{"glXChooseVisual"}
	env.run(t)

	assert.Empty(t, env.warnings.String())
	assert.NotContains(t, env.output(t), "glXChooseVisual")
}

func TestRun_DuplicateAcrossRegistriesFirstWins(t *testing.T) {
	env := newRunEnv(t, "glEnable(GL_DEPTH_TEST);\n")
	dir := t.TempDir()

	first := filepath.Join(dir, "first.h")
	require.NoError(t, os.WriteFile(first, []byte(
		"#define GL_DEPTH_TEST 0x0B71\nGLAPI void GLAPIENTRY glEnable (GLenum cap);\nGLAPI void GLAPIENTRY glGetIntegerv (GLenum pname, GLint *data);\n#define GL_MAJOR_VERSION 0x821B\n#define GL_MINOR_VERSION 0x821C\n"), 0o644))

	second := filepath.Join(dir, "second.h")
	require.NoError(t, os.WriteFile(second, []byte("#define GL_DEPTH_TEST 0xBAD\n"), 0o644))

	env.cfg.Registry = []string{first, second}
	env.run(t)

	out := env.output(t)
	assert.Contains(t, out, "#define GL_DEPTH_TEST 0x0B71")
	assert.NotContains(t, out, "0xBAD")
}

func TestRun_MissingRegistryIsFatal(t *testing.T) {
	env := newRunEnv(t, "glClear(0);\n")
	env.cfg.Registry = []string{filepath.Join(t.TempDir(), "missing.h")}

	printer := display.NewPrinter(&env.out, &env.warnings, false, false)
	_, err := New(env.cfg, printer).Run(context.Background())
	require.Error(t, err)

	_, statErr := os.Stat(env.cfg.Output)
	assert.True(t, os.IsNotExist(statErr), "no output on registry failure")
}

func TestRun_UnreadableInputIsSkipped(t *testing.T) {
	env := newRunEnv(t, "glClear(0);\n")
	env.cfg.Inputs = append(env.cfg.Inputs, filepath.Join(t.TempDir(), "gone.c"))
	summary := env.run(t)

	assert.Contains(t, env.warnings.String(), "gone.c")
	assert.True(t, summary.Written)
	assert.Contains(t, env.output(t), "PFNGLCLEARPROC")
}

func TestRun_SilentSuppressesSummary(t *testing.T) {
	env := newRunEnv(t, "glClear(0);\n")
	printer := display.NewPrinter(&env.out, &env.warnings, true, false)
	_, err := New(env.cfg, printer).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, env.out.String())
}

func TestWriteIfChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.h")

	written, err := WriteIfChanged(path, []byte("one"))
	require.NoError(t, err)
	assert.True(t, written)

	written, err = WriteIfChanged(path, []byte("one"))
	require.NoError(t, err)
	assert.False(t, written)

	written, err = WriteIfChanged(path, []byte("two"))
	require.NoError(t, err)
	assert.True(t, written)
}

func TestStale(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.h")
	dep := filepath.Join(dir, "dep.c")
	require.NoError(t, os.WriteFile(dep, []byte("x"), 0o644))

	// Missing output is always stale.
	assert.True(t, Stale(output, []string{dep}))

	require.NoError(t, os.WriteFile(output, []byte("y"), 0o644))
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(dep, old, old))
	assert.False(t, Stale(output, []string{dep}))

	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(dep, future, future))
	assert.True(t, Stale(output, []string{dep}))

	// Missing deps are ignored here; reads report them properly later.
	assert.False(t, Stale(output, []string{filepath.Join(dir, "gone.c"), dep}))
}

func TestExpandInputs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	a := filepath.Join(dir, "src", "a.c")
	b := filepath.Join(dir, "src", "b.c")
	skip := filepath.Join(dir, "src", "skip.c")
	for _, p := range []string{a, b, skip} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}

	paths, err := ExpandInputs(
		[]string{filepath.Join(dir, "src", "*.c"), a},
		[]string{"**/skip.c"},
	)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{a, b}, paths)
	// Literal duplicate of an already-globbed file is dropped.
	assert.Len(t, paths, 2)
}

func TestExpandInputs_LiteralMissingFilePassesThrough(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.c")
	paths, err := ExpandInputs([]string{missing}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{missing}, paths)
}
