package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRegistry = `#define GL_MAJOR_VERSION 0x821B
#define GL_MINOR_VERSION 0x821C
#define GL_COLOR_BUFFER_BIT 0x00004000
GLAPI void GLAPIENTRY glClear (GLbitfield mask);
GLAPI void GLAPIENTRY glGetIntegerv (GLenum pname, GLint *data);
`

func runApp(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	app := newApp()
	var out, errOut bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &errOut
	err = app.Run(append([]string{"glgen"}, args...))
	return out.String(), errOut.String(), err
}

func setupFiles(t *testing.T, source string) (registryPath, inputPath, outputPath string) {
	t.Helper()
	dir := t.TempDir()
	registryPath = filepath.Join(dir, "glcorearb.h")
	require.NoError(t, os.WriteFile(registryPath, []byte(testRegistry), 0o644))
	inputPath = filepath.Join(dir, "main.c")
	require.NoError(t, os.WriteFile(inputPath, []byte(source), 0o644))
	outputPath = filepath.Join(dir, "opengl.generated.h")
	return
}

func TestApp_GeneratesHeader(t *testing.T) {
	registryPath, inputPath, outputPath := setupFiles(t, "glClear(GL_COLOR_BUFFER_BIT);\n")

	stdout, stderr, err := runApp(t,
		"--config", filepath.Join(t.TempDir(), "none.kdl"),
		"--registry", registryPath,
		"--output", outputPath,
		inputPath,
	)
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "Completed!")

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "PFNGLCLEARPROC")
}

func TestApp_NoBoilerplateFlag(t *testing.T) {
	registryPath, inputPath, outputPath := setupFiles(t, "glClear(0);\n")

	_, _, err := runApp(t,
		"--config", filepath.Join(t.TempDir(), "none.kdl"),
		"--registry", registryPath,
		"--output", outputPath,
		"--no-boilerplate",
		inputPath,
	)
	require.NoError(t, err)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "OpenGLInit")
}

func TestApp_MissingRequiredArgumentsShowsUsage(t *testing.T) {
	stdout, _, err := runApp(t, "--config", filepath.Join(t.TempDir(), "none.kdl"))
	require.Error(t, err)
	assert.Contains(t, stdout, "USAGE")
}

func TestApp_ConfigFileSuppliesSettings(t *testing.T) {
	registryPath, inputPath, outputPath := setupFiles(t, "glClear(0);\n")

	configPath := filepath.Join(filepath.Dir(inputPath), ".glgen.kdl")
	configBody := `registry "` + filepath.ToSlash(registryPath) + `"
output "` + filepath.ToSlash(outputPath) + `"
inputs {
    include "` + filepath.ToSlash(inputPath) + `"
}
silent true
`
	require.NoError(t, os.WriteFile(configPath, []byte(configBody), 0o644))

	stdout, _, err := runApp(t, "--config", configPath)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	_, err = os.Stat(outputPath)
	assert.NoError(t, err)
}
