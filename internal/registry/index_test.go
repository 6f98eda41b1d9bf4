package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/glgen/internal/types"
)

const sampleRegistry = `#ifndef __glcorearb_h_
#define __glcorearb_h_
typedef unsigned int GLbitfield;
#define GL_MAJOR_VERSION 0x821B
#define GL_MINOR_VERSION 0x821C
#define GL_COLOR_BUFFER_BIT 0x00004000
GLAPI void GLAPIENTRY glClear (GLbitfield mask);
GLAPI void GLAPIENTRY glGetIntegerv (GLenum pname, GLint *data);
GLAPI const GLubyte * GLAPIENTRY glGetString (GLenum name);
`

func buildSample(t *testing.T) *Index {
	t.Helper()
	idx, err := Build([]byte(sampleRegistry))
	require.NoError(t, err)
	return idx
}

func TestBuild_CountsDeclarations(t *testing.T) {
	idx := buildSample(t)
	// 4 macro definitions (the include guard counts) + 3 functions.
	assert.Equal(t, 7, idx.Count())
}

func TestBuild_FunctionEntry(t *testing.T) {
	idx := buildSample(t)

	entry, ok := idx.LookupName("glClear")
	require.True(t, ok)
	assert.Equal(t, KindFunction, entry.Kind)
	assert.Equal(t, "glClear", entry.Name.String())
	assert.Equal(t, "void", entry.ReturnType.String())
	assert.Equal(t, "(GLbitfield mask);", entry.Params.String())
	assert.Equal(t, "GLAPI void GLAPIENTRY glClear (GLbitfield mask);", entry.Line.String())
}

func TestBuild_ConstPointerReturnType(t *testing.T) {
	idx := buildSample(t)

	entry, ok := idx.LookupName("glGetString")
	require.True(t, ok)
	// The const qualifier and the fused pointer marker fold into one
	// return-type span.
	assert.Equal(t, "const GLubyte *", entry.ReturnType.String())
	assert.Equal(t, "(GLenum name);", entry.Params.String())
}

func TestBuild_MacroEntry(t *testing.T) {
	idx := buildSample(t)

	entry, ok := idx.LookupName("GL_MAJOR_VERSION")
	require.True(t, ok)
	assert.Equal(t, KindMacro, entry.Kind)
	assert.Equal(t, "#define GL_MAJOR_VERSION 0x821B", entry.Line.String())
	assert.True(t, entry.ReturnType.IsEmpty())
	assert.True(t, entry.Params.IsEmpty())
}

func TestBuild_FirstOccurrenceWins(t *testing.T) {
	buf := []byte("#define GL_DEPTH_TEST 0x0B71\n#define GL_DEPTH_TEST 0xDEAD\n")
	idx, err := Build(buf)
	require.NoError(t, err)

	assert.Equal(t, 1, idx.Count())
	entry, ok := idx.LookupName("GL_DEPTH_TEST")
	require.True(t, ok)
	assert.Equal(t, "#define GL_DEPTH_TEST 0x0B71", entry.Line.String())
}

func TestLookup_UnknownSymbol(t *testing.T) {
	idx := buildSample(t)
	_, ok := idx.LookupName("glFooBar")
	assert.False(t, ok)
}

func TestLookup_VerifiesTextNotJustHash(t *testing.T) {
	idx := buildSample(t)
	entry, ok := idx.LookupName("glClear")
	require.True(t, ok)

	// A fabricated token with glClear's hash but different text must not
	// resolve: identity is hash plus exact bytes.
	fake := types.Token{
		Span: types.NewSpan([]byte("glSmear"), 0, 7),
		Hash: entry.Hash,
	}
	_, ok = idx.Lookup(fake)
	assert.False(t, ok)
}

func TestLookup_ZeroHashNeverResolves(t *testing.T) {
	idx := buildSample(t)
	_, ok := idx.Lookup(types.Token{})
	assert.False(t, ok)
}

func TestBuild_Names(t *testing.T) {
	idx := buildSample(t)
	assert.Contains(t, idx.Names(), "glClear")
	assert.Contains(t, idx.Names(), "GL_COLOR_BUFFER_BIT")
	assert.Len(t, idx.Names(), idx.Count())
}

func TestBuild_TruncatedDeclarationAtEOF(t *testing.T) {
	for _, buf := range []string{"GLAPI", "GLAPI void", "GLAPI void GLAPIENTRY", "#define"} {
		idx, err := Build([]byte(buf))
		require.NoError(t, err, buf)
		assert.Equal(t, 0, idx.Count(), buf)
	}
}
