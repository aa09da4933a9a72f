package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStyle(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "style.cue")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestLoadFile_BundledNumericStyle(t *testing.T) {
	s, err := LoadFile(filepath.Join("..", "..", "styles", "numeric.cue"))
	require.NoError(t, err)
	assert.Equal(t, "numeric", s.Name)
	assert.True(t, s.Citation.Collapse)
	assert.Contains(t, s.Macros, "author")
}

func TestLoadFile_RejectsUndefinedMacro(t *testing.T) {
	path := writeStyle(t, `
style: {
	name: "broken"
	citation: {}
	bibliography: {layout: [{macro: "ghost"}]}
}
`)
	_, err := LoadFile(path)
	require.Error(t, err)
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	require.Len(t, ce.Errors, 1)
	assert.Equal(t, ErrUndefinedMacro, ce.Errors[0].Code)
}

func TestLoadFile_RejectsMacroCycle(t *testing.T) {
	path := writeStyle(t, `
style: {
	name: "cyclic"
	macros: {
		a: [{macro: "b"}]
		b: [{macro: "a"}]
	}
	citation: {}
	bibliography: {layout: [{macro: "a"}]}
}
`)
	_, err := LoadFile(path)
	require.Error(t, err)
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ErrMacroCycle, ce.Errors[0].Code)
}

func TestLoadFile_RejectsUnknownVocabulary(t *testing.T) {
	path := writeStyle(t, `
style: {
	name: "vocab"
	citation: {}
	bibliography: {layout: [{variable: "isbn"}]}
}
`)
	_, err := LoadFile(path)
	require.Error(t, err)
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ErrUnknownVariable, ce.Errors[0].Code)
}

func TestLoadFile_MissingTopLevelStyle(t *testing.T) {
	path := writeStyle(t, `other: {}`)
	_, err := LoadFile(path)
	require.Error(t, err)
	var ce *CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "style", ce.Field)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.cue"))
	assert.Error(t, err)
}
