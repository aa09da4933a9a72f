package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/numeric_basic.yaml")
	require.NoError(t, err)

	assert.Equal(t, "numeric_basic", scenario.Name)
	assert.Len(t, scenario.Entries, 6)
	assert.Len(t, scenario.Citations, 4)
	assert.Len(t, scenario.ExpectCitations, 4)

	// Style path resolved relative to the scenario file.
	assert.Equal(t, filepath.Join("..", "..", "styles", "numeric.cue"), scenario.Style)
}

func TestLoadScenarioUnknownField(t *testing.T) {
	path := writeScenario(t, `
name: typo
style: style.cue
entries:
  - {id: a, type: book}
citation:
  - [a]
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenarioMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "no name",
			content: "style: s.cue\nentries: [{id: a, type: book}]\ncitations: [[a]]\n",
			wantErr: "name is required",
		},
		{
			name:    "no style",
			content: "name: x\nentries: [{id: a, type: book}]\ncitations: [[a]]\n",
			wantErr: "style is required",
		},
		{
			name:    "no entries",
			content: "name: x\nstyle: s.cue\ncitations: [[a]]\n",
			wantErr: "entries list is required",
		},
		{
			name:    "no citations",
			content: "name: x\nstyle: s.cue\nentries: [{id: a, type: book}]\n",
			wantErr: "citations list is required",
		},
		{
			name:    "entry without id",
			content: "name: x\nstyle: s.cue\nentries: [{type: book}]\ncitations: [[a]]\n",
			wantErr: "id is required",
		},
		{
			name:    "entry without type",
			content: "name: x\nstyle: s.cue\nentries: [{id: a}]\ncitations: [[a]]\n",
			wantErr: "type is required",
		},
		{
			name:    "empty citation group",
			content: "name: x\nstyle: s.cue\nentries: [{id: a, type: book}]\ncitations: [[]]\n",
			wantErr: "group must not be empty",
		},
		{
			name:    "unknown cited id",
			content: "name: x\nstyle: s.cue\nentries: [{id: a, type: book}]\ncitations: [[b]]\n",
			wantErr: `unknown entry id "b"`,
		},
		{
			name:    "misaligned expectations",
			content: "name: x\nstyle: s.cue\nentries: [{id: a, type: book}]\ncitations: [[a], [a]]\nexpect_citations: [\" [1]\"]\n",
			wantErr: "expect_citations must align with citations",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario("testdata/scenarios/does_not_exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}
