package harness

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// RunWithGolden executes a scenario, asserts the expected citation
// strings, and compares the rendered bibliography against a golden
// file. The golden file is stored in testdata/golden/{scenario.Name}.golden
// with one bibliography entry per line, no blank lines between entries.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) {
	t.Helper()

	result, err := Run(scenario)
	require.NoError(t, err)

	for i, want := range scenario.ExpectCitations {
		require.Equal(t, want, result.Citations[i], "citation group %d", i)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, []byte(strings.Join(result.Bibliography, "\n")+"\n"))
}
