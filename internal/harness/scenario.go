package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/refmark/refmark/internal/bib"
)

// Scenario describes one fixture document: the style, the entries it
// may cite, and the citation groups in document order.
type Scenario struct {
	// Name identifies the scenario and names its golden file.
	Name string `yaml:"name"`

	// Description states what the scenario validates.
	Description string `yaml:"description"`

	// Style is the path to the CUE style definition, relative to the
	// scenario file.
	Style string `yaml:"style"`

	// Entries is the fixture entry list.
	Entries []bib.Entry `yaml:"entries"`

	// Citations lists the in-text citation groups in document order;
	// each group is a list of entry IDs.
	Citations [][]string `yaml:"citations"`

	// ExpectCitations holds the expected rendered string per group,
	// aligned with Citations. Optional; empty means unchecked.
	ExpectCitations []string `yaml:"expect_citations,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file. The style path is
// resolved relative to the scenario file's directory. Returns an error
// if the file is malformed, contains unknown fields (typos), or is
// missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "citation:" vs "citations:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if !filepath.IsAbs(scenario.Style) && scenario.Style != "" {
		scenario.Style = filepath.Join(filepath.Dir(path), scenario.Style)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and that
// every cited ID resolves to a fixture entry.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Style == "" {
		return fmt.Errorf("style is required")
	}
	if len(s.Entries) == 0 {
		return fmt.Errorf("entries list is required and must be non-empty")
	}
	if len(s.Citations) == 0 {
		return fmt.Errorf("citations list is required and must be non-empty")
	}
	if len(s.ExpectCitations) > 0 && len(s.ExpectCitations) != len(s.Citations) {
		return fmt.Errorf("expect_citations must align with citations: got %d expectations for %d groups",
			len(s.ExpectCitations), len(s.Citations))
	}

	byID := make(map[string]bool, len(s.Entries))
	for i, e := range s.Entries {
		if e.ID == "" {
			return fmt.Errorf("entries[%d]: id is required", i)
		}
		if e.Type == "" {
			return fmt.Errorf("entry %q: type is required", e.ID)
		}
		byID[e.ID] = true
	}
	for i, group := range s.Citations {
		if len(group) == 0 {
			return fmt.Errorf("citations[%d]: group must not be empty", i)
		}
		for _, id := range group {
			if !byID[id] {
				return fmt.Errorf("citations[%d]: unknown entry id %q", i, id)
			}
		}
	}
	return nil
}
