// Package harness provides fixture-driven conformance testing for
// refmark styles.
//
// A scenario is a YAML file naming a style, a fixture entry list, and
// the citation groups of a document. Running a scenario compiles the
// style, renders every citation group in order through one session, and
// renders the bibliography. Expected citation strings live inline in
// the scenario; the bibliography is compared against a golden file.
//
// # Scenario Format
//
//	name: numeric_basic
//	description: "What this scenario validates"
//	style: ../../../../styles/numeric.cue
//	entries:
//	  - id: smith2001
//	    type: book
//	    author: [{family: Smith, given: Anne}]
//	citations:
//	  - [smith2001]
//	expect_citations:
//	  - " [1]"
//
// Paths are resolved relative to the scenario file's directory.
package harness
