package bib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTerms_PageAgreement(t *testing.T) {
	terms := DefaultTerms()
	assert.Equal(t, "p.", terms.Lookup(TermPage, false))
	assert.Equal(t, "pp.", terms.Lookup(TermPage, true))
}

func TestTerms_SingularFallbackWhenNoPlural(t *testing.T) {
	terms := DefaultTerms()
	// "et al." has no plural form; plural lookup falls back to singular.
	assert.Equal(t, "et al.", terms.Lookup(TermEtAl, true))
}

func TestTerms_UnknownNameIsSoftMiss(t *testing.T) {
	terms := DefaultTerms()
	assert.Equal(t, "", terms.Lookup("circa", false))
}

func TestTerms_Override(t *testing.T) {
	terms := DefaultTerms().Override(Terms{TermNoDate: {Single: "o.J."}})
	assert.Equal(t, "o.J.", terms.Lookup(TermNoDate, false))
	assert.Equal(t, "ed.", terms.Lookup(TermEdition, false), "untouched terms keep defaults")
}
