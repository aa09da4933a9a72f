package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/refmark/refmark/internal/bib"
	"github.com/refmark/refmark/internal/style"
)

func TestOrdinal(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "1st"}, {2, "2nd"}, {3, "3rd"}, {4, "4th"},
		{11, "11th"}, {12, "12th"}, {13, "13th"},
		{21, "21st"}, {22, "22nd"}, {23, "23rd"},
		{101, "101st"}, {111, "111th"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ordinal(tt.n))
	}
}

func TestRenderDate_Forms(t *testing.T) {
	s := NewSession(numericStyle())

	full := &bib.Entry{ID: "x", Type: bib.TypePatent, Issued: &bib.Date{Year: 2019, Month: "May", Day: 3}}
	out := s.renderDate(style.Date{Variable: bib.VarIssued, Form: style.DateFormFull}, renderCtx{entry: full})
	assert.Equal(t, "3 May 2019", out.String())

	yearOnly := &bib.Entry{ID: "y", Type: bib.TypeBook, Issued: &bib.Date{Year: 2019}}
	out = s.renderDate(style.Date{Variable: bib.VarIssued, Form: style.DateFormFull}, renderCtx{entry: yearOnly})
	assert.Equal(t, "2019", out.String(), "full form degrades to the parts present")

	out = s.renderDate(style.Date{Variable: bib.VarIssued}, renderCtx{entry: full})
	assert.Equal(t, "2019", out.String(), "default form renders the year")
}

func TestRenderDate_NoDatePlaceholder(t *testing.T) {
	s := NewSession(numericStyle())
	undated := &bib.Entry{ID: "x", Type: bib.TypeBook}
	out := s.renderDate(style.Date{Variable: bib.VarIssued}, renderCtx{entry: undated})
	assert.Equal(t, "n.d.", out.String())
}

func TestRenderNumber_OrdinalEdition(t *testing.T) {
	s := NewSession(numericStyle())
	entry := &bib.Entry{ID: "x", Type: bib.TypeBook, Edition: "3"}
	out := s.renderNumber(style.Number{Variable: bib.VarEdition, Ordinal: true}, renderCtx{entry: entry})
	assert.Equal(t, "3rd ed.", out.String())
}

func TestRenderNumber_TextualEditionVerbatim(t *testing.T) {
	s := NewSession(numericStyle())
	entry := &bib.Entry{ID: "x", Type: bib.TypeBook, Edition: "revised"}
	out := s.renderNumber(style.Number{Variable: bib.VarEdition, Ordinal: true}, renderCtx{entry: entry})
	assert.Equal(t, "revised", out.String())
}

func TestRenderNumber_AbsentIsSoftMiss(t *testing.T) {
	s := NewSession(numericStyle())
	entry := &bib.Entry{ID: "x", Type: bib.TypeBook}
	out := s.renderNumber(style.Number{Variable: bib.VarEdition, Ordinal: true}, renderCtx{entry: entry})
	assert.True(t, out.IsEmpty())
}

func TestRenderLabel_PluralAgreement(t *testing.T) {
	s := NewSession(numericStyle())

	one := &bib.Entry{ID: "x", Type: bib.TypeBook, Page: "12"}
	out := s.renderLabel(style.Label{Term: bib.TermPage, Variable: bib.VarPage}, renderCtx{entry: one})
	assert.Equal(t, "p.", out.String())

	ranged := &bib.Entry{ID: "y", Type: bib.TypeBook, Page: "12-19"}
	out = s.renderLabel(style.Label{Term: bib.TermPage, Variable: bib.VarPage}, renderCtx{entry: ranged})
	assert.Equal(t, "pp.", out.String())

	missing := &bib.Entry{ID: "z", Type: bib.TypeBook}
	out = s.renderLabel(style.Label{Term: bib.TermPage, Variable: bib.VarPage}, renderCtx{entry: missing})
	assert.True(t, out.IsEmpty())
}

func TestPluralValue(t *testing.T) {
	assert.False(t, pluralValue("12"))
	assert.True(t, pluralValue("12-19"))
	assert.True(t, pluralValue("12–19"))
	assert.True(t, pluralValue("3, 7"))
	assert.True(t, pluralValue("3 and 7"))
}

func TestTitleCase_PreservesAcronyms(t *testing.T) {
	assert.Equal(t, "The DNA Of Style", titleCase("the DNA of style"))
	assert.Equal(t, "On Foo", titleCase("On Foo"))
}

func TestFinish_AffixesOnlyOnOutput(t *testing.T) {
	f := style.Formatting{Prefix: "(", Suffix: ")"}
	assert.Equal(t, "(x)", finish(bib.Plain("x"), f).String())
	assert.True(t, finish(bib.RenderedText{}, f).IsEmpty())
}
