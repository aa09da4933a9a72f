package engine

import (
	"github.com/refmark/refmark/internal/bib"
	"github.com/refmark/refmark/internal/style"
)

// numericStyle builds the representative numeric style in IR form: the
// same rule surface styles/numeric.cue compiles to. Engine tests build
// it directly so they exercise the interpreter without the compiler.
func numericStyle() *style.Style {
	author := style.Names{
		Variables: []string{bib.VarAuthor},
		Options:   style.NameOptions{InitializeWith: ". "},
		Substitute: []style.Node{
			style.Names{
				Variables: []string{bib.VarEditor},
				Options:   style.NameOptions{InitializeWith: ". "},
				Label:     bib.TermEditor,
			},
			style.Names{
				Variables: []string{bib.VarTranslator},
				Options:   style.NameOptions{InitializeWith: ". "},
			},
		},
	}

	publisherGroup := style.Group{
		Delimiter: ", ",
		Children: []style.Node{
			style.Text{Variable: bib.VarPublisher},
			style.Text{Variable: bib.VarPublisherPlace},
			style.Date{Variable: bib.VarIssued},
		},
	}
	pageGroup := style.Group{
		Delimiter: " ",
		Children: []style.Node{
			style.Label{Term: bib.TermPage, Variable: bib.VarPage},
			style.Text{Variable: bib.VarPage},
		},
	}

	body := style.Conditional{Branches: []style.Branch{
		{
			Kind:  style.PredTypeIn,
			Types: []string{bib.TypeBook, bib.TypeReport, bib.TypeLegalCase, bib.TypeLegislation},
			Children: []style.Node{style.Group{
				Delimiter: ", ",
				Children: []style.Node{
					style.Text{Formatting: style.Formatting{FontStyle: style.FontItalic, TextCase: style.CaseTitle}, Variable: bib.VarTitle},
					style.Number{Variable: bib.VarEdition, Ordinal: true},
					publisherGroup,
					pageGroup,
				},
			}},
		},
		{
			Kind:  style.PredTypeIn,
			Types: []string{bib.TypeChapter, bib.TypePaperConf},
			Children: []style.Node{style.Group{
				Delimiter: ", ",
				Children: []style.Node{
					style.Group{
						Delimiter: " ",
						Children: []style.Node{
							style.Text{Term: bib.TermIn},
							style.Text{Formatting: style.Formatting{FontStyle: style.FontItalic, TextCase: style.CaseTitle}, Variable: bib.VarContainerTitle},
						},
					},
					style.Names{Variables: []string{bib.VarEditor}, Options: style.NameOptions{InitializeWith: ". "}, Label: bib.TermEditor},
					style.Number{Variable: bib.VarEdition, Ordinal: true},
					publisherGroup,
					pageGroup,
				},
			}},
		},
		{
			Kind:  style.PredTypeIn,
			Types: []string{bib.TypePatent},
			Children: []style.Node{style.Group{
				Delimiter: " ",
				Children: []style.Node{
					style.Text{Variable: bib.VarNumber},
					style.Date{Formatting: style.Formatting{Prefix: "(", Suffix: ")"}, Variable: bib.VarIssued, Form: style.DateFormFull},
				},
			}},
		},
		{
			Kind:  style.PredTypeIn,
			Types: []string{bib.TypeThesis},
			Children: []style.Node{style.Group{
				Delimiter: ", ",
				Children: []style.Node{
					style.Text{Formatting: style.Formatting{TextCase: style.CaseTitle}, Variable: bib.VarTitle},
					style.Text{Variable: bib.VarGenre},
					style.Text{Variable: bib.VarPublisher},
					style.Date{Variable: bib.VarIssued},
				},
			}},
		},
		{
			Kind: style.PredElse,
			Children: []style.Node{style.Group{
				Delimiter: " ",
				Children: []style.Node{
					style.Text{Formatting: style.Formatting{TextCase: style.CaseTitle}, Variable: bib.VarContainerTitleShort},
					style.Group{
						Delimiter: ", ",
						Children: []style.Node{
							style.Text{Formatting: style.Formatting{FontStyle: style.FontBold}, Variable: bib.VarVolume},
							style.Text{Variable: bib.VarPageFirst},
						},
					},
					style.Date{Formatting: style.Formatting{Prefix: "(", Suffix: ")"}, Variable: bib.VarIssued},
				},
			}},
		},
	}}

	return &style.Style{
		Name:   "numeric",
		Macros: map[string]style.Node{"author": author},
		Citation: style.Layout{
			Prefix:    " [",
			Suffix:    "]",
			Delimiter: ",",
			Collapse:  true,
			EtAl:      style.EtAl{Min: 3, UseFirst: 1},
		},
		Bibliography: style.Layout{
			Suffix: ".",
			Sort:   style.SortCitationNumber,
			EtAl:   style.EtAl{Min: 2, UseFirst: 1},
			Rules: []style.Node{
				style.Text{Formatting: style.Formatting{Prefix: "[", Suffix: "] "}, Variable: bib.VarCitationNumber},
				style.Group{
					Delimiter: ", ",
					Children:  []style.Node{style.MacroRef{Name: "author"}, body},
				},
			},
		},
	}
}

func entryBook(id string) bib.Entry {
	return bib.Entry{
		ID:   id,
		Type: bib.TypeBook,
		Authors: []bib.Name{
			{Family: "Smith", Given: "Anne"},
		},
		Title:          "on the nature of things",
		Edition:        "2",
		Publisher:      "Aldine",
		PublisherPlace: "Boston",
		Page:           "12",
		Issued:         &bib.Date{Year: 2001},
	}
}
