package engine

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/refmark/refmark/internal/bib"
	"github.com/refmark/refmark/internal/style"
)

// Session renders citations and a bibliography under one style with one
// shared citation-number sequence. The style is read-only for the
// session lifetime; the numberer is the only mutable state.
//
// Independent documents get independent sessions; the counter is
// injected per session, never process-wide.
type Session struct {
	style   *style.Style
	terms   bib.Terms
	numbers *numberer
	token   string // session identity for log correlation
	logger  *slog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the logger used for render-time design warnings.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession creates a rendering session for a validated style.
// Passing a style that did not pass compiler.Validate is a programmer
// error; the engine performs no vocabulary checks of its own.
func NewSession(st *style.Style, opts ...SessionOption) *Session {
	s := &Session{
		style:   st,
		terms:   st.LocaleTerms(),
		numbers: newNumberer(),
		token:   uuid.Must(uuid.NewV7()).String(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Token returns the session identity used in log lines.
func (s *Session) Token() string {
	return s.token
}

// NumberOf returns the citation-number assigned to an entry ID, or
// false if the entry has not been cited in this session.
func (s *Session) NumberOf(id string) (int, bool) {
	return s.numbers.numberOf(id)
}

// Cited returns the cited entries in citation-number order.
func (s *Session) Cited() []bib.Entry {
	return s.numbers.citedEntries()
}
