package compiler

import (
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/refmark/refmark/internal/style"
)

// ConfigError aggregates the validation errors of one style file. A
// style that produces a ConfigError must not be rendered with.
type ConfigError struct {
	Path   string
	Errors []ValidationError
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, ve := range e.Errors {
		msgs[i] = ve.Error()
	}
	return fmt.Sprintf("%s: invalid style:\n%s", e.Path, strings.Join(msgs, "\n"))
}

// LoadFile reads, compiles, and validates a CUE style definition. The
// file must carry the style under the top-level "style" field. Any
// configuration error (parse failure, undefined macro, macro cycle,
// unknown vocabulary) is surfaced here; a nil error means the style is
// safe to render with.
func LoadFile(path string) (*style.Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read style file: %w", err)
	}

	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	styleVal := v.LookupPath(cue.ParsePath("style"))
	if !styleVal.Exists() {
		return nil, &CompileError{Field: "style", Message: "style file requires a top-level style field", Pos: v.Pos()}
	}

	s, err := Compile(styleVal)
	if err != nil {
		return nil, err
	}

	if errs := Validate(s); len(errs) > 0 {
		return nil, &ConfigError{Path: path, Errors: errs}
	}
	return s, nil
}
