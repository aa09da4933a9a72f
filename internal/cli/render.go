package cli

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/refmark/refmark/internal/bib"
	"github.com/refmark/refmark/internal/compiler"
	"github.com/refmark/refmark/internal/engine"
	"github.com/refmark/refmark/internal/store"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Style   string
	Entries string
	Cites   []string
}

// RenderResult holds the rendered output of one render invocation.
type RenderResult struct {
	Session      string   `json:"session"`
	Citations    []string `json:"citations"`
	Bibliography []string `json:"bibliography"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render citations and a bibliography",
		Long: `Render a document's citations and bibliography with a style.

Entries come from a YAML file (a list of entries) or a SQLite database
created with "refmark bib put". Each --cite flag is one in-text
citation group: a comma-separated list of entry IDs, in document order.

Example:
  refmark render --style styles/numeric.cue --entries refs.yaml --cite smith2001,doe1999 --cite smith2001
  refmark render --style styles/numeric.cue --entries refs.db --cite us123456`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Style, "style", "", "path to CUE style definition (required)")
	cmd.Flags().StringVar(&opts.Entries, "entries", "", "path to entries, YAML file or SQLite database (required)")
	cmd.Flags().StringArrayVar(&opts.Cites, "cite", nil, "citation group as comma-separated entry IDs (repeatable, required)")
	_ = cmd.MarkFlagRequired("style")
	_ = cmd.MarkFlagRequired("entries")
	_ = cmd.MarkFlagRequired("cite")

	return cmd
}

func runRender(opts *RenderOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	st, err := compiler.LoadFile(opts.Style)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load style", err)
	}
	formatter.VerboseLog("style %q loaded from %s", st.Name, opts.Style)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	entries, err := loadEntries(ctx, opts.Entries)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load entries", err)
	}
	formatter.VerboseLog("loaded %d entries from %s", len(entries), opts.Entries)

	byID := make(map[string]bib.Entry, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}

	logLevel := slog.LevelWarn
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: logLevel}))

	session := engine.NewSession(st, engine.WithLogger(logger))
	result := RenderResult{Session: session.Token()}
	for i, cite := range opts.Cites {
		group, err := citationGroup(cite, byID)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("invalid citation group %d", i+1), err)
		}
		result.Citations = append(result.Citations, session.RenderCitation(group).String())
	}
	for _, line := range session.RenderBibliography() {
		result.Bibliography = append(result.Bibliography, line.String())
	}

	return outputRenderResult(formatter, result)
}

// citationGroup resolves one comma-separated --cite value against the
// loaded entries.
func citationGroup(cite string, byID map[string]bib.Entry) ([]bib.Entry, error) {
	var group []bib.Entry
	for _, id := range strings.Split(cite, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		e, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("unknown entry id %q", id)
		}
		group = append(group, e)
	}
	if len(group) == 0 {
		return nil, fmt.Errorf("citation group is empty")
	}
	return group, nil
}

// loadEntries reads the entry list from a YAML file or, for .db paths,
// a SQLite database.
func loadEntries(ctx context.Context, path string) ([]bib.Entry, error) {
	if filepath.Ext(path) == ".db" {
		st, err := store.Open(path)
		if err != nil {
			return nil, err
		}
		defer st.Close()
		return st.ListEntries(ctx)
	}
	return loadEntriesYAML(path)
}

func outputRenderResult(formatter *OutputFormatter, result RenderResult) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	for _, c := range result.Citations {
		fmt.Fprintln(formatter.Writer, c)
	}
	fmt.Fprintln(formatter.Writer)
	for _, line := range result.Bibliography {
		fmt.Fprintln(formatter.Writer, line)
	}
	return nil
}

// loadEntriesYAML decodes a strict YAML entry list.
func loadEntriesYAML(path string) ([]bib.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []bib.Entry
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	for i, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("entries[%d]: id is required", i)
		}
	}
	return entries, nil
}
