package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/refmark/refmark/internal/store"
)

// BibOptions holds flags for the bib subcommands.
type BibOptions struct {
	*RootOptions
	Database string
}

// EntrySummary is the list output row for one stored entry.
type EntrySummary struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title,omitempty"`
}

// NewBibCommand creates the bib command group.
func NewBibCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BibOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "bib",
		Short: "Manage a reference database",
		Long:  "Manage a SQLite reference database for use with \"refmark render --entries <path>.db\".",
	}

	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkPersistentFlagRequired("db")

	cmd.AddCommand(newBibPutCommand(opts))
	cmd.AddCommand(newBibListCommand(opts))

	return cmd
}

func newBibPutCommand(opts *BibOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "put <entries.yaml>",
		Short: "Import entries from a YAML file",
		Long: `Import entries from a YAML file into the database.

Existing entries with the same ID are replaced.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBibPut(opts, args[0], cmd)
		},
	}
}

func newBibListCommand(opts *BibOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List stored entries",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBibList(opts, cmd)
		},
	}
}

func runBibPut(opts *BibOptions, entriesPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	entries, err := loadEntriesYAML(entriesPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load entries", err)
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	for _, e := range entries {
		if err := st.PutEntry(ctx, e); err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("failed to store entry %q", e.ID), err)
		}
		formatter.VerboseLog("stored entry %s (%s)", e.ID, e.Type)
	}

	if formatter.Format == "json" {
		return formatter.Success(map[string]int{"stored": len(entries)})
	}
	fmt.Fprintf(formatter.Writer, "stored %d entries\n", len(entries))
	return nil
}

func runBibList(opts *BibOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	entries, err := st.ListEntries(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list entries", err)
	}

	if formatter.Format == "json" {
		rows := make([]EntrySummary, len(entries))
		for i, e := range entries {
			rows[i] = EntrySummary{ID: e.ID, Type: e.Type, Title: e.Title}
		}
		return formatter.Success(rows)
	}

	for _, e := range entries {
		if e.Title != "" {
			fmt.Fprintf(formatter.Writer, "%s\t%s\t%s\n", e.ID, e.Type, e.Title)
		} else {
			fmt.Fprintf(formatter.Writer, "%s\t%s\n", e.ID, e.Type)
		}
	}
	return nil
}
