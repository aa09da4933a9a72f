package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/refmark/refmark/internal/compiler"
)

// ValidationResult holds validation results for one style file.
type ValidationResult struct {
	Valid  bool                       `json:"valid"`
	Errors []compiler.ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <style.cue>",
		Short: "Validate a style file without rendering",
		Long: `Validate a CUE style definition without rendering anything.

Checks CUE syntax, the rule-node schema, macro references (including
cycles), and the variable, term, and entry-type vocabularies. All
errors are reported at once.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, stylePath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	formatter.VerboseLog("validating style %s", stylePath)

	_, err := compiler.LoadFile(stylePath)
	if err == nil {
		return outputValidateSuccess(formatter, stylePath)
	}

	// Style-level validation errors come aggregated; compile errors
	// arrive one at a time.
	var cfgErr *compiler.ConfigError
	if errors.As(err, &cfgErr) {
		return outputValidationErrors(formatter, cfgErr.Errors)
	}
	var compileErr *compiler.CompileError
	if errors.As(err, &compileErr) {
		return outputValidationErrors(formatter, []compiler.ValidationError{{
			Field:   compileErr.Field,
			Message: compileErr.Message,
			Code:    "E001",
		}})
	}

	// Anything else is a command error (unreadable file, CUE parse failure).
	_ = formatter.Error("E001", err.Error(), nil)
	return WrapExitError(ExitCommandError, "failed to load style", err)
}

// outputValidateSuccess outputs successful validation results.
func outputValidateSuccess(formatter *OutputFormatter, stylePath string) error {
	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true})
	}

	fmt.Fprintf(formatter.Writer, "✓ %s is valid\n", stylePath)
	return nil
}

// outputValidationErrors outputs validation errors and maps them to
// exit code 1.
func outputValidationErrors(formatter *OutputFormatter, errs []compiler.ValidationError) error {
	if formatter.Format == "json" {
		response := CLIResponse{
			Status: "error",
			Data:   ValidationResult{Valid: false, Errors: errs},
			Error: &CLIError{
				Code:    errs[0].Code,
				Message: errs[0].Message,
			},
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
	}

	// Text format
	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)
	for _, err := range errs {
		fmt.Fprintf(formatter.Writer, "  %s %s: %s\n", err.Code, err.Field, err.Message)
	}

	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
}
