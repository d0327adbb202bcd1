package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"quill/internal/diag"
	"quill/internal/diagfmt"
	"quill/internal/driver"
	"quill/lit"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] [literal]",
	Short: "Decode a single literal",
	Long: `Inspect decodes one literal given as an argument (or read from stdin)
and reports its kind, raw form and decoded value`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	inspectCmd.Flags().BoolP("verbose", "v", false, "list the decoded scalar values of a string literal")
}

func runInspect(cmd *cobra.Command, args []string) error {
	input, err := inspectInput(cmd, args)
	if err != nil {
		return err
	}

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}

	l, perr := lit.Parse(input)
	if perr != nil {
		var litErr *lit.Error
		if !errors.As(perr, &litErr) {
			return perr
		}
		bag := diag.NewBag(1)
		bag.Add(diag.FromLitError("<input>", 1, input, litErr))
		opts := diagfmt.PrettyOpts{
			Color:       useColor(cmd, os.Stderr),
			PathMode:    diagfmt.PathModeBasename,
			ShowLiteral: true,
		}
		diagfmt.Pretty(os.Stderr, bag, opts)
		return fmt.Errorf("invalid literal")
	}

	rec := driver.RecordOf("", 0, l)
	switch format {
	case "pretty":
		if err := diagfmt.FormatRecordsPretty(os.Stdout, []driver.Record{rec}); err != nil {
			return err
		}
	case "json":
		if err := diagfmt.FormatRecordsJSON(os.Stdout, []driver.Record{rec}); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if verbose && rec.Kind == "string" {
		diagfmt.FormatScalars(os.Stdout, rec.Value)
	}
	return nil
}

// inspectInput returns the literal text: the sole argument when given
// (`-` means stdin), the first non-blank stdin line otherwise.
func inspectInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		if entry := strings.TrimSpace(line); entry != "" {
			return entry, nil
		}
	}
	return "", fmt.Errorf("no literal given (pass it as an argument or on stdin)")
}
