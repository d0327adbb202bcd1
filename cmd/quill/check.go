package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"quill/internal/diag"
	"quill/internal/diagfmt"
	"quill/internal/driver"
)

const noQuillTomlMessage = "no quill.toml found\nplease specify files or directories explicitly, e.g.:\n  quill check path/to/literals.lit"

var checkCmd = &cobra.Command{
	Use:   "check [flags] [path...]",
	Short: "Check literal list files",
	Long: `Check decodes every literal in the given *.lit list files (directories
are walked recursively) and reports errors with exact spans.
Without arguments the [check].paths from quill.toml are used`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = number of CPUs)")
	checkCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	checkCmd.Flags().Bool("cache", true, "reuse cached results for unchanged files")
}

func runCheck(cmd *cobra.Command, args []string) error {
	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	cacheFlag, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	manifest, haveManifest, err := loadProjectManifest(".")
	if err != nil {
		return err
	}

	files, err := collectCheckFiles(args, manifest, haveManifest)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("nothing to check")
	}

	if haveManifest {
		if jobs == 0 && manifest.Config.Check.Jobs > 0 {
			jobs = manifest.Config.Check.Jobs
		}
		if !cmd.Root().PersistentFlags().Changed("max-diagnostics") && manifest.Config.Check.MaxDiagnostics > 0 {
			maxDiagnostics = manifest.Config.Check.MaxDiagnostics
		}
		if !cmd.Flags().Changed("cache") && manifest.Config.Check.Cache != nil {
			cacheFlag = *manifest.Config.Check.Cache
		}
	}

	opts := driver.Options{
		Jobs:           jobs,
		MaxDiagnostics: maxDiagnostics,
	}
	if cacheFlag {
		cache, err := driver.OpenDiskCache("quill")
		if err == nil {
			opts.Cache = cache
		}
		// A missing cache dir degrades to a cold run, not a failure.
	}

	ctx := cmd.Context()
	var results []*driver.FileResult
	if format == "pretty" && !quiet && shouldUseTUI(mode) {
		results, err = runCheckWithUI(ctx, "checking literals", files, opts)
	} else {
		results, err = driver.CheckFiles(ctx, files, opts)
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	return reportCheck(cmd, results, format, maxDiagnostics, quiet)
}

// collectCheckFiles expands command line paths (or the manifest paths when
// none are given) into the list of files to check.
func collectCheckFiles(args []string, manifest *projectManifest, haveManifest bool) ([]string, error) {
	if len(args) == 0 {
		if !haveManifest {
			return nil, fmt.Errorf("%s", noQuillTomlMessage)
		}
		if len(manifest.Config.Check.Paths) == 0 {
			return nil, fmt.Errorf("%s: [check].paths is empty", manifest.Path)
		}
		return resolveCheckTargets(manifest, driver.ListLitFiles)
	}

	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %q: %w", arg, err)
		}
		if info.IsDir() {
			found, err := driver.ListLitFiles(arg)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
			continue
		}
		if !strings.HasSuffix(arg, driver.ListExt) {
			return nil, fmt.Errorf("%s is not a %s file", arg, driver.ListExt)
		}
		files = append(files, arg)
	}
	return files, nil
}

func reportCheck(cmd *cobra.Command, results []*driver.FileResult, format string, maxDiagnostics int, quiet bool) error {
	merged := diag.NewBag(maxDiagnostics)
	literals := 0
	for _, res := range results {
		literals += res.Literals
		merged.Merge(res.Bag)
	}
	merged.Sort()
	merged.Dedup()

	switch format {
	case "pretty":
		if merged.Len() > 0 {
			opts := diagfmt.PrettyOpts{
				Color:       useColor(cmd, os.Stderr),
				ShowLiteral: true,
			}
			diagfmt.Pretty(os.Stderr, merged, opts)
		}
		if !quiet {
			fmt.Fprintln(os.Stdout, diagfmt.Summary(len(results), literals, merged.Len()))
		}
	case "json":
		opts := diagfmt.JSONOpts{Max: maxDiagnostics, IncludeLiteral: true}
		if err := diagfmt.FormatDiagsJSON(os.Stdout, merged, opts); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if merged.HasErrors() {
		return fmt.Errorf("found %d invalid literals", merged.Len())
	}
	return nil
}
