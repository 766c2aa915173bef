package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cstyle/internal/driver"
	"cstyle/internal/observ"
	"cstyle/internal/options"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path> [path...]",
	Short: "Format C-family source files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var checkCmd = &cobra.Command{
	Use:   "check [flags] <path> [path...]",
	Short: "Check whether files are already formatted, without rewriting them",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = cmd.Flags().Set("check", "true")
		return runFmt(cmd, args)
	},
}

func init() {
	for _, c := range []*cobra.Command{fmtCmd, checkCmd} {
		c.Flags().Bool("check", false, "check if files are properly formatted, without rewriting them")
		c.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
		c.Flags().Bool("backup", false, "write a .orig copy of each changed file before rewriting it")
		c.Flags().String("options", "", "inline option string, e.g. \"--style=allman --pad-oper\"")
		c.Flags().Int("jobs", 0, "parallel worker count (0 = GOMAXPROCS)")
	}
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	check, _ := cmd.Flags().GetBool("check")
	stdout, _ := cmd.Flags().GetBool("stdout")
	backup, _ := cmd.Flags().GetBool("backup")
	optionsText, _ := cmd.Flags().GetString("options")
	jobs, _ := cmd.Flags().GetInt("jobs")

	if stdout && check {
		return fmt.Errorf("fmt: --stdout cannot be used with --check")
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	showTimings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	noCache, _ := cmd.Root().PersistentFlags().GetBool("no-cache")
	uiModeFlag, _ := cmd.Root().PersistentFlags().GetString("ui")
	colorMode, _ := cmd.Root().PersistentFlags().GetString("color")
	lang, _ := cmd.Root().PersistentFlags().GetString("lang")

	mode, err := readUIMode(uiModeFlag)
	if err != nil {
		return err
	}
	configureColor(colorMode)

	base, optsErr := loadProjectBase(args)
	if optsErr != nil {
		return optsErr
	}

	driverOpts := driver.Options{
		OptionsText: optionsText,
		BaseOptions: base,
		Check:       check,
		Stdout:      stdout,
		Backup:      backup,
		Jobs:        jobs,
		Lang:        lang,
	}
	if !noCache {
		if cwd, err := os.Getwd(); err == nil {
			driverOpts.CachePath = filepath.Join(cwd, ".cstyle-cache")
		}
	}
	if showTimings {
		driverOpts.Timer = observ.NewTimer()
	}

	files, err := driver.CollectSourceFiles(args)
	if err != nil {
		return err
	}

	var results []driver.Result
	if shouldUseTUI(mode, len(files)) {
		results, err = runFormatWithUI(cmd.Context(), "cstyle fmt", files, args, driverOpts)
	} else {
		results, err = driver.FormatPaths(cmd.Context(), args, driverOpts)
	}
	if err != nil {
		return err
	}

	if showTimings && driverOpts.Timer != nil {
		fmt.Fprint(os.Stderr, driverOpts.Timer.Summary())
	}

	var hasErrors, hasChanges bool
	if stdout {
		renderFmtStdout(results, &hasErrors)
		if hasErrors {
			return fmt.Errorf("fmt: failed to format some files")
		}
		return nil
	}

	renderFmtText(results, check, quiet, &hasErrors, &hasChanges)
	if hasErrors {
		return fmt.Errorf("fmt: failed to format some files")
	}
	if check && hasChanges {
		return fmt.Errorf("fmt: formatting changes required")
	}
	return nil
}

// loadProjectBase discovers a .cstylerc in the nearest ancestor of
// the first given path and returns the Options it describes, or nil
// if none was found, so the caller falls back to options.Default().
func loadProjectBase(paths []string) (*options.Options, error) {
	start := "."
	if len(paths) > 0 {
		start = paths[0]
		if info, err := os.Stat(start); err == nil && !info.IsDir() {
			start = filepath.Dir(start)
		}
	}
	path, found, err := options.FindFile(start)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return options.LoadFile(path, options.Default())
}

func configureColor(mode string) {
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		// auto: leave fatih/color's own terminal detection in place.
	}
}

func renderFmtStdout(results []driver.Result, hasErrors *bool) {
	for _, res := range results {
		renderDiagnostics(res)
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}
		_, _ = os.Stdout.Write(res.Formatted)
	}
}

// renderDiagnostics prints every localized diagnostic collected while
// formatting res.Path, prefixed with the path the same way res.Err is.
func renderDiagnostics(res driver.Result) {
	for _, d := range res.Diagnostics {
		fmt.Fprintf(os.Stderr, "fmt: %s: %s\n", res.Path, d)
	}
}

func renderFmtText(results []driver.Result, check, quiet bool, hasErrors, hasChanges *bool) {
	for _, res := range results {
		renderDiagnostics(res)
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}

		if check {
			if res.Changed {
				*hasChanges = true
				if !quiet {
					fmt.Fprintln(os.Stdout, res.Path)
				}
			}
			continue
		}

		if res.Changed && !quiet {
			fmt.Fprintf(os.Stdout, "reformatted %s\n", res.Path)
		}
	}
}
