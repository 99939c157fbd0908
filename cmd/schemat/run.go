package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"schemat/internal/config"
	"schemat/internal/diag"
	"schemat/internal/driver"
	"schemat/internal/format"
	"schemat/internal/parser"
	"schemat/internal/source"
	"schemat/internal/ui"
)

type runFlags struct {
	check   bool
	stdout  bool
	width   int
	ignore  []string
	jobs    int
	verbose bool
	uiMode  string
	cache   bool
}

func readRunFlags(cmd *cobra.Command) (runFlags, error) {
	var f runFlags
	var err error
	if f.check, err = cmd.Flags().GetBool("check"); err != nil {
		return f, err
	}
	if f.stdout, err = cmd.Flags().GetBool("stdout"); err != nil {
		return f, err
	}
	if f.width, err = cmd.Flags().GetInt("width"); err != nil {
		return f, err
	}
	if f.ignore, err = cmd.Flags().GetStringArray("ignore"); err != nil {
		return f, err
	}
	if f.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return f, err
	}
	if f.verbose, err = cmd.Flags().GetBool("verbose"); err != nil {
		return f, err
	}
	if f.uiMode, err = cmd.Flags().GetString("ui"); err != nil {
		return f, err
	}
	if f.cache, err = cmd.Flags().GetBool("cache"); err != nil {
		return f, err
	}
	return f, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	flags, err := readRunFlags(cmd)
	if err != nil {
		return err
	}

	colorValue, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	colorMode, err := ui.ReadColorMode(colorValue)
	if err != nil {
		return err
	}
	colorMode.Apply(isTerminal(os.Stdout))

	if flags.check && flags.stdout {
		return errors.New("--stdout cannot be used with --check")
	}

	cfg, _, err := config.Discover(".")
	if err != nil {
		return err
	}
	width := flags.width
	if width <= 0 {
		width = cfg.Format.MaxWidth
	}

	if len(args) == 0 {
		if flags.check {
			return errors.New("--check requires file paths")
		}
		return formatStdin(width)
	}

	opts := driver.Options{
		Check:      flags.check,
		Stdout:     flags.stdout,
		MaxWidth:   width,
		Extensions: cfg.Files.Extensions,
		Ignore:     append(append([]string(nil), cfg.Files.Ignore...), flags.ignore...),
		Jobs:       flags.jobs,
	}
	if flags.cache && !flags.stdout {
		// A broken cache only costs the speedup, never the run.
		if cache, err := driver.OpenDiskCache("schemat"); err == nil {
			opts.Cache = cache
		}
	}

	var results []driver.Result
	if useProgressUI(flags) {
		results, err = runWithProgress(cmd.Context(), args, opts)
	} else {
		results, err = driver.FormatPaths(cmd.Context(), args, opts)
	}
	if err != nil {
		return err
	}
	return report(results, flags)
}

func formatStdin(width int) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return err
	}

	fileSet := source.NewFileSet()
	sf := fileSet.Get(fileSet.AddVirtual("<stdin>", data))
	bag := diag.NewBag(256)
	out, err := format.File(sf, format.Options{
		MaxWidth: width,
		Reporter: &diag.BagReporter{Bag: bag},
	})
	for _, d := range bag.Items() {
		fmt.Fprintln(os.Stderr, diag.Render(d, fileSet))
	}
	if err != nil {
		var perr *parser.Error
		if errors.As(err, &perr) {
			return fmt.Errorf("<stdin>: %s", perr.Render(fileSet))
		}
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

func report(results []driver.Result, flags runFlags) error {
	var failed, changed int
	for _, res := range results {
		for _, warning := range res.Warnings {
			fmt.Fprintln(os.Stderr, warning)
		}
		switch {
		case res.Err != nil:
			failed++
			fmt.Fprintln(os.Stderr, ui.StatusLine(res, flags.check))
		case flags.stdout:
			_, _ = os.Stdout.Write(res.Formatted)
		case res.Changed:
			changed++
			fmt.Println(ui.StatusLine(res, flags.check))
		case flags.verbose:
			fmt.Println(ui.StatusLine(res, flags.check))
		}
	}

	if !flags.stdout && (flags.verbose || failed > 0 || changed > 0) {
		fmt.Println(ui.Summary(results, flags.check))
	}
	if failed > 0 {
		return fmt.Errorf("failed to format %d file(s)", failed)
	}
	if flags.check && changed > 0 {
		return fmt.Errorf("%d file(s) need formatting", changed)
	}
	return nil
}
