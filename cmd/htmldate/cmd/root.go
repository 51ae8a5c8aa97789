// Package cmd provides the CLI commands for htmldate.
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dateforge/htmldate/pkg/dateutil/config"
	"github.com/dateforge/htmldate/pkg/finddate"
)

const dateOnly = "2006-01-02"

var errNoDate = fmt.Errorf("no date found")

var (
	cfgFile      string
	outputFormat string
	sourceURL    string
	original     bool
	noExtensive  bool
	minDate      string
	maxDate      string
	verbose      bool
	logger       *log.Logger
)

// rootCmd represents the base command. With no subcommand, it performs the
// same action as "htmldate find": read an HTML document and print its
// discovered date, matching spec.md §6's single-command CLI contract.
var rootCmd = &cobra.Command{
	Use:   "htmldate [file]",
	Short: "Extract a publication or last-modification date from an HTML document",
	Long: `htmldate reads an HTML document from a file path or stdin and prints
its best-guess publication (or last-modification) date.

Example usage:
  htmldate page.html                  # read from a file
  cat page.html | htmldate            # read from stdin
  htmldate --original page.html       # prefer the publication date
  htmldate --format "%d %B %Y" page.html`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runFind,
}

// Execute adds all child commands to the root command and runs it. Called
// once from main.main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "project config file (TOML)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "", "output date format (strftime-style, default %Y-%m-%d)")
	rootCmd.PersistentFlags().StringVar(&sourceURL, "url", "", "URL the document was fetched from, for the URL probe")
	rootCmd.PersistentFlags().BoolVar(&original, "original", false, "prefer the earliest plausible (publication) date")
	rootCmd.PersistentFlags().BoolVar(&noExtensive, "no-extensive", false, "disable the free-text fallback search (the URL probe still runs)")
	rootCmd.PersistentFlags().StringVar(&minDate, "min-date", "", "reject dates before this (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVar(&maxDate, "max-date", "", "reject dates after this (YYYY-MM-DD)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr when no date is found")

	rootCmd.AddCommand(findCmd)
}

// resolveOptions layers CLI flags over an optional project file over
// package defaults, the precedence chain documented in SPEC_FULL.md §4.8.
func resolveOptions() (*config.Options, error) {
	base, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	override := &config.Options{}
	override.ExtensiveSearch = base.ExtensiveSearch && !noExtensive
	override.OriginalDate = base.OriginalDate || original
	override.OutputFormat = outputFormat
	override.URL = sourceURL

	if minDate != "" {
		t, err := time.Parse(dateOnly, minDate)
		if err != nil {
			return nil, fmt.Errorf("--min-date: %w", err)
		}
		override.MinDate = t
	}
	if maxDate != "" {
		t, err := time.Parse(dateOnly, maxDate)
		if err != nil {
			return nil, fmt.Errorf("--max-date: %w", err)
		}
		override.MaxDate = t
	}

	merged := config.Merge(base, override)
	if errs := config.Validate(merged); len(errs) > 0 {
		return nil, errs[0]
	}
	return merged, nil
}

func readInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func runFind(_ *cobra.Command, args []string) error {
	if verbose {
		logger = log.New(os.Stderr, "htmldate: ", 0)
	}

	opts, err := resolveOptions()
	if err != nil {
		return err
	}

	html, err := readInput(args)
	if err != nil {
		return err
	}

	date, ok := finddate.Find(html,
		config.WithExtensiveSearch(opts.ExtensiveSearch),
		config.WithOriginalDate(opts.OriginalDate),
		config.WithOutputFormat(opts.OutputFormat),
		config.WithURL(opts.URL),
		config.WithDateBounds(opts.MinDate, opts.MaxDate),
	)
	if !ok {
		if logger != nil {
			logger.Println("no date found")
		}
		return errNoDate
	}

	fmt.Println(date)
	return nil
}
