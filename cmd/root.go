package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"lsaudio/services"
	"lsaudio/types"
)

var (
	formatFlag    string
	sortFlags     []string
	reverseFlag   bool
	recursiveFlag bool
	progressFlag  bool
	verboseFlag   bool

	rootCmd = &cobra.Command{
		Use:   "lsaudio [flags] [FILE...]",
		Short: "List audio files with their embedded metadata",
		Long: `lsaudio works like ls, but only lists audio files carrying metadata
tags, showing title, artist, album, year, track and genre per file.
Various options are provided for sorting. In addition to a human
readable table format, JSON output is also supported.`,
		Args:          cobra.ArbitraryArgs,
		RunE:          runList,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.Flags().StringVarP(&formatFlag, "format", "f", "table", "output format: table or json")
	rootCmd.Flags().StringArrayVarP(&sortFlags, "sort", "s", nil,
		"sort by WORD: file-name, file-size, title, artist, album, year, track or genre (can be set multiple times)")
	rootCmd.Flags().BoolVarP(&reverseFlag, "reverse", "r", false, "reverse order while sorting")
	rootCmd.Flags().BoolVarP(&recursiveFlag, "recursive", "R", false, "list subdirectories recursively")
	rootCmd.Flags().BoolVar(&progressFlag, "progress", false, "show scan progress on stderr")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")

	rootCmd.AddCommand(serveCmd)
}

// Execute runs the root command, printing the first fault and exiting
// non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(capitalizeFirst(err.Error()))
	}
}

func runList(cmd *cobra.Command, args []string) error {
	if verboseFlag {
		log.SetLevel(log.DebugLevel)
	}

	keys, err := types.ParseSortKeys(sortFlags)
	if err != nil {
		return err
	}

	opts := types.ListOptions{
		SortBy:    keys,
		Reverse:   reverseFlag,
		Recursive: recursiveFlag,
	}

	var bar *progressbar.ProgressBar
	if progressFlag {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("scanning"),
			progressbar.OptionSpinnerType(14),
		)
		opts.Progress = func(path string) {
			_ = bar.Add(1)
		}
	}

	lister := services.NewLister(services.NewTagReader(), ".")
	results, err := lister.List(args, opts)
	if bar != nil {
		_ = bar.Clear()
	}
	if err != nil {
		return err
	}

	switch formatFlag {
	case "table":
		fmt.Print(renderResults(results, keys, reverseFlag))
		return nil
	case "json":
		out, err := encodeResults(results, keys, reverseFlag)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	default:
		return fmt.Errorf("unknown format %q", formatFlag)
	}
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
