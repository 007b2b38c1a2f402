package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dendrascience/dupehash/version"
)

// NewRootCmd creates and returns the root cobra command for the dupehash CLI.
// The root command is the duplicate scan itself; utility subcommands hang
// off it.
func NewRootCmd() *cobra.Command {
	var opts scanOptions

	rootCmd := &cobra.Command{
		Use:   "dupehash [flags] PATH...",
		Short: "List files with the same checksum",
		Long: `dupehash hashes every given file in parallel and reports groups of files
sharing the same content digest.

Each PATH may be a file or a directory. Directories contribute their whole
subtree when --recursive is passed and nothing otherwise. With one or more
--match digests, reporting switches from duplicate groups to the files whose
digest is in the given set.

Exit code is 0 when the report is non-empty, 1 when it is empty in quiet
mode or match mode.`,
		Version:      version.GetFullVersion(),
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("jobs") && opts.Jobs < 1 {
				return fmt.Errorf("invalid --jobs value %d: must be a positive integer", opts.Jobs)
			}
			if cmd.Flags().Changed("no-progress") {
				opts.ShowProgress = false
			}
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				text.DisableColors()
			}
			opts.Paths = args
			code, err := runScan(cmd.OutOrStdout(), &opts)
			if err != nil {
				return err
			}
			if code != 0 {
				os.Exit(code)
			}
			return nil
		},
	}

	flags := rootCmd.Flags()
	// Claim the help flag without a shorthand so -h stays free for --hash.
	flags.Bool("help", false, "help for dupehash")
	flags.IntVarP(&opts.Jobs, "jobs", "j", 0, "number of hash workers (default: one per CPU)")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "print nothing; exit 1 if the report would be empty")
	flags.StringVarP(&opts.Format, "format", "f", "txt", "output format: txt, json or csv")
	flags.StringVarP(&opts.Algorithm, "hash", "h", "md5", "hash algorithm; see 'dupehash algorithms'")
	flags.StringArrayVarP(&opts.MatchDigests, "match", "m", nil, "only output files whose hash matches this digest; can be repeated")
	flags.BoolVar(&opts.ShowProgress, "progress", true, "show a progress indicator while hashing")
	flags.Bool("no-progress", false, "disable the progress indicator")
	flags.BoolVarP(&opts.Recursive, "recursive", "r", false, "recurse into provided directories")
	flags.StringVarP(&opts.Glob, "glob", "g", "", "only process files whose name matches the glob; prepend ! to negate")
	flags.BoolVarP(&opts.GlobInsensitive, "glob-case-insensitive", "i", false, "match the glob case-insensitively")

	rootCmd.AddCommand(NewAlgorithmsCmd())
	rootCmd.AddCommand(NewSeedCmd())

	return rootCmd
}
