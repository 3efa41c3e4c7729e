// Package cli implements the cobra commands for dsfsplit.
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

// log is shared by all commands. Info goes to stderr so stdout stays
// clean for the info command's output.
var log = logrus.New()

// NewRootCommand builds the root command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "dsfsplit",
		Short: "Bit-perfect DSD audio splitter for DSF files",
		Long: `dsfsplit cuts a continuous DSF recording into per-track files using
the timestamps of a cue sheet. Cuts land at exact sample positions even
when those are not byte-aligned, so the output is bit-identical to the
source with no samples lost or duplicated at track boundaries.`,

		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(os.Stderr)
			log.SetLevel(logrus.InfoLevel)
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newSplitCommand())
	root.AddCommand(newInfoCommand())
	return root
}

// Execute runs the root command, printing any error to stderr and
// exiting nonzero.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
