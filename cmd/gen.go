package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(genCmd)
}

var genCmd = &cobra.Command{
	Use:   "gen [file]",
	Short: "Generate option fields",
	Long: `Generate a Rust field declaration for every well-formed option
token in the file, in input order, on stdout.

Malformed lines are reported on stderr with their line number and skipped;
pass --strict to abort on the first one instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return generate(args)
	},
}
