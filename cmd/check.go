package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/spvc-rs/optgen/generator"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Check option tokens without generating",
	Long: `Parse every line of the file and report each malformed token with
its line number. Nothing is written to stdout; the exit status is non-zero
if any line was malformed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return ErrMissingFile
		}

		bad, err := generator.New().CheckFile(args[0])
		if err != nil {
			return err
		}

		if bad > 0 {
			return errors.Errorf("%v malformed line(s)", bad)
		}

		return nil
	},
}
