package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/spvc-rs/optgen/generator"
)

// ErrMissingFile is returned when no input file path is given. Its message is
// printed verbatim on stderr.
var ErrMissingFile = errors.New("Missing file argument.")

var (
	level  string
	strict bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&level, "log", "info", "Log level")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Abort on the first malformed line instead of skipping it")
}

var rootCmd = &cobra.Command{
	Use:           "optgen [file]",
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	Short:         "SPIRV-Cross compiler option field generator",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		l, err := log.ParseLevel(level)
		if err != nil {
			l = log.InfoLevel
		}

		log.SetLevel(l)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return generate(args)
	},
}

func generate(args []string) error {
	if len(args) == 0 {
		return ErrMissingFile
	}

	g := generator.New()
	g.Strict = strict

	return g.GenerateFile(args[0])
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if err == ErrMissingFile {
			fmt.Fprintln(os.Stderr, err)
		} else {
			log.Error(err)
		}
		os.Exit(1)
	}
}
