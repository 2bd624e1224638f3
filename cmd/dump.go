package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/spvc-rs/optgen/lexer"
	"github.com/spvc-rs/optgen/parser"
)

func init() {
	rootCmd.AddCommand(dumpCmd)
}

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Dump lexed tokens and parsed options",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return ErrMissingFile
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		sc := bufio.NewScanner(f)
		n := 0
		for sc.Scan() {
			n++
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}

			tokens, err := lexer.Tokenize(line)
			if err != nil {
				return parser.WrapLine(n, line, err)
			}

			PrintTokens(tokens)

			opt, err := parser.ParseTokens(line, tokens)
			if err != nil {
				return parser.WrapLine(n, line, err)
			}

			repr.Println(opt)
			fmt.Println()
		}

		return sc.Err()
	},
}

func PrintTokens(tokens []lexer.Token) {
	for _, t := range tokens {
		fmt.Println(t.StringAlign())
	}
}
