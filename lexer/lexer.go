package lexer

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/alecthomas/participle/v2/lexer/stateful"
)

// Prefix marks a token as a compiler option declaration.
const Prefix = "SPVC_COMPILER_OPTION_"

var _def *stateful.Definition

func init() {
	// A token is Prefix, then an uppercase category run ending at the first
	// underscore, then a suffix taking everything after it. Each rule only
	// matches in its own state, so leftover input fails the lex.
	_def = stateful.Must(stateful.Rules{
		"Root": {
			{Name: `Prefix`, Pattern: Prefix, Action: stateful.Push("Category")},
		},
		"Category": {
			{Name: `Category`, Pattern: `[A-Z]+_`, Action: stateful.Push("Suffix")},
		},
		"Suffix": {
			{Name: `Suffix`, Pattern: `[0-9A-Z_]+`, Action: nil},
		},
	})
}

func Tokenize(s string) ([]Token, error) {
	lex, err := Def().Lex("", strings.NewReader(s))
	if err != nil {
		return nil, err
	}

	toks, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, err
	}

	mytoks := make([]Token, len(toks))
	for i, t := range toks {
		mytoks[i] = Token(t)
	}

	return mytoks, nil
}

func Def() *stateful.Definition {
	return _def
}

func Symbols() map[string]rune {
	return Def().Symbols()
}

func Symbol(name string) rune {
	t := Symbols()[name]
	if t == 0 {
		panic("unknown symbol: " + name)
	}
	return t
}

var typeToName map[rune]string

func init() {
	typeToName = map[rune]string{}
	for s, k := range Symbols() {
		typeToName[k] = s
	}
}

func SymbolName(t rune) string {
	return typeToName[t]
}
