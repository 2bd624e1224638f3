package parser

import (
	"strings"

	"github.com/spvc-rs/optgen/lexer"
)

// Option is one well-formed compiler option token, decomposed into its
// category segment (without the trailing underscore) and suffix segment.
type Option struct {
	Full     string
	Category string
	Suffix   string
}

// FieldName is the identifier used in the generated declaration, the
// suffix segment lower-cased.
func (o *Option) FieldName() string {
	return strings.ToLower(o.Suffix)
}

// Parse matches one input line against the option pattern. The line is
// trimmed of surrounding whitespace first; anything short of a full match
// is an error.
func Parse(line string) (*Option, error) {
	full := strings.TrimSpace(line)

	tokens, err := lexer.Tokenize(full)
	if err != nil {
		return nil, err
	}

	return ParseTokens(full, tokens)
}

// ParseLine is Parse with the input line number attached to any failure.
func ParseLine(line string, n int) (*Option, error) {
	opt, err := Parse(line)
	if err != nil {
		return nil, WrapLine(n, strings.TrimSpace(line), err)
	}

	return opt, nil
}

func ParseTokens(full string, tokens []lexer.Token) (*Option, error) {
	return (&Parser{tokens: tokens}).parse(full)
}

type Parser struct {
	tokens []lexer.Token
	c      int
}

func (p *Parser) parse(full string) (*Option, error) {
	if _, err := p.expect(lexer.NewMatcher("Prefix")); err != nil {
		return nil, err
	}

	category, err := p.expect(lexer.NewMatcher("Category"))
	if err != nil {
		return nil, err
	}

	suffix, err := p.expect(lexer.NewMatcher("Suffix"))
	if err != nil {
		return nil, err
	}

	if t := p.peekn(0); !lexer.NewMatcher("EOF").Is(t) {
		return nil, p.ut(t)
	}

	return &Option{
		Full:     full,
		Category: strings.TrimSuffix(category.Value, "_"),
		Suffix:   suffix.Value,
	}, nil
}
