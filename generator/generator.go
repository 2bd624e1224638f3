package generator

import (
	"bufio"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/spvc-rs/optgen/parser"
)

var snippet = template.Must(template.New("option").Parse(
	"\n    ///\n    #[option({{.Full}}, false)]\n    pub {{.FieldName}}: bool,\n"))

// Generator turns a stream of option tokens, one per line, into Rust field
// declarations, one block per well-formed line, in input order. Blank lines
// produce nothing.
//
// Malformed lines are reported with their line number and skipped; with
// Strict set the first one aborts the run instead.
type Generator struct {
	Out    io.Writer
	Strict bool
}

func New() *Generator {
	return &Generator{
		Out: os.Stdout,
	}
}

func (g *Generator) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)

	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		opt, err := parser.ParseLine(line, n)
		if err != nil {
			if g.Strict {
				return err
			}

			log.Warnf("skipping %v", err)
			continue
		}

		if err := snippet.Execute(g.Out, opt); err != nil {
			return err
		}
	}

	return sc.Err()
}

func (g *Generator) GenerateFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "cannot read %v", path)
	}
	defer f.Close()

	return g.Run(f)
}

// Check parses every line without generating anything and reports each
// malformed one. It returns how many there were.
func (g *Generator) Check(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)

	n := 0
	bad := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if _, err := parser.ParseLine(line, n); err != nil {
			log.Errorf("%v", err)
			bad++
		}
	}

	return bad, sc.Err()
}

func (g *Generator) CheckFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "cannot read %v", path)
	}
	defer f.Close()

	return g.Check(f)
}
