package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func parseOk(t *testing.T, s string) *Option {
	opt, err := Parse(s)
	if err != nil {
		t.Fatal(err)
	}

	return opt
}

func TestParseOption(t *testing.T) {
	opt := parseOk(t, "SPVC_COMPILER_OPTION_MSL_ARGUMENT_BUFFERS")

	assert.Equal(t, &Option{
		Full:     "SPVC_COMPILER_OPTION_MSL_ARGUMENT_BUFFERS",
		Category: "MSL",
		Suffix:   "ARGUMENT_BUFFERS",
	}, opt)
	assert.Equal(t, "argument_buffers", opt.FieldName())
}

func TestParseCategoryStopsAtFirstUnderscore(t *testing.T) {
	opt := parseOk(t, "SPVC_COMPILER_OPTION_GLSL_VERSION")

	assert.Equal(t, &Option{
		Full:     "SPVC_COMPILER_OPTION_GLSL_VERSION",
		Category: "GLSL",
		Suffix:   "VERSION",
	}, opt)
	assert.Equal(t, "version", opt.FieldName())
}

func TestParseDigitsInSuffix(t *testing.T) {
	opt := parseOk(t, "SPVC_COMPILER_OPTION_MSL_MSL_VERSION_2_1")

	assert.Equal(t, "MSL", opt.Category)
	assert.Equal(t, "msl_version_2_1", opt.FieldName())
}

func TestParseTrimsWhitespace(t *testing.T) {
	opt := parseOk(t, "  SPVC_COMPILER_OPTION_GLSL_VERSION\n")

	assert.Equal(t, "SPVC_COMPILER_OPTION_GLSL_VERSION", opt.Full)
}

func TestParseMalformed(t *testing.T) {
	for _, s := range []string{
		"",
		"GLSL_VERSION",
		"SPVC_COMPILER_OPTION_",
		"SPVC_COMPILER_OPTION_GLSL",
		"SPVC_COMPILER_OPTION_msl_VERSION",
		"SPVC_COMPILER_OPTION_MSL_version",
		"some random line",
	} {
		_, err := Parse(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestParseLineAnnotatesFailure(t *testing.T) {
	_, err := ParseLine("not an option\n", 3)
	if err == nil {
		t.Fatal("expected error")
	}

	le, ok := err.(*LineError)
	if !ok {
		t.Fatalf("expected *LineError, got %T", err)
	}

	assert.Equal(t, 3, le.Line)
	assert.Equal(t, "not an option", le.Raw)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), `"not an option"`)
}

func TestParseLineWellFormed(t *testing.T) {
	opt, err := ParseLine("SPVC_COMPILER_OPTION_HLSL_SHADER_MODEL", 1)

	assert.NoError(t, err)
	assert.Equal(t, "shader_model", opt.FieldName())
}
