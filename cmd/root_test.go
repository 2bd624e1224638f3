package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootMissingFileArgument(t *testing.T) {
	rootCmd.SetArgs([]string{})

	assert.Equal(t, ErrMissingFile, rootCmd.Execute())
}

func TestGenMissingFileArgument(t *testing.T) {
	rootCmd.SetArgs([]string{"gen"})

	assert.Equal(t, ErrMissingFile, rootCmd.Execute())
}

func TestCheckMissingFileArgument(t *testing.T) {
	rootCmd.SetArgs([]string{"check"})

	assert.Equal(t, ErrMissingFile, rootCmd.Execute())
}
