package cli

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoiceValue(t *testing.T) {
	var sortBy string
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(newChoiceValue(&sortBy, "relevance", "relevance", "title", "growth"), "sort", "")

	assert.Equal(t, "relevance", sortBy)

	require.NoError(t, fs.Parse([]string{"--sort", " TITLE "}))
	assert.Equal(t, "title", sortBy)

	err := fs.Parse([]string{"--sort", "salary"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of relevance, title, growth")
	assert.Equal(t, "title", sortBy)
}
