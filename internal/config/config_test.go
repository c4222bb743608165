package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLoader(t *testing.T) {
	for _, name := range []string{"js", "jsx", "ts", "tsx"} {
		loader, err := ParseLoader(name)
		require.NoError(t, err)
		assert.Equal(t, name, loader.String())
	}

	_, err := ParseLoader("json")
	require.EqualError(t, err, "Invalid loader: \"json\" (valid: js, jsx, ts, tsx)")
}

func TestOptionsForLoader(t *testing.T) {
	assert.Equal(t, Options{}, OptionsForLoader(LoaderJS))
	assert.Equal(t, Options{JSX: JSXOptions{Parse: true}}, OptionsForLoader(LoaderJSX))
	assert.Equal(t, Options{TS: TSOptions{Parse: true}}, OptionsForLoader(LoaderTS))
	assert.Equal(t, Options{TS: TSOptions{Parse: true}, JSX: JSXOptions{Parse: true}}, OptionsForLoader(LoaderTSX))
}
