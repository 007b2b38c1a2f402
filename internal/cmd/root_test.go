package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdFlagSurface(t *testing.T) {
	cmd := NewRootCmd()
	flags := cmd.Flags()

	for name, shorthand := range map[string]string{
		"jobs":                  "j",
		"quiet":                 "q",
		"format":                "f",
		"hash":                  "h",
		"match":                 "m",
		"recursive":             "r",
		"glob":                  "g",
		"glob-case-insensitive": "i",
	} {
		f := flags.Lookup(name)
		require.NotNil(t, f, "missing flag --%s", name)
		assert.Equal(t, shorthand, f.Shorthand, "flag --%s", name)
	}

	// -h belongs to --hash; help keeps only its long form.
	short := flags.ShorthandLookup("h")
	require.NotNil(t, short)
	assert.Equal(t, "hash", short.Name)
	require.NotNil(t, flags.Lookup("help"))
	assert.Empty(t, flags.Lookup("help").Shorthand)

	assert.NotNil(t, flags.Lookup("progress"))
	assert.NotNil(t, flags.Lookup("no-progress"))
	assert.Equal(t, "md5", flags.Lookup("hash").DefValue)
	assert.Equal(t, "txt", flags.Lookup("format").DefValue)
	assert.Equal(t, "true", flags.Lookup("progress").DefValue)
}

func TestRootCmdRequiresPaths(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{})
	assert.Error(t, cmd.Execute())
}

func TestAlgorithmsCmdListsRegistry(t *testing.T) {
	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"algorithms"})
	require.NoError(t, cmd.Execute())

	for _, name := range []string{"md5", "sha256", "sha3-512", "blake2b"} {
		assert.Contains(t, out.String(), name)
	}
}
