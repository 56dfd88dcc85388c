package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "sgftk", cmd.Use)
	assert.Contains(t, cmd.Long, "SGF")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"merge", "normalize", "summary", "validate"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	typesFlag := cmd.PersistentFlags().Lookup("property-types")
	require.NotNil(t, typesFlag)
	assert.Equal(t, "", typesFlag.DefValue)
}

func TestMergeCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	mergeCmd, _, err := cmd.Find([]string{"merge"})
	require.NoError(t, err)

	outputFlag := mergeCmd.Flags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)

	for _, name := range []string{
		"pretty", "filename-comments", "comments-on-branches-only",
		"label", "ignore-property", "comment-delimiters",
	} {
		assert.NotNil(t, mergeCmd.Flags().Lookup(name), "flag %s should exist", name)
	}
}

func TestNormalizeCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	normCmd, _, err := cmd.Find([]string{"normalize"})
	require.NoError(t, err)

	mainFlag := normCmd.Flags().Lookup("main")
	require.NotNil(t, mainFlag)
	assert.Equal(t, "m", mainFlag.Shorthand)
	assert.Equal(t, "false", mainFlag.DefValue)

	for _, name := range []string{"output", "uncomment", "nfc", "pretty"} {
		assert.NotNil(t, normCmd.Flags().Lookup(name), "flag %s should exist", name)
	}
}

func TestSummaryCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	sumCmd, _, err := cmd.Find([]string{"summary"})
	require.NoError(t, err)

	colFlag := sumCmd.Flags().Lookup("collections")
	require.NotNil(t, colFlag)
	assert.Equal(t, "c", colFlag.Shorthand)
}

func TestFormatValidation(t *testing.T) {
	assert.True(t, isValidFormat("text"))
	assert.True(t, isValidFormat("json"))

	assert.False(t, isValidFormat("xml"))
	assert.False(t, isValidFormat(""))
	assert.False(t, isValidFormat("TEXT"))
}

func TestFormatValidationIntegration(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "invalid", "validate", "x.sgf"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestPropertyTypesFlagLoadsTable(t *testing.T) {
	dir := t.TempDir()
	tablePath := filepath.Join(dir, "types.yaml")
	require.NoError(t, os.WriteFile(tablePath, []byte("XX: {kind: point, list: true}\n"), 0o644))

	input := filepath.Join(dir, "in.sgf")
	require.NoError(t, os.WriteFile(input, []byte("(;GM[1]XX[aa]XX[bb])"), 0o644))

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--property-types", tablePath, "normalize", input})

	require.NoError(t, cmd.Execute())
	// With XX as a list the duplicate identifiers fold into one property.
	assert.Equal(t, "(\n;GM[1]XX[aa][bb]\n)\n", out.String())
}

func TestPropertyTypesFlagRejectsBadTable(t *testing.T) {
	dir := t.TempDir()
	tablePath := filepath.Join(dir, "types.yaml")
	require.NoError(t, os.WriteFile(tablePath, []byte("XX: {kind: float}\n"), 0o644))

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--property-types", tablePath, "validate", "x.sgf"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")
}
