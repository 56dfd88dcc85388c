package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFoldsSingleVariations(t *testing.T) {
	dir := t.TempDir()
	in := writeSGF(t, dir, "in.sgf", "(;GM[1](;B[aa](;W[bb])))")

	out, _, err := runCLI(t, "", "normalize", in)
	require.NoError(t, err)
	assert.Equal(t, "(\n;GM[1]\n;B[aa]\n;W[bb]\n)\n", out)
}

func TestNormalizeKeepsRealVariations(t *testing.T) {
	dir := t.TempDir()
	in := writeSGF(t, dir, "in.sgf", "(;B[aa](;W[bb])(;W[cc]))")

	out, _, err := runCLI(t, "", "normalize", in)
	require.NoError(t, err)
	assert.Equal(t, "(\n;B[aa]\n(\n;W[bb]\n)\n(\n;W[cc]\n)\n)\n", out)
}

func TestNormalizeMainOnly(t *testing.T) {
	dir := t.TempDir()
	in := writeSGF(t, dir, "in.sgf", "(;GM[1];B[aa](;W[bb];B[cc])(;W[dd]))")

	out, _, err := runCLI(t, "", "normalize", "--main", in)
	require.NoError(t, err)
	assert.Equal(t, "(\n;GM[1]\n;B[aa]\n;W[bb]\n;B[cc]\n)\n", out)
}

func TestNormalizeUncomment(t *testing.T) {
	dir := t.TempDir()
	in := writeSGF(t, dir, "in.sgf", "(;GM[1]C[root note];B[aa]C[deep note])")

	out, _, err := runCLI(t, "", "normalize", "--uncomment", in)
	require.NoError(t, err)
	assert.Equal(t, "(\n;GM[1]\n;B[aa]\n)\n", out)
}

func TestNormalizeNFC(t *testing.T) {
	dir := t.TempDir()
	// "e" followed by a combining acute accent composes to U+00E9.
	in := writeSGF(t, dir, "in.sgf", "(;GM[1]C[Café];B[aa])")

	out, _, err := runCLI(t, "", "normalize", "--nfc", in)
	require.NoError(t, err)
	assert.Equal(t, "(\n;GM[1]C[Café]\n;B[aa]\n)\n", out)
}

func TestNormalizePretty(t *testing.T) {
	dir := t.TempDir()
	in := writeSGF(t, dir, "in.sgf", "(;B[aa](;W[bb])(;W[cc]))")

	out, _, err := runCLI(t, "", "normalize", "--pretty", in)
	require.NoError(t, err)

	want := "(\n" +
		"  ;B[aa]\n" +
		"  (\n" +
		"    ;W[bb]\n" +
		"  )\n" +
		"  (\n" +
		"    ;W[cc]\n" +
		"  )\n" +
		")\n"
	assert.Equal(t, want, out)
}

func TestNormalizeStdinToStdout(t *testing.T) {
	out, _, err := runCLI(t, "(;GM[1](;B[aa]))", "normalize")
	require.NoError(t, err)
	assert.Equal(t, "(\n;GM[1]\n;B[aa]\n)\n", out)
}

func TestNormalizeToOutputFile(t *testing.T) {
	dir := t.TempDir()
	in := writeSGF(t, dir, "in.sgf", "(;GM[1](;B[aa]))")
	dest := filepath.Join(dir, "out.sgf")

	out, _, err := runCLI(t, "", "normalize", "-o", dest, in)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "(\n;GM[1]\n;B[aa]\n)\n", string(data))
}

func TestNormalizeMultiGameCollection(t *testing.T) {
	dir := t.TempDir()
	in := writeSGF(t, dir, "in.sgf", "(;B[aa](;W[bb]))(;B[cc])")

	out, _, err := runCLI(t, "", "normalize", in)
	require.NoError(t, err)
	assert.Equal(t, "(\n;B[aa]\n;W[bb]\n)\n\n(\n;B[cc]\n)\n", out)
}

func TestNormalizeRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	in := writeSGF(t, dir, "in.sgf", "(;B[aa")

	_, _, err := runCLI(t, "", "normalize", in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNTERMINATED_VALUE")
}
