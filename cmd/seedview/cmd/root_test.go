package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/f3rmion/seedview/internal/config"
	"github.com/f3rmion/seedview/internal/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const zeroVector = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out, err := runRaw(t, t.TempDir(), stdin, args...)
	return ansi.Strip(out), err
}

// runRaw executes the CLI with dir as config directory and returns its
// unfiltered output.
func runRaw(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", dir}, args...))
	err := root.Execute()
	return out.String(), err
}

// fieldWords collects the words printed inside the second bordered box.
func fieldWords(out string) []string {
	var words []string
	inField := false
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "Mnemonic" {
			inField = true
			continue
		}
		if inField && strings.HasPrefix(line, "│") {
			words = append(words, strings.Fields(strings.Trim(line, "│"))...)
		}
	}
	return words
}

func TestNew_Plain(t *testing.T) {
	out, err := run(t, "", "new", "--plain", "--words", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "Below is your 12 word mnemonic")

	words := fieldWords(out)
	require.Len(t, words, 12)
	assert.NoError(t, wallet.Validate(strings.Join(words, " ")))
}

func TestRoot_DefaultsToNew(t *testing.T) {
	out, err := run(t, "", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "Below is your 24 word mnemonic")
}

func TestNew_RejectsWordCount(t *testing.T) {
	_, err := run(t, "", "new", "--plain", "--words", "7")
	require.ErrorIs(t, err, wallet.ErrInvalidWordCount)
}

func TestShow_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrase.txt")
	require.NoError(t, os.WriteFile(path, []byte("  "+strings.ToUpper(zeroVector)+"\n"), 0600))

	out, err := run(t, "", "show", "--plain", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, strings.Fields(zeroVector), fieldWords(out))
}

func TestShow_FromStdin(t *testing.T) {
	out, err := run(t, zeroVector+"\n", "show", "--plain", "-f", "-")
	require.NoError(t, err)
	assert.Equal(t, strings.Fields(zeroVector), fieldWords(out))
}

func TestShow_Validation(t *testing.T) {
	_, err := run(t, "hello world", "show", "--plain")
	require.ErrorIs(t, err, wallet.ErrInvalidMnemonic)

	out, err := run(t, "hello world", "show", "--plain", "--no-validate")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world"}, fieldWords(out))
}

func TestShow_MissingFile(t *testing.T) {
	_, err := run(t, "", "show", "--plain", "--file", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading mnemonic file")
}

func TestShow_FromEnv(t *testing.T) {
	t.Setenv("SEEDVIEW_MNEMONIC", zeroVector)

	out, err := run(t, "", "show", "--plain")
	require.NoError(t, err)
	assert.Equal(t, strings.Fields(zeroVector), fieldWords(out))
}

func TestShow_SourcePrecedence(t *testing.T) {
	const fromFile = "legal winner thank year wave sausage worth useful legal winner thank yellow"
	const fromStdin = "letter advice cage absurd amount doctor acoustic avoid letter advice cage above"
	t.Setenv("SEEDVIEW_MNEMONIC", zeroVector)

	path := filepath.Join(t.TempDir(), "phrase.txt")
	require.NoError(t, os.WriteFile(path, []byte(fromFile), 0600))

	out, err := run(t, fromStdin, "show", "--plain", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, strings.Fields(fromFile), fieldWords(out), "--file beats the environment")

	out, err = run(t, fromStdin, "show", "--plain")
	require.NoError(t, err)
	assert.Equal(t, strings.Fields(zeroVector), fieldWords(out), "environment beats stdin")

	out, err = run(t, fromStdin, "show", "--plain", "-f", "-")
	require.NoError(t, err)
	assert.Equal(t, strings.Fields(fromStdin), fieldWords(out), "-f - forces stdin")
}

func TestShow_StripsTerminalEscapes(t *testing.T) {
	stdin := "abandon \x1b]52;c;aGVsbG8=\x07about\n"

	out, err := runRaw(t, t.TempDir(), stdin, "show", "--plain", "--no-validate")
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b]")
	assert.NotContains(t, out, "\x07")
	assert.Contains(t, ansi.Strip(out), "abandon")
}

func TestInit_WritesDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cfg")

	out, err := runRaw(t, dir, "", "init")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, config.FileName))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	// An existing file is left alone unless --force is given.
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("words: 12\n"), 0644))
	_, err = runRaw(t, dir, "", "init")
	require.Error(t, err)

	cfg, err = config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Words)

	_, err = runRaw(t, dir, "", "init", "--force")
	require.NoError(t, err)
	cfg, err = config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
