package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	clog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingHelpers_WriteToBuffer(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	L.SetLevel(clog.DebugLevel)
	defer func() { L = prev }()

	Debugf("hello %s", "dbg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")

	out := buf.String()
	assert.Contains(t, out, "hello dbg")
	assert.Contains(t, out, "info 1")
	assert.Contains(t, out, "warn")
	assert.Contains(t, out, "err E")
}

func TestSetup_WritesFile(t *testing.T) {
	prev := L
	defer func() { L = prev }()

	dir := t.TempDir()
	closer, err := Setup(dir, false)
	require.NoError(t, err)

	Debugf("hidden")
	Infof("shown %d", 24)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, "seedview.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "shown 24")
	assert.NotContains(t, string(data), "hidden")
}
