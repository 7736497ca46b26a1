package render

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBinary writes an executable shell script and returns its path.
func stubBinary(t *testing.T, name, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func TestWriteScene(t *testing.T) {
	fs := memfs.New()
	r := &Runner{fs: fs}

	require.NoError(t, r.WriteScene("demo.pov", "camera {\n  location <0,0,0>\n  look_at <0,0,10>\n}"))

	got, err := util.ReadFile(fs, "demo.pov")
	require.NoError(t, err)
	assert.Contains(t, string(got), "camera {")
}

func TestRenderSuccess(t *testing.T) {
	dir := t.TempDir()
	r := NewRunner(dir)
	r.Povray = stubBinary(t, "povray", `touch "$(pwd)/rendered"`+"\nexit 0")

	require.NoError(t, r.Render(context.Background(), "demo.pov", "demo.png"))
	assert.FileExists(t, filepath.Join(dir, "rendered"), "renderer runs in the output dir")
}

func TestRenderFailureCapturesStderr(t *testing.T) {
	r := NewRunner(t.TempDir())
	r.Povray = stubBinary(t, "povray", `echo "Parse Error: unexpected token" >&2`+"\nexit 1")

	err := r.Render(context.Background(), "demo.pov", "demo.png")
	require.Error(t, err)

	var pe *ProcessError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, r.Povray, pe.Command)
	assert.Contains(t, pe.Stderr, "Parse Error")
	assert.Contains(t, err.Error(), "Parse Error")
}

func TestRenderMissingBinary(t *testing.T) {
	r := NewRunner(t.TempDir())
	r.Povray = filepath.Join(t.TempDir(), "no-such-binary")

	err := r.Render(context.Background(), "demo.pov", "demo.png")
	require.Error(t, err)

	var pe *ProcessError
	require.ErrorAs(t, err, &pe)
	assert.Empty(t, pe.Stderr)
}

func TestPipelineHaltsOnRenderFailure(t *testing.T) {
	dir := t.TempDir()
	r := NewRunner(dir)
	r.Povray = stubBinary(t, "povray", "exit 1")
	r.Viewer = stubBinary(t, "viewer", `touch "$(pwd)/viewed"`+"\nexit 0")

	err := r.Pipeline(context.Background(), "camera {\n}\n", "demo.pov", "demo.png", true)
	require.Error(t, err)

	// Scene text was written (step 1 ran), viewer never started (step 3 gated).
	assert.FileExists(t, filepath.Join(dir, "demo.pov"))
	assert.NoFileExists(t, filepath.Join(dir, "viewed"))
}

func TestPipelineFull(t *testing.T) {
	dir := t.TempDir()
	r := NewRunner(dir)
	r.Povray = stubBinary(t, "povray", `touch "$(pwd)/demo.png"`+"\nexit 0")
	r.Viewer = stubBinary(t, "viewer", `touch "$(pwd)/viewed"`+"\nexit 0")

	require.NoError(t, r.Pipeline(context.Background(), "camera {\n}\n", "demo.pov", "demo.png", true))
	assert.FileExists(t, filepath.Join(dir, "demo.pov"))
	assert.FileExists(t, filepath.Join(dir, "viewed"))
}
