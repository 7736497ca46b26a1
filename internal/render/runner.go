// Package render drives the external rendering pipeline: write the scene
// text to disk, invoke povray, check its result, then invoke an image
// viewer. Steps run strictly in sequence; the first failure halts the
// pipeline.
package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// ProcessError reports an external process that failed to start or exited
// non-zero, with its captured stderr.
type ProcessError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *ProcessError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %v: %s", e.Command, e.Err, strings.TrimSpace(e.Stderr))
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *ProcessError) Unwrap() error { return e.Err }

// Runner executes the render pipeline inside one output directory. Scene
// files go through a billy filesystem rooted at that directory, so tests
// can substitute an in-memory one.
type Runner struct {
	fs  billy.Filesystem
	dir string

	Povray string // renderer binary
	Viewer string // image viewer binary
}

// NewRunner returns a Runner writing into dir, with the stock binaries.
func NewRunner(dir string) *Runner {
	return &Runner{
		fs:     osfs.New(dir),
		dir:    dir,
		Povray: "povray",
		Viewer: "xdg-open",
	}
}

// WriteScene writes the scene text under name, relative to the runner's
// directory.
func (r *Runner) WriteScene(name, text string) error {
	if err := util.WriteFile(r.fs, name, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write scene %s: %w", name, err)
	}
	return nil
}

// Render invokes povray on sceneFile, producing imageFile. Display is
// disabled (-D); povforge views the result separately.
func (r *Runner) Render(ctx context.Context, sceneFile, imageFile string) error {
	return r.run(ctx, r.Povray, "+I"+sceneFile, "+O"+imageFile, "-D")
}

// View opens imageFile in the configured viewer.
func (r *Runner) View(ctx context.Context, imageFile string) error {
	return r.run(ctx, r.Viewer, imageFile)
}

// Pipeline is the full sequence: write scene text, render it, and on
// success optionally view the image.
func (r *Runner) Pipeline(ctx context.Context, text, sceneFile, imageFile string, view bool) error {
	if err := r.WriteScene(sceneFile, text); err != nil {
		return err
	}
	if err := r.Render(ctx, sceneFile, imageFile); err != nil {
		return err
	}
	if view {
		return r.View(ctx, imageFile)
	}
	return nil
}

func (r *Runner) run(ctx context.Context, bin string, args ...string) error {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = r.dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return &ProcessError{Command: bin, Stderr: stderr.String(), Err: err}
	}
	return nil
}
