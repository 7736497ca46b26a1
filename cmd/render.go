package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentic-research/povforge/internal/render"
	"github.com/agentic-research/povforge/internal/sdl"
)

var (
	renderOutDir string
	renderFormat string
	renderView   bool
)

var renderCmd = &cobra.Command{
	Use:   "render [scene-file]",
	Short: "Compose a scene and run POV-Ray on it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scenePath := args[0]
		s, _, err := loadSceneFile(scenePath, renderFormat)
		if err != nil {
			return err
		}
		text, err := sdl.Marshal(s)
		if err != nil {
			return err
		}

		base := strings.TrimSuffix(filepath.Base(scenePath), filepath.Ext(scenePath))
		sceneFile := base + ".pov"
		imageFile := base + ".png"

		r := render.NewRunner(renderOutDir)
		r.Povray = povrayBin
		r.Viewer = viewerBin

		lib, err := openLibrary()
		if err != nil {
			return err
		}
		defer func() { _ = lib.Close() }()

		fmt.Printf("Rendering %s -> %s...\n", scenePath, filepath.Join(renderOutDir, imageFile))
		start := time.Now()
		runErr := r.Pipeline(cmd.Context(), text+"\n", sceneFile, imageFile, renderView)
		elapsed := time.Since(start)

		status, stderr, output := "ok", "", imageFile
		if runErr != nil {
			status, output = "failed", ""
			var pe *render.ProcessError
			if errors.As(runErr, &pe) {
				stderr = pe.Stderr
			}
		}
		if _, recErr := lib.RecordRender(base, output, status, stderr, elapsed); recErr != nil {
			fmt.Printf("warning: %v\n", recErr)
		}

		if runErr != nil {
			return runErr
		}
		fmt.Printf("Done in %v.\n", elapsed)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderOutDir, "out-dir", ".", "Directory for the .pov file and rendered image")
	renderCmd.Flags().StringVar(&renderFormat, "format", "", "Scene file format: hcl or json (default: by extension)")
	renderCmd.Flags().BoolVar(&renderView, "view", false, "Open the rendered image in the viewer on success")
	rootCmd.AddCommand(renderCmd)
}
