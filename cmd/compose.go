package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentic-research/povforge/internal/scene"
	"github.com/agentic-research/povforge/internal/sceneio"
	"github.com/agentic-research/povforge/internal/sdl"
)

var (
	composeOut    string
	composeFormat string
)

var composeCmd = &cobra.Command{
	Use:   "compose [scene-file]",
	Short: "Serialize a scene file to POV-Ray SDL text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := loadSceneFile(args[0], composeFormat)
		if err != nil {
			return err
		}
		text, err := sdl.Marshal(s)
		if err != nil {
			return err
		}

		if composeOut == "" {
			fmt.Println(text)
			return nil
		}
		if err := os.WriteFile(composeOut, []byte(text+"\n"), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", composeOut, err)
		}
		fmt.Printf("Wrote %s (%d objects).\n", composeOut, len(s))
		return nil
	},
}

func init() {
	composeCmd.Flags().StringVarP(&composeOut, "output", "o", "", "Write SDL text to this file instead of stdout")
	composeCmd.Flags().StringVarP(&composeFormat, "format", "f", "", "Scene file format: hcl or json (default: by extension)")
	rootCmd.AddCommand(composeCmd)
}

// loadSceneFile reads and decodes a scene file. The format defaults by
// file extension: .json is JSON, anything else is HCL.
func loadSceneFile(path, format string) (scene.Scene, string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read scene file: %w", err)
	}
	f := format
	if f == "" {
		if strings.EqualFold(filepath.Ext(path), ".json") {
			f = "json"
		} else {
			f = "hcl"
		}
	}
	s, err := decodeScene(src, filepath.Base(path), f)
	if err != nil {
		return nil, "", err
	}
	return s, f, nil
}

func decodeScene(src []byte, name, format string) (scene.Scene, error) {
	switch format {
	case "hcl":
		return sceneio.DecodeHCL(src, name)
	case "json":
		return sceneio.DecodeJSON(src)
	default:
		return nil, fmt.Errorf("unknown scene format %q (want hcl or json)", format)
	}
}
