package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentic-research/povforge/internal/library"
)

const version = "0.1.0"

var (
	libraryPath string
	povrayBin   string
	viewerBin   string
)

var rootCmd = &cobra.Command{
	Use:          "povforge",
	Short:        "Povforge: compose POV-Ray scenes from declarative descriptions",
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&libraryPath, "library", "", "Path to the scene library database")
	rootCmd.PersistentFlags().StringVar(&povrayBin, "povray", "povray", "POV-Ray binary")
	rootCmd.PersistentFlags().StringVar(&viewerBin, "viewer", "xdg-open", "Image viewer binary")
}

// resolveLibraryPath falls back to ~/.agentic-research/povforge/library.db.
func resolveLibraryPath() (string, error) {
	if libraryPath != "" {
		return libraryPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home dir: %w", err)
	}
	return filepath.Join(home, ".agentic-research", "povforge", "library.db"), nil
}

func openLibrary() (*library.Store, error) {
	path, err := resolveLibraryPath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create library dir: %w", err)
	}
	return library.Open(path)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
