package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "Manage the saved scene library",
}

var scenesSaveCmd = &cobra.Command{
	Use:   "save [name] [scene-file]",
	Short: "Validate a scene file and save it under a name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, path := args[0], args[1]

		// Decoding up front keeps broken sources out of the library.
		s, format, err := loadSceneFile(path, "")
		if err != nil {
			return err
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read scene file: %w", err)
		}

		lib, err := openLibrary()
		if err != nil {
			return err
		}
		defer func() { _ = lib.Close() }()

		if err := lib.SaveScene(name, format, string(src)); err != nil {
			return err
		}
		fmt.Printf("Saved %q (%s, %d objects).\n", name, format, len(s))
		return nil
	},
}

var scenesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved scenes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		defer func() { _ = lib.Close() }()

		entries, err := lib.ListScenes()
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%s\t%s\t%s\n", e.Name, e.Format, e.CreatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var scenesShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Print a saved scene's source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		defer func() { _ = lib.Close() }()

		e, err := lib.GetScene(args[0])
		if err != nil {
			return err
		}
		fmt.Print(e.Source)
		if !strings.HasSuffix(e.Source, "\n") {
			fmt.Println()
		}
		return nil
	},
}

var scenesDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Remove a saved scene",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		defer func() { _ = lib.Close() }()
		return lib.DeleteScene(args[0])
	},
}

var scenesHistoryCmd = &cobra.Command{
	Use:   "history [name]",
	Short: "Show render history for a scene",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		defer func() { _ = lib.Close() }()

		entries, err := lib.Renders(args[0])
		if err != nil {
			return err
		}
		for _, e := range entries {
			line := fmt.Sprintf("%s\t%s\t%v", e.CreatedAt.Format("2006-01-02 15:04"), e.Status, e.Duration)
			if e.Output != "" {
				line += "\t" + filepath.Base(e.Output)
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	scenesCmd.AddCommand(scenesSaveCmd, scenesListCmd, scenesShowCmd, scenesDeleteCmd, scenesHistoryCmd)
	rootCmd.AddCommand(scenesCmd)
}
