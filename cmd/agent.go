package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/agentic-research/povforge/internal/sdl"
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Serve povforge tools over MCP stdio for LLM agents",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := server.NewMCPServer("povforge", version)

		composeTool := mcp.NewTool("compose_scene",
			mcp.WithDescription("Serialize a declarative scene description (HCL or JSON) to POV-Ray SDL text."),
			mcp.WithString("source", mcp.Required(), mcp.Description("Scene description source text")),
			mcp.WithString("format", mcp.Description("Source format: hcl (default) or json")),
		)
		s.AddTool(composeTool, handleComposeScene)

		saveTool := mcp.NewTool("save_scene",
			mcp.WithDescription("Validate a scene description and save it to the local scene library."),
			mcp.WithString("name", mcp.Required(), mcp.Description("Library name for the scene")),
			mcp.WithString("source", mcp.Required(), mcp.Description("Scene description source text")),
			mcp.WithString("format", mcp.Description("Source format: hcl (default) or json")),
		)
		s.AddTool(saveTool, handleSaveScene)

		listTool := mcp.NewTool("list_scenes",
			mcp.WithDescription("List the scenes saved in the local scene library."),
		)
		s.AddTool(listTool, handleListScenes)

		return server.ServeStdio(s)
	},
}

func init() {
	rootCmd.AddCommand(agentCmd)
}

func handleComposeScene(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	src, err := req.RequireString("source")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	format := req.GetString("format", "hcl")

	sc, err := decodeScene([]byte(src), "scene."+format, format)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	text, err := sdl.Marshal(sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

func handleSaveScene(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	src, err := req.RequireString("source")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	format := req.GetString("format", "hcl")

	sc, err := decodeScene([]byte(src), "scene."+format, format)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	lib, err := openLibrary()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	defer func() { _ = lib.Close() }()

	if err := lib.SaveScene(name, format, src); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("saved %q (%s, %d objects)", name, format, len(sc))), nil
}

func handleListScenes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lib, err := openLibrary()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	defer func() { _ = lib.Close() }()

	entries, err := lib.ListScenes()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(entries) == 0 {
		return mcp.NewToolResultText("no saved scenes"), nil
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s\t%s\t%s\n", e.Name, e.Format, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return mcp.NewToolResultText(b.String()), nil
}
