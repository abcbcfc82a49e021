package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ctrlf-search/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Tools: search_notion, search_slack, get_drive_content, answer_question.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "ctrlf": {
        "command": "/path/to/ctrlf",
        "args": ["mcp"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Search:  searchService,
		Content: contentService,
		Answer:  answerService,
		Sources: sourceStatuses(),
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

// sourceStatuses reports which capabilities have credentials.
func sourceStatuses() []mcp.SourceStatus {
	if settings == nil {
		return nil
	}
	return []mcp.SourceStatus{
		{Name: "notion", Configured: settings.Notion.IsConfigured()},
		{Name: "slack", Configured: settings.Slack.IsConfigured()},
		{Name: "drive", Configured: true},
		{Name: "anthropic", Configured: settings.Anthropic.IsConfigured()},
	}
}
