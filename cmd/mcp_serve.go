package cmd

import (
	"context"
	"log"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/mongle/monglectl/internal/mcptools"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes diary tools
over stdio transport. This allows MCP clients like Claude Desktop to interact
with your diary.

Available tools:
  - search_entries: Text search over diary entries, optionally within a month
  - month_stats: Count classified emotions for one calendar month
  - create_entry: Create a new diary entry

Example usage in Claude Desktop config:
  {
    "mcpServers": {
      "monglectl": {
        "command": "/path/to/monglectl",
        "args": ["mcp-serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	// Repository is already initialized in PersistentPreRunE
	if repo == nil {
		return cmd.Help()
	}

	// Create MCP server with registered tools
	server := mcptools.CreateMCPServer(repo)

	// Log to stderr (stdout is reserved for MCP protocol)
	log.SetOutput(os.Stderr)
	log.Printf("Starting monglectl MCP server (stdio transport)")
	log.Printf("Storage backend: %s", appConfig.Storage)
	log.Printf("Data directory: %s", appConfig.DataDir)

	// Run server with stdio transport
	// This blocks until the transport is closed
	return server.Run(context.Background(), &mcp.StdioTransport{})
}
