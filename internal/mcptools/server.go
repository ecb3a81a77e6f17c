package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mongle/monglectl/internal/diary"
)

// NewDiaryMCPServer creates an in-memory MCP server exposing diary tools.
// Returns the server and a client transport for connecting to it.
func NewDiaryMCPServer(repo *diary.Repository) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(repo)

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with registered diary tools.
func CreateMCPServer(repo *diary.Repository) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "monglectl",
		Version: "1.0.0",
	}, nil)

	// Read tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_entries",
		Description: "Search diary entries by text, optionally within one month",
	}, SearchHandler(repo))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "month_stats",
		Description: "Count classified emotions for one calendar month",
	}, MonthStatsHandler(repo))

	// Write tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_entry",
		Description: "Create a new diary entry",
	}, CreateEntryHandler(repo))

	return server
}
