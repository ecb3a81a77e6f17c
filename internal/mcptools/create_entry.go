package mcptools

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mongle/monglectl/internal/diary"
)

// CreateEntryHandler returns the handler function for the create_entry MCP tool.
func CreateEntryHandler(repo *diary.Repository) func(ctx context.Context, req *mcp.CallToolRequest, input CreateEntryInput) (*mcp.CallToolResult, CreateEntryOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CreateEntryInput) (*mcp.CallToolResult, CreateEntryOutput, error) {
		date := time.Now()
		if input.Date != "" {
			parsed, err := time.Parse("2006-01-02", input.Date)
			if err != nil {
				return nil, CreateEntryOutput{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", input.Date)
			}
			date = parsed
		}

		e, err := repo.Create(input.Text, date)
		if err != nil {
			return nil, CreateEntryOutput{}, err
		}

		return nil, CreateEntryOutput{
			ID:      e.ID,
			Date:    e.Date.Format("2006-01-02"),
			Preview: e.Preview(100),
		}, nil
	}
}
