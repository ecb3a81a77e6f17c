package mcptools

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mongle/monglectl/internal/diary"
)

// SearchHandler returns the handler function for the search_entries MCP tool.
// Matching is case-sensitive substring, the same contract the CLI uses.
// Locked entries appear in the results but their preview stays masked.
func SearchHandler(repo *diary.Repository) func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
		limit := input.Limit
		if limit <= 0 {
			limit = 10
		}

		entries := repo.Search(input.Query)
		if input.Month != "" {
			month, err := time.Parse("2006-01", input.Month)
			if err != nil {
				return nil, SearchOutput{}, fmt.Errorf("invalid month %q: expected YYYY-MM", input.Month)
			}
			entries = diary.FilterByMonth(entries, month)
		}

		var results []EntryResult
		for _, e := range entries {
			results = append(results, EntryResult{
				ID:      e.ID,
				Preview: e.Preview(100),
				Date:    e.Date.Format("2006-01-02"),
				Emotion: string(e.Emotion),
			})
			if len(results) >= limit {
				break
			}
		}

		return nil, SearchOutput{Entries: results}, nil
	}
}
