package mcptools

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mongle/monglectl/internal/diary"
	"github.com/mongle/monglectl/internal/stats"
)

// MonthStatsHandler returns the handler function for the month_stats MCP tool.
func MonthStatsHandler(repo *diary.Repository) func(ctx context.Context, req *mcp.CallToolRequest, input MonthStatsInput) (*mcp.CallToolResult, MonthStatsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input MonthStatsInput) (*mcp.CallToolResult, MonthStatsOutput, error) {
		month := time.Now()
		if input.Month != "" {
			parsed, err := time.Parse("2006-01", input.Month)
			if err != nil {
				return nil, MonthStatsOutput{}, fmt.Errorf("invalid month %q: expected YYYY-MM", input.Month)
			}
			month = parsed
		}

		counts := stats.ForMonth(repo.Entries(), month)
		out := MonthStatsOutput{
			Month:  month.Format("2006-01"),
			Counts: map[string]int{},
		}
		for em, n := range counts {
			out.Counts[string(em)] = n
		}

		return nil, out, nil
	}
}
