package mcptools

// SearchInput is the input schema for the search_entries MCP tool.
type SearchInput struct {
	Query string `json:"query" jsonschema-description:"Text to search for in entry text (case-sensitive substring)"`
	Month string `json:"month,omitempty" jsonschema-description:"Restrict results to a calendar month (YYYY-MM)"`
	Limit int    `json:"limit" jsonschema-description:"Maximum number of results to return"`
}

// SearchOutput is the output schema for the search_entries MCP tool.
type SearchOutput struct {
	Entries []EntryResult `json:"entries"`
}

// EntryResult is the common output format for entry-related MCP tools.
// Locked entries are masked, never previewed.
type EntryResult struct {
	ID      string `json:"id"`
	Preview string `json:"preview"`
	Date    string `json:"date"`
	Emotion string `json:"emotion,omitempty"`
}

// CreateEntryInput is the input schema for the create_entry MCP tool.
type CreateEntryInput struct {
	Text string `json:"text" jsonschema-description:"Entry text"`
	Date string `json:"date,omitempty" jsonschema-description:"Entry date (YYYY-MM-DD, default today)"`
}

// CreateEntryOutput is the output schema for the create_entry MCP tool.
type CreateEntryOutput struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Preview string `json:"preview"`
}

// MonthStatsInput is the input schema for the month_stats MCP tool.
type MonthStatsInput struct {
	Month string `json:"month,omitempty" jsonschema-description:"Calendar month to aggregate (YYYY-MM, default current month)"`
}

// MonthStatsOutput is the output schema for the month_stats MCP tool.
type MonthStatsOutput struct {
	Month  string         `json:"month"`
	Counts map[string]int `json:"counts"`
}
