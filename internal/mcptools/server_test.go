package mcptools_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mongle/monglectl/internal/diary"
	"github.com/mongle/monglectl/internal/entry"
	"github.com/mongle/monglectl/internal/mcptools"
	"github.com/mongle/monglectl/internal/storage/jsonfile"
)

func setupRepo(t *testing.T) *diary.Repository {
	t.Helper()
	store, err := jsonfile.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	repo, err := diary.NewRepository(store)
	if err != nil {
		t.Fatalf("failed to create repository: %v", err)
	}
	return repo
}

func connect(t *testing.T, repo *diary.Repository) *mcp.ClientSession {
	t.Helper()
	_, clientTransport := mcptools.NewDiaryMCPServer(repo)
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(context.Background(), clientTransport, nil)
	if err != nil {
		t.Fatalf("failed to connect client: %v", err)
	}
	return session
}

func decodeResult(t *testing.T, result *mcp.CallToolResult, out interface{}) {
	t.Helper()
	if result.StructuredContent != nil {
		outputJSON, _ := json.Marshal(result.StructuredContent)
		if err := json.Unmarshal(outputJSON, out); err != nil {
			t.Fatalf("failed to unmarshal structured content: %v", err)
		}
		return
	}
	if len(result.Content) > 0 {
		contentJSON, _ := json.Marshal(result.Content[0])
		var textContent struct {
			Type string `json:"type"`
			Text string `json:"text"`
		}
		if err := json.Unmarshal(contentJSON, &textContent); err != nil {
			t.Fatalf("failed to unmarshal content: %v", err)
		}
		if err := json.Unmarshal([]byte(textContent.Text), out); err != nil {
			t.Fatalf("failed to unmarshal output: %v", err)
		}
		return
	}
	t.Fatal("expected content in result")
}

func TestMCPServer_SearchEntries(t *testing.T) {
	repo := setupRepo(t)

	e1, err := repo.Create("오늘은 Go 인터페이스를 공부했다", time.Now())
	if err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}
	if _, err := repo.Create("스탠드업 회의 메모", time.Now()); err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}

	session := connect(t, repo)
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "search_entries",
		Arguments: mcptools.SearchInput{Query: "인터페이스", Limit: 10},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}

	var output mcptools.SearchOutput
	decodeResult(t, result, &output)

	if len(output.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(output.Entries))
	}
	if output.Entries[0].ID != e1.ID {
		t.Errorf("expected entry %s, got %s", e1.ID, output.Entries[0].ID)
	}
}

func TestMCPServer_SearchMasksLockedEntries(t *testing.T) {
	repo := setupRepo(t)

	e, err := repo.Create("아무에게도 말하지 못한 비밀", time.Now())
	if err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}
	if err := repo.ToggleLock(e.ID); err != nil {
		t.Fatalf("failed to lock entry: %v", err)
	}

	session := connect(t, repo)
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "search_entries",
		Arguments: mcptools.SearchInput{Query: "비밀", Limit: 10},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}

	var output mcptools.SearchOutput
	decodeResult(t, result, &output)

	if len(output.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(output.Entries))
	}
	if output.Entries[0].Preview != "잠긴 내용입니다." {
		t.Errorf("locked entry preview = %q, want mask text", output.Entries[0].Preview)
	}
}

func TestMCPServer_CreateEntry(t *testing.T) {
	repo := setupRepo(t)
	session := connect(t, repo)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "create_entry",
		Arguments: mcptools.CreateEntryInput{Text: "새 일기", Date: "2024-03-15"},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}

	var output mcptools.CreateEntryOutput
	decodeResult(t, result, &output)

	if output.Date != "2024-03-15" {
		t.Errorf("date = %q, want 2024-03-15", output.Date)
	}
	if _, err := repo.Get(output.ID); err != nil {
		t.Errorf("created entry not found in repository: %v", err)
	}
}

func TestMCPServer_MonthStats(t *testing.T) {
	repo := setupRepo(t)

	march := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	e1, _ := repo.Create("기쁜 하루", march)
	e2, _ := repo.Create("또 기쁜 하루", march.AddDate(0, 0, 1))
	e3, _ := repo.Create("다른 달", march.AddDate(0, 1, 0))
	if err := repo.SetEmotion(e1.ID, entry.Joy); err != nil {
		t.Fatalf("failed to set emotion: %v", err)
	}
	if err := repo.SetEmotion(e2.ID, entry.Joy); err != nil {
		t.Fatalf("failed to set emotion: %v", err)
	}
	if err := repo.SetEmotion(e3.ID, entry.Sadness); err != nil {
		t.Fatalf("failed to set emotion: %v", err)
	}

	session := connect(t, repo)
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "month_stats",
		Arguments: mcptools.MonthStatsInput{Month: "2024-03"},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}

	var output mcptools.MonthStatsOutput
	decodeResult(t, result, &output)

	if output.Month != "2024-03" {
		t.Errorf("month = %q, want 2024-03", output.Month)
	}
	if output.Counts["joy"] != 2 {
		t.Errorf("joy count = %d, want 2", output.Counts["joy"])
	}
	if output.Counts["sadness"] != 0 {
		t.Errorf("sadness count = %d, want 0 (different month)", output.Counts["sadness"])
	}
}
