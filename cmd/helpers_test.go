package cmd

import (
	"testing"

	"github.com/mongle/monglectl/internal/config"
	"github.com/mongle/monglectl/internal/diary"
	"github.com/mongle/monglectl/internal/storage/jsonfile"
	"github.com/mongle/monglectl/internal/ui"
)

func setupTestRepo(t *testing.T) *diary.Repository {
	t.Helper()
	dir := t.TempDir()
	s, err := jsonfile.New(dir)
	if err != nil {
		t.Fatalf("creating test storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	r, err := diary.NewRepository(s)
	if err != nil {
		t.Fatalf("creating test repository: %v", err)
	}
	return r
}

func setupTestEnv(t *testing.T) {
	t.Helper()
	repo = setupTestRepo(t)
	appConfig = &config.Config{}
	appTheme = ui.ResolveTheme(config.ThemeConfig{})
	jsonOutput = false
}
