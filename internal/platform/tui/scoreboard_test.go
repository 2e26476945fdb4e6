package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestScoreboardLogsStorageErrors(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "snake.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Close()

	var buf bytes.Buffer
	sb := NewScoreboardModel(store, "alice", 100, 30, log.New(&buf))

	if sb.Scope() != "alice" {
		t.Errorf("scope = %q, expected alice", sb.Scope())
	}
	out := buf.String()
	for _, want := range []string{"could not list players", "could not load scores", "could not load stats"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in the log, got:\n%s", want, out)
		}
	}
	if view := sb.View(); !strings.Contains(view, "alice") {
		t.Errorf("scoreboard should still render the scope:\n%s", view)
	}
}

func TestScoreboardListsScopes(t *testing.T) {
	store := openStore(t)
	for _, scope := range []string{"bob", storage.LocalScope} {
		if _, err := store.SaveScore(scope, 3); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	var buf bytes.Buffer
	sb := NewScoreboardModel(store, "alice", 100, 30, log.New(&buf))

	if want := []string{"alice", "bob", "local"}; strings.Join(sb.scopes, ",") != strings.Join(want, ",") {
		t.Errorf("scopes = %v, expected %v", sb.scopes, want)
	}
	if buf.Len() != 0 {
		t.Errorf("healthy store should not log warnings:\n%s", buf.String())
	}
}
