package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestHighScoreMissingIsZero(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore(HighScoreKey(DefaultHighScoreKey, LocalScope))
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for missing high score, got %d", high)
	}
}

func TestRaiseHighScoreIsMonotonic(t *testing.T) {
	store := openTestStore(t)
	key := HighScoreKey(DefaultHighScoreKey, LocalScope)

	steps := []struct {
		offer    int
		expected int
	}{
		{5, 5},
		{3, 5},
		{12, 12},
		{0, 12},
		{12, 12},
		{13, 13},
	}

	for _, step := range steps {
		got, err := store.RaiseHighScore(key, step.offer)
		if err != nil {
			t.Fatalf("RaiseHighScore(%d) failed: %v", step.offer, err)
		}
		if got != step.expected {
			t.Errorf("RaiseHighScore(%d) = %d, expected %d", step.offer, got, step.expected)
		}

		stored, err := store.HighScore(key)
		if err != nil {
			t.Fatalf("HighScore() failed: %v", err)
		}
		if stored != step.expected {
			t.Errorf("stored high score = %d, expected %d", stored, step.expected)
		}
	}
}

func TestCorruptHighScore(t *testing.T) {
	store := openTestStore(t)
	key := HighScoreKey(DefaultHighScoreKey, LocalScope)

	if _, err := store.db.Exec("INSERT INTO kv (key, value) VALUES (?, ?)", key, "NaN"); err != nil {
		t.Fatalf("seeding corrupt value failed: %v", err)
	}

	high, err := store.HighScore(key)
	if !errors.Is(err, ErrCorruptValue) {
		t.Errorf("Expected ErrCorruptValue, got %v", err)
	}
	if high != 0 {
		t.Errorf("Corrupt value should read as 0, got %d", high)
	}

	// A corrupt value is overwritten by any positive score
	got, err := store.RaiseHighScore(key, 1)
	if err != nil {
		t.Fatalf("RaiseHighScore() failed: %v", err)
	}
	if got != 1 {
		t.Errorf("Expected corrupt value to be replaced by 1, got %d", got)
	}
}

func TestScopedHighScore(t *testing.T) {
	store := openTestStore(t)

	alice := store.HighScoreFor("alice", "")
	bob := store.HighScoreFor("bob", "")

	if err := alice.SaveHighScore(30); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	if err := bob.SaveHighScore(7); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	if err := alice.SaveHighScore(10); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}

	if v, _ := alice.LoadHighScore(); v != 30 {
		t.Errorf("alice high score = %d, expected 30", v)
	}
	if v, _ := bob.LoadHighScore(); v != 7 {
		t.Errorf("bob high score = %d, expected 7", v)
	}
	if v, err := store.HighScore("alice:snakeHighScore"); err != nil || v != 30 {
		t.Errorf("stored alice high score = %d, %v, expected 30", v, err)
	}
}

func TestStoreSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore(LocalScope, s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("alice", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores(LocalScope, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}

	limited, err := store.TopScores(LocalScope, 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 scores with limit, got %d", len(limited))
	}
}

func TestScopesAndStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("bob", 4)
	store.SaveScore(LocalScope, 10)
	store.SaveScore(LocalScope, 20)

	scopes, err := store.Scopes()
	if err != nil {
		t.Fatalf("Scopes() failed: %v", err)
	}
	if len(scopes) != 2 || scopes[0] != "bob" || scopes[1] != LocalScope {
		t.Errorf("Scopes() = %v, expected [bob local]", scopes)
	}

	stats, err := store.Stats(LocalScope)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.BestScore != 20 || stats.AvgScore != 15 {
		t.Errorf("unexpected stats %+v", stats)
	}

	empty, err := store.Stats("nobody")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty scope %+v", empty)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(LocalScope, 100)
	store.SaveScore("bob", 300)
	store.RaiseHighScore(HighScoreKey(DefaultHighScoreKey, LocalScope), 100)

	if err := store.ClearScores(LocalScope, DefaultHighScoreKey); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	local, _ := store.TopScores(LocalScope, 10)
	if len(local) != 0 {
		t.Errorf("Expected 0 local scores after clear, got %d", len(local))
	}
	if high, _ := store.HighScore(HighScoreKey(DefaultHighScoreKey, LocalScope)); high != 0 {
		t.Errorf("Expected high score reset, got %d", high)
	}

	bob, _ := store.TopScores("bob", 10)
	if len(bob) != 1 {
		t.Error("Other scopes should not be affected by clearing local")
	}
}
