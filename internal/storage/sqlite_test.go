package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/shipshoot/internal/highscore"
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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreEmptyTable(t *testing.T) {
	store := openTestStore(t)

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty table, got %v", entries)
	}
}

func TestStoreSaveReplacesTable(t *testing.T) {
	store := openTestStore(t)

	first := []highscore.Entry{{Name: "ACE", Score: 300}, {Name: "BOB", Score: 200}, {Name: "CAT", Score: 100}}
	if err := store.Save(first); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	second := []highscore.Entry{{Name: "DOT", Score: 900}, {Name: "ACE", Score: 300}}
	if err := store.Save(second); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(entries) != len(second) {
		t.Fatalf("Expected %d entries, got %d", len(second), len(entries))
	}
	for i := range second {
		if entries[i] != second[i] {
			t.Errorf("entry %d = %+v, expected %+v", i, entries[i], second[i])
		}
	}
}

func TestStoreRecordGame(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	store.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	for _, score := range []int{50, 200, 100} {
		if err := store.RecordGame("ACE", score); err != nil {
			t.Fatalf("RecordGame() failed: %v", err)
		}
	}

	recent, err := store.RecentGames(10)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 games, got %d", len(recent))
	}
	if recent[0].Score != 100 {
		t.Errorf("Expected newest game first, got score %d", recent[0].Score)
	}
	if recent[0].RunID == "" || recent[0].RunID == recent[1].RunID {
		t.Error("Each game should get its own run id")
	}
	if recent[0].GameID != GameID {
		t.Errorf("GameID = %q, expected %q", recent[0].GameID, GameID)
	}

}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 {
		t.Errorf("Expected zero stats, got %+v", stats)
	}

	for _, score := range []int{100, 200, 300} {
		if err := store.RecordGame("ACE", score); err != nil {
			t.Fatalf("RecordGame() failed: %v", err)
		}
	}

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, expected 3", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.TotalScore != 600 {
		t.Errorf("TotalScore = %d, expected 600", stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearHistoryKeepsTable(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save([]highscore.Entry{{Name: "ACE", Score: 10}}); err != nil {
		t.Fatal(err)
	}
	if err := store.RecordGame("ACE", 10); err != nil {
		t.Fatal(err)
	}
	if err := store.ClearHistory(); err != nil {
		t.Fatalf("ClearHistory() failed: %v", err)
	}

	recent, _ := store.RecentGames(0)
	if len(recent) != 0 {
		t.Errorf("Expected no history, got %d rows", len(recent))
	}
	entries, _ := store.Load()
	if len(entries) != 1 {
		t.Errorf("Expected table to survive, got %v", entries)
	}
}

func TestStoreBehindSharedStore(t *testing.T) {
	store := openTestStore(t)

	shared, err := highscore.NewSharedStore(store)
	if err != nil {
		t.Fatalf("NewSharedStore() failed: %v", err)
	}
	if _, err := shared.Submit(highscore.Entry{Name: "ACE", Score: 42}); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if err := shared.RecordGame("ACE", 42); err != nil {
		t.Fatalf("RecordGame() failed: %v", err)
	}

	entries, _ := store.Load()
	if len(entries) != 1 || entries[0].Score != 42 {
		t.Errorf("Expected submitted entry in database, got %v", entries)
	}
	recent, _ := store.RecentGames(1)
	if len(recent) != 1 {
		t.Error("Expected forwarded history row")
	}
}
