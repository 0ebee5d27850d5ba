package storage

import (
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
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveSession(Session{Variant: "classic", Moves: 3}); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	sessions, err := store.RecentSessions("classic", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 || sessions[0].Moves != 3 {
		t.Errorf("sessions after reopen = %+v, want one with 3 moves", sessions)
	}
}

func TestSaveAndRecentSessions(t *testing.T) {
	store := openTestStore(t)

	saved := []Session{
		{Variant: "classic", Moves: 5, Rejected: 2, Cascades: 1, CellsCleared: 18, Seed: 7, Duration: 60},
		{Variant: "classic", Frontend: "console", Moves: 9, CellsCleared: 30},
		{Variant: "large", Moves: 12, Cascades: 4, CellsCleared: 50},
	}
	for _, sess := range saved {
		if _, err := store.SaveSession(sess); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	classic, err := store.RecentSessions("classic", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(classic) != 2 {
		t.Fatalf("got %d classic sessions, want 2", len(classic))
	}

	// Newest first.
	if classic[0].Moves != 9 || classic[0].Frontend != "console" {
		t.Errorf("newest = %+v, want the console session with 9 moves", classic[0])
	}
	if classic[1].Frontend != "tui" {
		t.Errorf("default Frontend = %q, want tui", classic[1].Frontend)
	}
	if classic[1].Seed != 7 || classic[1].Rejected != 2 || classic[1].Duration != 60 {
		t.Errorf("round trip = %+v", classic[1])
	}
	if classic[1].CreatedAt.IsZero() {
		t.Error("CreatedAt not parsed")
	}

	all, err := store.RecentSessions("", 2)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(all) != 2 || all[0].Variant != "large" {
		t.Errorf("all sessions = %+v, want 2 starting with large", all)
	}
}

func TestVariantStats(t *testing.T) {
	store := openTestStore(t)

	for _, sess := range []Session{
		{Variant: "classic", Moves: 4, Cascades: 1, CellsCleared: 12},
		{Variant: "classic", Moves: 8, Cascades: 3, CellsCleared: 30},
	} {
		if _, err := store.SaveSession(sess); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	stats, err := store.VariantStats("classic")
	if err != nil {
		t.Fatalf("VariantStats() failed: %v", err)
	}
	if stats.Sessions != 2 {
		t.Errorf("Sessions = %d, want 2", stats.Sessions)
	}
	if stats.TotalMoves != 12 {
		t.Errorf("TotalMoves = %d, want 12", stats.TotalMoves)
	}
	if stats.TotalCleared != 42 {
		t.Errorf("TotalCleared = %d, want 42", stats.TotalCleared)
	}
	if stats.MaxCascades != 3 {
		t.Errorf("MaxCascades = %d, want 3", stats.MaxCascades)
	}
	if stats.AvgMoves != 6 {
		t.Errorf("AvgMoves = %v, want 6", stats.AvgMoves)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	empty, err := store.VariantStats("large")
	if err != nil {
		t.Fatalf("VariantStats() failed: %v", err)
	}
	if empty.Sessions != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestAllVariantStatsAndClear(t *testing.T) {
	store := openTestStore(t)

	for _, v := range []string{"classic", "classic", "large"} {
		if _, err := store.SaveSession(Session{Variant: v, Moves: 1}); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	all, err := store.AllVariantStats()
	if err != nil {
		t.Fatalf("AllVariantStats() failed: %v", err)
	}
	if len(all) != 2 || all["classic"].Sessions != 2 || all["large"].Sessions != 1 {
		t.Errorf("AllVariantStats() = %v", all)
	}

	if err := store.ClearSessions("classic"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}
	left, err := store.RecentSessions("", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(left) != 1 || left[0].Variant != "large" {
		t.Errorf("after clear = %+v, want only large", left)
	}
}
