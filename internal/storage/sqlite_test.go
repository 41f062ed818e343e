package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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
	if _, err := store.SaveRound(Round{GameID: "minigolf", CourseID: "classic", Strokes: 20, Par: 17}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	best, ok, err := store.BestRound("classic")
	if err != nil || !ok || best != 20 {
		t.Errorf("BestRound() = %d, %v, %v; expected 20 after reopen", best, ok, err)
	}
}

func TestStoreBestRounds(t *testing.T) {
	store := openTestStore(t)

	for _, strokes := range []int{22, 17, 30, 17} {
		if _, err := store.SaveRound(Round{GameID: "minigolf", CourseID: "classic", Strokes: strokes, Par: 17}); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}
	if _, err := store.SaveRound(Round{GameID: "minigolf", CourseID: "alley", Strokes: 5, Par: 5}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	rounds, err := store.BestRounds("classic", 3)
	if err != nil {
		t.Fatalf("BestRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("expected 3 rounds, got %d", len(rounds))
	}

	want := []int{17, 17, 22}
	for i, r := range rounds {
		if r.Strokes != want[i] {
			t.Errorf("round %d strokes = %d, expected %d", i, r.Strokes, want[i])
		}
		if r.CourseID != "classic" || r.GameID != "minigolf" {
			t.Errorf("round %d = %+v", i, r)
		}
	}
	if rounds[0].ID > rounds[1].ID {
		t.Error("ties should keep the earlier round first")
	}
	if rounds[2].Diff() != 5 {
		t.Errorf("Diff() = %d, expected 5", rounds[2].Diff())
	}
	if rounds[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}
}

func TestStoreRejectsEmptyResults(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRound(Round{CourseID: "classic", Strokes: 0}); err == nil {
		t.Error("expected error for a round without strokes")
	}
	if _, err := store.SaveHole(HoleResult{CourseID: "classic", Hole: 1, Strokes: -1}); err == nil {
		t.Error("expected error for a hole without strokes")
	}
}

func TestStoreBestRoundEmpty(t *testing.T) {
	store := openTestStore(t)

	best, ok, err := store.BestRound("classic")
	if err != nil {
		t.Fatalf("BestRound() failed: %v", err)
	}
	if ok || best != 0 {
		t.Errorf("BestRound() = %d, %v; expected no result", best, ok)
	}
}

func TestStoreHoleBests(t *testing.T) {
	store := openTestStore(t)

	results := []HoleResult{
		{CourseID: "classic", Hole: 1, Par: 2, Strokes: 3},
		{CourseID: "classic", Hole: 1, Par: 2, Strokes: 1},
		{CourseID: "classic", Hole: 2, Par: 3, Strokes: 4},
		{CourseID: "alley", Hole: 1, Par: 2, Strokes: 2},
	}
	for _, r := range results {
		if _, err := store.SaveHole(r); err != nil {
			t.Fatalf("SaveHole() failed: %v", err)
		}
	}

	bests, err := store.HoleBests("classic")
	if err != nil {
		t.Fatalf("HoleBests() failed: %v", err)
	}

	want := []HoleBest{
		{CourseID: "classic", Hole: 1, Par: 2, Best: 1, Played: 2, AvgStrokes: 2},
		{CourseID: "classic", Hole: 2, Par: 3, Best: 4, Played: 1, AvgStrokes: 4},
	}
	if len(bests) != len(want) {
		t.Fatalf("HoleBests() = %+v", bests)
	}
	for i := range want {
		if bests[i] != want[i] {
			t.Errorf("hole %d = %+v, expected %+v", i, bests[i], want[i])
		}
	}

	best, ok, err := store.BestHole("classic", 1)
	if err != nil || !ok || best != 1 {
		t.Errorf("BestHole() = %d, %v, %v; expected 1", best, ok, err)
	}
	if _, ok, _ := store.BestHole("classic", 9); ok {
		t.Error("BestHole() for an unplayed hole should report no result")
	}
}

func TestStoreCourseStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(Round{GameID: "minigolf", CourseID: "classic", Strokes: 20, Par: 17}) //nolint:errcheck
	store.SaveRound(Round{GameID: "minigolf", CourseID: "classic", Strokes: 16, Par: 17}) //nolint:errcheck
	store.SaveHole(HoleResult{CourseID: "classic", Hole: 1, Par: 2, Strokes: 1})          //nolint:errcheck
	store.SaveHole(HoleResult{CourseID: "classic", Hole: 2, Par: 3, Strokes: 3})          //nolint:errcheck

	stats, err := store.GetCourseStats("classic")
	if err != nil {
		t.Fatalf("GetCourseStats() failed: %v", err)
	}

	if stats.RoundsPlayed != 2 || stats.BestRound != 16 || stats.AvgStrokes != 18 {
		t.Errorf("round stats = %+v", stats)
	}
	if stats.HolesPlayed != 2 || stats.HolesInOne != 1 {
		t.Errorf("hole stats = %+v", stats)
	}
	if time.Since(stats.LastPlayed) > 24*time.Hour {
		t.Errorf("LastPlayed = %v, expected recent", stats.LastPlayed)
	}

	empty, err := store.GetCourseStats("nowhere")
	if err != nil {
		t.Fatalf("GetCourseStats() failed: %v", err)
	}
	if empty.RoundsPlayed != 0 || empty.HolesPlayed != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestStoreCourseIDsAndClear(t *testing.T) {
	store := openTestStore(t)

	store.SaveHole(HoleResult{CourseID: "classic", Hole: 1, Par: 2, Strokes: 2})      //nolint:errcheck
	store.SaveRound(Round{GameID: "minigolf", CourseID: "alley", Strokes: 7, Par: 5}) //nolint:errcheck

	ids, err := store.CourseIDs()
	if err != nil {
		t.Fatalf("CourseIDs() failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "alley" || ids[1] != "classic" {
		t.Errorf("CourseIDs() = %v", ids)
	}

	if err := store.ClearCourse("classic"); err != nil {
		t.Fatalf("ClearCourse() failed: %v", err)
	}
	bests, _ := store.HoleBests("classic")
	if len(bests) != 0 {
		t.Errorf("expected classic cleared, got %+v", bests)
	}
	if _, ok, _ := store.BestRound("alley"); !ok {
		t.Error("ClearCourse removed another course")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	store, err := Open("~/.arcade/test_expand.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	home, _ := os.UserHomeDir()
	if _, err := os.Stat(filepath.Join(home, ".arcade", "test_expand.db")); err != nil {
		t.Errorf("expanded database not created: %v", err)
	}
}

func TestParseTime(t *testing.T) {
	ref := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	tests := []struct {
		in   any
		want time.Time
	}{
		{ref, ref},
		{"2024-05-01 12:30:00", ref},
		{"2024-05-01T12:30:00Z", ref},
		{"garbage", time.Time{}},
		{nil, time.Time{}},
	}

	for _, tt := range tests {
		if got := parseTime(tt.in); !got.Equal(tt.want) {
			t.Errorf("parseTime(%v) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}
