package storage

import (
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreStartsEmpty(t *testing.T) {
	store := openTestStore(t)

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs, got %d", len(runs))
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats != (Stats{}) {
		t.Errorf("Expected zero stats, got %+v", stats)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	start := time.UnixMilli(1_700_000_000_000)

	want := Run{
		Score:     4,
		Best:      4,
		Ticks:     812,
		Cause:     "pipe",
		StartedAt: start,
		EndedAt:   start.Add(13*time.Second + 500*time.Millisecond),
	}

	id, err := store.SaveRun(want)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id == 0 {
		t.Error("Expected a non-zero ID")
	}

	runs, err := store.RecentRuns(1)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}

	got := runs[0]
	want.ID = id
	if !got.StartedAt.Equal(want.StartedAt) || !got.EndedAt.Equal(want.EndedAt) {
		t.Errorf("times = %v..%v, expected %v..%v", got.StartedAt, got.EndedAt, want.StartedAt, want.EndedAt)
	}
	got.StartedAt, got.EndedAt = want.StartedAt, want.EndedAt
	if got != want {
		t.Errorf("run = %+v, expected %+v", got, want)
	}
	if got.Duration() != 13500*time.Millisecond {
		t.Errorf("Duration() = %v", got.Duration())
	}
}

func saveScores(t *testing.T, store *Store, scores ...int) {
	t.Helper()
	best := 0
	for _, sc := range scores {
		best = max(best, sc)
		if _, err := store.SaveRun(Run{Score: sc, Best: best, Ticks: 100, Cause: "ground"}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
}

func TestStoreOrdering(t *testing.T) {
	store := openTestStore(t)
	saveScores(t, store, 3, 7, 1, 7, 5)

	recent, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 || recent[0].Score != 5 || recent[1].Score != 7 || recent[2].Score != 1 {
		t.Errorf("RecentRuns should be newest first, got %+v", recent)
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	wantScores := []int{7, 7, 5, 3, 1}
	if len(top) != len(wantScores) {
		t.Fatalf("Expected %d runs, got %d", len(wantScores), len(top))
	}
	for i, sc := range wantScores {
		if top[i].Score != sc {
			t.Errorf("top[%d].Score = %d, expected %d", i, top[i].Score, sc)
		}
	}
	if top[0].ID > top[1].ID {
		t.Error("tied scores should keep play order")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)
	saveScores(t, store, 2, 4, 6)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Best != 6 || stats.Average != 4 || stats.TotalTicks != 300 {
		t.Errorf("Stats() = %+v", stats)
	}
}

func TestStoresAreIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)
	saveScores(t, a, 1)

	runs, err := b.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Error("in-memory stores should not share data")
	}
}
