package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/picotrek/internal/sst"
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
	dbPath := filepath.Join(tmpDir, "test.db")

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
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "records.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsRecords(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRecord(Record{Outcome: "victory", Stardate: 2540, Days: 12}); err != nil {
		t.Fatalf("SaveRecord() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	records, err := store.RecentRecords(10)
	if err != nil {
		t.Fatalf("RecentRecords() failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("Expected 1 record after reopening, got %d", len(records))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	want := Record{
		Outcome:           "destroyed",
		Stardate:          2531.5,
		Days:              4.25,
		HostilesDestroyed: 3,
		HostilesRemaining: 9,
		BasesRemaining:    4,
		Energy:            -12.5,
	}
	id, err := store.SaveRecord(want)
	if err != nil {
		t.Fatalf("SaveRecord() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveRecord() id = %d, expected a positive ID", id)
	}

	records, err := store.RecentRecords(10)
	if err != nil {
		t.Fatalf("RecentRecords() failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}

	got := records[0]
	want.ID = id
	got.CreatedAt = want.CreatedAt
	if got != want {
		t.Errorf("RecentRecords()[0] = %+v, expected %+v", got, want)
	}
}

func TestStoreRecentOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 25 {
		if _, err := store.SaveRecord(Record{Outcome: "self-destruct", Days: float64(i)}); err != nil {
			t.Fatalf("SaveRecord() failed: %v", err)
		}
	}

	records, err := store.RecentRecords(5)
	if err != nil {
		t.Fatalf("RecentRecords() failed: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("Expected 5 records, got %d", len(records))
	}
	if records[0].Days != 24 || records[4].Days != 20 {
		t.Errorf("Expected newest first, got days %v .. %v", records[0].Days, records[4].Days)
	}

	// Default limit
	records, err = store.RecentRecords(0)
	if err != nil {
		t.Fatalf("RecentRecords(0) failed: %v", err)
	}
	if len(records) != 20 {
		t.Errorf("Expected 20 records, got %d", len(records))
	}
}

func TestStoreSaveSummary(t *testing.T) {
	store := openTestStore(t)

	var rec sst.Recorder = store
	err := rec.SaveSummary(sst.Summary{
		Outcome:           sst.OutcomeVictory,
		Stardate:          2555.5,
		Days:              30,
		HostilesDestroyed: 14,
		BasesRemaining:    6,
		Energy:            812,
	})
	if err != nil {
		t.Fatalf("SaveSummary() failed: %v", err)
	}

	records, err := store.RecentRecords(1)
	if err != nil {
		t.Fatalf("RecentRecords() failed: %v", err)
	}
	if len(records) != 1 || records[0].Outcome != "victory" || !records[0].Won() {
		t.Errorf("RecentRecords() = %+v, expected one victory", records)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 0 || stats.FastestVictory != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Stats() on empty store = %+v, expected zero values", stats)
	}

	records := []Record{
		{Outcome: "victory", Days: 40, HostilesDestroyed: 15},
		{Outcome: "treason", Days: 3, HostilesDestroyed: 1},
		{Outcome: "victory", Days: 25.5, HostilesDestroyed: 12},
	}
	for _, r := range records {
		if _, err := store.SaveRecord(r); err != nil {
			t.Fatalf("SaveRecord() failed: %v", err)
		}
	}

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 3 {
		t.Errorf("Games = %d, expected 3", stats.Games)
	}
	if stats.Victories != 2 {
		t.Errorf("Victories = %d, expected 2", stats.Victories)
	}
	if stats.HostilesDestroyed != 28 {
		t.Errorf("HostilesDestroyed = %d, expected 28", stats.HostilesDestroyed)
	}
	if stats.FastestVictory != 25.5 {
		t.Errorf("FastestVictory = %v, expected 25.5", stats.FastestVictory)
	}
}

func TestStoreClearRecords(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRecord(Record{Outcome: "destroyed"}); err != nil {
		t.Fatalf("SaveRecord() failed: %v", err)
	}
	if err := store.ClearRecords(); err != nil {
		t.Fatalf("ClearRecords() failed: %v", err)
	}

	records, err := store.RecentRecords(10)
	if err != nil {
		t.Fatalf("RecentRecords() failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected no records after clear, got %d", len(records))
	}
}
