package storage

import (
	"testing"

	"github.com/jestes5111/lol-ranked-data-collector/internal/model"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testBatch() (model.BatchMeta, *model.Batch) {
	meta := model.BatchMeta{
		SummonerName: "Zenith",
		Region:       "NA1",
		QueueID:      420,
		CreatedAt:    "2025-06-01 12:00:00",
		MatchCount:   2,
	}
	batch := &model.Batch{
		Columns:  []string{"assists", "item0", "kills"},
		MatchIDs: []string{"NA1_1", "NA1_2"},
		Rows: []model.Row{
			{"assists": float64(4), "item0": "Boots", "kills": float64(7)},
			{"assists": float64(1), "item0": nil, "kills": float64(2)},
		},
	}
	return meta, batch
}

func TestInsertAndGetBatch(t *testing.T) {
	db := openMemDB(t)

	meta, batch := testBatch()
	id, err := db.InsertBatch(meta, batch)
	if err != nil {
		t.Fatalf("InsertBatch: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero batch id")
	}

	gotMeta, gotBatch, err := db.GetBatch(id)
	if err != nil {
		t.Fatalf("GetBatch: %v", err)
	}
	if gotMeta == nil {
		t.Fatal("expected stored batch to exist")
	}
	if gotMeta.SummonerName != "Zenith" || gotMeta.Region != "NA1" || gotMeta.MatchCount != 2 {
		t.Errorf("unexpected meta %+v", gotMeta)
	}

	// Column order and row order survive the round trip.
	if len(gotBatch.Columns) != 3 || gotBatch.Columns[0] != "assists" || gotBatch.Columns[2] != "kills" {
		t.Errorf("unexpected columns %v", gotBatch.Columns)
	}
	if len(gotBatch.Rows) != 2 || gotBatch.MatchIDs[1] != "NA1_2" {
		t.Fatalf("unexpected rows %v / %v", gotBatch.Rows, gotBatch.MatchIDs)
	}
	if gotBatch.Rows[0]["item0"] != "Boots" {
		t.Errorf("row 0 item0 = %v", gotBatch.Rows[0]["item0"])
	}

	// Explicit nulls survive as present-but-nil, not column absence.
	v, ok := gotBatch.Rows[1]["item0"]
	if !ok {
		t.Fatal("null column dropped during round trip")
	}
	if v != nil {
		t.Errorf("expected nil, got %v", v)
	}
}

func TestGetBatchUnknownID(t *testing.T) {
	db := openMemDB(t)

	meta, batch, err := db.GetBatch(999)
	if err != nil {
		t.Fatalf("GetBatch: %v", err)
	}
	if meta != nil || batch != nil {
		t.Error("expected (nil, nil) for unknown batch id")
	}
}

func TestListBatches(t *testing.T) {
	db := openMemDB(t)

	meta, batch := testBatch()
	if _, err := db.InsertBatch(meta, batch); err != nil {
		t.Fatalf("InsertBatch: %v", err)
	}
	meta.SummonerName = "Faker#KR1"
	meta.Region = "KR"
	if _, err := db.InsertBatch(meta, batch); err != nil {
		t.Fatalf("InsertBatch: %v", err)
	}

	batches, err := db.ListBatches()
	if err != nil {
		t.Fatalf("ListBatches: %v", err)
	}
	if len(batches) != 2 {
		t.Fatalf("expected 2 batches, got %d", len(batches))
	}
	// Newest first.
	if batches[0].SummonerName != "Faker#KR1" || batches[1].SummonerName != "Zenith" {
		t.Errorf("unexpected order: %v", batches)
	}
}

func TestListBatchesEmpty(t *testing.T) {
	db := openMemDB(t)

	batches, err := db.ListBatches()
	if err != nil {
		t.Fatalf("ListBatches: %v", err)
	}
	if len(batches) != 0 {
		t.Errorf("expected no batches, got %d", len(batches))
	}
}
