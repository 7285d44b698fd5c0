package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jestes5111/lol-ranked-data-collector/internal/model"
)

// InsertBatch stores a finished batch and its rows in one transaction,
// returning the new batch id. Row JSON preserves explicit nulls, so a
// reloaded batch carries the same column set as the stored one.
func (db *DB) InsertBatch(meta model.BatchMeta, b *model.Batch) (int64, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	colsJSON, err := json.Marshal(b.Columns)
	if err != nil {
		return 0, fmt.Errorf("marshal columns: %w", err)
	}

	res, err := tx.Exec(`
		INSERT INTO batches(summoner_name, region, queue_id, created_at, match_count, columns)
		VALUES (?, ?, ?, ?, ?, ?)`,
		meta.SummonerName, meta.Region, meta.QueueID, meta.CreatedAt,
		len(b.Rows), string(colsJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("insert batch: %w", err)
	}
	batchID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO batch_rows(batch_id, row_index, match_id, data)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for i, row := range b.Rows {
		data, err := json.Marshal(row)
		if err != nil {
			return 0, fmt.Errorf("marshal row %d: %w", i, err)
		}
		matchID := ""
		if i < len(b.MatchIDs) {
			matchID = b.MatchIDs[i]
		}
		if _, err := stmt.Exec(batchID, i, matchID, string(data)); err != nil {
			return 0, fmt.Errorf("insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return batchID, nil
}

// ListBatches returns all stored batches, newest first.
func (db *DB) ListBatches() ([]model.BatchMeta, error) {
	rows, err := db.conn.Query(`
		SELECT id, summoner_name, region, queue_id, created_at, match_count
		FROM batches ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.BatchMeta
	for rows.Next() {
		var m model.BatchMeta
		if err := rows.Scan(&m.ID, &m.SummonerName, &m.Region, &m.QueueID,
			&m.CreatedAt, &m.MatchCount); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// GetBatch loads one stored batch by id. Returns (nil, nil, nil) when the
// id is unknown.
func (db *DB) GetBatch(id int64) (*model.BatchMeta, *model.Batch, error) {
	var meta model.BatchMeta
	var colsJSON string
	err := db.conn.QueryRow(`
		SELECT id, summoner_name, region, queue_id, created_at, match_count, columns
		FROM batches WHERE id = ?`, id).
		Scan(&meta.ID, &meta.SummonerName, &meta.Region, &meta.QueueID,
			&meta.CreatedAt, &meta.MatchCount, &colsJSON)
	if err == sql.ErrNoRows {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	b := &model.Batch{}
	if err := json.Unmarshal([]byte(colsJSON), &b.Columns); err != nil {
		return nil, nil, fmt.Errorf("unmarshal columns: %w", err)
	}

	rows, err := db.conn.Query(`
		SELECT match_id, data FROM batch_rows
		WHERE batch_id = ? ORDER BY row_index`, id)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var matchID, data string
		if err := rows.Scan(&matchID, &data); err != nil {
			return nil, nil, err
		}
		row := make(model.Row)
		if err := json.Unmarshal([]byte(data), &row); err != nil {
			return nil, nil, fmt.Errorf("unmarshal row: %w", err)
		}
		b.MatchIDs = append(b.MatchIDs, matchID)
		b.Rows = append(b.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return &meta, b, nil
}
