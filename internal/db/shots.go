package db

import (
	"database/sql"
	"fmt"
	"time"
)

type Shot struct {
	RoundID    string
	Hit        bool
	TargetID   int // 0 on a miss
	X          float64
	Y          float64
	ReactionMs int // 0 on a miss
	TimeLeftMs int
	ShotAt     time.Time
}

const insertShot = `
	INSERT INTO shots (round_id, hit, target_id, x, y, reaction_ms, time_left_ms, shot_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

func (d *DB) RecordShot(s Shot) error {
	if _, err := d.conn.Exec(insertShot, shotArgs(s)...); err != nil {
		return fmt.Errorf("recording shot: %w", err)
	}
	return nil
}

func (d *DB) BatchRecordShots(shots []Shot) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertShot)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for _, s := range shots {
		if _, err := stmt.Exec(shotArgs(s)...); err != nil {
			return fmt.Errorf("recording shot in batch: %w", err)
		}
	}

	return tx.Commit()
}

func shotArgs(s Shot) []any {
	var targetID, reaction sql.NullInt64
	if s.Hit {
		targetID = sql.NullInt64{Int64: int64(s.TargetID), Valid: true}
		reaction = sql.NullInt64{Int64: int64(s.ReactionMs), Valid: true}
	}
	return []any{s.RoundID, s.Hit, targetID, s.X, s.Y, reaction, s.TimeLeftMs, s.ShotAt}
}
