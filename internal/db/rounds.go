package db

import (
	"fmt"
	"time"
)

func (d *DB) CreateRound(id string, startedAt time.Time, roundDurationMs int) error {
	_, err := d.conn.Exec(`
		INSERT INTO rounds (id, started_at, round_duration_ms)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING
	`, id, startedAt, roundDurationMs)
	if err != nil {
		return fmt.Errorf("creating round: %w", err)
	}
	return nil
}

func (d *DB) EndRound(id string, endedAt time.Time, playedMs int, aborted bool) error {
	_, err := d.conn.Exec(`
		UPDATE rounds SET ended_at = $2, played_ms = $3, aborted = $4 WHERE id = $1
	`, id, endedAt, playedMs, aborted)
	if err != nil {
		return fmt.Errorf("ending round: %w", err)
	}
	return nil
}
