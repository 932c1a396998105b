package delivery

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store persists delivery records in Postgres. Schema lives in db/schema.sql.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Insert(ctx context.Context, rec Record) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO webhook_deliveries (event, action, repository, sender, delivery_id, received_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.Event, rec.Action, rec.Repository, rec.Sender, rec.DeliveryID,
		pgtype.Timestamptz{Time: rec.ReceivedAt, Valid: true},
	)
	if err != nil {
		return fmt.Errorf("insert delivery: %w", err)
	}
	return nil
}

func (s *Store) List(ctx context.Context, limit, offset int) ([]Record, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, event, action, repository, sender, delivery_id, received_at
		 FROM webhook_deliveries
		 ORDER BY received_at DESC, id DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var receivedAt pgtype.Timestamptz
		if err := rows.Scan(&rec.ID, &rec.Event, &rec.Action, &rec.Repository,
			&rec.Sender, &rec.DeliveryID, &receivedAt); err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		rec.ReceivedAt = receivedAt.Time
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM webhook_deliveries`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count deliveries: %w", err)
	}
	return total, nil
}
