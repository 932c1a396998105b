package river

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	riverlib "github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// NewClient creates a River client over the given pool with the given
// workers bundle. Delivery recording is low-volume, so a small worker count
// on the default queue is enough.
func NewClient(pool *pgxpool.Pool, workers *riverlib.Workers) (*riverlib.Client[pgx.Tx], error) {
	return riverlib.NewClient(riverpgxv5.New(pool), &riverlib.Config{
		Queues: map[string]riverlib.QueueConfig{
			riverlib.QueueDefault: {MaxWorkers: 2},
		},
		Workers: workers,
	})
}
