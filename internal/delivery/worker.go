package delivery

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	riverlib "github.com/riverqueue/river"
)

// RecordArgs are the arguments for the delivery record job.
type RecordArgs struct {
	Event      string    `json:"event"`
	Action     string    `json:"action"`
	Repository string    `json:"repository"`
	Sender     string    `json:"sender"`
	DeliveryID string    `json:"delivery_id"`
	ReceivedAt time.Time `json:"received_at"`
}

func (RecordArgs) Kind() string { return "delivery_record" }

func argsFromRecord(rec Record) RecordArgs {
	return RecordArgs{
		Event:      rec.Event,
		Action:     rec.Action,
		Repository: rec.Repository,
		Sender:     rec.Sender,
		DeliveryID: rec.DeliveryID,
		ReceivedAt: rec.ReceivedAt,
	}
}

func (a RecordArgs) record() Record {
	return Record{
		Event:      a.Event,
		Action:     a.Action,
		Repository: a.Repository,
		Sender:     a.Sender,
		DeliveryID: a.DeliveryID,
		ReceivedAt: a.ReceivedAt,
	}
}

// RecordWorker writes delivery records from the queue into the store.
type RecordWorker struct {
	riverlib.WorkerDefaults[RecordArgs]
	store *Store
}

func NewRecordWorker(store *Store) *RecordWorker {
	return &RecordWorker{store: store}
}

func (w *RecordWorker) Work(ctx context.Context, job *riverlib.Job[RecordArgs]) error {
	return w.store.Insert(ctx, job.Args.record())
}

// Enqueuer hands records to River instead of writing synchronously, keeping
// the webhook response path free of database latency.
type Enqueuer struct {
	client *riverlib.Client[pgx.Tx]
}

func NewEnqueuer(client *riverlib.Client[pgx.Tx]) *Enqueuer {
	return &Enqueuer{client: client}
}

func (e *Enqueuer) Record(ctx context.Context, rec Record) error {
	_, err := e.client.Insert(ctx, argsFromRecord(rec), nil)
	return err
}
