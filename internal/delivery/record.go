package delivery

import (
	"context"
	"time"
)

// Record is the stored summary of one processed delivery. It deliberately
// carries no raw body and no signature material.
type Record struct {
	ID         int64     `json:"id,omitempty"`
	Event      string    `json:"event"`
	Action     string    `json:"action,omitempty"`
	Repository string    `json:"repository,omitempty"`
	Sender     string    `json:"sender,omitempty"`
	DeliveryID string    `json:"deliveryId,omitempty"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// NoopRecorder discards records. Used when no database is configured so the
// ingestion pipeline works without any persistence at all.
type NoopRecorder struct{}

func (NoopRecorder) Record(_ context.Context, _ Record) error { return nil }
