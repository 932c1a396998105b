package webhook

import (
	"context"
	"log/slog"
	"time"

	"github.com/ethanwang/hookpulse/internal/apperror"
	"github.com/ethanwang/hookpulse/internal/delivery"
)

// EventDispatcher routes decoded envelopes; *Dispatcher is the production
// implementation.
type EventDispatcher interface {
	Dispatch(ctx context.Context, kind Kind, env *Envelope) Result
}

// Recorder keeps a summary of processed deliveries. Recording is best-effort:
// a recorder failure never fails the request.
type Recorder interface {
	Record(ctx context.Context, rec delivery.Record) error
}

// Service runs the ingestion pipeline: signature gate, then decode, then
// dispatch. The shared secret is injected at construction and read-only for
// the life of the process; everything else is request-scoped.
type Service struct {
	secret     []byte
	dispatcher EventDispatcher
	recorder   Recorder
	log        *slog.Logger
}

// NewService builds the pipeline. An empty secret disables signature
// verification; the caller is expected to have warned about that at startup.
func NewService(secret []byte, dispatcher EventDispatcher, recorder Recorder, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		secret:     secret,
		dispatcher: dispatcher,
		recorder:   recorder,
		log:        log,
	}
}

// Process handles one raw delivery. Authentication and decode failures are
// terminal: nothing is decoded before the signature gate passes, and nothing
// is dispatched unless decoding succeeds.
func (s *Service) Process(ctx context.Context, body []byte, signature, eventHeader, deliveryID string) (*Result, error) {
	kind := KindOf(eventHeader)

	if len(s.secret) > 0 {
		if signature == "" {
			s.log.Warn("missing webhook signature", "kind", kind.String())
			return nil, apperror.Unauthorized("missing signature")
		}
		if !VerifySignature(s.secret, body, signature) {
			s.log.Warn("invalid webhook signature", "kind", kind.String())
			return nil, apperror.Unauthorized("invalid signature")
		}
	}

	env, err := DecodeEnvelope(body)
	if err != nil {
		s.log.Error("failed to parse webhook payload", "kind", kind.String(), "error", err)
		return nil, apperror.BadRequest("malformed payload")
	}

	s.log.Info("received event", "kind", kind.String(), "repository", env.RepoFullName())

	result := s.dispatcher.Dispatch(ctx, kind, env)

	if s.recorder != nil {
		rec := delivery.Record{
			Event:      kind.String(),
			Action:     env.ActionOrEmpty(),
			Repository: env.RepoFullName(),
			Sender:     env.SenderLogin(),
			DeliveryID: deliveryID,
			ReceivedAt: time.Now().UTC(),
		}
		if err := s.recorder.Record(ctx, rec); err != nil {
			s.log.Error("failed to record delivery", "kind", kind.String(), "error", err)
		}
	}

	return &result, nil
}
