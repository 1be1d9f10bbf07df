package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"autojoin-server/internal/clients/kafka"
	"autojoin-server/internal/observability"

	"github.com/google/uuid"
)

const forwardQueueLen = 256

// Publisher is the optional durable fan-out of events
type Publisher interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Broadcaster is the event sink of the automation. Delivery is best-effort and never blocks the caller.
type Broadcaster struct {
	hub       *Hub
	publisher Publisher
	forward   chan kafka.EventMessage
	logger    *observability.Logger
	now       func() time.Time
}

// NewBroadcaster creates a broadcaster. publisher may be nil.
func NewBroadcaster(hub *Hub, publisher Publisher, logger *observability.Logger) *Broadcaster {
	b := &Broadcaster{
		hub:    hub,
		logger: logger,
		now:    time.Now,
	}
	if publisher != nil {
		b.publisher = publisher
		b.forward = make(chan kafka.EventMessage, forwardQueueLen)
	}
	return b
}

// Broadcast delivers an event of kind with payload to websocket clients and queues it for the publisher
func (b *Broadcaster) Broadcast(ctx context.Context, kind string, payload any) {
	ev := Event{
		ID:        uuid.New().String(),
		Type:      kind,
		Data:      payload,
		Timestamp: b.now().UTC(),
	}

	msg, err := json.Marshal(ev)
	if err != nil {
		b.logger.Error(ctx, fmt.Sprintf("failed to encode %s event", kind), err)
		return
	}
	if b.hub != nil {
		b.hub.Publish(msg)
	}

	if b.forward == nil {
		return
	}
	select {
	case b.forward <- kafka.EventMessage{ID: ev.ID, Type: ev.Type, Data: ev.Data, Timestamp: ev.Timestamp}:
	default:
		b.logger.Warn(ctx, fmt.Sprintf("event queue full, dropping %s event", kind))
	}
}

// Run forwards queued events to the publisher until ctx is done
func (b *Broadcaster) Run(ctx context.Context) error {
	if b.forward == nil {
		<-ctx.Done()
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-b.forward:
			if err := b.publisher.PublishEvent(ctx, ev); err != nil {
				b.logger.WarnWithError(ctx, "failed to forward event", err)
			}
		}
	}
}
