package events

import "context"

type noopPublisher struct{}

// NewNoopPublisher is used when event publishing is disabled (no brokers
// configured). Reservations proceed exactly as with a real publisher.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishBookingCreated(ctx context.Context, event BookingCreated) error {
	return nil
}

func (noopPublisher) PublishBookingCancelled(ctx context.Context, event BookingCancelled) error {
	return nil
}

func (noopPublisher) Close() error {
	return nil
}
