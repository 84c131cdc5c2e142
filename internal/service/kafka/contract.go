package kafka

import "context"

// EventPublisher is the delivery-event stream: one message per note that
// was successfully delivered to its user.
type EventPublisher interface {
	Publish(ctx context.Context, key, value []byte) error
	Close() error
}
