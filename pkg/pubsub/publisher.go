package pubsub

import "context"

// Pack is a single keyed message of a topic.
type Pack struct {
	Key []byte
	Msg []byte
}

type Publisher interface {
	Publish(ctx context.Context, topic string, pack *Pack) error
}
