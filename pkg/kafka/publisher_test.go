package kafka

import (
	"context"
	"testing"

	"github.com/Shopify/sarama"
	"github.com/Shopify/sarama/mocks"
	"github.com/stretchr/testify/require"
	"github.com/timebank-lab/backend/pkg/pubsub"
)

func TestPublisher_Publish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		require.Equal(t, `{"id":"a1"}`, string(val))
		return nil
	})

	p := newPublisher("test", producer)
	err := p.Publish(context.Background(), "ACTIVITY_CREATED", &pubsub.Pack{
		Key: []byte("user1"),
		Msg: []byte(`{"id":"a1"}`),
	})
	require.NoError(t, err)
	require.NoError(t, p.Stop(context.Background()))
}

func TestPublisher_PublishFailed(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := newPublisher("test", producer)
	err := p.Publish(context.Background(), "ACTIVITY_CREATED", &pubsub.Pack{Msg: []byte("{}")})
	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
}

func TestPublisher_PublishNilPack(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)

	p := newPublisher("test", producer)
	require.Error(t, p.Publish(context.Background(), "ACTIVITY_CREATED", nil))
	require.NoError(t, p.Stop(context.Background()))
}
