package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/Shopify/sarama"
	"github.com/timebank-lab/backend/pkg/pubsub"
	"github.com/timebank-lab/backend/pkg/xcontext"
)

type publisher struct {
	clientID string
	producer sarama.SyncProducer
}

// NewPublisher connects a synchronous producer to brokerAddrs. Messages are
// acknowledged by the partition leader before Publish returns.
func NewPublisher(clientID string, brokerAddrs []string) (*publisher, error) {
	config := sarama.NewConfig()
	config.ClientID = clientID
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(brokerAddrs, config)
	if err != nil {
		return nil, err
	}

	return newPublisher(clientID, producer), nil
}

func newPublisher(clientID string, producer sarama.SyncProducer) *publisher {
	return &publisher{clientID: clientID, producer: producer}
}

func (p *publisher) Stop(ctx context.Context) error {
	return p.producer.Close()
}

// Publish sends pack to topic. Packs of the same key land on the same
// partition, so the events of one receiver keep their order.
func (p *publisher) Publish(ctx context.Context, topic string, pack *pubsub.Pack) error {
	if pack == nil {
		return errors.New("nil pack")
	}

	m := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(pack.Msg),
		Headers: []sarama.RecordHeader{
			{Key: []byte("client_id"), Value: []byte(p.clientID)},
		},
	}

	if len(pack.Key) > 0 {
		m.Key = sarama.ByteEncoder(pack.Key)
	}

	partition, offset, err := p.producer.SendMessage(m)
	if err != nil {
		return fmt.Errorf("cannot send message to %s: %w", topic, err)
	}

	xcontext.Logger(ctx).Debugf("Published to %s at partition %d offset %d", topic, partition, offset)
	return nil
}
