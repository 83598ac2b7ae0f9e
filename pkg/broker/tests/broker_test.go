package tests

import (
	"testing"
	"time"

	"github.com/chris-alexander-pop/system-design-library/pkg/broker"
	"github.com/chris-alexander-pop/system-design-library/pkg/broker/adapters/memory"
	"github.com/chris-alexander-pop/system-design-library/pkg/test"
)

type BrokerSuite struct {
	test.Suite
	broker *memory.Broker
}

func (s *BrokerSuite) SetupTest() {
	s.Suite.SetupTest()
	s.broker = memory.New()
}

func (s *BrokerSuite) TestPublishFetchAckRoundTrip() {
	s.NoError(s.broker.EnsureStream(s.Ctx, broker.StreamConfig{
		Name:      "requests",
		Subjects:  []string{"requests.>"},
		Retention: broker.RetentionWorkQueue,
	}))

	consumer, err := s.broker.MakeDurableConsumer(s.Ctx, "requests", "workers", broker.ConsumerConfig{
		Stream:        "requests",
		FilterSubject: "requests.>",
		AckWait:       time.Second,
	})
	s.NoError(err)
	defer consumer.Close()

	s.NoError(s.broker.Publish(s.Ctx, &broker.Message{Subject: "requests.process", Payload: []byte("hello")}))

	msgs, err := consumer.Fetch(s.Ctx, 1, 500*time.Millisecond)
	s.NoError(err)
	s.Require().Len(msgs, 1)
	s.Equal("hello", string(msgs[0].Payload))

	s.NoError(consumer.Ack(s.Ctx, msgs[0]))
}

func (s *BrokerSuite) TestFetchTimesOutWithNoMessages() {
	s.NoError(s.broker.EnsureStream(s.Ctx, broker.StreamConfig{Name: "results", Subjects: []string{"results.>"}}))

	consumer, err := s.broker.MakeEphemeralConsumer(s.Ctx, "results", "req-1", broker.ConsumerConfig{
		Stream:        "results",
		FilterSubject: "results.req-1",
	})
	s.NoError(err)
	defer consumer.Close()

	msgs, err := consumer.Fetch(s.Ctx, 1, 50*time.Millisecond)
	s.NoError(err)
	s.Empty(msgs)
}

func (s *BrokerSuite) TestEphemeralConsumerIsScopedToItsRequest() {
	s.NoError(s.broker.EnsureStream(s.Ctx, broker.StreamConfig{Name: "results", Subjects: []string{"results.>"}}))

	consumerA, err := s.broker.MakeEphemeralConsumer(s.Ctx, "results", "req-a", broker.ConsumerConfig{
		Stream: "results", FilterSubject: "results.req-a",
	})
	s.NoError(err)
	defer consumerA.Close()

	consumerB, err := s.broker.MakeEphemeralConsumer(s.Ctx, "results", "req-b", broker.ConsumerConfig{
		Stream: "results", FilterSubject: "results.req-b",
	})
	s.NoError(err)
	defer consumerB.Close()

	s.NoError(s.broker.Publish(s.Ctx, &broker.Message{Subject: "results.req-b", Payload: []byte("for-b")}))

	msgsA, err := consumerA.Fetch(s.Ctx, 1, 50*time.Millisecond)
	s.NoError(err)
	s.Empty(msgsA)

	msgsB, err := consumerB.Fetch(s.Ctx, 1, 50*time.Millisecond)
	s.NoError(err)
	s.Require().Len(msgsB, 1)
	s.Equal("for-b", string(msgsB[0].Payload))
}

func (s *BrokerSuite) TestNackRedeliversMessage() {
	s.NoError(s.broker.EnsureStream(s.Ctx, broker.StreamConfig{Name: "requests", Subjects: []string{"requests.>"}}))

	consumer, err := s.broker.MakeDurableConsumer(s.Ctx, "requests", "workers", broker.ConsumerConfig{
		Stream: "requests", FilterSubject: "requests.>",
	})
	s.NoError(err)
	defer consumer.Close()

	s.NoError(s.broker.Publish(s.Ctx, &broker.Message{Subject: "requests.process", Payload: []byte("retry-me")}))

	msgs, err := consumer.Fetch(s.Ctx, 1, 500*time.Millisecond)
	s.NoError(err)
	s.Require().Len(msgs, 1)
	s.NoError(consumer.Nack(s.Ctx, msgs[0]))

	redelivered, err := consumer.Fetch(s.Ctx, 1, 500*time.Millisecond)
	s.NoError(err)
	s.Require().Len(redelivered, 1)
	s.Equal("retry-me", string(redelivered[0].Payload))
}

func TestBrokerSuite(t *testing.T) {
	test.Run(t, new(BrokerSuite))
}
