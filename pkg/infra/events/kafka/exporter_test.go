package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Setharkk/Skyent-dev/pkg/infra/events"
	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProducer struct {
	produced    []*kafka.Message
	deliveryErr error
	produceErr  error
	silent      bool
	flushed     bool
	closed      bool
}

func (f *fakeProducer) Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error {
	if f.produceErr != nil {
		return f.produceErr
	}
	f.produced = append(f.produced, msg)
	if !f.silent {
		report := *msg
		report.TopicPartition.Error = f.deliveryErr
		deliveryChan <- &report
	}
	return nil
}

func (f *fakeProducer) Flush(int) int {
	f.flushed = true
	return 0
}

func (f *fakeProducer) Close() {
	f.closed = true
}

func testEvent() *events.Event {
	return &events.Event{
		ID:         "evt-1",
		Type:       events.PublicationCreated,
		Key:        "pub-1",
		OccurredAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		Data:       map[string]string{"platform": "linkedin"},
	}
}

func TestExport(t *testing.T) {
	fake := &fakeProducer{}
	exp := &Exporter{cfg: Config{Host: "localhost", Port: "9092", Topic: "publications"}, producer: fake}

	require.NoError(t, exp.Export(context.Background(), testEvent()))
	require.Len(t, fake.produced, 1)

	msg := fake.produced[0]
	assert.Equal(t, "publications", *msg.TopicPartition.Topic)
	assert.Equal(t, []byte("pub-1"), msg.Key)
	assert.Equal(t, events.PublicationCreated, string(msg.Headers[0].Value))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "evt-1", decoded["id"])

	exp.Close()
	assert.True(t, fake.flushed)
	assert.True(t, fake.closed)
}

func TestExport_Failures(t *testing.T) {
	cfg := Config{Host: "localhost", Port: "9092", Topic: "publications"}

	exp := &Exporter{cfg: cfg, producer: &fakeProducer{deliveryErr: kafka.NewError(kafka.ErrMsgTimedOut, "timed out", false)}}
	assert.ErrorContains(t, exp.Export(context.Background(), testEvent()), "delivery failed")

	exp = &Exporter{cfg: cfg, producer: &fakeProducer{produceErr: errors.New("queue full")}}
	assert.ErrorContains(t, exp.Export(context.Background(), testEvent()), "queue full")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exp = &Exporter{cfg: cfg, producer: &fakeProducer{silent: true}}
	assert.ErrorIs(t, exp.Export(ctx, testEvent()), context.Canceled)

	assert.Error(t, (&Exporter{}).Export(context.Background(), testEvent()))
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{Host: "h", Port: "1", Topic: "t"}.Validate())
	assert.ErrorContains(t, Config{Port: "1", Topic: "t"}.Validate(), "host")
	assert.ErrorContains(t, Config{Host: "h", Topic: "t"}.Validate(), "port")
	assert.ErrorContains(t, Config{Host: "h", Port: "1"}.Validate(), "topic")

	_, err := NewKafkaExporter(Config{})
	assert.Error(t, err)
}
