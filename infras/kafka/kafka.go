package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"salas/config"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
	"go.opentelemetry.io/otel"
)

const writeTimeout = 10 * time.Second

// Message is a JSON event keyed for partitioning. Messages sharing a key land on the same partition.
type Message struct {
	Key     string
	Value   any
	Headers map[string]string
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	value, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to encode message %q: %w", m.Key, err)
	}

	msg := kafkaGo.Message{Key: []byte(m.Key), Value: value}
	headers := headerCarrier{msg: &msg}

	for name, header := range m.Headers {
		headers.Set(name, header)
	}

	return msg, nil
}

// DecodeKafkaMessage decodes the JSON value of msg into T.
func DecodeKafkaMessage[T any](msg kafkaGo.Message) (T, error) {
	var value T

	if err := json.Unmarshal(msg.Value, &value); err != nil {
		return value, fmt.Errorf("failed to decode message %q: %w", msg.Key, err)
	}

	return value, nil
}

// ExtractContext returns ctx carrying the trace the producer of msg was in, if any.
func ExtractContext(ctx context.Context, msg kafkaGo.Message) context.Context {
	return otel.GetTextMapPropagator().Extract(ctx, headerCarrier{msg: &msg})
}

type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) (err error)
	Close() error
}

type producer struct {
	writer *kafkaGo.Writer
}

// New returns a producer for the configured brokers, or a client that drops every
// message when publishing is disabled.
func New(cfg *config.Config) Client {
	broker := cfg.Kafka
	if !broker.Enable || len(broker.Brokers) == 0 {
		log.Info().Msg("kafka publishing disabled")

		return discard{}
	}

	transport := &kafkaGo.Transport{}
	if broker.SASL.Username != "" {
		transport.SASL = plain.Mechanism{Username: broker.SASL.Username, Password: broker.SASL.Password}
	}

	log.Info().Strs("brokers", broker.Brokers).Msg("kafka producer ready")

	return &producer{
		writer: &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(broker.Brokers...),
			Balancer:               &kafkaGo.Hash{},
			Transport:              transport,
			AllowAutoTopicCreation: true,
			WriteTimeout:           writeTimeout,
		},
	}
}

// SendMessages writes messages to topic as one batch. The caller's trace context
// travels in the headers of every message.
func (p *producer) SendMessages(ctx context.Context, topic string, messages ...Message) error {
	batch := make([]kafkaGo.Message, len(messages))

	for i := range messages {
		msg, err := messages[i].ToKafkaMessage()
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("dropping batch with unencodable message")

			return err
		}

		msg.Topic = topic
		otel.GetTextMapPropagator().Inject(ctx, headerCarrier{msg: &msg})
		batch[i] = msg
	}

	if err := p.writer.WriteMessages(ctx, batch...); err != nil {
		log.Error().Err(err).Str("topic", topic).Int("count", len(batch)).Msg("failed to write to kafka")

		return fmt.Errorf("failed to write %d messages to %s: %w", len(batch), topic, err)
	}

	log.Debug().Str("topic", topic).Int("count", len(batch)).Msg("messages written")

	return nil
}

func (p *producer) Close() error {
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka writer: %w", err)
	}

	return nil
}

type discard struct{}

func (discard) SendMessages(_ context.Context, topic string, messages ...Message) error {
	log.Trace().Str("topic", topic).Int("count", len(messages)).Msg("kafka disabled, messages dropped")

	return nil
}

func (discard) Close() error {
	return nil
}

// headerCarrier lets the otel propagator read and write kafka headers.
type headerCarrier struct {
	msg *kafkaGo.Message
}

func (c headerCarrier) Get(key string) string {
	for _, header := range c.msg.Headers {
		if header.Key == key {
			return string(header.Value)
		}
	}

	return ""
}

func (c headerCarrier) Set(key, value string) {
	for i, header := range c.msg.Headers {
		if header.Key == key {
			c.msg.Headers[i].Value = []byte(value)

			return
		}
	}

	c.msg.Headers = append(c.msg.Headers, kafkaGo.Header{Key: key, Value: []byte(value)})
}

func (c headerCarrier) Keys() []string {
	keys := make([]string, len(c.msg.Headers))
	for i, header := range c.msg.Headers {
		keys[i] = header.Key
	}

	return keys
}
