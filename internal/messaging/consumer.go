package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

var consumerTracer = otel.Tracer("storefront/messaging/consumer")

// ErrSkip marks a message the handler can never process, such as an
// undecodable payload. The consumer commits it without retrying.
var ErrSkip = errors.New("skip message")

type MessageHandler func(ctx context.Context, payload []byte) error

type consumerSettings struct {
	reader      kafka.ReaderConfig
	maxAttempts int
	backoff     time.Duration
	logger      *slog.Logger
}

type ConsumerOption func(*consumerSettings)

func WithStartOffset(offset int64) ConsumerOption {
	return func(s *consumerSettings) {
		s.reader.StartOffset = offset
	}
}

// WithRetry makes the consumer call the handler up to attempts times per
// message, sleeping backoff, 2*backoff, ... between calls.
func WithRetry(attempts int, backoff time.Duration) ConsumerOption {
	return func(s *consumerSettings) {
		if attempts > 0 {
			s.maxAttempts = attempts
		}
		s.backoff = backoff
	}
}

func WithLogger(logger *slog.Logger) ConsumerOption {
	return func(s *consumerSettings) {
		s.logger = logger
	}
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Consumer struct {
	reader      messageReader
	topic       string
	groupID     string
	maxAttempts int
	backoff     time.Duration
	logger      *slog.Logger
	processed   metric.Int64Counter
}

func NewConsumer(brokers []string, topic, groupID string, opts ...ConsumerOption) *Consumer {
	s := consumerSettings{
		reader: kafka.ReaderConfig{
			Brokers:  brokers,
			Topic:    topic,
			GroupID:  groupID,
			MaxWait:  time.Second,
			MinBytes: 1,
		},
		maxAttempts: 1,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(&s)
	}

	// Counter creation only fails on an invalid instrument name.
	processed, _ := otel.Meter("storefront/messaging").Int64Counter("messaging.consumer.messages",
		metric.WithDescription("Messages handled by the consumer, by outcome"),
	)

	return &Consumer{
		reader:      kafka.NewReader(s.reader),
		topic:       topic,
		groupID:     groupID,
		maxAttempts: s.maxAttempts,
		backoff:     s.backoff,
		logger:      s.logger.With("topic", topic, "group", groupID),
		processed:   processed,
	}
}

// Consume fetches messages until ctx is cancelled or a message exhausts its
// attempts. A message's offset is committed only once the handler accepts or
// skips it, so a failed message is redelivered after restart.
func (c *Consumer) Consume(ctx context.Context, handler MessageHandler) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			return err
		}

		switch err := c.handleWithRetry(ctx, msg, handler); {
		case errors.Is(err, ErrSkip):
			c.logger.Warn("skipping message", "error", err, "offset", msg.Offset, "partition", msg.Partition)
			c.record(ctx, "skipped")
		case err != nil:
			c.record(ctx, "failed")
			return fmt.Errorf("handle message at offset %d: %w", msg.Offset, err)
		default:
			c.record(ctx, "ok")
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			return fmt.Errorf("commit offset %d: %w", msg.Offset, err)
		}
	}
}

func (c *Consumer) handleWithRetry(ctx context.Context, msg kafka.Message, handler MessageHandler) error {
	var err error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		err = c.process(ctx, msg, attempt, handler)
		if err == nil || errors.Is(err, ErrSkip) {
			return err
		}
		if attempt == c.maxAttempts {
			break
		}

		c.logger.Warn("message handler failed, retrying",
			"error", err,
			"offset", msg.Offset,
			"attempt", attempt,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.backoff * time.Duration(attempt)):
		}
	}
	return err
}

func (c *Consumer) process(ctx context.Context, msg kafka.Message, attempt int, handler MessageHandler) error {
	ctx = otel.GetTextMapPropagator().Extract(ctx, NewHeaderCarrier(&msg))

	ctx, span := consumerTracer.Start(ctx, "process "+c.topic,
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			semconv.MessagingSystemKafka,
			semconv.MessagingOperationName("process"),
			semconv.MessagingOperationTypeDeliver,
			semconv.MessagingDestinationName(c.topic),
			semconv.MessagingKafkaConsumerGroup(c.groupID),
			semconv.MessagingKafkaMessageOffset(int(msg.Offset)),
			semconv.MessagingDestinationPartitionID(strconv.Itoa(msg.Partition)),
			semconv.MessagingKafkaMessageKey(string(msg.Key)),
			attribute.Int("messaging.delivery_attempt", attempt),
		),
	)
	defer span.End()

	err := handler(ctx, msg.Value)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (c *Consumer) record(ctx context.Context, outcome string) {
	if c.processed == nil {
		return
	}
	c.processed.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
