package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/parpy69/pos-backend/pkg/logger"
)

// Publisher wraps Kafka producer
type Publisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.MaxMessageBytes = 1000000

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return &Publisher{
		producer: producer,
		brokers:  brokers,
	}, nil
}

// PublishSaleRecorded publishes a sale recorded event with tracing
func (p *Publisher) PublishSaleRecorded(ctx context.Context, event SaleRecordedEvent) error {
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish.sale_recorded",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", TopicSaleRecorded),
			attribute.String("event.type", EventTypeSaleRecorded),
			attribute.Int64("sale.id", int64(event.SaleID)),
			attribute.Int64("product.id", int64(event.ProductID)),
			attribute.Int("sale.quantity", event.Quantity),
		),
	)
	defer span.End()

	event.EventID = newEventID()
	event.EventType = EventTypeSaleRecorded
	event.Timestamp = time.Now()

	key := fmt.Sprintf("product_%d", event.ProductID)
	if err := p.send(ctx, span, TopicSaleRecorded, key, event.EventID, event.EventType, event); err != nil {
		return err
	}

	logger.Logger.Info().
		Str("event_id", event.EventID).
		Str("topic", TopicSaleRecorded).
		Uint("sale_id", event.SaleID).
		Uint("product_id", event.ProductID).
		Int("quantity", event.Quantity).
		Msg("Sale recorded event published")

	return nil
}

// PublishStockLow publishes a low stock event with tracing
func (p *Publisher) PublishStockLow(ctx context.Context, event StockLowEvent) error {
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish.stock_low",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", TopicStockLow),
			attribute.String("event.type", EventTypeStockLow),
			attribute.Int64("product.id", int64(event.ProductID)),
			attribute.Int("product.quantity", event.Quantity),
		),
	)
	defer span.End()

	event.EventID = newEventID()
	event.EventType = EventTypeStockLow
	event.Timestamp = time.Now()

	key := fmt.Sprintf("product_%d", event.ProductID)
	if err := p.send(ctx, span, TopicStockLow, key, event.EventID, event.EventType, event); err != nil {
		return err
	}

	logger.Logger.Warn().
		Str("event_id", event.EventID).
		Str("topic", TopicStockLow).
		Uint("product_id", event.ProductID).
		Int("quantity", event.Quantity).
		Int("threshold", event.Threshold).
		Msg("Stock low event published")

	return nil
}

// send marshals the event and delivers it with trace context headers
func (p *Publisher) send(ctx context.Context, span trace.Span, topic, key, eventID, eventType string, event interface{}) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Inject trace context into Kafka headers
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(eventType)},
		{Key: []byte("event_id"), Value: []byte(eventID)},
	}
	for k, v := range carrier {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte(k),
			Value: []byte(v),
		})
	}

	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Logger.Error().
			Err(err).
			Str("topic", topic).
			Str("event_id", eventID).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	span.SetStatus(codes.Ok, "Event published successfully")

	return nil
}

func newEventID() string {
	return fmt.Sprintf("evt_%s", uuid.New().String())
}

// Close closes the Kafka producer
func (p *Publisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
