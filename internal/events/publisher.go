package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TemirB/internetmarke/internal/domain"
)

// CheckoutEvent is published once per completed checkout.
type CheckoutEvent struct {
	ShopOrderID   string           `json:"shopOrderId"`
	OutputFormat  string           `json:"outputFormat"`
	Link          string           `json:"link"`
	Vouchers      []domain.Voucher `json:"vouchers"`
	WalletBalance int64            `json:"walletBalance"`
	CheckedOutAt  time.Time        `json:"checkedOutAt"`
}

func NewCheckoutEvent(res domain.ShoppingCartResult, format domain.OutputFormat, balance int64, at time.Time) CheckoutEvent {
	return CheckoutEvent{
		ShopOrderID:   res.OrderID,
		OutputFormat:  string(format),
		Link:          res.Link,
		Vouchers:      res.Vouchers,
		WalletBalance: balance,
		CheckedOutAt:  at.UTC(),
	}
}

type Publisher interface {
	PublishCheckout(ctx context.Context, ev CheckoutEvent) error
	Close() error
}

type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// KafkaPublisher writes checkout events as JSON, keyed by shop order id so
// that events of one order land on one partition.
type KafkaPublisher struct {
	writer writer
	topic  string
	logger *zap.Logger
}

func NewKafkaPublisher(brokers []string, topic string, logger *zap.Logger) *KafkaPublisher {
	return newKafkaPublisher(&kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.LeastBytes{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafkago.RequireOne,
		AllowAutoTopicCreation: true,
	}, topic, logger)
}

func newKafkaPublisher(w writer, topic string, logger *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: w, topic: topic, logger: logger}
}

func (p *KafkaPublisher) PublishCheckout(ctx context.Context, ev CheckoutEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal checkout event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(ev.ShopOrderID),
		Value: payload,
		Time:  ev.CheckedOutAt,
	})
	if err != nil {
		p.logger.Error("Failed to publish checkout event",
			zap.String("topic", p.topic),
			zap.String("shop_order_id", ev.ShopOrderID),
			zap.Error(err),
		)
		return fmt.Errorf("publish checkout event: %w", err)
	}

	p.logger.Info("Checkout event published",
		zap.String("topic", p.topic),
		zap.String("shop_order_id", ev.ShopOrderID),
	)
	return nil
}

func (p *KafkaPublisher) Close() error { return p.writer.Close() }

// Noop drops every event. It is used when no brokers are configured.
type Noop struct{}

func (Noop) PublishCheckout(context.Context, CheckoutEvent) error { return nil }
func (Noop) Close() error                                         { return nil }
