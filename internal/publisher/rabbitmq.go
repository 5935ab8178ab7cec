package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"

	"book_prices/internal/domain"
)

const (
	ActionFirstSeen = "first_seen"
	ActionChanged   = "changed"
)

// RabbitMQ publishes offer changes to a durable direct exchange.
type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopology(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

func declareTopology(ch *amqp.Channel, cfg Config) error {
	if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// OfferMessage is the wire form of a recorded price/stock change.
type OfferMessage struct {
	Action    string       `json:"action"`
	ISBN13    *string      `json:"isbn13"`
	Offer     OfferPayload `json:"offer"`
	Timestamp time.Time    `json:"timestamp"`
}

type OfferPayload struct {
	Store          string              `json:"store"`
	StoreProductID string              `json:"store_product_id"`
	URL            string              `json:"url"`
	Price          decimal.NullDecimal `json:"price"`
	InStock        *bool               `json:"in_stock"`
	CapturedAt     time.Time           `json:"captured_at"`
}

func NewOfferMessage(change *domain.OfferChange, now time.Time) OfferMessage {
	action := ActionChanged
	if change.FirstSeen {
		action = ActionFirstSeen
	}

	return OfferMessage{
		Action: action,
		ISBN13: change.ISBN13,
		Offer: OfferPayload{
			Store:          change.Store,
			StoreProductID: change.StoreProductID,
			URL:            change.URL,
			Price:          change.Snapshot.Price,
			InStock:        change.Snapshot.InStock,
			CapturedAt:     change.Snapshot.CapturedAt,
		},
		Timestamp: now.UTC(),
	}
}

func (r *RabbitMQ) Publish(ctx context.Context, change *domain.OfferChange) error {
	now := time.Now()
	msg := NewOfferMessage(change, now)

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(ctx, r.exchange, r.routingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
		Timestamp:    now,
	})
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published offer change",
		"store", change.Store,
		"store_product_id", change.StoreProductID,
		"action", msg.Action,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
