package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ListingEvent is published whenever a listing changes, so downstream
// consumers (feeds, cache invalidation) can react.
type ListingEvent struct {
	Action string `json:"action"` // created, updated or deleted
	ID     string `json:"id"`
	Title  string `json:"title,omitempty"`
}

// RabbitMQ publishes listing events to a durable queue. The publisher
// is optional: a nil *RabbitMQ silently drops every event.
type RabbitMQ struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   amqp.Queue
}

func NewRabbitMQ(url string) *RabbitMQ {
	conn, err := amqp.Dial(url)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("failed to open channel: %v", err)
	}

	q, err := ch.QueueDeclare(
		"listing_events", // queue name
		true,             // durable
		false,            // delete when unused
		false,            // exclusive
		false,            // no-wait
		nil,              // args
	)
	if err != nil {
		log.Fatalf("failed to declare queue: %v", err)
	}

	fmt.Println("✅ Connected to RabbitMQ and declared queue")
	return &RabbitMQ{conn: conn, channel: ch, queue: q}
}

// PublishEvent sends a listing event to the queue. Safe to call on a
// nil receiver when no broker is configured.
func (r *RabbitMQ) PublishEvent(event ListingEvent) error {
	if r == nil {
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return r.channel.PublishWithContext(ctx,
		"",           // exchange
		r.queue.Name, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

// Close shuts down the channel and connection.
func (r *RabbitMQ) Close() {
	if r == nil {
		return
	}
	if r.channel != nil {
		_ = r.channel.Close()
	}
	if r.conn != nil {
		_ = r.conn.Close()
	}
}
