// Package events publishes booking lifecycle events to a RabbitMQ queue so
// external consumers (mailers, analytics) can react without polling the
// database. Publication is best effort: a missing broker only logs.
package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const queueName = "booking.events"

// BookingEvent is the wire payload for booking lifecycle changes.
type BookingEvent struct {
	Type        string  `json:"type"` // booking.created | booking.updated | booking.payment
	BookingID   int64   `json:"booking_id"`
	VenueID     int64   `json:"venue_id"`
	BookingDate string  `json:"booking_date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Amount      float64 `json:"amount,omitempty"`
	Status      string  `json:"status,omitempty"`
	OccurredAt  string  `json:"occurred_at"`
}

// Publisher sends events to the broker. A Publisher with an empty URL is a
// no-op, which keeps local setups broker-free.
type Publisher struct {
	url string
}

func NewPublisher(url string) *Publisher {
	return &Publisher{url: url}
}

func (p *Publisher) Enabled() bool { return p != nil && p.url != "" }

// Publish declares the durable queue and sends one persistent message.
// Dialing per publish keeps the implementation connection-state free;
// booking volume here is nowhere near where that matters.
func (p *Publisher) Publish(ctx context.Context, event BookingEvent) error {
	if !p.Enabled() {
		return nil
	}
	if event.OccurredAt == "" {
		event.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
