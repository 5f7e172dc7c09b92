package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

var (
	// ErrConnect возвращается при ошибке подключения к брокеру
	ErrConnect = errors.New("queue: failed to connect to broker")

	// ErrPublish возвращается при ошибке публикации события
	ErrPublish = errors.New("queue: failed to publish event")
)

const exchangeKind = "topic"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher публикует события бронирований в topic exchange RabbitMQ
// Канал AMQP не потокобезопасен, публикации сериализуются мьютексом
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	log      Logger
}

// NewPublisher подключается к брокеру и объявляет durable exchange
func NewPublisher(url, exchange string, log Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}

	if err := ch.ExchangeDeclare(
		exchange,
		exchangeKind,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%w: declare exchange %s: %v", ErrConnect, exchange, err)
	}

	log.Info("Connected to RabbitMQ, exchange=%s", exchange)

	return &Publisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		log:      log,
	}, nil
}

// PublishBookingEvent публикует событие с routing key = тип события
func (p *Publisher) PublishBookingEvent(ctx context.Context, event BookingEvent) error {
	msg, err := buildPublishing(event)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.PublishWithContext(ctx,
		p.exchange,
		string(event.Type),
		false, // mandatory
		false, // immediate
		msg,
	); err != nil {
		return fmt.Errorf("%w: %s booking_id=%s: %v", ErrPublish, event.Type, event.BookingID, err)
	}

	p.log.Info("Published %s event: event_id=%s, booking_id=%s", event.Type, event.EventID, event.BookingID)
	return nil
}

// Close закрывает канал и соединение
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	chErr := p.ch.Close()
	connErr := p.conn.Close()
	if chErr != nil {
		return chErr
	}
	return connErr
}

// buildPublishing сериализует событие в persistent JSON-сообщение
func buildPublishing(event BookingEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("%w: marshal %s: %v", ErrPublish, event.Type, err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Type:         string(event.Type),
		Timestamp:    event.OccurredAt,
		Body:         body,
	}, nil
}

// NopPublisher публикатор для режима без брокера
type NopPublisher struct{}

// PublishBookingEvent ничего не делает
func (NopPublisher) PublishBookingEvent(context.Context, BookingEvent) error {
	return nil
}
