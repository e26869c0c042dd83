package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	DefaultExchange = "resource.events"

	// Wait window for Return / Confirm
	publishWait = 150 * time.Millisecond
)

// Publisher sends change events to a topic exchange with mandatory routing and
// publisher confirms. It implements resource.EventPublisher.
type Publisher struct {
	url      string
	exchange string

	mu sync.Mutex

	conn *amqp.Connection
	ch   *amqp.Channel

	confirmCh <-chan amqp.Confirmation
	returnCh  <-chan amqp.Return
}

func NewPublisher(url, exchange string) (*Publisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}

	p := &Publisher{
		url:      url,
		exchange: exchange,
	}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Publisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("rabbit dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return err
	}

	if err := ch.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("declare exchange %s: %w", p.exchange, err)
	}

	// enable publisher confirms
	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return err
	}

	p.conn = conn
	p.ch = ch

	p.confirmCh = ch.NotifyPublish(make(chan amqp.Confirmation, 1))
	p.returnCh = ch.NotifyReturn(make(chan amqp.Return, 1))

	return nil
}

func (p *Publisher) Exchange() string { return p.exchange }

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
	return nil
}

// PublishEvent JSON-encodes payload and publishes it under routingKey.
// A message nobody is bound to receive comes back as a NO_ROUTE error.
func (p *Publisher) PublishEvent(ctx context.Context, routingKey string, payload any) error {
	if routingKey == "" {
		return errors.New("missing routingKey")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil {
		return errors.New("publisher channel not ready")
	}

	err = p.ch.PublishWithContext(
		ctx,
		p.exchange,
		routingKey,
		true,  // mandatory
		false, // immediate
		amqp.Publishing{
			MessageId:   uuid.NewString(),
			ContentType: "application/json",
			Timestamp:   time.Now().UTC(),
			Body:        body,
		},
	)
	if err != nil {
		return err
	}

	// Wait for either Return (NO_ROUTE) or Confirm
	select {
	case ret := <-p.returnCh:
		// the broker still acks a returned message; drain it so the next publish
		// does not read a stale confirmation
		select {
		case <-p.confirmCh:
		case <-time.After(publishWait):
		}
		return errors.New("NO_ROUTE: " + ret.RoutingKey)
	case conf := <-p.confirmCh:
		// a return always precedes its confirm
		select {
		case ret := <-p.returnCh:
			return errors.New("NO_ROUTE: " + ret.RoutingKey)
		default:
		}
		if !conf.Ack {
			return errors.New("publish nack")
		}
		return nil
	case <-time.After(publishWait):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
