package messaging

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"travel_budget/internal/domain/entities"
	"travel_budget/internal/usecase/interfaces"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const publishTimeout = 5 * time.Second

var errPublisherClosed = errors.New("publisher closed")

// publishChannel is the part of *amqp091.Channel the publisher uses.
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	IsClosed() bool
	Close() error
}

type amqpSession struct {
	channel publishChannel
	close   func() error
}

// AMQPPublisher announces budget events on a topic exchange. The routing key is
// the event name (budget.created, budget.approved, budget.rejected), so consumers
// bind with patterns such as "budget.*".
//
// A dropped connection is re-dialed on the next Publish.
type AMQPPublisher struct {
	exchange string
	log      *zap.Logger
	connect  func() (*amqpSession, error)

	mu      sync.Mutex
	session *amqpSession
	closed  bool
}

var _ interfaces.IBudgetEventPublisher = (*AMQPPublisher)(nil)

func NewAMQPPublisher(url, exchange string, log *zap.Logger) (*AMQPPublisher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	p := &AMQPPublisher{
		exchange: exchange,
		log:      log,
		connect:  func() (*amqpSession, error) { return dial(url, exchange, log) },
	}
	session, err := p.connect()
	if err != nil {
		return nil, err
	}
	p.session = session
	return p, nil
}

func dial(url, exchange string, log *zap.Logger) (*amqpSession, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	closed := conn.NotifyClose(make(chan *amqp091.Error, 1))
	go func() {
		if amqpErr, ok := <-closed; ok && amqpErr != nil {
			log.Warn("[budget][amqp] connection lost, will reconnect on next publish",
				zap.String("exchange", exchange),
				zap.Error(amqpErr),
			)
		}
	}()

	return &amqpSession{
		channel: channel,
		close: func() error {
			channel.Close()
			return conn.Close()
		},
	}, nil
}

// newPublishing builds the message for event. MessageId is stable per budget
// and event so consumers can drop redeliveries.
func newPublishing(event string, b entities.Budget, now time.Time) (amqp091.Publishing, error) {
	body, err := NewBudgetEventMessage(event, b, now).ToJSON()
	if err != nil {
		return amqp091.Publishing{}, fmt.Errorf("marshal message: %w", err)
	}
	return amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    b.ID + ":" + event,
		Timestamp:    now,
		Type:         event,
		Body:         body,
	}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, event string, b entities.Budget) error {
	msg, err := newPublishing(event, b, time.Now())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	channel, err := p.channelLocked()
	if err != nil {
		return err
	}
	err = channel.PublishWithContext(
		ctx,
		p.exchange, // exchange
		event,      // routing key
		false,      // mandatory
		false,      // immediate
		msg,
	)
	if err != nil {
		p.dropSessionLocked()
		return fmt.Errorf("publish message: %w", err)
	}

	p.log.Info("[budget][amqp] event published",
		zap.String("event", event),
		zap.String("budget_id", b.ID),
		zap.String("exchange", p.exchange),
	)
	return nil
}

// channelLocked returns an open channel, re-dialing when the previous one was
// closed by the broker. Callers hold p.mu.
func (p *AMQPPublisher) channelLocked() (publishChannel, error) {
	if p.closed {
		return nil, errPublisherClosed
	}
	if p.session != nil && !p.session.channel.IsClosed() {
		return p.session.channel, nil
	}

	p.dropSessionLocked()
	session, err := p.connect()
	if err != nil {
		return nil, fmt.Errorf("reconnect: %w", err)
	}
	p.log.Info("[budget][amqp] reconnected", zap.String("exchange", p.exchange))
	p.session = session
	return session.channel, nil
}

func (p *AMQPPublisher) dropSessionLocked() {
	if p.session == nil {
		return
	}
	_ = p.session.close()
	p.session = nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	if p.session == nil {
		return nil
	}
	err := p.session.close()
	p.session = nil
	return err
}
