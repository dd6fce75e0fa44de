package rabbitmq

import (
	"context"
	"fmt"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/agendavel/agenda-rules-api/internal/config"
	"github.com/agendavel/agenda-rules-api/internal/core/ports/in"
	"github.com/agendavel/agenda-rules-api/internal/core/ports/out"
)

// RuleChangeListener consumes change announcements about the rule
// document from other producers. On every announced change the in-memory
// document is reloaded from disk and the query cache is dropped.
type RuleChangeListener struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	useCase in.RuleUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

type ChangeType string

const (
	ChangeTypeStore      ChangeType = "store"
	ChangeTypeInvalidate ChangeType = "invalidate"
)

type ChangeMessageRoutingKey struct {
	Source       string
	Receiver     string
	ResourceType string
	ChangeType   ChangeType
}

func NewRuleChangeListener(useCase in.RuleUseCase, cfg *config.Config, logger out.LoggerPort) (*RuleChangeListener, error) {
	if !cfg.RabbitMQ.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
			"url":   cfg.RabbitMQ.URL,
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &RuleChangeListener{
		conn:    conn,
		channel: channel,
		useCase: useCase,
		cfg:     cfg,
		logger:  logger.WithModule("RuleChangeListener"),
	}, nil
}

func (l *RuleChangeListener) Start(ctx context.Context) error {
	if err := l.startRulesQueue(ctx); err != nil {
		return err
	}

	l.logger.Info("rules.queue.started", out.LogFields{
		"queue": l.cfg.RabbitMQ.Queue,
	})
	return nil
}

func (l *RuleChangeListener) Stop() error {
	if l == nil || l.channel == nil {
		return nil
	}

	if err := l.channel.Close(); err != nil {
		return err
	}
	return l.conn.Close()
}

// Example routing keys:
// agenda.rules-api.rules.store
// agenda.rules-api.rules.invalidate
func (l *RuleChangeListener) parseChangeMessageRoutingKey(msg amqp.Delivery) (ChangeMessageRoutingKey, error) {
	parts := strings.Split(msg.RoutingKey, ".")

	if len(parts) < 4 {
		return ChangeMessageRoutingKey{}, fmt.Errorf("invalid routing key: %s", msg.RoutingKey)
	}

	return ChangeMessageRoutingKey{
		Source:       parts[0],
		Receiver:     parts[1],
		ResourceType: parts[2],
		ChangeType:   ChangeType(parts[3]),
	}, nil
}
