package rabbitmq

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/agendavel/agenda-rules-api/internal/core/ports/out"
)

func (l *RuleChangeListener) startRulesQueue(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMQ.Queue,
		true,  // durable
		true,  // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	err = l.channel.QueueBind(
		queue.Name,
		l.cfg.RabbitMQ.Bind,
		l.cfg.RabbitMQ.Exchange,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	go l.consumeRules(ctx, msgs)

	return nil
}

// consumeRules drains the delivery channel until the context is cancelled
// or the channel is closed (Stop closes the AMQP channel, which closes
// the deliveries).
func (l *RuleChangeListener) consumeRules(ctx context.Context, msgs <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			if err := l.processRulesMessage(ctx, msg); err != nil {
				msg.Nack(false, true) // requeue message
				continue
			}
			msg.Ack(false)
		}
	}
}

func (l *RuleChangeListener) processRulesMessage(ctx context.Context, msg amqp.Delivery) error {
	routingKey, err := l.parseChangeMessageRoutingKey(msg)
	if err != nil {
		return err
	}

	if routingKey.ResourceType != "rules" {
		return nil
	}

	l.logger.Info("rules.message.received", out.LogFields{
		"routingKey": msg.RoutingKey,
		"changeType": routingKey.ChangeType,
	})

	// Either change flavor means the document on disk no longer matches
	// the in-memory copy
	if routingKey.ChangeType == ChangeTypeStore || routingKey.ChangeType == ChangeTypeInvalidate {
		if err := l.useCase.ReloadRules(ctx); err != nil {
			return err
		}

		l.logger.Info("rules.message.reloaded", out.LogFields{
			"changeType": routingKey.ChangeType,
		})
	}

	return nil
}
