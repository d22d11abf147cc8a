package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/muhammadheryan/hub-fulfillment/model"
	"github.com/muhammadheryan/hub-fulfillment/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const RestockQueue = "restock_fulfilled_queue"

// RestockHandler reacts to a fulfilled restock. Returning an error requeues the message.
type RestockHandler func(ctx context.Context, ev model.RestockFulfilledEvent) error

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	handler RestockHandler
}

func NewConsumer(host string, port int, user, password string, handler RestockHandler) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(
		RestockQueue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	err = channel.QueueBind(
		RestockQueue,
		RestockFulfilledKey,
		Exchange,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Consumer{
		conn:    conn,
		channel: channel,
		handler: handler,
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// one message at a time; the sweep is serialized anyway
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		RestockQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					logger.Warn("[RestockConsumer] delivery channel closed")
					return
				}
				c.handle(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	var ev model.RestockFulfilledEvent
	if err := json.Unmarshal(msg.Body, &ev); err != nil {
		logger.Error("[RestockConsumer] unmarshal message", zap.String("error", err.Error()))
		_ = msg.Ack(false)
		return
	}

	if err := c.handler(ctx, ev); err != nil {
		logger.Error("[RestockConsumer] handler failed, requeueing",
			zap.Uint64("request_id", ev.RequestID), zap.String("error", err.Error()))
		_ = msg.Nack(false, !msg.Redelivered)
		return
	}

	_ = msg.Ack(false)
	logger.Debug("[RestockConsumer] handled", zap.Uint64("request_id", ev.RequestID))
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
