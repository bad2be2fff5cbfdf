package commander

import "context"

//go:generate mockery --name RabbitMQPublisher --filename rabbitmqpublisher.go

// RabbitMQPublisher publishes messages to RabbitMQ exchange.
type RabbitMQPublisher interface {
	Publish(context.Context, string, []byte) error
}

// RabbitMQSender sends serialized ingest commands to the commands routing key.
type RabbitMQSender struct {
	publisher     RabbitMQPublisher
	cmdRoutingKey string
}

// NewRabbitMQSender returns new RabbitMQSender publishing ingest commands through provided publisher to provided routing key.
func NewRabbitMQSender(publisher RabbitMQPublisher, cmdRoutingKey string) RabbitMQSender {
	return RabbitMQSender{
		publisher:     publisher,
		cmdRoutingKey: cmdRoutingKey,
	}
}

// Send publishes one serialized command to RabbitMQSender's routing key.
func (s RabbitMQSender) Send(ctx context.Context, msg []byte) error {
	return s.publisher.Publish(ctx, s.cmdRoutingKey, msg)
}
