package queue

import (
	"fmt"

	"github.com/skulk0156/EMS-backend/storage/mq"
)

const (
	ActivityExchange = "activity.topic"
	ActivityQueue    = "activity.events"

	RoutingKeyAttendance = "activity.attendance"
	RoutingKeyTask       = "activity.task"
	RoutingKeyDigest     = "activity.digest"
)

// DeclareTopology 声明活动事件的 exchange/queue/绑定，幂等，可由任意进程调用。
func DeclareTopology() error {
	conn := mq.Connection()
	if conn == nil {
		return fmt.Errorf("RabbitMQ connection is nil")
	}

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(
		ActivityExchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(
		ActivityQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := ch.QueueBind(ActivityQueue, "activity.*", ActivityExchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}

	return nil
}
