package queue

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "log"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"

    "github.com/jnanasetu/auth-service/internal/mail"
)

// MailQueueName is the durable queue shared by the publisher and consumer.
const MailQueueName = "mail.outbound"

// StartMailConsumer connects to RabbitMQ, declares the mail.outbound queue
// (durable), and starts consuming messages. Each message is rendered and
// delivered through the given sender. The function runs a reconnect loop
// with exponential backoff and never returns under normal operation;
// processing errors are logged and the offending message is rejected
// without requeue so a poison message cannot wedge the queue.
func StartMailConsumer(url string, sender mail.Sender) error {
    backoff := time.Second
    for {
        conn, err := amqp.Dial(url)
        if err != nil {
            log.Printf("mail-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
            time.Sleep(backoff)
            if backoff < 30*time.Second {
                backoff *= 2
            }
            continue
        }
        backoff = time.Second // reset after successful connect

        if err := consumeLoop(conn, sender); err != nil {
            log.Printf("mail-consumer: consume loop ended: %v; reconnecting", err)
            time.Sleep(2 * time.Second)
            continue
        }
    }
}

func consumeLoop(conn *amqp.Connection, sender mail.Sender) error {
    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(10, 0, false); err != nil {
        log.Printf("mail-consumer: set QoS failed: %v", err)
    }

    _, err = ch.QueueDeclare(MailQueueName, true, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue declare: %w", err)
    }

    msgs, err := ch.Consume(MailQueueName, "", false, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue consume: %w", err)
    }

    for d := range msgs {
        if err := handleMessage(d.Body, sender); err != nil {
            log.Printf("mail-consumer: handle message failed: %v", err)
            _ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
            continue
        }
        _ = d.Ack(false)
    }
    return errors.New("deliveries channel closed")
}

func handleMessage(body []byte, sender mail.Sender) error {
    var ev MailRequestedEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal: %w", err)
    }

    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    switch ev.Kind {
    case MailKindWelcome:
        if err := sender.SendWelcome(ctx, ev.To, ev.Name); err != nil {
            return fmt.Errorf("send welcome: %w", err)
        }
    case MailKindPasswordReset:
        if err := sender.SendPasswordReset(ctx, ev.To, ev.ResetLink); err != nil {
            return fmt.Errorf("send password reset: %w", err)
        }
    default:
        return fmt.Errorf("unknown mail kind %q", ev.Kind)
    }
    return nil
}
