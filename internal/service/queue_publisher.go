// Package queue_publisher publishes mail events to RabbitMQ. Errors are
// logged and returned to allow callers to ignore failures without
// interrupting the main request flow.
package queue_publisher

import (
    "context"
    "encoding/json"
    "log"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"

    q "github.com/jnanasetu/auth-service/internal/queue"
)

// Notifier implements mail.Sender by publishing MailRequestedEvents to the
// mail.outbound queue instead of talking SMTP from the request path. The
// background consumer (queue.StartMailConsumer) performs actual delivery.
type Notifier struct {
    URL string // AMQP broker URL
}

func NewNotifier(url string) *Notifier { return &Notifier{URL: url} }

// SendWelcome enqueues a welcome email for a freshly registered user.
func (n *Notifier) SendWelcome(ctx context.Context, toEmail, name string) error {
    return PublishMailRequested(ctx, n.URL, q.MailRequestedEvent{
        Kind:        q.MailKindWelcome,
        To:          toEmail,
        Name:        name,
        RequestedAt: time.Now().UTC().Format(time.RFC3339),
    })
}

// SendPasswordReset enqueues a password-reset email carrying the reset link.
func (n *Notifier) SendPasswordReset(ctx context.Context, toEmail, resetLink string) error {
    return PublishMailRequested(ctx, n.URL, q.MailRequestedEvent{
        Kind:        q.MailKindPasswordReset,
        To:          toEmail,
        ResetLink:   resetLink,
        RequestedAt: time.Now().UTC().Format(time.RFC3339),
    })
}

// PublishMailRequested publishes a MailRequestedEvent to the mail.outbound
// queue. The function attempts to be robust and to never panic; any error
// is logged and returned so the caller can choose to ignore it. Messages
// are marked as persistent.
func PublishMailRequested(ctx context.Context, url string, event q.MailRequestedEvent) error {
    conn, err := amqp.Dial(url)
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

    // Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
    if _, err := ch.QueueDeclare(
        q.MailQueueName, // name
        true,            // durable
        false,           // autoDelete
        false,           // exclusive
        false,           // noWait
        nil,             // args
    ); err != nil {
        log.Printf("rabbitmq: queue declare failed: %v", err)
        return err
    }

    body, err := json.Marshal(event)
    if err != nil {
        log.Printf("rabbitmq: marshal event failed: %v", err)
        return err
    }

    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent, // store on disk
        Timestamp:    time.Now().UTC(),
        Body:         body,
    }

    if err := ch.PublishWithContext(ctx,
        "",              // default exchange
        q.MailQueueName, // routing key = queue name
        false,           // mandatory
        false,           // immediate
        pub,
    ); err != nil {
        log.Printf("rabbitmq: publish failed: %v", err)
        return err
    }

    return nil
}
