// Package queue defines message payloads exchanged over the message broker
// and the background consumer that delivers them.
package queue

// Mail event kinds carried in MailRequestedEvent.Kind.
const (
	MailKindWelcome       = "welcome"
	MailKindPasswordReset = "password_reset"
)

// MailRequestedEvent is published when an auth flow wants an email sent.
// It contains everything the consumer needs to render and deliver the
// message without querying the primary database. ResetLink is only set for
// password_reset events; Name only for welcome events.
type MailRequestedEvent struct {
	Kind        string `json:"kind"`
	To          string `json:"to"`
	Name        string `json:"name,omitempty"`
	ResetLink   string `json:"reset_link,omitempty"`
	RequestedAt string `json:"requested_at"`
}
