package contact

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPDispatcher delivers messages through an SMTP relay via gomail.
type SMTPDispatcher struct {
	dialer *gomail.Dialer
}

// NewSMTPDispatcher constructs a dispatcher for the given relay.
func NewSMTPDispatcher(host string, port int, username, password string) *SMTPDispatcher {
	return &SMTPDispatcher{
		dialer: gomail.NewDialer(host, port, username, password),
	}
}

// Send dials the relay and delivers a single message.
func (d *SMTPDispatcher) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", d.dialer.Username)
	if msg.From != "" {
		m.SetHeader("Reply-To", msg.From)
	}
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if err := d.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("%w: %v", ErrDispatch, err)
	}
	return nil
}

var _ Dispatcher = (*SMTPDispatcher)(nil)
