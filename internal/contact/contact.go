package contact

import (
	"context"
	"errors"
)

// ErrDispatch indicates the mail relay rejected or failed the send.
var ErrDispatch = errors.New("mail dispatch failed")

// Message is a contact-form message bound for the mail relay.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Dispatcher sends a contact-form message through an external mail relay.
type Dispatcher interface {
	Send(ctx context.Context, msg Message) error
}
