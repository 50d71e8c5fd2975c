package mailer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	mail "github.com/wneessen/go-mail"
)

// Config holds SMTP relay connection details.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	// Timeout bounds dialing and each SMTP command.
	Timeout time.Duration
}

// Message is a single HTML email.
type Message struct {
	FromName    string
	FromAddress string
	To          string
	Subject     string
	HTML        string
}

// Client delivers messages through an SMTP relay.
// Each Send dials its own connection, so a Client is safe for concurrent use.
type Client struct {
	host string
	opts []mail.Option
}

// NewClient creates a new SMTP client. No connection is made until Send.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Host == "" {
		return nil, errors.New("smtp host is required")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTimeout(cfg.Timeout),
		mail.WithTLSPolicy(mail.TLSMandatory),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	// Fail on bad options at startup rather than on the first order.
	if _, err := mail.NewClient(cfg.Host, opts...); err != nil {
		return nil, fmt.Errorf("failed to configure smtp client: %w", err)
	}

	log.Printf("SMTP client configured for %s:%d", cfg.Host, cfg.Port)

	return &Client{
		host: cfg.Host,
		opts: opts,
	}, nil
}

// Send builds the message and waits for the relay to accept it.
func (c *Client) Send(ctx context.Context, msg Message) error {
	m, err := BuildMessage(msg)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(c.host, c.opts...)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", msg.To, err)
	}
	return nil
}

// BuildMessage converts a Message into a go-mail message with an HTML body.
func BuildMessage(msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.FromFormat(msg.FromName, msg.FromAddress); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", msg.FromAddress, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetDate()
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)
	return m, nil
}
