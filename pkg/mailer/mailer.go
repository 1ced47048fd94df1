package mailer

import (
	"gopkg.in/gomail.v2"
)

// Config holds the SMTP settings for one share attempt. Credentials come
// from the user's profile when configured, otherwise from the process
// defaults.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Sender sends individually-addressed plain-text messages over one open
// SMTP connection. Close releases the connection.
type Sender interface {
	Send(to, subject, body string) error
	Close() error
}

// Dialer opens an SMTP connection
type Dialer interface {
	Dial(cfg Config) (Sender, error)
}

// SMTPDialer implements Dialer using gomail
type SMTPDialer struct{}

func (SMTPDialer) Dial(cfg Config) (Sender, error) {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	// Implicit TLS only on the SMTPS port; STARTTLS is negotiated
	// automatically on 587 when the server offers it.
	d.SSL = cfg.Port == 465

	sc, err := d.Dial()
	if err != nil {
		return nil, err
	}

	return &smtpSender{conn: sc, from: cfg.From}, nil
}

type smtpSender struct {
	conn gomail.SendCloser
	from string
}

func (s *smtpSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return gomail.Send(s.conn, m)
}

func (s *smtpSender) Close() error {
	return s.conn.Close()
}
