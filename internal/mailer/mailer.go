// Package mailer sends the fire-and-forget notification mails the site
// produces (currently just newsletter signups).
package mailer

import (
	"fmt"
	"log"
	"net/smtp"
)

type Mailer struct {
	host     string
	port     string
	user     string
	password string
	from     string
	to       string
}

func New(host, port, user, password, from, to string) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		user:     user,
		password: password,
		from:     from,
		to:       to,
	}
}

// NotifySignup mails the studio inbox about a new mailing-list subscriber.
// With no SMTP host configured the notification is logged and dropped, so
// local development does not need a mail server.
func (m *Mailer) NotifySignup(email string) error {
	if m.host == "" || m.to == "" {
		log.Printf("SMTP not configured; newsletter signup from %s not mailed", email)
		return nil
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: New mailing-list signup\r\n\r\nNew subscriber: %s\r\n",
		m.from, m.to, email)

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.password, m.host)
	}
	addr := m.host + ":" + m.port
	if err := smtp.SendMail(addr, auth, m.from, []string{m.to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send signup notification: %w", err)
	}
	return nil
}
