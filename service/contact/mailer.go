package contact

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"hotbray.GO/config"
)

// Email is one outbound HTML message.
type Email struct {
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, e Email) error
}

// SMTPMailer delivers mail through an authenticated SMTP relay.
// Port 465 uses implicit TLS; other ports rely on STARTTLS.
type SMTPMailer struct {
	cfg config.Mail
}

func NewSMTPMailer(cfg config.Mail) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// From is the sender mailbox, which is also the business inbox.
func (m *SMTPMailer) From() string { return m.cfg.User }

const defaultSendTimeout = 10 * time.Second

// Send delivers e within the mailer timeout or ctx, whichever ends first.
// A relay that stops answering is cut off by the connection deadline.
func (m *SMTPMailer) Send(ctx context.Context, e Email) error {
	if m.cfg.User == "" {
		return fmt.Errorf("mail: MAIL_USER not configured")
	}
	timeout := m.cfg.Timeout
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)
	conn, err := (&net.Dialer{}).DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("mail: dial %s: %w", addr, err)
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return err
		}
	}
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	if err := m.deliver(conn, e.To, m.buildRaw(e)); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("mail: %w", ctxErr)
		}
		return err
	}
	return nil
}

func (m *SMTPMailer) deliver(conn net.Conn, to string, raw []byte) error {
	tlsCfg := &tls.Config{ServerName: m.cfg.Host}
	if m.cfg.Port == "465" {
		conn = tls.Client(conn, tlsCfg)
	}
	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		return fmt.Errorf("mail: greeting: %w", err)
	}
	defer client.Close()

	if m.cfg.Port != "465" {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(tlsCfg); err != nil {
				return fmt.Errorf("mail: starttls: %w", err)
			}
		}
	}
	if ok, _ := client.Extension("AUTH"); ok {
		auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("mail: auth: %w", err)
		}
	}
	if err := client.Mail(m.cfg.User); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(raw); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func (m *SMTPMailer) buildRaw(e Email) []byte {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("From: %s <%s>\r\n", headerSafe(m.cfg.FromName), m.cfg.User))
	b.WriteString("To: " + headerSafe(e.To) + "\r\n")
	if e.ReplyTo != "" {
		b.WriteString("Reply-To: " + headerSafe(e.ReplyTo) + "\r\n")
	}
	b.WriteString("Subject: " + headerSafe(e.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(e.HTML)
	return []byte(b.String())
}

// headerSafe drops line breaks so user input cannot add headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
