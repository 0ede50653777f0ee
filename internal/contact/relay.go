package contact

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/smtp"
	"strings"
	"time"

	applog "folio/internal/log"
)

// Message is what a Relay delivers.
type Message struct {
	FromName   string
	FromEmail  string
	Body       string
	ServiceID  string
	TemplateID string
}

// Fields returns the named template fields sent to the relay.
func (m Message) Fields() map[string]string {
	return map[string]string{
		"from_name":  m.FromName,
		"from_email": m.FromEmail,
		"message":    m.Body,
	}
}

// Relay delivers a contact message. The only outcomes are nil (resolved)
// or an error (rejected).
type Relay interface {
	Send(ctx context.Context, msg Message) error
}

// RelayFunc adapts a function into a Relay.
type RelayFunc func(ctx context.Context, msg Message) error

// Send implements Relay.
func (fn RelayFunc) Send(ctx context.Context, msg Message) error {
	return fn(ctx, msg)
}

// LogRelay writes messages to the application log instead of sending them.
// It is the development default.
type LogRelay struct{}

// Send implements Relay.
func (LogRelay) Send(ctx context.Context, msg Message) error {
	applog.Info(ctx, "contact message received",
		"fromName", msg.FromName,
		"fromEmail", msg.FromEmail,
		"length", len(msg.Body),
	)
	return nil
}

// relayTimeout bounds one delivery attempt of the network relays.
const relayTimeout = 15 * time.Second

// SMTPRelay sends messages through an SMTP server with PLAIN auth.
type SMTPRelay struct {
	Host     string
	Port     string
	Username string
	Password string
	To       string
	// Timeout bounds dialing and the whole SMTP conversation. Zero means 15s.
	Timeout time.Duration

	// sendMail defaults to dialAndSend.
	sendMail func(ctx context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// Send implements Relay.
func (r *SMTPRelay) Send(ctx context.Context, msg Message) error {
	if strings.TrimSpace(r.Username) == "" || strings.TrimSpace(r.Password) == "" {
		return errors.New("smtp credentials not configured")
	}
	host := firstNonEmpty(r.Host, "smtp.gmail.com")
	port := firstNonEmpty(r.Port, "587")
	to := firstNonEmpty(r.To, r.Username)

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = relayTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	send := r.sendMail
	if send == nil {
		send = dialAndSend
	}

	auth := smtp.PlainAuth("", r.Username, r.Password, host)
	if err := send(ctx, net.JoinHostPort(host, port), auth, r.Username, []string{to}, composeMail(r.Username, to, msg)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	applog.Debug(ctx, "contact message sent over smtp", "host", host, "to", to)
	return nil
}

// dialAndSend is smtp.SendMail bound to ctx: the connection carries the
// context deadline and is closed when ctx is cancelled.
func dialAndSend(ctx context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) error {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return err
	}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			conn.Close()
			return err
		}
	}

	c, err := smtp.NewClient(conn, host)
	if err != nil {
		conn.Close()
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: host}); err != nil {
			return err
		}
	}
	if ok, _ := c.Extension("AUTH"); ok && a != nil {
		if err := c.Auth(a); err != nil {
			return err
		}
	}
	if err := c.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := c.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}

func composeMail(from, to string, msg Message) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", sanitizeHeader(msg.FromName))
	body := fmt.Sprintf("New contact form submission from your portfolio:\r\n\r\nName: %s\r\nEmail: %s\r\nMessage:\r\n%s\r\n\r\n---\r\nSent from your portfolio contact form\r\n",
		msg.FromName, msg.FromEmail, msg.Body)

	var b strings.Builder
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("Reply-To: " + sanitizeHeader(msg.FromEmail) + "\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

// Header values come from visitors; line breaks would inject headers.
func sanitizeHeader(value string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(value)
}

// DefaultEmailJSEndpoint is the EmailJS REST endpoint for sending a template.
const DefaultEmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJSRelay posts messages to the EmailJS REST API, which fills the
// configured template with from_name, from_email and message.
type EmailJSRelay struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	PublicKey  string
	HTTPClient *http.Client
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send implements Relay.
func (r *EmailJSRelay) Send(ctx context.Context, msg Message) error {
	payload := emailJSRequest{
		ServiceID:      firstNonEmpty(msg.ServiceID, r.ServiceID),
		TemplateID:     firstNonEmpty(msg.TemplateID, r.TemplateID),
		UserID:         r.PublicKey,
		TemplateParams: msg.Fields(),
	}
	if payload.ServiceID == "" || payload.TemplateID == "" || payload.UserID == "" {
		return errors.New("emailjs service, template and public key must be configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode emailjs request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, firstNonEmpty(r.Endpoint, DefaultEmailJSEndpoint), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build emailjs request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := r.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: relayTimeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("emailjs responded %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	applog.Debug(ctx, "contact message accepted by emailjs", "status", resp.StatusCode)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
