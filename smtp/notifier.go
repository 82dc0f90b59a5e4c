// Package smtp delivers digest email over SMTP with STARTTLS.
package smtp

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"stackdigest"
)

// DefaultAddr is the standard submission endpoint for Gmail.
const DefaultAddr = "smtp.gmail.com:587"

// Ensure Notifier implements stackdigest.Notifier at compile time.
var _ stackdigest.Notifier = (*Notifier)(nil)

// Notifier sends HTML email through an authenticated SMTP session. The
// connection is upgraded with STARTTLS before credentials are sent.
type Notifier struct {
	addr     string
	from     string
	password string
	to       string
}

// NotifierOption configures a Notifier.
type NotifierOption func(*Notifier)

// WithAddr sets the SMTP host:port. Defaults to DefaultAddr.
func WithAddr(addr string) NotifierOption {
	return func(n *Notifier) {
		n.addr = addr
	}
}

// NewNotifier creates a Notifier sending from the given account to the given
// recipient.
func NewNotifier(from, password, to string, opts ...NotifierOption) *Notifier {
	n := &Notifier{
		addr:     DefaultAddr,
		from:     from,
		password: password,
		to:       to,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Notify sends htmlBody as an HTML email with the given subject.
func (n *Notifier) Notify(ctx context.Context, subject, htmlBody string) error {
	host, _, err := net.SplitHostPort(n.addr)
	if err != nil {
		return stackdigest.Errorf(stackdigest.EINVALID, "invalid smtp address %q: %v", n.addr, err)
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", n.addr)
	if err != nil {
		return stackdigest.Errorf(stackdigest.EUNAVAILABLE, "connecting to smtp server: %v", err)
	}

	client, err := smtp.NewClient(conn, host)
	if err != nil {
		conn.Close()
		return stackdigest.Errorf(stackdigest.EUNAVAILABLE, "smtp handshake: %v", err)
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: host}); err != nil {
		return stackdigest.Errorf(stackdigest.EUNAVAILABLE, "starttls: %v", err)
	}

	auth := smtp.PlainAuth("", n.from, n.password, host)
	if err := client.Auth(auth); err != nil {
		return stackdigest.Errorf(stackdigest.EUNAVAILABLE, "smtp auth: %v", err)
	}

	if err := client.Mail(n.from); err != nil {
		return stackdigest.Errorf(stackdigest.EINTERNAL, "smtp mail from: %v", err)
	}
	if err := client.Rcpt(n.to); err != nil {
		return stackdigest.Errorf(stackdigest.EINTERNAL, "smtp rcpt to: %v", err)
	}

	w, err := client.Data()
	if err != nil {
		return stackdigest.Errorf(stackdigest.EINTERNAL, "smtp data: %v", err)
	}
	if _, err := w.Write([]byte(buildMessage(n.from, n.to, subject, htmlBody))); err != nil {
		return stackdigest.Errorf(stackdigest.EINTERNAL, "writing message: %v", err)
	}
	if err := w.Close(); err != nil {
		return stackdigest.Errorf(stackdigest.EINTERNAL, "closing message: %v", err)
	}

	return client.Quit()
}

// buildMessage assembles an RFC 5322 message with an HTML body. Header lines
// use CRLF separators as the wire format requires.
func buildMessage(from, to, subject, htmlBody string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "From: %s\r\n", from)
	fmt.Fprintf(&sb, "To: %s\r\n", to)
	fmt.Fprintf(&sb, "Subject: %s\r\n", subject)
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(htmlBody)
	return sb.String()
}
