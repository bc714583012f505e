// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/models"
)

// ErrMailerNotConfigured is returned while SMTP_Host or SMTP_FromEmail is
// empty.
var ErrMailerNotConfigured = errors.New("smtp is not configured")

const (
	defaultSMTPPort  = 587
	implicitTLSPort  = 465
	smtpDialTimeout  = 15 * time.Second
	defaultFromLabel = "AirlineManager"
)

// smtpSettings is the SMTP category resolved for one message.
type smtpSettings struct {
	host      string
	port      int
	username  string
	password  string
	fromEmail string
	fromName  string
	enableSSL bool
}

// smtpMailer reads its settings from the configuration store on every send,
// so administrators can change them at runtime.
type smtpMailer struct {
	config ConfigService
	dialer net.Dialer

	logger *logger.Logger
}

func NewSMTPMailer(config ConfigService, logger *logger.Logger) Mailer {
	return &smtpMailer{
		config: config,
		dialer: net.Dialer{Timeout: smtpDialTimeout},
		logger: logger,
	}
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	settings, err := m.settings(ctx)
	if err != nil {
		return err
	}

	recipient, err := mail.ParseAddress(to)
	if err != nil {
		return fmt.Errorf("%w: recipient: %w", ErrInvalidInput, err)
	}

	client, err := m.connect(ctx, settings)
	if err != nil {
		return err
	}
	defer client.Close()

	if err = client.Mail(settings.fromEmail); err != nil {
		return fmt.Errorf("smtp MAIL FROM: %w", err)
	}
	if err = client.Rcpt(recipient.Address); err != nil {
		return fmt.Errorf("smtp RCPT TO: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA: %w", err)
	}
	if _, err = w.Write(composeMessage(settings, recipient.Address, subject, body)); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("smtp DATA close: %w", err)
	}

	logger.FromContext(ctx).Info().Str("to", recipient.Address).Str("subject", subject).Msg("mail sent")
	return client.Quit()
}

func (m *smtpMailer) settings(ctx context.Context) (smtpSettings, error) {
	values := m.config.GetCategory(ctx, models.CategorySMTP)

	s := smtpSettings{
		host:      strings.TrimSpace(values[models.KeySMTPHost]),
		port:      defaultSMTPPort,
		username:  values[models.KeySMTPUsername],
		password:  values[models.KeySMTPPassword],
		fromEmail: strings.TrimSpace(values[models.KeySMTPFromEmail]),
		fromName:  values[models.KeySMTPFromName],
	}
	if port, err := strconv.Atoi(strings.TrimSpace(values[models.KeySMTPPort])); err == nil && port > 0 {
		s.port = port
	}
	s.enableSSL, _ = strconv.ParseBool(strings.TrimSpace(values[models.KeySMTPEnableSSL]))
	if s.fromName == "" {
		s.fromName = defaultFromLabel
	}

	if s.host == "" || s.fromEmail == "" {
		return smtpSettings{}, ErrMailerNotConfigured
	}
	return s, nil
}

// connect opens the session. Port 465 with SSL enabled uses implicit TLS,
// any other port upgrades with STARTTLS when SSL is enabled.
func (m *smtpMailer) connect(ctx context.Context, s smtpSettings) (*smtp.Client, error) {
	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	tlsConfig := &tls.Config{ServerName: s.host, MinVersion: tls.VersionTLS12}

	conn, err := m.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("smtp dial %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	if s.enableSSL && s.port == implicitTLSPort {
		conn = tls.Client(conn, tlsConfig)
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("smtp handshake: %w", err)
	}

	if s.enableSSL && s.port != implicitTLSPort {
		if err = client.StartTLS(tlsConfig); err != nil {
			client.Close()
			return nil, fmt.Errorf("smtp STARTTLS: %w", err)
		}
	}

	if s.username != "" {
		if err = client.Auth(smtp.PlainAuth("", s.username, s.password, s.host)); err != nil {
			client.Close()
			return nil, fmt.Errorf("smtp AUTH: %w", err)
		}
	}

	return client, nil
}

func composeMessage(s smtpSettings, to, subject, body string) []byte {
	from := mail.Address{Name: s.fromName, Address: s.fromEmail}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from.String())
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	buf.WriteString("Content-Transfer-Encoding: 8bit\r\n\r\n")
	buf.WriteString(body)
	return buf.Bytes()
}
