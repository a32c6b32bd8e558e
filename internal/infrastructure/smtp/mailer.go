package smtp

import (
	"fmt"
	"net/smtp"

	"github.com/biteright/biteright-api/internal/config"
)

// Notifier delivers the out-of-band one-time secrets.
type Notifier interface {
	SendVerificationEmail(username, email, code string) error
	SendPasswordResetEmail(username, email, code string) error
}

type mailer struct {
	host        string
	port        string
	from        string
	username    string
	password    string
	frontendURL string
}

func NewMailer(cfg *config.Config) Notifier {
	return &mailer{
		host:        cfg.SMTPHost,
		port:        cfg.SMTPPort,
		from:        cfg.SMTPFrom,
		username:    cfg.SMTPUsername,
		password:    cfg.SMTPPassword,
		frontendURL: cfg.FrontendURL,
	}
}

func (m *mailer) SendVerificationEmail(username, email, code string) error {
	subject := "BiteRight - Email Verification"
	link := fmt.Sprintf("%s/verifyuser/%s/%s", m.frontendURL, email, code)
	body := fmt.Sprintf(
		"Hello, %s!\nThank you for registering in BiteRight!\nYour verification code is %s.\nYou can also follow this link to verify your email address:\n%s",
		username, code, link,
	)
	return m.send(email, subject, body)
}

func (m *mailer) SendPasswordResetEmail(username, email, code string) error {
	subject := "BiteRight - Forgotten password"
	link := fmt.Sprintf("%s/passwordreset/%s/%s", m.frontendURL, email, code)
	body := fmt.Sprintf(
		"Hello, %s!\nIf you requested to reset your password, use code %s or follow this link to complete the process:\n%s\nIf it wasn't you then ignore this email.",
		username, code, link,
	)
	return m.send(email, subject, body)
}

func (m *mailer) send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.from, to, subject, body)
	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg))
}
