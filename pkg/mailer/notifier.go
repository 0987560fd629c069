package mailer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html.tmpl
var templatesFS embed.FS

// Notifier sends the account lifecycle emails.
type Notifier interface {
	SendVerification(ctx context.Context, to, link string) error
	SendPasswordReset(ctx context.Context, to, link string) error
}

type templateNotifier struct {
	sender  Sender
	appName string
	tmpl    *template.Template
}

type emailData struct {
	AppName string
	Link    string
	TTL     string
}

func NewNotifier(sender Sender, appName string) (Notifier, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}
	return &templateNotifier{sender: sender, appName: appName, tmpl: tmpl}, nil
}

func (n *templateNotifier) SendVerification(ctx context.Context, to, link string) error {
	body, err := n.render("verification.html.tmpl", emailData{AppName: n.appName, Link: link, TTL: "1 jam"})
	if err != nil {
		return err
	}
	return n.sender.Send(ctx, to, "Verifikasi Email Akun UMKM Anda", body)
}

func (n *templateNotifier) SendPasswordReset(ctx context.Context, to, link string) error {
	body, err := n.render("reset_password.html.tmpl", emailData{AppName: n.appName, Link: link, TTL: "15 menit"})
	if err != nil {
		return err
	}
	return n.sender.Send(ctx, to, "Reset Password Akun UMKM Anda", body)
}

func (n *templateNotifier) render(name string, data emailData) (string, error) {
	var buf bytes.Buffer
	if err := n.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
