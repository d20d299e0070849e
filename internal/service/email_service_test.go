package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/telecom-portal/internal/config"
)

func TestBuildPasswordResetBodyIsHTML(t *testing.T) {
	body := buildPasswordResetBody("JaneDoe1", "http://localhost:3000/reset-password?token=abc")

	if !strings.Contains(body, "<strong>JaneDoe1</strong>") {
		t.Fatalf("expected username in body, got: %s", body)
	}
	if !strings.Contains(body, `href="http://localhost:3000/reset-password?token=abc"`) {
		t.Fatalf("expected reset link in body, got: %s", body)
	}
	if !strings.Contains(body, "expire in 1 hour") {
		t.Fatalf("expected expiry notice in body, got: %s", body)
	}
	// 用户名经过 HTML 转义
	escaped := buildPasswordResetBody("<script>", "http://localhost:3000/reset")
	if strings.Contains(escaped, "<script>") {
		t.Fatalf("expected escaped username, got: %s", escaped)
	}
}

func TestBuildEmailMessageHTMLContentType(t *testing.T) {
	msg := buildEmailMessage("noreply@example.com", "jane@example.com", "Password Reset Request", "<p>hi</p>")

	if !strings.Contains(msg, "Content-Type: text/html; charset=UTF-8\r\n") {
		t.Fatalf("expected text/html content type, got: %s", msg)
	}
	if !strings.HasSuffix(msg, "<p>hi</p>") {
		t.Fatalf("expected body after headers, got: %s", msg)
	}
}

func TestSendPasswordResetEmailGuards(t *testing.T) {
	disabled := NewEmailService(&config.EmailConfig{Enabled: false})
	if err := disabled.SendPasswordResetEmail("jane@example.com", "JaneDoe1", "http://x"); !errors.Is(err, ErrEmailServiceDisabled) {
		t.Fatalf("expected ErrEmailServiceDisabled, got: %v", err)
	}

	unconfigured := NewEmailService(&config.EmailConfig{Enabled: true})
	if err := unconfigured.SendPasswordResetEmail("jane@example.com", "JaneDoe1", "http://x"); !errors.Is(err, ErrEmailServiceNotConfigured) {
		t.Fatalf("expected ErrEmailServiceNotConfigured, got: %v", err)
	}

	badRecipient := NewEmailService(&config.EmailConfig{Enabled: true, Host: "smtp.example.com", Port: 587, From: "noreply@example.com"})
	if err := badRecipient.SendPasswordResetEmail("not an address", "JaneDoe1", "http://x"); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got: %v", err)
	}
}
