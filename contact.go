package main

import (
	"context"
	"fmt"
	"net/http"
	"net/smtp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/snackashi/portfolio/internal/analytics"
	"github.com/snackashi/portfolio/internal/config"
)

// Mailer relays a contact message to the site owner.
type Mailer interface {
	Send(ctx context.Context, m analytics.Message) error
}

type contactForm struct {
	FullName string `form:"fullName" binding:"required,max=200"`
	Email    string `form:"email" binding:"required,email"`
	Message  string `form:"message" binding:"required,max=5000"`
}

// handleContact stores the message and, when SMTP is configured, mails it.
// A stored message counts as received even if mailing fails.
func (s *server) handleContact(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Please fill in your name, a valid email and a message.",
		})
		return
	}

	ctx := c.Request.Context()
	msg := analytics.Message{Name: form.FullName, Email: form.Email, Body: form.Message}
	id, err := s.Stats.SaveMessage(ctx, msg)
	if err != nil {
		s.Logger.Error("error saving contact message", "error", err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	if s.Mailer != nil {
		if err := s.Mailer.Send(ctx, msg); err != nil {
			s.Logger.Error("error sending email", "error", err)
		} else if err := s.Stats.MarkDelivered(ctx, id); err != nil {
			s.Logger.Error("error marking message delivered", "error", err)
		}
	}

	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}

var headerSafe = strings.NewReplacer("\r", "", "\n", " ")

type smtpMailer struct {
	cfg config.SMTPConfig
}

func (m smtpMailer) Send(_ context.Context, msg analytics.Message) error {
	subject := fmt.Sprintf("Portfolio Contact: %s", headerSafe.Replace(msg.Name))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.Name, msg.Email, msg.Body)

	raw := []byte("To: " + m.cfg.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + m.cfg.User + "\r\n" +
		"Reply-To: " + headerSafe.Replace(msg.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	if err := smtp.SendMail(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.User, []string{m.cfg.To}, raw); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
