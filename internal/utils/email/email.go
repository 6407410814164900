package email

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/khuynh22/financial-tracker/internal/config"
	"github.com/khuynh22/financial-tracker/internal/models"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendPaymentReminder sends a reminder listing the user's upcoming card
// payments. When the affordability check produced a warning it is appended
// to the body.
func (s *Sender) SendPaymentReminder(to, username string, due []models.Payment, report models.AffordabilityReport) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Upcoming Card Payment Reminder"

	// Format email body
	body := fmt.Sprintf(
		"Dear %s,\n\nThe following card payments are coming up:\n\n", username,
	)
	for _, p := range due {
		body += fmt.Sprintf("  %s: $%.2f due on %s\n", p.CardName, p.AmountDue, p.DueDate)
	}
	body += fmt.Sprintf("\nTotal due across all entries: $%.2f\n", report.TotalDue)
	if report.Warning != nil {
		body += "\n" + *report.Warning + "\n"
	}
	body += "\nBest regards,\nFinancial Tracker"
	e.Text = []byte(body)

	// Send email
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	err := e.Send(addr, auth)
	if err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
