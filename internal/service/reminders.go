package service

import (
	"github.com/khuynh22/financial-tracker/internal/models"
)

// SendDueReminders mails every user with a card payment due within the
// configured window. Each mail lists the upcoming entries and carries the
// affordability warning when one applies. Per-user failures are logged and
// skipped; the sweep itself only fails on a storage error.
func (s *Service) SendDueReminders() error {
	due, err := s.repo.FindPaymentsDueWithin(s.config.ReminderDays)
	if err != nil {
		return err
	}
	if len(due) == 0 {
		s.log.Debug("No upcoming payments, skipping reminder sweep")
		return nil
	}

	byUser := make(map[int64][]models.Payment)
	for _, p := range due {
		byUser[p.UserID] = append(byUser[p.UserID], p)
	}

	for userID, upcoming := range byUser {
		user, err := s.repo.FindUserByID(userID)
		if err != nil {
			s.log.Errorf("Reminder skipped, failed to load user %d: %v", userID, err)
			continue
		}

		// The warning compares every entry's amount, not just the
		// upcoming ones, against fast-access cash.
		payments, err := s.repo.ListPayments(userID)
		if err != nil {
			s.log.Errorf("Reminder skipped for user %d: %v", userID, err)
			continue
		}
		report, err := s.affordability(userID, payments)
		if err != nil {
			s.log.Errorf("Reminder skipped for user %d: %v", userID, err)
			continue
		}

		if err := s.mailer.SendPaymentReminder(user.Email, user.Username, upcoming, report); err != nil {
			s.log.Errorf("Failed to send reminder to user %d: %v", userID, err)
		}
	}

	s.log.Infof("Reminder sweep completed for %d users", len(byUser))
	return nil
}
