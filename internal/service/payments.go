package service

import (
	"context"
	"encoding/json"

	"github.com/khuynh22/financial-tracker/internal/analytics"
	"github.com/khuynh22/financial-tracker/internal/models"
)

// AddPayment stores a new payment due entry. The due date must be a
// YYYY-MM-DD calendar date and the amount must parse as a number; either
// failure rejects the entry, reporting which field failed.
func (s *Service) AddPayment(ctx context.Context, cardName, dueDate string, amountDue json.RawMessage) (*models.Payment, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := models.ValidateDate(dueDate); err != nil {
		return nil, err
	}
	amount, err := models.StrictAmount("amount_due", amountDue)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		UserID:    userID,
		CardName:  cardName,
		DueDate:   dueDate,
		AmountDue: amount,
	}

	if err := s.repo.CreatePayment(payment); err != nil {
		return nil, err
	}

	s.log.Infof("Payment entry added for user %d: %s due %s", userID, payment.CardName, payment.DueDate)
	return payment, nil
}

// ListPayments returns the owner's payment entries ascending by due date,
// together with the total due and the affordability comparison.
func (s *Service) ListPayments(ctx context.Context) (*models.PaymentsOverview, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	payments, err := s.repo.ListPayments(userID)
	if err != nil {
		return nil, err
	}

	report, err := s.affordability(userID, payments)
	if err != nil {
		return nil, err
	}

	return &models.PaymentsOverview{
		Payments:      payments,
		TotalDue:      report.TotalDue,
		AvailableCash: report.AvailableCash,
		Warning:       report.Warning,
	}, nil
}

// CheckAffordability compares the owner's total payment due against
// fast-access cash from the latest snapshot
func (s *Service) CheckAffordability(ctx context.Context) (*models.AffordabilityReport, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	payments, err := s.repo.ListPayments(userID)
	if err != nil {
		return nil, err
	}

	report, err := s.affordability(userID, payments)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *Service) affordability(userID int64, payments []models.Payment) (models.AffordabilityReport, error) {
	accounts, err := s.repo.ListAccounts(userID)
	if err != nil {
		return models.AffordabilityReport{}, err
	}
	latest, err := s.repo.LatestSnapshot(userID)
	if err != nil {
		return models.AffordabilityReport{}, err
	}
	return analytics.Affordability(payments, accounts, latest), nil
}
