package service

import (
	"context"

	"github.com/khuynh22/financial-tracker/internal/models"
)

// RegisterAccount appends a new account to the owner's registry. The type tag
// is stored as given; an unrecognized tag is accepted and is simply never
// matched by any derivation rule.
func (s *Service) RegisterAccount(ctx context.Context, name, accountType string) (*models.Account, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		UserID: userID,
		Name:   name,
		Type:   accountType,
	}

	if err := s.repo.CreateAccount(account); err != nil {
		return nil, err
	}

	s.log.Infof("Account registered for user %d: %s (%s)", userID, account.Name, account.Type)
	return account, nil
}

// ListAccounts returns the owner's accounts in creation order
func (s *Service) ListAccounts(ctx context.Context) ([]models.Account, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListAccounts(userID)
}

// RemoveAccount deletes the account if owned by the caller; removing a
// missing or foreign account is a silent no-op. Existing snapshot values
// keep their orphaned keys, which derivations skip.
func (s *Service) RemoveAccount(ctx context.Context, accountID int64) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteAccount(userID, accountID); err != nil {
		return err
	}

	s.log.Infof("Account %d removed for user %d", accountID, userID)
	return nil
}
