package service

import (
	"context"
	"encoding/json"

	"github.com/khuynh22/financial-tracker/internal/models"
)

// RecordSnapshot stores a new dated balance record. The date must be a
// YYYY-MM-DD calendar date; the write is rejected with ErrInvalidDate
// otherwise. Submitted values are parsed leniently: an unparseable numeric
// field defaults to 0.0 instead of failing the record.
func (s *Service) RecordSnapshot(ctx context.Context, date string, values map[string]json.RawMessage) (*models.Snapshot, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := models.ValidateDate(date); err != nil {
		return nil, err
	}

	accounts, err := s.repo.ListAccounts(userID)
	if err != nil {
		return nil, err
	}

	snap := &models.Snapshot{
		UserID: userID,
		Date:   date,
		Values: models.BuildSnapshotValues(accounts, values),
	}

	if err := s.repo.CreateSnapshot(snap); err != nil {
		return nil, err
	}

	s.log.Infof("Snapshot %d recorded for user %d on %s", snap.ID, userID, snap.Date)
	return snap, nil
}

// UpdateSnapshot replaces the values of an existing snapshot in place,
// addressed by id, with the same lenient parsing as RecordSnapshot.
// Returns ErrNotFound when the id is not owned by the caller.
func (s *Service) UpdateSnapshot(ctx context.Context, snapshotID int64, values map[string]json.RawMessage) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	accounts, err := s.repo.ListAccounts(userID)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateSnapshot(userID, snapshotID, models.BuildSnapshotValues(accounts, values)); err != nil {
		return err
	}

	s.log.Infof("Snapshot %d updated for user %d", snapshotID, userID)
	return nil
}

// ListSnapshots returns the owner's snapshots ascending by date
func (s *Service) ListSnapshots(ctx context.Context) ([]models.Snapshot, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListSnapshots(userID)
}

// LatestSnapshot returns the owner's most recent snapshot, or nil when the
// owner has none
func (s *Service) LatestSnapshot(ctx context.Context) (*models.Snapshot, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.LatestSnapshot(userID)
}
