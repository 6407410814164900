package service

import (
	"context"

	"github.com/khuynh22/financial-tracker/internal/analytics"
	"github.com/khuynh22/financial-tracker/internal/chart"
	"github.com/khuynh22/financial-tracker/internal/models"
)

// DeriveSeries recomputes the (date, spending, accessible net worth) series
// from the owner's current account registry and full snapshot history.
// Account types are joined live, so removing an account drops its values
// from every point in the series.
func (s *Service) DeriveSeries(ctx context.Context) ([]models.SeriesPoint, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	accounts, err := s.repo.ListAccounts(userID)
	if err != nil {
		return nil, err
	}
	snapshots, err := s.repo.ListSnapshots(userID)
	if err != nil {
		return nil, err
	}

	return analytics.DeriveSeries(accounts, snapshots), nil
}

// BuildCharts derives the owner's series and renders both charts
func (s *Service) BuildCharts(ctx context.Context) (*models.ChartSet, error) {
	series, err := s.DeriveSeries(ctx)
	if err != nil {
		return nil, err
	}
	return chart.Render(series)
}
