package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khuynh22/financial-tracker/internal/models"
)

func accounts() []models.Account {
	return []models.Account{
		{ID: 1, UserID: 1, Name: "Checking", Type: models.AccountAssetDebit},
		{ID: 2, UserID: 1, Name: "Visa", Type: models.AccountDebt},
		{ID: 3, UserID: 1, Name: "Brokerage", Type: models.AccountAssetOther},
		{ID: 4, UserID: 1, Name: "Emergency fund", Type: models.AccountAssetSavings},
	}
}

func TestDeriveSeriesDebitAndDebt(t *testing.T) {
	snaps := []models.Snapshot{{
		ID:   1,
		Date: "2024-01-01",
		Values: map[string]models.Balance{
			"1": {Amount: 500},
			"2": {Debt: true, Current: 200, Statement: 150},
		},
	}}

	series := DeriveSeries(accounts(), snaps)
	require.Len(t, series, 1)
	assert.Equal(t, "2024-01-01", series[0].Date)
	assert.Equal(t, 150.0, series[0].Spending)
	// adjusted debt = 200 - 150 = 50, net worth = 500 - 50
	assert.Equal(t, 450.0, series[0].AccessibleNetWorth)
}

func TestDeriveSeriesNoDebtAccounts(t *testing.T) {
	accs := []models.Account{
		{ID: 1, Type: models.AccountAssetDebit},
		{ID: 3, Type: models.AccountAssetOther},
	}
	snaps := []models.Snapshot{{
		Date: "2024-02-01",
		Values: map[string]models.Balance{
			"1": {Amount: 300},
			"3": {Amount: 200},
		},
	}}

	series := DeriveSeries(accs, snaps)
	require.Len(t, series, 1)
	assert.Zero(t, series[0].Spending)
	assert.Equal(t, 500.0, series[0].AccessibleNetWorth)
}

func TestDeriveSeriesNegativeAdjustedDebt(t *testing.T) {
	// Overpayment: current below statement. The negative adjusted debt must
	// flow through unchanged and raise net worth.
	snaps := []models.Snapshot{{
		Date: "2024-03-01",
		Values: map[string]models.Balance{
			"1": {Amount: 100},
			"2": {Debt: true, Current: 50, Statement: 80},
		},
	}}

	series := DeriveSeries(accounts(), snaps)
	require.Len(t, series, 1)
	assert.Equal(t, 80.0, series[0].Spending)
	assert.Equal(t, 130.0, series[0].AccessibleNetWorth)
}

func TestDeriveSeriesSavingsIgnored(t *testing.T) {
	snaps := []models.Snapshot{{
		Date: "2024-04-01",
		Values: map[string]models.Balance{
			"1": {Amount: 100},
			"4": {Amount: 9000},
		},
	}}

	series := DeriveSeries(accounts(), snaps)
	require.Len(t, series, 1)
	assert.Equal(t, 100.0, series[0].AccessibleNetWorth)
}

func TestDeriveSeriesDeletedAccountDroppedEverywhere(t *testing.T) {
	snaps := []models.Snapshot{
		{Date: "2024-01-01", Values: map[string]models.Balance{"1": {Amount: 500}, "3": {Amount: 100}}},
		{Date: "2024-02-01", Values: map[string]models.Balance{"1": {Amount: 600}, "3": {Amount: 100}}},
	}

	full := DeriveSeries(accounts(), snaps)
	require.Len(t, full, 2)
	assert.Equal(t, 600.0, full[0].AccessibleNetWorth)
	assert.Equal(t, 700.0, full[1].AccessibleNetWorth)

	// Types join live against the current registry, so removing account 3
	// retroactively drops its values from past snapshots too.
	withoutBrokerage := []models.Account{accounts()[0], accounts()[1], accounts()[3]}
	after := DeriveSeries(withoutBrokerage, snaps)
	require.Len(t, after, 2)
	assert.Equal(t, 500.0, after[0].AccessibleNetWorth)
	assert.Equal(t, 600.0, after[1].AccessibleNetWorth)
}

func TestDeriveSeriesUnknownAndUnrecognizedTypesSkipped(t *testing.T) {
	accs := []models.Account{
		{ID: 1, Type: models.AccountAssetDebit},
		{ID: 9, Type: "crypto_wallet"}, // unrecognized tag is inert
	}
	snaps := []models.Snapshot{{
		Date: "2024-05-01",
		Values: map[string]models.Balance{
			"1":  {Amount: 50},
			"9":  {Amount: 7777},
			"42": {Amount: 1000}, // orphaned key from a deleted account
		},
	}}

	series := DeriveSeries(accs, snaps)
	require.Len(t, series, 1)
	assert.Equal(t, 50.0, series[0].AccessibleNetWorth)
}

func TestDeriveSeriesMalformedDateExcluded(t *testing.T) {
	snaps := []models.Snapshot{
		{Date: "2024-01-01", Values: map[string]models.Balance{"1": {Amount: 10}}},
		{Date: "01/02/2024", Values: map[string]models.Balance{"1": {Amount: 20}}},
		{Date: "2024-03-01", Values: map[string]models.Balance{"1": {Amount: 30}}},
	}

	series := DeriveSeries(accounts(), snaps)
	require.Len(t, series, 2)
	assert.Equal(t, "2024-01-01", series[0].Date)
	assert.Equal(t, "2024-03-01", series[1].Date)
}

func TestFastAccessCashDebitOnly(t *testing.T) {
	latest := &models.Snapshot{
		Date: "2024-06-01",
		Values: map[string]models.Balance{
			"1": {Amount: 450},  // asset_debit: counted
			"3": {Amount: 1000}, // asset_other: counted in net worth, not here
			"4": {Amount: 5000}, // asset_savings: never counted
		},
	}

	cash, ok := FastAccessCash(accounts(), latest)
	require.True(t, ok)
	assert.Equal(t, 450.0, cash)
}

func TestFastAccessCashNoSnapshots(t *testing.T) {
	_, ok := FastAccessCash(accounts(), nil)
	assert.False(t, ok)
}

func TestAffordabilityWarning(t *testing.T) {
	payments := []models.Payment{
		{CardName: "Visa", DueDate: "2024-06-15", AmountDue: 400},
		{CardName: "Amex", DueDate: "2024-06-20", AmountDue: 200},
	}
	latest := &models.Snapshot{
		Date:   "2024-06-01",
		Values: map[string]models.Balance{"1": {Amount: 450}},
	}

	report := Affordability(payments, accounts(), latest)
	assert.Equal(t, 600.0, report.TotalDue)
	require.NotNil(t, report.AvailableCash)
	assert.Equal(t, 450.0, *report.AvailableCash)
	require.NotNil(t, report.Warning)
	assert.Contains(t, *report.Warning, "$600.00")
	assert.Contains(t, *report.Warning, "$450.00")
}

func TestAffordabilityNoWarningWhenCovered(t *testing.T) {
	payments := []models.Payment{{AmountDue: 100}}
	latest := &models.Snapshot{
		Date:   "2024-06-01",
		Values: map[string]models.Balance{"1": {Amount: 450}},
	}

	report := Affordability(payments, accounts(), latest)
	assert.Nil(t, report.Warning)
}

func TestAffordabilityNoSnapshotsNeverWarns(t *testing.T) {
	payments := []models.Payment{{AmountDue: 1e9}}

	report := Affordability(payments, accounts(), nil)
	assert.Nil(t, report.AvailableCash)
	assert.Nil(t, report.Warning)
}
