// Package analytics derives aggregate figures from account and snapshot
// records. Everything here is a pure function over in-memory data: results
// are recomputed in full on every call, and account types are joined live
// from the current registry rather than captured at snapshot time. Deleting
// an account therefore removes its contribution from every snapshot's derived
// figures, past ones included.
package analytics

import (
	"fmt"
	"strconv"

	"github.com/khuynh22/financial-tracker/internal/models"
)

// DeriveSeries computes the (date, spending, accessible net worth) series
// from snapshots in ascending date order. Per snapshot:
//
//	spending            = sum of statement balances over debt accounts
//	adjusted debt       = total current debt - total statement debt
//	accessible assets   = sum over asset_debit and asset_other accounts
//	accessible networth = accessible assets - adjusted debt
//
// asset_savings balances count toward neither figure. Value keys with no
// matching account are skipped, and a snapshot whose date fails to parse is
// silently excluded from the series.
func DeriveSeries(accounts []models.Account, snapshots []models.Snapshot) []models.SeriesPoint {
	typeByID := make(map[string]string, len(accounts))
	for _, acc := range accounts {
		typeByID[strconv.FormatInt(acc.ID, 10)] = acc.Type
	}

	series := make([]models.SeriesPoint, 0, len(snapshots))
	for _, snap := range snapshots {
		if models.ValidateDate(snap.Date) != nil {
			continue
		}

		var spending, totalCurrentDebt, totalStatementDebt, accessibleAssets float64
		for accID, value := range snap.Values {
			switch typeByID[accID] {
			case models.AccountDebt:
				totalCurrentDebt += value.Current
				totalStatementDebt += value.Statement
				spending += value.Statement
			case models.AccountAssetDebit, models.AccountAssetOther:
				accessibleAssets += value.Amount
			}
			// asset_savings and unknown types contribute nothing
		}

		adjustedDebt := totalCurrentDebt - totalStatementDebt
		series = append(series, models.SeriesPoint{
			Date:               snap.Date,
			Spending:           spending,
			AccessibleNetWorth: accessibleAssets - adjustedDebt,
		})
	}
	return series
}

// FastAccessCash sums asset_debit balances over the latest snapshot only.
// Note the deliberately narrower type set than DeriveSeries: asset_other
// counts toward accessible net worth but not toward fast-access cash.
// ok is false when the owner has no snapshots.
func FastAccessCash(accounts []models.Account, latest *models.Snapshot) (cash float64, ok bool) {
	if latest == nil {
		return 0, false
	}
	for _, acc := range accounts {
		if acc.Type != models.AccountAssetDebit {
			continue
		}
		if value, found := latest.Values[strconv.FormatInt(acc.ID, 10)]; found {
			cash += value.Amount
		}
	}
	return cash, true
}

// TotalDue sums the amount due over all payment entries.
func TotalDue(payments []models.Payment) float64 {
	var total float64
	for _, p := range payments {
		total += p.AmountDue
	}
	return total
}

// Affordability compares total payment due against fast-access cash. A
// warning is produced only when cash is available and the total due exceeds
// it; with no snapshots there is never a warning, regardless of the total.
func Affordability(payments []models.Payment, accounts []models.Account, latest *models.Snapshot) models.AffordabilityReport {
	report := models.AffordabilityReport{TotalDue: TotalDue(payments)}

	cash, ok := FastAccessCash(accounts, latest)
	if !ok {
		return report
	}
	report.AvailableCash = &cash

	if report.TotalDue > cash {
		warning := fmt.Sprintf(
			"Warning: Total payment due ($%.2f) exceeds available fast-access cash ($%.2f).",
			report.TotalDue, cash,
		)
		report.Warning = &warning
	}
	return report
}
