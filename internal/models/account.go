package models

// Recognized account types. An account may carry any tag; unrecognized tags
// are stored as-is and never matched by a derivation rule.
const (
	AccountAssetDebit   = "asset_debit"
	AccountAssetOther   = "asset_other"
	AccountAssetSavings = "asset_savings"
	AccountDebt         = "debt"
)

// Account is a named account in the owner's registry
type Account struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
}
