package models

// SeriesPoint is one derived figure pair for a snapshot date
type SeriesPoint struct {
	Date               string  `json:"date"` // Format: YYYY-MM-DD
	Spending           float64 `json:"spending"`
	AccessibleNetWorth float64 `json:"accessible_net_worth"`
}

// AffordabilityReport compares the total payment due against fast-access cash
type AffordabilityReport struct {
	TotalDue      float64  `json:"total_due"`
	AvailableCash *float64 `json:"available_cash,omitempty"` // nil when no snapshots exist
	Warning       *string  `json:"warning,omitempty"`
}

// PaymentsOverview is the payment tracker page data: all entries plus the
// affordability comparison against fast-access cash
type PaymentsOverview struct {
	Payments      []Payment `json:"payments"`
	TotalDue      float64   `json:"total_due"`
	AvailableCash *float64  `json:"available_cash,omitempty"`
	Warning       *string   `json:"warning,omitempty"`
}

// ChartSet holds the rendered charts as base64-encoded PNGs
type ChartSet struct {
	Spending string `json:"spending"`
	NetWorth string `json:"net_worth"`
}
