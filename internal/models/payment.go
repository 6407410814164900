package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Payment is a credit-card payment due entry. It carries no relationship to
// accounts or snapshots beyond the owner.
// Payment amounts are validated strictly, unlike snapshot values: a
// submitted amount that does not parse as a number rejects the entry with a
// ValidationError instead of defaulting to zero.
type Payment struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	CardName  string  `json:"card_name"`
	DueDate   string  `json:"due_date"` // Format: YYYY-MM-DD
	AmountDue float64 `json:"amount_due"`
	CreatedAt string  `json:"created_at"`
}

// StrictAmount parses a raw JSON value as a number, accepting numeric tokens
// and numeric strings. Unlike LenientAmount it fails instead of defaulting.
func StrictAmount(field string, raw json.RawMessage) (float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, &ValidationError{Field: field, Reason: "required"}
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, nil
		}
	}
	return 0, &ValidationError{Field: field, Reason: "must be a number"}
}
