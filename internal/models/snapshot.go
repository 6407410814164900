package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// DateFormat is the calendar-date layout used everywhere in the system.
// Dates are kept as strings so that lexicographic order equals chronological
// order.
const DateFormat = "2006-01-02"

// Snapshot is a dated point-in-time balance record. Values are keyed by the
// decimal account id of the owner's accounts at recording time.
type Snapshot struct {
	ID        int64              `json:"id"`
	UserID    int64              `json:"user_id"`
	Date      string             `json:"date"` // Format: YYYY-MM-DD
	Values    map[string]Balance `json:"values"`
	CreatedAt string             `json:"created_at"`
}

// Balance is the recorded value for one account in a snapshot. Asset accounts
// carry a single amount; debt accounts carry the current balance and the last
// statement balance.
type Balance struct {
	Amount    float64
	Current   float64
	Statement float64
	Debt      bool
}

// debtBalance is the wire shape of a debt balance.
type debtBalance struct {
	Current   float64 `json:"current"`
	Statement float64 `json:"statement"`
}

// MarshalJSON encodes an asset balance as a bare number and a debt balance as
// a {current, statement} object, matching the persisted blob layout.
func (b Balance) MarshalJSON() ([]byte, error) {
	if b.Debt {
		return json.Marshal(debtBalance{Current: b.Current, Statement: b.Statement})
	}
	return json.Marshal(b.Amount)
}

// UnmarshalJSON accepts either shape. Anything else decodes to a zero asset
// balance rather than failing the record.
func (b *Balance) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var d debtBalance
		if err := json.Unmarshal(data, &d); err == nil {
			*b = Balance{Debt: true, Current: d.Current, Statement: d.Statement}
			return nil
		}
		*b = Balance{Debt: true}
		return nil
	}
	var amount float64
	if err := json.Unmarshal(data, &amount); err != nil {
		*b = Balance{}
		return nil
	}
	*b = Balance{Amount: amount}
	return nil
}

// ValidateDate checks that s is a YYYY-MM-DD calendar date.
func ValidateDate(s string) error {
	if _, err := time.Parse(DateFormat, s); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// LenientAmount extracts a number from a raw JSON value. Both numeric tokens
// and numeric strings are accepted; anything unparseable counts as 0.0. This
// keeps a snapshot write from failing on a single bad field.
func LenientAmount(raw json.RawMessage) float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return 0
}

// BuildSnapshotValues shapes submitted raw values into stored balances. One
// entry is written per currently configured account: debt accounts read a
// {current, statement} object, every other type reads a single amount.
// Missing or malformed inputs default to zero.
func BuildSnapshotValues(accounts []Account, inputs map[string]json.RawMessage) map[string]Balance {
	values := make(map[string]Balance, len(accounts))
	for _, acc := range accounts {
		key := strconv.FormatInt(acc.ID, 10)
		raw := inputs[key]
		if acc.Type == AccountDebt {
			var d struct {
				Current   json.RawMessage `json:"current"`
				Statement json.RawMessage `json:"statement"`
			}
			// A non-object raw value leaves both fields empty, so both
			// balances default to zero.
			json.Unmarshal(raw, &d)
			values[key] = Balance{
				Debt:      true,
				Current:   LenientAmount(d.Current),
				Statement: LenientAmount(d.Statement),
			}
			continue
		}
		values[key] = Balance{Amount: LenientAmount(raw)}
	}
	return values
}
