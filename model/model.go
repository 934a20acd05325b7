// Package model holds the canonical transaction shape that both the broker
// feed and the ledger register output are normalized into before comparison.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ISODateFormat is the date layout used everywhere in reports and output.
const ISODateFormat = "2006-01-02"

const dateTimeFormat = "2006-01-02;15:04:05"

var (
	// ErrMalformedAmount is returned when an amount string cannot be parsed
	// exactly. Financial data is never guessed.
	ErrMalformedAmount = errors.New("malformed amount")
	// ErrMalformedDate is returned for a date-time string that is neither a
	// bare date nor a date;time pair.
	ErrMalformedDate = errors.New("malformed date")
)

// Transaction is the canonical unit of comparison. It is a pure value:
// constructed once by a normalizer or parser, consumed once by the matcher.
type Transaction struct {
	// Date is the transaction's effective (economic) date-time.
	Date time.Time
	// ReportDate is the ISO date the broker booked the event. It may differ
	// from the effective date, e.g. tax adjustments posted weeks later.
	ReportDate  string
	Payee       string
	Account     string
	Symbol      string
	Type        CashAction
	Amount      decimal.Decimal
	Currency    string
	Description string
}

// Display renders the transaction in the fixed-width report format. The
// alignment is part of the externally verified output contract.
func (t Transaction) Display() string {
	return fmt.Sprintf("%s/%s %-7s %-8s %7s %s, %s",
		t.ReportDate, t.Date.Format(ISODateFormat),
		t.Symbol, t.Type, t.Amount, t.Currency, t.Description)
}

// ParseAmount parses a report amount into an exact decimal, stripping
// thousands separators first.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(s, ",", "")
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMalformedAmount, s)
	}
	return amount, nil
}

// ParseDateTime parses the broker date-time field. The feed supplies either a
// bare date (10 characters) or a date;time pair (19 characters); both are
// normalized to a date-time. Any other length is a hard failure.
func ParseDateTime(s string) (time.Time, error) {
	switch len(s) {
	case len(ISODateFormat):
		t, err := time.Parse(ISODateFormat, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
		}
		return t, nil
	case len(dateTimeFormat):
		t, err := time.Parse(dateTimeFormat, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
		}
		return t, nil
	default:
		return time.Time{}, fmt.Errorf("%w: unexpected length %d in %q", ErrMalformedDate, len(s), s)
	}
}
