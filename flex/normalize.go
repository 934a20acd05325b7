package flex

import (
	"fmt"
	"sort"

	"github.com/flexcmp/flexcmp/model"
	"github.com/flexcmp/flexcmp/symbols"
)

// Options controls normalization policy.
type Options struct {
	// KeepPaymentInLieu retags payment-in-lieu-of-dividend records as ordinary
	// dividends; the accounting ledger does not distinguish the two. When
	// false such records are excluded like interest and fees.
	KeepPaymentInLieu bool
}

// DefaultOptions returns the normalization policy used by the CLI.
func DefaultOptions() Options {
	return Options{KeepPaymentInLieu: true}
}

// Normalize converts raw cash transaction records into canonical transactions,
// keeping only the kinds relevant to dividend reconciliation (dividends,
// withholding tax and, per policy, payment in lieu). Every excluded record is
// echoed as skipped; an unrecognized action kind aborts the run.
func Normalize(records []CashTransaction, symbolMap *symbols.Map, opts Options) ([]model.Transaction, error) {
	sorted := make([]CashTransaction, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.ReportDate != b.ReportDate {
			return a.ReportDate < b.ReportDate
		}
		if a.DateTime != b.DateTime {
			return a.DateTime < b.DateTime
		}
		if a.Symbol != b.Symbol {
			return a.Symbol < b.Symbol
		}
		return a.Type < b.Type
	})

	txs := make([]model.Transaction, 0, len(sorted))
	for _, record := range sorted {
		action, err := model.ParseCashAction(record.Type)
		if err != nil {
			return nil, err
		}

		switch action {
		case model.Dividend, model.WhTax:
			// relevant as-is
		case model.PaymentInLieu:
			if !opts.KeepPaymentInLieu {
				fmt.Println("Skipped: " + skippedLine(record))
				continue
			}
			action = model.Dividend
		default:
			fmt.Println("Skipped: " + skippedLine(record))
			continue
		}

		amount, err := model.ParseAmount(record.Amount)
		if err != nil {
			return nil, err
		}
		date, err := model.ParseDateTime(record.DateTime)
		if err != nil {
			return nil, err
		}

		txs = append(txs, model.Transaction{
			Date:        date,
			ReportDate:  record.ReportDate,
			Symbol:      symbolMap.Resolve(record.Symbol),
			Type:        action,
			Amount:      amount,
			Currency:    record.Currency,
			Description: record.Description,
		})
	}

	return txs, nil
}

// skippedLine renders a raw record for the skip report: the record has not
// been normalized yet, so the broker's own action string is shown.
func skippedLine(r CashTransaction) string {
	date := r.DateTime
	if len(date) > len(model.ISODateFormat) {
		date = date[:len(model.ISODateFormat)]
	}
	return fmt.Sprintf("%s/%s %-7s %s %s %7s %s, %s",
		r.ReportDate, date, r.Symbol, r.ListingExchange, r.Type,
		r.Amount, r.Currency, r.Description)
}
