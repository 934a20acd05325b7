// Package compare reconciles broker cash transactions against the book and
// reports the ones the book does not carry yet.
package compare

import (
	"sort"
	"time"

	"github.com/flexcmp/flexcmp/model"
)

// TransactionDays is the default lookback window when the broker report
// carries no transactions to derive a start date from.
const TransactionDays = 60

// MsgNoNewTransactions is printed when the broker report is empty; the book
// is never consulted in that case.
const MsgNoNewTransactions = "No new transactions in the broker report."

// ComparisonDate returns the date a transaction is matched on: the effective
// date or the book (report) date, depending on the mode.
func ComparisonDate(tx model.Transaction, effective bool) string {
	if effective {
		return tx.Date.Format(model.ISODateFormat)
	}
	return tx.ReportDate
}

// StartDate returns the oldest comparison date among txs, used as the begin
// date of the register report so the book query covers every broker record.
// With no transactions it falls back to lookbackDays before today
// (TransactionDays when lookbackDays is not positive).
func StartDate(txs []model.Transaction, effective bool, lookbackDays int) string {
	if len(txs) == 0 {
		if lookbackDays <= 0 {
			lookbackDays = TransactionDays
		}
		return time.Now().AddDate(0, 0, -lookbackDays).Format(model.ISODateFormat)
	}
	oldest := ComparisonDate(txs[0], effective)
	for _, tx := range txs[1:] {
		if date := ComparisonDate(tx, effective); date < oldest {
			oldest = date
		}
	}
	return oldest
}

// Sort orders transactions for stable reporting: by report date, then
// effective date, then symbol, then type.
func Sort(txs []model.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		a, b := txs[i], txs[j]
		if a.ReportDate != b.ReportDate {
			return a.ReportDate < b.ReportDate
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.Symbol != b.Symbol {
			return a.Symbol < b.Symbol
		}
		return a.Type < b.Type
	})
}

// matched reports whether the book carries a counterpart for the broker
// transaction: same comparison date, symbol, currency and type, with the
// book amount exactly balancing the broker amount. One counterpart is
// enough; multiplicity is not checked.
func matched(broker model.Transaction, book []model.Transaction, effective bool) bool {
	date := ComparisonDate(broker, effective)
	want := broker.Amount.Neg()
	for _, tx := range book {
		if tx.ReportDate == date &&
			tx.Symbol == broker.Symbol &&
			tx.Currency == broker.Currency &&
			tx.Type == broker.Type &&
			tx.Amount.Equal(want) {
			return true
		}
	}
	return false
}

// Compare reports every broker transaction the book does not balance, one
// "New:" line each in stable order, terminated by "Complete.". An empty
// broker report yields the fixed no-new-transactions message. broker is
// sorted in place.
func Compare(broker, book []model.Transaction, effective bool) []string {
	if len(broker) == 0 {
		return []string{MsgNoNewTransactions}
	}

	Sort(broker)

	var lines []string
	for _, tx := range broker {
		if !matched(tx, book, effective) {
			lines = append(lines, "New: "+tx.Display())
		}
	}
	return append(lines, "Complete.")
}
