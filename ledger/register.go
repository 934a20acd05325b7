// Package ledger parses the fixed-column register output of the ledger CLI
// into canonical transactions, and runs the ledger binary to obtain it.
//
// The register report is not line-delimited per transaction: a header line
// carries date, payee and the first posting, and continuation lines carry
// further postings that inherit date and payee from the most recent header.
package ledger

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/flexcmp/flexcmp/model"
)

// Fixed column offsets of the register report.
const (
	dateWidth    = 10
	payeeStart   = 11
	payeeEnd     = 46
	accountStart = 46
	// The account column is blank on running-total decoration lines.
	accountCheckCol = 50
	amountStart     = 85
	amountEnd       = 107
)

// ErrAmbiguousBalancingAmount is returned when one posting group carries more
// than one explicit non-zero amount: the one-real-cash-leg invariant the
// balancing inference depends on has been violated and must not be silently
// reconciled.
var ErrAmbiguousBalancingAmount = errors.New("ambiguous balancing amount in posting group")

var accountEndPattern = regexp.MustCompile(`\s{2,}`)

// CleanUpRegisterOutput drops blank lines and running-total decoration lines,
// which carry no new information.
func CleanUpRegisterOutput(lines []string) []string {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(line) <= accountCheckCol || line[accountCheckCol] == ' ' {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}

// posting is one leg of a double-entry transaction, accumulated until its
// header group is closed out.
type posting struct {
	tx        model.Transaction
	hasAmount bool
}

// parser is the header-inheritance state machine: it is either awaiting a
// header or accumulating postings under the current one. A new header row or
// the end of input closes the pending group.
type parser struct {
	header model.Transaction
	group  []posting
	out    []model.Transaction
}

// ParseRegister parses cleaned register output lines. Lines must first go
// through CleanUpRegisterOutput.
func ParseRegister(lines []string) ([]model.Transaction, error) {
	p := &parser{}

	for _, line := range lines {
		if err := p.consume(line); err != nil {
			return nil, err
		}
	}
	if err := p.closeGroup(); err != nil {
		return nil, err
	}

	return p.out, nil
}

func (p *parser) consume(line string) error {
	if date, ok := headerDate(line); ok {
		if err := p.closeGroup(); err != nil {
			return err
		}
		p.header = model.Transaction{
			Date:       date,
			ReportDate: date.Format(model.ISODateFormat),
			Payee:      headerPayee(line),
		}
		p.header.Symbol = firstToken(p.header.Payee)
	}

	post, err := p.parsePosting(line)
	if err != nil {
		return err
	}
	p.group = append(p.group, post)
	return nil
}

// headerDate reports whether the line is a header row: it is one iff its
// first 10 characters parse as a date.
func headerDate(line string) (time.Time, bool) {
	if len(line) < dateWidth {
		return time.Time{}, false
	}
	date, err := time.Parse(model.ISODateFormat, line[:dateWidth])
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// headerPayee extracts the payee column, truncated at a comment marker.
func headerPayee(line string) string {
	end := payeeEnd
	if len(line) < end {
		end = len(line)
	}
	payee := line[payeeStart:end]
	if i := strings.IndexByte(payee, ';'); i >= 0 {
		payee = payee[:i]
	}
	return strings.TrimSpace(payee)
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// parsePosting extracts the account and the optional amount from a row and
// fills in the inherited header fields. A posting without an amount is the
// balancing leg; its amount is inferred when the group is closed.
func (p *parser) parsePosting(line string) (posting, error) {
	tx := p.header

	rest := ""
	if len(line) > accountStart {
		rest = line[accountStart:]
	}
	tx.Account = strings.TrimSpace(accountEndPattern.Split(strings.TrimRight(rest, " "), 2)[0])

	switch {
	case strings.HasPrefix(tx.Account, "In"):
		tx.Type = model.Dividend
	case strings.HasPrefix(tx.Account, "Ex"):
		tx.Type = model.WhTax
	default:
		log.Printf("WARN: unrecognized account type %q", tx.Account)
		tx.Type = model.ActionError
	}

	post := posting{tx: tx}

	if len(line) > amountStart {
		end := amountEnd
		if len(line) < end {
			end = len(line)
		}
		fields := strings.Fields(line[amountStart:end])
		switch len(fields) {
		case 0:
			// balancing leg
		case 2:
			amount, err := model.ParseAmount(fields[0])
			if err != nil {
				return posting{}, err
			}
			post.tx.Amount = amount
			post.tx.Currency = fields[1]
			post.hasAmount = true
		default:
			return posting{}, fmt.Errorf("%w: invalid amount column %q", model.ErrMalformedAmount, line[amountStart:end])
		}
	}

	return post, nil
}

// closeGroup emits the pending group, inferring the amount of every posting
// that lacks one: by double-entry convention they balance the single explicit
// amount, so each gets its negation and currency.
func (p *parser) closeGroup() error {
	if len(p.group) == 0 {
		return nil
	}

	explicit := -1
	for i, post := range p.group {
		if post.hasAmount && !post.tx.Amount.IsZero() {
			if explicit >= 0 {
				return fmt.Errorf("%w: payee %q", ErrAmbiguousBalancingAmount, p.header.Payee)
			}
			explicit = i
		}
	}

	for _, post := range p.group {
		if !post.hasAmount && explicit >= 0 {
			post.tx.Amount = p.group[explicit].tx.Amount.Neg()
			post.tx.Currency = p.group[explicit].tx.Currency
		}
		p.out = append(p.out, post.tx)
	}
	p.group = p.group[:0]
	return nil
}
