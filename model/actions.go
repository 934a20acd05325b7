package model

import (
	"errors"
	"fmt"
)

// CashAction is the closed vocabulary of cash transaction kinds.
type CashAction string

const (
	DepositWithdraw CashAction = "DepositWithdraw"
	BrokerIntPaid   CashAction = "BrokerIntPaid"
	BrokerIntRcvd   CashAction = "BrokerIntRcvd"
	WhTax           CashAction = "WhTax"
	BondIntRcvd     CashAction = "BondIntRcvd"
	BondIntPaid     CashAction = "BondIntPaid"
	Fees            CashAction = "Fees"
	Dividend        CashAction = "Dividend"
	PaymentInLieu   CashAction = "PaymentInLieu"
	CommAdj         CashAction = "CommAdj"

	// ActionError marks a record whose account could not be classified.
	// Such records are visibly wrong in the report but do not abort the run.
	ActionError CashAction = "Error!"
)

// ErrUnknownActionKind is returned for a broker action string outside the
// known vocabulary. Unknown kinds must never be dropped silently: they may
// represent money the user needs to see.
var ErrUnknownActionKind = errors.New("unknown cash action kind")

var brokerActions = map[string]CashAction{
	"Deposits/Withdrawals":         DepositWithdraw,
	"Deposits & Withdrawals":       DepositWithdraw,
	"Broker Interest Paid":         BrokerIntPaid,
	"Broker Interest Received":     BrokerIntRcvd,
	"Withholding Tax":              WhTax,
	"Bond Interest Received":       BondIntRcvd,
	"Bond Interest Paid":           BondIntPaid,
	"Other Fees":                   Fees,
	"Dividends":                    Dividend,
	"Payment In Lieu Of Dividends": PaymentInLieu,
	"Commission Adjustments":       CommAdj,
}

// ParseCashAction maps a broker action-type string onto the closed vocabulary.
func ParseCashAction(s string) (CashAction, error) {
	action, ok := brokerActions[s]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownActionKind, s)
	}
	return action, nil
}

func (a CashAction) String() string {
	return string(a)
}
