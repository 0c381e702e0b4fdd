package domain

import (
	"github.com/shopspring/decimal"
)

// AccountKind identifies one of the fixed accounts of the application.
// The set is closed: accounts are never created or destroyed at runtime,
// only mutated.
type AccountKind string

const (
	Pension        AccountKind = "pension"
	Savings        AccountKind = "savings"
	CurrentAccount AccountKind = "currentAccount"
)

// AccountKinds returns the closed set of account kinds, in display order.
func AccountKinds() []AccountKind {
	return []AccountKind{Pension, Savings, CurrentAccount}
}

// IsValid reports whether k is a member of the closed account-kind set.
func (k AccountKind) IsValid() bool {
	switch k {
	case Pension, Savings, CurrentAccount:
		return true
	}
	return false
}

// Account represents one of the fixed accounts of the ledger.
// Name, Color and Icon are presentation metadata and immutable;
// only Balance changes over the life of the process.
type Account struct {
	ID      AccountKind     `json:"id"`
	Name    string          `json:"name"`
	Color   string          `json:"color"`
	Icon    string          `json:"icon"`
	Balance decimal.Decimal `json:"balance"`
}
