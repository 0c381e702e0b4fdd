package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger record.
type TransactionType string

const (
	Withdrawal TransactionType = "withdrawal"
	Topup      TransactionType = "topup"
	Transfer   TransactionType = "transfer"
)

// TransactionStatus indicates the settlement state of a record.
// Core operations only ever produce Completed; Pending and Failed are a
// reserved extension point.
type TransactionStatus string

const (
	Completed TransactionStatus = "completed"
	Pending   TransactionStatus = "pending"
	Failed    TransactionStatus = "failed"
)

// Transaction is a single ledger record applying to one account.
// Amount is signed relative to Account: negative is an outflow, positive an
// inflow. Records are append-only; existing records are never mutated or
// deleted. A transfer produces two records sharing a base TransactionID,
// distinguished by a per-side suffix.
type Transaction struct {
	TransactionID string            `json:"id"`
	Type          TransactionType   `json:"type"`
	Account       AccountKind       `json:"account"`
	Amount        decimal.Decimal   `json:"amount"`
	Date          time.Time         `json:"date"`
	Recipient     string            `json:"recipient,omitempty"`
	Status        TransactionStatus `json:"status"`
}
