package dto

import (
	"time"

	"github.com/akale-dev/pf_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransferRequest defines the data needed to move funds between accounts.
// The accountkind validation keeps both sides inside the closed kind set;
// nefield rejects same-account transfers at the edge.
type TransferRequest struct {
	FromAccount domain.AccountKind `json:"fromAccount" binding:"required,accountkind"`
	ToAccount   domain.AccountKind `json:"toAccount" binding:"required,accountkind,nefield=FromAccount"`
	Amount      decimal.Decimal    `json:"amount" binding:"required"`
}

// TransactionResponse defines the data returned for a ledger record.
// Mirrors domain.Transaction.
type TransactionResponse struct {
	ID        string                   `json:"id"`
	Type      domain.TransactionType   `json:"type"`
	Account   domain.AccountKind       `json:"account"`
	Amount    decimal.Decimal          `json:"amount"`
	Date      time.Time                `json:"date"`
	Recipient string                   `json:"recipient,omitempty"`
	Status    domain.TransactionStatus `json:"status"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO form
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        txn.TransactionID,
		Type:      txn.Type,
		Account:   txn.Account,
		Amount:    txn.Amount,
		Date:      txn.Date,
		Recipient: txn.Recipient,
		Status:    txn.Status,
	}
}

// ToTransactionListResponse converts a transaction log to its DTO form,
// preserving order.
func ToTransactionListResponse(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		out = append(out, ToTransactionResponse(txn))
	}
	return out
}
