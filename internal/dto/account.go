package dto

import (
	"github.com/akale-dev/pf_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	ID      domain.AccountKind `json:"id"`
	Name    string             `json:"name"`
	Color   string             `json:"color"`
	Icon    string             `json:"icon"`
	Balance decimal.Decimal    `json:"balance"`
}

// UpdateBalanceRequest defines the data for a direct balance adjustment.
// Balance is a pointer so that a legitimate zero balance is distinguishable
// from the field being omitted.
type UpdateBalanceRequest struct {
	Balance *decimal.Decimal `json:"balance" binding:"required"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:      acc.ID,
		Name:    acc.Name,
		Color:   acc.Color,
		Icon:    acc.Icon,
		Balance: acc.Balance,
	}
}

// ToAccountMapResponse converts the kind-to-account snapshot to its DTO form
func ToAccountMapResponse(accounts map[domain.AccountKind]domain.Account) map[domain.AccountKind]AccountResponse {
	out := make(map[domain.AccountKind]AccountResponse, len(accounts))
	for kind, acc := range accounts {
		a := acc
		out[kind] = ToAccountResponse(&a)
	}
	return out
}
