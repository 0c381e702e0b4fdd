package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultAccounts returns the built-in account set used when no persisted
// balances exist. The metadata is fixed; only the balances are ever replaced
// by a persisted snapshot at load time.
func DefaultAccounts() map[AccountKind]Account {
	return map[AccountKind]Account{
		Pension: {
			ID:      Pension,
			Name:    "Pension",
			Color:   "#FFFFFF",
			Icon:    "pension",
			Balance: decimal.RequireFromString("48750.00"),
		},
		Savings: {
			ID:      Savings,
			Name:    "Savings",
			Color:   "#A488F5",
			Icon:    "savings",
			Balance: decimal.RequireFromString("56250.00"),
		},
		CurrentAccount: {
			ID:      CurrentAccount,
			Name:    "Current Account",
			Color:   "#E4B33D",
			Icon:    "card",
			Balance: decimal.RequireFromString("740500.00"),
		},
	}
}

// SeedTransactions returns the sample transaction log used when no persisted
// transactions exist, newest first.
func SeedTransactions() []Transaction {
	return []Transaction{
		{
			TransactionID: "1",
			Type:          Withdrawal,
			Account:       CurrentAccount,
			Amount:        decimal.RequireFromString("-250.00"),
			Date:          time.Date(2025, time.October, 29, 9, 25, 0, 0, time.UTC),
			Recipient:     "ATM Withdrawal",
			Status:        Completed,
		},
		{
			TransactionID: "2",
			Type:          Topup,
			Account:       CurrentAccount,
			Amount:        decimal.RequireFromString("300.00"),
			Date:          time.Date(2025, time.October, 16, 13, 15, 0, 0, time.UTC),
			Recipient:     "Salary Deposit",
			Status:        Completed,
		},
		{
			TransactionID: "3",
			Type:          Transfer,
			Account:       Savings,
			Amount:        decimal.RequireFromString("500.00"),
			Date:          time.Date(2025, time.October, 10, 10, 20, 0, 0, time.UTC),
			Recipient:     "From Current Account",
			Status:        Completed,
		},
	}
}
