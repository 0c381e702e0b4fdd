package services

import (
	"context"

	"github.com/akale-dev/pf_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerStoreSvc is the single source of truth for account balances and the
// transaction log. All readers observe a consistent snapshot; every mutation
// is immediately followed by a synchronous persistence write of the affected
// record.
type LedgerStoreSvc interface {
	// Initialize loads prior state from the snapshot repository, falling
	// back to built-in defaults (balances) and the seed list (transactions)
	// when a record is absent or unparseable. It never fails.
	Initialize(ctx context.Context)
	// Initialized reports whether Initialize has run.
	Initialized() bool
	// Accounts returns a snapshot of the current account set, one entry per
	// fixed kind.
	Accounts(ctx context.Context) map[domain.AccountKind]domain.Account
	// Transactions returns a snapshot of the log, newest first.
	Transactions(ctx context.Context) []domain.Transaction
	// GetAccount returns the current account for kind, or ErrNotFound for a
	// kind outside the fixed set.
	GetAccount(ctx context.Context, kind domain.AccountKind) (*domain.Account, error)
	// UpdateBalance replaces one account's balance in place without creating
	// a transaction record, then persists the balances record only.
	UpdateBalance(ctx context.Context, kind domain.AccountKind, newBalance decimal.Decimal) (*domain.Account, error)
	// AppendTransactions prepends records to the log, preserving their
	// relative order, then persists the transactions record only.
	AppendTransactions(ctx context.Context, records []domain.Transaction)
	// ApplyTransfer debits from, credits to and prepends records as one
	// indivisible state change, then persists both records.
	ApplyTransfer(ctx context.Context, from, to domain.AccountKind, amount decimal.Decimal, records []domain.Transaction) error
}

// TransferSvc implements the two-sided transfer protocol on top of the store.
type TransferSvc interface {
	// Transfer moves amount between two accounts and records a matched pair
	// of transactions, returning the created records destination-side first.
	Transfer(ctx context.Context, from, to domain.AccountKind, amount decimal.Decimal) ([]domain.Transaction, error)
}

// ServiceContainer holds the wired ledger services. Handlers consume only
// the Ledger facade; Store and Transfer are exposed for wiring and tests.
type ServiceContainer struct {
	Store    LedgerStoreSvc
	Transfer TransferSvc
	Ledger   LedgerSvcFacade
}

// LedgerSvcFacade is the sole entry point exposed to the consumer-facing
// layer. Every method fails with apperrors.ErrNotInitialized when invoked
// before the ledger has been initialized.
type LedgerSvcFacade interface {
	Accounts(ctx context.Context) (map[domain.AccountKind]domain.Account, error)
	Transactions(ctx context.Context) ([]domain.Transaction, error)
	GetAccount(ctx context.Context, kind domain.AccountKind) (*domain.Account, error)
	UpdateBalance(ctx context.Context, kind domain.AccountKind, newBalance decimal.Decimal) (*domain.Account, error)
	Transfer(ctx context.Context, from, to domain.AccountKind, amount decimal.Decimal) ([]domain.Transaction, error)
}
