package repositories

import (
	"context"

	"github.com/akale-dev/pf_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SnapshotRepositoryFacade persists the two independent ledger records to a
// durable key-value store addressed by fixed keys.
//
// Save methods are fire-and-forget: failures are handled (logged) inside the
// adapter and never surfaced to the caller. Load methods return the parsed
// value and ok=true, or ok=false when the key is absent or the stored
// payload fails to parse; they never return an error. Supplying defaults on
// ok=false is solely the caller's responsibility.
type SnapshotRepositoryFacade interface {
	SaveBalances(ctx context.Context, balances map[domain.AccountKind]decimal.Decimal)
	LoadBalances(ctx context.Context) (map[domain.AccountKind]decimal.Decimal, bool)
	SaveTransactions(ctx context.Context, transactions []domain.Transaction)
	LoadTransactions(ctx context.Context) ([]domain.Transaction, bool)
}
