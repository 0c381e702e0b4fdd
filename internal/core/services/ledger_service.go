package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/akale-dev/pf_ledger_app/internal/apperrors"
	"github.com/akale-dev/pf_ledger_app/internal/core/domain"
	portsrepo "github.com/akale-dev/pf_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/akale-dev/pf_ledger_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// ledgerService is the authoritative in-memory ledger state. A single mutex
// serializes every mutation so that the debit/credit/log-append sequence of
// a transfer stays indivisible under concurrent HTTP callers.
type ledgerService struct {
	BaseService
	repo portsrepo.SnapshotRepositoryFacade

	mu           sync.RWMutex
	accounts     map[domain.AccountKind]domain.Account
	transactions []domain.Transaction
	initialized  bool
}

// NewLedgerService creates the ledger store backed by the given snapshot
// repository. Initialize must be called before the store is used.
func NewLedgerService(repo portsrepo.SnapshotRepositoryFacade) portssvc.LedgerStoreSvc {
	return &ledgerService{repo: repo}
}

// Ensure ledgerService implements the LedgerStoreSvc interface
var _ portssvc.LedgerStoreSvc = (*ledgerService)(nil)

// Initialize loads prior state from the repository. Absent or corrupted
// records fall back to built-in defaults without surfacing an error: the
// repository reports both conditions as "no data". A persisted zero balance
// is a legitimate value and is kept; only a missing per-kind entry falls
// back to that kind's default.
func (s *ledgerService) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := domain.DefaultAccounts()
	if stored, ok := s.repo.LoadBalances(ctx); ok {
		for kind, balance := range stored {
			acc, exists := accounts[kind]
			if !exists {
				// The kind set is closed; anything else in the record is
				// stale data from an incompatible snapshot.
				s.LogDebug(ctx, "Ignoring stored balance for unknown account kind",
					slog.String("kind", string(kind)))
				continue
			}
			acc.Balance = balance
			accounts[kind] = acc
		}
		s.LogInfo(ctx, "Loaded persisted balances", slog.Int("count", len(stored)))
	} else {
		s.LogInfo(ctx, "No persisted balances, using defaults")
	}

	transactions, ok := s.repo.LoadTransactions(ctx)
	if !ok {
		transactions = domain.SeedTransactions()
		s.LogInfo(ctx, "No persisted transactions, using seed list")
	} else {
		s.LogInfo(ctx, "Loaded persisted transactions", slog.Int("count", len(transactions)))
	}

	s.accounts = accounts
	s.transactions = transactions
	s.initialized = true
}

// Initialized reports whether Initialize has run.
func (s *ledgerService) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialized
}

// Accounts returns a copy of the current account set.
func (s *ledgerService) Accounts(ctx context.Context) map[domain.AccountKind]domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[domain.AccountKind]domain.Account, len(s.accounts))
	for kind, acc := range s.accounts {
		out[kind] = acc
	}
	return out
}

// Transactions returns a copy of the log, newest first.
func (s *ledgerService) Transactions(ctx context.Context) []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// GetAccount returns the current account for kind. A kind outside the fixed
// set yields ErrNotFound; that cannot happen with correct callers since the
// set is closed and exhaustively seeded.
func (s *ledgerService) GetAccount(ctx context.Context, kind domain.AccountKind) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getAccountLocked(kind)
}

func (s *ledgerService) getAccountLocked(kind domain.AccountKind) (*domain.Account, error) {
	acc, ok := s.accounts[kind]
	if !ok {
		return nil, fmt.Errorf("unknown account kind %q: %w", kind, apperrors.ErrNotFound)
	}
	cp := acc
	return &cp, nil
}

// UpdateBalance replaces the balance of one account in place. It is a direct
// adjustment: no transaction record is created, and only the balances record
// is rewritten.
func (s *ledgerService) UpdateBalance(ctx context.Context, kind domain.AccountKind, newBalance decimal.Decimal) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[kind]
	if !ok {
		return nil, fmt.Errorf("unknown account kind %q: %w", kind, apperrors.ErrNotFound)
	}
	acc.Balance = newBalance
	s.accounts[kind] = acc
	s.persistBalancesLocked(ctx)

	s.LogInfo(ctx, "Balance updated",
		slog.String("account", string(kind)),
		slog.String("balance", newBalance.String()))
	cp := acc
	return &cp, nil
}

// AppendTransactions prepends records to the front of the log, preserving
// their relative order, then rewrites the transactions record only.
func (s *ledgerService) AppendTransactions(ctx context.Context, records []domain.Transaction) {
	if len(records) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prependLocked(records)
	s.persistTransactionsLocked(ctx)
}

// ApplyTransfer performs the balance movement and the log append of a
// transfer as one indivisible state change, then persists both records.
func (s *ledgerService) ApplyTransfer(ctx context.Context, from, to domain.AccountKind, amount decimal.Decimal, records []domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fromAcc, ok := s.accounts[from]
	if !ok {
		return fmt.Errorf("unknown account kind %q: %w", from, apperrors.ErrNotFound)
	}
	toAcc, ok := s.accounts[to]
	if !ok {
		return fmt.Errorf("unknown account kind %q: %w", to, apperrors.ErrNotFound)
	}

	fromAcc.Balance = fromAcc.Balance.Sub(amount)
	toAcc.Balance = toAcc.Balance.Add(amount)
	s.accounts[from] = fromAcc
	s.accounts[to] = toAcc
	s.prependLocked(records)

	s.persistBalancesLocked(ctx)
	s.persistTransactionsLocked(ctx)
	return nil
}

func (s *ledgerService) prependLocked(records []domain.Transaction) {
	log := make([]domain.Transaction, 0, len(records)+len(s.transactions))
	log = append(log, records...)
	log = append(log, s.transactions...)
	s.transactions = log
}

func (s *ledgerService) persistBalancesLocked(ctx context.Context) {
	balances := make(map[domain.AccountKind]decimal.Decimal, len(s.accounts))
	for kind, acc := range s.accounts {
		balances[kind] = acc.Balance
	}
	s.repo.SaveBalances(ctx, balances)
}

func (s *ledgerService) persistTransactionsLocked(ctx context.Context) {
	s.repo.SaveTransactions(ctx, s.transactions)
}
