package sqlite_test

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/akale-dev/pf_ledger_app/internal/core/domain"
	"github.com/akale-dev/pf_ledger_app/internal/repositories/database/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func newTestRepo(t *testing.T) (*sqlite.SnapshotRepository, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "ledger.db")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo, err := sqlite.NewSnapshotRepository(dbPath, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo, dbPath
}

func TestLoadAbsentKeys(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	balances, ok := repo.LoadBalances(ctx)
	assert.False(t, ok)
	assert.Nil(t, balances)

	transactions, ok := repo.LoadTransactions(ctx)
	assert.False(t, ok)
	assert.Nil(t, transactions)
}

func TestBalancesRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	saved := map[domain.AccountKind]decimal.Decimal{
		domain.Pension:        decimal.RequireFromString("48750.00"),
		domain.Savings:        decimal.Zero,
		domain.CurrentAccount: decimal.RequireFromString("-12.34"),
	}
	repo.SaveBalances(ctx, saved)

	loaded, ok := repo.LoadBalances(ctx)
	require.True(t, ok)
	require.Len(t, loaded, len(saved))
	for kind, want := range saved {
		got, exists := loaded[kind]
		require.True(t, exists, "missing kind %q", kind)
		assert.True(t, want.Equal(got), "kind %q: want %s, got %s", kind, want, got)
	}
}

func TestBalancesOverwrite(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	repo.SaveBalances(ctx, map[domain.AccountKind]decimal.Decimal{
		domain.Pension: decimal.RequireFromString("1.00"),
	})
	repo.SaveBalances(ctx, map[domain.AccountKind]decimal.Decimal{
		domain.Pension: decimal.RequireFromString("2.00"),
	})

	loaded, ok := repo.LoadBalances(ctx)
	require.True(t, ok)
	assert.True(t, loaded[domain.Pension].Equal(decimal.RequireFromString("2.00")))
}

func TestTransactionsRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	saved := domain.SeedTransactions()
	repo.SaveTransactions(ctx, saved)

	loaded, ok := repo.LoadTransactions(ctx)
	require.True(t, ok)
	require.Len(t, loaded, len(saved))
	for i, want := range saved {
		got := loaded[i]
		assert.Equal(t, want.TransactionID, got.TransactionID)
		assert.Equal(t, want.Type, got.Type)
		assert.Equal(t, want.Account, got.Account)
		assert.True(t, want.Amount.Equal(got.Amount))
		assert.True(t, want.Date.Equal(got.Date), "dates must survive serialization")
		assert.Equal(t, want.Recipient, got.Recipient)
		assert.Equal(t, want.Status, got.Status)
	}
}

func TestStateSurvivesReopen(t *testing.T) {
	repo, dbPath := newTestRepo(t)
	ctx := context.Background()

	repo.SaveBalances(ctx, map[domain.AccountKind]decimal.Decimal{
		domain.Savings: decimal.RequireFromString("56750.00"),
	})
	repo.SaveTransactions(ctx, domain.SeedTransactions())
	require.NoError(t, repo.Close())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reopened, err := sqlite.NewSnapshotRepository(dbPath, logger)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	balances, ok := reopened.LoadBalances(ctx)
	require.True(t, ok)
	assert.True(t, balances[domain.Savings].Equal(decimal.RequireFromString("56750.00")))

	transactions, ok := reopened.LoadTransactions(ctx)
	require.True(t, ok)
	assert.Len(t, transactions, len(domain.SeedTransactions()))
}

func TestCorruptedPayloadTreatedAsAbsent(t *testing.T) {
	repo, dbPath := newTestRepo(t)
	ctx := context.Background()

	// Plant garbage under both fixed keys through a second connection
	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	for _, key := range []string{"account_balances", "account_transactions"} {
		_, err = db.Exec(
			`INSERT INTO ledger_kv (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, "not json at all{{{")
		require.NoError(t, err)
	}

	balances, ok := repo.LoadBalances(ctx)
	assert.False(t, ok, "corrupted balances must read as absent")
	assert.Nil(t, balances)

	transactions, ok := repo.LoadTransactions(ctx)
	assert.False(t, ok, "corrupted transactions must read as absent")
	assert.Nil(t, transactions)
}
