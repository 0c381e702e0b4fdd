package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/akale-dev/pf_ledger_app/internal/core/domain"
	portsrepo "github.com/akale-dev/pf_ledger_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Fixed keys addressing the two independent ledger records.
const (
	balancesKey     = "account_balances"
	transactionsKey = "account_transactions"
)

const createKVTable = `
CREATE TABLE IF NOT EXISTS ledger_kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// SnapshotRepository stores the ledger's two records as JSON payloads in a
// local SQLite key-value table. It contains no business logic: pure
// serialize/deserialize against fixed keys.
type SnapshotRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// Ensure SnapshotRepository implements the repository port
var _ portsrepo.SnapshotRepositoryFacade = (*SnapshotRepository)(nil)

// NewSnapshotRepository opens (creating if needed) the SQLite file at dbPath
// and ensures the key-value schema exists.
func NewSnapshotRepository(dbPath string, logger *slog.Logger) (*SnapshotRepository, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(createKVTable); err != nil {
		return nil, fmt.Errorf("failed to create kv schema: %w", err)
	}

	return &SnapshotRepository{db: db, logger: logger}, nil
}

// Close closes the database connection.
func (r *SnapshotRepository) Close() error {
	return r.db.Close()
}

// SaveBalances writes the kind-to-balance mapping under its fixed key.
func (r *SnapshotRepository) SaveBalances(ctx context.Context, balances map[domain.AccountKind]decimal.Decimal) {
	r.save(ctx, balancesKey, balances)
}

// LoadBalances reads the kind-to-balance mapping. ok is false when the key
// is absent or the payload is unparseable.
func (r *SnapshotRepository) LoadBalances(ctx context.Context) (map[domain.AccountKind]decimal.Decimal, bool) {
	var balances map[domain.AccountKind]decimal.Decimal
	if !r.load(ctx, balancesKey, &balances) {
		return nil, false
	}
	return balances, true
}

// SaveTransactions writes the full ordered log under its fixed key. Dates
// are serialized as RFC 3339 strings by the standard time.Time encoding.
func (r *SnapshotRepository) SaveTransactions(ctx context.Context, transactions []domain.Transaction) {
	r.save(ctx, transactionsKey, transactions)
}

// LoadTransactions reads the full ordered log. ok is false when the key is
// absent or the payload is unparseable.
func (r *SnapshotRepository) LoadTransactions(ctx context.Context) ([]domain.Transaction, bool) {
	var transactions []domain.Transaction
	if !r.load(ctx, transactionsKey, &transactions) {
		return nil, false
	}
	return transactions, true
}

// save serializes value and upserts it under key. Failures are logged and
// swallowed: the adapter never reports failure upward.
func (r *SnapshotRepository) save(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		r.logger.Error("Failed to serialize record",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO ledger_kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(payload))
	if err != nil {
		r.logger.Error("Failed to persist record",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}

// load reads the payload under key into dest. It returns false for a missing
// key or an unparseable payload; both are treated as "no data".
func (r *SnapshotRepository) load(ctx context.Context, key string, dest any) bool {
	var payload string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM ledger_kv WHERE key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		r.logger.Error("Failed to read record",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return false
	}

	if err := json.Unmarshal([]byte(payload), dest); err != nil {
		// Corrupted payloads are indistinguishable from absent data as far
		// as callers are concerned.
		r.logger.Warn("Stored record is unparseable, treating as absent",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return false
	}
	return true
}
