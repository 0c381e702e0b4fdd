package services

import (
	"context"

	"github.com/akale-dev/pf_ledger_app/internal/apperrors"
	"github.com/akale-dev/pf_ledger_app/internal/core/domain"
	portssvc "github.com/akale-dev/pf_ledger_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// ledgerFacade is the sole entry point handed to the consumer-facing layer.
// Using it before the store has been initialized is a programmer-contract
// violation and fails loudly with ErrNotInitialized instead of silently
// serving wrong data.
type ledgerFacade struct {
	store    portssvc.LedgerStoreSvc
	transfer portssvc.TransferSvc
}

// NewLedgerFacade creates the consumer-facing ledger facade.
func NewLedgerFacade(store portssvc.LedgerStoreSvc, transfer portssvc.TransferSvc) portssvc.LedgerSvcFacade {
	return &ledgerFacade{store: store, transfer: transfer}
}

// Ensure ledgerFacade implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerFacade)(nil)

func (f *ledgerFacade) ready() error {
	if !f.store.Initialized() {
		return apperrors.ErrNotInitialized
	}
	return nil
}

func (f *ledgerFacade) Accounts(ctx context.Context) (map[domain.AccountKind]domain.Account, error) {
	if err := f.ready(); err != nil {
		return nil, err
	}
	return f.store.Accounts(ctx), nil
}

func (f *ledgerFacade) Transactions(ctx context.Context) ([]domain.Transaction, error) {
	if err := f.ready(); err != nil {
		return nil, err
	}
	return f.store.Transactions(ctx), nil
}

func (f *ledgerFacade) GetAccount(ctx context.Context, kind domain.AccountKind) (*domain.Account, error) {
	if err := f.ready(); err != nil {
		return nil, err
	}
	return f.store.GetAccount(ctx, kind)
}

func (f *ledgerFacade) UpdateBalance(ctx context.Context, kind domain.AccountKind, newBalance decimal.Decimal) (*domain.Account, error) {
	if err := f.ready(); err != nil {
		return nil, err
	}
	return f.store.UpdateBalance(ctx, kind, newBalance)
}

func (f *ledgerFacade) Transfer(ctx context.Context, from, to domain.AccountKind, amount decimal.Decimal) ([]domain.Transaction, error) {
	if err := f.ready(); err != nil {
		return nil, err
	}
	return f.transfer.Transfer(ctx, from, to, amount)
}
