package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/akale-dev/pf_ledger_app/internal/core/domain"
	portssvc "github.com/akale-dev/pf_ledger_app/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// transferService implements the two-sided transfer protocol on top of the
// ledger store. It builds the matched record pair; the store applies the
// whole movement as one indivisible state change.
type transferService struct {
	BaseService
	store portssvc.LedgerStoreSvc
}

// NewTransferService creates a new transfer engine over the given store.
func NewTransferService(store portssvc.LedgerStoreSvc) portssvc.TransferSvc {
	return &transferService{store: store}
}

// Ensure transferService implements the TransferSvc interface
var _ portssvc.TransferSvc = (*transferService)(nil)

// Transfer decreases from's balance by amount, increases to's balance by
// amount and appends exactly two completed transaction records: the
// destination side (+amount, labelled after the source account) inserted
// ahead of the source side (-amount, labelled after the destination
// account). Both records share a timestamp and a uuid base id distinguished
// by a per-side suffix. Overdraft is permitted: balances may go negative.
func (s *transferService) Transfer(ctx context.Context, from, to domain.AccountKind, amount decimal.Decimal) ([]domain.Transaction, error) {
	fromAcc, err := s.store.GetAccount(ctx, from)
	if err != nil {
		return nil, err
	}
	toAcc, err := s.store.GetAccount(ctx, to)
	if err != nil {
		return nil, err
	}

	baseID := uuid.NewString()
	now := time.Now()

	records := []domain.Transaction{
		{
			TransactionID: baseID + "_to",
			Type:          domain.Transfer,
			Account:       to,
			Amount:        amount,
			Date:          now,
			Recipient:     "From " + fromAcc.Name,
			Status:        domain.Completed,
		},
		{
			TransactionID: baseID + "_from",
			Type:          domain.Transfer,
			Account:       from,
			Amount:        amount.Neg(),
			Date:          now,
			Recipient:     "To " + toAcc.Name,
			Status:        domain.Completed,
		},
	}

	if err := s.store.ApplyTransfer(ctx, from, to, amount, records); err != nil {
		s.LogError(ctx, err, "Failed to apply transfer",
			slog.String("from", string(from)),
			slog.String("to", string(to)))
		return nil, err
	}

	s.LogInfo(ctx, "Transfer completed",
		slog.String("from", string(from)),
		slog.String("to", string(to)),
		slog.String("amount", amount.String()),
		slog.String("transfer_id", baseID))
	return records, nil
}
