package services_test

import (
	"context"
	"testing"

	"github.com/akale-dev/pf_ledger_app/internal/apperrors"
	"github.com/akale-dev/pf_ledger_app/internal/core/domain"
	"github.com/akale-dev/pf_ledger_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacadeFailsBeforeInitialize(t *testing.T) {
	ctx := context.Background()
	container := services.NewServiceContainer(new(MockSnapshotRepository))
	facade := container.Ledger

	_, err := facade.Accounts(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotInitialized)

	_, err = facade.Transactions(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotInitialized)

	_, err = facade.GetAccount(ctx, domain.Savings)
	assert.ErrorIs(t, err, apperrors.ErrNotInitialized)

	_, err = facade.UpdateBalance(ctx, domain.Savings, decimal.Zero)
	assert.ErrorIs(t, err, apperrors.ErrNotInitialized)

	_, err = facade.Transfer(ctx, domain.Pension, domain.Savings, decimal.RequireFromString("1.00"))
	assert.ErrorIs(t, err, apperrors.ErrNotInitialized)
}

func TestFacadeDelegatesAfterInitialize(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockSnapshotRepository)
	mockRepo.On("LoadBalances", ctx).Return(nil, false).Once()
	mockRepo.On("LoadTransactions", ctx).Return(nil, false).Once()

	container := services.NewServiceContainer(mockRepo)
	container.Store.Initialize(ctx)

	accounts, err := container.Ledger.Accounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, len(domain.AccountKinds()))

	transactions, err := container.Ledger.Transactions(ctx)
	require.NoError(t, err)
	assert.Len(t, transactions, len(domain.SeedTransactions()))

	account, err := container.Ledger.GetAccount(ctx, domain.Pension)
	require.NoError(t, err)
	assert.Equal(t, domain.Pension, account.ID)
}
