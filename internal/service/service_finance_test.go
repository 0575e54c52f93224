package service

import (
	"testing"
	"time"

	"github.com/dkurbatov/lifehub/internal/logger"
	"github.com/dkurbatov/lifehub/internal/store"
	"github.com/dkurbatov/lifehub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func financeDay(d int) time.Time {
	return time.Date(2025, 5, d, 0, 0, 0, 0, time.UTC)
}

func TestFinanceService_CreateTransaction_Validation(t *testing.T) {
	f := newFixture(t)
	svc := NewFinanceService(f.store, logger.Nop())
	ctx := f.as(f.demo)

	tests := []struct {
		name string
		data models.CreateTransactionRequest
	}{
		{name: "bad type", data: models.CreateTransactionRequest{Type: "transfer", Category: "x", Amount: 1, Date: financeDay(1)}},
		{name: "zero amount", data: models.CreateTransactionRequest{Type: models.TransactionIncome, Category: "x", Amount: 0, Date: financeDay(1)}},
		{name: "negative amount", data: models.CreateTransactionRequest{Type: models.TransactionIncome, Category: "x", Amount: -5, Date: financeDay(1)}},
		{name: "empty category", data: models.CreateTransactionRequest{Type: models.TransactionIncome, Amount: 1, Date: financeDay(1)}},
		{name: "zero date", data: models.CreateTransactionRequest{Type: models.TransactionIncome, Category: "x", Amount: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateTransaction(ctx, tt.data)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	// Nothing slipped through.
	transactions, err := svc.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestFinanceService_Summary(t *testing.T) {
	f := newFixture(t)
	svc := NewFinanceService(f.store, logger.Nop())
	ctx := f.as(f.demo)

	_, err := svc.CreateTransaction(ctx, models.CreateTransactionRequest{
		Type: models.TransactionIncome, Category: "salary", Amount: 500000, Date: financeDay(1),
	})
	require.NoError(t, err)
	_, err = svc.CreateTransaction(ctx, models.CreateTransactionRequest{
		Type: models.TransactionExpense, Category: "rent", Amount: 200000, Date: financeDay(5),
	})
	require.NoError(t, err)

	summary, err := svc.GetSummary(ctx, models.SummaryRange{StartDate: financeDay(1), EndDate: financeDay(31)})
	require.NoError(t, err)
	assert.Equal(t, int64(500000), summary.TotalIncome)
	assert.Equal(t, int64(200000), summary.TotalExpense)
	assert.Equal(t, int64(300000), summary.Balance)

	_, err = svc.GetSummary(ctx, models.SummaryRange{StartDate: financeDay(31), EndDate: financeDay(1)})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.GetSummary(ctx, models.SummaryRange{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFinanceService_TransactionOwnerScope(t *testing.T) {
	f := newFixture(t)
	svc := NewFinanceService(f.store, logger.Nop())

	created, err := svc.CreateTransaction(f.as(f.demo), models.CreateTransactionRequest{
		Type: models.TransactionExpense, Category: "food", Amount: 2500, Date: financeDay(3),
	})
	require.NoError(t, err)

	_, err = svc.GetTransaction(f.as(f.admin), created.InsertID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	amount := int64(2600)
	_, err = svc.UpdateTransaction(f.as(f.admin), models.UpdateTransactionRequest{
		ID:               created.InsertID,
		TransactionPatch: models.TransactionPatch{Amount: &amount},
	})
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.DeleteTransaction(f.as(f.admin), created.InsertID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	transaction, err := svc.GetTransaction(f.as(f.demo), created.InsertID)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), transaction.Amount)
}

func TestFinanceService_Balances(t *testing.T) {
	f := newFixture(t)
	svc := NewFinanceService(f.store, logger.Nop())
	ctx := f.as(f.demo)

	_, err := svc.GetLatestBalance(ctx)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.UpdateBalance(ctx, models.UpdateBalanceRequest{Amount: 100000, Date: financeDay(1)})
	require.NoError(t, err)
	_, err = svc.UpdateBalance(ctx, models.UpdateBalanceRequest{Amount: 120000, Date: financeDay(2)})
	require.NoError(t, err)

	latest, err := svc.GetLatestBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(120000), latest.Amount)

	history, err := svc.GetBalanceHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, int64(120000), history[0].Amount)

	_, err = svc.UpdateBalance(ctx, models.UpdateBalanceRequest{Amount: 1})
	assert.ErrorIs(t, err, ErrValidation)
}
