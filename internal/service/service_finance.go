package service

import (
	"context"
	"unicode/utf8"

	"github.com/dkurbatov/lifehub/internal/logger"
	"github.com/dkurbatov/lifehub/internal/store"
	"github.com/dkurbatov/lifehub/models"
)

type financeService struct {
	finance store.FinanceRepository

	logger *logger.Logger
}

func NewFinanceService(finance store.FinanceRepository, logger *logger.Logger) FinanceService {
	return &financeService{finance: finance, logger: logger}
}

func (f *financeService) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return f.finance.TransactionsByUser(ctx, caller.ID)
}

func (f *financeService) GetTransaction(ctx context.Context, id int64) (models.Transaction, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.Transaction{}, err
	}

	return f.ownedTransaction(ctx, caller.ID, id)
}

func (f *financeService) CreateTransaction(ctx context.Context, data models.CreateTransactionRequest) (models.InsertResult, error) {
	if data.Type != models.TransactionIncome && data.Type != models.TransactionExpense {
		return models.InsertResult{}, validationError("type must be %q or %q", models.TransactionIncome, models.TransactionExpense)
	}
	if data.Amount <= 0 {
		return models.InsertResult{}, validationError("amount must be a positive integer of minor units")
	}
	if data.Category == "" || utf8.RuneCountInString(data.Category) > maxNameLength {
		return models.InsertResult{}, validationError("category must be 1..%d characters", maxNameLength)
	}
	if data.Date.IsZero() {
		return models.InsertResult{}, validationError("date is required")
	}

	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.InsertResult{}, err
	}

	id, err := f.finance.CreateTransaction(ctx, caller.ID, data)
	if err != nil {
		return models.InsertResult{}, err
	}

	return models.InsertResult{InsertID: id}, nil
}

func (f *financeService) UpdateTransaction(ctx context.Context, req models.UpdateTransactionRequest) (models.AffectedResult, error) {
	if req.Type != nil && *req.Type != models.TransactionIncome && *req.Type != models.TransactionExpense {
		return models.AffectedResult{}, validationError("type must be %q or %q", models.TransactionIncome, models.TransactionExpense)
	}
	if req.Amount != nil && *req.Amount <= 0 {
		return models.AffectedResult{}, validationError("amount must be a positive integer of minor units")
	}

	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.AffectedResult{}, err
	}

	if _, err = f.ownedTransaction(ctx, caller.ID, req.ID); err != nil {
		return models.AffectedResult{}, err
	}

	affected, err := f.finance.UpdateTransaction(ctx, req.ID, req.TransactionPatch)
	if err != nil {
		return models.AffectedResult{}, err
	}

	return models.AffectedResult{AffectedRows: affected}, nil
}

func (f *financeService) DeleteTransaction(ctx context.Context, id int64) (models.AffectedResult, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.AffectedResult{}, err
	}

	if _, err = f.ownedTransaction(ctx, caller.ID, id); err != nil {
		return models.AffectedResult{}, err
	}

	affected, err := f.finance.DeleteTransaction(ctx, id)
	if err != nil {
		return models.AffectedResult{}, err
	}

	return models.AffectedResult{AffectedRows: affected}, nil
}

func (f *financeService) GetSummary(ctx context.Context, rng models.SummaryRange) (models.FinanceSummary, error) {
	if rng.StartDate.IsZero() || rng.EndDate.IsZero() {
		return models.FinanceSummary{}, validationError("startDate and endDate are required")
	}
	if rng.EndDate.Before(rng.StartDate) {
		return models.FinanceSummary{}, validationError("endDate must not precede startDate")
	}

	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.FinanceSummary{}, err
	}

	return f.finance.TransactionsSummary(ctx, caller.ID, rng.StartDate, rng.EndDate)
}

func (f *financeService) GetLatestBalance(ctx context.Context) (models.Balance, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.Balance{}, err
	}

	return f.finance.LatestBalance(ctx, caller.ID)
}

func (f *financeService) GetBalanceHistory(ctx context.Context) ([]models.Balance, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return f.finance.BalanceHistory(ctx, caller.ID)
}

func (f *financeService) UpdateBalance(ctx context.Context, data models.UpdateBalanceRequest) (models.InsertResult, error) {
	if data.Date.IsZero() {
		return models.InsertResult{}, validationError("date is required")
	}

	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.InsertResult{}, err
	}

	id, err := f.finance.CreateBalance(ctx, caller.ID, data)
	if err != nil {
		return models.InsertResult{}, err
	}

	return models.InsertResult{InsertID: id}, nil
}

// ownedTransaction hides other users' transactions behind ErrNotFound.
func (f *financeService) ownedTransaction(ctx context.Context, callerID, id int64) (models.Transaction, error) {
	transaction, err := f.finance.GetTransactionByID(ctx, id)
	if err != nil {
		return models.Transaction{}, err
	}
	if transaction.UserID != callerID {
		return models.Transaction{}, store.ErrNotFound
	}

	return transaction, nil
}
