package store

import (
	"context"
	"sort"
	"time"

	"github.com/dkurbatov/lifehub/models"
)

// List query caps for the finance page.
const (
	transactionsLimit   = 100
	balanceHistoryLimit = 30
)

// TransactionsByUser returns up to transactionsLimit transactions owned by
// userID, most recent date first.
func (s *Store) TransactionsByUser(ctx context.Context, userID int64) ([]models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Transaction, 0)
	for _, t := range s.transactions {
		if t.UserID == userID {
			result = append(result, t)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date.Equal(result[j].Date) {
			return result[i].ID > result[j].ID
		}
		return result[i].Date.After(result[j].Date)
	})
	if len(result) > transactionsLimit {
		result = result[:transactionsLimit]
	}

	return result, nil
}

// GetTransactionByID returns the transaction with the given id or
// ErrNotFound.
func (s *Store) GetTransactionByID(ctx context.Context, id int64) (models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.transactions[id]
	if !ok {
		return models.Transaction{}, ErrNotFound
	}

	return t, nil
}

// CreateTransaction inserts a new transaction owned by userID. Currency
// defaults to models.DefaultCurrency when empty.
func (s *Store) CreateTransaction(ctx context.Context, userID int64, data models.CreateTransactionRequest) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	currency := data.Currency
	if currency == "" {
		currency = models.DefaultCurrency
	}

	now := s.now()
	s.transactionSeq++
	transaction := models.Transaction{
		ID:          s.transactionSeq,
		UserID:      userID,
		Type:        data.Type,
		Category:    data.Category,
		Amount:      data.Amount,
		Currency:    currency,
		Description: data.Description,
		Date:        data.Date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.transactions[transaction.ID] = transaction

	return transaction.ID, nil
}

// UpdateTransaction applies a partial patch and refreshes the updated
// timestamp. Returns the number of affected records.
func (s *Store) UpdateTransaction(ctx context.Context, id int64, patch models.TransactionPatch) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	transaction, ok := s.transactions[id]
	if !ok {
		return 0, nil
	}

	if patch.Type != nil {
		transaction.Type = *patch.Type
	}
	if patch.Category != nil {
		transaction.Category = *patch.Category
	}
	if patch.Amount != nil {
		transaction.Amount = *patch.Amount
	}
	if patch.Currency != nil {
		transaction.Currency = *patch.Currency
	}
	if patch.Description != nil {
		transaction.Description = *patch.Description
	}
	if patch.Date != nil {
		transaction.Date = *patch.Date
	}
	transaction.UpdatedAt = s.now()
	s.transactions[id] = transaction

	return 1, nil
}

// DeleteTransaction removes the transaction with the given id. Returns the
// number of affected records.
func (s *Store) DeleteTransaction(ctx context.Context, id int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.transactions[id]; !ok {
		return 0, nil
	}
	delete(s.transactions, id)

	return 1, nil
}

// TransactionsSummary aggregates the user's transactions with Date inside
// [startDate, endDate] (inclusive on both ends). Amounts stay in integer
// minor units; Balance = income - expense.
func (s *Store) TransactionsSummary(ctx context.Context, userID int64, startDate, endDate time.Time) (models.FinanceSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var summary models.FinanceSummary
	for _, t := range s.transactions {
		if t.UserID != userID {
			continue
		}
		if t.Date.Before(startDate) || t.Date.After(endDate) {
			continue
		}
		switch t.Type {
		case models.TransactionIncome:
			summary.TotalIncome += t.Amount
		case models.TransactionExpense:
			summary.TotalExpense += t.Amount
		}
	}
	summary.Balance = summary.TotalIncome - summary.TotalExpense

	return summary, nil
}

// CreateBalance appends a new balance snapshot for userID. Snapshots are
// never mutated afterwards. Currency defaults to models.DefaultCurrency.
func (s *Store) CreateBalance(ctx context.Context, userID int64, data models.UpdateBalanceRequest) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	currency := data.Currency
	if currency == "" {
		currency = models.DefaultCurrency
	}

	s.balanceSeq++
	balance := models.Balance{
		ID:        s.balanceSeq,
		UserID:    userID,
		Amount:    data.Amount,
		Currency:  currency,
		Date:      data.Date,
		CreatedAt: s.now(),
	}
	s.balances[balance.ID] = balance

	return balance.ID, nil
}

// LatestBalance returns the user's balance snapshot with the maximum date.
// Equal dates resolve to the highest id, so the result is deterministic
// regardless of insertion order. Returns ErrNotFound when the user has no
// snapshots.
func (s *Store) LatestBalance(ctx context.Context, userID int64) (models.Balance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest models.Balance
	found := false
	for _, b := range s.balances {
		if b.UserID != userID {
			continue
		}
		if !found || b.Date.After(latest.Date) || (b.Date.Equal(latest.Date) && b.ID > latest.ID) {
			latest = b
			found = true
		}
	}
	if !found {
		return models.Balance{}, ErrNotFound
	}

	return latest, nil
}

// BalanceHistory returns up to balanceHistoryLimit snapshots for userID,
// most recent date first.
func (s *Store) BalanceHistory(ctx context.Context, userID int64) ([]models.Balance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Balance, 0)
	for _, b := range s.balances {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date.Equal(result[j].Date) {
			return result[i].ID > result[j].ID
		}
		return result[i].Date.After(result[j].Date)
	})
	if len(result) > balanceHistoryLimit {
		result = result[:balanceHistoryLimit]
	}

	return result, nil
}
