package models

import "time"

// Transaction types.
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// DefaultCurrency is applied when a transaction or balance omits currency.
const DefaultCurrency = "CNY"

// Transaction is a single income or expense entry. Amount is stored in
// integer minor units (e.g. cents) to avoid fractional rounding.
type Transaction struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Amount      int64     `json:"amount"`
	Currency    string    `json:"currency"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Balance is an append-only account snapshot. The "latest balance" for a
// user is the snapshot with the maximum Date; ties resolve to the highest id.
type Balance struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateTransactionRequest is the payload for recording a transaction.
// Amount must be positive; the type field decides its sign in summaries.
type CreateTransactionRequest struct {
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Amount      int64     `json:"amount"`
	Currency    string    `json:"currency,omitempty"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
}

// TransactionPatch is a partial update. Nil fields are left unchanged.
type TransactionPatch struct {
	Type        *string    `json:"type,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Amount      *int64     `json:"amount,omitempty"`
	Currency    *string    `json:"currency,omitempty"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

// UpdateTransactionRequest couples a transaction id with its patch.
type UpdateTransactionRequest struct {
	ID int64 `json:"id"`
	TransactionPatch
}

// UpdateBalanceRequest appends a new balance snapshot. Despite the name it
// never mutates an existing row.
type UpdateBalanceRequest struct {
	Amount   int64     `json:"amount"`
	Currency string    `json:"currency,omitempty"`
	Date     time.Time `json:"date"`
}

// SummaryRange bounds a finance summary query, inclusive on both ends.
type SummaryRange struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}
