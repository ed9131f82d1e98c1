package pg

import (
	"context"
	"database/sql"

	"github.com/enviromat/enviromat/internal/model"
	"github.com/google/uuid"
)

// creditEntry is one immutable ledger row. Balances are never stored; they
// are the SUM of an account's rows, which makes every award auditable.
type creditEntry struct {
	AccountType model.CreditAccountType
	AccountID   int64
	PickupID    *uuid.UUID
	OrderID     *int64
	Amount      int64
	Reason      string
}

func insertCreditTx(ctx context.Context, tx *sql.Tx, entry creditEntry) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO credit_entries (account_type, account_id, pickup_request_id, order_id, amount, reason)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.AccountType,
		entry.AccountID,
		entry.PickupID,
		entry.OrderID,
		entry.Amount,
		entry.Reason,
	)
	return err
}

func (r *Repository) GetBalance(ctx context.Context, accountType model.CreditAccountType, accountID int64) (*model.Balance, error) {
	var balance model.Balance

	err := r.executeWithRetry(ctx, func(db *sql.DB) error {
		return db.QueryRowContext(ctx,
			`SELECT COALESCE(SUM(amount), 0) FROM credit_entries WHERE account_type = $1 AND account_id = $2`,
			accountType, accountID,
		).Scan(&balance.CreditPoints)
	})
	if err != nil {
		return nil, err
	}

	return &balance, nil
}
