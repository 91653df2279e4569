package service

import (
	"context"

	"github.com/contahub/contahub.go/common"
	"github.com/contahub/contahub.go/db/models"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// AccountBalance derives the account's current balance from the ledger:
// sum of credits minus sum of debits. There is no cached balance column.
func (svc *BankService) AccountBalance(ctx context.Context, accountId int64) (decimal.Decimal, error) {
	if _, err := svc.FindAccount(ctx, accountId); err != nil {
		return decimal.Zero, err
	}
	return svc.accountBalance(ctx, svc.DB, accountId)
}

func (svc *BankService) accountBalance(ctx context.Context, db bun.IDB, accountId int64) (decimal.Decimal, error) {
	credits, err := sumByType(ctx, db, accountId, common.TransactionTypeCredit)
	if err != nil {
		return decimal.Zero, err
	}
	debits, err := sumByType(ctx, db, accountId, common.TransactionTypeDebit)
	if err != nil {
		return decimal.Zero, err
	}
	return credits.Sub(debits), nil
}

func sumByType(ctx context.Context, db bun.IDB, accountId int64, transactionType string) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.NewSelect().
		Model((*models.Transaction)(nil)).
		ColumnExpr("sum(amount)").
		Where("account_id = ? AND type = ?", accountId, transactionType).
		Scan(ctx, &sum)
	if err != nil {
		return decimal.Zero, err
	}
	// no rows for this type yet
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}
