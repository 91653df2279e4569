package service

import (
	"context"
	"database/sql"

	"github.com/contahub/contahub.go/common"
	"github.com/contahub/contahub.go/db/models"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// TransferResult carries the two ledger rows produced by a transfer.
type TransferResult struct {
	DebitLeg  *models.Transaction
	CreditLeg *models.Transaction
}

// Transfer moves funds between two accounts as a pair of ledger rows: a
// DEBIT on the source and a CREDIT on the target, both marked as transfer
// legs. When the accounts belong to different clients the credited amount
// is reduced by the transfer fee rate while the source is still debited in
// full. Both legs run inside a single storage transaction, so a failure on
// the credit leg rolls the debit leg back and the ledger stays balanced.
func (svc *BankService) Transfer(ctx context.Context, sourceAccountId, targetAccountId int64, amount decimal.Decimal) (*TransferResult, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if amount.GreaterThan(svc.Config.MaxTransactionAmount) {
		return nil, ErrAmountExceedsLimit
	}

	source, err := svc.FindAccount(ctx, sourceAccountId)
	if err != nil {
		return nil, err
	}
	target, err := svc.FindAccount(ctx, targetAccountId)
	if err != nil {
		return nil, err
	}

	balance, err := svc.accountBalance(ctx, svc.DB, source.ID)
	if err != nil {
		return nil, err
	}
	if amount.GreaterThan(balance) {
		return nil, ErrInsufficientFunds
	}
	if source.ID == target.ID {
		return nil, ErrSameAccount
	}

	creditAmount := amount
	if source.ClientID != target.ClientID {
		creditAmount = svc.creditedAmount(amount)
	}

	result := &TransferResult{}
	err = svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		// lock both account rows in a stable order up front so two
		// opposite transfers can not deadlock on each other
		if err := lockAccounts(ctx, tx, source.ID, target.ID); err != nil {
			return err
		}

		debitLeg, err := svc.createTransaction(ctx, tx, source.ID, amount, common.TransactionTypeDebit, true)
		if err != nil {
			return err
		}
		creditLeg, err := svc.createTransaction(ctx, tx, target.ID, creditAmount, common.TransactionTypeCredit, true)
		if err != nil {
			return err
		}

		result.DebitLeg = debitLeg
		result.CreditLeg = creditLeg
		return nil
	})
	if err != nil {
		return nil, err
	}

	svc.publishTransaction(ctx, result.DebitLeg)
	svc.publishTransaction(ctx, result.CreditLeg)
	return result, nil
}

// creditedAmount applies the inter-client fee: the target receives the
// amount minus the fee share, rounded to the currency's two decimal places.
func (svc *BankService) creditedAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(1).Sub(svc.Config.TransferFeeRate)).Round(2)
}

func lockAccounts(ctx context.Context, tx bun.Tx, accountIds ...int64) error {
	accounts := []models.Account{}
	return tx.NewSelect().
		Model(&accounts).
		Where("id IN (?)", bun.In(accountIds)).
		Order("id ASC").
		For("UPDATE").
		Scan(ctx)
}
