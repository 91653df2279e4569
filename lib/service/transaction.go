package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/contahub/contahub.go/common"
	"github.com/contahub/contahub.go/db/models"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// CreateTransaction validates and records a single ledger movement.
//
// The balance check and the insert run inside one storage transaction that
// holds a row lock on the account, so two concurrent debits can not both
// pass the sufficient-funds check and jointly overdraw the account.
func (svc *BankService) CreateTransaction(ctx context.Context, accountId int64, amount decimal.Decimal, transactionType string, transferLeg bool) (*models.Transaction, error) {
	if err := svc.validateTransaction(amount, transactionType); err != nil {
		return nil, err
	}

	var entry *models.Transaction
	err := svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var err error
		entry, err = svc.createTransaction(ctx, tx, accountId, amount, transactionType, transferLeg)
		return err
	})
	if err != nil {
		return nil, err
	}

	svc.publishTransaction(ctx, entry)
	return entry, nil
}

// createTransaction is the single-leg engine shared with Transfer, which
// runs both of its legs through here inside one enclosing transaction.
func (svc *BankService) createTransaction(ctx context.Context, tx bun.Tx, accountId int64, amount decimal.Decimal, transactionType string, transferLeg bool) (*models.Transaction, error) {
	// lock the account row for the duration of the transaction so the
	// check-then-append below is serialized per account
	account := models.Account{}
	err := tx.NewSelect().Model(&account).Where("id = ?", accountId).For("UPDATE").Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	if transactionType == common.TransactionTypeDebit {
		balance, err := svc.accountBalance(ctx, tx, accountId)
		if err != nil {
			return nil, err
		}
		if amount.GreaterThan(balance) {
			return nil, ErrInsufficientFunds
		}
	}

	entry := &models.Transaction{
		AccountID: accountId,
		Amount:    amount,
		Type:      transactionType,
		Transfer:  transferLeg,
	}
	if _, err := tx.NewInsert().Model(entry).Exec(ctx); err != nil {
		return nil, err
	}
	return entry, nil
}

func (svc *BankService) validateTransaction(amount decimal.Decimal, transactionType string) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(svc.Config.MaxTransactionAmount) {
		return ErrAmountExceedsLimit
	}
	if transactionType != common.TransactionTypeCredit && transactionType != common.TransactionTypeDebit {
		return ErrInvalidType
	}
	return nil
}

// TransactionsForAccount returns an account's statement, newest first.
func (svc *BankService) TransactionsForAccount(ctx context.Context, accountId int64) ([]models.Transaction, error) {
	if _, err := svc.FindAccount(ctx, accountId); err != nil {
		return nil, err
	}

	transactions := []models.Transaction{}
	err := svc.DB.NewSelect().Model(&transactions).Where("account_id = ?", accountId).OrderExpr("id DESC").Limit(100).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

func (svc *BankService) publishTransaction(ctx context.Context, entry *models.Transaction) {
	if svc.Publisher == nil {
		return
	}
	if err := svc.Publisher.PublishTransaction(ctx, entry); err != nil {
		svc.Logger.Errorf("Failed to publish transaction transaction_id:%v error: %v", entry.ID, err)
	}
}
