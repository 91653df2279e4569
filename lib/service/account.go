package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/contahub/contahub.go/db/models"
	"github.com/labstack/gommon/random"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// AccountWithBalance carries an account together with its derived balance.
// The balance is computed from the ledger at read time, it is never stored.
type AccountWithBalance struct {
	models.Account
	Balance decimal.Decimal `json:"balance"`
}

func (svc *BankService) CreateAccount(ctx context.Context, clientId int64) (*models.Account, error) {
	client, err := svc.FindClient(ctx, clientId)
	if err != nil {
		return nil, err
	}

	// regenerate the number on the rare collision
	account := &models.Account{ClientID: client.ID}
	for {
		account.Number = accountNumber(client.Name)
		exists, err := svc.DB.NewSelect().Model((*models.Account)(nil)).Where("number = ?", account.Number).Exists(ctx)
		if err != nil {
			return nil, err
		}
		if !exists {
			break
		}
	}

	if _, err := svc.DB.NewInsert().Model(account).Exec(ctx); err != nil {
		return nil, err
	}
	return account, nil
}

// accountNumber builds a human-readable account number from the first two
// letters of the owner's name plus a random numeric suffix.
func accountNumber(ownerName string) string {
	prefix := []rune(ownerName)
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}
	return strings.ToUpper(string(prefix)) + "_" + random.String(6, random.Numeric)
}

func (svc *BankService) FindAccount(ctx context.Context, accountId int64) (*models.Account, error) {
	var account models.Account

	err := svc.DB.NewSelect().Model(&account).Where("id = ?", accountId).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (svc *BankService) FindAccountByNumber(ctx context.Context, number string) (*models.Account, error) {
	var account models.Account

	err := svc.DB.NewSelect().Model(&account).Where("number = ?", number).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (svc *BankService) AccountsForClient(ctx context.Context, clientId int64) ([]AccountWithBalance, error) {
	accounts := []models.Account{}
	err := svc.DB.NewSelect().Model(&accounts).Where("client_id = ?", clientId).Order("id ASC").Scan(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]AccountWithBalance, len(accounts))
	for i, account := range accounts {
		balance, err := svc.accountBalance(ctx, svc.DB, account.ID)
		if err != nil {
			return nil, err
		}
		result[i] = AccountWithBalance{Account: account, Balance: balance}
	}
	return result, nil
}

// UpdateCreditLimit raises an account's credit limit. Limits only ever go
// up, a lower value is rejected. The account row is locked while the
// current limit is compared so concurrent raises serialize instead of
// overwriting each other.
func (svc *BankService) UpdateCreditLimit(ctx context.Context, accountId int64, limit decimal.Decimal) (*models.Account, error) {
	account := &models.Account{}
	err := svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		err := tx.NewSelect().Model(account).Where("id = ?", accountId).For("UPDATE").Limit(1).Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrAccountNotFound
			}
			return err
		}
		if limit.LessThan(account.CreditLimit) {
			return ErrCreditLimitLowered
		}

		account.CreditLimit = limit
		_, err = tx.NewUpdate().Model(account).Column("credit_limit").WherePK().Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}
