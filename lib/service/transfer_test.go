package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var svc = &BankService{
	Config: &Config{
		MaxTransactionAmount: decimal.RequireFromString("100000.00"),
		TransferFeeRate:      decimal.RequireFromString("0.10"),
	},
}

func TestCreditedAmountRetainsFee(t *testing.T) {
	credited := svc.creditedAmount(decimal.RequireFromString("100.00"))
	assert.Equal(t, "90", credited.String())
}

func TestCreditedAmountRoundsToCents(t *testing.T) {
	credited := svc.creditedAmount(decimal.RequireFromString("0.15"))
	// 0.135 rounds to 0.14 at two decimal places
	assert.Equal(t, "0.14", credited.String())
}

func TestValidateTransactionRejectsNonPositiveAmount(t *testing.T) {
	err := svc.validateTransaction(decimal.Zero, "CREDIT")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	err = svc.validateTransaction(decimal.RequireFromString("-5.00"), "CREDIT")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestValidateTransactionRejectsAmountOverMax(t *testing.T) {
	err := svc.validateTransaction(decimal.RequireFromString("100000.01"), "DEBIT")
	assert.ErrorIs(t, err, ErrAmountExceedsLimit)
}

func TestValidateTransactionRejectsUnknownType(t *testing.T) {
	err := svc.validateTransaction(decimal.RequireFromString("10.00"), "TRANSFER")
	assert.ErrorIs(t, err, ErrInvalidType)

	assert.NoError(t, svc.validateTransaction(decimal.RequireFromString("10.00"), "CREDIT"))
	assert.NoError(t, svc.validateTransaction(decimal.RequireFromString("10.00"), "DEBIT"))
}

func TestAccountNumberFormat(t *testing.T) {
	number := accountNumber("Maria Silva")
	assert.Regexp(t, `^MA_[0-9]{6}$`, number)
}

func TestAccountNumberShortName(t *testing.T) {
	assert.Regexp(t, `^J_[0-9]{6}$`, accountNumber("j"))
	assert.Regexp(t, `^_[0-9]{6}$`, accountNumber(""))
}
