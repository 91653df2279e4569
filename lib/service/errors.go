package service

import "errors"

// Domain errors. Controllers map these onto the responses table, anything
// else is reported as a generic storage failure without leaking details.
var (
	ErrClientNotFound     = errors.New("client not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrCPFTaken           = errors.New("a client with this cpf already exists")
	ErrBadAuth            = errors.New("bad auth")
	ErrInvalidAmount      = errors.New("amount must be a positive value")
	ErrAmountExceedsLimit = errors.New("amount exceeds the configured maximum")
	ErrInvalidType        = errors.New("transaction type must be CREDIT or DEBIT")
	ErrInsufficientFunds  = errors.New("not enough balance to complete the transaction")
	ErrSameAccount        = errors.New("source and target account are the same")
	ErrCreditLimitLowered = errors.New("the credit limit can not be decreased")
)
