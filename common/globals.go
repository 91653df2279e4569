package common

const (
	TransactionTypeCredit = "CREDIT"
	TransactionTypeDebit  = "DEBIT"

	CurrencyCode = "BRL"
)
