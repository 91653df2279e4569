package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account : Account Model
//
// Balance is never stored on the account row, it is always derived from the
// transactions ledger.
type Account struct {
	ID          int64           `bun:",pk,autoincrement"`
	ClientID    int64           `bun:",notnull"`
	Client      *Client         `bun:"rel:belongs-to,join:client_id=id"`
	Number      string          `bun:",unique,notnull"`
	CreditLimit decimal.Decimal `bun:"credit_limit,type:numeric(13,2),notnull,default:0"`
	CreatedAt   time.Time       `bun:",nullzero,notnull,default:current_timestamp"`
}
