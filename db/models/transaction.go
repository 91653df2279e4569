package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction : append-only ledger row.
//
// Amount is always a positive magnitude, the direction is carried by Type
// (CREDIT or DEBIT). Transfer marks the row as one leg of a transfer between
// two accounts rather than a plain deposit or withdrawal. Rows are never
// updated or deleted.
type Transaction struct {
	ID        int64           `bun:",pk,autoincrement"`
	AccountID int64           `bun:",notnull"`
	Account   *Account        `bun:"rel:belongs-to,join:account_id=id"`
	Amount    decimal.Decimal `bun:"type:numeric(13,2),notnull"`
	Type      string          `bun:",notnull"`
	Transfer  bool            `bun:",notnull,default:false"`
	CreatedAt time.Time       `bun:",nullzero,notnull,default:current_timestamp"`
}
