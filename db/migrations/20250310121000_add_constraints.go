package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {

		if db.Dialect().Name().String() != "pg" {
			fmt.Printf("\033[1;31m%s\033[0m", "You are not using PostgreSQL. DB level checks can not be enabled!\n")
			return nil
		}
		sql := `
			-- ledger rows always carry a positive magnitude, direction lives in the type column
				alter table transactions
				ADD CONSTRAINT check_positive_amount
				CHECK (amount > 0);

			-- only the two known transaction types are allowed
				alter table transactions
				ADD CONSTRAINT check_transaction_type
				CHECK (type IN ('CREDIT', 'DEBIT'));

			-- credit limits never go negative
				alter table accounts
				ADD CONSTRAINT check_credit_limit
				CHECK (credit_limit >= 0);
		`
		if _, err := db.Exec(sql); err != nil {
			return err
		}
		return nil
	}, nil)
}
