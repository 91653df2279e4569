package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Client : Client Model
type Client struct {
	ID        int64  `bun:",pk,autoincrement"`
	CPF       string `bun:",unique,notnull"`
	Name      string `bun:",notnull"`
	Phone     string
	Password  string       `bun:",notnull"`
	CreatedAt time.Time    `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt bun.NullTime `bun:",nullzero"`
}
