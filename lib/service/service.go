package service

import (
	"context"

	"github.com/contahub/contahub.go/db/models"
	"github.com/contahub/contahub.go/lib/security"
	"github.com/contahub/contahub.go/lib/tokens"
	"github.com/uptrace/bun"
	"github.com/ziflex/lecho/v3"
)

// TransactionPublisher pushes recorded ledger rows to an external broker.
// It is optional, a nil publisher disables event publishing.
type TransactionPublisher interface {
	PublishTransaction(ctx context.Context, transaction *models.Transaction) error
}

type BankService struct {
	Config    *Config
	DB        *bun.DB
	Logger    *lecho.Logger
	Publisher TransactionPublisher
}

// GenerateToken authenticates a client by CPF and password and returns a
// fresh access/refresh token pair. A valid refresh token can be exchanged
// for a new pair without the password.
func (svc *BankService) GenerateToken(ctx context.Context, cpf, password, inRefreshToken string) (accessToken, refreshToken string, err error) {
	var client *models.Client

	switch {
	case cpf != "" || password != "":
		{
			client, err = svc.FindClientByCPF(ctx, cpf)
			if err != nil {
				return "", "", ErrBadAuth
			}
			if !security.VerifyPassword(client.Password, password) {
				return "", "", ErrBadAuth
			}
		}
	case inRefreshToken != "":
		{
			clientId, err := tokens.ParseRefreshToken(svc.Config.JWTSecret, inRefreshToken)
			if err != nil {
				return "", "", ErrBadAuth
			}
			client, err = svc.FindClient(ctx, clientId)
			if err != nil {
				return "", "", ErrBadAuth
			}
		}
	default:
		{
			return "", "", ErrBadAuth
		}
	}

	accessToken, err = tokens.GenerateAccessToken(svc.Config.JWTSecret, svc.Config.JWTAccessTokenExpiry, client)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = tokens.GenerateRefreshToken(svc.Config.JWTSecret, svc.Config.JWTRefreshTokenExpiry, client)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}
