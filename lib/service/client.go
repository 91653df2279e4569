package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/contahub/contahub.go/db/models"
	"github.com/contahub/contahub.go/lib/security"
)

func (svc *BankService) CreateClient(ctx context.Context, cpf, name, phone, password string) (*models.Client, error) {
	taken, err := svc.DB.NewSelect().Model((*models.Client)(nil)).Where("cpf = ?", cpf).Exists(ctx)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrCPFTaken
	}

	// we only store the hashed password
	client := &models.Client{
		CPF:      cpf,
		Name:     name,
		Phone:    phone,
		Password: security.HashPassword(password),
	}
	if _, err := svc.DB.NewInsert().Model(client).Exec(ctx); err != nil {
		return nil, err
	}
	return client, nil
}

func (svc *BankService) FindClient(ctx context.Context, clientId int64) (*models.Client, error) {
	var client models.Client

	err := svc.DB.NewSelect().Model(&client).Where("id = ?", clientId).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (svc *BankService) FindClientByCPF(ctx context.Context, cpf string) (*models.Client, error) {
	var client models.Client

	err := svc.DB.NewSelect().Model(&client).Where("cpf = ?", cpf).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}
