package services

import (
	"context"
	"log"
	"time"

	"captionary/internal/models/db_models"
	"captionary/internal/models/request_models"
	"captionary/internal/repositories"
	"captionary/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, req request_models.LoginRequest) (string, error)
	CreateAccount(ctx context.Context, req request_models.SignUpRequest) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{accountRepo: accountRepo}
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (string, error) {
	start := time.Now()

	account, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Printf("error finding account by email: %v", err)
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		log.Printf("error creating token: %v", err)
		return "", err
	}

	log.Printf("login took %s", time.Since(start))
	return token, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, req request_models.SignUpRequest) error {
	existing, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Printf("error checking existing email: %v", err)
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailTaken
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("error hashing password: %v", err)
		return err
	}

	account := &db_models.Account{
		DisplayName:  req.DisplayName,
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         "user",
	}

	if err := a.accountRepo.Insert(ctx, account); err != nil {
		log.Printf("error inserting account: %v", err)
		return utils.ErrDatabaseError
	}

	return nil
}
