package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fundflow/crowdfund-backend/internal/auth"
	"github.com/fundflow/crowdfund-backend/internal/models"
	repo "github.com/fundflow/crowdfund-backend/internal/repository"
	"github.com/fundflow/crowdfund-backend/internal/store"
	"github.com/google/uuid"
)

type AccountService struct {
	r  repo.Users
	tm *auth.TokenManager
}

func NewAccountService(r repo.Users, tm *auth.TokenManager) *AccountService {
	return &AccountService{r: r, tm: tm}
}

// Register creates a credential record. It reports only success or failure;
// neither the record nor the hash is returned.
func (s *AccountService) Register(ctx context.Context, email, password string) error {
	creds := models.Credentials{Email: strings.TrimSpace(email), Password: password}
	if err := creds.Validate(); err != nil {
		return err
	}
	hash, err := auth.HashPassword(creds.Password)
	if err != nil {
		return err
	}
	_, err = s.r.Create(ctx, models.User{
		ID:           uuid.NewString(),
		Email:        creds.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	return err
}

// Authenticate verifies the credentials and issues a token naming the user
// id as subject. An unknown email and a wrong password fail identically so
// the response does not reveal which half was wrong.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (string, error) {
	u, err := s.r.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, store.ErrNotFound) {
		return "", store.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if err := auth.VerifyPassword(password, u.PasswordHash); err != nil {
		return "", store.ErrInvalidCredentials
	}
	return s.tm.Issue(u.ID)
}
