package models

import (
	"strings"
	"time"

	"github.com/fundflow/crowdfund-backend/internal/store"
)

// User is a credential record. The password never leaves the service layer
// in any form other than its bcrypt hash, and the hash never leaves at all.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Credentials is the signup/login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Credentials) Validate() error {
	if !strings.Contains(c.Email, "@") {
		return store.Invalid("invalid email")
	}
	if c.Password == "" {
		return store.Invalid("password is required")
	}
	return nil
}
