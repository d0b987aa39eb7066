package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fundflow/crowdfund-backend/internal/auth"
	"github.com/fundflow/crowdfund-backend/internal/store"
)

func newAccountService(users *fakeUsers) *AccountService {
	tm := auth.NewTokenManager("test-secret", "crowdfund-test", time.Hour)
	return NewAccountService(users, tm)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := newFakeUsers()
	svc := newAccountService(users)

	if err := svc.Register(context.Background(), "a@example.com", "hunter2"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	err := svc.Register(context.Background(), "a@example.com", "other")
	if !errors.Is(err, store.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if len(users.byEmail) != 1 {
		t.Fatalf("expected exactly one stored record, have %d", len(users.byEmail))
	}
}

func TestRegister_HashesPassword(t *testing.T) {
	users := newFakeUsers()
	svc := newAccountService(users)

	if err := svc.Register(context.Background(), "a@example.com", "hunter2"); err != nil {
		t.Fatalf("register: %v", err)
	}
	u := users.byEmail["a@example.com"]
	if u.PasswordHash == "" || strings.Contains(u.PasswordHash, "hunter2") {
		t.Fatalf("password must be stored only as a hash, got %q", u.PasswordHash)
	}
	if u.ID == "" {
		t.Fatal("expected a generated user id")
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := newAccountService(newFakeUsers())

	if err := svc.Register(context.Background(), "not-an-email", "pw"); !store.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := svc.Register(context.Background(), "a@example.com", ""); !store.IsValidation(err) {
		t.Fatalf("expected validation error for empty password, got %v", err)
	}
}

// Wrong password and unknown email must be indistinguishable to the caller.
func TestAuthenticate_FailureEquivalence(t *testing.T) {
	users := newFakeUsers()
	svc := newAccountService(users)
	if err := svc.Register(context.Background(), "a@example.com", "hunter2"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, wrongPw := svc.Authenticate(context.Background(), "a@example.com", "wrong")
	_, noUser := svc.Authenticate(context.Background(), "b@example.com", "hunter2")

	if !errors.Is(wrongPw, store.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPw)
	}
	if !errors.Is(noUser, store.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", noUser)
	}
	if wrongPw.Error() != noUser.Error() {
		t.Fatalf("failure messages differ: %q vs %q", wrongPw, noUser)
	}
}

func TestAuthenticate_IssuesTokenWithUserSubject(t *testing.T) {
	users := newFakeUsers()
	svc := newAccountService(users)
	if err := svc.Register(context.Background(), "a@example.com", "hunter2"); err != nil {
		t.Fatalf("register: %v", err)
	}

	tok, err := svc.Authenticate(context.Background(), "a@example.com", "hunter2")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	tm := auth.NewTokenManager("test-secret", "crowdfund-test", time.Hour)
	sub, err := tm.Parse(tok)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if want := users.byEmail["a@example.com"].ID; sub != want {
		t.Fatalf("token subject = %q, want user id %q", sub, want)
	}
}
