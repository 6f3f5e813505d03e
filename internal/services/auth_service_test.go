package services

import (
	"errors"
	"testing"

	"github.com/amolwaghmare05/trackify/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	users   map[uint]*models.User
	nextID  uint
	deleted []uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (stub *stubUserRepo) ExistsByNormalizedEmail(email string) (bool, error) {
	for _, user := range stub.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (stub *stubUserRepo) FindByNormalizedEmail(email string) (models.User, bool, error) {
	for _, user := range stub.users {
		if user.Email == email {
			return *user, true, nil
		}
	}
	return models.User{}, false, nil
}

func (stub *stubUserRepo) FindByID(userID uint) (models.User, bool, error) {
	user, found := stub.users[userID]
	if !found {
		return models.User{}, false, nil
	}
	return *user, true, nil
}

func (stub *stubUserRepo) Create(user *models.User) error {
	user.ID = stub.nextID
	stub.nextID++
	copied := *user
	stub.users[user.ID] = &copied
	return nil
}

func (stub *stubUserRepo) UpdateDisplayName(userID uint, displayName string) error {
	if user, found := stub.users[userID]; found {
		user.DisplayName = displayName
	}
	return nil
}

func (stub *stubUserRepo) DeleteAccountAndRelatedData(userID uint) error {
	delete(stub.users, userID)
	stub.deleted = append(stub.deleted, userID)
	return nil
}

func TestRegisterNormalizesEmail(t *testing.T) {
	repo := newStubUserRepo()
	service := NewAuthService(repo)

	user, err := service.Register("  Sam@Example.COM ", "password123", "", testNow())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "sam@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.DisplayName != "sam" {
		t.Fatalf("expected display name from email local part, got %q", user.DisplayName)
	}
	if user.PasswordHash == "password123" || user.PasswordHash == "" {
		t.Fatal("expected password to be hashed")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")) != nil {
		t.Fatal("stored hash does not match password")
	}
}

func TestRegisterValidation(t *testing.T) {
	service := NewAuthService(newStubUserRepo())

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "empty email", email: "", password: "password123"},
		{name: "not an email", email: "sam.example.com", password: "password123"},
		{name: "short password", email: "sam@example.com", password: "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := service.Register(tt.email, tt.password, "", testNow()); !errors.Is(err, ErrInvalidRegistration) {
				t.Fatalf("expected ErrInvalidRegistration, got %v", err)
			}
		})
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	service := NewAuthService(repo)

	if _, err := service.Register("sam@example.com", "password123", "Sam", testNow()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := service.Register("SAM@example.com", "password123", "Sam", testNow()); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	repo := newStubUserRepo()
	service := NewAuthService(repo)

	if _, err := service.Register("sam@example.com", "password123", "Sam", testNow()); err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := service.Login("Sam@Example.com", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.DisplayName != "Sam" {
		t.Fatalf("unexpected user %+v", user)
	}

	if _, err := service.Login("sam@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := service.Login("nobody@example.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestDeleteAccountRequiresPassword(t *testing.T) {
	repo := newStubUserRepo()
	service := NewAuthService(repo)

	user, err := service.Register("sam@example.com", "password123", "Sam", testNow())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := service.DeleteAccount(user.ID, "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Fatal("expected no deletion on bad password")
	}

	if err := service.DeleteAccount(user.ID, "password123"); err != nil {
		t.Fatalf("delete account: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != user.ID {
		t.Fatalf("expected account %d deleted, got %v", user.ID, repo.deleted)
	}
}
