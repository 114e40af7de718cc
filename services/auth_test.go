package services

import (
	"errors"
	"testing"

	"github.com/fixmaster/fixmaster-core/db"
	"github.com/fixmaster/fixmaster-core/models"
)

func registerInput() RegisterInput {
	return RegisterInput{
		Name:            "Karim Uddin",
		Email:           "karim@example.com",
		Password:        "Str0ng!Pass",
		ConfirmPassword: "Str0ng!Pass",
		Type:            models.UserTypeCustomer,
		Phone:           "+8801711111111",
		Address:         "Banani, Dhaka",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	store := db.New()
	auth := NewAuthService(store)

	user, err := auth.Register(registerInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == "" {
		t.Error("expected an id to be assigned")
	}
	if user.Password != "" {
		t.Error("expected password to be stripped from the returned account")
	}

	got, err := auth.Login("karim@example.com", "Str0ng!Pass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("expected login to return %s, got %s", user.ID, got.ID)
	}

	// The stored record carries a hash, never the plaintext.
	stored, err := store.FindUserByEmail("karim@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Password == "Str0ng!Pass" || stored.Password == "" {
		t.Error("expected stored password to be hashed")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	store := db.New()
	auth := NewAuthService(store)

	if _, err := auth.Register(registerInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := registerInput()
	in.Name = "Someone Else"
	if _, err := auth.Register(in); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// The original account is untouched.
	if _, err := auth.Login("karim@example.com", "Str0ng!Pass"); err != nil {
		t.Errorf("original account broken after duplicate signup: %v", err)
	}
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	auth := NewAuthService(db.New())

	in := registerInput()
	in.Password = "alllowercase1"
	in.ConfirmPassword = "alllowercase1"
	if _, err := auth.Register(in); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("expected ErrWeakPassword, got %v", err)
	}
}

func TestRegisterRejectsPasswordMismatch(t *testing.T) {
	auth := NewAuthService(db.New())

	in := registerInput()
	in.ConfirmPassword = "Different!1"
	if _, err := auth.Register(in); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestRegisterProviderCreatesProfile(t *testing.T) {
	store := db.New()
	auth := NewAuthService(store)

	in := registerInput()
	in.Email = "pro@example.com"
	in.Type = models.UserTypeProvider
	in.BusinessName = "Karim Repairs"

	user, err := auth.Register(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	provider, err := store.FindProviderByUserID(user.ID)
	if err != nil {
		t.Fatalf("expected a provider profile: %v", err)
	}
	if provider.BusinessName != "Karim Repairs" {
		t.Errorf("expected business name %q, got %q", "Karim Repairs", provider.BusinessName)
	}
	if provider.Verified {
		t.Error("new providers must start unverified")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	store := db.New()
	auth := NewAuthService(store)
	if _, err := auth.Register(registerInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := auth.Login("karim@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := auth.Login("ghost@example.com", "Str0ng!Pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}
