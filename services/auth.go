package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/fixmaster/fixmaster-core/db"
	"github.com/fixmaster/fixmaster-core/models"
	"github.com/fixmaster/fixmaster-core/utils"
)

var (
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password is not strong enough")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

type AuthService struct {
	store *db.Store
}

func NewAuthService(store *db.Store) *AuthService {
	return &AuthService{store: store}
}

type RegisterInput struct {
	Name            string          `validate:"required"`
	Email           string          `validate:"required,email"`
	Password        string          `validate:"required,min=8"`
	ConfirmPassword string          `validate:"required"`
	Type            models.UserType `validate:"required,oneof=customer provider"`
	Phone           string          `validate:"omitempty,min=7"`
	Address         string
	BusinessName    string
}

// Register creates an account, hashing the password and rejecting
// duplicate emails before anything is written. A provider signup also
// gets an unverified business profile.
func (a *AuthService) Register(in RegisterInput) (models.User, error) {
	if err := models.Validate.Struct(in); err != nil {
		return models.User{}, fmt.Errorf("invalid signup: %w", err)
	}
	if in.Password != in.ConfirmPassword {
		return models.User{}, ErrPasswordMismatch
	}
	if !utils.IsPasswordStrong(in.Password) {
		return models.User{}, ErrWeakPassword
	}

	// Check if user already exists
	if _, err := a.store.FindUserByEmail(in.Email); err == nil {
		return models.User{}, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := a.store.CreateUser(models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hashed),
		Type:     in.Type,
		Phone:    in.Phone,
		Address:  in.Address,
	})

	if in.Type == models.UserTypeProvider {
		businessName := in.BusinessName
		if businessName == "" {
			businessName = in.Name
		}
		a.store.CreateProvider(models.Provider{
			UserID:       user.ID,
			BusinessName: businessName,
			Location:     in.Address,
		})
	}

	user.Password = ""
	return user, nil
}

// Login returns the matching account for valid credentials. Session
// handling stays with the caller.
func (a *AuthService) Login(email, password string) (models.User, error) {
	user, err := a.store.FindUserByEmail(email)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	user.Password = ""
	return user, nil
}
