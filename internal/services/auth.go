package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/jwt"
	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/logger"
	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrAccountExists = errors.New("username or email already exists")
	ErrInvalidEmail  = errors.New("email address is malformed")
	// ErrInvalidCredentials covers both wrong-password and unknown-username
	// failures so the rejection never reveals which field was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AccountReader defines read-only operations for accounts.
type AccountReader interface {
	GetByUsername(ctx context.Context, username string) (*models.AccountDB, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.AccountDB, error)
}

// AccountWriter defines write operations for accounts.
type AccountWriter interface {
	Save(ctx context.Context, acc models.AccountDB) (int64, error)
}

// TokenIssuer defines an interface for generating session tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, role string, userID int64, userName string) (string, error)
}

// AuthService handles registration and the two-track login flow.
type AuthService struct {
	reader        AccountReader
	writer        AccountWriter
	tokens        TokenIssuer
	adminUsername string
	adminPassword string
}

// NewAuthService creates a new AuthService instance. The administrator
// credential pair comes from configuration, not from the account table.
func NewAuthService(reader AccountReader, writer AccountWriter, tokens TokenIssuer, adminUsername, adminPassword string) *AuthService {
	return &AuthService{
		reader:        reader,
		writer:        writer,
		tokens:        tokens,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

// Register creates a new driver account. Uniqueness of the login handle and
// email is probed before the insert so a duplicate surfaces as ErrAccountExists
// instead of a raw constraint violation. Age is accepted as free-form text.
func (svc *AuthService) Register(ctx context.Context, name, age, email, vehicleType, vehicleNo, username, password string) error {
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}

	existing, err := svc.reader.GetByUsernameOrEmail(ctx, username, email)
	if err != nil {
		logger.Log.Errorw("failed to check account exists", "err", err)
		return err
	}
	if existing != nil {
		logger.Log.Errorw("account already exists", "username", username, "email", email)
		return ErrAccountExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if _, err := svc.writer.Save(ctx, models.AccountDB{
		Name:         name,
		Age:          age,
		Email:        email,
		VehicleType:  vehicleType,
		VehicleNo:    vehicleNo,
		Username:     username,
		PasswordHash: string(hashedPassword),
	}); err != nil {
		logger.Log.Errorw("failed to save account", "err", err)
		return err
	}

	return nil
}

// Login authenticates either identity track and returns a session token
// plus the granted role. The administrator pair is checked first and wins
// even when an account shares the same login handle.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, string, error) {
	if username == svc.adminUsername && password == svc.adminPassword {
		token, err := svc.tokens.Generate(ctx, jwt.RoleAdmin, 0, "")
		if err != nil {
			logger.Log.Errorw("failed to generate admin session token", "err", err)
			return "", "", err
		}
		return token, jwt.RoleAdmin, nil
	}

	acc, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get account", "err", err)
		return "", "", err
	}
	if acc == nil {
		logger.Log.Infow("login rejected", "username", username)
		return "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("login rejected", "username", username)
		return "", "", ErrInvalidCredentials
	}

	token, err := svc.tokens.Generate(ctx, jwt.RoleDriver, acc.ID, acc.Name)
	if err != nil {
		logger.Log.Errorw("failed to generate driver session token", "err", err)
		return "", "", err
	}

	return token, jwt.RoleDriver, nil
}
