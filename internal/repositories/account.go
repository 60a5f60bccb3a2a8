package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/logger"
	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/middlewares"
	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/models"
	"github.com/jmoiron/sqlx"
)

// ext returns the request transaction when one was installed by
// TxMiddleware, otherwise the plain connection pool.
func ext(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

type AccountReadRepository struct {
	db *sqlx.DB
}

func NewAccountReadRepository(db *sqlx.DB) *AccountReadRepository {
	return &AccountReadRepository{db: db}
}

// GetByUsername returns the account with the given login handle, or nil
// when no such account exists.
func (r *AccountReadRepository) GetByUsername(ctx context.Context, username string) (*models.AccountDB, error) {
	const query = `
		SELECT id, name, age, email, vehicle_type, vehicle_no, username, password_hash, created_at
		FROM accounts
		WHERE username = $1
		LIMIT 1
	`

	var acc models.AccountDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &acc, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// GetByUsernameOrEmail returns an account holding either unique field,
// used as the pre-insert uniqueness probe during registration.
func (r *AccountReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.AccountDB, error) {
	const query = `
		SELECT id, name, age, email, vehicle_type, vehicle_no, username, password_hash, created_at
		FROM accounts
		WHERE username = $1 OR email = $2
		LIMIT 1
	`

	var acc models.AccountDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &acc, query, username, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// CountAll returns the total number of registered accounts.
func (r *AccountReadRepository) CountAll(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM accounts`

	var count int64
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &count, query)

	logger.Log.Infow(
		"query", query,
		"result", count,
		"error", err,
	)

	return count, err
}

type AccountWriteRepository struct {
	db *sqlx.DB
}

func NewAccountWriteRepository(db *sqlx.DB) *AccountWriteRepository {
	return &AccountWriteRepository{db: db}
}

// Save inserts a new account and returns its id. The unique constraints on
// username and email still back up the service-level conflict check.
func (r *AccountWriteRepository) Save(ctx context.Context, acc models.AccountDB) (int64, error) {
	const query = `
		INSERT INTO accounts (name, age, email, vehicle_type, vehicle_no, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id
	`
	args := []any{acc.Name, acc.Age, acc.Email, acc.VehicleType, acc.VehicleNo, acc.Username, acc.PasswordHash}

	var id int64
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &id, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{acc.Name, acc.Age, acc.Email, acc.VehicleType, acc.VehicleNo, acc.Username},
		"result", id,
		"error", err,
	)

	return id, err
}
