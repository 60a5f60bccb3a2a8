package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func accountColumns() []string {
	return []string{"id", "name", "age", "email", "vehicle_type", "vehicle_no", "username", "password_hash", "created_at"}
}

func TestAccountReadRepository_GetByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountReadRepository(db)
	ctx := context.Background()

	created := time.Now()
	mock.ExpectQuery("SELECT id, name, age, email, vehicle_type, vehicle_no, username, password_hash, created_at FROM accounts WHERE username = \\$1").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(accountColumns()).
			AddRow(int64(1), "Alice Driver", "29", "alice@example.com", "car", "KA-01-1234", "alice", "hash", created))

	acc, err := repo.GetByUsername(ctx, "alice")
	assert.NoError(t, err)
	assert.NotNil(t, acc)
	assert.Equal(t, int64(1), acc.ID)
	assert.Equal(t, "Alice Driver", acc.Name)
	assert.Equal(t, "KA-01-1234", acc.VehicleNo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountReadRepository_GetByUsername_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountReadRepository(db)

	mock.ExpectQuery("SELECT id, name, age, email, vehicle_type, vehicle_no, username, password_hash, created_at FROM accounts WHERE username = \\$1").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(accountColumns()))

	acc, err := repo.GetByUsername(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Nil(t, acc)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountReadRepository_GetByUsernameOrEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountReadRepository(db)

	created := time.Now()
	mock.ExpectQuery("SELECT id, name, age, email, vehicle_type, vehicle_no, username, password_hash, created_at FROM accounts WHERE username = \\$1 OR email = \\$2").
		WithArgs("bob", "bob@example.com").
		WillReturnRows(sqlmock.NewRows(accountColumns()).
			AddRow(int64(2), "Bob", "41", "bob@example.com", "truck", "KA-02-9999", "bob", "hash", created))

	acc, err := repo.GetByUsernameOrEmail(context.Background(), "bob", "bob@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, acc)
	assert.Equal(t, "bob@example.com", acc.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountReadRepository_GetByUsernameOrEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountReadRepository(db)

	mock.ExpectQuery("SELECT id, name, age, email, vehicle_type, vehicle_no, username, password_hash, created_at FROM accounts WHERE username = \\$1 OR email = \\$2").
		WithArgs("ghost", "ghost@example.com").
		WillReturnRows(sqlmock.NewRows(accountColumns()))

	acc, err := repo.GetByUsernameOrEmail(context.Background(), "ghost", "ghost@example.com")
	assert.NoError(t, err)
	assert.Nil(t, acc)
}

func TestAccountReadRepository_CountAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountReadRepository(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM accounts").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))

	count, err := repo.CountAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestAccountWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountWriteRepository(db)

	acc := models.AccountDB{
		Name:         "Alice Driver",
		Age:          "29",
		Email:        "alice@example.com",
		VehicleType:  "car",
		VehicleNo:    "KA-01-1234",
		Username:     "alice",
		PasswordHash: "bcrypt-hash",
	}

	mock.ExpectQuery("INSERT INTO accounts \\(name, age, email, vehicle_type, vehicle_no, username, password_hash, created_at\\)").
		WithArgs(acc.Name, acc.Age, acc.Email, acc.VehicleType, acc.VehicleNo, acc.Username, acc.PasswordHash).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	id, err := repo.Save(context.Background(), acc)
	assert.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountWriteRepository_Save_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountWriteRepository(db)

	mock.ExpectQuery("INSERT INTO accounts").
		WillReturnError(assert.AnError)

	_, err := repo.Save(context.Background(), models.AccountDB{Username: "alice"})
	assert.Error(t, err)
}
