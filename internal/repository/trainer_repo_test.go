package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusufkecer/fitness-crm-backend/internal/repository"
)

func TestTrainerRepository_CreateAndDuplicate(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewTrainerRepository(db)
	email := gofakeit.Email()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO trainers (email, password_hash) VALUES (?, ?)")).
		WithArgs(email, "hash").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectExec("INSERT INTO trainers").
		WithArgs(email, "hash").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	id, err := repo.Create(context.Background(), email, "hash")
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)

	_, err = repo.Create(context.Background(), email, "hash")
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestTrainerRepository_GetByEmail(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewTrainerRepository(db)

	mock.ExpectQuery("FROM trainers WHERE email").
		WithArgs("coach@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
			AddRow(int64(3), "coach@example.com", "hash", time.Now()))
	mock.ExpectQuery("FROM trainers WHERE email").
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}))

	tr, err := repo.GetByEmail(context.Background(), "coach@example.com")
	require.NoError(t, err)
	require.NotNil(t, tr)
	assert.Equal(t, int64(3), tr.ID)

	tr, err = repo.GetByEmail(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, tr)
}

func TestResetTokenRepository_MarkUsed(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewResetTokenRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE password_reset_tokens SET used = 1 WHERE id = ?")).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkUsed(context.Background(), 9))
}

func TestResetTokenRepository_GetValid(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewResetTokenRepository(db)

	exp := time.Now().Add(10 * time.Minute)
	mock.ExpectQuery("FROM password_reset_tokens prt").
		WithArgs("coach@example.com", "123456").
		WillReturnRows(sqlmock.NewRows([]string{"id", "trainer_id", "token", "expires_at", "used"}).
			AddRow(int64(9), int64(3), "123456", exp, false))

	tok, err := repo.GetValidByEmailAndToken(context.Background(), "coach@example.com", "123456")
	require.NoError(t, err)
	require.NotNil(t, tok)
	assert.Equal(t, int64(3), tok.TrainerID)
	assert.False(t, tok.Used)
}
