package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Geetanshgarg/future-gaze/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerSlotRepo_GetEmpty(t *testing.T) {
	repo := NewSQLiteAnswerSlotRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background(), "futureGazeFormData")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAnswerSlotRepo_PutOverwrites(t *testing.T) {
	repo := NewSQLiteAnswerSlotRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "futureGazeFormData", []byte(`{"name":"first"}`)))
	require.NoError(t, repo.Put(ctx, "futureGazeFormData", []byte(`{"name":"second"}`)))

	slot, err := repo.Get(ctx, "futureGazeFormData")
	require.NoError(t, err)
	assert.Equal(t, "futureGazeFormData", slot.Key)
	assert.JSONEq(t, `{"name":"second"}`, string(slot.Payload))
	assert.False(t, slot.UpdatedAt.IsZero())
}

func TestAnswerSlotRepo_KeysAreIndependent(t *testing.T) {
	repo := NewSQLiteAnswerSlotRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "a", []byte(`{}`)))
	_, err := repo.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAnswerSlotRepo_Delete(t *testing.T) {
	repo := NewSQLiteAnswerSlotRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "k", []byte(`{}`)))
	require.NoError(t, repo.Delete(ctx, "k"))
	require.NoError(t, repo.Delete(ctx, "k"))

	_, err := repo.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAnswerSlotRepo_DriverErrors(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	boom := errors.New("disk I/O error")
	mock.ExpectExec("INSERT INTO answer_slots").WillReturnError(boom)
	mock.ExpectQuery("SELECT key, payload, updated_at FROM answer_slots").WillReturnError(boom)
	mock.ExpectExec("DELETE FROM answer_slots").WillReturnError(boom)

	repo := NewSQLiteAnswerSlotRepo(conn)
	ctx := context.Background()

	err = repo.Put(ctx, "k", []byte(`{}`))
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "writing answer slot")

	_, err = repo.Get(ctx, "k")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)

	err = repo.Delete(ctx, "k")
	assert.ErrorIs(t, err, boom)

	assert.NoError(t, mock.ExpectationsWereMet())
}
