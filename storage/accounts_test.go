package storage

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAccountThenGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created := mustCreateAccount(t, s, "Maheer", "Aeron", "maa368@cornell.edu")
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := s.GetAccount(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Maheer", got.FirstName)
	assert.Equal(t, "Aeron", got.LastName)
	assert.Equal(t, "maa368@cornell.edu", got.Email)
}

func TestGetAccountNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetAccount(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateAccountAppliesOnlyPresentFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	account := mustCreateAccount(t, s, "Mayank", "Rao", "ms3293@cornell.edu")

	email := "mayank@cornell.edu"
	updated, err := s.UpdateAccount(ctx, account.ID, AccountPatch{Email: &email})
	require.NoError(t, err)

	assert.Equal(t, "mayank@cornell.edu", updated.Email)
	assert.Equal(t, "Mayank", updated.FirstName)
	assert.Equal(t, "Rao", updated.LastName)
}

func TestUpdateAccountNotFound(t *testing.T) {
	s := newTestStore(t)

	first := "Brett"
	_, err := s.UpdateAccount(context.Background(), uuid.New(), AccountPatch{FirstName: &first})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAccountsPagination(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		mustCreateAccount(t, s, "First", "Last", "someone@cornell.edu")
	}

	page, err := s.ListAccounts(ctx, 0, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	rest, err := s.ListAccounts(ctx, 4, 10)
	require.NoError(t, err)
	assert.Len(t, rest, 1)

	// A limit beyond the cap falls back to the cap rather than erroring.
	all, err := s.ListAccounts(ctx, 0, 10_000)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, MaxLimit, clampLimit(0))
	assert.Equal(t, MaxLimit, clampLimit(-3))
	assert.Equal(t, MaxLimit, clampLimit(MaxLimit+1))
	assert.Equal(t, 25, clampLimit(25))
}
