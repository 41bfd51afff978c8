package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
	"gorm.io/gorm"

	"github.com/MayoSR/cornell-student-housing-backend/models"
)

// newTestStore builds a Store on an on-disk sqlite database and a local
// artifact store, both under the test's temp dir.
func newTestStore(t *testing.T) *Store {
	return newTestStoreWith(t, nil)
}

// newTestStoreWith lets a test wrap the artifact store, e.g. to inject
// backend failures.
func newTestStoreWith(t *testing.T, wrap func(ArtifactStore) ArtifactStore) *Store {
	t.Helper()

	dir := t.TempDir()
	db, err := gorm.Open(sqlite.Open(filepath.Join(dir, "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	local, err := NewLocalStore(filepath.Join(dir, "blob"))
	require.NoError(t, err)

	var artifacts ArtifactStore = local
	if wrap != nil {
		artifacts = wrap(local)
	}
	return NewStore(db, artifacts, nil, slog.Default())
}

func mustCreateAccount(t *testing.T, s *Store, first, last, email string) models.Account {
	t.Helper()
	account := models.Account{FirstName: first, LastName: last, Email: email}
	require.NoError(t, s.CreateAccount(context.Background(), &account))
	return account
}

func mustCreateProperty(t *testing.T, s *Store, owner models.Account, address string) models.Property {
	t.Helper()
	property := models.Property{
		OwnerID:      owner.ID,
		Name:         "College Town Terrace",
		Description:  "A big apartment in Ithaca",
		Address:      address,
		StartDate:    "2022-11-30",
		EndDate:      "2023-11-30",
		MonthlyRent:  2100,
		NumBedrooms:  1,
		NumBathrooms: 1,
	}
	require.NoError(t, s.CreateProperty(context.Background(), &property))
	return property
}
