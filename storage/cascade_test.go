package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MayoSR/cornell-student-housing-backend/models"
)

func TestDeletePropertyCascades(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	owner := mustCreateAccount(t, s, "Maheer", "Aeron", "maa368@cornell.edu")
	poster := mustCreateAccount(t, s, "Mayank", "Rao", "ms3293@cornell.edu")
	property := mustCreateProperty(t, s, owner, "715 E State St.")

	image, err := s.AttachImage(ctx, property.ID, "photo.jpg", "image/jpeg",
		strings.NewReader("jpeg-bytes"), 10)
	require.NoError(t, err)
	review := models.Review{PropertyID: property.ID, PosterID: poster.ID, Rating: 5}
	require.NoError(t, s.CreateReview(ctx, &review))

	require.NoError(t, s.DeleteProperty(ctx, property.ID))

	_, err = s.GetProperty(ctx, property.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	images, err := s.ListImages(ctx, property.ID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, images)

	reviews, err := s.ListReviews(ctx, &property.ID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	_, err = s.Artifacts().Get(ctx, image.Path)
	assert.ErrorIs(t, err, ErrNotFound)

	// The owner survives a property delete.
	_, err = s.GetAccount(ctx, owner.ID)
	assert.NoError(t, err)
}

func TestDeletePropertyNotFound(t *testing.T) {
	s := newTestStore(t)
	assert.ErrorIs(t, s.DeleteProperty(context.Background(), uuid.New()), ErrNotFound)
}

func TestDeleteAccountCascadesEverything(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	owner := mustCreateAccount(t, s, "Maheer", "Aeron", "maa368@cornell.edu")
	other := mustCreateAccount(t, s, "Brett", "Schlesinger", "bgs59@cornell.edu")

	propertyA := mustCreateProperty(t, s, owner, "715 E State St.")
	propertyB := mustCreateProperty(t, s, owner, "123 Lux Pl.")
	otherProperty := mustCreateProperty(t, s, other, "1 Unrelated Way")

	imgA, err := s.AttachImage(ctx, propertyA.ID, "a.jpg", "image/jpeg", strings.NewReader("a"), 1)
	require.NoError(t, err)
	imgB, err := s.AttachImage(ctx, propertyB.ID, "b.png", "image/png", strings.NewReader("b"), 1)
	require.NoError(t, err)

	// Review on the doomed account's property, by the survivor.
	onOwned := models.Review{PropertyID: propertyA.ID, PosterID: other.ID, Rating: 4}
	require.NoError(t, s.CreateReview(ctx, &onOwned))
	// Review posted by the doomed account elsewhere.
	byOwner := models.Review{PropertyID: otherProperty.ID, PosterID: owner.ID, Rating: 2}
	require.NoError(t, s.CreateReview(ctx, &byOwner))

	require.NoError(t, s.DeleteAccount(ctx, owner.ID))

	_, err = s.GetAccount(ctx, owner.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	properties, err := s.ListProperties(ctx, &owner.ID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, properties)

	for _, key := range []string{imgA.Path, imgB.Path} {
		_, err = s.Artifacts().Get(ctx, key)
		assert.ErrorIs(t, err, ErrNotFound)
	}

	// Both the reviews on its properties and the reviews it posted are gone.
	reviews, err := s.ListReviews(ctx, nil, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	// Unrelated data is untouched.
	_, err = s.GetAccount(ctx, other.ID)
	assert.NoError(t, err)
	_, err = s.GetProperty(ctx, otherProperty.ID)
	assert.NoError(t, err)
}

func TestResetAllIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	owner := mustCreateAccount(t, s, "Maheer", "Aeron", "maa368@cornell.edu")
	property := mustCreateProperty(t, s, owner, "715 E State St.")
	_, err := s.AttachImage(ctx, property.ID, "photo.jpg", "image/jpeg",
		strings.NewReader("jpeg-bytes"), 10)
	require.NoError(t, err)

	require.NoError(t, s.ResetAll(ctx))
	require.NoError(t, s.ResetAll(ctx))

	accounts, err := s.ListAccounts(ctx, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	properties, err := s.ListProperties(ctx, nil, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, properties)

	keys, err := s.Artifacts().List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, keys)
}
