package routes

import (
	"github.com/google/uuid"
	"github.com/kataras/iris/v12"

	"github.com/MayoSR/cornell-student-housing-backend/models"
	"github.com/MayoSR/cornell-student-housing-backend/storage"
	"github.com/MayoSR/cornell-student-housing-backend/utils"
)

type ReviewRoutes struct {
	Store *storage.Store
}

type CreateReviewInput struct {
	PropertyID uuid.UUID `json:"property_id" validate:"required"`
	PosterID   uuid.UUID `json:"poster_id" validate:"required"`
	Rating     int       `json:"rating" validate:"required,min=1,max=5"`
	Content    string    `json:"content" validate:"max=2000"`
}

type UpdateReviewInput struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Content *string `json:"content" validate:"omitempty,max=2000"`
}

// List returns a page of reviews, optionally filtered by ?property_id=.
func (h ReviewRoutes) List(ctx iris.Context) {
	propertyID, ok := filterUUID(ctx, "property_id")
	if !ok {
		return
	}
	offset, limit := pageParams(ctx)
	reviews, err := h.Store.ListReviews(ctx.Request().Context(), propertyID, offset, limit)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	ctx.JSON(reviews)
}

func (h ReviewRoutes) Get(ctx iris.Context) {
	id, ok := paramUUID(ctx, "id")
	if !ok {
		return
	}
	review, err := h.Store.GetReview(ctx.Request().Context(), id)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	ctx.JSON(review)
}

func (h ReviewRoutes) Create(ctx iris.Context) {
	var input CreateReviewInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	review := models.Review{
		PropertyID: input.PropertyID,
		PosterID:   input.PosterID,
		Rating:     input.Rating,
		Content:    input.Content,
	}
	if err := h.Store.CreateReview(ctx.Request().Context(), &review); err != nil {
		respondStoreError(ctx, err)
		return
	}
	ctx.JSON(review)
}

// Update patches the review addressed by its (property, poster) pair.
func (h ReviewRoutes) Update(ctx iris.Context) {
	propertyID, ok := paramUUID(ctx, "propertyID")
	if !ok {
		return
	}
	posterID, ok := paramUUID(ctx, "posterID")
	if !ok {
		return
	}
	var input UpdateReviewInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	review, err := h.Store.UpdateReview(ctx.Request().Context(), propertyID, posterID, storage.ReviewPatch{
		Rating:  input.Rating,
		Content: input.Content,
	})
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	ctx.JSON(review)
}

func (h ReviewRoutes) Delete(ctx iris.Context) {
	propertyID, ok := paramUUID(ctx, "propertyID")
	if !ok {
		return
	}
	posterID, ok := paramUUID(ctx, "posterID")
	if !ok {
		return
	}
	if err := h.Store.DeleteReview(ctx.Request().Context(), propertyID, posterID); err != nil {
		respondStoreError(ctx, err)
		return
	}
	ctx.JSON(iris.Map{"ok": true})
}
