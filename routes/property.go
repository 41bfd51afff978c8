package routes

import (
	"github.com/google/uuid"
	"github.com/kataras/iris/v12"

	"github.com/MayoSR/cornell-student-housing-backend/models"
	"github.com/MayoSR/cornell-student-housing-backend/storage"
	"github.com/MayoSR/cornell-student-housing-backend/utils"
)

type PropertyRoutes struct {
	Store *storage.Store
}

type CreatePropertyInput struct {
	OwnerID      uuid.UUID `json:"owner_id" validate:"required"`
	Name         string    `json:"name" validate:"max=200"`
	Description  string    `json:"description" validate:"max=2000"`
	Address      string    `json:"address" validate:"required,max=500"`
	StartDate    string    `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string    `json:"end_date" validate:"required,datetime=2006-01-02"`
	MonthlyRent  int       `json:"monthly_rent" validate:"required,gt=0"`
	NumBedrooms  int       `json:"num_bedrooms" validate:"gte=0"`
	NumBathrooms int       `json:"num_bathrooms" validate:"gte=0"`
}

type UpdatePropertyInput struct {
	Name         *string `json:"name" validate:"omitempty,max=200"`
	Description  *string `json:"description" validate:"omitempty,max=2000"`
	Address      *string `json:"address" validate:"omitempty,max=500"`
	StartDate    *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate      *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	MonthlyRent  *int    `json:"monthly_rent" validate:"omitempty,gt=0"`
	NumBedrooms  *int    `json:"num_bedrooms" validate:"omitempty,gte=0"`
	NumBathrooms *int    `json:"num_bathrooms" validate:"omitempty,gte=0"`
}

// List returns a page of properties, optionally filtered by ?owner_id=.
func (h PropertyRoutes) List(ctx iris.Context) {
	ownerID, ok := filterUUID(ctx, "owner_id")
	if !ok {
		return
	}
	offset, limit := pageParams(ctx)
	properties, err := h.Store.ListProperties(ctx.Request().Context(), ownerID, offset, limit)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	ctx.JSON(properties)
}

func (h PropertyRoutes) Get(ctx iris.Context) {
	id, ok := paramUUID(ctx, "id")
	if !ok {
		return
	}
	property, err := h.Store.GetProperty(ctx.Request().Context(), id)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	ctx.JSON(property)
}

func (h PropertyRoutes) Create(ctx iris.Context) {
	var input CreatePropertyInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	property := models.Property{
		OwnerID:      input.OwnerID,
		Name:         input.Name,
		Description:  input.Description,
		Address:      input.Address,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		MonthlyRent:  input.MonthlyRent,
		NumBedrooms:  input.NumBedrooms,
		NumBathrooms: input.NumBathrooms,
	}
	if err := h.Store.CreateProperty(ctx.Request().Context(), &property); err != nil {
		respondStoreError(ctx, err)
		return
	}
	ctx.JSON(property)
}

func (h PropertyRoutes) Update(ctx iris.Context) {
	id, ok := paramUUID(ctx, "id")
	if !ok {
		return
	}
	var input UpdatePropertyInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	property, err := h.Store.UpdateProperty(ctx.Request().Context(), id, storage.PropertyPatch{
		Name:         input.Name,
		Description:  input.Description,
		Address:      input.Address,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		MonthlyRent:  input.MonthlyRent,
		NumBedrooms:  input.NumBedrooms,
		NumBathrooms: input.NumBathrooms,
	})
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	ctx.JSON(property)
}

// Delete cascades to the property's images (blobs included) and reviews.
func (h PropertyRoutes) Delete(ctx iris.Context) {
	id, ok := paramUUID(ctx, "id")
	if !ok {
		return
	}
	if err := h.Store.DeleteProperty(ctx.Request().Context(), id); err != nil {
		respondStoreError(ctx, err)
		return
	}
	ctx.JSON(iris.Map{"ok": true})
}
