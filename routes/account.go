package routes

import (
	"github.com/kataras/iris/v12"

	"github.com/MayoSR/cornell-student-housing-backend/models"
	"github.com/MayoSR/cornell-student-housing-backend/storage"
	"github.com/MayoSR/cornell-student-housing-backend/utils"
)

type AccountRoutes struct {
	Store *storage.Store
}

type CreateAccountInput struct {
	FirstName string `json:"fname" validate:"required,max=100"`
	LastName  string `json:"lname" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
}

type UpdateAccountInput struct {
	FirstName *string `json:"fname" validate:"omitempty,max=100"`
	LastName  *string `json:"lname" validate:"omitempty,max=100"`
	Email     *string `json:"email" validate:"omitempty,email"`
}

func (h AccountRoutes) List(ctx iris.Context) {
	offset, limit := pageParams(ctx)
	accounts, err := h.Store.ListAccounts(ctx.Request().Context(), offset, limit)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	ctx.JSON(accounts)
}

func (h AccountRoutes) Get(ctx iris.Context) {
	id, ok := paramUUID(ctx, "id")
	if !ok {
		return
	}
	account, err := h.Store.GetAccount(ctx.Request().Context(), id)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	ctx.JSON(account)
}

func (h AccountRoutes) Create(ctx iris.Context) {
	var input CreateAccountInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	account := models.Account{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	}
	if err := h.Store.CreateAccount(ctx.Request().Context(), &account); err != nil {
		respondStoreError(ctx, err)
		return
	}
	ctx.JSON(account)
}

func (h AccountRoutes) Update(ctx iris.Context) {
	id, ok := paramUUID(ctx, "id")
	if !ok {
		return
	}
	var input UpdateAccountInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	account, err := h.Store.UpdateAccount(ctx.Request().Context(), id, storage.AccountPatch{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	})
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	ctx.JSON(account)
}

// Delete cascades: the account's properties, their images and blobs, and
// every review the account posted all go with it.
func (h AccountRoutes) Delete(ctx iris.Context) {
	id, ok := paramUUID(ctx, "id")
	if !ok {
		return
	}
	if err := h.Store.DeleteAccount(ctx.Request().Context(), id); err != nil {
		respondStoreError(ctx, err)
		return
	}
	ctx.JSON(iris.Map{"ok": true})
}
