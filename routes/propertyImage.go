package routes

import (
	"github.com/kataras/iris/v12"

	"github.com/MayoSR/cornell-student-housing-backend/storage"
	"github.com/MayoSR/cornell-student-housing-backend/utils"
)

type PropertyImageRoutes struct {
	Store *storage.Store
}

func (h PropertyImageRoutes) List(ctx iris.Context) {
	propertyID, ok := paramUUID(ctx, "id")
	if !ok {
		return
	}
	offset, limit := pageParams(ctx)
	images, err := h.Store.ListImages(ctx.Request().Context(), propertyID, offset, limit)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	ctx.JSON(images)
}

// Create accepts a multipart upload under the "upload_file" field and binds
// it to the property.
func (h PropertyImageRoutes) Create(ctx iris.Context) {
	propertyID, ok := paramUUID(ctx, "id")
	if !ok {
		return
	}

	formFile, fileHeader, err := ctx.FormFile("upload_file")
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "validation_error", "missing upload_file")
		return
	}
	formFile.Close()
	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "validation_error", "unreadable upload_file")
		return
	}
	defer file.Close()

	image, err := h.Store.AttachImage(
		ctx.Request().Context(),
		propertyID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
		fileHeader.Size,
	)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	ctx.JSON(image)
}

func (h PropertyImageRoutes) Delete(ctx iris.Context) {
	propertyID, ok := paramUUID(ctx, "id")
	if !ok {
		return
	}
	imageID, ok := paramUUID(ctx, "imageID")
	if !ok {
		return
	}

	res, err := h.Store.DetachImage(ctx.Request().Context(), propertyID, imageID)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	ctx.JSON(iris.Map{"ok": true, "artifact_missing": res.ArtifactMissing})
}
