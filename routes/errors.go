package routes

import (
	"errors"

	"github.com/kataras/iris/v12"

	"github.com/MayoSR/cornell-student-housing-backend/storage"
	"github.com/MayoSR/cornell-student-housing-backend/utils"
)

// respondStoreError maps the storage error taxonomy onto HTTP. Nothing here
// retries; a constraint loser resubmits if it wants to.
func respondStoreError(ctx iris.Context, err error) {
	var (
		constraintErr *storage.ConstraintError
		validationErr *storage.ValidationError
		artifactErr   *storage.ArtifactError
		partialErr    *storage.PartialFailureError
	)
	switch {
	case errors.As(err, &partialErr):
		utils.JSONError(ctx, iris.StatusInternalServerError, "partial_failure", partialErr.Error())
	case errors.As(err, &validationErr):
		utils.JSONError(ctx, iris.StatusBadRequest, "validation_error", validationErr.Error())
	case errors.As(err, &constraintErr):
		utils.JSONError(ctx, iris.StatusConflict, "constraint_violation", constraintErr.Error())
	case errors.As(err, &artifactErr):
		if errors.Is(err, storage.ErrNotFound) {
			utils.JSONError(ctx, iris.StatusNotFound, "not_found", artifactErr.Error())
			return
		}
		utils.JSONError(ctx, iris.StatusInternalServerError, "artifact_error", artifactErr.Error())
	case errors.Is(err, storage.ErrNotFound):
		utils.JSONError(ctx, iris.StatusNotFound, "not_found", "resource not found")
	default:
		utils.JSONError(ctx, iris.StatusInternalServerError, "internal_error", err.Error())
	}
}
