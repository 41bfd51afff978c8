package routes

import (
	"github.com/google/uuid"
	"github.com/kataras/iris/v12"

	"github.com/MayoSR/cornell-student-housing-backend/storage"
	"github.com/MayoSR/cornell-student-housing-backend/utils"
)

// paramUUID reads a uuid path parameter. The :uuid macro already rejected
// malformed values, so a parse failure here means a routing bug; it still
// 400s rather than panicking.
func paramUUID(ctx iris.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params().Get(name))
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "validation_error", "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// pageParams reads offset/limit, defaulting and capping limit.
func pageParams(ctx iris.Context) (offset, limit int) {
	offset = ctx.URLParamIntDefault("offset", 0)
	if offset < 0 {
		offset = 0
	}
	limit = ctx.URLParamIntDefault("limit", storage.MaxLimit)
	return offset, limit
}

// filterUUID reads an optional uuid query parameter, nil when absent.
func filterUUID(ctx iris.Context, name string) (*uuid.UUID, bool) {
	raw := ctx.URLParam(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "validation_error", "invalid "+name)
		return nil, false
	}
	return &id, true
}
