package routes

import (
	"github.com/kataras/iris/v12"

	"github.com/MayoSR/cornell-student-housing-backend/storage"
)

type HomeRoutes struct {
	Store *storage.Store
}

func (h HomeRoutes) RedirectAPI(ctx iris.Context) {
	ctx.Redirect("/api", iris.StatusTemporaryRedirect)
}

func (h HomeRoutes) Index(ctx iris.Context) {
	ctx.JSON(iris.Map{"ok": true, "message": "Cornell Student Housing API"})
}

// Reset wipes every table and the artifact store. Registered only in test
// mode; the test harness calls it between cases.
func (h HomeRoutes) Reset(ctx iris.Context) {
	if err := h.Store.ResetAll(ctx.Request().Context()); err != nil {
		respondStoreError(ctx, err)
		return
	}
	ctx.JSON(iris.Map{"ok": true})
}
