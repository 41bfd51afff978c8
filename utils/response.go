package utils

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

// JSONError writes the shared error envelope: a machine-readable kind and a
// human-readable message.
func JSONError(ctx iris.Context, status int, code, message string) {
	ctx.StatusCode(status)
	ctx.JSON(iris.Map{"error": code, "message": message})
}

// HandleValidationErrors turns a ReadJSON/validator failure into a 400 with
// per-field details when available.
func HandleValidationErrors(err error, ctx iris.Context) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make([]iris.Map, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, iris.Map{"field": fe.Field(), "rule": fe.Tag()})
		}
		ctx.StopWithJSON(iris.StatusBadRequest, iris.Map{
			"error":   "validation_error",
			"message": "request body failed validation",
			"fields":  fields,
		})
		return
	}
	ctx.StopWithJSON(iris.StatusBadRequest, iris.Map{
		"error":   "validation_error",
		"message": err.Error(),
	})
}
