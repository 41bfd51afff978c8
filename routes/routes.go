package routes

import (
	"github.com/kataras/iris/v12"

	"github.com/MayoSR/cornell-student-housing-backend/config"
	"github.com/MayoSR/cornell-student-housing-backend/storage"
)

// Register mounts every route on the app. The bulk reset endpoint only
// exists in test mode; outside it the route is simply not there.
func Register(app *iris.Application, store *storage.Store, cfg config.Config) {
	home := HomeRoutes{Store: store}
	app.Get("/", home.RedirectAPI)

	api := app.Party("/api")
	api.Get("/", home.Index)
	if cfg.TestMode {
		api.Delete("/", home.Reset)
	}

	accounts := AccountRoutes{Store: store}
	accountsParty := api.Party("/accounts")
	{
		accountsParty.Get("/", accounts.List)
		accountsParty.Post("/", accounts.Create)
		accountsParty.Get("/{id:uuid}", accounts.Get)
		accountsParty.Patch("/{id:uuid}", accounts.Update)
		accountsParty.Delete("/{id:uuid}", accounts.Delete)
	}

	properties := PropertyRoutes{Store: store}
	images := PropertyImageRoutes{Store: store}
	propertiesParty := api.Party("/properties")
	{
		propertiesParty.Get("/", properties.List)
		propertiesParty.Post("/", properties.Create)
		propertiesParty.Get("/{id:uuid}", properties.Get)
		propertiesParty.Patch("/{id:uuid}", properties.Update)
		propertiesParty.Delete("/{id:uuid}", properties.Delete)

		propertiesParty.Get("/{id:uuid}/images", images.List)
		propertiesParty.Post("/{id:uuid}/images", images.Create)
		propertiesParty.Delete("/{id:uuid}/images/{imageID:uuid}", images.Delete)
	}

	reviews := ReviewRoutes{Store: store}
	reviewsParty := api.Party("/reviews")
	{
		reviewsParty.Get("/", reviews.List)
		reviewsParty.Post("/", reviews.Create)
		reviewsParty.Get("/{id:uuid}", reviews.Get)
		reviewsParty.Patch("/{propertyID:uuid}/{posterID:uuid}", reviews.Update)
		reviewsParty.Delete("/{propertyID:uuid}/{posterID:uuid}", reviews.Delete)
	}
}
