package controllers_fx

import (
	"go.uber.org/fx"

	"tripwise/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPlannerController),
	fx.Provide(controllers.NewHotelController),
	fx.Provide(controllers.NewTripController))
