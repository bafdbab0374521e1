package controllersfx

import (
	"go.uber.org/fx"

	"captionary/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewCaptionController),
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewUsageController),
	fx.Provide(controllers.NewPaymentController))
