package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	accountfx "captionary/cmd/fx/account_fx"
	captionfx "captionary/cmd/fx/caption_fx"
	controllersfx "captionary/cmd/fx/controllers_fx"
	dbfx "captionary/cmd/fx/db_fx"
	historyfx "captionary/cmd/fx/history_fx"
	paymentfx "captionary/cmd/fx/payment_fx"
	planfx "captionary/cmd/fx/plan_fx"
	usagefx "captionary/cmd/fx/usage_fx"
	"captionary/internal/api/controllers"
	"captionary/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment variables")
	}

	app := fx.New(
		dbfx.Module,
		accountfx.Module,
		planfx.Module,
		usagefx.Module,
		historyfx.Module,
		captionfx.Module,
		paymentfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	captionController *controllers.CaptionController,
	planController *controllers.PlanController,
	usageController *controllers.UsageController,
	paymentController *controllers.PaymentController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, captionController, planController, usageController, paymentController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	captionController *controllers.CaptionController,
	planController *controllers.PlanController,
	usageController *controllers.UsageController,
	paymentController *controllers.PaymentController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/signup", accountController.Register)
	authGroup.POST("/login", accountController.Login)

	plansGroup := r.Group("/plans")
	plansGroup.GET("", planController.ListPlans)
	plansGroup.GET("/:code", planController.GetPlan)

	captionsGroup := r.Group("/captions")
	captionsGroup.GET("/options", captionController.Options)
	captionsGroup.Use(middleware.JWTAuthMiddleware())
	captionsGroup.POST("/generate", captionController.Generate)
	captionsGroup.GET("/history", captionController.History)
	captionsGroup.GET("/history/similar", captionController.Similar)

	usageGroup := r.Group("/usage")
	usageGroup.Use(middleware.JWTAuthMiddleware())
	usageGroup.GET("", usageController.Summary)

	paymentsGroup := r.Group("/payments")
	paymentsGroup.POST("/webhook", paymentController.HandleWebhook)
	paymentsGroup.Use(middleware.JWTAuthMiddleware())
	paymentsGroup.POST("/checkout", paymentController.CreateCheckout)
}
