package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripwise/cmd/fx/controllers_fx"
	"tripwise/cmd/fx/db_fx"
	"tripwise/cmd/fx/hotel_fx"
	"tripwise/cmd/fx/llm_fx"
	"tripwise/cmd/fx/planner_fx"
	"tripwise/cmd/fx/trip_fx"
	"tripwise/internal/api/controllers"
	"tripwise/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		llm_fx.Module,
		planner_fx.Module,
		hotel_fx.Module,
		trip_fx.Module,
		controllers_fx.Module,

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
				log.Printf("Starting HTTP server at :%s", port)
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
	plannerController *controllers.PlannerController,
	hotelController *controllers.HotelController,
	tripController *controllers.TripController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, plannerController, hotelController, tripController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	plannerController *controllers.PlannerController,
	hotelController *controllers.HotelController,
	tripController *controllers.TripController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.JWTAuthMiddleware())

	api.POST("/plans", plannerController.GeneratePlan)
	api.POST("/hotels/search", hotelController.SearchHotels)

	trips := api.Group("/trips")
	trips.POST("", tripController.SaveTrip)
	trips.GET("", tripController.ListTrips)
	trips.GET("/:tripId", tripController.GetTrip)
	trips.DELETE("/:tripId", tripController.DeleteTrip)
	trips.POST("/:tripId/expenses", tripController.AddExpense)
	trips.GET("/:tripId/budget", tripController.GetBudgetSummary)
	trips.PATCH("/:tripId/budget", tripController.UpdateBudget)
}
