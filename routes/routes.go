package routes

import (
	"github.com/frankiejoetabarrino/punisher/controllers"
	"github.com/frankiejoetabarrino/punisher/logger"
	"github.com/frankiejoetabarrino/punisher/middlewares"
	"github.com/frankiejoetabarrino/punisher/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	off := services.NewOpenFoodFactsService()
	rek, err := services.NewRekognitionService()
	if err != nil {
		logger.Warn("photo recognition disabled", zap.Error(err))
		rek = nil
	}
	foodSvc := services.NewFoodService(off, rek)
	mealSvc := services.NewMealService()
	ledgers := services.NewLedgerRegistry()

	foodCtl := controllers.NewFoodController(foodSvc)
	ledgerCtl := controllers.NewLedgerController(ledgers, foodSvc, mealSvc)
	dashCtl := controllers.NewDashboardController(mealSvc)
	searchCtl := controllers.NewSearchStreamController(foodSvc)

	session := middlewares.SessionMiddleware()

	food := r.Group("/food")
	{
		food.GET("/search", foodCtl.Search)
		food.GET("/barcode/:code", foodCtl.Barcode)
		food.POST("/recognize", foodCtl.Recognize)
		food.POST("/:id/image", foodCtl.UploadImage)
	}

	meal := r.Group("/meal", session)
	{
		meal.GET("/current", ledgerCtl.Current)
		meal.DELETE("/current", ledgerCtl.Dismiss)
		meal.POST("/current/items", ledgerCtl.AddItem)
		meal.POST("/current/barcode", ledgerCtl.AddByBarcode)
		meal.PUT("/current/items/:index", ledgerCtl.UpdateItem)
		meal.DELETE("/current/items/:index", ledgerCtl.RemoveItem)
		meal.PUT("/current/description", ledgerCtl.SetDescription)
		meal.POST("/current/submit", ledgerCtl.Submit)
	}

	dashboard := r.Group("/dashboard", session)
	{
		dashboard.GET("/daily", dashCtl.Daily)
	}

	profile := r.Group("/profile", session)
	{
		profile.GET("", controllers.GetProfile)
		profile.PUT("", controllers.UpdateProfile)
	}

	workout := r.Group("/workout", session)
	{
		workout.POST("/generate", controllers.GenerateWorkout)
		workout.GET("/history", controllers.WorkoutHistory)
	}

	r.GET("/ws/food-search", searchCtl.SearchWS)

	return r
}
