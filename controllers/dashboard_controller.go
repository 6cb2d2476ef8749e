package controllers

import (
	"net/http"
	"time"

	"github.com/frankiejoetabarrino/punisher/services"
	"github.com/frankiejoetabarrino/punisher/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	meals *services.MealService
}

func NewDashboardController(meals *services.MealService) *DashboardController {
	return &DashboardController{meals: meals}
}

type dailyMealView struct {
	MealID      uint        `json:"meal_id"`
	Description string      `json:"description"`
	MealTime    time.Time   `json:"meal_time"`
	Items       interface{} `json:"items"`
	TotalKcal   float64     `json:"total_kcal_in_meal"`
}

// GET /dashboard/daily
// The day's meals, the ingested total, and the derived caloric balance
// for the session kind. Everything here is recomputed per request.
func (dc *DashboardController) Daily(c *gin.Context) {
	userID := c.GetUint("userID")
	guest := c.GetBool("guest")

	user, err := services.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	meals, total, err := dc.meals.ListDailyMeals(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	views := make([]dailyMealView, 0, len(meals))
	for i := range meals {
		views = append(views, dailyMealView{
			MealID:      meals[i].ID,
			Description: meals[i].Description,
			MealTime:    meals[i].MealTime,
			Items:       meals[i].Items,
			TotalKcal:   services.MealTotalKcal(&meals[i]),
		})
	}

	bmr, err := utils.CalculateBMR(user.Gender, user.Age, user.WeightKg, user.HeightCm)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"meals":                     views,
		"total_daily_kcal_ingested": total,
		"bmr":                       bmr,
		"balance":                   services.NewBalanceSnapshot(total, bmr, services.ActivityMultiplierFor(guest)),
	})
}
