package controllers

import (
	"errors"
	"net/http"

	"github.com/frankiejoetabarrino/punisher/services"

	"github.com/gin-gonic/gin"
)

// POST /workout/generate  { "kcal_to_burn": 420.5 }
// Records a workout request sized to the caloric debt. Duration
// allocation happens in the external trainer service; its estimate, when
// already known, rides along.
func GenerateWorkout(c *gin.Context) {
	var req struct {
		KcalToBurn            float64 `json:"kcal_to_burn"`
		EstimatedTotalTimeMin float64 `json:"estimated_total_time_min"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	w, err := services.RecordWorkoutRequest(c.GetUint("userID"), req.KcalToBurn, req.EstimatedTotalTimeMin)
	if err != nil {
		if errors.Is(err, services.ErrNonPositiveDebt) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid kcal_to_burn value. Did you eat nothing, or are you a ghost?"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"workout": w})
}

// GET /workout/history
func WorkoutHistory(c *gin.Context) {
	workouts, err := services.ListWorkoutHistory(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, workouts)
}
