package services

import (
	"errors"

	"github.com/frankiejoetabarrino/punisher/config"
	"github.com/frankiejoetabarrino/punisher/models"
)

// ErrNonPositiveDebt rejects workout requests without a caloric surplus
// to burn.
var ErrNonPositiveDebt = errors.New("kcal_to_burn must be positive")

// RecordWorkoutRequest stores a workout request sized to the given debt.
// The external trainer service fills in the duration allocation; we keep
// the ledger of what was asked for.
func RecordWorkoutRequest(userID uint, kcalToBurn, estimatedTimeMin float64) (*models.GeneratedWorkout, error) {
	if !(kcalToBurn > 0) {
		return nil, ErrNonPositiveDebt
	}
	w := &models.GeneratedWorkout{
		UserID:                userID,
		KcalToBurn:            kcalToBurn,
		EstimatedTotalTimeMin: estimatedTimeMin,
	}
	if err := config.DB.Create(w).Error; err != nil {
		return nil, err
	}
	return w, nil
}

func ListWorkoutHistory(userID uint) ([]models.GeneratedWorkout, error) {
	var workouts []models.GeneratedWorkout
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&workouts).Error
	return workouts, err
}
