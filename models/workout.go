package models

import "gorm.io/gorm"

// A workout request sized to a caloric debt. Duration allocation is
// performed by the external trainer service; we only record the debt
// and whatever estimate it reports back.
type GeneratedWorkout struct {
	gorm.Model
	UserID                uint    `json:"user_id"`
	KcalToBurn            float64 `gorm:"not null" json:"kcal_to_burn"`
	EstimatedTotalTimeMin float64 `json:"estimated_total_time_min"`
}
