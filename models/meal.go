package models

import (
	"time"

	"gorm.io/gorm"
)

// One submitted meal. Only committed meals reach the database; the
// in-progress composition lives in the services.MealLedger.
type Meal struct {
	gorm.Model
	UserID      uint       `json:"user_id"`
	Description string     `json:"description"`
	MealTime    time.Time  `json:"meal_time"`
	Items       []MealItem `json:"items"`
}

// Each MealItem stores the nutrition snapshot recomputed server-side
// from the catalog row at submission time. Client kcal values are
// display-only and are never accepted on the wire.
type MealItem struct {
	gorm.Model
	MealID        uint     `json:"meal_id"`
	FoodItemID    uint     `json:"food_item_id"`
	FoodItem      FoodItem `json:"food_item"`
	GramsConsumed float64  `json:"grams_consumed"`
	KcalTotal     float64  `json:"kcal_total"`
	CarbsTotal    float64  `json:"carbs_total"`
	ProteinsTotal float64  `json:"proteins_total"`
	FatsTotal     float64  `json:"fats_total"`
}
