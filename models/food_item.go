package models

import "gorm.io/gorm"

// A catalog entry. Rows come from the seeded food table or are cached
// from Open Food Facts after a successful barcode lookup.
type FoodItem struct {
	gorm.Model
	Name            string  `gorm:"uniqueIndex;not null" json:"name"`
	Category        string  `json:"category"`
	KcalPer100g     float64 `gorm:"not null" json:"kcal_per_100g"`
	CarbsPer100g    float64 `json:"carbs_per_100g"`
	ProteinsPer100g float64 `json:"proteins_per_100g"`
	FatsPer100g     float64 `json:"fats_per_100g"`
	SugarsPer100g   float64 `json:"sugars_per_100g"`
	FiberPer100g    float64 `json:"fiber_per_100g"`
	SodiumMgPer100g float64 `json:"sodium_mg_per_100g"`
	ImageURL        string  `json:"image_url"`
	BarcodeUPC      *string `gorm:"uniqueIndex" json:"barcode_upc,omitempty"`
}
