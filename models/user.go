package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username          string  `gorm:"uniqueIndex;not null" json:"username"`
	Email             string  `gorm:"uniqueIndex;not null" json:"email"`
	Gender            string  `json:"gender"` // "M" or "F"
	Age               int     `json:"age"`
	WeightKg          float64 `json:"weight_kg"`
	HeightCm          float64 `json:"height_cm"`
	ProfilePictureURL string  `json:"profile_picture_url"`
	Guest             bool    `json:"is_guest"`
}
