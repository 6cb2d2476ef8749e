package services

import (
	"errors"

	"github.com/frankiejoetabarrino/punisher/config"
	"github.com/frankiejoetabarrino/punisher/models"
	"github.com/frankiejoetabarrino/punisher/utils"

	"gorm.io/gorm"
)

const guestUsername = "GuestWarrior"

// GetOrCreateGuest returns the shared guest profile, creating it on
// first use. Guest data is throwaway; the fixed profile just gives the
// balance math something to work with.
func GetOrCreateGuest() (*models.User, error) {
	var user models.User
	err := config.DB.
		Where(models.User{Username: guestUsername}).
		Attrs(models.User{
			Email:    "guest@caloriepunisher.com",
			Gender:   "M",
			Age:      30,
			WeightKg: 75.0,
			HeightCm: 175.0,
			Guest:    true,
		}).
		FirstOrCreate(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}
	return &user, nil
}

type ProfileUpdate struct {
	Gender            *string  `json:"gender"`
	Age               *int     `json:"age"`
	WeightKg          *float64 `json:"weight_kg"`
	HeightCm          *float64 `json:"height_cm"`
	ProfilePictureURL *string  `json:"profile_picture_url"`
}

// UpdateProfile applies the provided fields only.
func UpdateProfile(userID uint, in ProfileUpdate) (*models.User, error) {
	user, err := GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if in.Gender != nil {
		user.Gender = *in.Gender
	}
	if in.Age != nil {
		user.Age = *in.Age
	}
	if in.WeightKg != nil {
		user.WeightKg = *in.WeightKg
	}
	if in.HeightCm != nil {
		user.HeightCm = *in.HeightCm
	}
	if in.ProfilePictureURL != nil {
		user.ProfilePictureURL = *in.ProfilePictureURL
	}

	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// ProfileView is what the dashboard consumes: the stored profile plus
// the derived basal rate.
type ProfileView struct {
	models.User
	BMR float64 `json:"bmr"`
}

func BuildProfileView(user *models.User) ProfileView {
	bmr, err := utils.CalculateBMR(user.Gender, user.Age, user.WeightKg, user.HeightCm)
	if err != nil {
		bmr = 0
	}
	return ProfileView{User: *user, BMR: bmr}
}
