package utils

import "errors"

// CalculateBMR estimates the resting energy expenditure in kcal/day
// using Mifflin-St Jeor. Height in centimeters, weight in kilograms.
func CalculateBMR(gender string, age int, weightKg, heightCm float64) (float64, error) {
	if age <= 0 || heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("age, height and weight must be positive")
	}
	// Sanity checks to avoid garbage input
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 || age > 130 {
		return 0, errors.New("age/height/weight out of plausible range")
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch gender {
	case "F", "f":
		bmr -= 161
	default:
		bmr += 5
	}
	return bmr, nil
}
