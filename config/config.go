package config

import (
	"fmt"
	"log"
	"os"

	"github.com/frankiejoetabarrino/punisher/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.Meal{},
		&models.MealItem{},
		&models.GeneratedWorkout{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

// OpenFoodFactsBaseURL returns the product endpoint base, overridable
// for staging and tests.
func OpenFoodFactsBaseURL() string {
	if u := os.Getenv("OPEN_FOOD_FACTS_API_URL"); u != "" {
		return u
	}
	return "https://world.openfoodfacts.org/api/v0/product/"
}
