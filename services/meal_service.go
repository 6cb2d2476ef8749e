package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/frankiejoetabarrino/punisher/config"
	"github.com/frankiejoetabarrino/punisher/models"

	"gorm.io/gorm"
)

var (
	// ErrEmptyMeal blocks submission of a ledger with no lines.
	ErrEmptyMeal = errors.New("meal has no food items")
	// ErrInvalidQuantity rejects a non-positive grams value on the wire.
	ErrInvalidQuantity = errors.New("grams_consumed must be positive")
	// ErrFoodNotFound means a submitted food id has no catalog row.
	ErrFoodNotFound = errors.New("food item not found")
)

type MealService struct{}

func NewMealService() *MealService {
	return &MealService{}
}

// MealItemRequest is one serialized ledger line. Kcal values are never
// part of the payload; the server recomputes them from the catalog.
type MealItemRequest struct {
	FoodItemID    uint    `json:"food_item_id"`
	GramsConsumed float64 `json:"grams_consumed"`
}

// SubmitMeal validates and persists a composed meal. The whole write is
// transactional: a bad item rolls back the parent meal too, so a failed
// submission leaves nothing behind and the caller's ledger can retry
// unchanged.
func (s *MealService) SubmitMeal(userID uint, description string, items []MealItemRequest) (*models.Meal, error) {
	if len(items) == 0 {
		return nil, ErrEmptyMeal
	}
	if description == "" {
		description = DefaultMealDescription
	}

	meal := &models.Meal{UserID: userID, Description: description, MealTime: time.Now()}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meal).Error; err != nil {
			return err
		}

		for _, it := range items {
			if !(it.GramsConsumed > 0) {
				return fmt.Errorf("%w: food item %d", ErrInvalidQuantity, it.FoodItemID)
			}

			var food models.FoodItem
			if err := tx.First(&food, it.FoodItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: id %d", ErrFoodNotFound, it.FoodItemID)
				}
				return err
			}

			factor := it.GramsConsumed / 100
			mi := &models.MealItem{
				MealID:        meal.ID,
				FoodItemID:    food.ID,
				GramsConsumed: it.GramsConsumed,
				KcalTotal:     food.KcalPer100g * factor,
				CarbsTotal:    food.CarbsPer100g * factor,
				ProteinsTotal: food.ProteinsPer100g * factor,
				FatsTotal:     food.FatsPer100g * factor,
			}
			if err := tx.Create(mi).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// reload with items
	var populated models.Meal
	if err := config.DB.Preload("Items.FoodItem").
		First(&populated, meal.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

// ListDailyMeals returns the user's meals inside the day window around
// the given time, plus the day's ingested total. The total is re-reduced
// from the item rows on every call.
func (s *MealService) ListDailyMeals(userID uint, day time.Time) ([]models.Meal, float64, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	var meals []models.Meal
	err := config.DB.
		Preload("Items.FoodItem").
		Where("user_id = ? AND meal_time >= ? AND meal_time < ?", userID, start, end).
		Order("meal_time ASC").
		Find(&meals).Error
	if err != nil {
		return nil, 0, err
	}

	var total float64
	for _, m := range meals {
		for _, it := range m.Items {
			total += it.KcalTotal
		}
	}
	return meals, total, nil
}

func (s *MealService) ListRecentMeals(userID uint, limit int) ([]models.Meal, error) {
	if limit <= 0 {
		limit = 3
	}
	var meals []models.Meal
	err := config.DB.
		Preload("Items.FoodItem").
		Where("user_id = ?", userID).
		Order("meal_time DESC").
		Limit(limit).
		Find(&meals).Error
	return meals, err
}

// MealTotalKcal re-reduces one persisted meal, for display lists.
func MealTotalKcal(m *models.Meal) float64 {
	var total float64
	for _, it := range m.Items {
		total += it.KcalTotal
	}
	return total
}
