package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/frankiejoetabarrino/punisher/config"
	"github.com/frankiejoetabarrino/punisher/models"
	"github.com/frankiejoetabarrino/punisher/services"

	"github.com/gin-gonic/gin"
)

// LedgerController exposes the in-progress meal of the current session.
// All mutation goes through the MealLedger operations; nothing here
// touches line kcal values directly.
type LedgerController struct {
	ledgers *services.LedgerRegistry
	foods   *services.FoodService
	meals   *services.MealService
}

func NewLedgerController(ledgers *services.LedgerRegistry, foods *services.FoodService, meals *services.MealService) *LedgerController {
	return &LedgerController{ledgers: ledgers, foods: foods, meals: meals}
}

func (lc *LedgerController) ledger(c *gin.Context) *services.MealLedger {
	return lc.ledgers.Ledger(c.GetUint("userID"))
}

func ledgerState(l *services.MealLedger) gin.H {
	return gin.H{
		"description":     l.Description(),
		"items":           l.Lines(),
		"total_meal_kcal": l.TotalKcal(),
	}
}

// GET /meal/current
func (lc *LedgerController) Current(c *gin.Context) {
	c.JSON(http.StatusOK, ledgerState(lc.ledger(c)))
}

// POST /meal/current/items  { "food_item_id": 7, "grams_consumed": 50 }
// Adds the food to the meal, merging into an existing line for the same
// item. Grams default to 100 when omitted.
func (lc *LedgerController) AddItem(c *gin.Context) {
	var req struct {
		FoodItemID    uint    `json:"food_item_id" binding:"required"`
		GramsConsumed float64 `json:"grams_consumed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var food models.FoodItem
	if err := config.DB.First(&food, req.FoodItemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food item not found"})
		return
	}

	l := lc.ledger(c)
	l.AddOrMerge(food, req.GramsConsumed)
	c.JSON(http.StatusOK, ledgerState(l))
}

// POST /meal/current/barcode  { "barcode": "8001234567890" }
// A successful scan lands directly in the ledger at the default 100 g.
// A miss surfaces an error and leaves the meal untouched.
func (lc *LedgerController) AddByBarcode(c *gin.Context) {
	var req struct {
		Barcode string `json:"barcode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Inserisci un codice a barre!"})
		return
	}

	item, err := lc.foods.LookupBarcode(req.Barcode)
	if err != nil {
		if errors.Is(err, services.ErrBarcodeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Codice a barre non trovato o errore. Riprova!"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	l := lc.ledger(c)
	l.AddOrMerge(*item, services.DefaultGrams)
	c.JSON(http.StatusOK, ledgerState(l))
}

// PUT /meal/current/items/:index  { "grams_consumed": 250 }
// Zero or negative grams remove the line, same as DELETE.
func (lc *LedgerController) UpdateItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index"})
		return
	}
	var req struct {
		GramsConsumed float64 `json:"grams_consumed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	l := lc.ledger(c)
	if !l.UpdateGrams(index, req.GramsConsumed) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no meal item at that position"})
		return
	}
	c.JSON(http.StatusOK, ledgerState(l))
}

// DELETE /meal/current/items/:index
func (lc *LedgerController) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index"})
		return
	}

	l := lc.ledger(c)
	if !l.Remove(index) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no meal item at that position"})
		return
	}
	c.JSON(http.StatusOK, ledgerState(l))
}

// PUT /meal/current/description  { "description": "Cena del Sabato" }
func (lc *LedgerController) SetDescription(c *gin.Context) {
	var req struct {
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	l := lc.ledger(c)
	l.SetDescription(req.Description)
	c.JSON(http.StatusOK, ledgerState(l))
}

// POST /meal/current/submit
// Persists the composed meal. The ledger is reset only after a
// successful commit; any failure leaves it intact for retry.
func (lc *LedgerController) Submit(c *gin.Context) {
	userID := c.GetUint("userID")
	l := lc.ledger(c)

	meal, err := lc.meals.SubmitMeal(userID, l.Description(), l.SubmitItems())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyMeal):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Aggiungi almeno un alimento per registrare il pasto!"})
		case errors.Is(err, services.ErrFoodNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	l.Reset()
	c.JSON(http.StatusCreated, gin.H{
		"message":         "Pasto registrato! Il tuo debito è aggiornato!",
		"meal":            meal,
		"total_meal_kcal": services.MealTotalKcal(meal),
	})
}

// DELETE /meal/current
// Dismisses the composition view: the in-progress meal is discarded.
func (lc *LedgerController) Dismiss(c *gin.Context) {
	lc.ledgers.Drop(c.GetUint("userID"))
	c.JSON(http.StatusOK, gin.H{"message": "meal discarded"})
}
