package services

import (
	"strings"
	"sync"

	"github.com/frankiejoetabarrino/punisher/models"
)

const (
	// DefaultMealDescription is the placeholder shown until the user
	// names the meal.
	DefaultMealDescription = "Pasto del Guerriero"

	// DefaultGrams is assumed when a food is added without an explicit
	// quantity (barcode scans, click-to-add from search results).
	DefaultGrams = 100.0
)

// MealLine is one food item inside an in-progress meal. KcalTotal is
// derived: it always equals (KcalPer100g/100)*GramsConsumed and is
// recomputed on every mutation, never adjusted independently.
type MealLine struct {
	FoodItemID    uint            `json:"food_item_id"`
	GramsConsumed float64         `json:"grams_consumed"`
	KcalTotal     float64         `json:"kcal_total_item"`
	Food          models.FoodItem `json:"food_item_details"`
}

// MealLedger holds the not-yet-submitted meal for one session: an
// ordered set of lines with at most one line per food item, plus a
// free-form description. It is purely in-memory and is never persisted;
// submission goes through MealService and resets the ledger.
type MealLedger struct {
	mu          sync.Mutex
	lines       []MealLine
	description string
}

func NewMealLedger() *MealLedger {
	return &MealLedger{description: DefaultMealDescription}
}

func lineKcal(food models.FoodItem, grams float64) float64 {
	return (food.KcalPer100g / 100) * grams
}

// AddOrMerge appends a line for the food, or folds the grams into the
// existing line for the same food item. The merged kcal value is
// recomputed from the summed grams, so it matches a from-scratch
// computation exactly. Non-positive grams fall back to DefaultGrams.
func (l *MealLedger) AddOrMerge(food models.FoodItem, grams float64) {
	if !(grams > 0) {
		grams = DefaultGrams
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.lines {
		if l.lines[i].FoodItemID == food.ID {
			l.lines[i].GramsConsumed += grams
			l.lines[i].KcalTotal = lineKcal(l.lines[i].Food, l.lines[i].GramsConsumed)
			return
		}
	}
	l.lines = append(l.lines, MealLine{
		FoodItemID:    food.ID,
		GramsConsumed: grams,
		KcalTotal:     lineKcal(food, grams),
		Food:          food,
	})
}

// UpdateGrams replaces the quantity of the line at the given display
// position and recomputes its kcal. A non-positive quantity removes the
// line instead: no zero or negative line is ever retained. Returns false
// when the index does not address a line.
//
// The index is resolved to a food item id under the lock, so the actual
// mutation is identity-based even though callers address by position.
func (l *MealLedger) UpdateGrams(index int, grams float64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.lines) {
		return false
	}
	id := l.lines[index].FoodItemID

	if !(grams > 0) {
		l.removeByID(id)
		return true
	}
	for i := range l.lines {
		if l.lines[i].FoodItemID == id {
			l.lines[i].GramsConsumed = grams
			l.lines[i].KcalTotal = lineKcal(l.lines[i].Food, grams)
			return true
		}
	}
	return false
}

// Remove deletes the line at the given display position. Lines after it
// shift down by one; callers must not cache indices across mutations.
func (l *MealLedger) Remove(index int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.lines) {
		return false
	}
	l.removeByID(l.lines[index].FoodItemID)
	return true
}

func (l *MealLedger) removeByID(foodItemID uint) {
	kept := l.lines[:0]
	for _, line := range l.lines {
		if line.FoodItemID != foodItemID {
			kept = append(kept, line)
		}
	}
	l.lines = kept
}

// TotalKcal re-reduces the full line set on every call. Keeping a
// running counter would let rounding drift away from the lines.
func (l *MealLedger) TotalKcal() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	var total float64
	for _, line := range l.lines {
		total += line.KcalTotal
	}
	return total
}

func (l *MealLedger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lines)
}

// Lines returns a copy of the current lines in display order.
func (l *MealLedger) Lines() []MealLine {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]MealLine, len(l.lines))
	copy(out, l.lines)
	return out
}

func (l *MealLedger) Description() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.description
}

// SetDescription stores the free-form meal name; blank input restores
// the placeholder.
func (l *MealLedger) SetDescription(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if strings.TrimSpace(text) == "" {
		l.description = DefaultMealDescription
		return
	}
	l.description = text
}

// SubmitItems serializes the lines for MealService.SubmitMeal. Only the
// food id and grams travel; the server recomputes kcal from its own
// catalog rows.
func (l *MealLedger) SubmitItems() []MealItemRequest {
	l.mu.Lock()
	defer l.mu.Unlock()

	items := make([]MealItemRequest, 0, len(l.lines))
	for _, line := range l.lines {
		items = append(items, MealItemRequest{
			FoodItemID:    line.FoodItemID,
			GramsConsumed: line.GramsConsumed,
		})
	}
	return items
}

// Reset clears all lines and restores the default description. Called
// after a successful submission or when the composition is dismissed.
func (l *MealLedger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lines = nil
	l.description = DefaultMealDescription
}

// LedgerRegistry hands out the per-session ledger. Each user has at most
// one meal in progress; the ledger is created lazily when the
// composition view opens and dropped when it is dismissed.
type LedgerRegistry struct {
	mu      sync.RWMutex
	ledgers map[uint]*MealLedger
}

func NewLedgerRegistry() *LedgerRegistry {
	return &LedgerRegistry{ledgers: make(map[uint]*MealLedger)}
}

func (r *LedgerRegistry) Ledger(userID uint) *MealLedger {
	r.mu.RLock()
	l := r.ledgers[userID]
	r.mu.RUnlock()
	if l != nil {
		return l
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if l = r.ledgers[userID]; l == nil {
		l = NewMealLedger()
		r.ledgers[userID] = l
	}
	return l
}

func (r *LedgerRegistry) Drop(userID uint) {
	r.mu.Lock()
	delete(r.ledgers, userID)
	r.mu.Unlock()
}
