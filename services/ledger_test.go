package services

import (
	"testing"

	"github.com/frankiejoetabarrino/punisher/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func food(id uint, name string, kcalPer100g float64) models.FoodItem {
	return models.FoodItem{
		Model:       gorm.Model{ID: id},
		Name:        name,
		KcalPer100g: kcalPer100g,
	}
}

func TestAddOrMergeDistinctFoods(t *testing.T) {
	l := NewMealLedger()
	l.AddOrMerge(food(1, "Pizza", 270), 200)
	l.AddOrMerge(food(2, "Tiramisu", 450), 80)
	l.AddOrMerge(food(3, "Insalata", 15), 150)

	lines := l.Lines()
	assert.Len(t, lines, 3)
	assert.InDelta(t, 270.0/100*200, lines[0].KcalTotal, 1e-9)
	assert.InDelta(t, 450.0/100*80, lines[1].KcalTotal, 1e-9)
	assert.InDelta(t, 15.0/100*150, lines[2].KcalTotal, 1e-9)

	want := 270.0/100*200 + 450.0/100*80 + 15.0/100*150
	assert.InDelta(t, want, l.TotalKcal(), 1e-9)
}

func TestAddOrMergeSameFoodMergesExactly(t *testing.T) {
	l := NewMealLedger()
	item := food(7, "Pollo", 200)

	l.AddOrMerge(item, 50)
	lines := l.Lines()
	assert.Len(t, lines, 1)
	assert.InDelta(t, 100.0, lines[0].KcalTotal, 1e-9)

	l.AddOrMerge(item, 150)
	lines = l.Lines()
	assert.Len(t, lines, 1, "same food must merge, not append")
	assert.InDelta(t, 200.0, lines[0].GramsConsumed, 1e-9)
	// Merged kcal must equal a from-scratch computation at the summed grams.
	assert.InDelta(t, (200.0/100)*200, lines[0].KcalTotal, 1e-9)
	assert.InDelta(t, 400.0, l.TotalKcal(), 1e-9)

	assert.True(t, l.UpdateGrams(0, 0))
	assert.Equal(t, 0, l.Len())
	assert.Zero(t, l.TotalKcal())
}

func TestAddOrMergeDefaultsGrams(t *testing.T) {
	l := NewMealLedger()
	l.AddOrMerge(food(1, "Pane", 250), 0)

	lines := l.Lines()
	assert.Len(t, lines, 1)
	assert.InDelta(t, DefaultGrams, lines[0].GramsConsumed, 1e-9)
	assert.InDelta(t, 250.0, lines[0].KcalTotal, 1e-9)
}

func TestUpdateGramsRecomputesKcal(t *testing.T) {
	l := NewMealLedger()
	l.AddOrMerge(food(1, "Pizza", 270), 100)

	assert.True(t, l.UpdateGrams(0, 250))
	lines := l.Lines()
	assert.InDelta(t, 250.0, lines[0].GramsConsumed, 1e-9)
	assert.InDelta(t, 270.0/100*250, lines[0].KcalTotal, 1e-9)
}

func TestUpdateGramsNonPositiveRemovesLine(t *testing.T) {
	for _, grams := range []float64{0, -5} {
		l := NewMealLedger()
		l.AddOrMerge(food(1, "Pizza", 270), 100)
		l.AddOrMerge(food(2, "Pasta", 350), 100)
		l.AddOrMerge(food(3, "Gelato", 200), 100)

		assert.True(t, l.UpdateGrams(1, grams))

		lines := l.Lines()
		assert.Len(t, lines, 2)
		assert.Equal(t, uint(1), lines[0].FoodItemID)
		assert.Equal(t, uint(3), lines[1].FoodItemID)
		// Untouched lines keep their grams.
		assert.InDelta(t, 100.0, lines[0].GramsConsumed, 1e-9)
		assert.InDelta(t, 100.0, lines[1].GramsConsumed, 1e-9)
	}
}

func TestUpdateGramsOutOfRange(t *testing.T) {
	l := NewMealLedger()
	l.AddOrMerge(food(1, "Pizza", 270), 100)

	assert.False(t, l.UpdateGrams(1, 50))
	assert.False(t, l.UpdateGrams(-1, 50))
	assert.Equal(t, 1, l.Len())
}

func TestRemoveShiftsFollowingLines(t *testing.T) {
	l := NewMealLedger()
	l.AddOrMerge(food(1, "Pizza", 270), 100)
	l.AddOrMerge(food(2, "Pasta", 350), 100)
	l.AddOrMerge(food(3, "Gelato", 200), 100)

	assert.True(t, l.Remove(0))
	lines := l.Lines()
	assert.Equal(t, uint(2), lines[0].FoodItemID)
	assert.Equal(t, uint(3), lines[1].FoodItemID)
}

func TestRemoveLastIndexEmptiesLedger(t *testing.T) {
	l := NewMealLedger()
	l.AddOrMerge(food(1, "Pizza", 270), 100)

	assert.True(t, l.Remove(0))
	assert.Equal(t, 0, l.Len())
	assert.Zero(t, l.TotalKcal())
	assert.False(t, l.Remove(0))
}

func TestDescriptionDefaultsAndResets(t *testing.T) {
	l := NewMealLedger()
	assert.Equal(t, DefaultMealDescription, l.Description())

	l.SetDescription("Cena del Sabato")
	assert.Equal(t, "Cena del Sabato", l.Description())

	l.SetDescription("   ")
	assert.Equal(t, DefaultMealDescription, l.Description())

	l.SetDescription("Pranzo")
	l.AddOrMerge(food(1, "Pizza", 270), 100)
	l.Reset()
	assert.Equal(t, DefaultMealDescription, l.Description())
	assert.Equal(t, 0, l.Len())
	assert.Zero(t, l.TotalKcal())
}

func TestSubmitItemsCarryOnlyIDAndGrams(t *testing.T) {
	l := NewMealLedger()
	l.AddOrMerge(food(7, "Pollo", 200), 50)
	l.AddOrMerge(food(9, "Riso", 130), 80)

	items := l.SubmitItems()
	assert.Equal(t, []MealItemRequest{
		{FoodItemID: 7, GramsConsumed: 50},
		{FoodItemID: 9, GramsConsumed: 80},
	}, items)
}

func TestLedgerRegistryPerSession(t *testing.T) {
	r := NewLedgerRegistry()

	a := r.Ledger(1)
	b := r.Ledger(2)
	assert.NotSame(t, a, b)
	assert.Same(t, a, r.Ledger(1), "same session must get the same ledger")

	a.AddOrMerge(food(1, "Pizza", 270), 100)
	r.Drop(1)
	assert.Equal(t, 0, r.Ledger(1).Len(), "dropped session starts a fresh ledger")
}
