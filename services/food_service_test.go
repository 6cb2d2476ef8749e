package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/frankiejoetabarrino/punisher/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOFFTestService(srv *httptest.Server) *OpenFoodFactsService {
	return &OpenFoodFactsService{
		baseURL: srv.URL + "/",
		client:  &http.Client{Timeout: 2 * time.Second},
	}
}

func TestSearchIsCaseInsensitiveAndCapped(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFoodService(nil, nil)

	seedFood(t, db, "Pizza Margherita", 270)
	seedFood(t, db, "PIZZA Diavola", 310)
	seedFood(t, db, "Tiramisu", 450)

	items, err := svc.Search("pizza")
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, it := range items {
		assert.Contains(t, []string{"Pizza Margherita", "PIZZA Diavola"}, it.Name)
	}

	items, err = svc.Search("polenta")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLookupBarcodeHitsCatalogFirst(t *testing.T) {
	db := setupTestDB(t)

	var external int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&external, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	code := "8001234567890"
	item := models.FoodItem{Name: "Grissini", KcalPer100g: 420, BarcodeUPC: &code}
	require.NoError(t, db.Create(&item).Error)

	svc := NewFoodService(newOFFTestService(srv), nil)
	found, err := svc.LookupBarcode(code)
	require.NoError(t, err)
	assert.Equal(t, "Grissini", found.Name)
	assert.Zero(t, atomic.LoadInt32(&external), "a cataloged barcode must not reach the external API")
}

func TestLookupBarcodeFetchesAndCaches(t *testing.T) {
	db := setupTestDB(t)

	var external int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&external, 1)
		assert.Equal(t, "/4012345678901.json", r.URL.Path)
		fmt.Fprint(w, `{
			"status": 1,
			"product": {
				"product_name": "Cioccolato Fondente",
				"categories": "Snacks, Chocolate",
				"image_url": "https://img.example/choc.jpg",
				"nutriments": {
					"energy-kcal_100g": 546,
					"carbohydrates_100g": 46,
					"proteins_100g": "7.9",
					"fat_100g": 31,
					"sodium_100g": 0.02
				}
			}
		}`)
	}))
	defer srv.Close()

	svc := NewFoodService(newOFFTestService(srv), nil)

	found, err := svc.LookupBarcode("4012345678901")
	require.NoError(t, err)
	assert.Equal(t, "Cioccolato Fondente", found.Name)
	assert.Equal(t, "Snacks", found.Category, "only the first category segment is kept")
	assert.InDelta(t, 546, found.KcalPer100g, 1e-9)
	assert.InDelta(t, 7.9, found.ProteinsPer100g, 1e-9, "string nutriments must coerce")
	assert.InDelta(t, 20, found.SodiumMgPer100g, 1e-9, "sodium converts from g to mg")

	var cached models.FoodItem
	require.NoError(t, db.Where("barcode_upc = ?", "4012345678901").First(&cached).Error)

	// Second scan is served from the catalog.
	_, err = svc.LookupBarcode("4012345678901")
	require.NoError(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&external))
}

func TestLookupBarcodeNotFound(t *testing.T) {
	db := setupTestDB(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": 0}`)
	}))
	defer srv.Close()

	svc := NewFoodService(newOFFTestService(srv), nil)

	_, err := svc.LookupBarcode("0000000000000")
	assert.ErrorIs(t, err, ErrBarcodeNotFound)

	var count int64
	db.Model(&models.FoodItem{}).Count(&count)
	assert.Zero(t, count, "a miss must not create catalog rows")
}

func TestFetchProductKJFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"status": 1,
			"product": {
				"product_name_en": "Rice Cakes",
				"nutriments": {"energy-kj_100g": 1620}
			}
		}`)
	}))
	defer srv.Close()

	off := newOFFTestService(srv)
	item, err := off.FetchProduct("5901234123457")
	require.NoError(t, err)
	assert.Equal(t, "Rice Cakes", item.Name)
	assert.InDelta(t, 1620/4.184, item.KcalPer100g, 1e-6)
	require.NotNil(t, item.BarcodeUPC)
	assert.Equal(t, "5901234123457", *item.BarcodeUPC)
}
