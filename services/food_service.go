package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/frankiejoetabarrino/punisher/config"
	"github.com/frankiejoetabarrino/punisher/models"

	"gorm.io/gorm"
)

// ErrBarcodeNotFound means neither the catalog nor Open Food Facts knows
// the code. The caller surfaces it without touching any meal state.
var ErrBarcodeNotFound = errors.New("barcode not found")

type FoodService struct {
	off *OpenFoodFactsService
	rek *RekognitionService
}

func NewFoodService(off *OpenFoodFactsService, rek *RekognitionService) *FoodService {
	return &FoodService{off: off, rek: rek}
}

// Search runs a case-insensitive name search over the catalog, capped at
// 20 candidates.
func (s *FoodService) Search(query string) ([]models.FoodItem, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"

	var items []models.FoodItem
	err := config.DB.
		Where("LOWER(name) LIKE ?", pattern).
		Order("name ASC").
		Limit(20).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("food search failed: %w", err)
	}
	return items, nil
}

// LookupBarcode resolves an exact barcode: catalog first, then Open Food
// Facts. An external hit is cached into the catalog so the next scan of
// the same code stays local.
func (s *FoodService) LookupBarcode(code string) (*models.FoodItem, error) {
	var item models.FoodItem
	err := config.DB.Where("barcode_upc = ?", code).First(&item).Error
	if err == nil {
		return &item, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("barcode lookup failed: %w", err)
	}

	fetched, err := s.off.FetchProduct(code)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return nil, ErrBarcodeNotFound
		}
		return nil, err
	}
	if err := config.DB.Create(fetched).Error; err != nil {
		return nil, fmt.Errorf("failed to cache barcode product: %w", err)
	}
	return fetched, nil
}

// Recognize turns a base64 photo into search candidates: label detection
// first, then the same catalog search a typed query would use.
func (s *FoodService) Recognize(base64Img string) ([]models.FoodItem, error) {
	if s.rek == nil {
		return nil, errors.New("photo recognition is not configured")
	}
	labels, err := s.rek.RecognizeLabels(base64Img)
	if err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, errors.New("no labels detected")
	}
	return s.Search(labels[0])
}
