package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/frankiejoetabarrino/punisher/config"
	"github.com/frankiejoetabarrino/punisher/models"
)

// ErrProductNotFound means the barcode is unknown to Open Food Facts.
var ErrProductNotFound = errors.New("product not found for barcode")

type OpenFoodFactsService struct {
	baseURL string
	client  *http.Client
}

// NewOpenFoodFactsService initializes the client against the configured
// product endpoint.
func NewOpenFoodFactsService() *OpenFoodFactsService {
	return &OpenFoodFactsService{
		baseURL: config.OpenFoodFactsBaseURL(),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type offProductResponse struct {
	Status  int `json:"status"`
	Product struct {
		ProductName   string         `json:"product_name"`
		ProductNameEn string         `json:"product_name_en"`
		GenericName   string         `json:"generic_name"`
		Categories    string         `json:"categories"`
		ImageURL      string         `json:"image_url"`
		ImageFrontURL string         `json:"image_front_url"`
		Nutriments    map[string]any `json:"nutriments"`
	} `json:"product"`
}

// FetchProduct resolves a barcode against Open Food Facts and maps the
// record onto a catalog FoodItem. The caller persists it.
func (s *OpenFoodFactsService) FetchProduct(barcode string) (*models.FoodItem, error) {
	u := s.baseURL + barcode + ".json"

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call Open Food Facts: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Open Food Facts response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrProductNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open Food Facts API error %d: %s", resp.StatusCode, string(body))
	}

	var pr offProductResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse Open Food Facts JSON: %w", err)
	}
	if pr.Status != 1 {
		return nil, ErrProductNotFound
	}

	p := pr.Product

	name := p.ProductName
	if name == "" {
		name = p.ProductNameEn
	}
	if name == "" {
		name = p.GenericName
	}
	if name == "" {
		name = "Nome Sconosciuto"
	}

	category := "Non Specificato"
	if p.Categories != "" {
		category = strings.TrimSpace(strings.SplitN(p.Categories, ",", 2)[0])
	}

	image := p.ImageURL
	if image == "" {
		image = p.ImageFrontURL
	}

	kcal, ok := nutriment(p.Nutriments, "energy-kcal_100g")
	if !ok {
		// Some records only carry kJ.
		if kj, kok := nutriment(p.Nutriments, "energy-kj_100g"); kok {
			kcal = kj / 4.184
		}
	}

	carbs, _ := nutriment(p.Nutriments, "carbohydrates_100g")
	proteins, _ := nutriment(p.Nutriments, "proteins_100g")
	fats, _ := nutriment(p.Nutriments, "fat_100g")
	sugars, _ := nutriment(p.Nutriments, "sugars_100g")
	fiber, _ := nutriment(p.Nutriments, "fiber_100g")
	sodium, _ := nutriment(p.Nutriments, "sodium_100g")
	if sodium > 0 {
		sodium *= 1000 // grams to milligrams
	}

	code := barcode
	return &models.FoodItem{
		Name:            name,
		Category:        category,
		KcalPer100g:     kcal,
		CarbsPer100g:    carbs,
		ProteinsPer100g: proteins,
		FatsPer100g:     fats,
		SugarsPer100g:   sugars,
		FiberPer100g:    fiber,
		SodiumMgPer100g: sodium,
		ImageURL:        image,
		BarcodeUPC:      &code,
	}, nil
}

// nutriment coerces an Open Food Facts nutriments value to float64;
// records mix numbers and numeric strings.
func nutriment(m map[string]any, key string) (float64, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
