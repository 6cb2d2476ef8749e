package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/frankiejoetabarrino/punisher/config"
	"github.com/frankiejoetabarrino/punisher/models"
	"github.com/frankiejoetabarrino/punisher/services"
	"github.com/frankiejoetabarrino/punisher/utils"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{foods: foods}
}

// GET /food/search?q=pizza
func (fc *FoodController) Search(c *gin.Context) {
	out, err := fc.foods.Search(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /food/barcode/:code
func (fc *FoodController) Barcode(c *gin.Context) {
	item, err := fc.foods.LookupBarcode(c.Param("code"))
	if err != nil {
		if errors.Is(err, services.ErrBarcodeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found via barcode. Did you scan correctly?"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// POST /food/recognize  { "image_base64": "data:…" }
func (fc *FoodController) Recognize(c *gin.Context) {
	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	out, err := fc.foods.Recognize(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /food/:id/image  { "image_base64": "data:…" }
// Uploads a catalog photo for the food item and stores its URL.
func (fc *FoodController) UploadImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	var food models.FoodItem
	if err := config.DB.First(&food, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food item not found"})
		return
	}

	url, err := utils.UploadBase64ImageToS3(req.ImageBase64, "food-images")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	food.ImageURL = url
	if err := config.DB.Save(&food).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
