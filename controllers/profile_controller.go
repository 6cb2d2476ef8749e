package controllers

import (
	"net/http"

	"github.com/frankiejoetabarrino/punisher/services"

	"github.com/gin-gonic/gin"
)

// GET /profile
func GetProfile(c *gin.Context) {
	user, err := services.GetUserByID(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, services.BuildProfileView(user))
}

// PUT /profile
// Guests carry a shared throwaway profile and may not edit it.
func UpdateProfile(c *gin.Context) {
	if c.GetBool("guest") {
		c.JSON(http.StatusForbidden, gin.H{"error": "guest profile is read-only"})
		return
	}

	var input services.ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.UpdateProfile(c.GetUint("userID"), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, services.BuildProfileView(user))
}
