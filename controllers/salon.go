// controllers/salon.go
package controllers

import (
	"errors"
	"net/http"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateSalonInput defines the expected JSON structure for salon setup
type CreateSalonInput struct {
	Name        string `json:"name" binding:"required,min=2"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address" binding:"required"`
	City        string `json:"city" binding:"required,min=2"`
	Phone       string `json:"phone" binding:"required"`
	Email       string `json:"email"`
	ImageURL    string `json:"image_url"`
}

// UpdateSalonInput defines the expected JSON structure for updating a salon
type UpdateSalonInput struct {
	Name        *string `json:"name"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	ImageURL    *string `json:"image_url"`
	IsActive    *bool   `json:"is_active"`
}

// ListSalons returns active salons, optionally filtered by type, city or a
// name/description search term.
func ListSalons(c *gin.Context) {
	query := config.DB.Where("is_active = ?", true)

	if salonType := c.Query("type"); salonType != "" {
		query = query.Where("type = ?", salonType)
	}
	if city := c.Query("city"); city != "" {
		query = query.Where("city ILIKE ?", city)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}

	var salons []models.Salon
	if err := query.Order("rating DESC").Find(&salons).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve salons")
		return
	}

	c.JSON(http.StatusOK, salons)
}

// GetSalon returns one active salon with its active services and working hours.
func GetSalon(c *gin.Context) {
	salonUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	var salon models.Salon
	if err := config.DB.
		Preload("Services", "is_active = ?", true).
		Preload("WorkingHours", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_of_week ASC")
		}).
		Where("id = ? AND is_active = ?", salonUUID, true).
		First(&salon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, salon)
}

// CreateSalon sets up the provider's salon. One salon per provider.
func CreateSalon(c *gin.Context) {
	providerUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input CreateSalonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !models.ValidSalonType(input.Type) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown salon type")
		return
	}
	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	var existing models.Salon
	if err := config.DB.Where("provider_id = ?", providerUUID).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Provider already has a salon")
		return
	}

	salon := models.Salon{
		ProviderID:  providerUUID,
		Name:        input.Name,
		Type:        input.Type,
		Description: input.Description,
		Address:     input.Address,
		City:        input.City,
		Phone:       input.Phone,
		Email:       input.Email,
		ImageURL:    input.ImageURL,
		IsActive:    true,
	}

	if err := config.DB.Create(&salon).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create salon")
		return
	}

	c.JSON(http.StatusCreated, salon)
}

// GetMySalon returns the provider's own salon.
func GetMySalon(c *gin.Context) {
	salon, ok := currentSalon(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, salon)
}

// UpdateMySalon updates the provider's salon profile.
func UpdateMySalon(c *gin.Context) {
	salon, ok := currentSalon(c)
	if !ok {
		return
	}

	var input UpdateSalonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Name != nil {
		salon.Name = *input.Name
	}
	if input.Type != nil {
		if !models.ValidSalonType(*input.Type) {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown salon type")
			return
		}
		salon.Type = *input.Type
	}
	if input.Description != nil {
		salon.Description = *input.Description
	}
	if input.Address != nil {
		salon.Address = *input.Address
	}
	if input.City != nil {
		salon.City = *input.City
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
			return
		}
		salon.Phone = *input.Phone
	}
	if input.Email != nil {
		salon.Email = *input.Email
	}
	if input.ImageURL != nil {
		salon.ImageURL = *input.ImageURL
	}
	if input.IsActive != nil {
		salon.IsActive = *input.IsActive
	}

	if err := config.DB.Save(salon).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update salon")
		return
	}

	c.JSON(http.StatusOK, salon)
}

// currentUserID reads the authenticated user's UUID from the gin context.
// Responds with an error and returns ok=false on failure.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return uuid.Nil, false
	}
	raw, ok := userID.(string)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid token claims")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid token claims")
		return uuid.Nil, false
	}
	return id, true
}

// currentSalon loads the salon owned by the authenticated provider.
func currentSalon(c *gin.Context) (*models.Salon, bool) {
	providerUUID, ok := currentUserID(c)
	if !ok {
		return nil, false
	}

	var salon models.Salon
	if err := config.DB.Where("provider_id = ?", providerUUID).First(&salon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Salon not set up yet")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}
	return &salon, true
}
