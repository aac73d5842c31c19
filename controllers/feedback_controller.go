package controllers

import (
	"errors"
	"net/http"
	"strings"

	appcfg "github.com/Surya-k-bot/food-management-system/config"
	"github.com/Surya-k-bot/food-management-system/middlewares"
	"github.com/Surya-k-bot/food-management-system/models"
	"github.com/Surya-k-bot/food-management-system/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListFeedback returns the filtered feedback history with linked item names
// denormalized. Admin only (enforced in routing).
func ListFeedback(cfg *appcfg.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := services.FilterParamsFromQuery(c.Request.URL.Query())

		var list []models.Feedback
		err := services.ApplyFeedbackFilters(appcfg.DB.Model(&models.Feedback{}), params).
			Preload("FoodItem").
			Order("feedbacks.created_at DESC").
			Find(&list).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		out := make([]feedbackResponse, 0, len(list))
		for i := range list {
			out = append(out, serializeFeedback(&list[i]))
		}
		c.JSON(http.StatusOK, gin.H{"feedbacks": out})
	}
}

// CreateFeedback records a rating from any authenticated caller. The
// student name comes from the verified identity, never the payload.
func CreateFeedback(cfg *appcfg.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middlewares.CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required."})
			return
		}

		var payload map[string]any
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body."})
			return
		}

		message := strings.TrimSpace(stringField(payload, "message"))
		if message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Feedback message is required."})
			return
		}

		rating, ok := coerceInt(payload["rating"])
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be a number from 1 to 5."})
			return
		}
		if rating < 1 || rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5."})
			return
		}

		var foodItem *models.FoodItem
		if truthy(payload["food_item_id"]) {
			id, ok := coerceInt(payload["food_item_id"])
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Selected food item is invalid."})
				return
			}
			var item models.FoodItem
			if err := appcfg.DB.First(&item, id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Selected food item is invalid."})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			foodItem = &item
		}

		fb := models.Feedback{
			StudentName: user.Username,
			Rating:      rating,
			Message:     message,
		}
		if foodItem != nil {
			fb.FoodItemID = &foodItem.ID
			fb.FoodItem = foodItem
		}
		if err := appcfg.DB.Omit("FoodItem").Create(&fb).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, serializeFeedback(&fb))
	}
}
