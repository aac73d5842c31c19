package controllers

import (
	"fmt"
	"net/http"
	"strings"

	appcfg "github.com/Surya-k-bot/food-management-system/config"
	"github.com/Surya-k-bot/food-management-system/models"
	"github.com/Surya-k-bot/food-management-system/services"
	"github.com/Surya-k-bot/food-management-system/utils"

	"github.com/gin-gonic/gin"
)

// ListFoodItems is public: the menu is visible before logging in.
func ListFoodItems(cfg *appcfg.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := services.FilterParamsFromQuery(c.Request.URL.Query())

		var items []models.FoodItem
		err := services.ApplyFoodFilters(appcfg.DB.Model(&models.FoodItem{}), params).
			Order("created_at DESC").
			Find(&items).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		out := make([]foodItemResponse, 0, len(items))
		for i := range items {
			out = append(out, serializeFoodItem(cfg, c, &items[i]))
		}
		c.JSON(http.StatusOK, gin.H{"items": out})
	}
}

// CreateFoodItem publishes a menu entry (admin only, enforced in routing).
// Accepts multipart (with an optional image) or plain JSON. Publishing
// fires the alert channels; their failures never affect the response.
func CreateFoodItem(cfg *appcfg.App, dispatcher *services.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			source  map[string]any
			hasQty  bool
			rawQty  any
			imgPath string
		)

		if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
			source = map[string]any{
				"name":     c.PostForm("name"),
				"category": c.PostForm("category"),
			}
			if v, ok := c.GetPostForm("quantity"); ok {
				hasQty, rawQty = true, v
			}
			if fh, err := c.FormFile("image"); err == nil && fh != nil {
				path, err := utils.SaveFoodImage(cfg, fh)
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not store image."})
					return
				}
				imgPath = path
			}
		} else {
			if err := c.ShouldBindJSON(&source); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
				return
			}
			rawQty, hasQty = source["quantity"]
		}

		name := strings.TrimSpace(stringField(source, "name"))
		category := strings.ToLower(strings.TrimSpace(stringField(source, "category")))

		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required."})
			return
		}
		if !models.ValidCategory(category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category must be morning, lunch, or dinner."})
			return
		}

		quantity := 1
		if hasQty {
			n, ok := coerceInt(rawQty)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be a number."})
				return
			}
			quantity = n
		}
		if quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at least 1."})
			return
		}

		item := models.FoodItem{
			Name:      name,
			Category:  category,
			Quantity:  quantity,
			ImagePath: imgPath,
		}
		if err := appcfg.DB.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		dispatcher.Notify(fmt.Sprintf("New menu item published: %s (%s) qty=%d.", item.Name, item.Category, item.Quantity))
		dispatcher.NotifyStudentsMenuUpdate(&item)
		if item.Quantity <= cfg.LowStockThreshold {
			dispatcher.Notify(fmt.Sprintf("Low stock alert: %s has quantity %d.", item.Name, item.Quantity))
		}

		c.JSON(http.StatusCreated, serializeFoodItem(cfg, c, &item))
	}
}
