package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	appcfg "github.com/Surya-k-bot/food-management-system/config"
	"github.com/Surya-k-bot/food-management-system/models"
	"github.com/Surya-k-bot/food-management-system/services"

	"github.com/gin-gonic/gin"
)

// Report exports run the same filter engine as the listing endpoints, so a
// download always matches what the admin sees on screen.

const reportTimeLayout = "2006-01-02 15:04"

func filteredFoodItems(c *gin.Context) ([]models.FoodItem, error) {
	params := services.FilterParamsFromQuery(c.Request.URL.Query())
	var items []models.FoodItem
	err := services.ApplyFoodFilters(appcfg.DB.Model(&models.FoodItem{}), params).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func filteredFeedback(c *gin.Context) ([]models.Feedback, error) {
	params := services.FilterParamsFromQuery(c.Request.URL.Query())
	var list []models.Feedback
	err := services.ApplyFeedbackFilters(appcfg.DB.Model(&models.Feedback{}), params).
		Preload("FoodItem").
		Order("feedbacks.created_at DESC").
		Find(&list).Error
	return list, err
}

func ExportFoodCSV(cfg *appcfg.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := filteredFoodItems(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		rows := make([][]string, 0, len(items))
		for _, item := range items {
			rows = append(rows, []string{
				item.Name,
				item.Category,
				strconv.Itoa(item.Quantity),
				item.CreatedAt.Local().Format(reportTimeLayout),
			})
		}
		data, err := services.RenderCSV([]string{"Food Name", "Session", "Quantity", "Created At"}, rows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Header("Content-Disposition", `attachment; filename="food_history.csv"`)
		c.Data(http.StatusOK, "text/csv", data)
	}
}

func ExportFeedbackCSV(cfg *appcfg.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := filteredFeedback(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		rows := make([][]string, 0, len(list))
		for _, fb := range list {
			itemName := ""
			if fb.FoodItem != nil {
				itemName = fb.FoodItem.Name
			}
			rows = append(rows, []string{
				fb.StudentName,
				itemName,
				strconv.Itoa(fb.Rating),
				fb.Message,
				fb.CreatedAt.Local().Format(reportTimeLayout),
			})
		}
		data, err := services.RenderCSV([]string{"Student", "Food Item", "Rating", "Feedback", "Submitted At"}, rows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Header("Content-Disposition", `attachment; filename="feedback_history.csv"`)
		c.Data(http.StatusOK, "text/csv", data)
	}
}

func ExportFoodPDF(cfg *appcfg.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := filteredFoodItems(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		lines := make([]string, 0, len(items))
		for _, item := range items {
			lines = append(lines, fmt.Sprintf("%s | %s | qty=%d | %s",
				item.Name, item.Category, item.Quantity,
				item.CreatedAt.Local().Format(reportTimeLayout)))
		}
		if len(lines) == 0 {
			lines = []string{"No food history found."}
		}

		data, err := services.RenderPDF("Food History Report", lines)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Header("Content-Disposition", `attachment; filename="food_history.pdf"`)
		c.Data(http.StatusOK, "application/pdf", data)
	}
}

func ExportFeedbackPDF(cfg *appcfg.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := filteredFeedback(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		lines := make([]string, 0, len(list))
		for _, fb := range list {
			itemName := "N/A"
			if fb.FoodItem != nil {
				itemName = fb.FoodItem.Name
			}
			lines = append(lines, fmt.Sprintf("%s | %s | rating=%d | %s | %s",
				fb.StudentName, itemName, fb.Rating, fb.Message,
				fb.CreatedAt.Local().Format(reportTimeLayout)))
		}
		if len(lines) == 0 {
			lines = []string{"No feedback history found."}
		}

		data, err := services.RenderPDF("Feedback Report", lines)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Header("Content-Disposition", `attachment; filename="feedback_history.pdf"`)
		c.Data(http.StatusOK, "application/pdf", data)
	}
}
