package controllers

import (
	"net/http"

	appcfg "github.com/Surya-k-bot/food-management-system/config"
	"github.com/Surya-k-bot/food-management-system/services"

	"github.com/gin-gonic/gin"
)

// FeedbackAnalytics returns the top-rated ranking and the rating histogram
// for the filtered, item-linked feedback set. Admin only.
func FeedbackAnalytics(cfg *appcfg.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := services.FilterParamsFromQuery(c.Request.URL.Query())

		svc := services.NewAnalyticsService(appcfg.DB)
		topRated, distribution, err := svc.FeedbackSummary(params)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"top_rated":           topRated,
			"rating_distribution": distribution,
		})
	}
}
