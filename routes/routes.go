package routes

import (
	"net/http"

	appcfg "github.com/Surya-k-bot/food-management-system/config"
	"github.com/Surya-k-bot/food-management-system/controllers"
	"github.com/Surya-k-bot/food-management-system/middlewares"
	"github.com/Surya-k-bot/food-management-system/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *appcfg.App, dispatcher *services.Dispatcher, hub *services.RealtimeHub) *gin.Engine {
	r := gin.Default()
	r.HandleMethodNotAllowed = true

	r.Use(middlewares.CORS())

	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed."})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found."})
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.Static("/media", cfg.MediaRoot)

	r.POST("/auth/login/", controllers.Login(cfg))

	r.GET("/food-items/", controllers.ListFoodItems(cfg))
	r.POST("/food-items/", middlewares.AdminRequired(cfg), controllers.CreateFoodItem(cfg, dispatcher))

	r.GET("/feedback/", middlewares.AuthRequired(cfg), middlewares.AdminRequired(cfg), controllers.ListFeedback(cfg))
	r.POST("/feedback/", middlewares.AuthRequired(cfg), controllers.CreateFeedback(cfg))

	r.GET("/analytics/feedback/", middlewares.AdminRequired(cfg), controllers.FeedbackAnalytics(cfg))

	reports := r.Group("/reports", middlewares.AdminRequired(cfg))
	{
		reports.GET("/food-items.csv", controllers.ExportFoodCSV(cfg))
		reports.GET("/food-items.pdf", controllers.ExportFoodPDF(cfg))
		reports.GET("/feedback.csv", controllers.ExportFeedbackCSV(cfg))
		reports.GET("/feedback.pdf", controllers.ExportFeedbackPDF(cfg))
	}

	if hub != nil {
		r.GET("/ws/alerts", middlewares.AdminRequired(cfg), controllers.AlertsWS(hub))
	}

	return r
}
