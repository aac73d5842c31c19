package middlewares

import (
	"net/http"
	"strings"

	appcfg "github.com/Surya-k-bot/food-management-system/config"
	"github.com/Surya-k-bot/food-management-system/models"
	"github.com/Surya-k-bot/food-management-system/utils"

	"github.com/gin-gonic/gin"
)

const userKey = "user"

// resolveUser parses the bearer token and loads the account, caching it on
// the context so stacked middlewares don't parse twice. Returns nil for
// anonymous or invalid callers.
func resolveUser(cfg *appcfg.App, c *gin.Context) *models.User {
	if v, ok := c.Get(userKey); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}

	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil
	}
	username, err := utils.ParseJWT(cfg.JWTSecret, strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return nil
	}

	var user models.User
	if err := appcfg.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil
	}
	// A deactivated account is anonymous from here on, even with a live token.
	if !user.IsActive {
		return nil
	}
	c.Set(userKey, &user)
	return &user
}

// CurrentUser returns the authenticated account, if any middleware resolved
// one for this request.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(userKey); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}

// AuthRequired rejects anonymous callers with 401.
func AuthRequired(cfg *appcfg.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		if resolveUser(cfg, c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required."})
			return
		}
		c.Next()
	}
}

// AdminRequired rejects anyone who isn't staff or superuser with 403,
// anonymous callers included.
func AdminRequired(cfg *appcfg.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := resolveUser(cfg, c)
		if user == nil || !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required."})
			return
		}
		c.Next()
	}
}
