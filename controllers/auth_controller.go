package controllers

import (
	"fmt"
	"net/http"
	"strings"

	appcfg "github.com/Surya-k-bot/food-management-system/config"
	"github.com/Surya-k-bot/food-management-system/services"
	"github.com/Surya-k-bot/food-management-system/utils"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Login authenticates by username or email. An unknown email logging in as
// a student gets a freshly provisioned account; an unknown email asking for
// admin is refused outright.
func Login(cfg *appcfg.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body."})
			return
		}

		username := strings.TrimSpace(req.Username)
		email := strings.TrimSpace(req.Email)
		password := req.Password
		requestedRole := strings.ToLower(strings.TrimSpace(req.Role))

		if requestedRole != "" && requestedRole != "student" && requestedRole != "admin" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be student or admin."})
			return
		}
		if email == "" && username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required."})
			return
		}
		if password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required."})
			return
		}

		svc := services.NewAuthService(appcfg.DB)

		if email != "" {
			matched, err := svc.FindByEmail(email)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			switch {
			case matched != nil:
				username = matched.Username
			case requestedRole == "student":
				handle, err := svc.BuildUniqueUsername(email)
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
					return
				}
				user, err := svc.ProvisionStudent(handle, email, password)
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
					return
				}
				token, err := utils.GenerateJWT(cfg.JWTSecret, user.Username)
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
					return
				}
				c.JSON(http.StatusOK, gin.H{
					"username": user.Username,
					"role":     "student",
					"new_user": true,
					"token":    token,
				})
				return
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin account not found. Ask existing admin to create it."})
				return
			}
		}

		user, err := svc.Authenticate(username, password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials."})
			return
		}
		if !user.IsActive {
			c.JSON(http.StatusForbidden, gin.H{"error": "This account is inactive."})
			return
		}

		role := user.Role()
		if requestedRole != "" && role != requestedRole {
			c.JSON(http.StatusForbidden, gin.H{
				"error": fmt.Sprintf("This account is not allowed for %s login.", requestedRole),
			})
			return
		}

		token, err := utils.GenerateJWT(cfg.JWTSecret, user.Username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"username": user.Username,
			"role":     role,
			"token":    token,
		})
	}
}
