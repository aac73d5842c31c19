package controllers

import (
	"strconv"
	"strings"
	"time"

	appcfg "github.com/Surya-k-bot/food-management-system/config"
	"github.com/Surya-k-bot/food-management-system/models"

	"github.com/gin-gonic/gin"
)

type foodItemResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Quantity  int    `json:"quantity"`
	ImageURL  string `json:"image_url"`
	CreatedAt string `json:"created_at"`
}

func serializeFoodItem(cfg *appcfg.App, c *gin.Context, item *models.FoodItem) foodItemResponse {
	return foodItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Category:  item.Category,
		Quantity:  item.Quantity,
		ImageURL:  imageURL(cfg, c, item.ImagePath),
		CreatedAt: item.CreatedAt.Format(time.RFC3339),
	}
}

type feedbackResponse struct {
	ID           uint   `json:"id"`
	StudentName  string `json:"student_name"`
	FoodItemID   *uint  `json:"food_item_id"`
	FoodItemName string `json:"food_item_name"`
	Rating       int    `json:"rating"`
	Message      string `json:"message"`
	CreatedAt    string `json:"created_at"`
}

func serializeFeedback(fb *models.Feedback) feedbackResponse {
	name := ""
	if fb.FoodItem != nil {
		name = fb.FoodItem.Name
	}
	return feedbackResponse{
		ID:           fb.ID,
		StudentName:  fb.StudentName,
		FoodItemID:   fb.FoodItemID,
		FoodItemName: name,
		Rating:       fb.Rating,
		Message:      fb.Message,
		CreatedAt:    fb.CreatedAt.Format(time.RFC3339),
	}
}

// imageURL turns a stored image path into an absolute URL. S3 paths are
// already absolute; disk paths get the public base (or the request host)
// plus the /media mount.
func imageURL(cfg *appcfg.App, c *gin.Context, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	base := cfg.PublicBaseURL
	if base == "" {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + c.Request.Host
	}
	return base + "/media/" + path
}

// stringField reads a field from a decoded JSON object or form source,
// tolerating numeric values the way the frontend sometimes sends them.
func stringField(source map[string]any, key string) string {
	v, ok := source[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

// coerceInt accepts JSON numbers and numeric strings. Fractional numbers
// truncate toward zero, non-numeric strings fail.
func coerceInt(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case int:
		return t, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// truthy mirrors the submission rules for optional fields: absent, null,
// zero, and empty string all mean "not supplied".
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case float64:
		return t != 0
	case bool:
		return t
	default:
		return true
	}
}
