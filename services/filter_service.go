package services

import (
	"net/url"
	"strings"
	"time"

	"gorm.io/gorm"
)

// FilterParams are the raw listing filters shared by the JSON listings, the
// analytics endpoint, and the report exports. All fields are optional and
// combined with AND.
type FilterParams struct {
	Search   string
	Category string
	DateFrom string
	DateTo   string
}

func FilterParamsFromQuery(q url.Values) FilterParams {
	return FilterParams{
		Search:   strings.TrimSpace(q.Get("search")),
		Category: strings.ToLower(strings.TrimSpace(q.Get("category"))),
		DateFrom: strings.TrimSpace(q.Get("date_from")),
		DateTo:   strings.TrimSpace(q.Get("date_to")),
	}
}

// parseDate accepts YYYY-MM-DD. Anything else reports false and the caller
// skips the bound entirely; a bad date must never shrink the result set.
func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ApplyFoodFilters narrows a food-item query. Matching is case-insensitive
// so behavior stays identical on postgres and sqlite.
func ApplyFoodFilters(tx *gorm.DB, p FilterParams) *gorm.DB {
	if p.Search != "" {
		pattern := "%" + strings.ToLower(p.Search) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(category) LIKE ?", pattern, pattern)
	}
	if p.Category != "" {
		tx = tx.Where("LOWER(category) = ?", p.Category)
	}
	if from, ok := parseDate(p.DateFrom); ok {
		tx = tx.Where("created_at >= ?", from)
	}
	if to, ok := parseDate(p.DateTo); ok {
		tx = tx.Where("created_at < ?", to.AddDate(0, 0, 1))
	}
	return tx
}

// ApplyFeedbackFilters narrows a feedback query. The linked food item is
// always LEFT JOINed so search and category can reach it; callers that
// aggregate over food_items columns rely on that join being present.
func ApplyFeedbackFilters(tx *gorm.DB, p FilterParams) *gorm.DB {
	tx = tx.
		Joins("LEFT JOIN food_items ON food_items.id = feedbacks.food_item_id").
		Select("feedbacks.*")

	if p.Search != "" {
		pattern := "%" + strings.ToLower(p.Search) + "%"
		tx = tx.Where(
			"LOWER(feedbacks.student_name) LIKE ? OR LOWER(feedbacks.message) LIKE ? OR LOWER(food_items.name) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if p.Category != "" {
		tx = tx.Where("LOWER(food_items.category) = ?", p.Category)
	}
	if from, ok := parseDate(p.DateFrom); ok {
		tx = tx.Where("feedbacks.created_at >= ?", from)
	}
	if to, ok := parseDate(p.DateTo); ok {
		tx = tx.Where("feedbacks.created_at < ?", to.AddDate(0, 0, 1))
	}
	return tx
}
