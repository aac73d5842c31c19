package services

import (
	"math"
	"strconv"

	"github.com/Surya-k-bot/food-management-system/models"

	"gorm.io/gorm"
)

type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

type TopRatedItem struct {
	FoodName  string  `gorm:"column:food_name" json:"food_name"`
	AvgRating float64 `gorm:"column:avg_rating" json:"avg_rating"`
	Count     int64   `gorm:"column:cnt" json:"count"`
}

// FeedbackSummary aggregates the filtered, item-linked feedback set into the
// top-rated ranking (max 8, average desc then count desc, averages rounded
// to two decimals) and a zero-filled 1..5 rating histogram.
func (s *AnalyticsService) FeedbackSummary(p FilterParams) ([]TopRatedItem, map[string]int64, error) {
	filtered := func() *gorm.DB {
		return ApplyFeedbackFilters(
			s.db.Model(&models.Feedback{}).Where("feedbacks.food_item_id IS NOT NULL"), p)
	}

	topRated := []TopRatedItem{}
	err := filtered().
		Select("food_items.name AS food_name, AVG(feedbacks.rating) AS avg_rating, COUNT(feedbacks.id) AS cnt").
		Group("food_items.name").
		Order("avg_rating DESC, cnt DESC").
		Limit(8).
		Scan(&topRated).Error
	if err != nil {
		return nil, nil, err
	}
	for i := range topRated {
		// Half-to-even: a midpoint average like 4.625 renders as 4.62.
		topRated[i].AvgRating = math.RoundToEven(topRated[i].AvgRating*100) / 100
	}

	var buckets []struct {
		Rating int   `gorm:"column:rating"`
		Cnt    int64 `gorm:"column:cnt"`
	}
	err = filtered().
		Select("feedbacks.rating AS rating, COUNT(feedbacks.id) AS cnt").
		Group("feedbacks.rating").
		Scan(&buckets).Error
	if err != nil {
		return nil, nil, err
	}

	distribution := map[string]int64{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}
	for _, b := range buckets {
		if b.Rating >= 1 && b.Rating <= 5 {
			distribution[strconv.Itoa(b.Rating)] = b.Cnt
		}
	}

	return topRated, distribution, nil
}
