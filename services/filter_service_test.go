package services

import (
	"net/url"
	"testing"
	"time"

	"github.com/Surya-k-bot/food-management-system/models"

	"gorm.io/gorm"
)

func seedFoodItems(t *testing.T, db *gorm.DB) {
	t.Helper()
	items := []models.FoodItem{
		{Name: "Masala Dosa", Category: "morning", Quantity: 10,
			CreatedAt: time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local)},
		{Name: "Veg Thali", Category: "lunch", Quantity: 25,
			CreatedAt: time.Date(2024, 3, 2, 12, 0, 0, 0, time.Local)},
		{Name: "Paneer Curry", Category: "dinner", Quantity: 5,
			CreatedAt: time.Date(2024, 3, 3, 19, 0, 0, 0, time.Local)},
	}
	for i := range items {
		mustCreate(t, db, &items[i])
	}
}

func foodNames(t *testing.T, db *gorm.DB, p FilterParams) []string {
	t.Helper()
	var items []models.FoodItem
	if err := ApplyFoodFilters(db.Model(&models.FoodItem{}), p).Order("created_at").Find(&items).Error; err != nil {
		t.Fatalf("filtered query: %v", err)
	}
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}

func TestFilterParamsFromQuery(t *testing.T) {
	q := url.Values{}
	q.Set("search", "  dosa ")
	q.Set("category", " Lunch ")
	q.Set("date_from", "2024-03-01")

	p := FilterParamsFromQuery(q)
	if p.Search != "dosa" {
		t.Errorf("Search = %q, want %q", p.Search, "dosa")
	}
	if p.Category != "lunch" {
		t.Errorf("Category = %q, want %q", p.Category, "lunch")
	}
	if p.DateFrom != "2024-03-01" || p.DateTo != "" {
		t.Errorf("dates = %q/%q", p.DateFrom, p.DateTo)
	}
}

func TestApplyFoodFiltersSearch(t *testing.T) {
	db := newTestDB(t)
	seedFoodItems(t, db)

	got := foodNames(t, db, FilterParams{Search: "DOSA"})
	if len(got) != 1 || got[0] != "Masala Dosa" {
		t.Errorf("search=DOSA returned %v", got)
	}

	// search also matches the category column
	got = foodNames(t, db, FilterParams{Search: "lun"})
	if len(got) != 1 || got[0] != "Veg Thali" {
		t.Errorf("search=lun returned %v", got)
	}
}

func TestApplyFoodFiltersComposition(t *testing.T) {
	db := newTestDB(t)
	seedFoodItems(t, db)

	p := FilterParams{
		Search:   "a",
		Category: "dinner",
		DateFrom: "2024-03-02",
		DateTo:   "2024-03-03",
	}
	got := foodNames(t, db, p)
	if len(got) != 1 || got[0] != "Paneer Curry" {
		t.Errorf("composed filters returned %v", got)
	}
}

func TestApplyFoodFiltersDateBoundsInclusive(t *testing.T) {
	db := newTestDB(t)
	seedFoodItems(t, db)

	got := foodNames(t, db, FilterParams{DateFrom: "2024-03-02", DateTo: "2024-03-02"})
	if len(got) != 1 || got[0] != "Veg Thali" {
		t.Errorf("single-day bound returned %v", got)
	}
}

func TestApplyFoodFiltersBadDateIgnored(t *testing.T) {
	db := newTestDB(t)
	seedFoodItems(t, db)

	got := foodNames(t, db, FilterParams{DateFrom: "not-a-date", DateTo: "03/02/2024"})
	if len(got) != 3 {
		t.Errorf("unparsable dates must not filter, got %v", got)
	}
}

func TestApplyFeedbackFilters(t *testing.T) {
	db := newTestDB(t)

	dosa := models.FoodItem{Name: "Masala Dosa", Category: "morning", Quantity: 10,
		CreatedAt: time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local)}
	thali := models.FoodItem{Name: "Veg Thali", Category: "lunch", Quantity: 25,
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local)}
	mustCreate(t, db, &dosa)
	mustCreate(t, db, &thali)

	entries := []models.Feedback{
		{FoodItemID: &dosa.ID, StudentName: "asha", Rating: 5, Message: "crispy and fresh",
			CreatedAt: time.Date(2024, 3, 2, 9, 0, 0, 0, time.Local)},
		{FoodItemID: &thali.ID, StudentName: "ravi", Rating: 3, Message: "too salty",
			CreatedAt: time.Date(2024, 3, 3, 13, 0, 0, 0, time.Local)},
		{StudentName: "meena", Rating: 4, Message: "canteen is clean",
			CreatedAt: time.Date(2024, 3, 4, 10, 0, 0, 0, time.Local)},
	}
	for i := range entries {
		mustCreate(t, db, &entries[i])
	}

	names := func(p FilterParams) []string {
		var list []models.Feedback
		if err := ApplyFeedbackFilters(db.Model(&models.Feedback{}), p).
			Order("feedbacks.created_at").Find(&list).Error; err != nil {
			t.Fatalf("filtered feedback query: %v", err)
		}
		out := make([]string, 0, len(list))
		for _, fb := range list {
			out = append(out, fb.StudentName)
		}
		return out
	}

	// search matches student name, message, and the linked item's name
	if got := names(FilterParams{Search: "ravi"}); len(got) != 1 || got[0] != "ravi" {
		t.Errorf("search by student returned %v", got)
	}
	if got := names(FilterParams{Search: "clean"}); len(got) != 1 || got[0] != "meena" {
		t.Errorf("search by message returned %v", got)
	}
	if got := names(FilterParams{Search: "dosa"}); len(got) != 1 || got[0] != "asha" {
		t.Errorf("search by item name returned %v", got)
	}

	// category goes through the linked item
	if got := names(FilterParams{Category: "lunch"}); len(got) != 1 || got[0] != "ravi" {
		t.Errorf("category filter returned %v", got)
	}

	// date bounds are inclusive by day; a bad date is ignored
	if got := names(FilterParams{DateFrom: "2024-03-03", DateTo: "2024-03-04"}); len(got) != 2 {
		t.Errorf("date bounds returned %v", got)
	}
	if got := names(FilterParams{DateFrom: "soon"}); len(got) != 3 {
		t.Errorf("bad date must not filter, got %v", got)
	}
}
