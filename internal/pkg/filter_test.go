package pkg

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/gustavods/storefront/internal/domain"
)

type filterRow struct {
	ID        uint `gorm:"primaryKey"`
	Name      string
	Email     string
	CreatedAt time.Time
}

func setupFilterDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&filterRow{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestBuildFilter_UnknownField(t *testing.T) {
	rules := map[string]FilterRule{"name": ContainsRule("name")}

	_, err := BuildFilter(map[string]string{"color": "red"}, rules)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "Invalid filter field color" {
		t.Errorf("message=%q; want %q", err.Error(), "Invalid filter field color")
	}
}

func TestBuildFilter_RuleError(t *testing.T) {
	rules := map[string]FilterRule{"email": EmailRule("email")}

	_, err := BuildFilter(map[string]string{"email": "not-an-email"}, rules)
	if err == nil || err.Error() != "Invalid email" {
		t.Errorf("got %v; want %q", err, "Invalid email")
	}
}

func TestBuildFilter_AppliesScopes(t *testing.T) {
	db := setupFilterDB(t)
	rows := []filterRow{
		{Name: "Downtown Deli", Email: "deli@example.com"},
		{Name: "Uptown Bakery", Email: "bakery@example.com"},
		{Name: "Downtown Books", Email: "books@example.com"},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	rules := map[string]FilterRule{
		"name":  ContainsRule("name"),
		"email": EmailRule("email"),
	}

	scope, err := BuildFilter(map[string]string{"name": "Downtown"}, rules)
	if err != nil {
		t.Fatalf("BuildFilter: %v", err)
	}

	var got []filterRow
	if err := db.Scopes(scope).Find(&got).Error; err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d rows; want 2", len(got))
	}
}

func TestEmailRule_ExactMatch(t *testing.T) {
	db := setupFilterDB(t)
	rows := []filterRow{
		{Name: "A", Email: "a@example.com"},
		{Name: "B", Email: "ab@example.com"},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	scope, err := EmailRule("email")("a@example.com")
	if err != nil {
		t.Fatalf("rule: %v", err)
	}

	var got []filterRow
	if err := db.Scopes(scope).Find(&got).Error; err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 1 || got[0].Email != "a@example.com" {
		t.Errorf("got %+v; want the exact match only", got)
	}
}

func TestNumberRule_Invalid(t *testing.T) {
	_, err := NumberRule("Owner", "owner_id")("abc")
	if err == nil || err.Error() != "Invalid Owner type, it must be a number" {
		t.Errorf("got %v; want %q", err, "Invalid Owner type, it must be a number")
	}
}

func TestDateRule_MatchesCalendarDay(t *testing.T) {
	db := setupFilterDB(t)
	day := time.Date(2021, 4, 9, 15, 30, 0, 0, time.UTC)
	rows := []filterRow{
		{Name: "on the day", CreatedAt: day},
		{Name: "day before", CreatedAt: day.Add(-24 * time.Hour)},
		{Name: "day after", CreatedAt: day.Add(24 * time.Hour)},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	scope, err := DateRule("CreatedAt", "created_at")("2021-04-09")
	if err != nil {
		t.Fatalf("rule: %v", err)
	}

	var got []filterRow
	if err := db.Scopes(scope).Find(&got).Error; err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 1 || got[0].Name != "on the day" {
		t.Errorf("got %+v; want only the row on 2021-04-09", got)
	}
}

func TestDateRule_Invalid(t *testing.T) {
	_, err := DateRule("UpdatedAt", "updated_at")("not-a-date")
	if err == nil || err.Error() != "Invalid UpdatedAt type, it must be a timestamp" {
		t.Errorf("got %v; want %q", err, "Invalid UpdatedAt type, it must be a timestamp")
	}
}
