package user

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/gustavods/storefront/internal/domain"
)

// setupTestDB creates an in-memory SQLite database with the User table.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestCreateAndGetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{Name: "Gustavo", Email: "gustavo@example.com", PasswordHash: "x"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected non-zero ID after Create")
	}
	if user.UpdatedAt != nil {
		t.Error("UpdatedAt must stay null until the first update")
	}

	got, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Gustavo" || got.Email != "gustavo@example.com" {
		t.Errorf("got %+v; want Name=Gustavo, Email=gustavo@example.com", got)
	}
	if got.UpdatedAt != nil {
		t.Error("UpdatedAt must round-trip as null before any update")
	}
}

func TestGetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), 999)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err.Error() != "User not found" {
		t.Errorf("message=%q; want %q", err.Error(), "User not found")
	}
}

func TestGetByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{Name: "Gustavo", Email: "gustavo@example.com", PasswordHash: "x"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByEmail(ctx, "gustavo@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("got ID=%d; want %d", got.ID, user.ID)
	}

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	if !domain.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u1 := &domain.User{Name: "Gustavo", Email: "dup@example.com", PasswordHash: "x"}
	if err := repo.Create(ctx, u1); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	u2 := &domain.User{Name: "Other", Email: "dup@example.com", PasswordHash: "x"}
	err := repo.Create(ctx, u2)
	if !domain.IsAlreadyExists(err) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestUserUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{Name: "Gustavo", Email: "gustavo@example.com", PasswordHash: "x"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	now := time.Now()
	user.Name = "Gustavo Silva"
	user.UpdatedAt = &now
	if err := repo.Update(ctx, user); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, _ := repo.GetByID(ctx, user.ID)
	if got.Name != "Gustavo Silva" {
		t.Errorf("Name=%q; want Gustavo Silva", got.Name)
	}
	if got.UpdatedAt == nil {
		t.Error("UpdatedAt must be set after update")
	}
}

func TestUserDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{Name: "Gustavo", Email: "gustavo@example.com", PasswordHash: "x"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(ctx, user.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, err := repo.GetByID(ctx, user.ID)
	if !domain.IsNotFound(err) {
		t.Errorf("expected not found after delete, got %v", err)
	}
}

func TestUserDelete_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	err := repo.Delete(context.Background(), 999)
	if !domain.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func seedUsers(t *testing.T, repo domain.UserRepository, n int) {
	t.Helper()
	ctx := context.Background()
	for i := 1; i <= n; i++ {
		u := &domain.User{
			Name:         fmt.Sprintf("User %02d", i),
			Email:        fmt.Sprintf("user%02d@example.com", i),
			PasswordHash: "x",
		}
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("seed user %d: %v", i, err)
		}
	}
}

func TestUserList_Pagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	seedUsers(t, repo, 23)

	result, err := repo.List(context.Background(), domain.PageRequest{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Meta.Total != 23 {
		t.Errorf("Total=%d; want 23", result.Meta.Total)
	}
	if len(result.Items) != 10 {
		t.Errorf("items=%d; want 10", len(result.Items))
	}
	if result.Meta.PageSize != 10 || result.Meta.Page != 2 {
		t.Errorf("meta=%+v; want page=2 pageSize=10", result.Meta)
	}
	// Page 2 with limit 10 starts at row 11.
	if result.Items[0].Name != "User 11" {
		t.Errorf("first item=%q; want User 11", result.Items[0].Name)
	}
}

func TestUserList_LastPagePartial(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	seedUsers(t, repo, 23)

	result, err := repo.List(context.Background(), domain.PageRequest{Page: 3, Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(result.Items) != 3 || result.Meta.PageSize != 3 {
		t.Errorf("items=%d pageSize=%d; want 3 and 3", len(result.Items), result.Meta.PageSize)
	}
}

func TestUserList_FilterByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	for _, u := range []*domain.User{
		{Name: "Gustavo Silva", Email: "gustavo@example.com", PasswordHash: "x"},
		{Name: "Maria Gomes", Email: "maria@example.com", PasswordHash: "x"},
		{Name: "Gustavo Pereira", Email: "gp@example.com", PasswordHash: "x"},
	} {
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	result, err := repo.List(ctx, domain.PageRequest{
		Page: 1, Limit: 20,
		Filter: map[string]string{"name": "Gustavo"},
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Meta.Total != 2 || len(result.Items) != 2 {
		t.Errorf("got total=%d items=%d; want 2 and 2", result.Meta.Total, len(result.Items))
	}
}

func TestUserList_FilterByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &domain.User{Name: "Gustavo", Email: "gustavo@example.com", PasswordHash: "x"}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("seed: %v", err)
	}

	result, err := repo.List(ctx, domain.PageRequest{
		Page: 1, Limit: 20,
		Filter: map[string]string{"email": "gustavo@example.com"},
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Meta.Total != 1 {
		t.Errorf("Total=%d; want 1", result.Meta.Total)
	}
}

func TestUserList_InvalidFilterField(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.List(context.Background(), domain.PageRequest{
		Page: 1, Limit: 20,
		Filter: map[string]string{"passwordHash": "x"},
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "Invalid filter field passwordHash" {
		t.Errorf("message=%q; want %q", err.Error(), "Invalid filter field passwordHash")
	}
}
