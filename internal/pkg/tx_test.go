package pkg

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type txRow struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func setupTxDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&txRow{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func countRows(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&txRow{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestWithTx_Commit(t *testing.T) {
	db := setupTxDB(t)

	err := WithTx(context.Background(), db, func(tx *gorm.DB) error {
		return tx.Create(&txRow{Name: "a"}).Error
	})
	if err != nil {
		t.Fatalf("WithTx: %v", err)
	}
	if n := countRows(t, db); n != 1 {
		t.Errorf("rows=%d; want 1", n)
	}
}

func TestWithTx_RollbackOnError(t *testing.T) {
	db := setupTxDB(t)
	boom := errors.New("boom")

	err := WithTx(context.Background(), db, func(tx *gorm.DB) error {
		if err := tx.Create(&txRow{Name: "a"}).Error; err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if n := countRows(t, db); n != 0 {
		t.Errorf("rows=%d; want 0 after rollback", n)
	}
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	db := setupTxDB(t)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic to propagate")
			}
		}()
		_ = WithTx(context.Background(), db, func(tx *gorm.DB) error {
			if err := tx.Create(&txRow{Name: "a"}).Error; err != nil {
				return err
			}
			panic("boom")
		})
	}()

	if n := countRows(t, db); n != 0 {
		t.Errorf("rows=%d; want 0 after panic rollback", n)
	}
}
