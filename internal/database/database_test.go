package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/vistaarbengaluru/vistaar/internal/models"
)

// These tests need a disposable Postgres database.
func testDatabase(t *testing.T) Database {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := NewDatabase(ctx, url)
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}
	d := db.(*database)
	if _, err := d.db.Exec(ctx, `TRUNCATE inquiries; DELETE FROM settings WHERE key = 'admin_password'`); err != nil {
		t.Fatalf("reset tables: %v", err)
	}
	t.Cleanup(db.Close)
	return db
}

func TestInquiries(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	inquiries := []models.Inquiry{
		{ID: "a", Name: "Asha", Email: "asha@example.com", Message: "hi", Delivered: true, CreatedAt: now.Add(-time.Minute)},
		{ID: "b", Name: "Ravi", Email: "ravi@example.com", Message: "hello", Error: "relay down", CreatedAt: now},
	}

	// Prime the cache so the writes below must invalidate it.
	if _, err := db.ListInquiries(ctx); err != nil {
		t.Fatalf("ListInquiries: %v", err)
	}

	for _, inq := range inquiries {
		if err := db.SaveInquiry(ctx, inq); err != nil {
			t.Fatalf("SaveInquiry: %v", err)
		}
	}

	got, err := db.ListInquiries(ctx)
	if err != nil {
		t.Fatalf("ListInquiries: %v", err)
	}
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Errorf("expected newest first, got %+v", got)
	}

	stats, err := db.InboxStats(ctx)
	if err != nil {
		t.Fatalf("InboxStats: %v", err)
	}
	if stats != (models.InboxStats{Total: 2, Failed: 1}) {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestPassword(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()

	ok, err := db.VerifyPassword(ctx, "anything")
	if err != nil || ok {
		t.Fatalf("expected no password to verify, got %v, %v", ok, err)
	}

	if err := db.EnsurePassword(ctx, "first-password"); err != nil {
		t.Fatalf("EnsurePassword: %v", err)
	}
	if err := db.EnsurePassword(ctx, "second-password"); err != nil {
		t.Fatalf("EnsurePassword: %v", err)
	}

	if ok, _ := db.VerifyPassword(ctx, "first-password"); !ok {
		t.Error("expected seeded password to verify")
	}
	if ok, _ := db.VerifyPassword(ctx, "second-password"); ok {
		t.Error("EnsurePassword must not overwrite an existing password")
	}

	if err := db.SetPassword(ctx, "third-password"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if ok, _ := db.VerifyPassword(ctx, "third-password"); !ok {
		t.Error("expected updated password to verify")
	}
}
