package store

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"
)

// testDB creates a temporary test database.
func testDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "tumed-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	f.Close()

	db, err := NewDB(dbPath)
	if err != nil {
		os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	return db, func() {
		db.Close()
		os.Remove(dbPath)
	}
}

func TestCreateUser(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	now := time.Now()
	user, err := q.CreateUser(ctx, CreateUserParams{
		Email:        "test@tumed.org",
		PasswordHash: "hashed-password",
		Name:         "Test User",
		Role:         "admin",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if user.ID == 0 {
		t.Error("user.ID should not be 0")
	}
	if user.Email != "test@tumed.org" {
		t.Errorf("Email = %q, want %q", user.Email, "test@tumed.org")
	}
	if user.Role != "admin" {
		t.Errorf("Role = %q, want %q", user.Role, "admin")
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	now := time.Now()
	params := CreateUserParams{
		Email:        "dup@tumed.org",
		PasswordHash: "hash",
		Name:         "First",
		Role:         "admin",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := q.CreateUser(ctx, params); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if _, err := q.CreateUser(ctx, params); err == nil {
		t.Error("expected unique constraint error for duplicate email")
	}
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	q := New(db)
	_, err := q.GetUserByEmail(context.Background(), "missing@tumed.org")
	if err != sql.ErrNoRows {
		t.Errorf("GetUserByEmail: err = %v, want sql.ErrNoRows", err)
	}
}

func TestFaaliyetCRUD(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	now := time.Now().UTC().Truncate(time.Second)
	created, err := q.CreateFaaliyet(ctx, CreateFaaliyetParams{
		Title:       "Mezunlar Buluşması",
		Description: "Yıllık mezunlar buluşması etkinliği.",
		ImageURL:    sql.NullString{String: "/uploads/bulusma.jpg", Valid: true},
		Category:    "etkinlik",
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		t.Fatalf("CreateFaaliyet: %v", err)
	}
	if created.ID == 0 {
		t.Error("created.ID should not be 0")
	}

	got, err := q.GetFaaliyet(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetFaaliyet: %v", err)
	}
	if got.Title != "Mezunlar Buluşması" {
		t.Errorf("Title = %q", got.Title)
	}
	if !got.ImageURL.Valid || got.ImageURL.String != "/uploads/bulusma.jpg" {
		t.Errorf("ImageURL = %+v", got.ImageURL)
	}

	updated, err := q.UpdateFaaliyet(ctx, UpdateFaaliyetParams{
		Title:       "Mezunlar Buluşması 2026",
		Description: got.Description,
		ImageURL:    sql.NullString{},
		Category:    got.Category,
		UpdatedAt:   now.Add(time.Minute),
		ID:          created.ID,
	})
	if err != nil {
		t.Fatalf("UpdateFaaliyet: %v", err)
	}
	if updated.Title != "Mezunlar Buluşması 2026" {
		t.Errorf("updated Title = %q", updated.Title)
	}
	if updated.ImageURL.Valid {
		t.Error("ImageURL should be cleared")
	}

	if err := q.DeleteFaaliyet(ctx, created.ID); err != nil {
		t.Fatalf("DeleteFaaliyet: %v", err)
	}
	if _, err := q.GetFaaliyet(ctx, created.ID); err != sql.ErrNoRows {
		t.Errorf("GetFaaliyet after delete: err = %v, want sql.ErrNoRows", err)
	}
}

func TestListFaaliyetler_Ordering(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		ts := base.Add(time.Duration(i) * time.Hour)
		_, err := q.CreateFaaliyet(ctx, CreateFaaliyetParams{
			Title:       "Etkinlik",
			Description: "Açıklama",
			Category:    "genel",
			CreatedAt:   ts,
			UpdatedAt:   ts,
		})
		if err != nil {
			t.Fatalf("CreateFaaliyet: %v", err)
		}
	}

	items, err := q.ListFaaliyetler(ctx, ListFaaliyetlerParams{Limit: 10, Offset: 0})
	if err != nil {
		t.Fatalf("ListFaaliyetler: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].CreatedAt.After(items[i-1].CreatedAt) {
			t.Errorf("items not ordered by created_at desc at index %d", i)
		}
	}

	count, err := q.CountFaaliyetler(ctx)
	if err != nil {
		t.Fatalf("CountFaaliyetler: %v", err)
	}
	if count != 3 {
		t.Errorf("CountFaaliyetler = %d, want 3", count)
	}
}

func TestListHaberler_PublishDateOrdering(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	now := time.Now().UTC().Truncate(time.Second)
	dates := []time.Time{
		now.AddDate(0, 0, -2),
		now,
		now.AddDate(0, 0, -1),
	}
	for _, d := range dates {
		_, err := q.CreateHaber(ctx, CreateHaberParams{
			Title:       "Haber",
			Content:     "İçerik",
			Category:    "duyuru",
			PublishDate: d,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			t.Fatalf("CreateHaber: %v", err)
		}
	}

	items, err := q.ListHaberler(ctx, ListHaberlerParams{Limit: 10, Offset: 0})
	if err != nil {
		t.Fatalf("ListHaberler: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].PublishDate.After(items[i-1].PublishDate) {
			t.Errorf("items not ordered by publish_date desc at index %d", i)
		}
	}
}

func TestListFaaliyetler_Pagination(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	now := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		ts := now.Add(time.Duration(i) * time.Minute)
		if _, err := q.CreateFaaliyet(ctx, CreateFaaliyetParams{
			Title:       "Etkinlik",
			Description: "Açıklama",
			Category:    "genel",
			CreatedAt:   ts,
			UpdatedAt:   ts,
		}); err != nil {
			t.Fatalf("CreateFaaliyet: %v", err)
		}
	}

	page1, err := q.ListFaaliyetler(ctx, ListFaaliyetlerParams{Limit: 2, Offset: 0})
	if err != nil {
		t.Fatalf("ListFaaliyetler: %v", err)
	}
	page3, err := q.ListFaaliyetler(ctx, ListFaaliyetlerParams{Limit: 2, Offset: 4})
	if err != nil {
		t.Fatalf("ListFaaliyetler: %v", err)
	}
	if len(page1) != 2 {
		t.Errorf("len(page1) = %d, want 2", len(page1))
	}
	if len(page3) != 1 {
		t.Errorf("len(page3) = %d, want 1", len(page3))
	}

	empty, err := q.ListFaaliyetler(ctx, ListFaaliyetlerParams{Limit: 2, Offset: 100})
	if err != nil {
		t.Fatalf("ListFaaliyetler: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("len(empty) = %d, want 0", len(empty))
	}
}

func TestEvents(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	now := time.Now().UTC().Truncate(time.Second)
	_, err := q.CreateEvent(ctx, CreateEventParams{
		Level:     "warning",
		Category:  "auth",
		Message:   "failed login attempt",
		IPAddress: sql.NullString{String: "203.0.113.7", Valid: true},
		CreatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	events, err := q.ListEvents(ctx, ListEventsParams{Limit: 10, Offset: 0})
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if events[0].Message != "failed login attempt" {
		t.Errorf("Message = %q", events[0].Message)
	}

	deleted, err := q.DeleteEventsBefore(ctx, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("DeleteEventsBefore: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}
}

func TestSeed_Idempotent(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	if err := Seed(ctx, db); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if err := Seed(ctx, db); err != nil {
		t.Fatalf("Seed (second run): %v", err)
	}

	count, err := New(db).CountUsers(ctx)
	if err != nil {
		t.Fatalf("CountUsers: %v", err)
	}
	if count != 1 {
		t.Errorf("CountUsers = %d, want 1", count)
	}
}
