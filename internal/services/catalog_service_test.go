package services

import (
	"testing"
	"time"

	"carrental/internal/domain/models"
	"carrental/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

// A rate change through the admin service must be visible to the very next
// quote computed by any open flow, because the mutation reloads the shared
// cache before returning.
func TestRateChangeVisibleToNextQuote(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cache := loadCache(t, mock, db,
		sqlmock.NewRows([]string{"model", "daily_rent"}).AddRow("Z", 100))
	flow := testFlow(cache, db)

	pickup := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	draft := models.BookingDraft{
		Car:        "Z",
		PickupDate: pickup,
		DropDate:   pickup.Add(24 * time.Hour),
	}

	quote, err := flow.UpdateDraft(draft)
	if err != nil {
		t.Fatalf("draft update error: %v", err)
	}
	if quote.Price != 100 {
		t.Fatalf("expected pre-change quote 100, got %d", quote.Price)
	}

	mock.ExpectExec("UPDATE available_cars SET daily_rent").
		WithArgs(int64(777), "Z").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT model, daily_rent FROM available_cars").
		WillReturnRows(sqlmock.NewRows([]string{"model", "daily_rent"}).AddRow("Z", 777))

	svc := CatalogService{Repo: repositories.CatalogRepository{DB: db}, Cache: cache}
	if err := svc.UpdateRate("Z", 777); err != nil {
		t.Fatalf("update rate error: %v", err)
	}

	quote, err = flow.UpdateDraft(draft)
	if err != nil {
		t.Fatalf("draft update error: %v", err)
	}
	if quote.Price != 777 {
		t.Fatalf("expected post-change quote 777, got %d", quote.Price)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRemoveMakesModelUnavailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cache := loadCache(t, mock, db,
		sqlmock.NewRows([]string{"model", "daily_rent"}).
			AddRow("A", 100).
			AddRow("B", 200))

	mock.ExpectExec("DELETE FROM available_cars").
		WithArgs("A").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT model, daily_rent FROM available_cars").
		WillReturnRows(sqlmock.NewRows([]string{"model", "daily_rent"}).AddRow("B", 200))

	svc := CatalogService{Repo: repositories.CatalogRepository{DB: db}, Cache: cache}
	if err := svc.Remove("A"); err != nil {
		t.Fatalf("remove error: %v", err)
	}

	if _, ok := cache.Rate("A"); ok {
		t.Fatalf("removed model must leave the cache")
	}
	if cache.Len() != 1 {
		t.Fatalf("expected 1 cached model, got %d", cache.Len())
	}
}

func TestFailedMutationLeavesCacheUntouched(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cache := loadCache(t, mock, db,
		sqlmock.NewRows([]string{"model", "daily_rent"}).AddRow("A", 100))

	mock.ExpectExec("UPDATE available_cars SET daily_rent").
		WithArgs(int64(500), "Missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	svc := CatalogService{Repo: repositories.CatalogRepository{DB: db}, Cache: cache}
	if err := svc.UpdateRate("Missing", 500); err == nil {
		t.Fatalf("expected error for absent model")
	}

	// no reload SELECT was expected, and the old rate survives
	if rate, ok := cache.Rate("A"); !ok || rate != 100 {
		t.Fatalf("cache must be untouched after a failed mutation, got %d %v", rate, ok)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
