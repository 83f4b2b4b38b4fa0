package repositories

import (
	"testing"

	"carrental/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func TestCatalogListOrdered(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT model, daily_rent FROM available_cars ORDER BY model ASC").
		WillReturnRows(sqlmock.NewRows([]string{"model", "daily_rent"}).
			AddRow("Audi A8", 940).
			AddRow("BMW 7 Series", 850))

	repo := CatalogRepository{DB: db}
	cars, err := repo.List()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(cars) != 2 {
		t.Fatalf("expected 2 cars, got %d", len(cars))
	}
	if cars[0].Model != "Audi A8" || cars[0].DailyRate != 940 {
		t.Fatalf("unexpected first car: %+v", cars[0])
	}
	if cars[1].Model != "BMW 7 Series" || cars[1].DailyRate != 850 {
		t.Fatalf("unexpected second car: %+v", cars[1])
	}
}

func TestCatalogListEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT model, daily_rent FROM available_cars").
		WillReturnRows(sqlmock.NewRows([]string{"model", "daily_rent"}))

	cars, err := CatalogRepository{DB: db}.List()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cars == nil || len(cars) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", cars)
	}
}

func TestCatalogAddDuplicateIsConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := CatalogRepository{DB: db}

	mock.ExpectExec("INSERT INTO available_cars").
		WithArgs("X", int64(100)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	if err := repo.Add("X", 100); err != nil {
		t.Fatalf("first add should succeed, got %v", err)
	}

	mock.ExpectExec("INSERT INTO available_cars").
		WithArgs("X", int64(200)).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'X'"})
	err = repo.Add("X", 200)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict on duplicate model, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCatalogAddValidation(t *testing.T) {
	repo := CatalogRepository{}

	if err := repo.Add("  ", 100); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for empty model, got %v", err)
	}
	if err := repo.Add("Audi A8", -1); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for negative rate, got %v", err)
	}
}

func TestCatalogUpdateRateNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE available_cars SET daily_rent").
		WithArgs(int64(500), "Y").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = CatalogRepository{DB: db}.UpdateRate("Y", 500)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found for absent model, got %v", err)
	}
}

// With clientFoundRows enabled the server reports matched rows, so setting a
// rate to the value the row already holds still affects one row and succeeds.
func TestCatalogUpdateRateSameValue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE available_cars SET daily_rent").
		WithArgs(int64(900), "Mercedes C-Class").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := (CatalogRepository{DB: db}).UpdateRate("Mercedes C-Class", 900); err != nil {
		t.Fatalf("same-value update must succeed, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCatalogRemoveNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM available_cars").
		WithArgs("Gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = CatalogRepository{DB: db}.Remove("Gone")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCatalogBootstrapSeedsWhenEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS available_cars").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	for _, car := range defaultFleet {
		mock.ExpectExec("INSERT INTO available_cars").
			WithArgs(car.Model, car.DailyRate).
			WillReturnResult(sqlmock.NewResult(1, 1))
	}

	if err := (CatalogRepository{DB: db}).Bootstrap(); err != nil {
		t.Fatalf("bootstrap error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCatalogBootstrapSkipsSeedWhenPopulated(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS available_cars").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	if err := (CatalogRepository{DB: db}).Bootstrap(); err != nil {
		t.Fatalf("bootstrap error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("seed must not run on a populated catalog: %v", err)
	}
}
