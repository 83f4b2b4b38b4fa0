package repositories

import (
	"database/sql"
	"strings"

	intconfig "carrental/internal/config"
	"carrental/internal/domain"
	"carrental/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

const catalogTable = "available_cars"

// defaultFleet seeds the catalog on first use so the app works without prior
// admin setup. Rates are whole dollars per day.
var defaultFleet = []models.Car{
	{Model: "Audi A8", DailyRate: 940},
	{Model: "BMW 7 Series", DailyRate: 850},
	{Model: "Land Rover Defender", DailyRate: 1200},
	{Model: "Lexus LS", DailyRate: 999},
	{Model: "Mercedes C-Class", DailyRate: 900},
	{Model: "Mercedes E-Class", DailyRate: 1000},
	{Model: "Range Rover", DailyRate: 1000},
	{Model: "Toyota Alphard", DailyRate: 900},
}

// CatalogRepository owns the vehicle catalog: model name (unique) -> daily rate.
type CatalogRepository struct {
	DB *sql.DB
}

func (r CatalogRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Bootstrap ensures the table exists and seeds the default fleet when empty.
func (r CatalogRepository) Bootstrap() error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not available"}
	}

	ddl := `
CREATE TABLE IF NOT EXISTS ` + catalogTable + ` (
	id INT AUTO_INCREMENT PRIMARY KEY,
	model VARCHAR(255) NOT NULL UNIQUE,
	daily_rent INT NOT NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	if _, err := db.Exec(ddl); err != nil {
		return domain.InternalError{Err: err}
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM ` + catalogTable).Scan(&count); err != nil {
		return domain.InternalError{Err: err}
	}
	if count > 0 {
		return nil
	}

	for _, car := range defaultFleet {
		if err := r.Add(car.Model, car.DailyRate); err != nil && !domain.IsConflict(err) {
			return err
		}
	}
	return nil
}

// List returns the catalog ordered by model name ascending. Never fails on an
// empty catalog; callers get an empty slice.
func (r CatalogRepository) List() ([]models.Car, error) {
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "database not available"}
	}

	rows, err := db.Query(`SELECT model, daily_rent FROM ` + catalogTable + ` ORDER BY model ASC`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	cars := []models.Car{}
	for rows.Next() {
		var car models.Car
		if err := rows.Scan(&car.Model, &car.DailyRate); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		cars = append(cars, car)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return cars, nil
}

// Add inserts a new model. A duplicate model name is a ConflictError, not an
// overwrite; the existing rate stays untouched.
func (r CatalogRepository) Add(model string, dailyRate int64) error {
	model = strings.TrimSpace(model)
	if model == "" {
		return domain.ValidationError{Field: "model", Msg: "must not be empty"}
	}
	if dailyRate < 0 {
		return domain.ValidationError{Field: "daily_rent", Msg: "must not be negative"}
	}

	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not available"}
	}

	_, err := db.Exec(`INSERT INTO `+catalogTable+` (model, daily_rent) VALUES (?, ?)`, model, dailyRate)
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			return domain.ConflictError{Resource: "car", Msg: "model already exists"}
		}
		return domain.InternalError{Err: err}
	}
	return nil
}

// UpdateRate overwrites the daily rate for an existing model.
func (r CatalogRepository) UpdateRate(model string, dailyRate int64) error {
	model = strings.TrimSpace(model)
	if model == "" {
		return domain.ValidationError{Field: "model", Msg: "must not be empty"}
	}
	if dailyRate < 0 {
		return domain.ValidationError{Field: "daily_rent", Msg: "must not be negative"}
	}

	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not available"}
	}

	res, err := db.Exec(`UPDATE `+catalogTable+` SET daily_rent = ? WHERE model = ?`, dailyRate, model)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	// matched rows (clientFoundRows in the DSN): zero means the model is absent,
	// not that the rate was already at this value
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "car"}
	}
	return nil
}

// Remove deletes a model. Past bookings keep their denormalized model name and
// price, so no referential check is made here.
func (r CatalogRepository) Remove(model string) error {
	model = strings.TrimSpace(model)
	if model == "" {
		return domain.ValidationError{Field: "model", Msg: "must not be empty"}
	}

	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not available"}
	}

	res, err := db.Exec(`DELETE FROM `+catalogTable+` WHERE model = ?`, model)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "car"}
	}
	return nil
}
