package repositories

import (
	"database/sql"

	intconfig "carrental/internal/config"
	"carrental/internal/domain"
	"carrental/internal/domain/models"
)

const bookingTable = "bookings"

// BookingRepository is the append-only booking log. There is deliberately no
// update statement: bookings are immutable once inserted, only deletion by id
// changes the table.
type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Bootstrap ensures the bookings table exists.
func (r BookingRepository) Bootstrap() error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not available"}
	}

	ddl := `
CREATE TABLE IF NOT EXISTS ` + bookingTable + ` (
	id INT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	phone VARCHAR(100) NOT NULL,
	address TEXT,
	car VARCHAR(255) NOT NULL,
	pickup_date DATETIME NOT NULL,
	drop_date DATETIME NOT NULL,
	pickup_location VARCHAR(255),
	dropoff_location VARCHAR(255),
	price INT NOT NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	if _, err := db.Exec(ddl); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

// Insert appends one booking and returns the assigned id.
func (r BookingRepository) Insert(b models.Booking) (int64, error) {
	db := r.db()
	if db == nil {
		return 0, domain.InternalError{Msg: "database not available"}
	}

	res, err := db.Exec(`
		INSERT INTO `+bookingTable+`
			(name, email, phone, address, car, pickup_date, drop_date, pickup_location, dropoff_location, price)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, b.Name, b.Email, b.Phone, b.Address, b.Car, b.PickupDate, b.DropDate, b.PickupLocation, b.DropoffLocation, b.Price)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return id, nil
}

// GetByID fetches one booking.
func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "id", Msg: "must be positive"}
	}

	db := r.db()
	if db == nil {
		return models.Booking{}, domain.InternalError{Msg: "database not available"}
	}

	var b models.Booking
	err := db.QueryRow(`
		SELECT id, name, email, phone, COALESCE(address,''), car,
			pickup_date, drop_date,
			COALESCE(pickup_location,''), COALESCE(dropoff_location,''), price
		FROM `+bookingTable+`
		WHERE id = ? LIMIT 1
	`, id).Scan(
		&b.ID, &b.Name, &b.Email, &b.Phone, &b.Address, &b.Car,
		&b.PickupDate, &b.DropDate,
		&b.PickupLocation, &b.DropoffLocation, &b.Price,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Booking{}, domain.NotFoundError{Resource: "booking"}
		}
		return models.Booking{}, domain.InternalError{Err: err}
	}
	return b, nil
}

// List returns all bookings ordered by id ascending.
func (r BookingRepository) List() ([]models.Booking, error) {
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "database not available"}
	}

	rows, err := db.Query(`
		SELECT id, name, email, phone, COALESCE(address,''), car,
			pickup_date, drop_date,
			COALESCE(pickup_location,''), COALESCE(dropoff_location,''), price
		FROM ` + bookingTable + `
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Email, &b.Phone, &b.Address, &b.Car,
			&b.PickupDate, &b.DropDate,
			&b.PickupLocation, &b.DropoffLocation, &b.Price,
		); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}

// DeleteByID removes one booking.
func (r BookingRepository) DeleteByID(id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "must be positive"}
	}

	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not available"}
	}

	res, err := db.Exec(`DELETE FROM `+bookingTable+` WHERE id = ?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}
