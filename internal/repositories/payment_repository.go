package repositories

import (
	"database/sql"
	"strings"

	intconfig "carrental/internal/config"
	"carrental/internal/domain"
	"carrental/internal/domain/models"
)

// PaymentRepository records the instrument entered at checkout. The two tables
// are an audit trail of payment instruments only; rows carry no booking id.
type PaymentRepository struct {
	DB *sql.DB
}

func (r PaymentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Bootstrap ensures both audit tables exist.
func (r PaymentRepository) Bootstrap() error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not available"}
	}

	cardDDL := `
CREATE TABLE IF NOT EXISTS mycards (
	id INT AUTO_INCREMENT PRIMARY KEY,
	card_number VARCHAR(100) NOT NULL,
	card_name VARCHAR(255) NOT NULL,
	expiry VARCHAR(10) NOT NULL,
	cvv VARCHAR(10) NOT NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	if _, err := db.Exec(cardDDL); err != nil {
		return domain.InternalError{Err: err}
	}

	upiDDL := `
CREATE TABLE IF NOT EXISTS myupi (
	id INT AUTO_INCREMENT PRIMARY KEY,
	upi_id VARCHAR(255) NOT NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	if _, err := db.Exec(upiDDL); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

// Save appends one audit row for the instrument, picking the table by method.
func (r PaymentRepository) Save(p models.Payment) error {
	if p.IsUPI() {
		return r.SaveUPI(p.UPIID)
	}
	return r.SaveCard(p.CardNumber, p.CardName, p.Expiry, p.CVV)
}

// SaveCard appends one card instrument row.
func (r PaymentRepository) SaveCard(number, holder, expiry, cvv string) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not available"}
	}

	_, err := db.Exec(`INSERT INTO mycards (card_number, card_name, expiry, cvv) VALUES (?, ?, ?, ?)`,
		strings.TrimSpace(number), strings.TrimSpace(holder), strings.TrimSpace(expiry), strings.TrimSpace(cvv))
	if err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

// SaveUPI appends one UPI instrument row.
func (r PaymentRepository) SaveUPI(upiID string) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not available"}
	}

	_, err := db.Exec(`INSERT INTO myupi (upi_id) VALUES (?)`, strings.TrimSpace(upiID))
	if err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}
