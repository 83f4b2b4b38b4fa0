package repositories

import (
	"database/sql"
	"strings"

	intconfig "carrental/internal/config"
	"carrental/internal/domain"

	"github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
)

// User is one account row. PasswordHash never leaves this package.
type User struct {
	ID       int64
	Username string
	Role     string
}

// UserRepository is the credentials store consumed by the auth endpoints.
type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Bootstrap ensures the users table exists and seeds a default admin account
// when the table is empty, mirroring the catalog's first-use seeding.
func (r UserRepository) Bootstrap(adminPass string) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not available"}
	}

	ddl := `
CREATE TABLE IF NOT EXISTS users (
	id INT AUTO_INCREMENT PRIMARY KEY,
	username VARCHAR(50) NOT NULL UNIQUE,
	password_hash VARCHAR(100) NOT NULL,
	role VARCHAR(20) NOT NULL DEFAULT 'user'
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	if _, err := db.Exec(ddl); err != nil {
		return domain.InternalError{Err: err}
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return domain.InternalError{Err: err}
	}
	if count > 0 {
		return nil
	}

	if adminPass == "" {
		adminPass = "admin"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.DefaultCost)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if _, err := db.Exec(`INSERT INTO users (username, password_hash, role) VALUES ('admin', ?, 'admin')`, string(hash)); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

// Register creates a customer account. Duplicate usernames conflict.
func (r UserRepository) Register(username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.ValidationError{Field: "username", Msg: "must not be empty"}
	}
	if password == "" {
		return domain.ValidationError{Field: "password", Msg: "must not be empty"}
	}

	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not available"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.InternalError{Err: err}
	}

	_, err = db.Exec(`INSERT INTO users (username, password_hash, role) VALUES (?, ?, 'user')`, username, string(hash))
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			return domain.ConflictError{Resource: "user", Msg: "username already registered"}
		}
		return domain.InternalError{Err: err}
	}
	return nil
}

// Authenticate checks the credentials and returns the matching account.
// Wrong username and wrong password are indistinguishable to the caller.
func (r UserRepository) Authenticate(username, password string) (User, error) {
	db := r.db()
	if db == nil {
		return User{}, domain.InternalError{Msg: "database not available"}
	}

	var (
		u    User
		hash string
	)
	err := db.QueryRow(`SELECT id, username, password_hash, role FROM users WHERE username = ?`, strings.TrimSpace(username)).
		Scan(&u.ID, &u.Username, &hash, &u.Role)
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, domain.ValidationError{Msg: "invalid username or password"}
		}
		return User{}, domain.InternalError{Err: err}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return User{}, domain.ValidationError{Msg: "invalid username or password"}
	}
	return u, nil
}
