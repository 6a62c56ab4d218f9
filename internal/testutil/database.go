package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the local test database. Integration tests expect a
// MySQL instance at localhost:3306 with a database named
// 'orderfellow_test' and skip when it is unavailable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/orderfellow_test?parseTime=true&clientFoundRows=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.Ping()
	if err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB removes all rows written by a test and closes the pool.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"status_events", "orders", "companies"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the schema used by the integration tests.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createCompaniesTable := `
	CREATE TABLE IF NOT EXISTS companies (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		company_name VARCHAR(255) NOT NULL,
		business_email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		email_verified TINYINT(1) NOT NULL DEFAULT 0,
		otp_code VARCHAR(6),
		otp_expires_at DATETIME,
		kyc_status VARCHAR(20),
		business_registration_number VARCHAR(100),
		business_address VARCHAR(255),
		contact_person_name VARCHAR(100),
		contact_person_phone VARCHAR(30),
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS orders (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		external_order_id VARCHAR(100) NOT NULL UNIQUE,
		company_id INT UNSIGNED NOT NULL,
		customer_name VARCHAR(100) NOT NULL,
		customer_email VARCHAR(150) NOT NULL,
		delivery_address VARCHAR(255),
		item_summary TEXT,
		current_status VARCHAR(50) NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_company (company_id)
	)`

	createStatusEventsTable := `
	CREATE TABLE IF NOT EXISTS status_events (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		order_id INT UNSIGNED NOT NULL,
		status VARCHAR(50) NOT NULL,
		note VARCHAR(255),
		timestamp DATETIME NOT NULL,
		INDEX idx_order (order_id)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"companies", createCompaniesTable},
		{"orders", createOrdersTable},
		{"status_events", createStatusEventsTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
