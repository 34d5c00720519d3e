package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the integration-test database. It expects a MySQL
// instance on localhost:3306 with a database named 'oldenfyre_test' and
// skips the test when none is reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/oldenfyre_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// SetupTestTables creates the tables the repository tests need.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createConfirmedOrders := `
	CREATE TABLE IF NOT EXISTS ConfirmedOrders (
		code VARCHAR(64) NOT NULL PRIMARY KEY,
		customerName VARCHAR(255) NOT NULL,
		phone VARCHAR(32) NOT NULL,
		altPhone VARCHAR(32) NULL,
		address VARCHAR(512) NOT NULL,
		productCode VARCHAR(32) NOT NULL,
		productName VARCHAR(255) NOT NULL,
		quantity INT NOT NULL,
		unitPrice INT NOT NULL,
		subtotal INT NOT NULL,
		discount INT NOT NULL,
		finalTotal INT NOT NULL,
		status VARCHAR(32) NOT NULL,
		notes TEXT NULL,
		createdAt DATETIME NOT NULL,
		updatedAt DATETIME NOT NULL
	)`

	if _, err := db.Exec(createConfirmedOrders); err != nil {
		t.Fatalf("failed to create ConfirmedOrders table: %v", err)
	}
}

// CleanupTestDB empties the test tables and closes the connection.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	if _, err := db.Exec("DELETE FROM ConfirmedOrders"); err != nil {
		t.Logf("failed to clean table ConfirmedOrders: %v", err)
	}

	db.Close()
}
