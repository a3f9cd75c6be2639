package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the integration-test database. Expects a MySQL instance
// on localhost:3306 with an 'ordersvc_test' schema; tests are skipped when
// it is not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/ordersvc_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	if _, err := db.Exec("DELETE FROM Orders"); err != nil {
		t.Logf("failed to clean table Orders: %v", err)
	}

	db.Close()
}

func SetupTestTables(t *testing.T, db *sql.DB) {
	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS Orders (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		totalPrice DECIMAL(10,2) NOT NULL,
		productIds VARCHAR(1024) NOT NULL,
		status VARCHAR(32) NOT NULL,
		userName VARCHAR(255) NULL,
		userEmail VARCHAR(255) NULL,
		userCpf VARCHAR(11) NULL,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	if _, err := db.Exec(createOrdersTable); err != nil {
		t.Fatalf("failed to create Orders table: %v", err)
	}
}
