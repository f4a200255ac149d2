package mysql

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"
)

var testDB *sql.DB

// Интеграционные тесты ходят в настоящий MySQL: TEST_MYSQL_DSN=user:pass@tcp(localhost:3306)/autozone_test?parseTime=true
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn == "" {
		fmt.Println("TEST_MYSQL_DSN is not set, skipping mysql integration tests")
		os.Exit(0)
	}

	var err error
	testDB, err = sql.Open("mysql", dsn)
	if err != nil {
		panic(fmt.Errorf("не удалось подключиться к тестовой БД: %w", err))
	}

	if err := testDB.Ping(); err != nil {
		panic(fmt.Errorf("ping failed: %w", err))
	}

	if err := applySchema(testDB); err != nil {
		panic(fmt.Errorf("apply schema: %w", err))
	}

	code := m.Run()

	testDB.Close()
	os.Exit(code)
}

func applySchema(db *sql.DB) error {
	raw, err := os.ReadFile("schema.sql")
	if err != nil {
		return err
	}

	for _, stmt := range strings.Split(string(raw), ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("%s: %w", strings.TrimSpace(stmt), err)
		}
	}

	return nil
}

func cleanupTestDB(t *testing.T) {
	t.Helper()

	for _, table := range []string{"box_summary", "courier_details", "packing_list"} {
		if _, err := testDB.Exec("DELETE FROM " + table); err != nil {
			t.Fatalf("cleanup %s: %v", table, err)
		}
	}
}
