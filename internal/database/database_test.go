package database

import (
	"path/filepath"
	"testing"

	"financebook/internal/config"
	"financebook/internal/logger"
	"financebook/internal/models"
)

func init() {
	logger.Init("test")
}

func TestNewConfig_RejectsUnknownDriver(t *testing.T) {
	_, err := NewConfig(&config.Config{DBDriver: "mysql"})
	if err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestConfig_DSN(t *testing.T) {
	pg := &Config{Driver: DriverPostgres, Host: "db", Port: "5432", User: "u", Password: "p", DBName: "fb", SSLMode: "disable"}
	if got := pg.DSN(); got != "host=db port=5432 user=u password=p dbname=fb sslmode=disable" {
		t.Errorf("unexpected postgres DSN %q", got)
	}
	if got := pg.MigrationURL(); got != "postgres://u:p@db:5432/fb?sslmode=disable" {
		t.Errorf("unexpected migration URL %q", got)
	}

	lite := &Config{Driver: DriverSQLite, Path: "books.db"}
	if got := lite.DSN(); got != "books.db" {
		t.Errorf("unexpected sqlite DSN %q", got)
	}
}

func TestManager_SQLiteMigrate(t *testing.T) {
	cfg := &Config{Driver: DriverSQLite, Path: filepath.Join(t.TempDir(), "test.db")}

	m, err := NewManager(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = m.Close() }()

	if err := m.Migrate(); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	for _, model := range []interface{}{&models.PaymentItem{}, &models.Category{}, &models.Recipient{}} {
		if !m.DB().Migrator().HasTable(model) {
			t.Errorf("expected table for %T", model)
		}
	}
	if !m.DB().Migrator().HasTable("payment_item_categories") {
		t.Error("expected join table payment_item_categories")
	}
}
