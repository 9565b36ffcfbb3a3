package database

import (
	"context"
	"path/filepath"
	"testing"
)

const migrationsDir = "../../migrations"

func openMigrated(t *testing.T) *DB {
	t.Helper()

	db, err := Initialize(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations(migrationsDir); err != nil {
		t.Fatalf("RunMigrations() error = %v", err)
	}
	return db
}

// TestDatabaseIntegration tests the complete database lifecycle
func TestDatabaseIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openMigrated(t)
	ctx := context.Background()

	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("Failed to ping database: %v", err)
	}

	for _, table := range []string{"migrations", "tests", "questions"} {
		var name string
		err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("Table %s not found: %v", table, err)
		}
	}

	// A second run must be a no-op
	if err := db.RunMigrations(migrationsDir); err != nil {
		t.Fatalf("re-running migrations error = %v", err)
	}
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM migrations").Scan(&count); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 recorded migration, got %d", count)
	}
}

func TestRunMigrationsMissingDirectory(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db, err := Initialize(filepath.Join(t.TempDir(), "empty.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(t.TempDir()); err == nil {
		t.Error("expected an error when no migration files exist")
	}
}

// TestDatabaseTransactions tests transaction support
func TestDatabaseTransactions(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openMigrated(t)
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}
	if _, err := tx.ExecContext(ctx, db.Dialect.UpsertTestQuery(), "t1", "First", 60, 1, true); err != nil {
		tx.Rollback()
		t.Fatalf("Failed to insert in transaction: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Failed to commit transaction: %v", err)
	}

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tests WHERE id = ?", "t1").Scan(&count); err != nil {
		t.Fatalf("Failed to query after commit: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 test, got %d", count)
	}

	tx2, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("Failed to begin second transaction: %v", err)
	}
	if _, err := tx2.ExecContext(ctx, db.Dialect.UpsertTestQuery(), "t2", "Second", 60, 1, true); err != nil {
		tx2.Rollback()
		t.Fatalf("Failed to insert in second transaction: %v", err)
	}
	if err := tx2.Rollback(); err != nil {
		t.Fatalf("Failed to rollback transaction: %v", err)
	}

	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tests WHERE id = ?", "t2").Scan(&count); err != nil {
		t.Fatalf("Failed to query after rollback: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 tests after rollback, got %d", count)
	}
}

func TestUpsertReplacesExistingTest(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openMigrated(t)
	ctx := context.Background()

	for _, name := range []string{"Draft", "Final"} {
		if _, err := db.ExecContext(ctx, db.Dialect.UpsertTestQuery(), "t1", name, 300, 2, true); err != nil {
			t.Fatalf("upsert %s: %v", name, err)
		}
	}

	var name string
	if err := db.QueryRowContext(ctx, "SELECT name FROM tests WHERE id = ?", "t1").Scan(&name); err != nil {
		t.Fatalf("select: %v", err)
	}
	if name != "Final" {
		t.Errorf("name = %q, want Final", name)
	}
}

// TestConcurrentAccess tests concurrent database access
func TestConcurrentAccess(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openMigrated(t)
	ctx := context.Background()

	if _, err := db.ExecContext(ctx, db.Dialect.UpsertTestQuery(), "shared", "Shared Quiz", 600, 3, true); err != nil {
		t.Fatalf("Failed to create test: %v", err)
	}

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			var name string
			err := db.QueryRowContext(ctx, "SELECT name FROM tests WHERE id = ?", "shared").Scan(&name)
			if err != nil {
				t.Errorf("Concurrent read failed: %v", err)
			}
			if name != "Shared Quiz" {
				t.Errorf("Expected name 'Shared Quiz', got '%s'", name)
			}
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
