package database

import (
	"strings"
	"testing"
)

func TestDialectSQLite(t *testing.T) {
	dialect := NewSQLiteDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "sqlite3"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		result := dialect.MigrationsSubdir()
		expected := "sqlite"
		if result != expected {
			t.Errorf("MigrationsSubdir() = %v, want %v", result, expected)
		}
	})
}

func TestDialectPostgreSQL(t *testing.T) {
	dialect := NewPostgresDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "postgres"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		result := dialect.MigrationsSubdir()
		expected := "postgres"
		if result != expected {
			t.Errorf("MigrationsSubdir() = %v, want %v", result, expected)
		}
	})
}

func TestDialectMySQL(t *testing.T) {
	dialect := NewMySQLDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "mysql"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		result := dialect.MigrationsSubdir()
		expected := "mysql"
		if result != expected {
			t.Errorf("MigrationsSubdir() = %v, want %v", result, expected)
		}
	})
}

func TestRewriteQuery(t *testing.T) {
	tests := []struct {
		name     string
		dialect  Dialect
		query    string
		expected string
	}{
		{
			name:     "SQLite no change",
			dialect:  NewSQLiteDialect(),
			query:    "SELECT * FROM tests WHERE id = ?",
			expected: "SELECT * FROM tests WHERE id = ?",
		},
		{
			name:     "PostgreSQL single placeholder",
			dialect:  NewPostgresDialect(),
			query:    "SELECT * FROM tests WHERE id = ?",
			expected: "SELECT * FROM tests WHERE id = $1",
		},
		{
			name:     "PostgreSQL multiple placeholders",
			dialect:  NewPostgresDialect(),
			query:    "INSERT INTO questions (test_id, text) VALUES (?, ?)",
			expected: "INSERT INTO questions (test_id, text) VALUES ($1, $2)",
		},
		{
			name:     "MySQL no change",
			dialect:  NewMySQLDialect(),
			query:    "UPDATE tests SET name = ?, duration_seconds = ? WHERE id = ?",
			expected: "UPDATE tests SET name = ?, duration_seconds = ? WHERE id = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.dialect.RewriteQuery(tt.query)
			if result != tt.expected {
				t.Errorf("RewriteQuery() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestBoolValue(t *testing.T) {
	tests := []struct {
		name      string
		dialect   Dialect
		wantTrue  string
		wantFalse string
	}{
		{"SQLite", NewSQLiteDialect(), "1", "0"},
		{"PostgreSQL", NewPostgresDialect(), "TRUE", "FALSE"},
		{"MySQL", NewMySQLDialect(), "TRUE", "FALSE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.BoolValue(true); got != tt.wantTrue {
				t.Errorf("BoolValue(true) = %v, want %v", got, tt.wantTrue)
			}
			if got := tt.dialect.BoolValue(false); got != tt.wantFalse {
				t.Errorf("BoolValue(false) = %v, want %v", got, tt.wantFalse)
			}
		})
	}
}

func TestMySQLDSNEnablesMultiStatements(t *testing.T) {
	dialect := NewMySQLDialect()

	tests := []struct {
		url      string
		expected string
	}{
		{"user:pw@tcp(db:3306)/quiz", "user:pw@tcp(db:3306)/quiz?multiStatements=true"},
		{"user:pw@tcp(db:3306)/quiz?parseTime=true", "user:pw@tcp(db:3306)/quiz?parseTime=true&multiStatements=true"},
		{"user:pw@tcp(db:3306)/quiz?multiStatements=false", "user:pw@tcp(db:3306)/quiz?multiStatements=false"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := dialect.DSN(DialectConfig{URL: tt.url}); got != tt.expected {
				t.Errorf("DSN() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUpsertTestQuery(t *testing.T) {
	pg := NewPostgresDialect().RewriteQuery(NewPostgresDialect().UpsertTestQuery())
	if !strings.Contains(pg, "VALUES ($1, $2, $3, $4, $5)") {
		t.Errorf("postgres upsert placeholders not rewritten: %s", pg)
	}
	if !strings.Contains(NewMySQLDialect().UpsertTestQuery(), "ON DUPLICATE KEY UPDATE") {
		t.Error("MySQL upsert should use ON DUPLICATE KEY UPDATE")
	}
	if !strings.Contains(NewSQLiteDialect().UpsertTestQuery(), "ON CONFLICT (id)") {
		t.Error("SQLite upsert should use ON CONFLICT")
	}
}
