package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"
)

func writeMigration(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

const validBody = "-- +goose Up\nCREATE TABLE t (id INTEGER);\n-- +goose Down\nDROP TABLE t;\n"

func TestValidateDirAcceptsWellFormedMigrations(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "20250901120000_init.sql", validBody)
	writeMigration(t, dir, "20250901120500_indexes.sql", validBody)

	if err := ValidateDir(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateDirEmptyDirIsValid(t *testing.T) {
	if err := ValidateDir(t.TempDir()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateDirReportsAllProblems(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "bad-name.sql", validBody)
	writeMigration(t, dir, "20250901120000_first.sql", "-- +goose Up\nSELECT 1;\n")
	writeMigration(t, dir, "20250901120000_second.sql", validBody)

	err := ValidateDir(dir)
	if err == nil {
		t.Fatal("expected validation errors")
	}

	problems := multierr.Errors(err)
	if len(problems) != 3 {
		t.Fatalf("expected three problems, got %d: %v", len(problems), problems)
	}

	msg := err.Error()
	for _, want := range []string{"invalid migration filename", "duplicate migration version", "+goose Down"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}

func TestValidateDirRequiresDir(t *testing.T) {
	if err := ValidateDir(""); err == nil {
		t.Fatal("expected an error for empty dir")
	}
}

func TestRepositoryMigrationsAreValid(t *testing.T) {
	if err := ValidateDir("migrations"); err != nil {
		t.Fatalf("shipped migrations must validate: %v", err)
	}
}
