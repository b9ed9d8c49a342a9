package directory

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/apexmotors/dealerdesk-backend/pkg/db/models"
)

func setupDirectoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS customers (
  customer_id INTEGER PRIMARY KEY AUTOINCREMENT,
  full_name TEXT NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS employees (
  employee_id INTEGER PRIMARY KEY AUTOINCREMENT,
  full_name TEXT NOT NULL
);`,
	}
	for _, stmt := range stmts {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func TestListCustomersOrderedByName(t *testing.T) {
	db := setupDirectoryTestDB(t)
	repo := NewRepository(db)

	for _, name := range []string{"Riley Burke", "Dana Cole", "Avery Lane"} {
		require.NoError(t, db.Create(&models.Customer{FullName: name}).Error)
	}

	rows, err := repo.ListCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Avery Lane", rows[0].FullName)
	assert.Equal(t, "Dana Cole", rows[1].FullName)
	assert.Equal(t, "Riley Burke", rows[2].FullName)
}

func TestListEmployeesOrderedByName(t *testing.T) {
	db := setupDirectoryTestDB(t)
	repo := NewRepository(db)

	for _, name := range []string{"Morgan Yu", "Casey Brant"} {
		require.NoError(t, db.Create(&models.Employee{FullName: name}).Error)
	}

	rows, err := repo.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Casey Brant", rows[0].FullName)
	assert.Equal(t, "Morgan Yu", rows[1].FullName)
}

func TestListCustomersEmpty(t *testing.T) {
	db := setupDirectoryTestDB(t)
	repo := NewRepository(db)

	rows, err := repo.ListCustomers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}
