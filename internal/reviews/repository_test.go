package reviews

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/apexmotors/dealerdesk-backend/pkg/db/models"
)

func setupReviewsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS customers (
  customer_id INTEGER PRIMARY KEY AUTOINCREMENT,
  full_name TEXT NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS reviews (
  review_id INTEGER PRIMARY KEY AUTOINCREMENT,
  customer_id INTEGER NOT NULL,
  vin TEXT NOT NULL,
  rating INTEGER NOT NULL,
  review_text TEXT NOT NULL,
  review_date DATETIME NOT NULL
);`,
	}
	for _, stmt := range stmts {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func TestListByVINNewestFirst(t *testing.T) {
	db := setupReviewsTestDB(t)
	repo := NewRepository(db)

	customer := &models.Customer{FullName: "Dana Cole"}
	require.NoError(t, db.Create(customer).Error)

	older := &models.Review{
		CustomerID: customer.CustomerID,
		VIN:        "VIN-1",
		Rating:     4,
		ReviewText: "Solid.",
		ReviewDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	newer := &models.Review{
		CustomerID: customer.CustomerID,
		VIN:        "VIN-1",
		Rating:     5,
		ReviewText: "Even better after the tune-up.",
		ReviewDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	other := &models.Review{
		CustomerID: customer.CustomerID,
		VIN:        "VIN-2",
		Rating:     2,
		ReviewText: "Not for me.",
		ReviewDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(context.Background(), older))
	require.NoError(t, repo.Create(context.Background(), newer))
	require.NoError(t, repo.Create(context.Background(), other))

	rows, err := repo.ListByVIN(context.Background(), "VIN-1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 5, rows[0].Rating)
	assert.Equal(t, 4, rows[1].Rating)
	assert.Equal(t, "Dana Cole", rows[0].FullName)
}

func TestListByVINNoRows(t *testing.T) {
	db := setupReviewsTestDB(t)
	repo := NewRepository(db)

	rows, err := repo.ListByVIN(context.Background(), "NO-SUCH-VIN")
	require.NoError(t, err)
	assert.Empty(t, rows)
}
