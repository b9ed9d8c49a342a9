package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/apexmotors/dealerdesk-backend/internal/directory"
	"github.com/apexmotors/dealerdesk-backend/internal/financing"
	"github.com/apexmotors/dealerdesk-backend/internal/inventory"
	"github.com/apexmotors/dealerdesk-backend/internal/reviews"
	"github.com/apexmotors/dealerdesk-backend/internal/sales"
	"github.com/apexmotors/dealerdesk-backend/internal/servicing"
	"github.com/apexmotors/dealerdesk-backend/pkg/config"
	"github.com/apexmotors/dealerdesk-backend/pkg/db/models"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

type gormTxRunner struct {
	db *gorm.DB
}

func (r gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

var routerTestSchema = []string{
	`CREATE TABLE IF NOT EXISTS models (
  model_id INTEGER PRIMARY KEY AUTOINCREMENT,
  model_name TEXT NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS dealerships (
  dealership_id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  city TEXT NOT NULL,
  state TEXT NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS vehicles (
  vin TEXT PRIMARY KEY,
  model_id INTEGER NOT NULL,
  dealership_id INTEGER NOT NULL,
  model_year INTEGER NOT NULL,
  color TEXT NOT NULL,
  mileage NUMERIC NOT NULL,
  price NUMERIC NOT NULL,
  available INTEGER NOT NULL DEFAULT 1,
  features TEXT
);`,
	`CREATE TABLE IF NOT EXISTS customers (
  customer_id INTEGER PRIMARY KEY AUTOINCREMENT,
  full_name TEXT NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS employees (
  employee_id INTEGER PRIMARY KEY AUTOINCREMENT,
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
	`CREATE TABLE IF NOT EXISTS sales (
  sale_id INTEGER PRIMARY KEY AUTOINCREMENT,
  vin TEXT NOT NULL,
  customer_id INTEGER NOT NULL,
  employee_id INTEGER NOT NULL,
  sale_date DATETIME NOT NULL,
  sale_price NUMERIC NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS trade_ins (
  trade_in_id INTEGER PRIMARY KEY AUTOINCREMENT,
  sale_id INTEGER NOT NULL,
  vin TEXT,
  make TEXT NOT NULL,
  model TEXT NOT NULL,
  model_year INTEGER NOT NULL,
  mileage NUMERIC NOT NULL,
  allowance NUMERIC NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS lenders (
  lender_id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  phone TEXT NOT NULL DEFAULT ''
);`,
	`CREATE TABLE IF NOT EXISTS financing_plans (
  plan_id INTEGER PRIMARY KEY AUTOINCREMENT,
  lender_id INTEGER NOT NULL,
  plan_name TEXT NOT NULL,
  apr NUMERIC NOT NULL,
  term_months INTEGER NOT NULL,
  min_down_payment NUMERIC NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS loans (
  loan_id INTEGER PRIMARY KEY AUTOINCREMENT,
  sale_id INTEGER NOT NULL,
  plan_id INTEGER NOT NULL,
  principal NUMERIC NOT NULL,
  down_payment NUMERIC NOT NULL,
  start_date DATETIME NOT NULL,
  status TEXT NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS inventory_transfers (
  transfer_id INTEGER PRIMARY KEY AUTOINCREMENT,
  vin TEXT NOT NULL,
  from_dealership_id INTEGER NOT NULL,
  to_dealership_id INTEGER NOT NULL,
  transfer_date DATETIME NOT NULL,
  status TEXT NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS service_appointments (
  service_id INTEGER PRIMARY KEY AUTOINCREMENT,
  vin TEXT NOT NULL,
  customer_id INTEGER NOT NULL,
  service_date DATETIME NOT NULL,
  service_type TEXT NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS service_invoices (
  invoice_id INTEGER PRIMARY KEY AUTOINCREMENT,
  service_id INTEGER NOT NULL,
  total_amount NUMERIC NOT NULL,
  paid INTEGER NOT NULL DEFAULT 0
);`,
	`CREATE TABLE IF NOT EXISTS service_items (
  item_id INTEGER PRIMARY KEY AUTOINCREMENT,
  invoice_id INTEGER NOT NULL,
  description TEXT NOT NULL,
  labor_hours NUMERIC NOT NULL,
  part_cost NUMERIC NOT NULL,
  labor_rate NUMERIC NOT NULL
);`,
}

func newTestRouter(t *testing.T, markVehicleSold bool) (http.Handler, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	for _, stmt := range routerTestSchema {
		require.NoError(t, db.Exec(stmt).Error)
	}

	reviewsSvc, err := reviews.NewService(reviews.NewRepository(db))
	require.NoError(t, err)
	servicingSvc, err := servicing.NewService(servicing.NewRepository(db))
	require.NoError(t, err)
	inventorySvc, err := inventory.NewService(inventory.NewRepository(db), reviewsSvc, servicingSvc)
	require.NoError(t, err)
	salesSvc, err := sales.NewService(sales.ServiceParams{
		Repo:            sales.NewRepository(db),
		Tx:              gormTxRunner{db: db},
		MarkVehicleSold: markVehicleSold,
	})
	require.NoError(t, err)
	financingSvc, err := financing.NewService(financing.NewRepository(db))
	require.NoError(t, err)
	directorySvc, err := directory.NewService(directory.NewRepository(db))
	require.NoError(t, err)

	cfg := &config.Config{App: config.AppConfig{Env: config.AppEnvDev, Port: "8080"}}
	handler := NewRouter(cfg, nil, stubPinger{}, prometheus.NewRegistry(), Services{
		Inventory: inventorySvc,
		Reviews:   reviewsSvc,
		Sales:     salesSvc,
		Financing: financingSvc,
		Servicing: servicingSvc,
		Directory: directorySvc,
	})
	return handler, db
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoints(t *testing.T) {
	handler, _ := newTestRouter(t, false)

	rec := doJSON(t, handler, http.MethodGet, "/health/live", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/health/ready", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, config.AppEnvDev, rec.Header().Get("X-DealerDesk-Env"))
}

func TestMetricsEndpoint(t *testing.T) {
	handler, _ := newTestRouter(t, false)

	rec := doJSON(t, handler, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVehicleSearchRejectsNonNumericID(t *testing.T) {
	handler, _ := newTestRouter(t, false)

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/vehicles/?model_id=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestVehicleDetailNotFound(t *testing.T) {
	handler, _ := newTestRouter(t, false)

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/vehicles/NO-SUCH-VIN/", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestTransferRejectsHyphenatedStatus(t *testing.T) {
	handler, db := newTestRouter(t, false)
	require.NoError(t, db.Create(&models.Dealership{Name: "Apex North", City: "Tulsa", State: "OK"}).Error)
	require.NoError(t, db.Create(&models.Dealership{Name: "Apex South", City: "Norman", State: "OK"}).Error)

	body := `{"vin":"VIN-1","from_dealership_id":1,"to_dealership_id":2,"transfer_date":"2025-06-01","status":"in-transit"}`
	rec := doJSON(t, handler, http.MethodPost, "/api/v1/transfers/", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestReviewRatingAboveScaleRejected(t *testing.T) {
	handler, _ := newTestRouter(t, false)

	body := `{"customer_id":1,"vin":"VIN-1","rating":6,"review_text":"too good","review_date":"2025-05-20"}`
	rec := doJSON(t, handler, http.MethodPost, "/api/v1/reviews", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVehicleSearchSaleFlow(t *testing.T) {
	handler, db := newTestRouter(t, true)

	require.NoError(t, db.Create(&models.Model{ModelName: "Crestline"}).Error)
	require.NoError(t, db.Create(&models.Dealership{Name: "Apex North", City: "Tulsa", State: "OK"}).Error)
	require.NoError(t, db.Create(&models.Customer{FullName: "Dana Cole"}).Error)
	require.NoError(t, db.Create(&models.Employee{FullName: "Riley Burke"}).Error)

	createBody := `{"vin":"1HGCM82633A004352","model_id":1,"dealership_id":1,"model_year":2023,"color":"Silver","mileage":12000,"price":27999.00,"available":true}`
	rec := doJSON(t, handler, http.MethodPost, "/api/v1/vehicles/", createBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/vehicles/?available_only=true", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var searchEnvelope struct {
		Data struct {
			Vehicles []inventory.VehicleListing `json:"vehicles"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &searchEnvelope))
	require.Len(t, searchEnvelope.Data.Vehicles, 1)
	assert.Equal(t, "1HGCM82633A004352", searchEnvelope.Data.Vehicles[0].VIN)

	saleBody := `{"vin":"1HGCM82633A004352","customer_id":1,"employee_id":1,"sale_date":"2025-06-12","sale_price":27999.00}`
	rec = doJSON(t, handler, http.MethodPost, "/api/v1/sales/", saleBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// the coupling flag was on, so the unit left the available pool
	rec = doJSON(t, handler, http.MethodGet, "/api/v1/vehicles/?available_only=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &searchEnvelope))
	assert.Empty(t, searchEnvelope.Data.Vehicles)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/sales/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dana Cole")
	assert.Contains(t, rec.Body.String(), "Crestline")

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/vehicles/1HGCM82633A004352/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Apex North")
}
