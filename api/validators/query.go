package validators

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/apexmotors/dealerdesk-backend/pkg/errors"
)

// DateFormat is the calendar-date layout accepted on every date field.
const DateFormat = "2006-01-02"

// ParseQueryID parses an optional numeric identifier from the query string.
// An absent or blank value yields nil; a non-numeric value is a validation
// error, distinct from an identifier that simply matches no rows.
func ParseQueryID(r *http.Request, key string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	if value <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be positive").WithDetails(map[string]any{"field": key})
	}
	return &value, nil
}

// ParseQueryBool parses an optional boolean flag from the query string,
// defaulting to false when absent.
func ParseQueryBool(r *http.Request, key string) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return false, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be boolean").WithDetails(map[string]any{"field": key})
	}
	return value, nil
}

// ParseDate parses a required calendar date in DateFormat.
func ParseDate(field, raw string) (time.Time, error) {
	value, err := time.Parse(DateFormat, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, pkgerrors.New(pkgerrors.CodeValidation, "must be a calendar date").WithDetails(map[string]any{"field": field, "format": DateFormat})
	}
	return value, nil
}

// ParseDecimal parses a required decimal field, rejecting text that does not
// form a number.
func ParseDecimal(field, raw string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, pkgerrors.New(pkgerrors.CodeValidation, "must be numeric").WithDetails(map[string]any{"field": field})
	}
	return value, nil
}
