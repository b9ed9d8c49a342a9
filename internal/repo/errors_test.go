package repo

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	pkgerrors "github.com/apexmotors/dealerdesk-backend/pkg/errors"
)

func TestMapWriteErrorForeignKey(t *testing.T) {
	err := MapWriteError(&pgconn.PgError{Code: "23503", ConstraintName: "sales_vin_fkey"}, "sale")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeReferential {
		t.Fatalf("expected referential code, got %v", err)
	}
}

func TestMapWriteErrorStorage(t *testing.T) {
	err := MapWriteError(errors.New("connection refused"), "sale")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStorage {
		t.Fatalf("expected storage code, got %v", err)
	}
}

func TestMapWriteErrorPassesThroughTyped(t *testing.T) {
	original := pkgerrors.New(pkgerrors.CodeValidation, "bad input")
	err := MapWriteError(original, "sale")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("typed errors must pass through unchanged, got %v", err)
	}
}

func TestMapWriteErrorNil(t *testing.T) {
	if err := MapWriteError(nil, "sale"); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestMapReadErrorNotFound(t *testing.T) {
	err := MapReadError(gorm.ErrRecordNotFound, "vehicle")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found code, got %v", err)
	}
}

func TestMapReadErrorStorage(t *testing.T) {
	err := MapReadError(errors.New("connection reset"), "vehicles")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStorage {
		t.Fatalf("expected storage code, got %v", err)
	}
}
