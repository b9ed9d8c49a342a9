package repo

import (
	"fmt"

	"github.com/apexmotors/dealerdesk-backend/pkg/db"
	pkgerrors "github.com/apexmotors/dealerdesk-backend/pkg/errors"
)

// MapWriteError classifies a storage error raised while inserting the named
// entity. A foreign key violation means the caller referenced a row that does
// not exist; everything else is a storage fault.
func MapWriteError(err error, entity string) error {
	if err == nil {
		return nil
	}
	if typed := pkgerrors.As(err); typed != nil {
		return typed
	}
	if db.IsForeignKeyViolation(err) {
		return pkgerrors.Wrap(pkgerrors.CodeReferential, err, fmt.Sprintf("%s references a missing record", entity))
	}
	return pkgerrors.Wrap(pkgerrors.CodeStorage, err, fmt.Sprintf("inserting %s", entity))
}

// MapReadError classifies a storage error raised by a read of the named
// entity. GORM's missing-record sentinel becomes a not-found error; empty
// list results never reach this path.
func MapReadError(err error, entity string) error {
	if err == nil {
		return nil
	}
	if typed := pkgerrors.As(err); typed != nil {
		return typed
	}
	if db.IsNotFound(err) {
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, fmt.Sprintf("%s not found", entity))
	}
	return pkgerrors.Wrap(pkgerrors.CodeStorage, err, fmt.Sprintf("reading %s", entity))
}
