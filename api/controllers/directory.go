package controllers

import (
	"net/http"

	"github.com/apexmotors/dealerdesk-backend/api/responses"
	"github.com/apexmotors/dealerdesk-backend/internal/directory"
	pkgerrors "github.com/apexmotors/dealerdesk-backend/pkg/errors"
	"github.com/apexmotors/dealerdesk-backend/pkg/logger"
)

func CustomerList(svc directory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "directory service unavailable"))
			return
		}

		rows, err := svc.ListCustomers(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"customers": rows})
	}
}

func EmployeeList(svc directory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "directory service unavailable"))
			return
		}

		rows, err := svc.ListEmployees(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"employees": rows})
	}
}
