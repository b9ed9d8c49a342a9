package directory

import (
	"context"
	"fmt"

	baserepo "github.com/apexmotors/dealerdesk-backend/internal/repo"
	"github.com/apexmotors/dealerdesk-backend/pkg/db/models"
)

// Service exposes the customer and employee directories.
type Service interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
}

type service struct {
	repo Repository
}

// NewService wires a directory service with the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("directory repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	rows, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return nil, baserepo.MapReadError(err, "customers")
	}
	return rows, nil
}

func (s *service) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	rows, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return nil, baserepo.MapReadError(err, "employees")
	}
	return rows, nil
}
