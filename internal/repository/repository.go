package repository

import (
	"context"
	"errors"

	"github.com/Houeta/staff-roster/internal/metrics"
	"github.com/Houeta/staff-roster/internal/models"
)

// ErrEmployeeNotFound is returned when no employee has the requested identifier.
var ErrEmployeeNotFound = errors.New("employee not found")

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// EmployeeRepoIface represents the interface for interacting with employee data in the repository.
type EmployeeRepoIface interface {
	SaveEmployee(ctx context.Context, employee models.Employee) error
	UpdateEmployee(ctx context.Context, employee models.Employee) error
	GetEmployeeByID(ctx context.Context, idNumber int) (models.Employee, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
}

func NewEmployeeRepository(db Database, metrics *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: metrics}
}
