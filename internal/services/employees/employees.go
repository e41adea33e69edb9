package employees

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Houeta/staff-roster/internal/metrics"
	"github.com/Houeta/staff-roster/internal/models"
	"github.com/Houeta/staff-roster/internal/repository"
)

const cardFormat = "Name: %s\nID Number: %d\nDepartment: %s\nPosition: %s\n\n"

type Staff struct {
	log     *slog.Logger
	repo    repository.EmployeeRepoIface
	metrics *metrics.Metrics
}

// NewStaff creates the staff service. repo may be nil, in which case Store does nothing.
func NewStaff(log *slog.Logger, repo repository.EmployeeRepoIface, metrics *metrics.Metrics) *Staff {
	return &Staff{log: log, repo: repo, metrics: metrics}
}

func (s *Staff) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "employee"),
	)
}

// Display writes every employee of roster to w, in order, as a four-line card
// followed by a blank line.
func (s *Staff) Display(ctx context.Context, w io.Writer, roster []models.Employee) error {
	const opn = "Employee.Display"
	log := s.initLogger(opn)

	for _, employee := range roster {
		if _, err := fmt.Fprintf(w, cardFormat,
			employee.Name(), employee.IDNumber(), employee.Department(), employee.Position()); err != nil {
			return fmt.Errorf("failed to display employee '%s': %w", employee.Name(), err)
		}
		s.metrics.RecordsDisplayed.Inc()
	}

	log.DebugContext(ctx, "Roster displayed", "count", len(roster))

	return nil
}

// Store saves new employees of roster and updates those whose stored copy differs.
// Identical stored copies are skipped.
func (s *Staff) Store(ctx context.Context, roster []models.Employee) error {
	const opn = "Employee.Store"
	log := s.initLogger(opn)

	if s.repo == nil {
		log.DebugContext(ctx, "Roster store is disabled, skipped")
		return nil
	}

	for _, employee := range roster {
		existed, existedEmployee, err := IsEmployeeExists(ctx, employee.IDNumber(), s.repo)
		if err != nil {
			return err
		}

		switch {
		case existed && existedEmployee == employee:
			log.DebugContext(ctx, "employee is existed, skipped", "name", employee.Name())
			s.metrics.RecordsStored.WithLabelValues("skipped").Inc()
		case existed:
			if err = s.repo.UpdateEmployee(ctx, employee); err != nil {
				return fmt.Errorf("failed to update employee: '%s': %w", employee.Name(), err)
			}
			s.metrics.RecordsStored.WithLabelValues("updated").Inc()
		default:
			if err = s.repo.SaveEmployee(ctx, employee); err != nil {
				return fmt.Errorf("failed to save new employee %s: %w", employee.Name(), err)
			}
			s.metrics.RecordsStored.WithLabelValues("saved").Inc()
		}
	}

	stored, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return fmt.Errorf("failed to list stored employees: %w", err)
	}

	log.InfoContext(ctx, "Roster stored", "count", len(roster), "stored_total", len(stored))

	return nil
}

// IsEmployeeExists checks if an employee with the given identifier exists in the repository.
// A missing employee is not an error; any other repository failure is.
func IsEmployeeExists(
	ctx context.Context,
	idNumber int,
	repo repository.EmployeeRepoIface,
) (bool, models.Employee, error) {
	employee, err := repo.GetEmployeeByID(ctx, idNumber)
	if errors.Is(err, repository.ErrEmployeeNotFound) {
		return false, models.Employee{}, nil
	}
	if err != nil {
		return false, models.Employee{}, fmt.Errorf("failed to look up employee %d: %w", idNumber, err)
	}

	return true, employee, nil
}
