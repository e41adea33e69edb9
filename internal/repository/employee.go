package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Houeta/staff-roster/internal/models"
	"github.com/jackc/pgx/v5"
)

func (r *Repository) observe(queryType string, startTime time.Time) {
	r.metrics.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(startTime).Seconds())
}

// SaveEmployee inserts a new employee record unless one with the same
// identifier already exists.
func (r *Repository) SaveEmployee(ctx context.Context, employee models.Employee) error {
	defer r.observe("save_employee", time.Now())

	query := `
		INSERT INTO employees (id_number, name, department, position)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id_number) DO NOTHING;
	`

	_, err := r.db.Exec(ctx, query,
		employee.IDNumber(), employee.Name(), employee.Department(), employee.Position())
	if err != nil {
		return fmt.Errorf("failed to save employee: %w", err)
	}

	return nil
}

// UpdateEmployee overwrites the stored fields of the employee with the same identifier.
func (r *Repository) UpdateEmployee(ctx context.Context, employee models.Employee) error {
	defer r.observe("update_employee", time.Now())

	query := `
		UPDATE employees
		SET name = $2, department = $3, position = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id_number = $1;
	`

	_, err := r.db.Exec(ctx, query,
		employee.IDNumber(), employee.Name(), employee.Department(), employee.Position())
	if err != nil {
		return fmt.Errorf("failed to update employee data: %w", err)
	}

	return nil
}

// GetEmployeeByID retrieves an employee by identifier. It returns ErrEmployeeNotFound
// when there is no such employee.
func (r *Repository) GetEmployeeByID(ctx context.Context, idNumber int) (models.Employee, error) {
	defer r.observe("get_employee_by_id", time.Now())

	query := `SELECT id_number, name, department, position FROM employees WHERE id_number=$1`

	var (
		name, department, position string
		storedID                   int
	)

	err := r.db.QueryRow(ctx, query, idNumber).Scan(&storedID, &name, &department, &position)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Employee{}, fmt.Errorf("failed to get employee by id %d: %w", idNumber, ErrEmployeeNotFound)
	}
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return models.NewEmployeeWithDetails(name, storedID, department, position), nil
}

// ListEmployees returns every stored employee ordered by identifier.
func (r *Repository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	defer r.observe("list_employees", time.Now())

	query := `SELECT id_number, name, department, position FROM employees ORDER BY id_number`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []models.Employee
	for rows.Next() {
		var (
			name, department, position string
			idNumber                   int
		)
		if err = rows.Scan(&idNumber, &name, &department, &position); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, models.NewEmployeeWithDetails(name, idNumber, department, position))
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee rows: %w", err)
	}

	return employees, nil
}
