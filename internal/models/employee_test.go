package models_test

import (
	"testing"

	"github.com/Houeta/staff-roster/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestNewEmployee_Defaults(t *testing.T) {
	t.Parallel()

	employee := models.NewEmployee()

	assert.Empty(t, employee.Name())
	assert.Equal(t, 0, employee.IDNumber())
	assert.Empty(t, employee.Department())
	assert.Empty(t, employee.Position())
	assert.Equal(t, models.Employee{}, employee)
}

func TestNewEmployeeWithID(t *testing.T) {
	t.Parallel()

	t.Run("name and id are set", func(t *testing.T) {
		t.Parallel()

		employee := models.NewEmployeeWithID("Mark Jones", 39119)

		assert.Equal(t, "Mark Jones", employee.Name())
		assert.Equal(t, 39119, employee.IDNumber())
		assert.Empty(t, employee.Department())
		assert.Empty(t, employee.Position())
	})

	t.Run("negative id leaves department and position empty", func(t *testing.T) {
		t.Parallel()

		employee := models.NewEmployeeWithID("X", -1)

		assert.Equal(t, "X", employee.Name())
		assert.Equal(t, -1, employee.IDNumber())
		assert.Empty(t, employee.Department())
		assert.Empty(t, employee.Position())
	})
}

func TestNewEmployeeWithDetails(t *testing.T) {
	t.Parallel()

	employee := models.NewEmployeeWithDetails("Susan Meyers", 47899, "Accounting", "Vice President")

	assert.Equal(t, "Susan Meyers", employee.Name())
	assert.Equal(t, 47899, employee.IDNumber())
	assert.Equal(t, "Accounting", employee.Department())
	assert.Equal(t, "Vice President", employee.Position())
}

func TestSetters_LastWriteWins(t *testing.T) {
	t.Parallel()

	employee := models.NewEmployeeWithDetails("Joy Rogers", 81774, "Manufacturing", "Engineer")

	employee.SetName("first")
	employee.SetName("second")
	assert.Equal(t, "second", employee.Name())

	employee.SetIDNumber(1)
	employee.SetIDNumber(-42)
	assert.Equal(t, -42, employee.IDNumber())

	employee.SetDepartment("IT")
	employee.SetDepartment("")
	assert.Empty(t, employee.Department())

	employee.SetPosition("Programmer")
	employee.SetPosition("Architect")
	assert.Equal(t, "Architect", employee.Position())
}

func TestSetters_FieldsAreIndependent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(e *models.Employee)
		want   models.Employee
	}{
		{
			name:   "name",
			mutate: func(e *models.Employee) { e.SetName("Alice") },
			want:   models.NewEmployeeWithDetails("Alice", 7, "Dept", "Pos"),
		},
		{
			name:   "id number",
			mutate: func(e *models.Employee) { e.SetIDNumber(99) },
			want:   models.NewEmployeeWithDetails("Name", 99, "Dept", "Pos"),
		},
		{
			name:   "department",
			mutate: func(e *models.Employee) { e.SetDepartment("Sales") },
			want:   models.NewEmployeeWithDetails("Name", 7, "Sales", "Pos"),
		},
		{
			name:   "position",
			mutate: func(e *models.Employee) { e.SetPosition("Clerk") },
			want:   models.NewEmployeeWithDetails("Name", 7, "Dept", "Clerk"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			employee := models.NewEmployeeWithDetails("Name", 7, "Dept", "Pos")
			tt.mutate(&employee)

			assert.Equal(t, tt.want, employee)
		})
	}
}

func TestGetters_Idempotent(t *testing.T) {
	t.Parallel()

	employee := models.NewEmployeeWithDetails("Mark Jones", 39119, "IT", "Programmer")

	assert.Equal(t, employee.Name(), employee.Name())
	assert.Equal(t, employee.IDNumber(), employee.IDNumber())
	assert.Equal(t, employee.Department(), employee.Department())
	assert.Equal(t, employee.Position(), employee.Position())
}
