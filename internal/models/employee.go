package models

// Employee represents an employee record. The zero value is a record with
// empty text fields and identifier 0.
type Employee struct {
	name       string
	idNumber   int
	department string
	position   string
}

// NewEmployee returns an employee with all fields at their defaults.
func NewEmployee() Employee {
	return Employee{}
}

// NewEmployeeWithID returns an employee with the given name and identifier.
// Department and position are left empty.
func NewEmployeeWithID(name string, idNumber int) Employee {
	return Employee{name: name, idNumber: idNumber}
}

// NewEmployeeWithDetails returns an employee with all four fields set.
func NewEmployeeWithDetails(name string, idNumber int, department, position string) Employee {
	return Employee{
		name:       name,
		idNumber:   idNumber,
		department: department,
		position:   position,
	}
}

// SetName overwrites the employee's name.
func (e *Employee) SetName(name string) {
	e.name = name
}

// SetIDNumber overwrites the employee's identifier.
func (e *Employee) SetIDNumber(idNumber int) {
	e.idNumber = idNumber
}

// SetDepartment overwrites the employee's department.
func (e *Employee) SetDepartment(department string) {
	e.department = department
}

// SetPosition overwrites the employee's position.
func (e *Employee) SetPosition(position string) {
	e.position = position
}

// Name returns the employee's name.
func (e *Employee) Name() string {
	return e.name
}

// IDNumber returns the employee's identifier.
func (e *Employee) IDNumber() int {
	return e.idNumber
}

// Department returns the employee's department.
func (e *Employee) Department() string {
	return e.department
}

// Position returns the employee's position.
func (e *Employee) Position() string {
	return e.position
}
