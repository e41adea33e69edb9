package employees

import "github.com/Houeta/staff-roster/internal/models"

// DemoRoster returns the fixed set of employees shown by the demo, in display order.
func DemoRoster() []models.Employee {
	return []models.Employee{
		models.NewEmployeeWithDetails("Susan Meyers", 47899, "Accounting", "Vice President"),
		models.NewEmployeeWithDetails("Mark Jones", 39119, "IT", "Programmer"),
		models.NewEmployeeWithDetails("Joy Rogers", 81774, "Manufacturing", "Engineer"),
	}
}
