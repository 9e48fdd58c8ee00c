package domain

// PrivilegedGroup is the reserved roster key holding privileged managers. It is
// also the department label those managers carry.
const PrivilegedGroup = "C-Level"

// Person is one matchable roster entry.
type Person struct {
	Name       string
	Email      string
	Department string
	Privileged bool
	// PrivilegedDepartments is nil for ordinary staff.
	PrivilegedDepartments []string
}

// ResponsibleFor reports whether a privileged manager oversees department.
func (p Person) ResponsibleFor(department string) bool {
	for _, d := range p.PrivilegedDepartments {
		if d == department {
			return true
		}
	}
	return false
}

// Summary strips a person down to what results expose.
func (p Person) Summary() PersonSummary {
	return PersonSummary{Name: p.Name, Email: p.Email, Department: p.Department}
}

// PrivilegedIndex maps a department to the names of the privileged managers
// responsible for it, in roster order.
type PrivilegedIndex map[string][]string

// Has reports whether name is a manager of record for department.
func (idx PrivilegedIndex) Has(department, name string) bool {
	for _, n := range idx[department] {
		if n == name {
			return true
		}
	}
	return false
}

// Roster is the normalized, flat form of a roster document.
type Roster struct {
	Persons []Person
	Index   PrivilegedIndex
	// DepartmentCount excludes the privileged group.
	DepartmentCount int
}
