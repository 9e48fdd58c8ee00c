package roster

import (
	"errors"

	"github.com/spec-kit/buddy-service/internal/domain"
)

// Normalize flattens a roster document into matchable persons. Ordinary staff
// come first in document order, followed by the privileged managers in group
// order. The privileged group is checked before any department.
func Normalize(doc Object) (*domain.Roster, error) {
	index := domain.PrivilegedIndex{}
	var managers []domain.Person

	departments := make([]Field, 0, len(doc))
	for _, f := range doc {
		if f.Key == domain.PrivilegedGroup {
			if group, ok := f.Value.(Object); ok {
				parsed, err := privilegedManagers(group, index)
				if err != nil {
					return nil, err
				}
				managers = parsed
				continue
			}
		}
		departments = append(departments, f)
	}

	persons := make([]domain.Person, 0, len(managers))
	for _, dept := range departments {
		employees, ok := dept.Value.([]any)
		if !ok {
			return nil, invalidDepartmentShape(dept.Key)
		}
		for _, raw := range employees {
			emp, _ := raw.(Object)
			name := emp.stringField("name")
			if name == "" {
				return nil, missingEmployeeName(dept.Key)
			}
			persons = append(persons, domain.Person{
				Name:       name,
				Email:      emp.stringField("email"),
				Department: dept.Key,
			})
		}
	}
	persons = append(persons, managers...)

	if len(persons) == 0 {
		return nil, emptyRoster()
	}
	if len(departments) < MinDepartments {
		return nil, insufficientDepartments(len(departments))
	}

	return &domain.Roster{
		Persons:         persons,
		Index:           index,
		DepartmentCount: len(departments),
	}, nil
}

func privilegedManagers(group Object, index domain.PrivilegedIndex) ([]domain.Person, error) {
	managers := make([]domain.Person, 0, len(group))
	for _, entry := range group {
		if entry.Key == "" {
			return nil, invalidPrivilegedManager(entry.Key, "needs a name")
		}
		obj, ok := entry.Value.(Object)
		if !ok {
			return nil, invalidPrivilegedManager(entry.Key, "must be an object")
		}
		depts, err := managerDepartments(obj)
		if err != nil {
			return nil, invalidPrivilegedManager(entry.Key, err.Error())
		}
		for _, d := range depts {
			index[d] = append(index[d], entry.Key)
		}
		managers = append(managers, domain.Person{
			Name:                  entry.Key,
			Email:                 obj.stringField("email"),
			Department:            domain.PrivilegedGroup,
			Privileged:            true,
			PrivilegedDepartments: depts,
		})
	}
	return managers, nil
}

func managerDepartments(obj Object) ([]string, error) {
	raw, ok := obj.Get("departments")
	if !ok {
		return nil, errors.New("needs a \"departments\" list")
	}
	list, ok := raw.([]any)
	if !ok || len(list) == 0 {
		return nil, errors.New("needs a non-empty \"departments\" list")
	}
	depts := make([]string, 0, len(list))
	for _, item := range list {
		name, ok := item.(string)
		if !ok || name == "" {
			return nil, errors.New("lists a department that is not a name")
		}
		depts = append(depts, name)
	}
	return depts, nil
}
