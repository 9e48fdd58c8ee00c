package roster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/buddy-service/internal/domain"
	"github.com/spec-kit/buddy-service/pkg/util/errorutil"
)

func employee(name, email string) Object {
	obj := Object{{Key: "name", Value: name}}
	if email != "" {
		obj = append(obj, Field{Key: "email", Value: email})
	}
	return obj
}

func manager(email string, departments ...string) Object {
	list := make([]any, 0, len(departments))
	for _, d := range departments {
		list = append(list, d)
	}
	return Object{{Key: "email", Value: email}, {Key: "departments", Value: list}}
}

func TestNormalizeFlattensStaffThenManagers(t *testing.T) {
	doc := Object{
		{Key: domain.PrivilegedGroup, Value: Object{
			{Key: "Alice", Value: manager("alice@example.com", "Engineering", "Sales")},
			{Key: "Dora", Value: manager("", "Sales")},
		}},
		{Key: "Engineering", Value: []any{employee("Bob", "bob@example.com"), employee("Eve", "")}},
		{Key: "Sales", Value: []any{employee("Carol", "")}},
	}

	r, err := Normalize(doc)
	require.NoError(t, err)

	names := make([]string, 0, len(r.Persons))
	for _, p := range r.Persons {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Bob", "Eve", "Carol", "Alice", "Dora"}, names)
	assert.Equal(t, 2, r.DepartmentCount)

	bob := r.Persons[0]
	assert.Equal(t, "Engineering", bob.Department)
	assert.Equal(t, "bob@example.com", bob.Email)
	assert.False(t, bob.Privileged)
	assert.Nil(t, bob.PrivilegedDepartments)

	alice := r.Persons[3]
	assert.True(t, alice.Privileged)
	assert.Equal(t, domain.PrivilegedGroup, alice.Department)
	assert.Equal(t, "alice@example.com", alice.Email)
	assert.Equal(t, []string{"Engineering", "Sales"}, alice.PrivilegedDepartments)

	assert.Equal(t, domain.PrivilegedIndex{
		"Engineering": {"Alice"},
		"Sales":       {"Alice", "Dora"},
	}, r.Index)
}

func TestNormalizeCountsEmptyDepartments(t *testing.T) {
	doc := Object{
		{Key: "Engineering", Value: []any{employee("Bob", "")}},
		{Key: "Sales", Value: []any{}},
	}
	r, err := Normalize(doc)
	require.NoError(t, err)
	assert.Len(t, r.Persons, 1)
	assert.Equal(t, 2, r.DepartmentCount)
}

func TestNormalizeNonStringEmailDefaultsToEmpty(t *testing.T) {
	doc := Object{
		{Key: "Engineering", Value: []any{Object{{Key: "name", Value: "Bob"}, {Key: "email", Value: 42.0}}}},
		{Key: "Sales", Value: []any{employee("Carol", "")}},
	}
	r, err := Normalize(doc)
	require.NoError(t, err)
	assert.Equal(t, "", r.Persons[0].Email)
}

func TestNormalizeTreatsListPrivilegedKeyAsDepartment(t *testing.T) {
	doc := Object{
		{Key: domain.PrivilegedGroup, Value: []any{employee("Zoe", "")}},
		{Key: "Sales", Value: []any{employee("Carol", "")}},
	}
	r, err := Normalize(doc)
	require.NoError(t, err)
	assert.Equal(t, 2, r.DepartmentCount)
	assert.Equal(t, domain.PrivilegedGroup, r.Persons[0].Department)
	assert.False(t, r.Persons[0].Privileged)
	assert.Empty(t, r.Index)
}

func TestNormalizeValidationFailures(t *testing.T) {
	tests := []struct {
		name       string
		doc        Object
		want       error
		department string
	}{
		{
			name: "department is not a list",
			doc: Object{
				{Key: "Engineering", Value: []any{employee("Bob", "")}},
				{Key: "Sales", Value: Object{{Key: "name", Value: "Carol"}}},
			},
			want:       ErrInvalidDepartmentShape,
			department: "Sales",
		},
		{
			name: "department is null",
			doc: Object{
				{Key: "Engineering", Value: nil},
				{Key: "Sales", Value: []any{employee("Carol", "")}},
			},
			want:       ErrInvalidDepartmentShape,
			department: "Engineering",
		},
		{
			name: "employee without name",
			doc: Object{
				{Key: "Engineering", Value: []any{employee("Bob", ""), Object{{Key: "email", Value: "x@example.com"}}}},
				{Key: "Sales", Value: []any{employee("Carol", "")}},
			},
			want:       ErrMissingEmployeeName,
			department: "Engineering",
		},
		{
			name: "employee with empty name",
			doc: Object{
				{Key: "Engineering", Value: []any{employee("Bob", "")}},
				{Key: "Sales", Value: []any{employee("", "")}},
			},
			want:       ErrMissingEmployeeName,
			department: "Sales",
		},
		{
			name: "employee is not an object",
			doc: Object{
				{Key: "Engineering", Value: []any{"Bob"}},
				{Key: "Sales", Value: []any{employee("Carol", "")}},
			},
			want:       ErrMissingEmployeeName,
			department: "Engineering",
		},
		{
			name: "no employees at all",
			doc: Object{
				{Key: "Engineering", Value: []any{}},
				{Key: "Sales", Value: []any{}},
			},
			want: ErrEmptyRoster,
		},
		{
			name: "empty document",
			doc:  Object{},
			want: ErrEmptyRoster,
		},
		{
			name: "single department",
			doc: Object{
				{Key: "Engineering", Value: []any{employee("Bob", ""), employee("Eve", "")}},
			},
			want: ErrInsufficientDepartments,
		},
		{
			name: "privileged group does not count as a department",
			doc: Object{
				{Key: domain.PrivilegedGroup, Value: Object{{Key: "Alice", Value: manager("", "Engineering")}}},
				{Key: "Engineering", Value: []any{employee("Bob", "")}},
			},
			want: ErrInsufficientDepartments,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Normalize(tt.doc)
			require.Error(t, err)
			assert.Nil(t, r)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)

			domainErr := errorutil.ToDomainError(err)
			assert.Equal(t, 422, domainErr.HTTPStatus)
			if tt.department != "" {
				assert.Equal(t, tt.department, domainErr.Details["department"])
				assert.Contains(t, domainErr.Message, tt.department)
			}
		})
	}
}

func TestNormalizeChecksPrivilegedGroupFirst(t *testing.T) {
	doc := Object{
		{Key: "Engineering", Value: "not a list"},
		{Key: domain.PrivilegedGroup, Value: Object{{Key: "Alice", Value: "CEO"}}},
	}
	_, err := Normalize(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPrivilegedManager)
	assert.Equal(t, "Alice", errorutil.ToDomainError(err).Details["manager"])
}

func TestNormalizeRejectsBadManagerDepartments(t *testing.T) {
	for name, entry := range map[string]Object{
		"missing":  {{Key: "email", Value: "a@example.com"}},
		"empty":    {{Key: "departments", Value: []any{}}},
		"not list": {{Key: "departments", Value: "Engineering"}},
		"non name": {{Key: "departments", Value: []any{"Engineering", 3.0}}},
	} {
		t.Run(name, func(t *testing.T) {
			doc := Object{
				{Key: domain.PrivilegedGroup, Value: Object{{Key: "Alice", Value: entry}}},
				{Key: "Engineering", Value: []any{employee("Bob", "")}},
				{Key: "Sales", Value: []any{employee("Carol", "")}},
			}
			_, err := Normalize(doc)
			assert.ErrorIs(t, err, ErrInvalidPrivilegedManager)
		})
	}
}
