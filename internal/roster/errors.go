package roster

import (
	"fmt"

	"github.com/spec-kit/buddy-service/internal/domain"
	"github.com/spec-kit/buddy-service/pkg/util/errorutil"
)

const (
	CodeInvalidDepartmentShape   = "INVALID_DEPARTMENT_SHAPE"
	CodeMissingEmployeeName      = "MISSING_EMPLOYEE_NAME"
	CodeEmptyRoster              = "EMPTY_ROSTER"
	CodeInsufficientDepartments  = "INSUFFICIENT_DEPARTMENTS"
	CodeInvalidPrivilegedManager = "INVALID_PRIVILEGED_MANAGER"
	CodeRosterParseFailed        = "ROSTER_PARSE_FAILED"
	CodeUnsupportedFormat        = "UNSUPPORTED_ROSTER_FORMAT"
)

// Sentinels for errors.Is. Returned errors carry message and details on top.
var (
	ErrInvalidDepartmentShape   = errorutil.Sentinel(CodeInvalidDepartmentShape)
	ErrMissingEmployeeName      = errorutil.Sentinel(CodeMissingEmployeeName)
	ErrEmptyRoster              = errorutil.Sentinel(CodeEmptyRoster)
	ErrInsufficientDepartments  = errorutil.Sentinel(CodeInsufficientDepartments)
	ErrInvalidPrivilegedManager = errorutil.Sentinel(CodeInvalidPrivilegedManager)
	ErrRosterParseFailed        = errorutil.Sentinel(CodeRosterParseFailed)
	ErrUnsupportedFormat        = errorutil.Sentinel(CodeUnsupportedFormat)
)

// MinDepartments is the smallest number of ordinary departments a roster needs.
const MinDepartments = 2

func invalidDepartmentShape(department string) error {
	return errorutil.NewUnprocessable(CodeInvalidDepartmentShape,
		fmt.Sprintf("department %q must contain a list of employees", department),
		map[string]any{"department": department})
}

func missingEmployeeName(department string) error {
	return errorutil.NewUnprocessable(CodeMissingEmployeeName,
		fmt.Sprintf("every employee in department %q needs a \"name\" field", department),
		map[string]any{"department": department})
}

func emptyRoster() error {
	return errorutil.NewUnprocessable(CodeEmptyRoster, "no employees found", nil)
}

func insufficientDepartments(count int) error {
	return errorutil.NewUnprocessable(CodeInsufficientDepartments,
		fmt.Sprintf("at least %d departments are required", MinDepartments),
		map[string]any{"departments": count, "required": MinDepartments})
}

func invalidPrivilegedManager(manager, reason string) error {
	return errorutil.NewUnprocessable(CodeInvalidPrivilegedManager,
		fmt.Sprintf("%s entry %q %s", domain.PrivilegedGroup, manager, reason),
		map[string]any{"manager": manager})
}

func parseFailed(format Format, err error) error {
	return errorutil.NewBadRequest(CodeRosterParseFailed,
		fmt.Sprintf("could not parse %s roster", format), err)
}
