package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// EmployeeRole represents the role of an employee in the shop
type EmployeeRole string

const (
	EmployeeRoleAdmin   EmployeeRole = "admin"
	EmployeeRoleManager EmployeeRole = "manager"
	EmployeeRoleSeller  EmployeeRole = "seller"
)

// IsValid reports whether r is one of the accepted roles
func (r EmployeeRole) IsValid() bool {
	switch r {
	case EmployeeRoleAdmin, EmployeeRoleManager, EmployeeRoleSeller:
		return true
	}
	return false
}

func (r EmployeeRole) String() string {
	return string(r)
}

func (r EmployeeRole) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(r))
}

func (r *EmployeeRole) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*r = EmployeeRole(str)
	return nil
}

func (r EmployeeRole) Value() (driver.Value, error) {
	return string(r), nil
}

func (r *EmployeeRole) Scan(value interface{}) error {
	if value == nil {
		*r = EmployeeRoleSeller
		return nil
	}
	switch v := value.(type) {
	case string:
		*r = EmployeeRole(v)
	case []byte:
		*r = EmployeeRole(string(v))
	}
	return nil
}
