package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shoplite/shopmanager-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Employee represents a shop employee
type Employee struct {
	ID        string            `gorm:"size:64;primaryKey" json:"id"`
	Name      string            `gorm:"size:255;not null" json:"name"`
	WhatsApp  string            `gorm:"size:50;not null" json:"whatsapp"`
	Email     *string           `gorm:"size:255" json:"email,omitempty"`
	Role      enum.EmployeeRole `gorm:"size:32;not null" json:"role"`
	Age       int               `json:"age"`
	Deleted   bool              `gorm:"default:false;index" json:"deleted"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// BeforeCreate assigns a backend identity when none is set
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}

// EntityID returns the employee's identity
func (e Employee) EntityID() string {
	return e.ID
}

// IsDeleted reports whether the employee is soft-deleted
func (e Employee) IsDeleted() bool {
	return e.Deleted
}

// Stamp assigns an identity and creation timestamp, used when the entity
// is minted locally instead of by the backend
func (e *Employee) Stamp(id string, at time.Time) {
	e.ID = id
	e.CreatedAt = at
	e.UpdatedAt = at
}

// MarkDeleted sets the soft-delete flag
func (e *Employee) MarkDeleted() {
	e.Deleted = true
}
