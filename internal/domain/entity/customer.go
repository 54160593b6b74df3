package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a shop customer
type Customer struct {
	ID        string    `gorm:"size:64;primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Phone     string    `gorm:"size:50;not null" json:"phone"`
	Email     *string   `gorm:"size:255" json:"email,omitempty"`
	Address   *string   `gorm:"type:text" json:"address,omitempty"`
	Deleted   bool      `gorm:"default:false;index" json:"deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a backend identity when none is set
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// EntityID returns the customer's identity
func (c Customer) EntityID() string {
	return c.ID
}

// IsDeleted reports whether the customer is soft-deleted
func (c Customer) IsDeleted() bool {
	return c.Deleted
}

// Stamp assigns an identity and creation timestamp, used when the entity
// is minted locally instead of by the backend
func (c *Customer) Stamp(id string, at time.Time) {
	c.ID = id
	c.CreatedAt = at
	c.UpdatedAt = at
}

// MarkDeleted sets the soft-delete flag
func (c *Customer) MarkDeleted() {
	c.Deleted = true
}
