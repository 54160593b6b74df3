package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a product in the shop inventory
type Product struct {
	ID          string    `gorm:"size:64;primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Price       float64   `gorm:"not null" json:"price"`
	Stock       *int      `json:"stock,omitempty"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	Deleted     bool      `gorm:"default:false;index" json:"deleted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate assigns a backend identity when none is set
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// EntityID returns the product's identity
func (p Product) EntityID() string {
	return p.ID
}

// IsDeleted reports whether the product is soft-deleted
func (p Product) IsDeleted() bool {
	return p.Deleted
}

// Stamp assigns an identity and creation timestamp, used when the entity
// is minted locally instead of by the backend
func (p *Product) Stamp(id string, at time.Time) {
	p.ID = id
	p.CreatedAt = at
	p.UpdatedAt = at
}

// MarkDeleted sets the soft-delete flag
func (p *Product) MarkDeleted() {
	p.Deleted = true
}
