package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shoplite/shopmanager-api/internal/domain/enum"
	"gorm.io/gorm"
)

// LineItem is one product/quantity/price tuple within a receipt. UnitPrice
// is the price at the time of sale, not a reference to the product's
// current price.
type LineItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	ReceiptID string  `gorm:"size:64;index" json:"-"`
	ProductID string  `gorm:"size:64;not null" json:"product_id"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`
}

// LineTotal returns the value of this line
func (i LineItem) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// TableName returns the table name for the LineItem model
func (LineItem) TableName() string {
	return "receipt_items"
}

// Receipt represents a finalized sale. Receipts are immutable once created;
// the only mutation in scope is soft deletion.
type Receipt struct {
	ID             string             `gorm:"size:64;primaryKey" json:"id"`
	CustomerID     string             `gorm:"size:64;not null;index" json:"customer_id"`
	EmployeeID     string             `gorm:"size:64;not null;index" json:"employee_id"`
	Items          []LineItem         `gorm:"foreignKey:ReceiptID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount    float64            `gorm:"not null" json:"total_amount"`
	PaymentMethod  enum.PaymentMethod `gorm:"size:32;not null" json:"payment_method"`
	Installments   int                `gorm:"default:1" json:"installments"`
	WarrantyMonths int                `gorm:"default:0" json:"warranty_months"`
	Notes          *string            `gorm:"type:text" json:"notes,omitempty"`
	Deleted        bool               `gorm:"default:false;index" json:"deleted"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// BeforeCreate assigns a backend identity when none is set
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}

// EntityID returns the receipt's identity
func (r Receipt) EntityID() string {
	return r.ID
}

// IsDeleted reports whether the receipt is soft-deleted
func (r Receipt) IsDeleted() bool {
	return r.Deleted
}

// Stamp assigns an identity and creation timestamp, used when the entity
// is minted locally instead of by the backend. A creation timestamp the
// caller already supplied is kept.
func (r *Receipt) Stamp(id string, at time.Time) {
	r.ID = id
	if r.CreatedAt.IsZero() {
		r.CreatedAt = at
	}
	r.UpdatedAt = at
}

// MarkDeleted sets the soft-delete flag
func (r *Receipt) MarkDeleted() {
	r.Deleted = true
}

// ComputedTotal returns the sum of line values
func (r Receipt) ComputedTotal() float64 {
	var total float64
	for _, item := range r.Items {
		total += item.LineTotal()
	}
	return total
}

// InstallmentValue returns the value of each installment
func (r Receipt) InstallmentValue() float64 {
	if r.Installments <= 1 {
		return r.TotalAmount
	}
	return r.TotalAmount / float64(r.Installments)
}
