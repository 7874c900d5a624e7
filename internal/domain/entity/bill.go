package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/keinsta/si-bills-api/internal/domain/billing"
	"gorm.io/gorm"
)

// Bill is the canonical, persisted invoice record. It is created
// exclusively by the billing service, which assigns the serial number,
// creation timestamp, and total. Clients treat it as read-only.
//
// JSON keys are the wire contract consumed by the invoice views, so they
// stay camelCase.
type Bill struct {
	ID            uuid.UUID            `gorm:"type:uuid;primary_key" json:"-"`
	SerialNumber  string               `gorm:"size:50;uniqueIndex;not null" json:"serialNumber"`
	Business      billing.BusinessInfo `gorm:"embedded;embeddedPrefix:business_" json:"business"`
	Products      []BillProduct        `gorm:"foreignKey:BillID" json:"products"`
	Discount      float64              `gorm:"type:decimal(5,2);default:0" json:"discount"`
	Tax           float64              `gorm:"type:decimal(5,2);default:0" json:"tax"`
	PendingAmount float64              `gorm:"type:decimal(15,2);default:0" json:"pendingAmount"`
	Total         float64              `gorm:"type:decimal(15,2);not null" json:"total"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"-"`
	DeletedAt     gorm.DeletedAt       `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// LineItems converts the persisted products into calculator line items,
// preserving order. The invoice renderer recomputes its breakdown from
// these rather than trusting any stored intermediate figures.
func (b *Bill) LineItems() []billing.LineItem {
	items := make([]billing.LineItem, len(b.Products))
	for i, p := range b.Products {
		items[i] = billing.LineItem{Name: p.Name, UnitPrice: p.UnitPrice, Quantity: p.Quantity}
	}
	return items
}

// BillProduct is a line item embedded in a persisted bill. Immutable once
// the bill is created.
type BillProduct struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"-"`
	BillID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Position  int            `gorm:"not null" json:"-"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	UnitPrice float64        `gorm:"type:decimal(15,2);not null" json:"price"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new bill product
func (p *BillProduct) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillProduct model
func (BillProduct) TableName() string {
	return "bill_products"
}
