package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BeforeCreate assigns an id when the caller didn't. Done in the
// application rather than a DB default so the same models work on
// the sqlite databases used in tests.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// OrderStatus is a workflow stage. The string values are the display
// labels the dashboard renders, so they are part of the API contract.
type OrderStatus string

const (
	StatusFabricPending OrderStatus = "Fabric Order Pending"
	StatusInTransit     OrderStatus = "Fabric In Transit"
	StatusStitching     OrderStatus = "Stitching"
	StatusInstallation  OrderStatus = "Hardware/Material Installation"
	StatusCompleted     OrderStatus = "Completed"
)

// AllStatuses returns the workflow stages in board order.
func AllStatuses() []OrderStatus {
	return []OrderStatus{
		StatusFabricPending,
		StatusInTransit,
		StatusStitching,
		StatusInstallation,
		StatusCompleted,
	}
}

// Order is a fabrication order for one customer, holding the measured
// windows and workflow assignments.
type Order struct {
	BaseModel
	CustomerName string        `gorm:"type:varchar(200);not null;index"`
	Phone        string        `gorm:"type:varchar(50);not null;index"`
	Address      string        `gorm:"type:varchar(500)"`
	Showroom     string        `gorm:"type:varchar(100);not null;default:'Main Showroom';index"`
	Status       OrderStatus   `gorm:"type:varchar(50);not null;default:'Fabric Order Pending';index"`
	DueDate      *time.Time    `gorm:"column:due_date"`
	Tailor       string        `gorm:"type:varchar(100)"`
	Fitter       string        `gorm:"type:varchar(100)"`
	Entries      []WindowEntry `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// WindowEntry is one measured window on an order. Panels, Quantity,
// Track and SQFT are derived from the measurements on every save and
// never trusted from the caller.
type WindowEntry struct {
	BaseModel
	OrderID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	WindowID   string         `gorm:"type:varchar(32);not null;column:window_id"`
	Position   int            `gorm:"not null"`
	Name       string         `gorm:"type:varchar(200);not null;default:'Window'"`
	StitchType string         `gorm:"type:varchar(100);not null;column:stitch_type"`
	LiningType string         `gorm:"type:varchar(100);not null;column:lining_type"`
	Width      float64        `gorm:"not null;default:0"`
	Height     float64        `gorm:"not null;default:0"`
	Panels     int            `gorm:"not null;default:0"`
	Quantity   float64        `gorm:"not null;default:0"`
	Track      float64        `gorm:"not null;default:0"`
	SQFT       float64        `gorm:"not null;default:0;column:sqft"`
	Notes      string         `gorm:"type:text"`
	Images     pq.StringArray `gorm:"type:text[]"`
}

// User is a dashboard login account.
type User struct {
	BaseModel
	Username     string `gorm:"type:varchar(100);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(200);not null;column:password_hash"`
	DisplayName  string `gorm:"type:varchar(200);column:display_name"`
	Role         string `gorm:"type:varchar(50);not null;default:'staff'"`
	IsActive     bool   `gorm:"not null;default:true;column:is_active"`
}
