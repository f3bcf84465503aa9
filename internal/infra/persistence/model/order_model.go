package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. Rows are immutable after
// creation except for Status. Address snapshots are raw JSONB frozen at
// checkout time.
type OrderModel struct {
	ID                      uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DisplayNumber           int64           `gorm:"unique;not null"`
	UserID                  *uuid.UUID      `gorm:"type:uuid;index"`
	TotalAmount             decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status                  string          `gorm:"type:varchar(20);not null;default:'pending'"`
	ShippingAddressSnapshot []byte          `gorm:"type:jsonb"`
	BillingAddressSnapshot  []byte          `gorm:"type:jsonb"`
	CreatedAt               time.Time       `gorm:"index"`
	UpdatedAt               time.Time

	Items    []*OrderItemModel `gorm:"foreignKey:OrderID"`
	Payments []*PaymentModel   `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. ProductName and
// UnitPrice are copied at order-creation time so later product edits
// never alter historical orders.
type OrderItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity    int             `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// PaymentModel mirrors the 'payments' table. Gateway interaction happens
// outside this system; only the resulting record lands here.
type PaymentModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Provider      string          `gorm:"type:varchar(50);not null"`
	TransactionID string          `gorm:"type:varchar(255)"`
	Status        string          `gorm:"type:varchar(20);not null"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
