package model

import (
	"time"
)

// Order represents the database model for orders
type Order struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;index"`
	Reference string `gorm:"size:32;not null;uniqueIndex:ux_orders_reference"`
	// Quantity is stored as smallint, so values outside its range fail on write
	Quantity  int32     `gorm:"type:smallint;not null"`
	CreatedAt time.Time `gorm:"not null"`

	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE"`
}

// TableName specifies the table name for Order
func (Order) TableName() string {
	return "orders"
}

// All returns the models owned by the service, in migration order
func All() []any {
	return []any{&User{}, &Order{}}
}
