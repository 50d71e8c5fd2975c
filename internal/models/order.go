package models

import "time"

// OrderItem represents a single cart line within an order.
type OrderItem struct {
	ID       uint    `json:"-" bson:"-" gorm:"primaryKey"`
	OrderID  string  `json:"-" bson:"-" gorm:"type:varchar(36);index"`
	Name     string  `json:"name" bson:"name" validate:"required"`
	Quantity int     `json:"quantity" bson:"quantity" validate:"gte=1"`
	Price    float64 `json:"price" bson:"price" validate:"gte=0"` // Unit price as shown in the cart
}

// Order represents a checkout submission. Orders are write-once.
type Order struct {
	ID         string      `json:"id" bson:"_id" gorm:"primaryKey;type:varchar(36)"`
	Name       string      `json:"name" bson:"name" validate:"required"`
	Email      string      `json:"email" bson:"email" validate:"required,email"`
	Phone      string      `json:"phone,omitempty" bson:"phone,omitempty"`
	Address    string      `json:"address" bson:"address" validate:"required"`
	OrderItems []OrderItem `json:"orderItems" bson:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" validate:"required,min=1,dive"`
	Subtotal   float64     `json:"subtotal" bson:"subtotal" validate:"gte=0"`
	Shipping   float64     `json:"shipping" bson:"shipping" validate:"gte=0"`
	Total      float64     `json:"total" bson:"total" validate:"gte=0"`
	CreatedAt  time.Time   `json:"createdAt" bson:"createdAt"`
}
