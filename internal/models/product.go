package models

import "time"

// Product represents a catalog entry. The catalog does not validate products.
type Product struct {
	ID          string    `json:"id" bson:"_id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	Stock       int       `json:"stock" bson:"stock"`
	ImageURL    string    `json:"imageUrl" bson:"imageUrl"`
	Category    string    `json:"category" bson:"category"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ProductPatch carries the fields of a partial product update. Nil fields are left untouched.
type ProductPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	ImageURL    *string  `json:"imageUrl"`
	Category    *string  `json:"category"`
}

// Fields returns the set fields keyed by their storage column name.
func (p ProductPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.Price != nil {
		fields["price"] = *p.Price
	}
	if p.Stock != nil {
		fields["stock"] = *p.Stock
	}
	if p.ImageURL != nil {
		fields["image_url"] = *p.ImageURL
	}
	if p.Category != nil {
		fields["category"] = *p.Category
	}
	return fields
}

// Apply copies the set fields onto product.
func (p ProductPatch) Apply(product *Product) {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.Stock != nil {
		product.Stock = *p.Stock
	}
	if p.ImageURL != nil {
		product.ImageURL = *p.ImageURL
	}
	if p.Category != nil {
		product.Category = *p.Category
	}
}
