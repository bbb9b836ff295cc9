package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	Address      string             `bson:"address,omitempty"`
	IsActive     bool               `bson:"is_active"`
	Role         string             `bson:"role"`
	CreatedAt    time.Time          `bson:"created_at"`
}

type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Slug        string             `bson:"slug"`
	Icon        string             `bson:"icon,omitempty"`
	Description string             `bson:"description,omitempty"`
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Price       float64            `bson:"price"`
	Category    string             `bson:"category"`
	Images      []string           `bson:"images"`
	Rating      float64            `bson:"rating"`
	RatingCount int                `bson:"rating_count"`
	InStock     bool               `bson:"in_stock"`
	Features    []string           `bson:"features"`
	CreatedAt   time.Time          `bson:"created_at"`
}

type Review struct {
	ID primitive.ObjectID `bson:"_id,omitempty"`
	// ProductID is the hex form of the product's _id. It is stored as a
	// plain string and never validated against the product collection.
	ProductID string    `bson:"product_id"`
	UserName  string    `bson:"user_name"`
	Rating    int       `bson:"rating"`
	Comment   string    `bson:"comment,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
}

type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ClientID  string             `bson:"client_id"`
	ProductID string             `bson:"product_id"`
	Qty       int                `bson:"qty"`
	UpdatedAt time.Time          `bson:"updated_at,omitempty"`
}

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// OrderLine is a snapshot of a cart row embedded in an order. It carries no
// reference back to a live cart item.
type OrderLine struct {
	ClientID  string `bson:"client_id"`
	ProductID string `bson:"product_id"`
	Qty       int    `bson:"qty"`
}

type Order struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	ClientID       string             `bson:"client_id"`
	Items          []OrderLine        `bson:"items"`
	Address        string             `bson:"address"`
	ShippingMethod string             `bson:"shipping_method"`
	PaymentMethod  string             `bson:"payment_method"`
	PromoCode      string             `bson:"promo_code,omitempty"`
	Subtotal       float64            `bson:"subtotal"`
	Shipping       float64            `bson:"shipping"`
	Total          float64            `bson:"total"`
	Status         string             `bson:"status"`
	CreatedAt      time.Time          `bson:"created_at"`
}
