package dto

import "time"

// --- Auth ---

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// --- Catalog ---

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
}

type CreateProductRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Category    string   `json:"category" binding:"required"`
	Images      []string `json:"images"`
	Rating      *float64 `json:"rating" binding:"omitempty,gte=0,lte=5"`
	RatingCount *int     `json:"rating_count" binding:"omitempty,gte=0"`
	InStock     *bool    `json:"in_stock"`
	Features    []string `json:"features"`
}

type ListProductsRequest struct {
	Query    string   `form:"q"`
	Category string   `form:"category"`
	MinPrice *float64 `form:"min_price" binding:"omitempty,gte=0"`
	MaxPrice *float64 `form:"max_price" binding:"omitempty,gte=0"`
	Sort     string   `form:"sort,default=-created_at"`
	Page     int      `form:"page,default=1" binding:"min=1"`
	Limit    int      `form:"limit,default=12" binding:"min=1,max=60"`
}

type ProductResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Images      []string  `json:"images"`
	Rating      float64   `json:"rating"`
	RatingCount int       `json:"rating_count"`
	InStock     bool      `json:"in_stock"`
	Features    []string  `json:"features"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Pages int64             `json:"pages"`
}

// --- Reviews ---

type AddReviewRequest struct {
	UserName string `json:"user_name" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment"`
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// --- Cart ---

type AddCartItemRequest struct {
	ClientID  string `json:"client_id" binding:"required"`
	ProductID string `json:"product_id" binding:"required"`
	Qty       int    `json:"qty" binding:"omitempty,min=1"`
}

type UpdateCartItemRequest struct {
	Qty int `json:"qty" binding:"required,min=1"`
}

// CartItemResponse is a cart row annotated with its resolved product, or a
// null product when the stored product_id does not resolve.
type CartItemResponse struct {
	ID        string           `json:"id"`
	ClientID  string           `json:"client_id"`
	ProductID string           `json:"product_id"`
	Qty       int              `json:"qty"`
	UpdatedAt *time.Time       `json:"updated_at,omitempty"`
	Product   *ProductResponse `json:"product"`
}

// --- Orders ---

type OrderLineRequest struct {
	ClientID  string `json:"client_id" binding:"required"`
	ProductID string `json:"product_id" binding:"required"`
	Qty       int    `json:"qty" binding:"omitempty,min=1"`
}

type CreateOrderRequest struct {
	ClientID       string             `json:"client_id" binding:"required"`
	Items          []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
	Address        string             `json:"address" binding:"required"`
	ShippingMethod string             `json:"shipping_method" binding:"required"`
	PaymentMethod  string             `json:"payment_method" binding:"required"`
	PromoCode      string             `json:"promo_code"`
	Subtotal       *float64           `json:"subtotal" binding:"required"`
	Shipping       *float64           `json:"shipping" binding:"required"`
	Total          *float64           `json:"total" binding:"required"`
	Status         string             `json:"status" binding:"omitempty,oneof=pending paid shipped delivered cancelled"`
}

type OrderLineResponse struct {
	ClientID  string `json:"client_id"`
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

type OrderResponse struct {
	ID             string              `json:"id"`
	ClientID       string              `json:"client_id"`
	Items          []OrderLineResponse `json:"items"`
	Address        string              `json:"address"`
	ShippingMethod string              `json:"shipping_method"`
	PaymentMethod  string              `json:"payment_method"`
	PromoCode      string              `json:"promo_code,omitempty"`
	Subtotal       float64             `json:"subtotal"`
	Shipping       float64             `json:"shipping"`
	Total          float64             `json:"total"`
	Status         string              `json:"status"`
	CreatedAt      time.Time           `json:"created_at"`
}
