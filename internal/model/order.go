package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductCategory string

const (
	CategoryPlastic ProductCategory = "Plastic Products"
	CategoryPaper   ProductCategory = "Paper Products"
	CategoryGlass   ProductCategory = "Glass Products"
	CategoryMetal   ProductCategory = "Metal Products"
	CategoryTextile ProductCategory = "Textile & Fabric Products"
	CategoryWood    ProductCategory = "Wood Products"
	CategoryRubber  ProductCategory = "Rubber Products"
	CategoryEWaste  ProductCategory = "E-Waste Products"
	CategoryOrganic ProductCategory = "Organic Waste Products"
	CategoryMixed   ProductCategory = "Mixed Products"
)

func (c ProductCategory) IsValid() bool {
	switch c {
	case CategoryPlastic, CategoryPaper, CategoryGlass, CategoryMetal,
		CategoryTextile, CategoryWood, CategoryRubber, CategoryEWaste,
		CategoryOrganic, CategoryMixed:
		return true
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// DeliveryStatus is the buyer-entry state machine. It is independent of
// PickupStatus and the two are never conflated.
type DeliveryStatus string

const (
	DeliveryRequested DeliveryStatus = "requested"
	DeliveryDelivered DeliveryStatus = "delivered"
)

// Order is a seller's listing. TotalSold never exceeds Quantity.
type Order struct {
	ID          int64           `json:"id"`
	SellerID    int64           `json:"seller_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    ProductCategory `json:"category"`
	Quantity    int64           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	TotalSold   int64           `json:"total_sold"`
	Address     string          `json:"address"`
	ImageURL    string          `json:"image_url"`
	OrderedAt   time.Time       `json:"ordered_at"`
}

// OrderRequest is one buyer entry against a listing. Price must equal
// quantity times the listing price at request time.
type OrderRequest struct {
	ID             int64           `json:"id"`
	OrderID        int64           `json:"order_id"`
	BuyerID        int64           `json:"buyer_id"`
	Quantity       int64           `json:"quantity"`
	Price          decimal.Decimal `json:"price"`
	Address        string          `json:"address"`
	PaymentStatus  PaymentStatus   `json:"payment_status"`
	DeliveryStatus DeliveryStatus  `json:"delivery_status"`
	DeliveredBy    *int64          `json:"delivered_by"`
	DeliveredAt    *time.Time      `json:"delivered_at"`
	RequestedAt    time.Time       `json:"requested_at"`
}

type CartItem struct {
	UserID  int64     `json:"user_id"`
	OrderID int64     `json:"order_id"`
	AddedAt time.Time `json:"added_at"`
}

type CreateOrderDTO struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    ProductCategory `json:"category"`
	Quantity    int64           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Address     string          `json:"address"`
	Image       []byte          `json:"-"`
	ImageType   string          `json:"-"`
}

type OrderResponse struct {
	Message string `json:"message"`
	Order   *Order `json:"order"`
}

type OrderListResponse struct {
	Message string  `json:"message"`
	Orders  []Order `json:"orders"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type RequestOrderDTO struct {
	OrderID    int64           `json:"orderId"`
	Quantity   int64           `json:"quantity"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Address    string          `json:"address"`
}

type CartDTO struct {
	OrderID int64 `json:"orderId"`
}

type CancelOrderDTO struct {
	OrderID int64 `json:"orderId"`
}
