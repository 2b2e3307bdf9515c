package shopapi

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the catalog record served by the shop API.
type Product struct {
	ID           string          `json:"_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Image        string          `json:"image,omitempty"`
	Category     string          `json:"category,omitempty"`
	Sizes        []string        `json:"sizes,omitempty"`
	Colors       []string        `json:"colors,omitempty"`
	CountInStock int             `json:"countInStock"`
	Featured     bool            `json:"featured,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ProductInput is the admin create/update payload.
type ProductInput struct {
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Image        string          `json:"image,omitempty"`
	Category     string          `json:"category,omitempty"`
	Sizes        []string        `json:"sizes,omitempty"`
	Colors       []string        `json:"colors,omitempty"`
	CountInStock int             `json:"countInStock"`
	Featured     bool            `json:"featured"`
}

// ProductQuery mirrors the list endpoint's query string filters.
type ProductQuery struct {
	Featured bool
	Sort     string
	Limit    int
	Category string
	Search   string
}

// User is the profile record attached to a session.
type User struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// UpdateUserInput is the admin user edit payload.
type UpdateUserInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// OrderItem is one purchased line inside an order.
type OrderItem struct {
	Product string          `json:"product"`
	Name    string          `json:"name"`
	Qty     int             `json:"qty"`
	Price   decimal.Decimal `json:"price"`
	Image   string          `json:"image,omitempty"`
	Size    *string         `json:"size"`
	Color   *string         `json:"color"`
}

// ShippingAddress is collected at checkout.
type ShippingAddress struct {
	FullName   string `json:"fullName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

// PaymentResult is the payment processor's view of an order, when present.
type PaymentResult struct {
	ID     string `json:"id,omitempty"`
	Status string `json:"status,omitempty"`
}

// OrderView is the loosely-shaped order record the shop API returns. The
// endpoints populate different subsets of these fields depending on their
// vintage; nothing beyond the ID can be relied on.
type OrderView struct {
	ID              string          `json:"_id"`
	User            *User           `json:"user,omitempty"`
	OrderItems      []OrderItem     `json:"orderItems,omitempty"`
	ShippingAddress ShippingAddress `json:"shippingAddress,omitempty"`
	PaymentMethod   string          `json:"paymentMethod,omitempty"`
	ItemsPrice      decimal.Decimal `json:"itemsPrice"`
	ShippingPrice   decimal.Decimal `json:"shippingPrice"`
	TaxPrice        decimal.Decimal `json:"taxPrice"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	Status          string          `json:"status,omitempty"`
	IsPaid          bool            `json:"isPaid,omitempty"`
	IsDelivered     bool            `json:"isDelivered,omitempty"`
	IsCancelled     bool            `json:"isCancelled,omitempty"`
	TrackingNumber  string          `json:"trackingNumber,omitempty"`
	PaymentResult   *PaymentResult  `json:"paymentResult,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// CreateOrderInput is the checkout payload.
type CreateOrderInput struct {
	OrderItems      []OrderItem     `json:"orderItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	ItemsPrice      decimal.Decimal `json:"itemsPrice"`
	ShippingPrice   decimal.Decimal `json:"shippingPrice"`
	TaxPrice        decimal.Decimal `json:"taxPrice"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
}

// DashboardStats is the admin dashboard summary. PendingOrders is optional
// because older API versions never computed it.
type DashboardStats struct {
	TotalSales    decimal.Decimal `json:"totalSales"`
	TotalOrders   int             `json:"totalOrders"`
	TotalProducts int             `json:"totalProducts"`
	PendingOrders *int            `json:"pendingOrders,omitempty"`
}
