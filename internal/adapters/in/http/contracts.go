package http

import "time"

// Error is the uniform error payload returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterMemberRequest is the payload for POST /api/v1/members.
type RegisterMemberRequest struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	Street  string `json:"street"`
	ZipCode string `json:"zipCode"`
}

// ChangeMemberAddressRequest is the payload for PUT /api/v1/members/:id/address.
type ChangeMemberAddressRequest struct {
	City    string `json:"city"`
	Street  string `json:"street"`
	ZipCode string `json:"zipCode"`
}

// Member is the representation returned by the member listing.
type Member struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Street  string `json:"street"`
	ZipCode string `json:"zipCode"`
}

// AddItemRequest is the payload for POST /api/v1/items.
type AddItemRequest struct {
	Kind  string `json:"kind"`
	Name  string `json:"name"`
	Price int    `json:"price"`
	Stock int    `json:"stock"`
}

// UpdateItemRequest is the payload for PUT /api/v1/items/:id.
type UpdateItemRequest struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
	Stock int    `json:"stock"`
}

// Item is the representation returned by the catalog listings.
type Item struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Name  string `json:"name"`
	Price int    `json:"price"`
	Stock int    `json:"stock"`
}

// LowStockItem is the representation returned by the low stock report.
type LowStockItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

// PlaceOrderRequest is the payload for POST /api/v1/orders.
type PlaceOrderRequest struct {
	MemberID string             `json:"memberId"`
	Lines    []OrderLineRequest `json:"lines"`
}

// OrderLineRequest is a single line of a PlaceOrderRequest.
type OrderLineRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// OrderSummary is the representation returned by the order search.
type OrderSummary struct {
	ID         string      `json:"id"`
	MemberID   string      `json:"memberId,omitempty"`
	MemberName string      `json:"memberName,omitempty"`
	Status     string      `json:"status"`
	OrderDate  time.Time   `json:"orderDate"`
	City       string      `json:"city"`
	Street     string      `json:"street"`
	ZipCode    string      `json:"zipCode"`
	TotalPrice int         `json:"totalPrice"`
	Lines      []OrderLine `json:"lines"`
}

// OrderLine is a single line of an OrderSummary.
type OrderLine struct {
	ItemName  string `json:"itemName,omitempty"`
	ItemID    string `json:"itemId,omitempty"`
	UnitPrice int    `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}
