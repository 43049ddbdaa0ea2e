package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"restaurant_manager/constants"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderItem is a snapshot of a MenuItem taken at placement time plus the
// selected quantity. Later menu edits never touch placed orders.
type OrderItem struct {
	MenuItemID  uint    `json:"menuItemId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageUrl    string  `json:"imageUrl"`
	Quantity    int     `json:"quantity"`
}

// OrderItems is stored as a single jsonb column.
type OrderItems []OrderItem

func (items OrderItems) Value() (driver.Value, error) {
	return json.Marshal(items)
}

func (items *OrderItems) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return errors.New("cannot scan order items")
		}
	}
	return json.Unmarshal(bytes, items)
}

type Order struct {
	ID               string     `gorm:"type:uuid;primaryKey" json:"id"`
	TokenNumber      int        `gorm:"not null" json:"tokenNumber"`
	Items            OrderItems `gorm:"type:jsonb;not null" json:"items"`
	TotalPrice       float64    `gorm:"not null" json:"totalPrice"`
	Status           string     `gorm:"not null;default:'pending';index" json:"status"`
	CustomerName     string     `gorm:"default:'Guest'" json:"customerName"`
	CustomerPhone    string     `json:"customerPhone"`
	VerificationCode string     `gorm:"size:8" json:"verificationCode"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// statusFlow lists the permitted targets from each status. served and
// cancelled have no outgoing edges.
var statusFlow = map[string][]string{
	constants.STATUS_PENDING:   {constants.STATUS_PREPARING, constants.STATUS_CANCELLED},
	constants.STATUS_PREPARING: {constants.STATUS_READY, constants.STATUS_CANCELLED},
	constants.STATUS_READY:     {constants.STATUS_SERVED, constants.STATUS_CANCELLED},
	constants.STATUS_SERVED:    {},
	constants.STATUS_CANCELLED: {},
}

func IsValidStatus(status string) bool {
	_, ok := statusFlow[status]
	return ok
}

// CanTransition reports whether target is reachable from current in one step.
func CanTransition(current, target string) bool {
	for _, next := range statusFlow[current] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminalStatus reports whether no transition leaves the given status.
func IsTerminalStatus(status string) bool {
	return len(statusFlow[status]) == 0 && IsValidStatus(status)
}

// IsActiveStatus reports whether an order still counts for the dashboard and
// for token uniqueness (not served, not cancelled).
func IsActiveStatus(status string) bool {
	return IsValidStatus(status) && !IsTerminalStatus(status)
}

// CartItem is what checkout sends per line: a menu item reference and a
// quantity. Prices are never trusted from the client.
type CartItem struct {
	MenuItemID uint `json:"menuItemId" validate:"required,gt=0"`
	Quantity   int  `json:"quantity" validate:"required,gte=1"`
}

type PlaceOrderInput struct {
	Items         []CartItem `json:"items" validate:"required,min=1,dive"`
	CustomerName  string     `json:"customerName" validate:"omitempty,max=100"`
	CustomerPhone string     `json:"customerPhone" validate:"omitempty,max=20"`
	Pin           string     `json:"pin" validate:"required,len=4"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required,oneof=preparing ready served cancelled"`
}

// OrderEvent is the fan-out payload pushed to dashboard and tracking
// subscribers. Type is one of INSERT, UPDATE, DELETE.
type OrderEvent struct {
	Type  string `json:"type"`
	Order Order  `json:"order"`
}
