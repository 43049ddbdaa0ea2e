package helper

import (
	"context"
	"errors"
	"fmt"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// SnapshotMenuItem copies a menu row into an order line. The copy is frozen:
// later menu edits never reach it. Unavailable items are rejected here, before
// anything is persisted.
func SnapshotMenuItem(menuItem model.MenuItem, quantity int) (model.OrderItem, error) {
	if !menuItem.IsAvailable {
		return model.OrderItem{}, fmt.Errorf("menu item %q is not available", menuItem.Name)
	}

	var item model.OrderItem
	if err := copier.Copy(&item, &menuItem); err != nil {
		return model.OrderItem{}, err
	}
	item.MenuItemID = menuItem.ID
	item.Quantity = quantity
	return item, nil
}

// BuildOrderItems turns cart lines into menu snapshots. Prices come from the
// menu rows at this moment, never from the client.
func BuildOrderItems(tx *gorm.DB, cart []model.CartItem) (model.OrderItems, error) {
	items := make(model.OrderItems, 0, len(cart))
	for _, line := range cart {
		var menuItem model.MenuItem
		if err := tx.First(&menuItem, line.MenuItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, constants.ErrNotFound
			}
			return nil, err
		}

		item, err := SnapshotMenuItem(menuItem, line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// ComputeTotal sums price x quantity over the snapshotted items.
func ComputeTotal(items model.OrderItems) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// VerifyPin is the whole verification gate: exact string match against the
// current shop-wide PIN. A 4-digit shared secret is a deterrent for a staffed
// counter, not a security boundary.
func VerifyPin(supplied, current string) bool {
	return supplied == current
}

// PlaceOrder checks the verification PIN, snapshots the cart, assigns a token
// number and persists the order in one transaction. The PIN value is stored on
// the order as a historical copy so later rotation never invalidates the
// record a waiting customer sees.
func PlaceOrder(input model.PlaceOrderInput) (model.Order, error) {
	currentPin, err := GetSetting(constants.SETTING_VERIFICATION_PIN)
	if err != nil {
		return model.Order{}, err
	}
	if !VerifyPin(input.Pin, currentPin) {
		return model.Order{}, constants.ErrVerificationFailed
	}

	customerName := input.CustomerName
	if customerName == "" {
		customerName = "Guest"
	}

	var order model.Order
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		items, err := BuildOrderItems(tx, input.Items)
		if err != nil {
			return err
		}

		token, err := NextTokenNumber(tx, time.Now())
		if err != nil {
			return err
		}

		order = model.Order{
			TokenNumber:      token,
			Items:            items,
			TotalPrice:       ComputeTotal(items),
			Status:           constants.STATUS_PENDING,
			CustomerName:     customerName,
			CustomerPhone:    input.CustomerPhone,
			VerificationCode: currentPin,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return model.Order{}, err
	}

	PublishOrderEvent(context.Background(), constants.EVENT_INSERT, order)
	return order, nil
}

// TransitionOrder advances an order along the permitted edges. The update is
// guarded by the status we read, so two staff racing on the same order resolve
// to exactly one winner; the loser gets ErrStatusConflict and must re-read.
func TransitionOrder(orderId, target string) (model.Order, error) {
	if !model.IsValidStatus(target) {
		return model.Order{}, constants.ErrInvalidTransition
	}

	var order model.Order
	if err := database.DB.First(&order, "id = ?", orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Order{}, constants.ErrNotFound
		}
		return model.Order{}, err
	}

	if !model.CanTransition(order.Status, target) {
		return model.Order{}, constants.ErrInvalidTransition
	}

	result := database.DB.Model(&model.Order{}).
		Where("id = ? AND status = ?", order.ID, order.Status).
		Update("status", target)
	if result.Error != nil {
		return model.Order{}, result.Error
	}
	if result.RowsAffected == 0 {
		return model.Order{}, constants.ErrStatusConflict
	}

	// The guarded update committed; report the row as written instead of
	// re-reading, which could race a concurrent admin delete.
	order = AppliedTransition(order, target, time.Now())

	PublishOrderEvent(context.Background(), constants.EVENT_UPDATE, order)
	return order, nil
}

// AppliedTransition is the order row as it stands after a winning status
// update: only status and updated_at change, everything else stays as placed.
func AppliedTransition(order model.Order, target string, now time.Time) model.Order {
	order.Status = target
	order.UpdatedAt = now
	return order
}

// DeleteOrder removes an order outside the normal lifecycle (administrative
// action only) and tells subscribers to drop it.
func DeleteOrder(orderId string) error {
	var order model.Order
	if err := database.DB.First(&order, "id = ?", orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return constants.ErrNotFound
		}
		return err
	}

	if err := database.DB.Delete(&order).Error; err != nil {
		return err
	}

	PublishOrderEvent(context.Background(), constants.EVENT_DELETE, order)
	return nil
}
