package helper

import (
	"context"
	"encoding/json"
	"log"

	"restaurant_manager/database"
	"restaurant_manager/model"
)

// OrdersChannel carries every order event; the staff dashboard subscribes
// here.
const OrdersChannel = "orders"

// OrderChannel carries events for a single order; a customer's tracking page
// subscribes here.
func OrderChannel(orderId string) string {
	return "orders:" + orderId
}

// PublishOrderEvent pushes a typed event to both channels. Delivery is
// best-effort: a subscriber that was disconnected must re-fetch current state
// on reconnect, it cannot rely on replay.
func PublishOrderEvent(ctx context.Context, eventType string, order model.Order) {
	payload, err := json.Marshal(model.OrderEvent{Type: eventType, Order: order})
	if err != nil {
		log.Printf("Failed to marshal order event: %v", err)
		return
	}

	if err := database.Redis.Publish(ctx, OrdersChannel, payload).Err(); err != nil {
		log.Printf("Failed to publish order event for %s: %v", order.ID, err)
	}
	if err := database.Redis.Publish(ctx, OrderChannel(order.ID), payload).Err(); err != nil {
		log.Printf("Failed to publish order event for %s: %v", order.ID, err)
	}
}
