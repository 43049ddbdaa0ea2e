package handler

import (
	"context"
	"errors"
	"log"
	"sync"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"

	"github.com/gofiber/contrib/websocket"
	"gorm.io/gorm"
)

// Subscriber registries, one per subscription kind. Removal happens under the
// lock before the connection is closed, so no relay write can race past an
// unsubscribe.
var (
	dashboardClients = make(map[*websocket.Conn]bool)
	orderClients     = make(map[string]map[*websocket.Conn]bool)
	mu               sync.Mutex
)

// DashboardWebsocket streams every order event to a staff dashboard. On
// connect it first sends the current active orders from the store; the client
// must treat that snapshot as the truth and only then apply incremental
// events.
func DashboardWebsocket(c *websocket.Conn) {
	defer func() {
		mu.Lock()
		delete(dashboardClients, c)
		mu.Unlock()
		c.Close()
	}()

	mu.Lock()
	dashboardClients[c] = true
	mu.Unlock()

	// Subscribe before the snapshot query: a transition landing while the
	// snapshot loads is buffered and relayed after it, never lost.
	pubsub := database.Redis.Subscribe(context.Background(), helper.OrdersChannel)
	defer pubsub.Close()

	// Reconciliation-on-connect: full active order list before any event.
	var orders []model.Order
	if err := database.DB.
		Where("status NOT IN ?", []string{constants.STATUS_SERVED, constants.STATUS_CANCELLED}).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		log.Printf("Failed to load orders for dashboard snapshot: %v", err)
		return
	}
	if err := c.WriteJSON(orders); err != nil {
		return
	}

	for msg := range pubsub.Channel() {
		payload := []byte(msg.Payload)

		mu.Lock()
		if !dashboardClients[c] {
			mu.Unlock()
			return
		}
		err := c.WriteMessage(websocket.TextMessage, payload)
		mu.Unlock()
		if err != nil {
			return
		}
	}
}

// OrderWebsocket streams events for a single order to its customer's tracking
// page. Missing order closes the socket immediately.
func OrderWebsocket(c *websocket.Conn) {
	orderId := c.Params("orderId")

	defer func() {
		mu.Lock()
		if orderClients[orderId] != nil {
			delete(orderClients[orderId], c)
			if len(orderClients[orderId]) == 0 {
				delete(orderClients, orderId)
			}
		}
		mu.Unlock()
		c.Close()
	}()

	// Subscribe before the snapshot read so no update slips between the two.
	pubsub := database.Redis.Subscribe(context.Background(), helper.OrderChannel(orderId))
	defer pubsub.Close()

	var order model.Order
	if err := database.DB.First(&order, "id = ?", orderId).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Failed to load order %s for tracking: %v", orderId, err)
		}
		return
	}

	mu.Lock()
	if orderClients[orderId] == nil {
		orderClients[orderId] = make(map[*websocket.Conn]bool)
	}
	orderClients[orderId][c] = true
	mu.Unlock()

	// Current state first, then incremental events.
	if err := c.WriteJSON(order); err != nil {
		return
	}

	for msg := range pubsub.Channel() {
		payload := []byte(msg.Payload)

		mu.Lock()
		subscribed := orderClients[orderId] != nil && orderClients[orderId][c]
		if !subscribed {
			mu.Unlock()
			return
		}
		err := c.WriteMessage(websocket.TextMessage, payload)
		mu.Unlock()
		if err != nil {
			return
		}
	}
}
