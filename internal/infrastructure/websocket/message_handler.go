package websocket

import (
	"encoding/json"
	"time"

	"luxestore/internal/domain/entity"
	"luxestore/pkg/logger"
)

const (
	MessageTypePing         = "ping"
	MessageTypePong         = "pong"
	MessageTypeError        = "error"
	MessageTypeOrderCreated = "order_created"
)

type WSMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}

// OrderCreatedData is the summary pushed to admin consoles for a new order.
type OrderCreatedData struct {
	OrderID      string             `json:"order_id"`
	CustomerName string             `json:"customer_name"`
	Email        string             `json:"email"`
	Total        float64            `json:"total"`
	ItemCount    int                `json:"item_count"`
	Status       entity.OrderStatus `json:"status"`
	CreatedAt    string             `json:"created_at"`
}

// NotifyOrderCreated pushes an order_created event to every admin console.
func (m *Manager) NotifyOrderCreated(order *entity.Order) {
	count := 0
	for _, item := range order.Items {
		count += item.Quantity
	}

	m.Broadcast(WSMessage{
		Type: MessageTypeOrderCreated,
		Data: OrderCreatedData{
			OrderID:      order.ID,
			CustomerName: order.CustomerName,
			Email:        order.Email,
			Total:        order.Total,
			ItemCount:    count,
			Status:       order.Status,
			CreatedAt:    order.CreatedAt.Format(time.RFC3339),
		},
	})
}

// HandleClientMessage answers pings; anything else is rejected.
func (m *Manager) HandleClientMessage(client *Client, messageBytes []byte) {
	var wsMessage WSMessage
	if err := json.Unmarshal(messageBytes, &wsMessage); err != nil {
		logger.Debug("WebSocket: malformed message from %s: %v", client.UserID, err)
		m.sendToClient(client, errorMessage("Invalid message format"))
		return
	}

	switch wsMessage.Type {
	case MessageTypePing:
		m.sendToClient(client, WSMessage{
			Type:      MessageTypePong,
			Data:      map[string]string{"status": "alive"},
			Timestamp: time.Now().Format(time.RFC3339),
		})
	default:
		m.sendToClient(client, errorMessage("Unknown message type"))
	}
}

func (m *Manager) sendToClient(client *Client, message WSMessage) {
	data, err := json.Marshal(message)
	if err != nil {
		logger.Error("WebSocket: failed to marshal message for %s: %v", client.UserID, err)
		return
	}

	// Send is closed only under the write lock, after the client leaves the map.
	m.mutex.RLock()
	if _, ok := m.clients[client]; !ok {
		m.mutex.RUnlock()
		logger.Debug("WebSocket: dropping reply to departed client %s", client.UserID)
		return
	}
	select {
	case client.Send <- data:
		m.mutex.RUnlock()
	default:
		m.mutex.RUnlock()
		logger.Warn("WebSocket: send buffer full for %s, closing", client.UserID)
		m.remove(client)
	}
}

func errorMessage(text string) WSMessage {
	return WSMessage{
		Type:      MessageTypeError,
		Data:      map[string]string{"error": text},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}
